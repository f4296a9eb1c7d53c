package repository

import (
	"context"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// SessionRepository define a porta de persistência para Session.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByToken(ctx context.Context, token string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByToken(ctx context.Context, token string) error
}
