package repository

import (
	"context"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// UserRepository define a porta de persistência para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
