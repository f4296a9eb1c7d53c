package repository

import (
	"context"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// FornecedorRepository define a porta de persistência para Fornecedor.
type FornecedorRepository interface {
	Create(ctx context.Context, fornecedor *entity.Fornecedor) error
	GetByID(ctx context.Context, id string) (*entity.Fornecedor, error)
	// List filtra por substring em nome ou CNPJ quando search não é vazio.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Fornecedor, error)
	Count(ctx context.Context, search string) (int, error)
}
