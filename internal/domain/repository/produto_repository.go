package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// ProdutoRepository define a porta de persistência para Produto.
// Métodos Get* devolvem (nil, nil) quando o registro não existe.
type ProdutoRepository interface {
	Create(ctx context.Context, produto *entity.Produto) error
	GetByID(ctx context.Context, id string) (*entity.Produto, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.Produto, error)
	// GetByCodigoForUpdate bloqueia a linha do produto (SELECT ... FOR UPDATE)
	// para o par verificação-ajuste de saldo dentro de uma transação.
	GetByCodigoForUpdate(ctx context.Context, codigo string) (*entity.Produto, error)
	Update(ctx context.Context, produto *entity.Produto) error
	// AtualizarQuantidade grava o novo saldo do produto.
	AtualizarQuantidade(ctx context.Context, id string, quantidade decimal.Decimal) error
	// List devolve produtos ativos, filtrados por substring (case-insensitive)
	// em nome ou código quando search não é vazio.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Produto, error)
	Count(ctx context.Context, search string) (int, error)
}
