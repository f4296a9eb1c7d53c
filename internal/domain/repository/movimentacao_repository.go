package repository

import (
	"context"
	"time"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// MovimentacaoFilter filtros de listagem do livro-razão de movimentações.
type MovimentacaoFilter struct {
	Tipo       string // ENTRADA | SAIDA | vazio
	ProdutoID  string
	DataInicio *time.Time
	DataFim    *time.Time
}

// MovimentacaoRepository define a porta de persistência para MovimentacaoEstoque.
type MovimentacaoRepository interface {
	Create(ctx context.Context, mov *entity.MovimentacaoEstoque) error
	List(ctx context.Context, filtro MovimentacaoFilter, limit, offset int) ([]*entity.MovimentacaoEstoque, error)
	Count(ctx context.Context, filtro MovimentacaoFilter) (int, error)
	// CountByTipo conta movimentações do tipo dado respeitando os demais filtros.
	CountByTipo(ctx context.Context, filtro MovimentacaoFilter, tipo string) (int, error)
}
