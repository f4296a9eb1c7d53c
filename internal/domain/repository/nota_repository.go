package repository

import (
	"context"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// NotaFilter filtros de listagem de notas.
type NotaFilter struct {
	Tipo   string // ENTRADA | SAIDA | vazio (todos)
	Numero string // substring
}

// NotaRepository define a porta de persistência para NotaMovimentacao.
// Create grava cabeçalho e itens; as consultas materializam itens, produtos e usuário.
type NotaRepository interface {
	Create(ctx context.Context, nota *entity.NotaMovimentacao) error
	GetByID(ctx context.Context, id string) (*entity.NotaMovimentacao, error)
	GetByNumero(ctx context.Context, numero string) (*entity.NotaMovimentacao, error)
	List(ctx context.Context, filtro NotaFilter, limit, offset int) ([]*entity.NotaMovimentacao, error)
	Count(ctx context.Context, filtro NotaFilter) (int, error)
}
