package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// DashboardRepository consultas read-only de agregação para o dashboard.
type DashboardRepository interface {
	CountProdutosAtivos(ctx context.Context) (int, error)
	// CountNotas conta notas; tipo vazio conta todas.
	CountNotas(ctx context.Context, tipo string) (int, error)
	// ProdutosBaixoEstoque lista produtos ativos com quantidade <= limite,
	// ordenados por quantidade crescente.
	ProdutosBaixoEstoque(ctx context.Context, limite decimal.Decimal, max int) ([]*entity.Produto, error)
	// NotasRecentes lista as últimas n notas com usuário e itens.
	NotasRecentes(ctx context.Context, n int) ([]*entity.NotaMovimentacao, error)
	// ValorTotalEstoque soma preco × quantidade dos produtos ativos.
	ValorTotalEstoque(ctx context.Context) (decimal.Decimal, error)
}
