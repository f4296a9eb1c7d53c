package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de agregação read-only para o dashboard.
type DashboardRepo struct {
	q     Querier
	notas *NotaRepo
}

// NewDashboardRepository constrói o adaptador de consultas do dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q, notas: NewNotaRepository(q)}
}

// CountProdutosAtivos conta produtos ativos.
func (r *DashboardRepo) CountProdutosAtivos(ctx context.Context) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM produtos WHERE ativo = true`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count produtos ativos: %w", err)
	}
	return total, nil
}

// CountNotas conta notas; tipo vazio conta todas.
func (r *DashboardRepo) CountNotas(ctx context.Context, tipo string) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM notas_movimentacao WHERE ($1 = '' OR tipo = $1)`, tipo,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count notas: %w", err)
	}
	return total, nil
}

// ProdutosBaixoEstoque lista produtos ativos com saldo até o limite, do menor saldo para o maior.
func (r *DashboardRepo) ProdutosBaixoEstoque(ctx context.Context, limite decimal.Decimal, max int) ([]*entity.Produto, error) {
	query := `
		SELECT ` + produtoColumns + `
		FROM produtos
		WHERE ativo = true AND quantidade <= $1
		ORDER BY quantidade ASC LIMIT $2`
	rows, err := r.q.Query(ctx, query, limite, max)
	if err != nil {
		return nil, fmt.Errorf("list baixo estoque: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nome, &p.Descricao, &p.Unidade, &p.Preco,
			&p.Quantidade, &p.Ativo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// NotasRecentes devolve as últimas n notas com usuário e itens materializados.
func (r *DashboardRepo) NotasRecentes(ctx context.Context, n int) ([]*entity.NotaMovimentacao, error) {
	return r.notas.List(ctx, repository.NotaFilter{}, n, 0)
}

// ValorTotalEstoque soma preco × quantidade dos produtos ativos.
func (r *DashboardRepo) ValorTotalEstoque(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(preco * quantidade), 0) FROM produtos WHERE ativo = true`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor total estoque: %w", err)
	}
	return total, nil
}
