package postgres

import (
	"context"
	"fmt"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação de MovimentacaoRepository sobre PostgreSQL.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador do livro-razão de movimentações.
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create grava uma linha do livro-razão.
func (r *MovimentacaoRepo) Create(ctx context.Context, mov *entity.MovimentacaoEstoque) error {
	query := `
		INSERT INTO movimentacoes_estoque (id, produto_id, nota_id, tipo, quantidade, valor_unitario, observacao, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		mov.ID, mov.ProdutoID, mov.NotaID, mov.Tipo, mov.Quantidade,
		mov.ValorUnitario, mov.Observacao, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

const movimentacaoFiltro = `
		($1 = '' OR m.tipo = $1)
		AND ($2 = '' OR m.produto_id = $2)
		AND ($3::timestamptz IS NULL OR m.created_at >= $3)
		AND ($4::timestamptz IS NULL OR m.created_at <= $4)`

// List lista movimentações com filtros e paginação, mais recentes primeiro.
func (r *MovimentacaoRepo) List(ctx context.Context, filtro repository.MovimentacaoFilter, limit, offset int) ([]*entity.MovimentacaoEstoque, error) {
	query := `
		SELECT m.id, m.produto_id, m.nota_id, m.tipo, m.quantidade, m.valor_unitario, m.observacao, m.created_at,
			p.id, p.codigo, p.nome, p.descricao, p.unidade, p.preco, p.quantidade, p.ativo, p.created_at, p.updated_at
		FROM movimentacoes_estoque m
		JOIN produtos p ON p.id = m.produto_id
		WHERE ` + movimentacaoFiltro + `
		ORDER BY m.created_at DESC LIMIT $5 OFFSET $6`
	rows, err := r.q.Query(ctx, query,
		filtro.Tipo, filtro.ProdutoID, filtro.DataInicio, filtro.DataFim, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovimentacaoEstoque
	for rows.Next() {
		var m entity.MovimentacaoEstoque
		var p entity.Produto
		if err := rows.Scan(
			&m.ID, &m.ProdutoID, &m.NotaID, &m.Tipo, &m.Quantidade, &m.ValorUnitario, &m.Observacao, &m.CreatedAt,
			&p.ID, &p.Codigo, &p.Nome, &p.Descricao, &p.Unidade, &p.Preco, &p.Quantidade, &p.Ativo,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		m.Produto = &p
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Count conta movimentações respeitando os filtros.
func (r *MovimentacaoRepo) Count(ctx context.Context, filtro repository.MovimentacaoFilter) (int, error) {
	query := `SELECT count(*) FROM movimentacoes_estoque m WHERE ` + movimentacaoFiltro
	var total int
	err := r.q.QueryRow(ctx, query, filtro.Tipo, filtro.ProdutoID, filtro.DataInicio, filtro.DataFim).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count movimentacoes: %w", err)
	}
	return total, nil
}

// CountByTipo conta movimentações do tipo dado mantendo os demais filtros.
func (r *MovimentacaoRepo) CountByTipo(ctx context.Context, filtro repository.MovimentacaoFilter, tipo string) (int, error) {
	filtro.Tipo = tipo
	return r.Count(ctx, filtro)
}
