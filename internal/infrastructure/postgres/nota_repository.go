package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.NotaRepository = (*NotaRepo)(nil)

// NotaRepo implementação de NotaRepository sobre PostgreSQL (usável com pool ou tx).
type NotaRepo struct {
	q Querier
}

// NewNotaRepository constrói o adaptador de persistência de notas.
func NewNotaRepository(q Querier) *NotaRepo {
	return &NotaRepo{q: q}
}

// Create persiste o cabeçalho e os itens da nota na ordem enviada.
func (r *NotaRepo) Create(ctx context.Context, n *entity.NotaMovimentacao) error {
	query := `
		INSERT INTO notas_movimentacao (id, numero, tipo, user_id, fornecedor_id, motivo, destinatario, observacoes, valor_total, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.Numero, n.Tipo, n.UserID, n.FornecedorID, n.Motivo, n.Destinatario,
		n.Observacoes, n.ValorTotal, n.Data, n.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert nota: %w", err)
	}

	for i := range n.Itens {
		item := &n.Itens[i]
		_, err := r.q.Exec(ctx, `
			INSERT INTO itens_nota (id, nota_id, produto_id, quantidade, valor_unitario, valor_total, posicao)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, item.NotaID, item.ProdutoID, item.Quantidade, item.ValorUnitario, item.ValorTotal, i,
		)
		if err != nil {
			return fmt.Errorf("insert item nota: %w", err)
		}
	}
	return nil
}

const notaColumns = `n.id, n.numero, n.tipo, n.user_id, n.fornecedor_id, n.motivo, n.destinatario, n.observacoes, n.valor_total, n.data, n.created_at,
		u.id, u.email, u.name`

// GetByID obtém uma nota por ID com usuário, itens e produtos. Devolve (nil, nil) se não existir.
func (r *NotaRepo) GetByID(ctx context.Context, id string) (*entity.NotaMovimentacao, error) {
	return r.get(ctx, `n.id = $1`, id)
}

// GetByNumero obtém uma nota pelo número único.
func (r *NotaRepo) GetByNumero(ctx context.Context, numero string) (*entity.NotaMovimentacao, error) {
	return r.get(ctx, `n.numero = $1`, numero)
}

func (r *NotaRepo) get(ctx context.Context, where string, arg any) (*entity.NotaMovimentacao, error) {
	query := `
		SELECT ` + notaColumns + `
		FROM notas_movimentacao n
		JOIN users u ON u.id = n.user_id
		WHERE ` + where
	var n entity.NotaMovimentacao
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&n.ID, &n.Numero, &n.Tipo, &n.UserID, &n.FornecedorID, &n.Motivo, &n.Destinatario,
		&n.Observacoes, &n.ValorTotal, &n.Data, &n.CreatedAt,
		&u.ID, &u.Email, &u.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nota: %w", err)
	}
	n.User = &u
	if err := r.carregarItens(ctx, []*entity.NotaMovimentacao{&n}); err != nil {
		return nil, err
	}
	return &n, nil
}

// List lista notas com filtros e paginação, mais recentes primeiro.
func (r *NotaRepo) List(ctx context.Context, filtro repository.NotaFilter, limit, offset int) ([]*entity.NotaMovimentacao, error) {
	query := `
		SELECT ` + notaColumns + `
		FROM notas_movimentacao n
		JOIN users u ON u.id = n.user_id
		WHERE ($1 = '' OR n.tipo = $1) AND ($2 = '' OR n.numero ILIKE '%' || $2 || '%')
		ORDER BY n.created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, filtro.Tipo, filtro.Numero, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notas: %w", err)
	}
	defer rows.Close()

	var list []*entity.NotaMovimentacao
	for rows.Next() {
		var n entity.NotaMovimentacao
		var u entity.User
		if err := rows.Scan(
			&n.ID, &n.Numero, &n.Tipo, &n.UserID, &n.FornecedorID, &n.Motivo, &n.Destinatario,
			&n.Observacoes, &n.ValorTotal, &n.Data, &n.CreatedAt,
			&u.ID, &u.Email, &u.Name,
		); err != nil {
			return nil, fmt.Errorf("scan nota: %w", err)
		}
		n.User = &u
		list = append(list, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.carregarItens(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Count conta notas respeitando os filtros.
func (r *NotaRepo) Count(ctx context.Context, filtro repository.NotaFilter) (int, error) {
	query := `
		SELECT count(*) FROM notas_movimentacao n
		WHERE ($1 = '' OR n.tipo = $1) AND ($2 = '' OR n.numero ILIKE '%' || $2 || '%')`
	var total int
	if err := r.q.QueryRow(ctx, query, filtro.Tipo, filtro.Numero).Scan(&total); err != nil {
		return 0, fmt.Errorf("count notas: %w", err)
	}
	return total, nil
}

// carregarItens materializa itens e produtos das notas em uma única consulta.
func (r *NotaRepo) carregarItens(ctx context.Context, notas []*entity.NotaMovimentacao) error {
	if len(notas) == 0 {
		return nil
	}
	porID := make(map[string]*entity.NotaMovimentacao, len(notas))
	placeholders := make([]string, 0, len(notas))
	args := make([]any, 0, len(notas))
	for i, n := range notas {
		porID[n.ID] = n
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, n.ID)
	}

	query := `
		SELECT i.id, i.nota_id, i.produto_id, i.quantidade, i.valor_unitario, i.valor_total,
			p.id, p.codigo, p.nome, p.descricao, p.unidade, p.preco, p.quantidade, p.ativo, p.created_at, p.updated_at
		FROM itens_nota i
		JOIN produtos p ON p.id = i.produto_id
		WHERE i.nota_id IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY i.nota_id, i.posicao ASC`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("list itens nota: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.ItemNota
		var p entity.Produto
		if err := rows.Scan(
			&item.ID, &item.NotaID, &item.ProdutoID, &item.Quantidade, &item.ValorUnitario, &item.ValorTotal,
			&p.ID, &p.Codigo, &p.Nome, &p.Descricao, &p.Unidade, &p.Preco, &p.Quantidade, &p.Ativo,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return fmt.Errorf("scan item nota: %w", err)
		}
		item.Produto = &p
		if nota, ok := porID[item.NotaID]; ok {
			nota.Itens = append(nota.Itens, item)
		}
	}
	return rows.Err()
}
