package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const produtoColumns = `id, codigo, nome, descricao, unidade, preco, quantidade, ativo, created_at, updated_at`

// ProdutoRepo implementação de ProdutoRepository sobre PostgreSQL (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência de produtos. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um novo produto.
func (r *ProdutoRepo) Create(ctx context.Context, p *entity.Produto) error {
	query := `
		INSERT INTO produtos (id, codigo, nome, descricao, unidade, preco, quantidade, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Codigo, p.Nome, p.Descricao, p.Unidade, p.Preco, p.Quantidade, p.Ativo,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID. Devolve (nil, nil) se não existir.
func (r *ProdutoRepo) GetByID(ctx context.Context, id string) (*entity.Produto, error) {
	return r.get(ctx, `SELECT `+produtoColumns+` FROM produtos WHERE id = $1`, id)
}

// GetByCodigo obtém um produto pelo código único.
func (r *ProdutoRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Produto, error) {
	return r.get(ctx, `SELECT `+produtoColumns+` FROM produtos WHERE codigo = $1`, codigo)
}

// GetByCodigoForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
// Só faz sentido dentro de uma transação.
func (r *ProdutoRepo) GetByCodigoForUpdate(ctx context.Context, codigo string) (*entity.Produto, error) {
	return r.get(ctx, `SELECT `+produtoColumns+` FROM produtos WHERE codigo = $1 FOR UPDATE`, codigo)
}

func (r *ProdutoRepo) get(ctx context.Context, query string, arg any) (*entity.Produto, error) {
	var p entity.Produto
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Codigo, &p.Nome, &p.Descricao, &p.Unidade, &p.Preco, &p.Quantidade, &p.Ativo,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// Update atualiza os dados cadastrais do produto. Quantidade só muda via AtualizarQuantidade.
func (r *ProdutoRepo) Update(ctx context.Context, p *entity.Produto) error {
	query := `
		UPDATE produtos SET nome = $2, descricao = $3, unidade = $4, preco = $5, ativo = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.Nome, p.Descricao, p.Unidade, p.Preco, p.Ativo, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// AtualizarQuantidade grava o novo saldo do produto.
func (r *ProdutoRepo) AtualizarQuantidade(ctx context.Context, id string, quantidade decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE produtos SET quantidade = $2, updated_at = now() WHERE id = $1`,
		id, quantidade,
	)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	return nil
}

// List lista produtos ativos com busca (ILIKE em nome/código) e paginação, em ordem alfabética.
func (r *ProdutoRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Produto, error) {
	query := `
		SELECT ` + produtoColumns + `
		FROM produtos
		WHERE ativo = true AND ($1 = '' OR nome ILIKE '%' || $1 || '%' OR codigo ILIKE '%' || $1 || '%')
		ORDER BY nome ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
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

// Count conta produtos ativos respeitando a busca.
func (r *ProdutoRepo) Count(ctx context.Context, search string) (int, error) {
	query := `
		SELECT count(*) FROM produtos
		WHERE ativo = true AND ($1 = '' OR nome ILIKE '%' || $1 || '%' OR codigo ILIKE '%' || $1 || '%')`
	var total int
	if err := r.q.QueryRow(ctx, query, search).Scan(&total); err != nil {
		return 0, fmt.Errorf("count produtos: %w", err)
	}
	return total, nil
}
