package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

const fornecedorColumns = `id, nome, cnpj, endereco, telefone, email, ativo, created_at, updated_at`

// FornecedorRepo implementação de FornecedorRepository sobre PostgreSQL.
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador de persistência de fornecedores.
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

// Create persiste um novo fornecedor.
func (r *FornecedorRepo) Create(ctx context.Context, f *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedores (id, nome, cnpj, endereco, telefone, email, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.Nome, f.CNPJ, f.Endereco, f.Telefone, f.Email, f.Ativo, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por ID. Devolve (nil, nil) se não existir.
func (r *FornecedorRepo) GetByID(ctx context.Context, id string) (*entity.Fornecedor, error) {
	var f entity.Fornecedor
	err := r.q.QueryRow(ctx, `SELECT `+fornecedorColumns+` FROM fornecedores WHERE id = $1`, id).Scan(
		&f.ID, &f.Nome, &f.CNPJ, &f.Endereco, &f.Telefone, &f.Email, &f.Ativo, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return &f, nil
}

// List lista fornecedores ativos com busca (ILIKE em nome/CNPJ) e paginação.
func (r *FornecedorRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Fornecedor, error) {
	query := `
		SELECT ` + fornecedorColumns + `
		FROM fornecedores
		WHERE ativo = true AND ($1 = '' OR nome ILIKE '%' || $1 || '%' OR cnpj ILIKE '%' || $1 || '%')
		ORDER BY nome ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fornecedor
	for rows.Next() {
		var f entity.Fornecedor
		if err := rows.Scan(&f.ID, &f.Nome, &f.CNPJ, &f.Endereco, &f.Telefone, &f.Email,
			&f.Ativo, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Count conta fornecedores ativos respeitando a busca.
func (r *FornecedorRepo) Count(ctx context.Context, search string) (int, error) {
	query := `
		SELECT count(*) FROM fornecedores
		WHERE ativo = true AND ($1 = '' OR nome ILIKE '%' || $1 || '%' OR cnpj ILIKE '%' || $1 || '%')`
	var total int
	if err := r.q.QueryRow(ctx, query, search).Scan(&total); err != nil {
		return 0, fmt.Errorf("count fornecedores: %w", err)
	}
	return total, nil
}
