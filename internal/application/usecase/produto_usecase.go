package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// ProdutoUseCase CRUD de produtos. O saldo nunca é alterado por aqui: só o
// lançamento de notas mexe em Quantidade.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Criar cadastra um produto com saldo zero.
func (uc *ProdutoUseCase) Criar(ctx context.Context, in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	if strings.TrimSpace(in.Codigo) == "" || strings.TrimSpace(in.Nome) == "" {
		return nil, domain.Validationf("Código e nome são obrigatórios")
	}
	unidade := in.Unidade
	if unidade == "" {
		unidade = "UN"
	}
	now := time.Now()
	produto := &entity.Produto{
		ID:         uuid.New().String(),
		Codigo:     strings.TrimSpace(in.Codigo),
		Nome:       in.Nome,
		Descricao:  in.Descricao,
		Unidade:    unidade,
		Preco:      in.Preco,
		Quantidade: decimal.Zero,
		Ativo:      true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, produto); err != nil {
		return nil, err
	}
	return dto.ToProdutoResponse(produto), nil
}

// Listar devolve produtos ativos paginados, com busca por nome ou código.
func (uc *ProdutoUseCase) Listar(ctx context.Context, page dto.PageRequest) (*dto.ProdutoListResponse, error) {
	page.Normalize()
	produtos, err := uc.repo.List(ctx, page.Search, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, page.Search)
	if err != nil {
		return nil, err
	}
	out := &dto.ProdutoListResponse{
		Produtos:   make([]dto.ProdutoResponse, 0, len(produtos)),
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}
	for _, p := range produtos {
		out.Produtos = append(out.Produtos, *dto.ToProdutoResponse(p))
	}
	return out, nil
}

// Buscar devolve um produto por ID.
func (uc *ProdutoUseCase) Buscar(ctx context.Context, id string) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProdutoResponse(produto), nil
}
