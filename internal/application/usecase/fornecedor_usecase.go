package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// FornecedorUseCase CRUD de fornecedores.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Criar cadastra um fornecedor.
func (uc *FornecedorUseCase) Criar(ctx context.Context, in dto.CreateFornecedorRequest) (*dto.FornecedorResponse, error) {
	if strings.TrimSpace(in.Nome) == "" {
		return nil, domain.Validationf("Nome é obrigatório")
	}
	now := time.Now()
	fornecedor := &entity.Fornecedor{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		CNPJ:      in.CNPJ,
		Endereco:  in.Endereco,
		Telefone:  in.Telefone,
		Email:     in.Email,
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, fornecedor); err != nil {
		return nil, err
	}
	return dto.ToFornecedorResponse(fornecedor), nil
}

// Listar devolve fornecedores ativos paginados, com busca por nome ou CNPJ.
func (uc *FornecedorUseCase) Listar(ctx context.Context, page dto.PageRequest) (*dto.FornecedorListResponse, error) {
	page.Normalize()
	fornecedores, err := uc.repo.List(ctx, page.Search, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, page.Search)
	if err != nil {
		return nil, err
	}
	out := &dto.FornecedorListResponse{
		Fornecedores: make([]dto.FornecedorResponse, 0, len(fornecedores)),
		Pagination:   dto.NewPagination(page.Page, page.Limit, total),
	}
	for _, f := range fornecedores {
		out.Fornecedores = append(out.Fornecedores, *dto.ToFornecedorResponse(f))
	}
	return out, nil
}

// Buscar devolve um fornecedor por ID.
func (uc *FornecedorUseCase) Buscar(ctx context.Context, id string) (*dto.FornecedorResponse, error) {
	fornecedor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fornecedor == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToFornecedorResponse(fornecedor), nil
}
