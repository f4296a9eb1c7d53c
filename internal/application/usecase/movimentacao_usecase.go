package usecase

import (
	"context"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// MovimentacaoUseCase consulta o livro-razão de movimentações de estoque.
// Movimentações são geradas exclusivamente pelo lançamento de notas.
type MovimentacaoUseCase struct {
	repo repository.MovimentacaoRepository
}

// NewMovimentacaoUseCase constrói o caso de uso.
func NewMovimentacaoUseCase(repo repository.MovimentacaoRepository) *MovimentacaoUseCase {
	return &MovimentacaoUseCase{repo: repo}
}

// Listar devolve movimentações paginadas com filtros e contadores de
// entradas/saídas sobre o mesmo filtro.
func (uc *MovimentacaoUseCase) Listar(ctx context.Context, filtro repository.MovimentacaoFilter, page dto.PageRequest) (*dto.MovimentacaoListResponse, error) {
	page.Normalize()
	movs, err := uc.repo.List(ctx, filtro, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, filtro)
	if err != nil {
		return nil, err
	}
	entradas, err := uc.repo.CountByTipo(ctx, filtro, entity.TipoNotaEntrada)
	if err != nil {
		return nil, err
	}
	saidas, err := uc.repo.CountByTipo(ctx, filtro, entity.TipoNotaSaida)
	if err != nil {
		return nil, err
	}

	out := &dto.MovimentacaoListResponse{
		Movimentacoes: make([]dto.MovimentacaoResponse, 0, len(movs)),
		Pagination:    dto.NewPagination(page.Page, page.Limit, total),
		Estatisticas: dto.MovimentacaoEstatisticas{
			Total:    total,
			Entradas: entradas,
			Saidas:   saidas,
			Saldo:    entradas - saidas,
		},
	}
	for _, m := range movs {
		out.Movimentacoes = append(out.Movimentacoes, dto.ToMovimentacaoResponse(m))
	}
	return out, nil
}
