package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

const (
	limiteBaixoEstoque = 10 // quantidade <= 10 entra na lista de baixo estoque
	maxProdutosBaixo   = 10
	maxNotasRecentes   = 10
)

// DashboardUseCase monta o resumo de GET /dashboard/stats.
//
// Fonte de dados: DashboardRepository (consultas read-only); as consultas
// independentes rodam em paralelo.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Stats devolve contadores, lista de baixo estoque, notas recentes e o valor
// total em estoque.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	type contadoresResult struct {
		produtos, notas, entradas, saidas int
		valorEstoque                      decimal.Decimal
		err                               error
	}
	type baixoEstoqueResult struct {
		produtos []*entity.Produto
		err      error
	}
	type recentesResult struct {
		notas []*entity.NotaMovimentacao
		err   error
	}

	contadoresCh := make(chan contadoresResult, 1)
	baixoCh := make(chan baixoEstoqueResult, 1)
	recentesCh := make(chan recentesResult, 1)

	go func() {
		var r contadoresResult
		if r.produtos, r.err = uc.repo.CountProdutosAtivos(ctx); r.err != nil {
			contadoresCh <- r
			return
		}
		if r.notas, r.err = uc.repo.CountNotas(ctx, ""); r.err != nil {
			contadoresCh <- r
			return
		}
		if r.entradas, r.err = uc.repo.CountNotas(ctx, entity.TipoNotaEntrada); r.err != nil {
			contadoresCh <- r
			return
		}
		if r.saidas, r.err = uc.repo.CountNotas(ctx, entity.TipoNotaSaida); r.err != nil {
			contadoresCh <- r
			return
		}
		r.valorEstoque, r.err = uc.repo.ValorTotalEstoque(ctx)
		contadoresCh <- r
	}()
	go func() {
		produtos, err := uc.repo.ProdutosBaixoEstoque(ctx, decimal.NewFromInt(limiteBaixoEstoque), maxProdutosBaixo)
		baixoCh <- baixoEstoqueResult{produtos, err}
	}()
	go func() {
		notas, err := uc.repo.NotasRecentes(ctx, maxNotasRecentes)
		recentesCh <- recentesResult{notas, err}
	}()

	contadores := <-contadoresCh
	baixo := <-baixoCh
	recentes := <-recentesCh

	if contadores.err != nil {
		return nil, fmt.Errorf("dashboard: contadores: %w", contadores.err)
	}
	if baixo.err != nil {
		return nil, fmt.Errorf("dashboard: baixo estoque: %w", baixo.err)
	}
	if recentes.err != nil {
		return nil, fmt.Errorf("dashboard: notas recentes: %w", recentes.err)
	}

	out := &dto.DashboardStatsResponse{
		Contadores: dto.DashboardContadores{
			Produtos:          contadores.produtos,
			Notas:             contadores.notas,
			NotasEntrada:      contadores.entradas,
			NotasSaida:        contadores.saidas,
			ValorTotalEstoque: contadores.valorEstoque,
		},
		ProdutosBaixoEstoque: make([]dto.ProdutoResponse, 0, len(baixo.produtos)),
		NotasRecentes:        make([]dto.NotaResponse, 0, len(recentes.notas)),
	}
	for _, p := range baixo.produtos {
		out.ProdutosBaixoEstoque = append(out.ProdutosBaixoEstoque, *dto.ToProdutoResponse(p))
	}
	for _, n := range recentes.notas {
		out.NotasRecentes = append(out.NotasRecentes, *dto.ToNotaResponse(n))
	}
	return out, nil
}
