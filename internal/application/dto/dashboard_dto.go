package dto

import "github.com/shopspring/decimal"

// DashboardContadores contadores principais de GET /dashboard/stats.
type DashboardContadores struct {
	Produtos          int             `json:"produtos"`
	Notas             int             `json:"notas"`
	NotasEntrada      int             `json:"notasEntrada"`
	NotasSaida        int             `json:"notasSaida"`
	ValorTotalEstoque decimal.Decimal `json:"valorTotalEstoque"`
}

// DashboardStatsResponse resposta de GET /dashboard/stats.
type DashboardStatsResponse struct {
	Contadores           DashboardContadores `json:"contadores"`
	ProdutosBaixoEstoque []ProdutoResponse   `json:"produtosBaixoEstoque"`
	NotasRecentes        []NotaResponse      `json:"notasRecentes"`
}
