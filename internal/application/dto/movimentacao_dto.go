package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// MovimentacaoResponse registro do livro-razão nas respostas.
type MovimentacaoResponse struct {
	ID            string           `json:"id"`
	ProdutoID     string           `json:"produtoId"`
	NotaID        string           `json:"notaId"`
	Tipo          string           `json:"tipo"`
	Quantidade    decimal.Decimal  `json:"quantidade"`
	ValorUnitario decimal.Decimal  `json:"valorUnitario"`
	Observacao    string           `json:"observacao,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	Produto       *ProdutoResponse `json:"produto,omitempty"`
}

// MovimentacaoEstatisticas contadores da listagem de movimentações.
type MovimentacaoEstatisticas struct {
	Total    int `json:"total"`
	Entradas int `json:"entradas"`
	Saidas   int `json:"saidas"`
	Saldo    int `json:"saldo"`
}

// MovimentacaoListResponse resposta de GET /movimentacoes.
type MovimentacaoListResponse struct {
	Movimentacoes []MovimentacaoResponse   `json:"movimentacoes"`
	Pagination    Pagination               `json:"pagination"`
	Estatisticas  MovimentacaoEstatisticas `json:"estatisticas"`
}

// ToMovimentacaoResponse converte a entidade para o DTO de resposta.
func ToMovimentacaoResponse(m *entity.MovimentacaoEstoque) MovimentacaoResponse {
	return MovimentacaoResponse{
		ID:            m.ID,
		ProdutoID:     m.ProdutoID,
		NotaID:        m.NotaID,
		Tipo:          m.Tipo,
		Quantidade:    m.Quantidade,
		ValorUnitario: m.ValorUnitario,
		Observacao:    m.Observacao,
		CreatedAt:     m.CreatedAt,
		Produto:       ToProdutoResponse(m.Produto),
	}
}
