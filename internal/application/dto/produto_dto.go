package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// CreateProdutoRequest corpo de POST /produtos.
type CreateProdutoRequest struct {
	Codigo    string          `json:"codigo"`
	Nome      string          `json:"nome"`
	Descricao string          `json:"descricao"`
	Unidade   string          `json:"unidade"`
	Preco     decimal.Decimal `json:"preco"`
}

// ProdutoResponse representação de um produto nas respostas.
type ProdutoResponse struct {
	ID         string          `json:"id"`
	Codigo     string          `json:"codigo"`
	Nome       string          `json:"nome"`
	Descricao  string          `json:"descricao"`
	Unidade    string          `json:"unidade"`
	Preco      decimal.Decimal `json:"preco"`
	Quantidade decimal.Decimal `json:"quantidade"`
	Ativo      bool            `json:"ativo"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ProdutoListResponse resposta de GET /produtos.
type ProdutoListResponse struct {
	Produtos   []ProdutoResponse `json:"produtos"`
	Pagination Pagination        `json:"pagination"`
}

// ToProdutoResponse converte a entidade para o DTO de resposta.
func ToProdutoResponse(p *entity.Produto) *ProdutoResponse {
	if p == nil {
		return nil
	}
	return &ProdutoResponse{
		ID:         p.ID,
		Codigo:     p.Codigo,
		Nome:       p.Nome,
		Descricao:  p.Descricao,
		Unidade:    p.Unidade,
		Preco:      p.Preco,
		Quantidade: p.Quantidade,
		Ativo:      p.Ativo,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
