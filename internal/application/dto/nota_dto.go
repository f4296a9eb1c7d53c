package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// ItemEntradaRequest linha de uma nota de entrada. Nome, descrição, unidade e
// preço alimentam a criação do produto quando o código ainda não existe;
// preço informado prevalece sobre o preço atual do produto.
type ItemEntradaRequest struct {
	Codigo     string           `json:"codigo"`
	Nome       string           `json:"nome"`
	Descricao  string           `json:"descricao"`
	Unidade    string           `json:"unidade"`
	Preco      *decimal.Decimal `json:"preco"`
	Quantidade decimal.Decimal  `json:"quantidade"`
}

// CriarNotaEntradaRequest corpo de POST /notas/entrada.
type CriarNotaEntradaRequest struct {
	Numero       string               `json:"numero"`
	FornecedorID *string              `json:"fornecedorId"`
	Data         *time.Time           `json:"data"`
	Observacoes  string               `json:"observacoes"`
	Produtos     []ItemEntradaRequest `json:"produtos"`
}

// ItemSaidaRequest linha de uma nota de saída: apenas código e quantidade,
// o preço é sempre o preço atual do produto.
type ItemSaidaRequest struct {
	Codigo     string          `json:"codigo"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// CriarNotaSaidaRequest corpo de POST /notas/saida.
type CriarNotaSaidaRequest struct {
	Numero       string             `json:"numero"`
	Motivo       string             `json:"motivo"`
	Destinatario string             `json:"destinatario"`
	Data         *time.Time         `json:"data"`
	Observacoes  string             `json:"observacoes"`
	Produtos     []ItemSaidaRequest `json:"produtos"`
}

// SaidaParcialRequest corpo de POST /notas/:id/saida-parcial.
type SaidaParcialRequest struct {
	NumeroNotaSaida string             `json:"numeroNotaSaida"`
	Observacoes     string             `json:"observacoes"`
	Produtos        []ItemSaidaRequest `json:"produtos"`
}

// ItemNotaResponse linha da nota materializada com o produto.
type ItemNotaResponse struct {
	ID            string           `json:"id"`
	ProdutoID     string           `json:"produtoId"`
	Quantidade    decimal.Decimal  `json:"quantidade"`
	ValorUnitario decimal.Decimal  `json:"valorUnitario"`
	ValorTotal    decimal.Decimal  `json:"valorTotal"`
	Produto       *ProdutoResponse `json:"produto,omitempty"`
}

// NotaUserResponse usuário resumido dentro da nota.
type NotaUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NotaResponse nota materializada: cabeçalho, itens e produtos.
type NotaResponse struct {
	ID           string             `json:"id"`
	Numero       string             `json:"numero"`
	Tipo         string             `json:"tipo"`
	FornecedorID *string            `json:"fornecedorId,omitempty"`
	Motivo       string             `json:"motivo,omitempty"`
	Destinatario string             `json:"destinatario,omitempty"`
	Observacoes  string             `json:"observacoes,omitempty"`
	ValorTotal   decimal.Decimal    `json:"valorTotal"`
	Data         time.Time          `json:"data"`
	CreatedAt    time.Time          `json:"createdAt"`
	User         *NotaUserResponse  `json:"user,omitempty"`
	Itens        []ItemNotaResponse `json:"itens"`
}

// NotaListResponse resposta de GET /notas.
type NotaListResponse struct {
	Notas      []NotaResponse `json:"notas"`
	Pagination Pagination     `json:"pagination"`
}

// ToNotaResponse converte a entidade (com relações) para o DTO de resposta.
func ToNotaResponse(n *entity.NotaMovimentacao) *NotaResponse {
	if n == nil {
		return nil
	}
	out := &NotaResponse{
		ID:           n.ID,
		Numero:       n.Numero,
		Tipo:         n.Tipo,
		FornecedorID: n.FornecedorID,
		Motivo:       n.Motivo,
		Destinatario: n.Destinatario,
		Observacoes:  n.Observacoes,
		ValorTotal:   n.ValorTotal,
		Data:         n.Data,
		CreatedAt:    n.CreatedAt,
		Itens:        make([]ItemNotaResponse, 0, len(n.Itens)),
	}
	if n.User != nil {
		out.User = &NotaUserResponse{ID: n.User.ID, Email: n.User.Email, Name: n.User.Name}
	}
	for _, item := range n.Itens {
		out.Itens = append(out.Itens, ItemNotaResponse{
			ID:            item.ID,
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			ValorUnitario: item.ValorUnitario,
			ValorTotal:    item.ValorTotal,
			Produto:       ToProdutoResponse(item.Produto),
		})
	}
	return out
}
