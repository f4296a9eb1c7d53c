package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de nota de movimentação.
const (
	TipoNotaEntrada = "ENTRADA"
	TipoNotaSaida   = "SAIDA"
)

// MotivoSaidaParcial marca notas de saída derivadas de outra nota.
const MotivoSaidaParcial = "SAIDA_PARCIAL"

// NotaMovimentacao é o cabeçalho de uma nota de entrada ou saída de estoque.
// Imutável depois de lançada: não existe edição nem estorno.
type NotaMovimentacao struct {
	ID           string
	Numero       string // único, informado pelo usuário
	Tipo         string // ENTRADA | SAIDA
	UserID       string
	FornecedorID *string
	Motivo       string
	Destinatario string
	Observacoes  string
	ValorTotal   decimal.Decimal // soma dos valores totais dos itens
	Data         time.Time
	CreatedAt    time.Time

	// Relações materializadas nas consultas.
	Itens []ItemNota
	User  *User
}

// ItemNota é uma linha da nota: produto, quantidade e preço no momento do lançamento.
type ItemNota struct {
	ID            string
	NotaID        string
	ProdutoID     string
	Quantidade    decimal.Decimal // > 0
	ValorUnitario decimal.Decimal
	ValorTotal    decimal.Decimal // Quantidade × ValorUnitario

	Produto *Produto
}
