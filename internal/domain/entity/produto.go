package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item de estoque identificado por código único.
// Quantidade é o saldo em mãos, desnormalizado: só muda via lançamento de notas
// (nunca negativo). Produtos nunca são removidos fisicamente — apenas Ativo=false.
type Produto struct {
	ID         string
	Codigo     string // código único informado pelo usuário
	Nome       string
	Descricao  string
	Unidade    string // UN, CX, KG...
	Preco      decimal.Decimal
	Quantidade decimal.Decimal
	Ativo      bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
