package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovimentacaoEstoque é o registro de livro-razão por linha lançada: cada item de
// nota gera uma movimentação. A soma de ENTRADA menos SAIDA por produto deve
// bater com Produto.Quantidade.
type MovimentacaoEstoque struct {
	ID            string
	ProdutoID     string
	NotaID        string
	Tipo          string // ENTRADA | SAIDA
	Quantidade    decimal.Decimal
	ValorUnitario decimal.Decimal
	Observacao    string
	CreatedAt     time.Time

	Produto *Produto
}
