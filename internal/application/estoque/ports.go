package estoque

import (
	"context"

	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Garante atomicidade do lançamento de
// notas: ou a nota, os itens, as movimentações e os ajustes de saldo entram
// juntos, ou nada entra.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		notaRepo repository.NotaRepository,
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentacaoRepository,
	) error) error
}
