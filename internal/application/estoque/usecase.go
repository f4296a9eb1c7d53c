// Package estoque implementa o lançamento de notas de entrada e saída e a
// manutenção do saldo desnormalizado dos produtos. Todo lançamento roda em uma
// única transação com bloqueio de linha (SELECT ... FOR UPDATE) em cada produto
// tocado, fechando a corrida entre verificação de saldo e decremento.
package estoque

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// NotaUseCase lança e consulta notas de movimentação.
type NotaUseCase struct {
	txRunner TxRunner
	notaRepo repository.NotaRepository
	userRepo repository.UserRepository

	now func() time.Time
}

// NewNotaUseCase constrói o caso de uso do livro de estoque.
func NewNotaUseCase(txRunner TxRunner, notaRepo repository.NotaRepository, userRepo repository.UserRepository) *NotaUseCase {
	return &NotaUseCase{
		txRunner: txRunner,
		notaRepo: notaRepo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// CriarEntrada lança uma nota de ENTRADA: valida cabeçalho e linhas, resolve
// cada produto pelo código criando-o quando não existe (saldo inicia em zero),
// calcula totais e, na mesma transação, grava nota, itens, movimentações e
// incrementa o saldo de cada produto.
func (uc *NotaUseCase) CriarEntrada(ctx context.Context, userID string, in dto.CriarNotaEntradaRequest) (*dto.NotaResponse, error) {
	if strings.TrimSpace(in.Numero) == "" || len(in.Produtos) == 0 {
		return nil, domain.Validationf("Número da nota e produtos são obrigatórios")
	}
	for _, item := range in.Produtos {
		if strings.TrimSpace(item.Codigo) == "" || strings.TrimSpace(item.Nome) == "" || !item.Quantidade.GreaterThan(decimal.Zero) {
			return nil, domain.Validationf("Produto com código %s: código, nome e quantidade são obrigatórios", item.Codigo)
		}
	}

	now := uc.now()
	data := now
	if in.Data != nil {
		data = *in.Data
	}

	nota := &entity.NotaMovimentacao{
		ID:           uuid.New().String(),
		Numero:       strings.TrimSpace(in.Numero),
		Tipo:         entity.TipoNotaEntrada,
		UserID:       userID,
		FornecedorID: in.FornecedorID,
		Observacoes:  in.Observacoes,
		Data:         data,
		CreatedAt:    now,
		ValorTotal:   decimal.Zero,
	}

	err := uc.txRunner.Run(ctx, func(
		notaRepo repository.NotaRepository,
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentacaoRepository,
	) error {
		if err := uc.verificarNumeroLivre(ctx, notaRepo, nota.Numero); err != nil {
			return err
		}

		// Resolve produtos com a linha bloqueada e monta os itens na ordem
		// enviada. O mesmo código repetido na nota resolve uma única vez e
		// acumula no mesmo produto.
		resolvidos := make(map[string]*entity.Produto, len(in.Produtos))
		ordem := make([]*entity.Produto, 0, len(in.Produtos))
		for _, item := range in.Produtos {
			produto, ok := resolvidos[item.Codigo]
			if !ok {
				var err error
				produto, err = uc.obterOuCriarProduto(ctx, produtoRepo, item, now)
				if err != nil {
					return err
				}
				resolvidos[item.Codigo] = produto
				ordem = append(ordem, produto)
			}
			valorUnitario := produto.Preco
			if item.Preco != nil {
				valorUnitario = *item.Preco
			}
			valorItem := valorUnitario.Mul(item.Quantidade)
			nota.ValorTotal = nota.ValorTotal.Add(valorItem)
			nota.Itens = append(nota.Itens, entity.ItemNota{
				ID:            uuid.New().String(),
				NotaID:        nota.ID,
				ProdutoID:     produto.ID,
				Quantidade:    item.Quantidade,
				ValorUnitario: valorUnitario,
				ValorTotal:    valorItem,
				Produto:       produto,
			})
			produto.Quantidade = produto.Quantidade.Add(item.Quantidade)
			produto.UpdatedAt = now
		}

		// Cabeçalho e itens primeiro; depois um ajuste de saldo por produto e
		// uma movimentação por linha.
		if err := notaRepo.Create(ctx, nota); err != nil {
			return err
		}
		for _, produto := range ordem {
			if err := produtoRepo.AtualizarQuantidade(ctx, produto.ID, produto.Quantidade); err != nil {
				return err
			}
		}
		for i := range nota.Itens {
			item := &nota.Itens[i]
			mov := &entity.MovimentacaoEstoque{
				ID:            uuid.New().String(),
				ProdutoID:     item.ProdutoID,
				NotaID:        nota.ID,
				Tipo:          entity.TipoNotaEntrada,
				Quantidade:    item.Quantidade,
				ValorUnitario: item.ValorUnitario,
				Observacao:    fmt.Sprintf("Entrada via nota %s", nota.Numero),
				CreatedAt:     now,
			}
			if err := movRepo.Create(ctx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.anexarUsuario(ctx, nota)
	return dto.ToNotaResponse(nota), nil
}

// CriarSaida lança uma nota de SAIDA: toda linha precisa resolver para um
// produto existente e com saldo suficiente; qualquer falha rejeita a nota
// inteira sem efeito parcial. O preço da linha é sempre o preço atual do produto.
func (uc *NotaUseCase) CriarSaida(ctx context.Context, userID string, in dto.CriarNotaSaidaRequest) (*dto.NotaResponse, error) {
	return uc.lancarSaida(ctx, userID, saidaInput{
		Numero:       in.Numero,
		Motivo:       in.Motivo,
		Destinatario: in.Destinatario,
		Data:         in.Data,
		Observacoes:  in.Observacoes,
		Produtos:     in.Produtos,
	})
}

// SaidaParcial lança uma nova nota de SAIDA derivada de uma nota existente.
// A referência é textual: motivo SAIDA_PARCIAL e observação citando o número
// de origem. Não há vínculo estrutural com os itens originais.
func (uc *NotaUseCase) SaidaParcial(ctx context.Context, userID, notaID string, in dto.SaidaParcialRequest) (*dto.NotaResponse, error) {
	if len(in.Produtos) == 0 {
		return nil, domain.Validationf("Lista de produtos é obrigatória")
	}
	if strings.TrimSpace(in.NumeroNotaSaida) == "" {
		return nil, domain.Validationf("Número da nota de saída é obrigatório")
	}
	original, err := uc.notaRepo.GetByID(ctx, notaID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, domain.ErrNotFound
	}

	observacoes := fmt.Sprintf("Saída parcial da nota %s.", original.Numero)
	if in.Observacoes != "" {
		observacoes += " " + in.Observacoes
	}
	return uc.lancarSaida(ctx, userID, saidaInput{
		Numero:      in.NumeroNotaSaida,
		Motivo:      entity.MotivoSaidaParcial,
		Observacoes: observacoes,
		Produtos:    in.Produtos,
	})
}

type saidaInput struct {
	Numero       string
	Motivo       string
	Destinatario string
	Data         *time.Time
	Observacoes  string
	Produtos     []dto.ItemSaidaRequest
}

func (uc *NotaUseCase) lancarSaida(ctx context.Context, userID string, in saidaInput) (*dto.NotaResponse, error) {
	if strings.TrimSpace(in.Numero) == "" || len(in.Produtos) == 0 {
		return nil, domain.Validationf("Número da nota e produtos são obrigatórios")
	}
	for _, item := range in.Produtos {
		if strings.TrimSpace(item.Codigo) == "" || !item.Quantidade.GreaterThan(decimal.Zero) {
			return nil, domain.Validationf("Código e quantidade são obrigatórios para todos os produtos")
		}
	}

	now := uc.now()
	data := now
	if in.Data != nil {
		data = *in.Data
	}

	nota := &entity.NotaMovimentacao{
		ID:           uuid.New().String(),
		Numero:       strings.TrimSpace(in.Numero),
		Tipo:         entity.TipoNotaSaida,
		UserID:       userID,
		Motivo:       in.Motivo,
		Destinatario: in.Destinatario,
		Observacoes:  in.Observacoes,
		Data:         data,
		CreatedAt:    now,
		ValorTotal:   decimal.Zero,
	}

	err := uc.txRunner.Run(ctx, func(
		notaRepo repository.NotaRepository,
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentacaoRepository,
	) error {
		if err := uc.verificarNumeroLivre(ctx, notaRepo, nota.Numero); err != nil {
			return err
		}

		// Verifica disponibilidade com a linha bloqueada; saldo exatamente igual
		// ao solicitado passa. O mesmo código repetido na nota resolve uma
		// única vez e cada linha debita contra o saldo já descontado das
		// linhas anteriores.
		resolvidos := make(map[string]*entity.Produto, len(in.Produtos))
		ordem := make([]*entity.Produto, 0, len(in.Produtos))
		for _, item := range in.Produtos {
			produto, ok := resolvidos[item.Codigo]
			if !ok {
				var err error
				produto, err = produtoRepo.GetByCodigoForUpdate(ctx, item.Codigo)
				if err != nil {
					return err
				}
				if produto == nil {
					return &domain.ProdutoNaoEncontradoError{Codigo: item.Codigo}
				}
				resolvidos[item.Codigo] = produto
				ordem = append(ordem, produto)
			}
			if produto.Quantidade.LessThan(item.Quantidade) {
				return &domain.EstoqueInsuficienteError{
					Produto:    produto.Nome,
					Disponivel: produto.Quantidade,
					Solicitado: item.Quantidade,
				}
			}
			produto.Quantidade = produto.Quantidade.Sub(item.Quantidade)
			produto.UpdatedAt = now
			valorItem := produto.Preco.Mul(item.Quantidade)
			nota.ValorTotal = nota.ValorTotal.Add(valorItem)
			nota.Itens = append(nota.Itens, entity.ItemNota{
				ID:            uuid.New().String(),
				NotaID:        nota.ID,
				ProdutoID:     produto.ID,
				Quantidade:    item.Quantidade,
				ValorUnitario: produto.Preco,
				ValorTotal:    valorItem,
				Produto:       produto,
			})
		}

		if err := notaRepo.Create(ctx, nota); err != nil {
			return err
		}
		for _, produto := range ordem {
			if err := produtoRepo.AtualizarQuantidade(ctx, produto.ID, produto.Quantidade); err != nil {
				return err
			}
		}
		for i := range nota.Itens {
			item := &nota.Itens[i]
			observacao := fmt.Sprintf("Saída via nota %s", nota.Numero)
			if nota.Motivo != "" {
				observacao += " - " + nota.Motivo
			}
			mov := &entity.MovimentacaoEstoque{
				ID:            uuid.New().String(),
				ProdutoID:     item.ProdutoID,
				NotaID:        nota.ID,
				Tipo:          entity.TipoNotaSaida,
				Quantidade:    item.Quantidade,
				ValorUnitario: item.ValorUnitario,
				Observacao:    observacao,
				CreatedAt:     now,
			}
			if err := movRepo.Create(ctx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.anexarUsuario(ctx, nota)
	return dto.ToNotaResponse(nota), nil
}

// verificarNumeroLivre rejeita números de nota já usados. A constraint única do
// banco cobre a corrida entre duas transações com o mesmo número.
func (uc *NotaUseCase) verificarNumeroLivre(ctx context.Context, notaRepo repository.NotaRepository, numero string) error {
	existente, err := notaRepo.GetByNumero(ctx, numero)
	if err != nil {
		return err
	}
	if existente != nil {
		return domain.ErrDuplicate
	}
	return nil
}

// obterOuCriarProduto resolve a linha de entrada para um produto, criando-o
// com saldo zero quando o código ainda não existe. Operação nomeada de
// propósito: a auto-criação faz parte do contrato da entrada.
func (uc *NotaUseCase) obterOuCriarProduto(ctx context.Context, produtoRepo repository.ProdutoRepository, item dto.ItemEntradaRequest, now time.Time) (*entity.Produto, error) {
	produto, err := produtoRepo.GetByCodigoForUpdate(ctx, item.Codigo)
	if err != nil {
		return nil, err
	}
	if produto != nil {
		return produto, nil
	}

	unidade := item.Unidade
	if unidade == "" {
		unidade = "UN"
	}
	preco := decimal.Zero
	if item.Preco != nil {
		preco = *item.Preco
	}
	produto = &entity.Produto{
		ID:         uuid.New().String(),
		Codigo:     item.Codigo,
		Nome:       item.Nome,
		Descricao:  item.Descricao,
		Unidade:    unidade,
		Preco:      preco,
		Quantidade: decimal.Zero,
		Ativo:      true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := produtoRepo.Create(ctx, produto); err != nil {
		return nil, err
	}
	return produto, nil
}

// anexarUsuario completa a nota com o usuário para a resposta materializada.
// Falha aqui não invalida o lançamento já commitado.
func (uc *NotaUseCase) anexarUsuario(ctx context.Context, nota *entity.NotaMovimentacao) {
	if user, err := uc.userRepo.GetByID(ctx, nota.UserID); err == nil && user != nil {
		nota.User = user
	}
}

// Listar devolve notas paginadas com filtros de tipo e número.
func (uc *NotaUseCase) Listar(ctx context.Context, filtro repository.NotaFilter, page dto.PageRequest) (*dto.NotaListResponse, error) {
	page.Normalize()
	notas, err := uc.notaRepo.List(ctx, filtro, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.notaRepo.Count(ctx, filtro)
	if err != nil {
		return nil, err
	}
	out := &dto.NotaListResponse{
		Notas:      make([]dto.NotaResponse, 0, len(notas)),
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}
	for _, n := range notas {
		out.Notas = append(out.Notas, *dto.ToNotaResponse(n))
	}
	return out, nil
}

// Buscar devolve uma nota por ID com itens, produtos e usuário.
func (uc *NotaUseCase) Buscar(ctx context.Context, id string) (*dto.NotaResponse, error) {
	nota, err := uc.notaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if nota == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToNotaResponse(nota), nil
}
