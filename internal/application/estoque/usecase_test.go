package estoque

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

// memStore guarda o estado compartilhado pelos repositórios fake. O TxRunner
// fake tira um snapshot antes do callback e restaura em caso de erro, imitando
// o rollback da transação real.
type memStore struct {
	produtos []*entity.Produto
	notas    []*entity.NotaMovimentacao
	movs     []*entity.MovimentacaoEstoque
	users    map[string]*entity.User
}

func (s *memStore) clone() *memStore {
	c := &memStore{users: s.users}
	for _, p := range s.produtos {
		cp := *p
		c.produtos = append(c.produtos, &cp)
	}
	c.notas = append([]*entity.NotaMovimentacao(nil), s.notas...)
	c.movs = append([]*entity.MovimentacaoEstoque(nil), s.movs...)
	return c
}

func (s *memStore) produtoPorCodigo(codigo string) *entity.Produto {
	for _, p := range s.produtos {
		if p.Codigo == codigo {
			return p
		}
	}
	return nil
}

type memProdutoRepo struct{ s *memStore }

func (r *memProdutoRepo) Create(_ context.Context, p *entity.Produto) error {
	if r.s.produtoPorCodigo(p.Codigo) != nil {
		return domain.ErrDuplicate
	}
	cp := *p
	r.s.produtos = append(r.s.produtos, &cp)
	return nil
}

func (r *memProdutoRepo) GetByID(_ context.Context, id string) (*entity.Produto, error) {
	for _, p := range r.s.produtos {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProdutoRepo) GetByCodigo(_ context.Context, codigo string) (*entity.Produto, error) {
	if p := r.s.produtoPorCodigo(codigo); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProdutoRepo) GetByCodigoForUpdate(ctx context.Context, codigo string) (*entity.Produto, error) {
	return r.GetByCodigo(ctx, codigo)
}

func (r *memProdutoRepo) Update(_ context.Context, p *entity.Produto) error {
	for _, cur := range r.s.produtos {
		if cur.ID == p.ID {
			*cur = *p
		}
	}
	return nil
}

func (r *memProdutoRepo) AtualizarQuantidade(_ context.Context, id string, quantidade decimal.Decimal) error {
	for _, p := range r.s.produtos {
		if p.ID == id {
			p.Quantidade = quantidade
		}
	}
	return nil
}

func (r *memProdutoRepo) List(_ context.Context, search string, limit, offset int) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range r.s.produtos {
		if p.Ativo && (search == "" || strings.Contains(p.Nome, search) || strings.Contains(p.Codigo, search)) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProdutoRepo) Count(ctx context.Context, search string) (int, error) {
	list, _ := r.List(ctx, search, 0, 0)
	return len(list), nil
}

type memNotaRepo struct{ s *memStore }

func (r *memNotaRepo) Create(_ context.Context, n *entity.NotaMovimentacao) error {
	for _, cur := range r.s.notas {
		if cur.Numero == n.Numero {
			return domain.ErrDuplicate
		}
	}
	r.s.notas = append(r.s.notas, n)
	return nil
}

func (r *memNotaRepo) GetByID(_ context.Context, id string) (*entity.NotaMovimentacao, error) {
	for _, n := range r.s.notas {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, nil
}

func (r *memNotaRepo) GetByNumero(_ context.Context, numero string) (*entity.NotaMovimentacao, error) {
	for _, n := range r.s.notas {
		if n.Numero == numero {
			return n, nil
		}
	}
	return nil, nil
}

func (r *memNotaRepo) List(_ context.Context, filtro repository.NotaFilter, limit, offset int) ([]*entity.NotaMovimentacao, error) {
	var out []*entity.NotaMovimentacao
	for i := len(r.s.notas) - 1; i >= 0; i-- {
		n := r.s.notas[i]
		if filtro.Tipo != "" && n.Tipo != filtro.Tipo {
			continue
		}
		if filtro.Numero != "" && !strings.Contains(n.Numero, filtro.Numero) {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *memNotaRepo) Count(ctx context.Context, filtro repository.NotaFilter) (int, error) {
	list, _ := r.List(ctx, filtro, 0, 0)
	return len(list), nil
}

type memMovRepo struct{ s *memStore }

func (r *memMovRepo) Create(_ context.Context, m *entity.MovimentacaoEstoque) error {
	r.s.movs = append(r.s.movs, m)
	return nil
}

func (r *memMovRepo) List(_ context.Context, _ repository.MovimentacaoFilter, _, _ int) ([]*entity.MovimentacaoEstoque, error) {
	return r.s.movs, nil
}

func (r *memMovRepo) Count(_ context.Context, _ repository.MovimentacaoFilter) (int, error) {
	return len(r.s.movs), nil
}

func (r *memMovRepo) CountByTipo(_ context.Context, _ repository.MovimentacaoFilter, tipo string) (int, error) {
	n := 0
	for _, m := range r.s.movs {
		if m.Tipo == tipo {
			n++
		}
	}
	return n, nil
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.s.users[id], nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.users[u.ID] = u
	return nil
}

// memTxRunner roda o callback sobre o estado compartilhado e desfaz tudo se
// ele devolver erro.
type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(
	notaRepo repository.NotaRepository,
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentacaoRepository,
) error) error {
	snap := t.s.clone()
	if err := fn(&memNotaRepo{t.s}, &memProdutoRepo{t.s}, &memMovRepo{t.s}); err != nil {
		*t.s = *snap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testUserID = "00000000-0000-0000-0000-000000000001"

var instanteFixo = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func novoAmbiente(t *testing.T) (*NotaUseCase, *memStore) {
	t.Helper()
	store := &memStore{users: map[string]*entity.User{
		testUserID: {ID: testUserID, Email: "operador@example.com", Name: "operador", Active: true},
	}}
	uc := NewNotaUseCase(&memTxRunner{store}, &memNotaRepo{store}, &memUserRepo{store})
	uc.now = func() time.Time { return instanteFixo }
	return uc, store
}

func produtoSeed(store *memStore, codigo string, preco, quantidade string) *entity.Produto {
	p := &entity.Produto{
		ID:         "prod-" + codigo,
		Codigo:     codigo,
		Nome:       "Produto " + codigo,
		Unidade:    "UN",
		Preco:      decimal.RequireFromString(preco),
		Quantidade: decimal.RequireFromString(quantidade),
		Ativo:      true,
	}
	store.produtos = append(store.produtos, p)
	return p
}

func linhaEntrada(codigo, quantidade string) dto.ItemEntradaRequest {
	return dto.ItemEntradaRequest{
		Codigo:     codigo,
		Nome:       "Produto " + codigo,
		Quantidade: decimal.RequireFromString(quantidade),
	}
}

func linhaSaida(codigo, quantidade string) dto.ItemSaidaRequest {
	return dto.ItemSaidaRequest{Codigo: codigo, Quantidade: decimal.RequireFromString(quantidade)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestCriarEntrada_SomaSaldoEGeraMovimentacao(t *testing.T) {
	uc, store := novoAmbiente(t)
	produtoSeed(store, "P-001", "10.50", "10")

	out, err := uc.CriarEntrada(context.Background(), testUserID, dto.CriarNotaEntradaRequest{
		Numero:   "E-001",
		Produtos: []dto.ItemEntradaRequest{linhaEntrada("P-001", "5")},
	})
	require.NoError(t, err)

	assert.Equal(t, "E-001", out.Numero)
	assert.Equal(t, entity.TipoNotaEntrada, out.Tipo)
	assert.True(t, out.ValorTotal.Equal(decimal.RequireFromString("52.50")),
		"valor total deve ser preço do produto × quantidade")

	produto := store.produtoPorCodigo("P-001")
	assert.True(t, produto.Quantidade.Equal(decimal.RequireFromString("15")),
		"entrada de 5 sobre saldo 10 deve deixar 15")

	require.Len(t, store.movs, 1)
	assert.Equal(t, entity.TipoNotaEntrada, store.movs[0].Tipo)
	assert.Contains(t, store.movs[0].Observacao, "E-001")
}

func TestCriarEntrada_CriaProdutoInexistente(t *testing.T) {
	uc, store := novoAmbiente(t)

	preco := decimal.RequireFromString("3.25")
	out, err := uc.CriarEntrada(context.Background(), testUserID, dto.CriarNotaEntradaRequest{
		Numero: "E-002",
		Produtos: []dto.ItemEntradaRequest{{
			Codigo:     "NOVO-01",
			Nome:       "Produto Novo",
			Unidade:    "CX",
			Preco:      &preco,
			Quantidade: decimal.RequireFromString("4"),
		}},
	})
	require.NoError(t, err)

	produto := store.produtoPorCodigo("NOVO-01")
	require.NotNil(t, produto, "a entrada deve criar o produto pelo código")
	assert.Equal(t, "Produto Novo", produto.Nome)
	assert.Equal(t, "CX", produto.Unidade)
	assert.True(t, produto.Preco.Equal(preco))
	assert.True(t, produto.Quantidade.Equal(decimal.RequireFromString("4")),
		"produto novo nasce com saldo zero e recebe a quantidade da entrada")
	assert.True(t, out.ValorTotal.Equal(decimal.RequireFromString("13")))
}

func TestCriarEntrada_UnidadePadraoUN(t *testing.T) {
	uc, store := novoAmbiente(t)

	_, err := uc.CriarEntrada(context.Background(), testUserID, dto.CriarNotaEntradaRequest{
		Numero:   "E-003",
		Produtos: []dto.ItemEntradaRequest{linhaEntrada("SEM-UNIDADE", "1")},
	})
	require.NoError(t, err)
	assert.Equal(t, "UN", store.produtoPorCodigo("SEM-UNIDADE").Unidade)
}

func TestCriarEntrada_NumeroDuplicado_SemEfeitos(t *testing.T) {
	uc, store := novoAmbiente(t)
	produtoSeed(store, "P-001", "10.00", "10")

	_, err := uc.CriarEntrada(context.Background(), testUserID, dto.CriarNotaEntradaRequest{
		Numero:   "E-001",
		Produtos: []dto.ItemEntradaRequest{linhaEntrada("P-001", "5")},
	})
	require.NoError(t, err)

	_, err = uc.CriarEntrada(context.Background(), testUserID, dto.CriarNotaEntradaRequest{
		Numero:   "E-001",
		Produtos: []dto.ItemEntradaRequest{linhaEntrada("P-001", "7")},
	})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	assert.True(t, store.produtoPorCodigo("P-001").Quantidade.Equal(decimal.RequireFromString("15")),
		"lançamento rejeitado não pode alterar saldo")
	assert.Len(t, store.notas, 1)
	assert.Len(t, store.movs, 1)
}

func TestCriarEntrada_Validacao(t *testing.T) {
	uc, _ := novoAmbiente(t)

	_, err := uc.CriarEntrada(context.Background(), testUserID, dto.CriarNotaEntradaRequest{
		Numero: "  ",
		Produtos: []dto.ItemEntradaRequest{
			linhaEntrada("P-001", "1"),
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "número em branco deve ser rejeitado")

	_, err = uc.CriarEntrada(context.Background(), testUserID, dto.CriarNotaEntradaRequest{Numero: "E-010"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lista de produtos vazia deve ser rejeitada")

	_, err = uc.CriarEntrada(context.Background(), testUserID, dto.CriarNotaEntradaRequest{
		Numero:   "E-011",
		Produtos: []dto.ItemEntradaRequest{linhaEntrada("P-001", "0")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade zero deve ser rejeitada")
}

func TestCriarEntrada_PrecoDaLinhaPrevalece(t *testing.T) {
	uc, store := novoAmbiente(t)
	produtoSeed(store, "P-001", "10.00", "0")

	preco := decimal.RequireFromString("8.00")
	out, err := uc.CriarEntrada(context.Background(), testUserID, dto.CriarNotaEntradaRequest{
		Numero: "E-004",
		Produtos: []dto.ItemEntradaRequest{{
			Codigo:     "P-001",
			Nome:       "Produto P-001",
			Preco:      &preco,
			Quantidade: decimal.RequireFromString("2"),
		}},
	})
	require.NoError(t, err)
	assert.True(t, out.ValorTotal.Equal(decimal.RequireFromString("16.00")),
		"preço informado na linha prevalece sobre o preço cadastrado")
}

func TestCriarEntrada_LinhasRepetidasDoMesmoCodigo_Acumulam(t *testing.T) {
	uc, store := novoAmbiente(t)
	produtoSeed(store, "P-001", "10.00", "0")

	out, err := uc.CriarEntrada(context.Background(), testUserID, dto.CriarNotaEntradaRequest{
		Numero: "E-005",
		Produtos: []dto.ItemEntradaRequest{
			linhaEntrada("P-001", "5"),
			linhaEntrada("P-001", "3"),
		},
	})
	require.NoError(t, err)

	assert.True(t, store.produtoPorCodigo("P-001").Quantidade.Equal(decimal.RequireFromString("8")),
		"duas linhas do mesmo código somam no saldo: 0 + 5 + 3 = 8")
	assert.True(t, out.ValorTotal.Equal(decimal.RequireFromString("80.00")))
	require.Len(t, out.Itens, 2, "cada linha vira um item próprio")
	assert.Len(t, store.movs, 2, "cada linha gera sua movimentação")
}

// ──────────────────────────────────────────────────────────────────────────────
// Saída
// ──────────────────────────────────────────────────────────────────────────────

func TestCriarSaida_SubtraiSaldo(t *testing.T) {
	uc, store := novoAmbiente(t)
	produtoSeed(store, "P-001", "10.00", "10")

	out, err := uc.CriarSaida(context.Background(), testUserID, dto.CriarNotaSaidaRequest{
		Numero:   "S-001",
		Motivo:   "VENDA",
		Produtos: []dto.ItemSaidaRequest{linhaSaida("P-001", "3")},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TipoNotaSaida, out.Tipo)
	assert.True(t, out.ValorTotal.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, store.produtoPorCodigo("P-001").Quantidade.Equal(decimal.RequireFromString("7")),
		"saída de 3 sobre saldo 10 deve deixar 7")

	require.Len(t, store.movs, 1)
	assert.Equal(t, entity.TipoNotaSaida, store.movs[0].Tipo)
	assert.Contains(t, store.movs[0].Observacao, "S-001")
	assert.Contains(t, store.movs[0].Observacao, "VENDA")
}

func TestCriarSaida_SaldoExato_Passa(t *testing.T) {
	uc, store := novoAmbiente(t)
	produtoSeed(store, "P-001", "1.00", "5")

	_, err := uc.CriarSaida(context.Background(), testUserID, dto.CriarNotaSaidaRequest{
		Numero:   "S-002",
		Produtos: []dto.ItemSaidaRequest{linhaSaida("P-001", "5")},
	})
	require.NoError(t, err, "saldo exatamente igual ao solicitado deve passar")
	assert.True(t, store.produtoPorCodigo("P-001").Quantidade.IsZero())
}

func TestCriarSaida_SaldoInsuficiente_FalhaSemEfeitos(t *testing.T) {
	uc, store := novoAmbiente(t)
	produtoSeed(store, "P-001", "1.00", "5")

	_, err := uc.CriarSaida(context.Background(), testUserID, dto.CriarNotaSaidaRequest{
		Numero:   "S-003",
		Produtos: []dto.ItemSaidaRequest{linhaSaida("P-001", "6")},
	})
	require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)

	var insuficiente *domain.EstoqueInsuficienteError
	require.True(t, errors.As(err, &insuficiente))
	assert.Equal(t, "Produto P-001", insuficiente.Produto)
	assert.True(t, insuficiente.Disponivel.Equal(decimal.RequireFromString("5")))
	assert.True(t, insuficiente.Solicitado.Equal(decimal.RequireFromString("6")))

	assert.True(t, store.produtoPorCodigo("P-001").Quantidade.Equal(decimal.RequireFromString("5")),
		"falha na saída não pode alterar saldo")
	assert.Empty(t, store.notas)
	assert.Empty(t, store.movs)
}

func TestCriarSaida_ProdutoInexistente(t *testing.T) {
	uc, store := novoAmbiente(t)

	_, err := uc.CriarSaida(context.Background(), testUserID, dto.CriarNotaSaidaRequest{
		Numero:   "S-004",
		Produtos: []dto.ItemSaidaRequest{linhaSaida("NAO-EXISTE", "1")},
	})
	require.ErrorIs(t, err, domain.ErrNotFound,
		"saída nunca cria produto: código desconhecido é not found")
	assert.Empty(t, store.notas)
}

func TestCriarSaida_MultiplasLinhas_FalhaTotal(t *testing.T) {
	uc, store := novoAmbiente(t)
	produtoSeed(store, "P-001", "1.00", "10")
	produtoSeed(store, "P-002", "1.00", "1")

	_, err := uc.CriarSaida(context.Background(), testUserID, dto.CriarNotaSaidaRequest{
		Numero: "S-005",
		Produtos: []dto.ItemSaidaRequest{
			linhaSaida("P-001", "4"),
			linhaSaida("P-002", "2"),
		},
	})
	require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)

	assert.True(t, store.produtoPorCodigo("P-001").Quantidade.Equal(decimal.RequireFromString("10")),
		"linha válida não pode ter efeito quando outra linha falha")
	assert.Empty(t, store.movs)
}

func TestCriarSaida_LinhasRepetidasDoMesmoCodigo_Acumulam(t *testing.T) {
	uc, store := novoAmbiente(t)
	produtoSeed(store, "P-001", "1.00", "10")

	_, err := uc.CriarSaida(context.Background(), testUserID, dto.CriarNotaSaidaRequest{
		Numero: "S-007",
		Produtos: []dto.ItemSaidaRequest{
			linhaSaida("P-001", "4"),
			linhaSaida("P-001", "4"),
		},
	})
	require.NoError(t, err)

	assert.True(t, store.produtoPorCodigo("P-001").Quantidade.Equal(decimal.RequireFromString("2")),
		"duas linhas do mesmo código debitam no saldo: 10 - 4 - 4 = 2")
	assert.Len(t, store.movs, 2)
}

func TestCriarSaida_LinhasRepetidas_SaldoInsuficienteAcumulado(t *testing.T) {
	uc, store := novoAmbiente(t)
	produtoSeed(store, "P-001", "1.00", "6")

	_, err := uc.CriarSaida(context.Background(), testUserID, dto.CriarNotaSaidaRequest{
		Numero: "S-008",
		Produtos: []dto.ItemSaidaRequest{
			linhaSaida("P-001", "4"),
			linhaSaida("P-001", "4"),
		},
	})
	require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente,
		"a segunda linha debita contra o saldo já descontado pela primeira")

	var insuficiente *domain.EstoqueInsuficienteError
	require.True(t, errors.As(err, &insuficiente))
	assert.True(t, insuficiente.Disponivel.Equal(decimal.RequireFromString("2")),
		"o disponível reportado desconta as linhas anteriores da mesma nota")
	assert.True(t, insuficiente.Solicitado.Equal(decimal.RequireFromString("4")))

	assert.True(t, store.produtoPorCodigo("P-001").Quantidade.Equal(decimal.RequireFromString("6")),
		"falha na saída não pode alterar saldo")
	assert.Empty(t, store.notas)
	assert.Empty(t, store.movs)
}

func TestCriarSaida_NumeroDuplicado(t *testing.T) {
	uc, store := novoAmbiente(t)
	produtoSeed(store, "P-001", "1.00", "10")

	_, err := uc.CriarSaida(context.Background(), testUserID, dto.CriarNotaSaidaRequest{
		Numero:   "S-006",
		Produtos: []dto.ItemSaidaRequest{linhaSaida("P-001", "1")},
	})
	require.NoError(t, err)

	_, err = uc.CriarSaida(context.Background(), testUserID, dto.CriarNotaSaidaRequest{
		Numero:   "S-006",
		Produtos: []dto.ItemSaidaRequest{linhaSaida("P-001", "1")},
	})
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.True(t, store.produtoPorCodigo("P-001").Quantidade.Equal(decimal.RequireFromString("9")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Saída parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestSaidaParcial_ReferenciaNotaDeOrigem(t *testing.T) {
	uc, store := novoAmbiente(t)
	produtoSeed(store, "P-001", "2.00", "10")

	entrada, err := uc.CriarEntrada(context.Background(), testUserID, dto.CriarNotaEntradaRequest{
		Numero:   "E-100",
		Produtos: []dto.ItemEntradaRequest{linhaEntrada("P-001", "5")},
	})
	require.NoError(t, err)

	out, err := uc.SaidaParcial(context.Background(), testUserID, entrada.ID, dto.SaidaParcialRequest{
		NumeroNotaSaida: "S-100",
		Observacoes:     "retirada do cliente",
		Produtos:        []dto.ItemSaidaRequest{linhaSaida("P-001", "2")},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TipoNotaSaida, out.Tipo)
	assert.Equal(t, entity.MotivoSaidaParcial, out.Motivo)
	assert.Contains(t, out.Observacoes, "Saída parcial da nota E-100.")
	assert.Contains(t, out.Observacoes, "retirada do cliente")
	assert.True(t, store.produtoPorCodigo("P-001").Quantidade.Equal(decimal.RequireFromString("13")),
		"10 + 5 de entrada - 2 de saída parcial = 13")
}

func TestSaidaParcial_NotaOrigemInexistente(t *testing.T) {
	uc, _ := novoAmbiente(t)

	_, err := uc.SaidaParcial(context.Background(), testUserID, "nota-fantasma", dto.SaidaParcialRequest{
		NumeroNotaSaida: "S-101",
		Produtos:        []dto.ItemSaidaRequest{linhaSaida("P-001", "1")},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaidaParcial_Validacao(t *testing.T) {
	uc, _ := novoAmbiente(t)

	_, err := uc.SaidaParcial(context.Background(), testUserID, "qualquer", dto.SaidaParcialRequest{
		NumeroNotaSaida: "S-102",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lista de produtos vazia deve ser rejeitada")

	_, err = uc.SaidaParcial(context.Background(), testUserID, "qualquer", dto.SaidaParcialRequest{
		Produtos: []dto.ItemSaidaRequest{linhaSaida("P-001", "1")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "número da nota de saída é obrigatório")
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta
// ──────────────────────────────────────────────────────────────────────────────

func TestListar_FiltraPorTipo(t *testing.T) {
	uc, store := novoAmbiente(t)
	produtoSeed(store, "P-001", "1.00", "10")

	_, err := uc.CriarEntrada(context.Background(), testUserID, dto.CriarNotaEntradaRequest{
		Numero:   "E-200",
		Produtos: []dto.ItemEntradaRequest{linhaEntrada("P-001", "1")},
	})
	require.NoError(t, err)
	_, err = uc.CriarSaida(context.Background(), testUserID, dto.CriarNotaSaidaRequest{
		Numero:   "S-200",
		Produtos: []dto.ItemSaidaRequest{linhaSaida("P-001", "1")},
	})
	require.NoError(t, err)

	out, err := uc.Listar(context.Background(), repository.NotaFilter{Tipo: entity.TipoNotaSaida}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Notas, 1)
	assert.Equal(t, "S-200", out.Notas[0].Numero)
	assert.Equal(t, 1, out.Pagination.Total)
}

func TestBuscar_NotaInexistente(t *testing.T) {
	uc, _ := novoAmbiente(t)

	_, err := uc.Buscar(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuscar_RespostaMaterializada(t *testing.T) {
	uc, store := novoAmbiente(t)
	produtoSeed(store, "P-001", "5.00", "0")

	criada, err := uc.CriarEntrada(context.Background(), testUserID, dto.CriarNotaEntradaRequest{
		Numero:   "E-300",
		Produtos: []dto.ItemEntradaRequest{linhaEntrada("P-001", "2")},
	})
	require.NoError(t, err)
	require.NotNil(t, criada.User, "a resposta do lançamento traz o usuário")
	assert.Equal(t, "operador@example.com", criada.User.Email)

	out, err := uc.Buscar(context.Background(), criada.ID)
	require.NoError(t, err)
	require.Len(t, out.Itens, 1)
	require.NotNil(t, out.Itens[0].Produto)
	assert.Equal(t, "P-001", out.Itens[0].Produto.Codigo)
}
