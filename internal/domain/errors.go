package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("não autorizado")
	ErrEmailAlreadyExists  = errors.New("email já cadastrado")
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente")
)

// EstoqueInsuficienteError indica que uma saída pediu mais do que o disponível.
// Carrega o produto e as quantidades para a mensagem ao cliente (e para os testes).
type EstoqueInsuficienteError struct {
	Produto    string
	Disponivel decimal.Decimal
	Solicitado decimal.Decimal
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("Estoque insuficiente para produto %s. Disponível: %s, Solicitado: %s",
		e.Produto, e.Disponivel.String(), e.Solicitado.String())
}

// Is permite errors.Is(err, ErrEstoqueInsuficiente).
func (e *EstoqueInsuficienteError) Is(target error) bool {
	return target == ErrEstoqueInsuficiente
}

// ProdutoNaoEncontradoError indica que uma linha de nota referencia um código inexistente.
type ProdutoNaoEncontradoError struct {
	Codigo string
}

func (e *ProdutoNaoEncontradoError) Error() string {
	return fmt.Sprintf("Produto com código %s não encontrado", e.Codigo)
}

// Is permite errors.Is(err, ErrNotFound).
func (e *ProdutoNaoEncontradoError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError carrega a mensagem de validação a devolver com HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Validationf constrói um ValidationError com formato.
func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
