package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// MovimentacaoHandler trata as requisições HTTP do livro-razão de movimentações (protegido).
type MovimentacaoHandler struct {
	uc *usecase.MovimentacaoUseCase
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(uc *usecase.MovimentacaoUseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar movimentações de estoque
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        page        query  int     false  "Página"  default(1)
// @Param        limit       query  int     false  "Itens por página"  default(20)
// @Param        tipo        query  string  false  "ENTRADA ou SAIDA"
// @Param        produtoId   query  string  false  "Filtra por produto"
// @Param        dataInicio  query  string  false  "Data inicial (RFC 3339)"
// @Param        dataFim     query  string  false  "Data final (RFC 3339)"
// @Success      200         {object}  dto.MovimentacaoListResponse
// @Router       /movimentacoes [get]
func (h *MovimentacaoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(newError("INVALID_QUERY", "parâmetros inválidos"))
	}
	filtro := repository.MovimentacaoFilter{
		Tipo:      c.Query("tipo"),
		ProdutoID: c.Query("produtoId"),
	}
	if v := c.Query("dataInicio"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(newError("INVALID_QUERY", "dataInicio inválida, use RFC 3339"))
		}
		filtro.DataInicio = &t
	}
	if v := c.Query("dataFim"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(newError("INVALID_QUERY", "dataFim inválida, use RFC 3339"))
		}
		filtro.DataFim = &t
	}
	out, err := h.uc.Listar(c.UserContext(), filtro, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
