package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/estoque"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// NotaHandler trata as requisições HTTP de notas de movimentação (protegido).
type NotaHandler struct {
	uc *estoque.NotaUseCase
}

// NewNotaHandler constrói o handler.
func NewNotaHandler(uc *estoque.NotaUseCase) *NotaHandler {
	return &NotaHandler{uc: uc}
}

// CriarEntrada godoc
// @Summary      Lançar nota de entrada
// @Description  Soma as quantidades ao estoque; produtos inexistentes são criados pelo código.
// @Tags         notas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarNotaEntradaRequest  true  "Nota de entrada"
// @Success      201   {object}  dto.NotaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /notas/entrada [post]
func (h *NotaHandler) CriarEntrada(c *fiber.Ctx) error {
	var in dto.CriarNotaEntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(newError("INVALID_BODY", "corpo inválido"))
	}
	out, err := h.uc.CriarEntrada(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CriarSaida godoc
// @Summary      Lançar nota de saída
// @Description  Subtrai as quantidades do estoque; falha sem efeitos se faltar saldo.
// @Tags         notas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarNotaSaidaRequest  true  "Nota de saída"
// @Success      201   {object}  dto.NotaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /notas/saida [post]
func (h *NotaHandler) CriarSaida(c *fiber.Ctx) error {
	var in dto.CriarNotaSaidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(newError("INVALID_BODY", "corpo inválido"))
	}
	out, err := h.uc.CriarSaida(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SaidaParcial godoc
// @Summary      Lançar saída parcial a partir de uma nota
// @Description  Cria uma nova nota de saída referenciando a nota de origem nas observações.
// @Tags         notas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da nota de origem"
// @Param        body  body  dto.SaidaParcialRequest  true  "Itens da saída parcial"
// @Success      201   {object}  dto.NotaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /notas/{id}/saida-parcial [post]
func (h *NotaHandler) SaidaParcial(c *fiber.Ctx) error {
	var in dto.SaidaParcialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(newError("INVALID_BODY", "corpo inválido"))
	}
	out, err := h.uc.SaidaParcial(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar notas
// @Tags         notas
// @Security     Bearer
// @Produce      json
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Itens por página"  default(20)
// @Param        tipo    query  string  false  "ENTRADA ou SAIDA"
// @Param        search  query  string  false  "Busca por número"
// @Success      200     {object}  dto.NotaListResponse
// @Router       /notas [get]
func (h *NotaHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(newError("INVALID_QUERY", "parâmetros inválidos"))
	}
	filtro := repository.NotaFilter{
		Tipo:   c.Query("tipo"),
		Numero: page.Search,
	}
	out, err := h.uc.Listar(c.UserContext(), filtro, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Buscar godoc
// @Summary      Obter nota por ID
// @Tags         notas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da nota"
// @Success      200  {object}  dto.NotaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /notas/{id} [get]
func (h *NotaHandler) Buscar(c *fiber.Ctx) error {
	out, err := h.uc.Buscar(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
