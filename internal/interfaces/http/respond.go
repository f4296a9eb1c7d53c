package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
)

// newError monta o envelope padrão de erro com timestamp ISO-8601.
func newError(code, message string) dto.ErrorResponse {
	return dto.ErrorResponse{
		Success:   false,
		Error:     code,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// respondError traduz erros de domínio para status HTTP e envelope de erro.
// Erros não mapeados viram 500 com mensagem genérica; o detalhe fica no log.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEstoqueInsuficiente):
		return c.Status(fiber.StatusBadRequest).JSON(newError("INSUFFICIENT_STOCK", err.Error()))
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(newError("EMAIL_IN_USE", err.Error()))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(newError("DUPLICATE", err.Error()))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(newError("VALIDATION", err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(newError("UNAUTHORIZED", err.Error()))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(newError("NOT_FOUND", err.Error()))
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("erro interno")
		return c.Status(fiber.StatusInternalServerError).JSON(newError("INTERNAL", "erro interno do servidor"))
	}
}
