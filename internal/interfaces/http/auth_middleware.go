package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// Locals keys preenchidas pelo middleware de autenticação.
const (
	LocalUserID    = "user_id"
	LocalUserLogin = "user_login"
	LocalToken     = "token"
)

// Authenticator resolve um token de sessão para o usuário dono dela.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.User, *entity.Session, error)
}

// AuthMiddleware valida o Bearer token contra o armazenamento de sessões e
// injeta usuário e token em c.Locals. Sessão ausente, inválida ou expirada → 401.
func AuthMiddleware(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := bearerToken(c)
		if tok == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(newError("MISSING_TOKEN", "header Authorization: Bearer <token> requerido"))
		}
		user, _, err := auth.Authenticate(c.UserContext(), tok)
		if err != nil {
			return respondError(c, err)
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserLogin, user.Email)
		c.Locals(LocalToken, tok)
		return c.Next()
	}
}

// bearerToken extrai o token do header Authorization; vazio quando ausente ou malformado.
func bearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetToken devolve o token de sessão do contexto (depois do middleware de auth).
func GetToken(c *fiber.Ctx) string {
	v := c.Locals(LocalToken)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
