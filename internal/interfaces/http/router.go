package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/auth"
	"github.com/stockflow/stockflow-api/internal/application/estoque"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProdutoUC      *usecase.ProdutoUseCase
	FornecedorUC   *usecase.FornecedorUseCase
	NotaUC         *estoque.NotaUseCase
	MovimentacaoUC *usecase.MovimentacaoUseCase
	DashboardUC    *usecase.DashboardUseCase
	AppName        string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"name": deps.AppName, "status": "ok"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer token de sessão)
	protected := app.Group("/", AuthMiddleware(deps.AuthUC))

	authProtected := protected.Group("/auth")
	authProtected.Post("/logout", authHandler.Logout)
	authProtected.Get("/check-session", authHandler.CheckSession)
	authProtected.Get("/me", authHandler.Me)
	authProtected.Put("/profile", authHandler.UpdateProfile)

	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)

	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Criar)
	produtos.Get("/", produtoHandler.Listar)
	produtos.Get("/:id", produtoHandler.Buscar)

	fornecedores := protected.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Post("/", fornecedorHandler.Criar)
	fornecedores.Get("/", fornecedorHandler.Listar)
	fornecedores.Get("/:id", fornecedorHandler.Buscar)

	// As rotas fixas de notas vêm antes de /notas/:id para não serem
	// capturadas pelo parâmetro.
	notas := protected.Group("/notas")
	notaHandler := NewNotaHandler(deps.NotaUC)
	notas.Post("/entrada", notaHandler.CriarEntrada)
	notas.Post("/saida", notaHandler.CriarSaida)
	notas.Get("/", notaHandler.Listar)
	notas.Get("/:id", notaHandler.Buscar)
	notas.Post("/:id/saida-parcial", notaHandler.SaidaParcial)

	movimentacoes := protected.Group("/movimentacoes")
	movimentacaoHandler := NewMovimentacaoHandler(deps.MovimentacaoUC)
	movimentacoes.Get("/", movimentacaoHandler.Listar)
}
