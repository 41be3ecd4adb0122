package http

import (
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/morefix-stock/internal/application/analytics"
	"github.com/jhoicas/morefix-stock/internal/application/assistant"
	"github.com/jhoicas/morefix-stock/internal/application/auth"
	"github.com/jhoicas/morefix-stock/internal/application/chatbot"
	"github.com/jhoicas/morefix-stock/internal/application/report"
	"github.com/jhoicas/morefix-stock/internal/application/usecase"
	"github.com/jhoicas/morefix-stock/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	ProductUC   *usecase.ProductUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *report.UseCase
	Interpreter *chatbot.Interpreter
	AssistantUC *assistant.UseCase // nil: /api/chat/assistant responde 503
	ChatLog     ChatLog
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
	WriteLock   sync.Locker // compartido con el intérprete
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token de administrador)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin))
	writes := SerializeWrites(deps.WriteLock)

	categories := protected.Group("/categories", writes)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)
	categories.Get("/:id/products", categoryHandler.Products)

	suppliers := protected.Group("/suppliers", writes)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Las rutas estáticas van antes de /:id
	products := protected.Group("/products", writes)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/out-of-stock", productHandler.OutOfStock)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Chat: el intérprete toma el cerrojo de escritura por su cuenta.
	chat := protected.Group("/chat")
	chatHandler := NewChatHandler(deps.Interpreter, deps.AssistantUC, deps.ChatLog)
	chat.Post("/command", chatHandler.Command)
	chat.Post("/assistant", chatHandler.Assistant)
	chat.Get("/messages", chatHandler.Messages)

	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory.pdf", reportHandler.PDF)
	reports.Get("/inventory.xlsx", reportHandler.XLSX)
}
