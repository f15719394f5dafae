package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/asplot/plotshop-api/internal/application/analytics"
	"github.com/asplot/plotshop-api/internal/application/auth"
	"github.com/asplot/plotshop-api/internal/application/inventory"
	"github.com/asplot/plotshop-api/internal/application/sales"
	"github.com/asplot/plotshop-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MaterialUC    *usecase.MaterialUseCase
	ClientUC      *usecase.ClientUseCase
	ProjectUC     *usecase.ProjectUseCase
	PlanUC        *usecase.PlanUseCase
	UserUC        *usecase.UserUseCase
	Ledger        *inventory.LedgerUseCase
	Replenishment *inventory.ReplenishmentUseCase
	CreateSale    *sales.CreateSaleUseCase
	ManageSale    *sales.ManageSaleUseCase
	Receipt       *sales.ReceiptUseCase
	AuthUC        *auth.AuthUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Materials + inventario por material (protegido)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.Replenishment)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", RequireRole("administrador"), materialHandler.Deactivate)
	materials.Get("/:id/inventory", inventoryHandler.Get)
	materials.Post("/:id/inventory/adjust", inventoryHandler.Adjust)

	// Inventario global (protegido)
	invGroup := protected.Group("/inventory")
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/low-stock", inventoryHandler.LowStock)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.ManageSale, deps.Receipt)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/pdf", saleHandler.ReceiptPDF)
	salesGroup.Post("/:id/cancel", RequireRole("administrador", "laboral"), saleHandler.Cancel)
	salesGroup.Delete("/:id/lines/:lineID", RequireRole("administrador", "laboral"), saleHandler.RemoveLine)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", RequireRole("administrador"), clientHandler.Delete)

	// Projects + planos por proyecto (protegido)
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	planHandler := NewPlanHandler(deps.PlanUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", RequireRole("administrador"), projectHandler.Delete)
	projects.Get("/:id/plans", planHandler.ListByProject)

	// Plans (protegido)
	plans := protected.Group("/plans")
	plans.Post("/", planHandler.Create)
	plans.Get("/:id", planHandler.GetByID)
	plans.Delete("/:id", planHandler.Delete)
	protected.Get("/plan-types", planHandler.ListTypes)

	// Users (solo administrador)
	users := protected.Group("/users", RequireRole("administrador"))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Deactivate)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
