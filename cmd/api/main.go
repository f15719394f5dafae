package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/asplot/plotshop-api/internal/application/analytics"
	"github.com/asplot/plotshop-api/internal/application/auth"
	"github.com/asplot/plotshop-api/internal/application/inventory"
	"github.com/asplot/plotshop-api/internal/application/sales"
	"github.com/asplot/plotshop-api/internal/application/usecase"
	infrapdf "github.com/asplot/plotshop-api/internal/infrastructure/pdf"
	"github.com/asplot/plotshop-api/internal/infrastructure/postgres"
	httpRouter "github.com/asplot/plotshop-api/internal/interfaces/http"
	"github.com/asplot/plotshop-api/pkg/config"
	"github.com/asplot/plotshop-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	materialUC := usecase.NewMaterialUseCase(txRunner, materialRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, clientRepo)
	planUC := usecase.NewPlanUseCase(planRepo, projectRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	ledgerUC := inventory.NewLedgerUseCase(txRunner, materialRepo, invRepo)
	replenishmentUC := inventory.NewReplenishmentUseCase(invRepo)

	createSaleUC := sales.NewCreateSaleUseCase(txRunner, clientRepo)
	manageSaleUC := sales.NewManageSaleUseCase(txRunner, saleRepo, clientRepo)

	// PDF: recibo imprimible de la venta
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	receiptUC := sales.NewReceiptUseCase(manageSaleUC, pdfGenerator, sales.ShopInfo{
		Name:    cfg.Shop.Name,
		Address: cfg.Shop.Address,
		Phone:   cfg.Shop.Phone,
	})

	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, replenishmentUC)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Plotshop API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MaterialUC:    materialUC,
		ClientUC:      clientUC,
		ProjectUC:     projectUC,
		PlanUC:        planUC,
		UserUC:        userUC,
		Ledger:        ledgerUC,
		Replenishment: replenishmentUC,
		CreateSale:    createSaleUC,
		ManageSale:    manageSaleUC,
		Receipt:       receiptUC,
		AuthUC:        authUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
