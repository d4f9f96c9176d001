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

	_ "github.com/jhoicas/persianas-api/docs"
	"github.com/jhoicas/persianas-api/internal/application/usecase"
	"github.com/jhoicas/persianas-api/internal/application/wizard"
	infrapdf "github.com/jhoicas/persianas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/persianas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/persianas-api/internal/interfaces/http"
	"github.com/jhoicas/persianas-api/pkg/config"
	"github.com/jhoicas/persianas-api/pkg/logger"
)

// @title           Persianas API
// @version         1.0
// @description     Configuración de producto, motor de precios, asistente e inventario de persianas a la medida.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	catalogRepo := postgres.NewCatalogRepository(pool)
	configRepo := postgres.NewConfigurationRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	cartSink := postgres.NewCartSink(pool)

	pdfGenerator := infrapdf.NewMarotoQuoteGenerator(cfg.App.Name)

	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	configurationUC := usecase.NewConfigurationUseCase(configRepo, catalogRepo, cfg.Pricing.AdjustmentFloor)
	quoteUC := usecase.NewQuoteUseCase(configRepo, catalogRepo, cfg.Pricing.SizeRatePerFoot, pdfGenerator)
	wizardUC := wizard.NewSessionUseCase(configRepo, catalogRepo, cartSink, pdfGenerator, cfg.Pricing.SizeRatePerFoot)

	inventoryUC, err := usecase.NewInventoryUseCase(ctx, inventoryRepo, configRepo, catalogRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("recargar inventario")
	}

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
		Title:    "Persianas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:       catalogUC,
		ConfigurationUC: configurationUC,
		QuoteUC:         quoteUC,
		InventoryUC:     inventoryUC,
		WizardUC:        wizardUC,
		JWTSecret:       cfg.JWT.Secret,
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
