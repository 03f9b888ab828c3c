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

	"github.com/jhoicas/inventory-intel/internal/application/insights"
	"github.com/jhoicas/inventory-intel/internal/domain/intelligence"
	"github.com/jhoicas/inventory-intel/internal/domain/repository"
	"github.com/jhoicas/inventory-intel/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/inventory-intel/internal/infrastructure/pdf"
	"github.com/jhoicas/inventory-intel/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventory-intel/internal/interfaces/http"
	"github.com/jhoicas/inventory-intel/pkg/config"
	"github.com/jhoicas/inventory-intel/pkg/logger"
)

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

	// Fuente de datos: PostgreSQL si está configurado, si no el snapshot demo
	// en memoria (modo desarrollo).
	var (
		productRepo  repository.ProductRepository
		movementRepo repository.MovementRepository
	)
	if cfg.DB.Configured() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		productRepo = postgres.NewProductSnapshotRepository(pool)
		movementRepo = postgres.NewMovementSnapshotRepository(pool)
		log.Info().Msg("snapshots desde PostgreSQL")
	} else {
		products, movements := memory.DemoSnapshot()
		productRepo = memory.NewProductRepository(products)
		movementRepo = memory.NewMovementRepository(movements)
		log.Warn().Msg("sin base de datos configurada: usando snapshot demo en memoria")
	}

	// Motor analítico con la calibración externa.
	params := cfg.Engine.Params()
	keywordTable, err := config.LoadKeywordTable(cfg.Engine.CategoryKeywordsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("tabla de palabras clave")
	}
	forecaster := intelligence.NewForecaster(params)
	detector := intelligence.NewDetector(params)
	suggester := intelligence.NewSuggester(keywordTable, params.MaxConfidence)

	// Casos de uso.
	forecastUC := insights.NewForecastUseCase(productRepo, movementRepo, forecaster, cfg.Engine.WorkerLimit)
	anomalyUC := insights.NewAnomalyUseCase(productRepo, movementRepo, detector, cfg.Engine.WorkerLimit)
	alertUC := insights.NewAlertUseCase(productRepo, movementRepo, forecastUC, cfg.Engine.LowStockAlertDays)
	catalogUC := insights.NewCatalogUseCase(productRepo, suggester)
	reportGen := infrapdf.NewReplenishmentReportGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Intel API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ForecastUC: forecastUC,
		AnomalyUC:  anomalyUC,
		AlertUC:    alertUC,
		CatalogUC:  catalogUC,
		ReportGen:  reportGen,
		JWTSecret:  cfg.JWT.Secret,
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
