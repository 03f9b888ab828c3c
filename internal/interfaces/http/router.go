package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-intel/internal/application/insights"
	"github.com/jhoicas/inventory-intel/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ForecastUC *insights.ForecastUseCase
	AnomalyUC  *insights.AnomalyUseCase
	AlertUC    *insights.AlertUseCase
	CatalogUC  *insights.CatalogUseCase
	ReportGen  *pdf.ReplenishmentReportGenerator
	JWTSecret  string // vacío = sin autenticación (modo desarrollo)
}

// Router registra las rutas de la API. Con JWTSecret definido, todos los
// endpoints de negocio exigen Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
	}

	// Insights (pronóstico, anomalías, alertas)
	insightsGroup := api.Group("/insights")
	insightsHandler := NewInsightsHandler(deps.ForecastUC, deps.AnomalyUC, deps.AlertUC, deps.ReportGen)
	insightsGroup.Get("/forecast", insightsHandler.ListForecasts)
	insightsGroup.Get("/forecast/:code", insightsHandler.GetForecast)
	insightsGroup.Get("/anomalies", insightsHandler.ListAnomalies)
	insightsGroup.Post("/anomalies/check", insightsHandler.CheckAnomaly)
	insightsGroup.Get("/alerts", insightsHandler.ListAlerts)
	insightsGroup.Get("/alerts/pdf", insightsHandler.AlertsPDF)

	// Catálogo (búsqueda y clasificación)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products := api.Group("/products")
	products.Get("/search", catalogHandler.Search)
	products.Get("/autocomplete", catalogHandler.Autocomplete)
	api.Post("/categories/suggest", catalogHandler.SuggestCategory)
}
