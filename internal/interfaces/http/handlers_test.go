package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-intel/internal/application/insights"
	"github.com/jhoicas/inventory-intel/internal/domain/entity"
	"github.com/jhoicas/inventory-intel/internal/domain/intelligence"
	"github.com/jhoicas/inventory-intel/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-intel/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/inventory-intel/internal/interfaces/http"
)

// buildAPIApp levanta la API completa sobre un snapshot en memoria, sin
// autenticación (JWTSecret vacío).
func buildAPIApp() *fiber.App {
	products := []entity.Product{
		{Code: "HER-001", Description: "Martillo de carpintero 16oz", Category: "Herramientas",
			Stock: 24, ReorderThreshold: 10, Price: decimal.NewFromInt(35000)},
		{Code: "HER-002", Description: "Destornillador Phillips #2", Category: "Herramientas",
			Stock: 3, ReorderThreshold: 8, Price: decimal.NewFromInt(12000)},
	}
	now := time.Now()
	var movements []entity.Movement
	for i := 1; i <= 5; i++ {
		movements = append(movements, entity.Movement{
			ID:          "mov-" + string(rune('a'+i-1)),
			ProductCode: "HER-001",
			Type:        entity.MovementTypeOUT,
			Quantity:    2 + i%2,
			Date:        now.AddDate(0, 0, -i),
			CreatedBy:   "test",
		})
	}

	productRepo := memory.NewProductRepository(products)
	movementRepo := memory.NewMovementRepository(movements)
	params := intelligence.DefaultParams()
	forecastUC := insights.NewForecastUseCase(productRepo, movementRepo, intelligence.NewForecaster(params), 4)
	anomalyUC := insights.NewAnomalyUseCase(productRepo, movementRepo, intelligence.NewDetector(params), 4)
	alertUC := insights.NewAlertUseCase(productRepo, movementRepo, forecastUC, params.LowStockAlertDays)
	catalogUC := insights.NewCatalogUseCase(productRepo, intelligence.NewSuggester(nil, params.MaxConfidence))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ForecastUC: forecastUC,
		AnomalyUC:  anomalyUC,
		AlertUC:    alertUC,
		CatalogUC:  catalogUC,
		ReportGen:  pdf.NewReplenishmentReportGenerator("test"),
	})
	return app
}

func TestGetForecast_CodigoNormalizado(t *testing.T) {
	app := buildAPIApp()

	req := httptest.NewRequest(http.MethodGet, "/api/insights/forecast/her-001", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "HER-001", body["product_code"])
	assert.Equal(t, "finite", body["runway"])
}

func TestGetForecast_NoExiste_Retorna404(t *testing.T) {
	app := buildAPIApp()

	req := httptest.NewRequest(http.MethodGet, "/api/insights/forecast/ZZZ-999", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListAlerts_ProductoBajoUmbral(t *testing.T) {
	app := buildAPIApp()

	req := httptest.NewRequest(http.MethodGet, "/api/insights/alerts", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var alerts []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&alerts))
	require.NotEmpty(t, alerts, "HER-002 está bajo el umbral y debe alertar")

	codes := make([]string, 0, len(alerts))
	for _, a := range alerts {
		codes = append(codes, a["product_code"].(string))
	}
	assert.Contains(t, codes, "HER-002")
}

func TestCheckAnomaly_CuerpoInvalido_Retorna400(t *testing.T) {
	app := buildAPIApp()

	req := httptest.NewRequest(http.MethodPost, "/api/insights/anomalies/check",
		strings.NewReader("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckAnomaly_CantidadInvalida_Retorna400(t *testing.T) {
	app := buildAPIApp()

	req := httptest.NewRequest(http.MethodPost, "/api/insights/anomalies/check",
		strings.NewReader(`{"product_code":"HER-001","type":"OUT","quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearch_DevuelveCoincidencias(t *testing.T) {
	app := buildAPIApp()

	req := httptest.NewRequest(http.MethodGet, "/api/products/search?q=martillo", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	results := body["results"].([]interface{})
	require.NotEmpty(t, results)
	first := results[0].(map[string]interface{})
	assert.Equal(t, "HER-001", first["code"])
}

func TestSuggestCategory_DescripcionConEvidencia(t *testing.T) {
	app := buildAPIApp()

	req := httptest.NewRequest(http.MethodPost, "/api/categories/suggest",
		strings.NewReader(`{"description":"Martillo de acero"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string][]map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body["suggestions"], 1)
	assert.Equal(t, "Herramientas", body["suggestions"][0]["category"])
}

func TestRouter_ConJWT_ExigeToken(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})

	req := httptest.NewRequest(http.MethodGet, "/api/insights/forecast", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
