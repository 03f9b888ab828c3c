package insights_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-intel/internal/application/insights"
	"github.com/jhoicas/inventory-intel/internal/domain/intelligence"
)

func newAlertUseCase(t *testing.T) *insights.AlertUseCase {
	t.Helper()
	products, movements := fixtureRepos()
	forecaster := intelligence.NewForecasterWithClock(intelligence.DefaultParams(), fixedClock)
	forecast := insights.NewForecastUseCase(products, movements, forecaster, 4)
	return insights.NewAlertUseCase(products, movements, forecast, 7)
}

// TestLowStock_SeleccionYPrioridad: alertan los productos bajo umbral o con
// runway corto, ordenados por urgencia y con prioridad 1..n.
func TestLowStock_SeleccionYPrioridad(t *testing.T) {
	uc := newAlertUseCase(t)

	alerts, err := uc.LowStock(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, alerts, 3, "HER-001 tiene stock y runway sanos, no debe alertar")

	var codes []string
	for i, a := range alerts {
		codes = append(codes, a.ProductCode)
		assert.Equal(t, i+1, a.Priority)
	}
	assert.Equal(t, []string{"PIN-005", "ELE-010", "HER-002"}, codes,
		"runway finito más corto primero, sin pronóstico al final")
}

// TestLowStock_SugerenciaDePedido: la cantidad sugerida lleva el stock a 1.5x
// el umbral y el costo estimado es cantidad por precio.
func TestLowStock_SugerenciaDePedido(t *testing.T) {
	uc := newAlertUseCase(t)

	alerts, err := uc.LowStock(context.Background(), 0)
	require.NoError(t, err)

	byCode := make(map[string]int)
	for i, a := range alerts {
		byCode[a.ProductCode] = i
	}

	require.Contains(t, byCode, "HER-002")
	her := alerts[byCode["HER-002"]]
	// ideal = ceil(8 * 1.5) = 12; sugerido = 12 - 3 = 9.
	assert.Equal(t, 9, her.SuggestedOrderQty)
	assert.True(t, her.EstimatedCost.Equal(decimal.NewFromInt(108000)),
		"costo estimado = 9 x 12000, obtuve %s", her.EstimatedCost)
	assert.Equal(t, "unknown", her.Runway)

	require.Contains(t, byCode, "ELE-010")
	ele := alerts[byCode["ELE-010"]]
	assert.Equal(t, 0, ele.SuggestedOrderQty, "stock sobre el ideal no sugiere pedido")
	assert.True(t, ele.EstimatedCost.IsZero())
	require.NotNil(t, ele.DaysRemaining)
	assert.Equal(t, 5, *ele.DaysRemaining)
}

// TestLowStock_VentanaPersonalizada: con una ventana de 1 día el runway de 5
// días deja de alertar; el producto bajo umbral alerta siempre.
func TestLowStock_VentanaPersonalizada(t *testing.T) {
	uc := newAlertUseCase(t)

	alerts, err := uc.LowStock(context.Background(), 1)
	require.NoError(t, err)

	var codes []string
	for _, a := range alerts {
		codes = append(codes, a.ProductCode)
	}
	assert.NotContains(t, codes, "ELE-010", "runway de 5 días no entra en una ventana de 1")
	assert.Contains(t, codes, "HER-002", "el umbral de stock no depende de la ventana")
}
