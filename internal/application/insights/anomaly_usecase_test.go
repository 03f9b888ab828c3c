package insights_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-intel/internal/application/dto"
	"github.com/jhoicas/inventory-intel/internal/application/insights"
	"github.com/jhoicas/inventory-intel/internal/domain"
	"github.com/jhoicas/inventory-intel/internal/domain/intelligence"
)

func newAnomalyUseCase(t *testing.T) *insights.AnomalyUseCase {
	t.Helper()
	products, movements := fixtureRepos()
	detector := intelligence.NewDetector(intelligence.DefaultParams())
	return insights.NewAnomalyUseCase(products, movements, detector, 4)
}

// TestScanAll_SoloLaSalidaAtipica: en el fixture solo la salida de 30 unidades
// de PIN-005 es anómala; los historiales planos nunca alertan.
func TestScanAll_SoloLaSalidaAtipica(t *testing.T) {
	uc := newAnomalyUseCase(t)

	anomalies, err := uc.ScanAll(context.Background())
	require.NoError(t, err)
	require.Len(t, anomalies, 1)

	a := anomalies[0]
	assert.Equal(t, "pin-outlier", a.MovementID)
	assert.Equal(t, "PIN-005", a.ProductCode)
	assert.Equal(t, 30, a.Quantity)
	assert.Contains(t, a.Reason, "alta")
	assert.InDelta(t, 1.0, a.Severity, 1e-9, "un z-score enorme satura la severidad")
}

// TestCheckProspective_MovimientoNormal: una cantidad dentro del rango
// histórico no es anómala.
func TestCheckProspective_MovimientoNormal(t *testing.T) {
	uc := newAnomalyUseCase(t)

	verdict, err := uc.CheckProspective(context.Background(), dto.CheckAnomalyRequest{
		ProductCode: "pin-005",
		Type:        "OUT",
		Quantity:    4,
	})
	require.NoError(t, err, "el código debe normalizarse antes de evaluar")
	assert.False(t, verdict.IsAnomaly)
	assert.Empty(t, verdict.Reason)
}

// TestCheckProspective_EntradaInvalida: cantidad no positiva o tipo
// desconocido rechazan la petición.
func TestCheckProspective_EntradaInvalida(t *testing.T) {
	uc := newAnomalyUseCase(t)

	_, err := uc.CheckProspective(context.Background(), dto.CheckAnomalyRequest{
		ProductCode: "PIN-005", Type: "OUT", Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CheckProspective(context.Background(), dto.CheckAnomalyRequest{
		ProductCode: "PIN-005", Type: "TRASLADO", Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
