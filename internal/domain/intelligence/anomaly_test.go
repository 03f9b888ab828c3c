package intelligence_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-intel/internal/domain/entity"
	"github.com/jhoicas/inventory-intel/internal/domain/intelligence"
)

func newTestDetector() *intelligence.Detector {
	return intelligence.NewDetector(intelligence.DefaultParams()) // umbral 2.5
}

// history construye salidas OUT de un producto con las cantidades dadas, la
// última (índice mayor) como la más reciente.
func history(code string, quantities ...int) []entity.Movement {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	movements := make([]entity.Movement, len(quantities))
	for i, q := range quantities {
		movements[i] = entity.Movement{
			ID:          fmt.Sprintf("%s-%d", code, i),
			ProductCode: code,
			Type:        entity.MovementTypeOUT,
			Quantity:    q,
			Date:        base.AddDate(0, 0, i),
		}
	}
	return movements
}

// TestDetect_SalidaGigante_EsAnomalaConRazonAlta: historial casi plano de 1s y
// un movimiento de 50 ⇒ anómalo, razón "alta" y severidad en (0,1]. El
// historial lleva un 2 para que la población tenga varianza; un historial
// perfectamente plano cae en la regla de varianza cero (ver test siguiente).
func TestDetect_SalidaGigante_EsAnomalaConRazonAlta(t *testing.T) {
	d := newTestDetector()
	movements := history("HER-001", 1, 1, 1, 1, 2, 50)
	outlier := movements[len(movements)-1]

	res := d.Detect(outlier, movements)

	require.True(t, res.IsAnomaly, "50 contra un historial de 1s debe ser anómalo")
	assert.Contains(t, res.Reason, "alta", "la razón debe indicar cantidad inusualmente alta")
	assert.Contains(t, res.Reason, "50", "la razón debe incluir la cantidad observada")
	assert.Greater(t, res.Severity, 0.0)
	assert.LessOrEqual(t, res.Severity, 1.0)
	assert.Positive(t, res.ZScore)
}

// TestDetect_SalidaMinuscula_RazonBaja: el detector es antisimétrico en
// dirección; muy por debajo de la media reporta "baja" con z-score negativo.
func TestDetect_SalidaMinuscula_RazonBaja(t *testing.T) {
	d := newTestDetector()
	movements := history("HER-001", 100, 110, 90, 105, 95, 1)
	outlier := movements[len(movements)-1]

	res := d.Detect(outlier, movements)

	require.True(t, res.IsAnomaly)
	assert.Contains(t, res.Reason, "baja", "la razón debe indicar cantidad inusualmente baja")
	assert.Negative(t, res.ZScore)
}

// TestDetect_HistorialInsuficiente: con menos de 3 movimientos comparables el
// detector responde "no anómalo", sin error (piso duro).
func TestDetect_HistorialInsuficiente(t *testing.T) {
	d := newTestDetector()
	movements := history("HER-001", 1, 2, 1000)
	outlier := movements[2]

	// La población excluye al propio movimiento: quedan solo 2.
	res := d.Detect(outlier, movements)

	assert.False(t, res.IsAnomaly)
	assert.Empty(t, res.Reason)
	assert.Zero(t, res.Severity)
}

// TestDetect_VarianzaCero_NuncaEsAnomalo: una población sin varianza no puede
// producir anomalías, sin importar la cantidad entrante.
func TestDetect_VarianzaCero_NuncaEsAnomalo(t *testing.T) {
	d := newTestDetector()
	movements := history("HER-001", 5, 5, 5, 5, 5)
	incoming := entity.Movement{
		ID: "nuevo", ProductCode: "HER-001", Type: entity.MovementTypeOUT, Quantity: 100000,
	}

	res := d.Detect(incoming, movements)

	assert.False(t, res.IsAnomaly, "varianza cero nunca produce anomalía")
	assert.Zero(t, res.ZScore)
}

// TestDetect_SeparaPorTipoDeMovimiento: las entradas no contaminan la
// población de salidas y viceversa.
func TestDetect_SeparaPorTipoDeMovimiento(t *testing.T) {
	d := newTestDetector()
	movements := history("HER-001", 3, 4, 3, 4)
	// Entradas masivas del mismo producto: irrelevantes para una salida.
	for i := 0; i < 4; i++ {
		movements = append(movements, entity.Movement{
			ID: fmt.Sprintf("in-%d", i), ProductCode: "HER-001",
			Type: entity.MovementTypeIN, Quantity: 1000,
			Date: time.Date(2026, 7, 1+i, 0, 0, 0, 0, time.UTC),
		})
	}
	incoming := entity.Movement{
		ID: "nuevo", ProductCode: "HER-001", Type: entity.MovementTypeOUT, Quantity: 30,
	}

	res := d.Detect(incoming, movements)

	require.True(t, res.IsAnomaly, "30 contra salidas de 3-4 debe ser anómalo aunque haya entradas de 1000")
	assert.Contains(t, res.Reason, "alta")
}

// TestCheckProspective_ProductoDesconocido: corta a "no anómalo" en lugar de
// fallar, igual que el resto de los casos de datos insuficientes.
func TestCheckProspective_ProductoDesconocido(t *testing.T) {
	d := newTestDetector()
	products := []entity.Product{{Code: "HER-001"}}
	movements := history("HER-001", 1, 1, 1, 1)

	res := d.CheckProspective("NO-EXISTE", entity.MovementTypeOUT, 99, products, movements)

	assert.False(t, res.IsAnomaly)
	assert.Empty(t, res.Reason)
}

// TestCheckProspective_NormalizaElCodigo: el chequeo acepta códigos en
// minúsculas y con espacios, según la convención de códigos en mayúsculas.
func TestCheckProspective_NormalizaElCodigo(t *testing.T) {
	d := newTestDetector()
	products := []entity.Product{{Code: "HER-001"}}
	movements := history("HER-001", 1, 1, 1, 2, 1)

	res := d.CheckProspective("  her-001 ", entity.MovementTypeOUT, 40, products, movements)

	assert.True(t, res.IsAnomaly, "el código debe normalizarse antes de buscar el producto")
}

// TestFindAll_OrdenaPorSeveridadDescendente: el feed batch devuelve solo los
// anómalos, del más severo al menos severo.
func TestFindAll_OrdenaPorSeveridadDescendente(t *testing.T) {
	d := newTestDetector()
	products := []entity.Product{{Code: "HER-001"}, {Code: "ELE-002"}}

	movements := history("HER-001", 2, 3, 2, 3, 2, 2, 30)
	movements = append(movements, history("ELE-002", 10, 11, 10, 9, 10, 200)...)

	anomalies := d.FindAll(products, movements)

	require.Len(t, anomalies, 2, "debe encontrar exactamente los dos outliers")
	assert.GreaterOrEqual(t, anomalies[0].Result.Severity, anomalies[1].Result.Severity,
		"el feed va de mayor a menor severidad")
	for _, a := range anomalies {
		assert.True(t, a.Result.IsAnomaly)
		assert.NotEmpty(t, a.Result.Reason)
	}
}

// TestFindAll_IgnoraProductosDesconocidos: movimientos huérfanos (código fuera
// del snapshot de productos) no entran al feed.
func TestFindAll_IgnoraProductosDesconocidos(t *testing.T) {
	d := newTestDetector()
	products := []entity.Product{{Code: "HER-001"}}
	movements := history("FANTASMA", 1, 1, 1, 1, 1, 500)

	anomalies := d.FindAll(products, movements)

	assert.Empty(t, anomalies)
}
