package intelligence

import (
	"fmt"
	"math"
	"sort"

	"github.com/jhoicas/inventory-intel/internal/domain/entity"
)

// Piso duro: con menos de 3 movimientos comparables no hay base estadística y
// el detector responde "no anómalo", nunca error.
const minAnomalyHistory = 3

// Divisor para mapear |z-score| a severidad en (0, 1].
const severityDivisor = 4.0

// AnomalyResult es el veredicto del detector sobre un movimiento.
type AnomalyResult struct {
	IsAnomaly bool
	Reason    string  // legible para el operador; vacío si no es anomalía
	Severity  float64 // [0, 1]
	ZScore    float64 // informativo; 0 si la población tiene varianza cero
}

// MovementAnomaly empareja un movimiento con su resultado, para el feed batch.
type MovementAnomaly struct {
	Movement entity.Movement
	Result   AnomalyResult
}

// Detector marca movimientos estadísticamente inusuales en cantidad frente a
// su propio historial (mismo producto, mismo tipo). Nunca retorna error:
// historial insuficiente, varianza cero y producto desconocido son resultados
// "no anómalo" válidos.
type Detector struct {
	threshold float64
}

// NewDetector construye el detector con el umbral de |z-score| dado.
func NewDetector(params Params) *Detector {
	return &Detector{threshold: params.withDefaults().AnomalyThreshold}
}

// Detect evalúa un movimiento contra su historial. La población de comparación
// son los movimientos del mismo producto y tipo, excluyendo el propio
// movimiento por ID.
func (d *Detector) Detect(movement entity.Movement, history []entity.Movement) AnomalyResult {
	var population []float64
	for _, h := range history {
		if h.ProductCode != movement.ProductCode || h.Type != movement.Type {
			continue
		}
		if movement.ID != "" && h.ID == movement.ID {
			continue
		}
		population = append(population, float64(h.Quantity))
	}
	if len(population) < minAnomalyHistory {
		return AnomalyResult{}
	}

	mean, stdDev := meanStdDev(population)
	if stdDev == 0 {
		// Población sin varianza: ningún valor entrante puede ser anómalo.
		return AnomalyResult{}
	}

	z := (float64(movement.Quantity) - mean) / stdDev
	if math.Abs(z) <= d.threshold {
		return AnomalyResult{ZScore: z}
	}

	direction := "alta"
	if z < 0 {
		direction = "baja"
	}
	return AnomalyResult{
		IsAnomaly: true,
		Reason: fmt.Sprintf("Cantidad inusualmente %s: %d unidades frente a un promedio de %.1f",
			direction, movement.Quantity, mean),
		Severity: math.Min(1, math.Abs(z)/severityDivisor),
		ZScore:   z,
	}
}

// CheckProspective valida un movimiento aún no registrado (chequeo previo al
// commit). Si el código no existe en el snapshot de productos, corta a "no
// anómalo" en lugar de fallar, coherente con la filosofía de datos
// insuficientes del detector.
func (d *Detector) CheckProspective(
	productCode, movementType string,
	quantity int,
	products []entity.Product,
	movements []entity.Movement,
) AnomalyResult {
	code := entity.NormalizeCode(productCode)
	known := false
	for _, p := range products {
		if p.Code == code {
			known = true
			break
		}
	}
	if !known {
		return AnomalyResult{}
	}
	candidate := entity.Movement{ProductCode: code, Type: movementType, Quantity: quantity}
	return d.Detect(candidate, movements)
}

// FindAll evalúa cada movimiento de productos conocidos contra el resto de su
// población y devuelve solo los anómalos, ordenados por severidad descendente.
// Pensado para un feed de tablero, no para bloquear escrituras.
func (d *Detector) FindAll(products []entity.Product, movements []entity.Movement) []MovementAnomaly {
	knownCodes := make(map[string]struct{}, len(products))
	for _, p := range products {
		knownCodes[p.Code] = struct{}{}
	}

	var anomalies []MovementAnomaly
	for _, m := range movements {
		if _, ok := knownCodes[m.ProductCode]; !ok {
			continue
		}
		if res := d.Detect(m, movements); res.IsAnomaly {
			anomalies = append(anomalies, MovementAnomaly{Movement: m, Result: res})
		}
	}
	sort.SliceStable(anomalies, func(i, j int) bool {
		return anomalies[i].Result.Severity > anomalies[j].Result.Severity
	})
	return anomalies
}

// meanStdDev calcula media y desviación estándar poblacional.
func meanStdDev(values []float64) (mean, stdDev float64) {
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}
