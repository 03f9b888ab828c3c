// Package intelligence implementa el motor analítico de inventario: pronóstico
// de agotamiento de stock, detección estadística de anomalías en movimientos,
// sugerencia de categorías por palabras clave, búsqueda léxica de productos y
// agregación de alertas de reposición.
//
// Todos los servicios son funciones puras sobre snapshots en memoria: sin I/O,
// sin estado oculto y deterministas para entradas idénticas. La carga de datos
// y la persistencia son responsabilidad del llamador.
package intelligence

// Valores por defecto de calibración del motor. Se pueden ajustar vía
// configuración externa sin tocar código (ver pkg/config).
const (
	DefaultMinMovementsForPrediction = 3
	DefaultBaseConfidence            = 0.5
	DefaultConfidenceIncrement       = 0.05
	DefaultMaxConfidence             = 0.95
	DefaultAnomalyThreshold          = 2.5
	DefaultLowStockAlertDays         = 7
)

// Params agrupa la calibración del motor. Es un valor inmutable que se inyecta
// al construir cada servicio; el motor nunca lo modifica durante un cálculo.
type Params struct {
	// MinMovementsForPrediction: mínimo de salidas para pronosticar (piso duro).
	MinMovementsForPrediction int
	// BaseConfidence + n*ConfidenceIncrement, con tope MaxConfidence.
	BaseConfidence      float64
	ConfidenceIncrement float64
	MaxConfidence       float64
	// AnomalyThreshold: |z-score| por encima del cual un movimiento es anómalo.
	AnomalyThreshold float64
	// LowStockAlertDays: días de stock restante bajo los cuales se alerta.
	LowStockAlertDays int
}

// DefaultParams devuelve la calibración por defecto del motor.
func DefaultParams() Params {
	return Params{
		MinMovementsForPrediction: DefaultMinMovementsForPrediction,
		BaseConfidence:            DefaultBaseConfidence,
		ConfidenceIncrement:       DefaultConfidenceIncrement,
		MaxConfidence:             DefaultMaxConfidence,
		AnomalyThreshold:          DefaultAnomalyThreshold,
		LowStockAlertDays:         DefaultLowStockAlertDays,
	}
}

// withDefaults completa los campos en cero con los valores por defecto, para
// que un Params parcialmente configurado siga siendo utilizable.
func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.MinMovementsForPrediction <= 0 {
		p.MinMovementsForPrediction = d.MinMovementsForPrediction
	}
	if p.BaseConfidence <= 0 {
		p.BaseConfidence = d.BaseConfidence
	}
	if p.ConfidenceIncrement <= 0 {
		p.ConfidenceIncrement = d.ConfidenceIncrement
	}
	if p.MaxConfidence <= 0 {
		p.MaxConfidence = d.MaxConfidence
	}
	if p.AnomalyThreshold <= 0 {
		p.AnomalyThreshold = d.AnomalyThreshold
	}
	if p.LowStockAlertDays <= 0 {
		p.LowStockAlertDays = d.LowStockAlertDays
	}
	return p
}
