package intelligence

import "strconv"

// Trend clasifica la evolución reciente del consumo de un producto.
type Trend string

const (
	TrendAccelerating Trend = "accelerating" // consumo reciente > 120% del histórico
	TrendDecelerating Trend = "decelerating" // consumo reciente < 80% del histórico
	TrendStable       Trend = "stable"
	TrendNoData       Trend = "no_data" // historial insuficiente para clasificar
)

type runwayKind int

const (
	runwayUnknown runwayKind = iota
	runwayFinite
	runwayUnbounded
)

// Runway representa los días de stock restante como tipo de tres variantes:
// Unknown (historial insuficiente), Finite(días) e Unbounded (consumo cero).
// Evita los centinelas null/Infinity: ningún consumidor puede hacer aritmética
// accidental sobre un valor que no es un número de días real.
type Runway struct {
	kind runwayKind
	days int
}

// UnknownRunway: no hay datos suficientes para estimar.
func UnknownRunway() Runway { return Runway{kind: runwayUnknown} }

// FiniteRunway: quedan days días de stock (nunca negativo).
func FiniteRunway(days int) Runway {
	if days < 0 {
		days = 0
	}
	return Runway{kind: runwayFinite, days: days}
}

// UnboundedRunway: tasa de salida cero, el stock no se agota.
func UnboundedRunway() Runway { return Runway{kind: runwayUnbounded} }

// IsUnknown indica si no hubo datos suficientes para estimar.
func (r Runway) IsUnknown() bool { return r.kind == runwayUnknown }

// IsUnbounded indica si el consumo observado es cero.
func (r Runway) IsUnbounded() bool { return r.kind == runwayUnbounded }

// Days devuelve los días restantes y true solo para la variante finita.
func (r Runway) Days() (int, bool) {
	if r.kind != runwayFinite {
		return 0, false
	}
	return r.days, true
}

// String para logs y depuración.
func (r Runway) String() string {
	switch r.kind {
	case runwayFinite:
		return strconv.Itoa(r.days) + "d"
	case runwayUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// StockPrediction es el resultado del pronóstico de agotamiento de un producto.
type StockPrediction struct {
	Runway     Runway
	Confidence float64 // [0, MaxConfidence]; crece con el tamaño del historial
	Trend      Trend
	DailyRate  float64 // unidades/día observadas; informativo
}
