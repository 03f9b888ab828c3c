package intelligence

import (
	"math"
	"sort"
	"time"

	"github.com/jhoicas/inventory-intel/internal/domain/entity"
)

// Confianza fija cuando la tasa de salida observada es cero: el stock no se
// agota, pero la señal es degenerada y no merece confianza alta.
const zeroRateConfidence = 0.3

// Cantidad de movimientos recientes contra los que se clasifica la tendencia,
// y banda de tolerancia ±20% alrededor de la media histórica.
const (
	trendRecentWindow = 3
	trendUpperBand    = 1.2
	trendLowerBand    = 0.8
)

// Forecaster estima los días de stock restante de un producto a partir de su
// historial de salidas y clasifica la tendencia de consumo.
type Forecaster struct {
	params Params
	now    func() time.Time
}

// NewForecaster construye el pronosticador con la calibración dada.
func NewForecaster(params Params) *Forecaster {
	return NewForecasterWithClock(params, time.Now)
}

// NewForecasterWithClock permite inyectar el reloj, para tests deterministas.
func NewForecasterWithClock(params Params, now func() time.Time) *Forecaster {
	if now == nil {
		now = time.Now
	}
	return &Forecaster{params: params.withDefaults(), now: now}
}

// Forecast calcula la predicción de agotamiento para un producto.
//
// Con menos de MinMovementsForPrediction salidas devuelve TrendNoData y runway
// desconocido. La tasa diaria se calcula sobre el lapso observado (mínimo un
// día) y los días restantes se redondean a la unidad más cercana. Nunca
// devuelve días negativos: stock cero con consumo positivo da 0 días.
func (f *Forecaster) Forecast(product entity.Product, movements []entity.Movement) StockPrediction {
	outbound := outboundHistory(product.Code, movements)
	if len(outbound) < f.params.MinMovementsForPrediction {
		return StockPrediction{Runway: UnknownRunway(), Trend: TrendNoData}
	}

	oldest := outbound[len(outbound)-1].Date
	spanDays := f.now().Sub(oldest).Hours() / 24
	if spanDays < 1 {
		spanDays = 1
	}

	total := 0
	for _, m := range outbound {
		total += m.Quantity
	}
	dailyRate := float64(total) / spanDays
	if dailyRate == 0 {
		return StockPrediction{
			Runway:     UnboundedRunway(),
			Confidence: zeroRateConfidence,
			Trend:      TrendStable,
		}
	}

	days := int(math.Round(float64(product.Stock) / dailyRate))
	return StockPrediction{
		Runway:     FiniteRunway(days),
		Confidence: f.confidence(len(outbound)),
		Trend:      classifyTrend(outbound),
		DailyRate:  dailyRate,
	}
}

// confidence crece linealmente con el tamaño del historial, con tope.
func (f *Forecaster) confidence(movementCount int) float64 {
	c := f.params.BaseConfidence + float64(movementCount)*f.params.ConfidenceIncrement
	return math.Min(f.params.MaxConfidence, c)
}

// outboundHistory filtra las salidas del producto y las ordena de más reciente
// a más antigua. No modifica el slice de entrada.
func outboundHistory(productCode string, movements []entity.Movement) []entity.Movement {
	var outbound []entity.Movement
	for _, m := range movements {
		if m.ProductCode == productCode && m.IsOutbound() {
			outbound = append(outbound, m)
		}
	}
	sort.SliceStable(outbound, func(i, j int) bool {
		return outbound[i].Date.After(outbound[j].Date)
	})
	return outbound
}

// classifyTrend compara la media de las 3 salidas más recientes contra la media
// del resto del historial, con banda de ±20%. Con menos de 4 salidas no hay
// suficiente separación recientes/antiguas y la tendencia se reporta estable.
func classifyTrend(outboundDesc []entity.Movement) Trend {
	if len(outboundDesc) <= trendRecentWindow {
		return TrendStable
	}
	recent := meanQuantity(outboundDesc[:trendRecentWindow])
	older := meanQuantity(outboundDesc[trendRecentWindow:])
	switch {
	case recent > older*trendUpperBand:
		return TrendAccelerating
	case recent < older*trendLowerBand:
		return TrendDecelerating
	default:
		return TrendStable
	}
}

func meanQuantity(movements []entity.Movement) float64 {
	if len(movements) == 0 {
		return 0
	}
	total := 0
	for _, m := range movements {
		total += m.Quantity
	}
	return float64(total) / float64(len(movements))
}
