package insights

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-intel/internal/application/dto"
	"github.com/jhoicas/inventory-intel/internal/domain/intelligence"
	"github.com/jhoicas/inventory-intel/internal/domain/repository"
)

// Factor de stock ideal sobre el umbral de reorden para la cantidad sugerida
// de pedido: reponer hasta 1.5x el mínimo.
var idealStockFactor = decimal.NewFromFloat(1.5)

// AlertUseCase combina el nivel de stock actual con los pronósticos para
// producir la lista de alertas de reposición, enriquecida con cantidad
// sugerida de pedido y costo estimado.
type AlertUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	forecast  *ForecastUseCase
	alertDays int
}

// NewAlertUseCase construye el caso de uso. alertDays es el valor por defecto
// cuando el llamador no especifica uno.
func NewAlertUseCase(
	products repository.ProductRepository,
	movements repository.MovementRepository,
	forecast *ForecastUseCase,
	alertDays int,
) *AlertUseCase {
	if alertDays <= 0 {
		alertDays = intelligence.DefaultLowStockAlertDays
	}
	return &AlertUseCase{
		products:  products,
		movements: movements,
		forecast:  forecast,
		alertDays: alertDays,
	}
}

// LowStock devuelve los productos en alerta: bajo el umbral de reorden o con
// runway finito menor a days (0 = usar el configurado). Ordena por urgencia
// (runway más corto primero, luego mayor déficit relativo) y asigna prioridad
// 1..n.
func (uc *AlertUseCase) LowStock(ctx context.Context, days int) ([]dto.AlertDTO, error) {
	if days <= 0 {
		days = uc.alertDays
	}

	products, err := uc.products.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movements.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	predictions, err := uc.forecast.Predictions(ctx, products, movements)
	if err != nil {
		return nil, err
	}

	alerted := intelligence.LowStockAlerts(products, predictions, days)

	alerts := make([]dto.AlertDTO, 0, len(alerted))
	for _, p := range alerted {
		a := dto.AlertDTO{
			ProductCode:      p.Code,
			Description:      p.Description,
			Stock:            p.Stock,
			ReorderThreshold: p.ReorderThreshold,
			Runway:           dto.RunwayUnknown,
		}

		if pred, ok := predictions[p.Code]; ok {
			switch {
			case pred.Runway.IsUnbounded():
				a.Runway = dto.RunwayUnbounded
			case pred.Runway.IsUnknown():
				a.Runway = dto.RunwayUnknown
			default:
				d, _ := pred.Runway.Days()
				a.Runway = dto.RunwayFinite
				a.DaysRemaining = &d
			}
		}

		// Cantidad sugerida: llevar el stock al ideal (1.5x el umbral),
		// redondeando hacia arriba. Nunca negativa.
		ideal := decimal.NewFromInt(int64(p.ReorderThreshold)).Mul(idealStockFactor).Ceil()
		suggested := ideal.Sub(decimal.NewFromInt(int64(p.Stock)))
		if suggested.IsNegative() {
			suggested = decimal.Zero
		}
		a.SuggestedOrderQty = int(suggested.IntPart())
		a.EstimatedCost = suggested.Mul(p.Price)

		alerts = append(alerts, a)
	}

	// Urgencia: runway finito más corto primero; entre iguales, mayor déficit
	// absoluto bajo el umbral.
	sort.SliceStable(alerts, func(i, j int) bool {
		ri, rj := alertRank(alerts[i]), alertRank(alerts[j])
		if ri != rj {
			return ri < rj
		}
		di := alerts[i].ReorderThreshold - alerts[i].Stock
		dj := alerts[j].ReorderThreshold - alerts[j].Stock
		return di > dj
	})
	for i := range alerts {
		alerts[i].Priority = i + 1
	}
	return alerts, nil
}

func alertRank(a dto.AlertDTO) int {
	if a.Runway == dto.RunwayFinite {
		return *a.DaysRemaining
	}
	return 1 << 30
}
