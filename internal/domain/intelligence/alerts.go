package intelligence

import "github.com/jhoicas/inventory-intel/internal/domain/entity"

// LowStockAlerts filtra los productos que requieren reposición: stock en o por
// debajo del umbral de reorden, o predicción con runway finito menor a
// alertDays. Cada producto aparece a lo sumo una vez aunque cumpla ambas
// condiciones. predictions va indexado por código de producto; un producto sin
// predicción solo alerta por umbral de stock.
func LowStockAlerts(
	products []entity.Product,
	predictions map[string]StockPrediction,
	alertDays int,
) []entity.Product {
	if alertDays <= 0 {
		alertDays = DefaultLowStockAlertDays
	}

	var alerted []entity.Product
	for _, p := range products {
		if p.Stock <= p.ReorderThreshold {
			alerted = append(alerted, p)
			continue
		}
		pred, ok := predictions[p.Code]
		if !ok {
			continue
		}
		if days, finite := pred.Runway.Days(); finite && days < alertDays {
			alerted = append(alerted, p)
		}
	}
	return alerted
}
