package insights_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-intel/internal/domain/entity"
	"github.com/jhoicas/inventory-intel/internal/infrastructure/memory"
)

// Reloj fijo para que los pronósticos del fixture sean deterministas.
var testNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func daysAgo(n int) time.Time { return testNow.AddDate(0, 0, -n) }

// fixtureRepos arma el snapshot compartido por los tests de casos de uso:
//   - HER-001: consumo estable de 3/día, runway finito de 33 días.
//   - HER-002: sin historial (runway desconocido) y bajo el umbral de reorden.
//   - ELE-010: consumo de 20/día, runway finito de 5 días.
//   - PIN-005: historial con una salida atípica de 30 unidades.
func fixtureRepos() (*memory.ProductRepo, *memory.MovementRepo) {
	products := []entity.Product{
		{Code: "HER-001", Description: "Martillo de carpintero 16oz", Category: "Herramientas",
			Stock: 100, ReorderThreshold: 10, Price: decimal.NewFromInt(35000)},
		{Code: "HER-002", Description: "Destornillador Phillips #2", Category: "Herramientas",
			Stock: 3, ReorderThreshold: 8, Price: decimal.NewFromInt(12000)},
		{Code: "ELE-010", Description: "Cable dúplex No. 12 x metro", Category: "Eléctricos",
			Stock: 100, ReorderThreshold: 10, Price: decimal.NewFromInt(2800)},
		{Code: "PIN-005", Description: "Pintura vinilo tipo 1 blanca galón", Category: "Pinturas",
			Stock: 15, ReorderThreshold: 6, Price: decimal.NewFromInt(58000)},
	}

	var movements []entity.Movement
	out := func(id, code string, qty, days int) {
		movements = append(movements, entity.Movement{
			ID:          id,
			ProductCode: code,
			Type:        entity.MovementTypeOUT,
			Quantity:    qty,
			Date:        daysAgo(days),
			CreatedBy:   "test",
		})
	}

	// HER-001: 30 unidades en 10 días, 3 por día.
	for i := 1; i <= 10; i++ {
		out("her1-"+string(rune('a'+i-1)), "HER-001", 3, i)
	}
	// ELE-010: 80 unidades en 4 días, 20 por día.
	for i := 1; i <= 4; i++ {
		out("ele-"+string(rune('a'+i-1)), "ELE-010", 20, i)
	}
	// PIN-005: consumo pequeño con una salida atípica.
	for i, qty := range []int{2, 3, 2, 3, 2, 2} {
		out("pin-"+string(rune('a'+i)), "PIN-005", qty, i+2)
	}
	out("pin-outlier", "PIN-005", 30, 1)

	return memory.NewProductRepository(products), memory.NewMovementRepository(movements)
}
