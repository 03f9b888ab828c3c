package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-intel/internal/domain/entity"
)

// DemoSnapshot genera un catálogo de ferretería pequeño con historial de
// movimientos, para correr el servicio sin base de datos (modo desarrollo).
// Incluye un producto con consumo acelerado, uno con salida atípica y uno bajo
// el umbral de reorden, para que todos los endpoints tengan algo que mostrar.
func DemoSnapshot() ([]entity.Product, []entity.Movement) {
	products := []entity.Product{
		{Code: "HER-001", Description: "Martillo de carpintero 16oz", Category: "Herramientas",
			Stock: 24, ReorderThreshold: 10, Price: decimal.NewFromInt(35000)},
		{Code: "HER-002", Description: "Destornillador Phillips #2", Category: "Herramientas",
			Stock: 3, ReorderThreshold: 8, Price: decimal.NewFromInt(12000)},
		{Code: "ELE-010", Description: "Cable dúplex No. 12 x metro", Category: "Eléctricos",
			Stock: 300, ReorderThreshold: 50, Price: decimal.NewFromInt(2800)},
		{Code: "PLO-021", Description: "Tubo PVC presión 1/2\" x 6m", Category: "Plomería",
			Stock: 40, ReorderThreshold: 12, Price: decimal.NewFromInt(18500)},
		{Code: "PIN-005", Description: "Pintura vinilo tipo 1 blanca galón", Category: "Pinturas",
			Stock: 15, ReorderThreshold: 6, Price: decimal.NewFromInt(58000)},
	}

	now := time.Now()
	outAt := func(code string, qty, daysAgo int) entity.Movement {
		return entity.Movement{
			ID:          uuid.NewString(),
			ProductCode: code,
			Type:        entity.MovementTypeOUT,
			Quantity:    qty,
			Date:        now.AddDate(0, 0, -daysAgo),
			CreatedBy:   "demo",
		}
	}
	inAt := func(code string, qty, daysAgo int) entity.Movement {
		m := outAt(code, qty, daysAgo)
		m.Type = entity.MovementTypeIN
		return m
	}

	movements := []entity.Movement{
		// HER-001: consumo estable.
		inAt("HER-001", 50, 30),
		outAt("HER-001", 3, 25), outAt("HER-001", 2, 18), outAt("HER-001", 3, 12),
		outAt("HER-001", 2, 6), outAt("HER-001", 3, 1),
		// HER-002: consumo acelerado, quedará bajo el umbral.
		inAt("HER-002", 20, 40),
		outAt("HER-002", 1, 35), outAt("HER-002", 1, 28), outAt("HER-002", 2, 20),
		outAt("HER-002", 4, 5), outAt("HER-002", 5, 3), outAt("HER-002", 4, 1),
		// ELE-010: salida atípica entre ventas parejas.
		inAt("ELE-010", 400, 60),
		outAt("ELE-010", 10, 45), outAt("ELE-010", 12, 38), outAt("ELE-010", 11, 30),
		outAt("ELE-010", 9, 22), outAt("ELE-010", 95, 10), outAt("ELE-010", 10, 2),
		// PLO-021: poco historial (pronóstico no_data).
		inAt("PLO-021", 50, 15),
		outAt("PLO-021", 5, 4),
		// PIN-005: consumo lento y estable.
		inAt("PIN-005", 20, 50),
		outAt("PIN-005", 1, 40), outAt("PIN-005", 1, 30), outAt("PIN-005", 1, 20),
		outAt("PIN-005", 1, 10),
	}

	return products, movements
}
