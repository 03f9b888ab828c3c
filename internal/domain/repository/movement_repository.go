package repository

import (
	"context"

	"github.com/jhoicas/inventory-intel/internal/domain/entity"
)

// MovementRepository define el puerto de carga del snapshot de movimientos.
// Los movimientos son hechos inmutables: este puerto no tiene operaciones de
// escritura por diseño.
type MovementRepository interface {
	// Snapshot devuelve el historial completo de movimientos, de más reciente
	// a más antiguo. Solo lectura.
	Snapshot(ctx context.Context) ([]entity.Movement, error)
}
