package repository

import (
	"context"

	"github.com/jhoicas/inventory-intel/internal/domain/entity"
)

// ProductRepository define el puerto de carga del snapshot de productos (DIP).
// El motor analítico nunca lo usa directamente; es la capa de aplicación la
// que carga el snapshot y se lo entrega al motor como colección en memoria.
type ProductRepository interface {
	// Snapshot devuelve todos los productos del catálogo. Solo lectura.
	Snapshot(ctx context.Context) ([]entity.Product, error)
}
