// Package memory implementa los puertos de snapshot sobre colecciones en
// memoria. Se usa en tests y en modo desarrollo cuando no hay base de datos
// configurada.
package memory

import (
	"context"

	"github.com/jhoicas/inventory-intel/internal/domain/entity"
	"github.com/jhoicas/inventory-intel/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.MovementRepository = (*MovementRepo)(nil)
)

// ProductRepo sirve un snapshot fijo de productos.
type ProductRepo struct {
	products []entity.Product
}

// NewProductRepository construye el repositorio con el snapshot dado.
func NewProductRepository(products []entity.Product) *ProductRepo {
	return &ProductRepo{products: products}
}

// Snapshot devuelve una copia del snapshot, para que ningún llamador pueda
// mutar el fixture compartido.
func (r *ProductRepo) Snapshot(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// MovementRepo sirve un snapshot fijo de movimientos.
type MovementRepo struct {
	movements []entity.Movement
}

// NewMovementRepository construye el repositorio con el historial dado.
func NewMovementRepository(movements []entity.Movement) *MovementRepo {
	return &MovementRepo{movements: movements}
}

// Snapshot devuelve una copia del historial.
func (r *MovementRepo) Snapshot(_ context.Context) ([]entity.Movement, error) {
	out := make([]entity.Movement, len(r.movements))
	copy(out, r.movements)
	return out, nil
}
