package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-intel/internal/domain/entity"
	"github.com/jhoicas/inventory-intel/internal/domain/repository"
)

// Querier abstrae pool o tx de pgx para los adaptadores de lectura.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ repository.ProductRepository  = (*ProductSnapshotRepo)(nil)
	_ repository.MovementRepository = (*MovementSnapshotRepo)(nil)
)

// ProductSnapshotRepo carga el snapshot de productos desde la base operativa.
// Solo SELECT: este servicio no escribe nunca en las tablas de inventario.
type ProductSnapshotRepo struct {
	q Querier
}

// NewProductSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductSnapshotRepository(q Querier) *ProductSnapshotRepo {
	return &ProductSnapshotRepo{q: q}
}

// Snapshot devuelve todos los productos del catálogo ordenados por código.
func (r *ProductSnapshotRepo) Snapshot(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT code, description, COALESCE(category, ''), stock, reorder_threshold, price
		FROM products
		ORDER BY code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.Code, &p.Description, &p.Category, &p.Stock, &p.ReorderThreshold, &p.Price); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Code = entity.NormalizeCode(p.Code)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows products: %w", err)
	}
	return products, nil
}

// MovementSnapshotRepo carga el historial de movimientos, de más reciente a
// más antiguo. Solo SELECT.
type MovementSnapshotRepo struct {
	q Querier
}

// NewMovementSnapshotRepository construye el adaptador.
func NewMovementSnapshotRepository(q Querier) *MovementSnapshotRepo {
	return &MovementSnapshotRepo{q: q}
}

// Snapshot devuelve todos los movimientos registrados.
func (r *MovementSnapshotRepo) Snapshot(ctx context.Context) ([]entity.Movement, error) {
	query := `
		SELECT id, product_code, type, quantity, date, COALESCE(created_by, '')
		FROM stock_movements
		ORDER BY date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query movements: %w", err)
	}
	defer rows.Close()

	var movements []entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductCode, &m.Type, &m.Quantity, &m.Date, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.ProductCode = entity.NormalizeCode(m.ProductCode)
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows movements: %w", err)
	}
	return movements, nil
}
