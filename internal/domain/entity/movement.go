package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Movement representa un movimiento de inventario ya registrado (hecho inmutable).
// El motor analítico solo lo lee y lo ordena; nunca lo modifica.
type Movement struct {
	ID          string
	ProductCode string
	Type        string // IN u OUT
	Quantity    int    // siempre positivo; el signo lo da Type
	Date        time.Time
	CreatedBy   string // no lo consume el motor, se conserva para trazabilidad
}

// IsOutbound indica si el movimiento descuenta stock.
func (m Movement) IsOutbound() bool { return m.Type == MovementTypeOUT }
