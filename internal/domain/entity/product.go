package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (snapshot de solo lectura).
// Code es el identificador estable, normalizado a mayúsculas por convención.
// Stock es la existencia actual; ReorderThreshold es el stock mínimo que
// dispara una alerta de reposición. Price se usa para estimar el costo del
// pedido sugerido, nunca por el motor analítico.
type Product struct {
	Code             string
	Description      string
	Category         string // puede ser vacío; el sugeridor de categorías lo infiere
	Stock            int
	ReorderThreshold int
	Price            decimal.Decimal
}

// NormalizeCode aplica la convención de códigos: mayúsculas y sin espacios alrededor.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
