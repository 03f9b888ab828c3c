package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variantes de runway en la API. El JSON expone la variante explícita más
// days_remaining solo cuando es finito, para que ningún consumidor haga
// aritmética sobre null o infinito.
const (
	RunwayUnknown   = "unknown"
	RunwayFinite    = "finite"
	RunwayUnbounded = "unbounded"
)

// ForecastDTO pronóstico de agotamiento de un producto.
type ForecastDTO struct {
	ProductCode   string  `json:"product_code"`
	Description   string  `json:"description"`
	Stock         int     `json:"stock"`
	Runway        string  `json:"runway"`                   // unknown | finite | unbounded
	DaysRemaining *int    `json:"days_remaining,omitempty"` // presente solo si runway es finite
	Confidence    float64 `json:"confidence"`
	Trend         string  `json:"trend"` // accelerating | decelerating | stable | no_data
	DailyRate     float64 `json:"daily_rate"`
}

// AnomalyDTO un movimiento anómalo del feed batch.
type AnomalyDTO struct {
	MovementID  string    `json:"movement_id"`
	ProductCode string    `json:"product_code"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Date        time.Time `json:"date"`
	Reason      string    `json:"reason"`
	Severity    float64   `json:"severity"`
	ZScore      float64   `json:"z_score"`
}

// CheckAnomalyRequest chequeo previo de un movimiento aún no registrado.
type CheckAnomalyRequest struct {
	ProductCode string `json:"product_code"`
	Type        string `json:"type"` // IN u OUT
	Quantity    int    `json:"quantity"`
}

// AnomalyCheckDTO veredicto del chequeo previo.
type AnomalyCheckDTO struct {
	IsAnomaly bool    `json:"is_anomaly"`
	Reason    string  `json:"reason,omitempty"`
	Severity  float64 `json:"severity"`
	ZScore    float64 `json:"z_score"`
}

// AlertDTO producto en alerta de reposición, enriquecido con la sugerencia de
// pedido (cantidad sugerida y costo estimado).
type AlertDTO struct {
	ProductCode       string          `json:"product_code"`
	Description       string          `json:"description"`
	Stock             int             `json:"stock"`
	ReorderThreshold  int             `json:"reorder_threshold"`
	Runway            string          `json:"runway"`
	DaysRemaining     *int            `json:"days_remaining,omitempty"`
	SuggestedOrderQty int             `json:"suggested_order_qty"`
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`
	Priority          int             `json:"priority"` // 1 = más urgente
}
