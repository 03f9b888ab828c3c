package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-intel/internal/application/dto"
	"github.com/jhoicas/inventory-intel/internal/application/insights"
	"github.com/jhoicas/inventory-intel/internal/domain"
	"github.com/jhoicas/inventory-intel/internal/infrastructure/pdf"
)

// InsightsHandler maneja los endpoints del motor analítico: pronósticos,
// anomalías y alertas de reposición.
type InsightsHandler struct {
	forecastUC *insights.ForecastUseCase
	anomalyUC  *insights.AnomalyUseCase
	alertUC    *insights.AlertUseCase
	reportGen  *pdf.ReplenishmentReportGenerator
}

// NewInsightsHandler construye el handler.
func NewInsightsHandler(
	forecastUC *insights.ForecastUseCase,
	anomalyUC *insights.AnomalyUseCase,
	alertUC *insights.AlertUseCase,
	reportGen *pdf.ReplenishmentReportGenerator,
) *InsightsHandler {
	return &InsightsHandler{
		forecastUC: forecastUC,
		anomalyUC:  anomalyUC,
		alertUC:    alertUC,
		reportGen:  reportGen,
	}
}

// ListForecasts godoc
// @Summary      Pronóstico de agotamiento de todo el catálogo
// @Description  Devuelve el runway de stock por producto, ordenado del más urgente
//               al menos urgente (runway finito ascendente, sin datos al final).
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ForecastDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/insights/forecast [get]
func (h *InsightsHandler) ListForecasts(c *fiber.Ctx) error {
	forecasts, err := h.forecastUC.ForecastAll(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(forecasts)
}

// GetForecast godoc
// @Summary      Pronóstico de agotamiento de un producto
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código del producto (insensible a mayúsculas)"
// @Success      200  {object}  dto.ForecastDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/insights/forecast/{code} [get]
func (h *InsightsHandler) GetForecast(c *fiber.Ctx) error {
	forecast, err := h.forecastUC.ForecastProduct(c.Context(), c.Params("code"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(forecast)
}

// ListAnomalies godoc
// @Summary      Feed de movimientos anómalos
// @Description  Evalúa todo el historial y devuelve las salidas/entradas atípicas
//               ordenadas por severidad descendente.
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.AnomalyDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/insights/anomalies [get]
func (h *InsightsHandler) ListAnomalies(c *fiber.Ctx) error {
	anomalies, err := h.anomalyUC.ScanAll(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(anomalies)
}

// CheckAnomaly godoc
// @Summary      Chequeo previo de un movimiento aún no registrado
// @Description  Veredicto informativo: nunca bloquea el registro del movimiento.
// @Tags         insights
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckAnomalyRequest  true  "Movimiento a evaluar"
// @Success      200  {object}  dto.AnomalyCheckDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/insights/anomalies/check [post]
func (h *InsightsHandler) CheckAnomaly(c *fiber.Ctx) error {
	var req dto.CheckAnomalyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo JSON inválido",
		})
	}
	verdict, err := h.anomalyUC.CheckProspective(c.Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(verdict)
}

// ListAlerts godoc
// @Summary      Alertas de reposición
// @Description  Productos bajo el umbral de reorden o con runway menor a la ventana
//               dada, con cantidad sugerida de pedido y costo estimado.
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Ventana de alerta en días (default: configurada)"
// @Success      200  {array}   dto.AlertDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/insights/alerts [get]
func (h *InsightsHandler) ListAlerts(c *fiber.Ctx) error {
	alerts, err := h.alertUC.LowStock(c.Context(), c.QueryInt("days"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(alerts)
}

// AlertsPDF godoc
// @Summary      Informe de reposición en PDF
// @Tags         insights
// @Security     Bearer
// @Produce      application/pdf
// @Param        days  query  int  false  "Ventana de alerta en días (default: configurada)"
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/insights/alerts/pdf [get]
func (h *InsightsHandler) AlertsPDF(c *fiber.Ctx) error {
	alerts, err := h.alertUC.LowStock(c.Context(), c.QueryInt("days"))
	if err != nil {
		return errorJSON(c, err)
	}
	doc, err := h.reportGen.Generate(c.Context(), alerts, time.Now())
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="informe-reposicion.pdf"`)
	return c.Send(doc)
}

// errorJSON traduce los errores de dominio a códigos HTTP.
func errorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "FORBIDDEN", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error interno",
		})
	}
}
