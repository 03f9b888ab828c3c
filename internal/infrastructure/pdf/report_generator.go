// Package pdf implementa el informe de reposición en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la empresa  │  Fecha del informe         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Pri | Código | Descripción | Stock | Umbral |        │
//	│         Días rest. | Cant. sug. | Costo est.                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: costo estimado de la reposición completa             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-intel/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReplenishmentReportGenerator genera el informe de alertas de reposición.
type ReplenishmentReportGenerator struct {
	companyName string
}

// NewReplenishmentReportGenerator construye el generador.
func NewReplenishmentReportGenerator(companyName string) *ReplenishmentReportGenerator {
	if companyName == "" {
		companyName = "Inventory Intel"
	}
	return &ReplenishmentReportGenerator{companyName: companyName}
}

// Generate genera el PDF del informe y devuelve sus bytes. Las alertas se
// imprimen en el orden recibido (ya vienen por prioridad).
func (g *ReplenishmentReportGenerator) Generate(_ context.Context, alerts []dto.AlertDTO, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de Reposición", true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.companyName, generatedAt, len(alerts)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableAlertRows(alerts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(alerts))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y título + fecha (der).
func headerRow(companyName string, generatedAt time.Time, total int) core.Row {
	fecha := generatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d productos en alerta", total), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INFORME DE REPOSICIÓN", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de alertas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Pri", 1, align.Center),
		h("Código", 2, align.Left),
		h("Descripción", 3, align.Left),
		h("Stock", 1, align.Right),
		h("Umbral", 1, align.Right),
		h("Días", 1, align.Center),
		h("Cant. sug.", 1, align.Right),
		h("Costo est.", 2, align.Right),
	)
}

// tableAlertRows: una fila por producto en alerta.
func tableAlertRows(alerts []dto.AlertDTO) []core.Row {
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		days := "—"
		if a.DaysRemaining != nil {
			days = strconv.Itoa(*a.DaysRemaining)
		}

		stockColor := colorGray
		if a.Stock <= a.ReorderThreshold {
			stockColor = colorAlert
		}

		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.Itoa(a.Priority),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				a.ProductCode,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				a.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				strconv.Itoa(a.Stock),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: stockColor},
			)),
			col.New(1).Add(text.New(
				strconv.Itoa(a.ReorderThreshold),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				days,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				strconv.Itoa(a.SuggestedOrderQty),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(a.EstimatedCost.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: costo estimado total de la reposición, alineado a la derecha.
func totalRow(alerts []dto.AlertDTO) core.Row {
	total := decimal.Zero
	for _, a := range alerts {
		total = total.Add(a.EstimatedCost)
	}

	return row.New(10).Add(
		col.New(7),
		col.New(3).Add(text.New("COSTO ESTIMADO TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(2).Add(text.New("$"+formatMoney(total.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
