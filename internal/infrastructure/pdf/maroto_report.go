// Package pdf implementa la generación del Reporte de Refacciones en PDF
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Refacciones + período + fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Nombre | Categoría | Almacén | Cantidad     │
//	│         (renglones con stock < 5 resaltados en rojo)         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de refacciones + fecha de generación          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/stockbox/stockbox-cli/internal/application/report"
	"github.com/stockbox/stockbox-cli/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 116, Blue: 139}
	colorWarning = &props.Color{Red: 239, Green: 68, Blue: 68}
)

// lowStockThreshold por debajo de este valor el renglón se resalta.
var lowStockThreshold = decimal.NewFromInt(5)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(_ context.Context, data report.Data) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Refacciones", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(data)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(data.Products) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRows: título centrado con período y fecha de generación.
func headerRows(data report.Data) []core.Row {
	fecha := data.GeneratedAt.Format("02/01/2006")
	return []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("Reporte de Refacciones", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center,
				Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(10).Add(col.New(12).Add(
			text.New("Período: "+data.PeriodLabel, props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 1,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 6,
			}),
		)),
	}
}

// tableHeaderRow: cabecera de la tabla del catálogo.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Nombre", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Almacén", 2, align.Left),
		h("Cantidad", 2, align.Right),
	)
}

// tableRows: una fila por refacción; stock < 5 se pinta en rojo.
func tableRows(products []entity.Product) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		textColor := (*props.Color)(nil)
		if p.Quantity.LessThan(lowStockThreshold) {
			textColor = colorWarning
		}
		cell := func(value string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(value, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: textColor,
			}))
		}
		result = append(result, row.New(7).Add(
			cell(nonEmpty(p.SKU, "—"), 2, align.Left),
			cell(nonEmpty(p.Name, "—"), 4, align.Left),
			cell(nonEmpty(p.CategoryName, "—"), 2, align.Left),
			cell(nonEmpty(p.WarehouseName, "—"), 2, align.Left),
			cell(p.Quantity.StringFixed(0), 2, align.Right),
		))
	}
	return result
}

// footerRow: total de refacciones listadas.
func footerRow(data report.Data) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de refacciones: %d", len(data.Products)), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 2,
		}),
	))
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
