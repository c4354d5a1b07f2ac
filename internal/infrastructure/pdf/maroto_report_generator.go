// Package pdf implementa la generación del reporte de ventas de una tienda.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  REPORTE DE VENTAS + Fecha  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Artículo | Cant | P.Unit | Total | Tipo      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ventas acumuladas / Deuda acumulada                │
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

	"github.com/Christopheryu29/store-management-api/internal/application/report"
	"github.com/Christopheryu29/store-management-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.SalesReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.SalesReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(
	_ context.Context,
	store *entity.Store,
	sales []*entity.Sale,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas", true).
		WithAuthor(store.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(store))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(sales) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(store, sales)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y título del reporte (der).
func headerRow(store *entity.Store) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(store.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+store.UpdatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: encabezado de la tabla de ventas.
func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right}
	return row.New(7).Add(
		col.New(2).Add(text.New("Fecha", header)),
		col.New(4).Add(text.New("Artículo", header)),
		col.New(1).Add(text.New("Cant", headerRight)),
		col.New(2).Add(text.New("P. Unit", headerRight)),
		col.New(2).Add(text.New("Total", headerRight)),
		col.New(1).Add(text.New("Tipo", header)),
	)
}

// tableDetailRows: una fila por venta, más recientes primero.
func tableDetailRows(sales []*entity.Sale) []core.Row {
	rows := make([]core.Row, 0, len(sales))
	cell := props.Text{Size: 8}
	cellRight := props.Text{Size: 8, Align: align.Right}
	for _, s := range sales {
		kind := "contado"
		if s.OnCredit {
			kind = "fiado"
		}
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(s.CreatedAt.Format("02/01 15:04"), cell)),
			col.New(4).Add(text.New(s.ItemName, cell)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", s.Quantity), cellRight)),
			col.New(2).Add(text.New("$"+s.UnitPrice.StringFixed(2), cellRight)),
			col.New(2).Add(text.New("$"+s.Total.StringFixed(2), cellRight)),
			col.New(1).Add(text.New(kind, cell)),
		))
	}
	return rows
}

// totalsRows: subtotales del periodo listado y acumulados de la tienda.
func totalsRows(store *entity.Store, sales []*entity.Sale) []core.Row {
	var paid, credit decimal.Decimal
	for _, s := range sales {
		if s.OnCredit {
			credit = credit.Add(s.Total)
		} else {
			paid = paid.Add(s.Total)
		}
	}
	label := props.Text{Size: 9, Align: align.Right, Color: colorGray}
	value := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}
	big := props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary}
	return []core.Row{
		row.New(6).Add(
			col.New(8).Add(text.New("Ventas de contado del periodo:", label)),
			col.New(4).Add(text.New("$"+paid.StringFixed(2), value)),
		),
		row.New(6).Add(
			col.New(8).Add(text.New("Ventas fiadas del periodo:", label)),
			col.New(4).Add(text.New("$"+credit.StringFixed(2), value)),
		),
		row.New(8).Add(
			col.New(8).Add(text.New("VENTAS ACUMULADAS:", label)),
			col.New(4).Add(text.New("$"+store.TotalSales.StringFixed(2), big)),
		),
		row.New(8).Add(
			col.New(8).Add(text.New("DEUDA ACUMULADA:", label)),
			col.New(4).Add(text.New("$"+store.Debt.StringFixed(2), big)),
		),
	}
}
