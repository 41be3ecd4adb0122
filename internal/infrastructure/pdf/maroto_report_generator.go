// Package pdf genera el reporte de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha  │  categorías / proveedores        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Produit | Catégorie | Qté | Prix | Valeur | É │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades / alertas / VALEUR DU STOCK               │
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

	"github.com/jhoicas/morefix-stock/internal/application/report"
	"github.com/jhoicas/morefix-stock/pkg/textnorm"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorWarn    = &props.Color{Red: 200, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.Renderer usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

var _ report.Renderer = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) Render(_ context.Context, r report.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(r.Rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r report.Report) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Généré le "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d catégories", r.Categories), props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
			text.New(fmt.Sprintf("%d fournisseurs", r.Suppliers), props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
			text.New(fmt.Sprintf("Seuil stock faible: %d", r.Threshold), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Produit", 3, align.Left),
		h("Catégorie", 2, align.Left),
		h("Qté", 1, align.Center),
		h("Prix", 1, align.Right),
		h("Valeur", 2, align.Right),
		h("État", 1, align.Center),
	)
}

func tableRows(rows []report.Row) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, d := range rows {
		cell := props.Text{Size: 8, Top: 1, Left: 1, Right: 1}
		right := cell
		right.Align = align.Right
		center := cell
		center.Align = align.Center
		status := center
		switch d.Status {
		case report.StatusOutOfStock:
			status.Color = colorAlert
			status.Style = fontstyle.Bold
		case report.StatusLowStock:
			status.Color = colorWarn
		}

		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(d.SKU, cell)),
			col.New(3).Add(text.New(d.Name, cell)),
			col.New(2).Add(text.New(d.Category, cell)),
			col.New(1).Add(text.New(fmt.Sprint(d.Quantity), center)),
			col.New(1).Add(text.New(textnorm.FormatEuro(d.Price), right)),
			col.New(2).Add(text.New(textnorm.FormatEuro(d.Value), right)),
			col.New(1).Add(text.New(d.Status, status)),
		))
	}
	return result
}

func totalsRow(r report.Report) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grand := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Unités en stock:"),
			label("Stock faible / rupture:"),
			text.New("VALEUR DU STOCK:", props.Text{
				Style: grand.Style, Size: grand.Size, Align: grand.Align, Color: grand.Color, Right: 2, Top: 12,
			}),
		),
		col.New(4).Add(
			value(textnorm.FormatInt(r.TotalUnits)),
			value(fmt.Sprintf("%d / %d", r.LowStock, r.OutOfStock)),
			text.New(textnorm.FormatEuro(r.TotalValue), props.Text{
				Style: grand.Style, Size: grand.Size, Align: grand.Align, Color: grand.Color, Right: 1, Top: 12,
			}),
		),
	)
}
