// Package pdf implementa la representación gráfica de una cotización de persiana.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre comercial  │  COTIZACIÓN + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTO: Nombre + dimensiones pedidas                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Opción | Ajuste base | Adic. | Subtotal │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Precio base / Ajuste por tamaño / TOTAL           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	"github.com/jhoicas/persianas-api/internal/application/usecase"
	"github.com/jhoicas/persianas-api/internal/domain/entity"
	"github.com/jhoicas/persianas-api/internal/domain/pricing"
	"github.com/jhoicas/persianas-api/internal/domain/repository"
	"github.com/jhoicas/persianas-api/pkg/moneyfmt"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// kindLabels etiquetas de categoría para el comprador.
var kindLabels = map[entity.CategoryKind]string{
	entity.KindMountType:   "Montaje",
	entity.KindControlType: "Control",
	entity.KindFabric:      "Tela / Color",
	entity.KindHeadrail:    "Riel superior",
	entity.KindBottomRail:  "Riel inferior",
	entity.KindSpecialty:   "Especialidad",
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.QuotePDFGenerator = (*MarotoQuoteGenerator)(nil)

// MarotoQuoteGenerator implementa usecase.QuotePDFGenerator usando Maroto v2.
type MarotoQuoteGenerator struct {
	businessName string
}

// NewMarotoQuoteGenerator construye el generador con el nombre comercial del header.
func NewMarotoQuoteGenerator(businessName string) *MarotoQuoteGenerator {
	return &MarotoQuoteGenerator{businessName: businessName}
}

// GenerateQuotePDF genera el PDF de la cotización y devuelve sus bytes.
func (g *MarotoQuoteGenerator) GenerateQuotePDF(
	_ context.Context,
	product *repository.ProductInfo,
	bd *pricing.Breakdown,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+product.Name, true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.businessName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(productRow(product, bd))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableOptionRows(bd) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(bd))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre comercial (izq) y rótulo + fecha (der).
func headerRow(businessName string) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Persianas a la medida", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// productRow: producto cotizado y dimensiones pedidas.
func productRow(product *repository.ProductInfo, bd *pricing.Breakdown) core.Row {
	dims := fmt.Sprintf("Ancho: %s   |   Alto: %s",
		moneyfmt.Pulgadas(bd.Width), moneyfmt.Pulgadas(bd.Height))
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(dims, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de opciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Categoría", 2, align.Left),
		h("Opción elegida", 4, align.Left),
		h("Ajuste base", 2, align.Right),
		h("Ajuste adicional", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableOptionRows: una fila por categoría con opción elegida.
func tableOptionRows(bd *pricing.Breakdown) []core.Row {
	result := make([]core.Row, 0, len(bd.Categories))
	for _, c := range bd.Categories {
		label := kindLabels[c.Kind]
		if label == "" {
			label = string(c.Kind)
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				label,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				c.ValueName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				moneyfmt.Pesos(c.BaseAdjustment),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				moneyfmt.Pesos(c.AdditionalAdjustment),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				moneyfmt.Pesos(c.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(bd *pricing.Breakdown) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Precio base:"),
			label("Ajuste por tamaño:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value(moneyfmt.Pesos(bd.BasePrice)),
			value(moneyfmt.Pesos(bd.SizeAdjustment)),
			grandValue(moneyfmt.Pesos(bd.Total)),
		),
		col.New(3),
	)
}

// footerRow: validez de la cotización.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Cotización válida por 15 días. El precio final se confirma al verificar "+
				"las medidas en sitio.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}
