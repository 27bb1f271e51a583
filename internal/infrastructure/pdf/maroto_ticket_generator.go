// Package pdf genera el comprobante de recogida de una canasta vendida.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: Tienda + N° canasta + fecha venta   │
//	│  COMPRADOR: negocio, tipo, dirección          │
//	│  TABLA: Cant | Producto                       │
//	│  TOTAL: precio final + ventana de recogida    │
//	└──────────────────────────────────────────────┘
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

	appcrate "github.com/wastenot/surplus-api/internal/application/crate"
	"github.com/wastenot/surplus-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 34, Green: 102, Blue: 68}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appcrate.TicketGenerator = (*MarotoTicketGenerator)(nil)

// MarotoTicketGenerator implementa crate.TicketGenerator usando Maroto v2.
type MarotoTicketGenerator struct{}

// NewMarotoTicketGenerator construye el generador.
func NewMarotoTicketGenerator() *MarotoTicketGenerator { return &MarotoTicketGenerator{} }

// GeneratePickupTicket genera el PDF y devuelve sus bytes.
func (g *MarotoTicketGenerator) GeneratePickupTicket(
	_ context.Context,
	crate *entity.SurplusCrate,
	business *entity.LocalBusiness,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de recogida", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(crate))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(buyerRow(business))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	for _, item := range crate.Items {
		m.AddRows(itemRow(item))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(crate))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: tienda + identificador de canasta y fecha de publicación.
func headerRow(crate *entity.SurplusCrate) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE RECOGIDA", props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
			}),
			text.New("Tienda: "+crate.StoreID, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Canasta "+shortID(crate.ID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Publicada: "+crate.ListedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// buyerRow: datos del negocio comprador.
func buyerRow(business *entity.LocalBusiness) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("COMPRADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s (%s)   |   %s", business.Name, business.Type, nonEmpty(business.Address, "—")),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New("Cant.", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
		col.New(10).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
	)
}

func itemRow(item entity.CrateLineItem) core.Row {
	return row.New(6).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 8, Top: 1})),
		col.New(10).Add(text.New(item.Name, props.Text{Size: 8, Top: 1})),
	)
}

// totalsRow: precio final pactado y ventana de recogida.
func totalsRow(crate *entity.SurplusCrate) core.Row {
	finalPrice := "—"
	if crate.FinalPrice != nil {
		finalPrice = "$" + crate.FinalPrice.StringFixed(2)
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Ventana de recogida:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 2}),
			text.New(crate.PickupWindow, props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("TOTAL PAGADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
			text.New(finalPrice, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
		),
	)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
