// Package pdf implementa la carta imprimible de una empresa usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la empresa + contacto                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CATEGORÍA                                                   │
//	│    Ítem — descripción                        desde $ 10,00   │
//	│      · Variante (tamaño)                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de precios aproximados                      │
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/carta-api/internal/application/usecase"
	"github.com/jhoicas/carta-api/internal/domain/entity"
	"github.com/jhoicas/carta-api/internal/domain/pricing"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 120, Green: 45, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.MenuPDFGenerator = (*MarotoMenuGenerator)(nil)

// MarotoMenuGenerator implementa usecase.MenuPDFGenerator usando Maroto v2.
type MarotoMenuGenerator struct {
	printer *message.Printer
}

// NewMarotoMenuGenerator construye el generador con formato numérico es.
func NewMarotoMenuGenerator() *MarotoMenuGenerator {
	return &MarotoMenuGenerator{printer: message.NewPrinter(language.Spanish)}
}

// GenerateMenuPDF genera la carta y devuelve sus bytes. Los precios mostrados
// son el "desde" aproximado del barrido sin contexto; el precio exacto depende
// de sede/canal y se resuelve en el pedido.
func (g *MarotoMenuGenerator) GenerateMenuPDF(_ context.Context, company *entity.Company, items []*entity.Item) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).WithRightMargin(14).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Carta — "+company.Name, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, section := range groupByCategory(items) {
		if section.name != "" {
			m.AddRows(categoryRow(section.name))
		}
		for _, it := range section.items {
			for _, r := range g.itemRows(it) {
				m.AddRows(r)
			}
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(
		col.New(12).Add(text.New(
			"Precios \"desde\"; el importe final depende de sede, canal y cantidad.",
			props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center},
		)),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar carta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la empresa y datos de contacto.
func (g *MarotoMenuGenerator) headerRow(company *entity.Company) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1, Align: align.Center,
			}),
			text.New(fmt.Sprintf("%s   |   %s",
				nonEmpty(company.Address, "—"),
				nonEmpty(company.Phone, "—"),
			), props.Text{Size: 8, Top: 11, Color: colorGray, Align: align.Center}),
		),
	)
}

// categoryRow: título de sección de la carta.
func categoryRow(name string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New(name, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3,
		})),
	)
}

// itemRows: nombre + descripción a la izquierda, precio "desde" a la derecha,
// y debajo la lista de variantes.
func (g *MarotoMenuGenerator) itemRows(item *entity.Item) []core.Row {
	rows := make([]core.Row, 0, 2)

	fromLabel := "—"
	if min := pricing.FindMinBasePrice(item); min != nil {
		fromLabel = "desde " + g.formatMoney(*min)
	}

	rows = append(rows, row.New(9).Add(
		col.New(9).Add(
			text.New(item.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
			text.New(item.Description, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
		col.New(3).Add(
			text.New(fromLabel, props.Text{Size: 9, Align: align.Right, Top: 1}),
		),
	))

	if len(item.Variants) > 1 {
		labels := ""
		for i, v := range item.Variants {
			if i > 0 {
				labels += "  ·  "
			}
			labels += v.Name
			if v.SizeLabel != "" {
				labels += " (" + v.SizeLabel + ")"
			}
		}
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(text.New(labels, props.Text{Size: 7, Color: colorGray, Left: 3})),
		))
	}
	return rows
}

// formatMoney formatea el importe con separadores según locale es.
func (g *MarotoMenuGenerator) formatMoney(m entity.Money) string {
	amount, _ := m.Amount.Float64()
	return g.printer.Sprintf("%.2f %s", amount, m.Currency)
}

// ── Agrupación por categoría ──────────────────────────────────────────────────

type categorySection struct {
	name  string
	items []*entity.Item
}

// groupByCategory agrupa los ítems conservando el orden de llegada de las
// categorías (los ítems ya vienen ordenados por sort_order).
func groupByCategory(items []*entity.Item) []categorySection {
	var sections []categorySection
	index := make(map[string]int)
	for _, it := range items {
		i, ok := index[it.Category]
		if !ok {
			i = len(sections)
			index[it.Category] = i
			sections = append(sections, categorySection{name: it.Category})
		}
		sections[i].items = append(sections[i].items, it)
	}
	return sections
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
