// Package pdf implementa la generación del reporte del plan de cuentas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + NIT  │  Título del reporte           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cuenta | Descripción | Fuente | Centro Costos        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de cuentas                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/weimars70/conta-hencker/internal/application/reporte"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa reporte.PlanContablePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ reporte.PlanContablePDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarPlanContable genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarPlanContable(
	_ context.Context,
	empresa *entity.Empresa,
	cuentas []entity.CuentaPlan,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Plan de Cuentas", true).
		WithAuthor(empresa.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(empresa))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, c := range cuentas {
		m.AddRows(cuentaRow(c))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(pieRow(len(cuentas)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + NIT (izq) y título del reporte (der).
func headerRow(empresa *entity.Empresa) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(empresa.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+empresa.NIT+"-"+empresa.DgVerifica, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PLAN DE CUENTAS", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1, Color: colorPrimary,
			}),
			text.New("Empresa: "+empresa.Empresa, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	estilo := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(8).Add(
		col.New(3).Add(text.New("Cuenta", estilo)),
		col.New(5).Add(text.New("Descripción", estilo)),
		col.New(2).Add(text.New("Fuente", alinear(estilo, align.Right))),
		col.New(2).Add(text.New("C. Costos", alinear(estilo, align.Right))),
	)
}

func cuentaRow(c entity.CuentaPlan) core.Row {
	normal := props.Text{Size: 8, Top: 1}
	// Las cuentas mayores (hasta 6 dígitos) van en negrita para marcar la jerarquía.
	if len(c.Cuenta) <= 6 {
		normal.Style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(3).Add(text.New(c.Cuenta, normal)),
		col.New(5).Add(text.New(c.Descripcion, normal)),
		col.New(2).Add(text.New(opcional(c.Fuente), alinear(normal, align.Right))),
		col.New(2).Add(text.New(opcional(c.CentroCostos), alinear(normal, align.Right))),
	)
}

func pieRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de cuentas: %d", total), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 2,
			}),
		),
	)
}

func alinear(t props.Text, a align.Type) props.Text {
	t.Align = a
	return t
}

func opcional(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
