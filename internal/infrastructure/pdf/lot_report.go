// Package pdf genera la versión imprimible del análisis de lotes.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: O.T. + obra + centro de costo │ alcance + fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: lotes / cantidad / residual / costo / valor       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LOTES: Fecha | Cant. | Consumido | Residual | Estado | ... │
//	│  MOVIMIENTOS: Fecha | Tipo | Tipo Mov. | Cantidad | ...     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ADVERTENCIAS + QR con el ID del reporte                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/seguimiento-obra/internal/application/seguimiento"
	"github.com/jhoicas/seguimiento-obra/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 31, Green: 78, Blue: 120}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlerta  = &props.Color{Red: 170, Green: 60, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ seguimiento.ReportGenerator = (*LotReportGenerator)(nil)

// LotReportGenerator implementa seguimiento.ReportGenerator usando Maroto v2.
type LotReportGenerator struct {
	autor string
}

// NewLotReportGenerator construye el generador.
func NewLotReportGenerator(autor string) *LotReportGenerator {
	return &LotReportGenerator{autor: autor}
}

// GenerarReporte genera el PDF y devuelve sus bytes.
func (g *LotReportGenerator) GenerarReporte(ctx context.Context, a *seguimiento.Analisis) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(fmt.Sprintf("Seguimiento O.T. %s", a.Obra.Numero), true).
		WithAuthor(g.autor, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(a))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalesRow(a.Totales(), a.Resultado.PrecioPromedio))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tituloSeccion("ANÁLISIS DE LOTES"))
	m.AddRows(cabeceraTabla(columnasLotes))
	m.AddRows(filasLotes(a.Resultado.Lotes)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(tituloSeccion("MOVIMIENTOS"))
	m.AddRows(cabeceraTabla(columnasMovimientos))
	m.AddRows(filasMovimientos(a.Movimientos)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(pieRows(a)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(a *seguimiento.Analisis) core.Row {
	obra := fmt.Sprintf("O.T. %s  ·  %s", a.Obra.Numero, a.Obra.NombreVisible())
	return row.New(18).Add(
		col.New(7).Add(
			text.New(obra, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Centro de costo: "+noVacio(a.Obra.CentroCosto, "-"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SEGUIMIENTO DE MATERIALES (FIFO)", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(a.Alcance.Material+" / "+a.Alcance.Articulo, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Generado: "+a.GeneradoEn.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func totalesRow(t seguimiento.Totales, precioPromedio decimal.Decimal) core.Row {
	celda := func(etiqueta, valor string) core.Col {
		return col.New(2).Add(
			text.New(etiqueta, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(valor, props.Text{Style: fontstyle.Bold, Size: 9, Top: 5, Align: align.Center}),
		)
	}
	return row.New(12).Add(
		celda("Lotes", fmt.Sprintf("%d (%d agotados)", t.Lotes, t.LotesAgotados)),
		celda("Cantidad", formatoNumero(t.CantidadTotal, 2)),
		celda("Residual", formatoNumero(t.Residual, 2)),
		celda("Precio promedio", "$"+formatoNumero(precioPromedio, 2)),
		celda("Costo consumido", fmt.Sprintf("$%s ($%s/u)", formatoNumero(t.CostoTotal, 2), formatoNumero(t.CostoUnitario, 2))),
		celda("Valor en bodega", "$"+formatoNumero(t.ValorBodega, 2)),
	)
}

type columna struct {
	titulo string
	ancho  int
	alin   align.Type
}

var (
	columnasLotes = []columna{
		{"Fecha", 2, align.Center},
		{"Cantidad", 1, align.Right},
		{"Consumido", 1, align.Right},
		{"Residual", 1, align.Right},
		{"Estado", 3, align.Left},
		{"Agotamiento", 2, align.Center},
		{"Costo", 2, align.Right},
	}
	columnasMovimientos = []columna{
		{"Fecha", 2, align.Center},
		{"Tipo", 1, align.Center},
		{"Tipo Mov.", 3, align.Left},
		{"Cantidad", 2, align.Right},
		{"Material", 2, align.Left},
		{"Artículo", 2, align.Left},
	}
)

func tituloSeccion(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func cabeceraTabla(cols []columna) core.Row {
	cs := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cs = append(cs, col.New(c.ancho).Add(text.New(c.titulo, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: c.alin, Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cs...)
}

func filaTabla(cols []columna, valores ...string) core.Row {
	cs := make([]core.Col, 0, len(cols))
	for i, c := range cols {
		cs = append(cs, col.New(c.ancho).Add(text.New(valores[i], props.Text{
			Size: 7, Align: c.alin, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(5).Add(cs...)
}

func filasLotes(lotes []inventory.ResultadoLote) []core.Row {
	if len(lotes) == 0 {
		return []core.Row{sinFilas("Sin lotes en el alcance.")}
	}
	out := make([]core.Row, 0, len(lotes))
	for _, l := range lotes {
		agot := "-"
		if l.FechaAgotamiento != nil {
			agot = l.FechaAgotamiento.Format("02/01/2006")
		}
		out = append(out, filaTabla(columnasLotes,
			l.FechaEntrada.Format("02/01/2006"),
			formatoNumero(l.CantidadLote, 2),
			formatoNumero(l.Consumido, 2),
			formatoNumero(l.Residual, 2),
			l.Estado,
			agot,
			"$"+formatoNumero(l.CostoLote, 2),
		))
	}
	return out
}

func filasMovimientos(movs []inventory.MovimientoLedger) []core.Row {
	if len(movs) == 0 {
		return []core.Row{sinFilas("Sin movimientos.")}
	}
	out := make([]core.Row, 0, len(movs))
	for _, m := range movs {
		fecha := "sin fecha"
		if m.FechaValida {
			fecha = m.Fecha.Format("02/01/2006")
		}
		out = append(out, filaTabla(columnasMovimientos,
			fecha, m.Tipo, m.TipoMovimiento, formatoNumero(m.Cantidad, 2), m.Material, m.Articulo,
		))
	}
	return out
}

func sinFilas(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 7, Color: colorGray, Top: 1, Left: 1}),
	))
}

// pieRows advertencias del análisis y QR con el ID del reporte.
func pieRows(a *seguimiento.Analisis) []core.Row {
	var rows []core.Row
	if len(a.Advertencias) > 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("ADVERTENCIAS", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorAlerta, Top: 1}),
		)))
		for _, adv := range a.Advertencias {
			rows = append(rows, row.New(5).Add(col.New(12).Add(
				text.New("• "+adv, props.Text{Size: 7, Color: colorAlerta, Top: 0.5, Left: 2}),
			)))
		}
		rows = append(rows, row.New(3))
	}

	if a.ID != "" {
		rows = append(rows, row.New(30).Add(
			col.New(3).Add(code.NewQr(a.ID, props.Rect{Percent: 95, Center: true})),
			col.New(9).Add(
				text.New("ID del reporte", props.Text{Style: fontstyle.Bold, Size: 8, Top: 6, Left: 3, Color: colorPrimary}),
				text.New(a.ID, props.Text{Size: 7, Top: 12, Left: 3, Color: colorGray}),
			),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func noVacio(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatoNumero redondea a dec decimales con punto de miles y coma decimal.
// Ej: 1234567.5 → "1.234.567,50", -40 → "-40,00"
func formatoNumero(d decimal.Decimal, dec int32) string {
	s := d.StringFixedBank(dec)
	signo := ""
	if strings.HasPrefix(s, "-") {
		signo, s = "-", s[1:]
	}
	entero, frac, _ := strings.Cut(s, ".")

	n := len(entero)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(entero) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if frac != "" {
		return signo + string(buf) + "," + frac
	}
	return signo + string(buf)
}
