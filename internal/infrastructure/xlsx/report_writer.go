package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/seguimiento-obra/internal/application/seguimiento"
)

// Nombres de las hojas del reporte.
const (
	HojaLotes       = "Analisis Lotes"
	HojaMovimientos = "Movimientos"
)

var (
	cabeceraLotes = []string{
		"Material", "Artículo", "Código", "Fila", "Fecha Entrada", "Cantidad Lote", "Consumido",
		"Residual", "Estado", "Fecha Agotamiento", "Días", "Costo Lote", "Valor Bodega",
	}
	cabeceraMovimientos = []string{"Fecha", "Material", "Artículo", "Cantidad", "Tipo Movimiento", "Tipo"}

	anchosLotes       = []float64{18, 28, 12, 6, 14, 14, 12, 12, 30, 16, 8, 14, 14}
	anchosMovimientos = []float64{14, 18, 28, 12, 18, 8}
)

var _ seguimiento.ReportGenerator = (*ReportWriter)(nil)

// ReportWriter genera el reporte xlsx de dos hojas: lotes y ledger de movimientos.
type ReportWriter struct {
	Autor string
}

// NewReportWriter construye el writer; autor va a las propiedades del documento.
func NewReportWriter(autor string) *ReportWriter {
	return &ReportWriter{Autor: autor}
}

type estilos struct {
	cabecera, fecha, numero, moneda int
}

// GenerarReporte escribe el libro en memoria y devuelve sus bytes.
func (w *ReportWriter) GenerarReporte(ctx context.Context, a *seguimiento.Analisis) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", HojaLotes); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(HojaMovimientos); err != nil {
		return nil, err
	}
	est, err := nuevosEstilos(f)
	if err != nil {
		return nil, err
	}

	if err := escribirLotes(f, est, a); err != nil {
		return nil, fmt.Errorf("hoja %s: %w", HojaLotes, err)
	}
	if err := escribirMovimientos(f, est, a); err != nil {
		return nil, fmt.Errorf("hoja %s: %w", HojaMovimientos, err)
	}

	_ = f.SetDocProps(&excelize.DocProperties{
		Title:       fmt.Sprintf("Seguimiento O.T. %s - %s", a.Obra.Numero, a.Obra.NombreVisible()),
		Subject:     fmt.Sprintf("%s / %s", a.Alcance.Material, a.Alcance.Articulo),
		Creator:     w.Autor,
		Identifier:  a.ID,
		Created:     a.GeneradoEn.UTC().Format("2006-01-02T15:04:05Z"),
		Description: "Análisis FIFO de lotes",
	})
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func nuevosEstilos(f *excelize.File) (estilos, error) {
	var (
		e   estilos
		err error
	)
	e.cabecera, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1F4E78"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return e, err
	}
	formatoFecha := "dd/mm/yyyy"
	if e.fecha, err = f.NewStyle(&excelize.Style{CustomNumFmt: &formatoFecha}); err != nil {
		return e, err
	}
	if e.numero, err = f.NewStyle(&excelize.Style{NumFmt: 4}); err != nil { // #,##0.00
		return e, err
	}
	formatoMoneda := "$ #,##0.00"
	e.moneda, err = f.NewStyle(&excelize.Style{CustomNumFmt: &formatoMoneda})
	return e, err
}

func escribirLotes(f *excelize.File, est estilos, a *seguimiento.Analisis) error {
	hoja := HojaLotes
	if err := cabecera(f, hoja, cabeceraLotes, anchosLotes, est.cabecera); err != nil {
		return err
	}
	for i, l := range a.Resultado.Lotes {
		var fechaAgot, dias any
		if l.FechaAgotamiento != nil {
			fechaAgot = *l.FechaAgotamiento
		}
		if l.DiasAgotamiento != nil {
			dias = *l.DiasAgotamiento
		}
		fila := []any{
			l.Material, l.Articulo, l.CodigoArticulo, l.FilaEntrada, l.FechaEntrada,
			numero(l.CantidadLote), numero(l.Consumido), numero(l.Residual), l.Estado,
			fechaAgot, dias, numero(l.CostoLote), numero(l.ValorBodega),
		}
		celda, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(hoja, celda, &fila); err != nil {
			return err
		}
	}
	n := len(a.Resultado.Lotes) + 1
	if n > 1 {
		if err := estiloColumna(f, hoja, 5, n, est.fecha); err != nil {
			return err
		}
		if err := estiloColumna(f, hoja, 10, n, est.fecha); err != nil {
			return err
		}
		for _, c := range []int{6, 7, 8} {
			if err := estiloColumna(f, hoja, c, n, est.numero); err != nil {
				return err
			}
		}
		for _, c := range []int{12, 13} {
			if err := estiloColumna(f, hoja, c, n, est.moneda); err != nil {
				return err
			}
		}
	}
	return congelarYFiltrar(f, hoja, len(cabeceraLotes), n)
}

func escribirMovimientos(f *excelize.File, est estilos, a *seguimiento.Analisis) error {
	hoja := HojaMovimientos
	if err := cabecera(f, hoja, cabeceraMovimientos, anchosMovimientos, est.cabecera); err != nil {
		return err
	}
	for i, m := range a.Movimientos {
		var fecha any = "sin fecha"
		if m.FechaValida {
			fecha = m.Fecha
		}
		fila := []any{fecha, m.Material, m.Articulo, numero(m.Cantidad), m.TipoMovimiento, m.Tipo}
		celda, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(hoja, celda, &fila); err != nil {
			return err
		}
	}
	n := len(a.Movimientos) + 1
	if n > 1 {
		if err := estiloColumna(f, hoja, 1, n, est.fecha); err != nil {
			return err
		}
		if err := estiloColumna(f, hoja, 4, n, est.numero); err != nil {
			return err
		}
	}
	return congelarYFiltrar(f, hoja, len(cabeceraMovimientos), n)
}

func cabecera(f *excelize.File, hoja string, titulos []string, anchos []float64, estilo int) error {
	fila := make([]any, len(titulos))
	for i, t := range titulos {
		fila[i] = t
	}
	if err := f.SetSheetRow(hoja, "A1", &fila); err != nil {
		return err
	}
	ultima, _ := excelize.CoordinatesToCellName(len(titulos), 1)
	if err := f.SetCellStyle(hoja, "A1", ultima, estilo); err != nil {
		return err
	}
	for i, w := range anchos {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(hoja, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

func estiloColumna(f *excelize.File, hoja string, col, ultimaFila, estilo int) error {
	desde, _ := excelize.CoordinatesToCellName(col, 2)
	hasta, _ := excelize.CoordinatesToCellName(col, ultimaFila)
	return f.SetCellStyle(hoja, desde, hasta, estilo)
}

// congelarYFiltrar fija la cabecera y activa el autofiltro sobre la tabla.
func congelarYFiltrar(f *excelize.File, hoja string, columnas, filas int) error {
	if err := f.SetPanes(hoja, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	hasta, _ := excelize.CoordinatesToCellName(columnas, filas)
	return f.AutoFilter(hoja, "A1:"+hasta, nil)
}

// numero decimal -> float64 para que Excel lo trate como número.
func numero(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
