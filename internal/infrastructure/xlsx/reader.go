// Package xlsx lee los datasets de entrada desde libros Excel y escribe el reporte de dos hojas.
package xlsx

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/seguimiento-obra/internal/domain"
	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
)

// Leer carga la primera hoja del libro como tabla: la fila 1 es la cabecera.
// Las celdas se leen sin formato: las fechas llegan como número de serie y se
// interpretan con el sistema de fechas del libro (1900 o 1904).
func Leer(nombre string, r io.Reader) (*dataset.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: el archivo de %s no es un xlsx válido: %v", domain.ErrInvalidInput, nombre, err)
	}
	defer func() { _ = f.Close() }()

	hojas := f.GetSheetList()
	if len(hojas) == 0 {
		return nil, fmt.Errorf("%w: el archivo de %s no tiene hojas", domain.ErrInvalidInput, nombre)
	}
	filas, err := f.GetRows(hojas[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q de %s: %w", hojas[0], nombre, err)
	}

	var t *dataset.Table
	if len(filas) == 0 {
		t = dataset.NewTable(nombre, nil, nil)
	} else {
		t = dataset.NewTable(nombre, filas[0], filas[1:])
	}
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, fmt.Errorf("leer propiedades del libro de %s: %w", nombre, err)
	}
	t.FechaSerial = FechaSerial(props.Date1904 != nil && *props.Date1904)
	return t, nil
}

// FechaSerial convierte números de serie de Excel a fecha. date1904 indica el
// sistema de fechas del libro (Excel para Mac antiguo).
func FechaSerial(date1904 bool) dataset.SerialFunc {
	return func(serial float64) (time.Time, error) {
		return excelize.ExcelDateToTime(serial, date1904)
	}
}
