// Package dataset modela los archivos tabulares cargados (entradas, salidas, obras):
// normalización de cabeceras, validación de columnas obligatorias, cruce con obras
// y conversión de celdas de texto a fechas y decimales.
package dataset

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SerialFunc convierte un número de serie de fecha de hoja de cálculo a time.Time.
// Lo aporta el lector xlsx; las fuentes sin seriales lo dejan en nil.
type SerialFunc func(serial float64) (time.Time, error)

// Table tabla en memoria con cabeceras normalizadas (minúsculas, sin espacios al borde).
// Todas las celdas se guardan como texto; la interpretación ocurre al filtrar.
type Table struct {
	Nombre      string
	Columnas    []string
	Filas       [][]string
	FechaSerial SerialFunc

	indice map[string]int
}

// NewTable construye la tabla normalizando cabeceras. Las filas completamente vacías se descartan
// y las filas cortas se completan con celdas vacías.
func NewTable(nombre string, cabecera []string, filas [][]string) *Table {
	t := &Table{
		Nombre:   nombre,
		Columnas: make([]string, len(cabecera)),
		indice:   make(map[string]int, len(cabecera)),
	}
	for i, c := range cabecera {
		col := NormalizarColumna(c)
		t.Columnas[i] = col
		if _, dup := t.indice[col]; !dup {
			t.indice[col] = i
		}
	}
	t.Filas = make([][]string, 0, len(filas))
	for _, f := range filas {
		if filaVacia(f) {
			continue
		}
		fila := make([]string, len(cabecera))
		copy(fila, f)
		t.Filas = append(t.Filas, fila)
	}
	return t
}

// NormalizarColumna minúsculas y sin espacios al borde.
func NormalizarColumna(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// Len número de filas de datos.
func (t *Table) Len() int { return len(t.Filas) }

// Has indica si existe la columna (ya normalizada).
func (t *Table) Has(col string) bool {
	_, ok := t.indice[col]
	return ok
}

// Valor devuelve la celda de la fila i en la columna col, sin espacios al borde.
// Devuelve "" si la columna no existe.
func (t *Table) Valor(i int, col string) string {
	j, ok := t.indice[col]
	if !ok || i < 0 || i >= len(t.Filas) {
		return ""
	}
	return strings.TrimSpace(t.Filas[i][j])
}

// NumeroFila fila en la hoja de origen para la fila de datos i (la cabecera es la fila 1).
func (t *Table) NumeroFila(i int) int { return i + 2 }

func filaVacia(f []string) bool {
	for _, v := range f {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
