package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrSchema            = errors.New("estructura de archivo inválida")
	ErrMissingInput      = errors.New("faltan archivos: se requieren entradas, salidas y obras")
	ErrDataQuality       = errors.New("datos inválidos en el archivo")
	ErrUnsupportedFormat = errors.New("formato no soportado")
)

// SchemaError indica que a un dataset le falta una columna obligatoria.
// Es terminal: ningún cálculo posterior se ejecuta.
type SchemaError struct {
	Dataset string
	Columna string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("la columna '%s' no está en el archivo de %s. Verifica los nombres de columna", e.Columna, e.Dataset)
}

// Unwrap permite errors.Is(err, ErrSchema).
func (e *SchemaError) Unwrap() error { return ErrSchema }

// DataQualityError describe un valor que no se pudo interpretar (fecha, cantidad o precio).
// Fila es 1-based contando la cabecera como fila 1, igual que en la hoja de cálculo.
type DataQualityError struct {
	Dataset string
	Fila    int
	Columna string
	Valor   string
	Causa   string
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("%s fila %d, columna '%s': valor %q %s", e.Dataset, e.Fila, e.Columna, e.Valor, e.Causa)
}

// Unwrap permite errors.Is(err, ErrDataQuality).
func (e *DataQualityError) Unwrap() error { return ErrDataQuality }
