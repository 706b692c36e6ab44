// Package lector elige el lector de tabla según la extensión del archivo. Lo usan la API
// y la línea de comandos para aceptar los mismos formatos.
package lector

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jhoicas/seguimiento-obra/internal/domain"
	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
	"github.com/jhoicas/seguimiento-obra/internal/infrastructure/csv"
	"github.com/jhoicas/seguimiento-obra/internal/infrastructure/xlsx"
)

// Func convierte un archivo en tabla; nombre es el dataset (Entradas, Salidas, Obras).
type Func func(nombre string, r io.Reader) (*dataset.Table, error)

// Registro extensión en minúsculas con punto (".xlsx") -> lector.
type Registro map[string]Func

// Predeterminado libros Excel (.xlsx, .xlsm) y CSV.
func Predeterminado() Registro {
	return Registro{
		".xlsx": xlsx.Leer,
		".xlsm": xlsx.Leer,
		".csv":  csv.Leer,
	}
}

// Para devuelve el lector del archivo según su extensión, o domain.ErrUnsupportedFormat.
func (r Registro) Para(nombre, archivo string) (Func, error) {
	leer, ok := r[strings.ToLower(filepath.Ext(archivo))]
	if !ok {
		return nil, fmt.Errorf("%w: %s (%q); se aceptan %s", domain.ErrUnsupportedFormat, nombre, archivo, r.Extensiones())
	}
	return leer, nil
}

// Extensiones lista ordenada, separada por comas.
func (r Registro) Extensiones() string {
	exts := make([]string, 0, len(r))
	for e := range r {
		exts = append(exts, e)
	}
	slices.Sort(exts)
	return strings.Join(exts, ", ")
}
