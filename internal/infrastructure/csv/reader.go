// Package csv lee los datasets exportados como texto separado por comas o punto y coma.
package csv

import (
	"bytes"
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/seguimiento-obra/internal/domain"
	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Leer carga el archivo como tabla: la primera línea es la cabecera.
// Acepta UTF-8 (con o sin BOM) y, si el contenido no es UTF-8 válido, lo
// decodifica como Windows-1252, la codificación de las exportaciones del ERP.
func Leer(nombre string, r io.Reader) (*dataset.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer csv de %s: %w", nombre, err)
	}
	data = bytes.TrimPrefix(data, bom)
	if len(bytes.TrimSpace(data)) == 0 {
		return dataset.NewTable(nombre, nil, nil), nil
	}

	if !utf8.Valid(data) {
		data, err = io.ReadAll(transform.NewReader(bytes.NewReader(data), charmap.Windows1252.NewDecoder()))
		if err != nil {
			return nil, fmt.Errorf("%w: el archivo de %s tiene una codificación no soportada: %v", domain.ErrInvalidInput, nombre, err)
		}
	}

	cr := stdcsv.NewReader(bytes.NewReader(data))
	cr.Comma = separador(data)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	filas, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: el archivo de %s no es un csv válido: %v", domain.ErrInvalidInput, nombre, err)
	}
	if len(filas) == 0 {
		return dataset.NewTable(nombre, nil, nil), nil
	}
	return dataset.NewTable(nombre, filas[0], filas[1:]), nil
}

// separador elige ';' cuando la cabecera tiene más puntos y coma que comas.
func separador(data []byte) rune {
	linea := string(data)
	if i := strings.IndexAny(linea, "\r\n"); i >= 0 {
		linea = linea[:i]
	}
	if strings.Count(linea, ";") > strings.Count(linea, ",") {
		return ';'
	}
	return ','
}
