package dataset

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	errVacio    = errors.New("vacío")
	errNegativo = errors.New("negativo")
)

var layoutsISO = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006/01/02",
	"2006/01/02 15:04:05",
}

var layoutsDiaPrimero = []string{
	"02/01/2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02-01-2006",
	"02-01-2006 15:04:05",
	"2/1/2006",
	"02/01/06",
	"2/1/06",
}

var layoutsMesPrimero = []string{
	"01/02/2006",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01-02-2006",
	"01-02-2006 15:04:05",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
}

// Parser interpreta las celdas de texto de fecha y cantidad.
// DiaPrimero resuelve las fechas ambiguas dd/mm vs mm/dd (Chile usa día primero).
type Parser struct {
	Location   *time.Location
	DiaPrimero bool
}

// NewParser construye el parser con zona horaria (UTC si loc es nil).
func NewParser(loc *time.Location, diaPrimero bool) Parser {
	if loc == nil {
		loc = time.UTC
	}
	return Parser{Location: loc, DiaPrimero: diaPrimero}
}

// Fecha interpreta una celda de fecha. Devuelve ok=false si está vacía o no es reconocible;
// serial se usa para números de serie de hoja de cálculo (puede ser nil).
func (p Parser) Fecha(s string, serial SerialFunc) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	if serial != nil {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			if n <= 0 {
				return time.Time{}, false
			}
			t, err := serial(n)
			if err != nil {
				return time.Time{}, false
			}
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), true
		}
	}
	layouts := append([]string{}, layoutsISO...)
	if p.DiaPrimero {
		layouts = append(layouts, layoutsDiaPrimero...)
	} else {
		layouts = append(layouts, layoutsMesPrimero...)
	}
	for _, l := range layouts {
		if t, err := time.ParseInLocation(l, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Decimal interpreta una cantidad o precio no negativo. Acepta coma decimal
// ("12,5") y separador de miles con punto ("1.234,56").
func (p Parser) Decimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errVacio
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		d, err = decimal.NewFromString(normalizarNumero(s))
		if err != nil {
			return decimal.Zero, err
		}
	}
	if d.IsNegative() {
		return decimal.Zero, errNegativo
	}
	return d, nil
}

func normalizarNumero(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	coma := strings.LastIndex(s, ",")
	punto := strings.LastIndex(s, ".")
	switch {
	case coma >= 0 && punto >= 0 && coma > punto:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case coma >= 0 && punto >= 0:
		s = strings.ReplaceAll(s, ",", "")
	case coma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}
	return s
}

// NormalizarClave normaliza claves de O.T.: trim y sin ".0" final de los números leídos como float.
func NormalizarClave(s string) string {
	s = strings.TrimSpace(s)
	if base, ok := strings.CutSuffix(s, ".0"); ok && base != "" {
		if _, err := strconv.ParseInt(base, 10, 64); err == nil {
			return base
		}
	}
	return s
}
