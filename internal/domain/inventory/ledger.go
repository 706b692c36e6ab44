package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/seguimiento-obra/internal/domain/entity"
)

// MovimientoLedger fila de la vista unificada de entradas y salidas.
type MovimientoLedger struct {
	Fecha          time.Time
	FechaValida    bool
	Material       string
	Articulo       string
	Cantidad       decimal.Decimal
	TipoMovimiento string
	Tipo           string // entity.TipoEntrada | entity.TipoSalida
}

// ConstruirMovimientos concatena entradas y salidas, las etiqueta y ordena por fecha
// (estable: a igual fecha la entrada va antes; fechas inválidas al final).
func ConstruirMovimientos(entradas []entity.Entrada, salidas []entity.Salida) []MovimientoLedger {
	out := make([]MovimientoLedger, 0, len(entradas)+len(salidas))
	for _, e := range entradas {
		out = append(out, fila(e.Movimiento, entity.TipoEntrada))
	}
	for _, s := range salidas {
		out = append(out, fila(s.Movimiento, entity.TipoSalida))
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.FechaValida != b.FechaValida {
			return a.FechaValida
		}
		return a.FechaValida && a.Fecha.Before(b.Fecha)
	})
	return out
}

func fila(m entity.Movimiento, tipo string) MovimientoLedger {
	return MovimientoLedger{
		Fecha:          m.Fecha,
		FechaValida:    m.FechaValida,
		Material:       m.Material,
		Articulo:       m.Articulo,
		Cantidad:       m.Cantidad,
		TipoMovimiento: m.TipoMovimiento,
		Tipo:           tipo,
	}
}
