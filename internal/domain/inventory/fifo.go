// Package inventory contiene el motor FIFO de consumo de lotes: empareja cada entrada (lote)
// con las salidas en orden cronológico y calcula agotamiento, residual, costo y valor en bodega.
package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/seguimiento-obra/internal/domain/entity"
)

// SalidaConsumo salida con su contador de consumo acumulado.
// Consumido solo crece y nunca supera Salida.Cantidad.
type SalidaConsumo struct {
	Salida    entity.Salida
	Consumido decimal.Decimal
}

// Disponible capacidad que aún no se asignó a ningún lote.
func (s *SalidaConsumo) Disponible() decimal.Decimal {
	return s.Salida.Cantidad.Sub(s.Consumido)
}

// LedgerConsumo cola FIFO de salidas compartida por todos los lotes de una ejecución.
// Cada lote ve el estado de consumo que dejaron los lotes anteriores.
type LedgerConsumo struct {
	Salidas []*SalidaConsumo
}

// NuevoLedgerConsumo arma el ledger con las salidas de fecha válida, en orden cronológico estable.
func NuevoLedgerConsumo(salidas []entity.Salida) *LedgerConsumo {
	ordenadas := OrdenarSalidas(salidas)
	l := &LedgerConsumo{Salidas: make([]*SalidaConsumo, 0, len(ordenadas))}
	for _, s := range ordenadas {
		if !s.FechaValida {
			continue
		}
		l.Salidas = append(l.Salidas, &SalidaConsumo{Salida: s, Consumido: decimal.Zero})
	}
	return l
}

// Consumo porción de una salida asignada a un lote.
type Consumo struct {
	FilaSalida     int
	Fecha          time.Time
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	Costo          decimal.Decimal
}

// Consumir asigna hasta cantidad unidades recorriendo las salidas desde la más antigua.
// Las salidas ya agotadas se saltan sin quitarlas de la cola. El recorrido se corta en cuanto
// el lote queda cubierto; agotamiento es la salida que consumió la última unidad (nil si no se cubrió).
func (l *LedgerConsumo) Consumir(cantidad decimal.Decimal) (consumos []Consumo, restante decimal.Decimal, agotamiento *SalidaConsumo) {
	restante = cantidad
	for _, s := range l.Salidas {
		disponible := s.Disponible()
		if !disponible.IsPositive() {
			continue
		}
		tomar := decimal.Min(restante, disponible)
		s.Consumido = s.Consumido.Add(tomar)
		restante = restante.Sub(tomar)
		consumos = append(consumos, Consumo{
			FilaSalida:     s.Salida.Fila,
			Fecha:          s.Salida.Fecha,
			Cantidad:       tomar,
			PrecioUnitario: s.Salida.PrecioUnitario,
			Costo:          tomar.Mul(s.Salida.PrecioUnitario),
		})
		if restante.IsZero() {
			return consumos, restante, s
		}
	}
	return consumos, restante, nil
}

// ResultadoLote análisis de un lote (una entrada).
type ResultadoLote struct {
	Material         string
	Articulo         string
	CodigoArticulo   string
	FilaEntrada      int
	FechaEntrada     time.Time
	CantidadLote     decimal.Decimal
	Consumido        decimal.Decimal
	Residual         decimal.Decimal // sin redondear
	Agotado          bool
	FechaAgotamiento *time.Time
	DiasAgotamiento  *int
	Estado           string
	CostoLote        decimal.Decimal
	ValorBodega      decimal.Decimal
	Consumos         []Consumo
}

// ResultadoFIFO salida del motor para un alcance (O.T. + material + artículo).
type ResultadoFIFO struct {
	Lotes          []ResultadoLote
	Ledger         *LedgerConsumo
	PrecioPromedio decimal.Decimal
	// Excluidas entradas y salidas sin fecha válida; no participan del emparejamiento.
	Excluidas []entity.Movimiento
}

// CalcularConsumoLotes ejecuta el emparejamiento FIFO. entradas y salidas deben estar filtradas
// a un único alcance. No modifica los slices recibidos ni guarda estado entre llamadas.
func CalcularConsumoLotes(entradas []entity.Entrada, salidas []entity.Salida) ResultadoFIFO {
	res := ResultadoFIFO{
		Ledger:         NuevoLedgerConsumo(salidas),
		PrecioPromedio: PrecioPromedio(salidas),
		Lotes:          make([]ResultadoLote, 0, len(entradas)),
	}
	for _, s := range salidas {
		if !s.FechaValida {
			res.Excluidas = append(res.Excluidas, s.Movimiento)
		}
	}

	for _, e := range OrdenarEntradas(entradas) {
		if !e.FechaValida {
			res.Excluidas = append(res.Excluidas, e.Movimiento)
			continue
		}
		consumos, restante, agotamiento := res.Ledger.Consumir(e.Cantidad)

		lote := ResultadoLote{
			Material:       e.Material,
			Articulo:       e.Articulo,
			CodigoArticulo: e.CodigoArticulo,
			FilaEntrada:    e.Fila,
			FechaEntrada:   e.Fecha,
			CantidadLote:   e.Cantidad,
			Consumido:      e.Cantidad.Sub(restante),
			Residual:       restante,
			CostoLote:      decimal.Zero,
			Consumos:       consumos,
		}
		for _, c := range consumos {
			lote.CostoLote = lote.CostoLote.Add(c.Costo)
		}

		if restante.IsZero() && agotamiento != nil {
			fecha := agotamiento.Salida.Fecha
			dias := DiasEntre(e.Fecha, fecha)
			lote.Agotado = true
			lote.FechaAgotamiento = &fecha
			lote.DiasAgotamiento = &dias
			lote.Estado = EstadoAgotado(dias)
			lote.ValorBodega = decimal.Zero
		} else {
			lote.Estado = EstadoDisponible(restante)
			lote.ValorBodega = ValorBodega(restante, res.PrecioPromedio)
		}
		res.Lotes = append(res.Lotes, lote)
	}
	return res
}

// OrdenarEntradas copia y ordena por fecha (estable, fechas inválidas al final).
func OrdenarEntradas(entradas []entity.Entrada) []entity.Entrada {
	out := make([]entity.Entrada, len(entradas))
	copy(out, entradas)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Antes(out[j].Movimiento) })
	return out
}

// OrdenarSalidas copia y ordena por fecha (estable, fechas inválidas al final).
func OrdenarSalidas(salidas []entity.Salida) []entity.Salida {
	out := make([]entity.Salida, len(salidas))
	copy(out, salidas)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Antes(out[j].Movimiento) })
	return out
}
