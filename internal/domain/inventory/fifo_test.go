package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seguimiento-obra/internal/domain/entity"
	"github.com/jhoicas/seguimiento-obra/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func entrada(fila int, f, cant string) entity.Entrada {
	return entity.Entrada{
		Movimiento: entity.Movimiento{
			Fila: fila, OT: "1001", Material: "ACERO", Articulo: "BARRA 12MM",
			Fecha: fecha(f), FechaValida: true, Cantidad: dec(cant), TipoMovimiento: "COMPRA",
		},
		CodigoArticulo: "AC-12",
	}
}

func salida(fila int, f, cant, precio string) entity.Salida {
	return entity.Salida{
		Movimiento: entity.Movimiento{
			Fila: fila, OT: "1001", Material: "ACERO", Articulo: "BARRA 12MM",
			Fecha: fecha(f), FechaValida: true, Cantidad: dec(cant), TipoMovimiento: "CONSUMO",
		},
		PrecioUnitario: dec(precio),
	}
}

func assertDec(t *testing.T, esperado string, got decimal.Decimal, msg ...string) {
	t.Helper()
	assert.Truef(t, dec(esperado).Equal(got), "esperado %s, obtenido %s %v", esperado, got.String(), msg)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios base
// ──────────────────────────────────────────────────────────────────────────────

// Un lote de 10 consumido por una salida de 10 a 4.0 cuatro días después.
func TestCalcularConsumoLotes_LoteAgotadoEnCuatroDias(t *testing.T) {
	res := inventory.CalcularConsumoLotes(
		[]entity.Entrada{entrada(2, "2024-01-01", "10")},
		[]entity.Salida{salida(2, "2024-01-05", "10", "4.0")},
	)

	require.Len(t, res.Lotes, 1)
	lote := res.Lotes[0]
	assert.Equal(t, "depleted in 4 days", lote.Estado)
	assert.True(t, lote.Agotado)
	require.NotNil(t, lote.DiasAgotamiento)
	assert.Equal(t, 4, *lote.DiasAgotamiento)
	assertDec(t, "40", lote.CostoLote)
	assertDec(t, "0", lote.ValorBodega)
	assertDec(t, "0", lote.Residual)
	assert.Equal(t, "AC-12", lote.CodigoArticulo)
}

// FIFO entre lotes: el lote antiguo se agota primero y el siguiente toma lo que queda.
func TestCalcularConsumoLotes_FIFOEntreLotes(t *testing.T) {
	res := inventory.CalcularConsumoLotes(
		[]entity.Entrada{
			entrada(3, "2024-01-02", "5"), // llega desordenado: el motor ordena por fecha
			entrada(2, "2024-01-01", "10"),
		},
		[]entity.Salida{salida(2, "2024-01-10", "12", "3.0")},
	)

	require.Len(t, res.Lotes, 2)
	e1, e2 := res.Lotes[0], res.Lotes[1]

	assert.Equal(t, 2, e1.FilaEntrada, "el lote más antiguo se procesa primero")
	assert.Equal(t, "depleted in 9 days", e1.Estado)
	assertDec(t, "30", e1.CostoLote)

	assert.Equal(t, "available, residual 3.0", e2.Estado)
	assertDec(t, "6", e2.CostoLote)
	assertDec(t, "3", e2.Residual)
	assertDec(t, "9", e2.ValorBodega, "3 unidades × precio promedio 3.0")

	require.Len(t, res.Ledger.Salidas, 1)
	assertDec(t, "12", res.Ledger.Salidas[0].Consumido)
}

// Sin salidas: todo disponible, residual = cantidad del lote y valor en bodega 0.
// Un lote cubierto por dos salidas a precios distintos: el costo suma cada porción a su precio.
func TestCalcularConsumoLotes_LoteConVariosPrecios(t *testing.T) {
	res := inventory.CalcularConsumoLotes(
		[]entity.Entrada{entrada(2, "2024-01-01", "10")},
		[]entity.Salida{
			salida(2, "2024-01-03", "4", "2.0"),
			salida(3, "2024-01-08", "10", "5.0"),
		},
	)

	require.Len(t, res.Lotes, 1)
	lote := res.Lotes[0]
	assertDec(t, "38", lote.CostoLote, "4×2 + 6×5")
	assert.Equal(t, "depleted in 7 days", lote.Estado)
	require.NotNil(t, lote.FechaAgotamiento)
	assert.Equal(t, fecha("2024-01-08"), *lote.FechaAgotamiento, "se agota con la segunda salida")

	require.Len(t, lote.Consumos, 2)
	assert.Equal(t, 2, lote.Consumos[0].FilaSalida)
	assertDec(t, "4", lote.Consumos[0].Cantidad)
	assertDec(t, "2", lote.Consumos[0].PrecioUnitario)
	assertDec(t, "8", lote.Consumos[0].Costo)
	assert.Equal(t, 3, lote.Consumos[1].FilaSalida)
	assertDec(t, "6", lote.Consumos[1].Cantidad)
	assertDec(t, "5", lote.Consumos[1].PrecioUnitario)
	assertDec(t, "30", lote.Consumos[1].Costo)

	require.Len(t, res.Ledger.Salidas, 2)
	assertDec(t, "4", res.Ledger.Salidas[0].Consumido)
	assertDec(t, "6", res.Ledger.Salidas[1].Consumido)
}

func TestCalcularConsumoLotes_SinSalidas(t *testing.T) {
	res := inventory.CalcularConsumoLotes(
		[]entity.Entrada{entrada(2, "2024-01-01", "7.5"), entrada(3, "2024-02-01", "4")},
		nil,
	)

	require.Len(t, res.Lotes, 2)
	assertDec(t, "0", res.PrecioPromedio)
	for _, l := range res.Lotes {
		assert.False(t, l.Agotado)
		assertDec(t, l.CantidadLote.String(), l.Residual)
		assertDec(t, "0", l.ValorBodega)
		assertDec(t, "0", l.CostoLote)
	}
	assert.Equal(t, "available, residual 7.5", res.Lotes[0].Estado)
	assert.Equal(t, "available, residual 4.0", res.Lotes[1].Estado)
}

func TestCalcularConsumoLotes_SinEntradas(t *testing.T) {
	res := inventory.CalcularConsumoLotes(nil, []entity.Salida{salida(2, "2024-01-05", "3", "1")})
	assert.Empty(t, res.Lotes)
	assertDec(t, "0", res.Ledger.Salidas[0].Consumido)
}

func TestPrecioPromedio(t *testing.T) {
	assertDec(t, "0", inventory.PrecioPromedio(nil))
	assertDec(t, "0", inventory.PrecioPromedio([]entity.Salida{}))
	assertDec(t, "2", inventory.PrecioPromedio([]entity.Salida{
		salida(2, "2024-01-01", "1", "1"),
		salida(3, "2024-01-02", "100", "3"),
	}), "media simple, no ponderada por cantidad")
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades
// ──────────────────────────────────────────────────────────────────────────────

// Conservación: consumido por salida + residual = cantidad del lote, para cualquier combinación.
func TestCalcularConsumoLotes_Conservacion(t *testing.T) {
	casos := []struct {
		nombre   string
		entradas []entity.Entrada
		salidas  []entity.Salida
	}{
		{
			nombre:   "más salidas que entradas",
			entradas: []entity.Entrada{entrada(2, "2024-01-01", "4")},
			salidas: []entity.Salida{
				salida(2, "2024-01-02", "1", "2"),
				salida(3, "2024-01-03", "1.5", "2"),
				salida(4, "2024-01-04", "10", "2"),
			},
		},
		{
			nombre: "una salida reparte entre varios lotes",
			entradas: []entity.Entrada{
				entrada(2, "2024-01-01", "3"),
				entrada(3, "2024-01-02", "3"),
				entrada(4, "2024-01-03", "3"),
			},
			salidas: []entity.Salida{salida(2, "2024-01-05", "7", "1.25")},
		},
		{
			nombre:   "decimales",
			entradas: []entity.Entrada{entrada(2, "2024-01-01", "0.333"), entrada(3, "2024-01-01", "2.1")},
			salidas:  []entity.Salida{salida(2, "2024-01-02", "0.1", "9.99"), salida(3, "2024-01-02", "0.2", "1")},
		},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			res := inventory.CalcularConsumoLotes(tc.entradas, tc.salidas)
			for _, l := range res.Lotes {
				suma := decimal.Zero
				for _, c := range l.Consumos {
					suma = suma.Add(c.Cantidad)
				}
				assertDec(t, l.CantidadLote.String(), suma.Add(l.Residual))
				assert.True(t, suma.LessThanOrEqual(l.CantidadLote))
			}
			for _, s := range res.Ledger.Salidas {
				assert.True(t, s.Consumido.LessThanOrEqual(s.Salida.Cantidad))
			}
		})
	}
}

// Consumo monótono: el acumulado de cada salida nunca baja ni supera su cantidad.
func TestLedgerConsumo_Monotono(t *testing.T) {
	ledger := inventory.NuevoLedgerConsumo([]entity.Salida{
		salida(2, "2024-01-02", "5", "1"),
		salida(3, "2024-01-03", "5", "1"),
	})
	previo := []decimal.Decimal{decimal.Zero, decimal.Zero}

	for _, cant := range []string{"2", "4", "1", "6"} {
		ledger.Consumir(dec(cant))
		for i, s := range ledger.Salidas {
			assert.True(t, s.Consumido.GreaterThanOrEqual(previo[i]))
			assert.True(t, s.Consumido.LessThanOrEqual(s.Salida.Cantidad))
			previo[i] = s.Consumido
		}
	}
	assertDec(t, "5", ledger.Salidas[0].Consumido)
	assertDec(t, "5", ledger.Salidas[1].Consumido)
}

// El recorrido se corta al cubrir el lote: las salidas posteriores quedan intactas.
func TestLedgerConsumo_CorteAlCubrirLote(t *testing.T) {
	ledger := inventory.NuevoLedgerConsumo([]entity.Salida{
		salida(2, "2024-01-02", "10", "1"),
		salida(3, "2024-01-03", "10", "1"),
	})

	consumos, restante, agotamiento := ledger.Consumir(dec("4"))

	require.Len(t, consumos, 1)
	assertDec(t, "0", restante)
	require.NotNil(t, agotamiento)
	assert.Equal(t, 2, agotamiento.Salida.Fila)
	assertDec(t, "4", ledger.Salidas[0].Consumido)
	assertDec(t, "0", ledger.Salidas[1].Consumido)
}

// Idempotencia: dos ejecuciones sobre la misma entrada dan el mismo resultado.
func TestCalcularConsumoLotes_Idempotente(t *testing.T) {
	entradas := []entity.Entrada{entrada(2, "2024-01-01", "10"), entrada(3, "2024-01-03", "8")}
	salidas := []entity.Salida{salida(2, "2024-01-02", "6", "2"), salida(3, "2024-01-04", "6", "3")}

	r1 := inventory.CalcularConsumoLotes(entradas, salidas)
	r2 := inventory.CalcularConsumoLotes(entradas, salidas)

	require.Len(t, r2.Lotes, len(r1.Lotes))
	for i := range r1.Lotes {
		assert.Equal(t, r1.Lotes[i].Estado, r2.Lotes[i].Estado)
		assertDec(t, r1.Lotes[i].CostoLote.String(), r2.Lotes[i].CostoLote)
		assertDec(t, r1.Lotes[i].ValorBodega.String(), r2.Lotes[i].ValorBodega)
	}
	assertDec(t, "10", entradas[0].Cantidad, "las entradas no se modifican")
	assert.Equal(t, 3, salidas[1].Fila, "el orden de las salidas recibidas no cambia")
}

// ──────────────────────────────────────────────────────────────────────────────
// Bordes
// ──────────────────────────────────────────────────────────────────────────────

// Fechas inválidas: no participan del emparejamiento y se informan como excluidas.
func TestCalcularConsumoLotes_FechasInvalidasExcluidas(t *testing.T) {
	sinFechaEntrada := entrada(4, "2024-01-01", "50")
	sinFechaEntrada.FechaValida = false
	sinFechaSalida := salida(5, "2024-01-01", "50", "10")
	sinFechaSalida.FechaValida = false

	res := inventory.CalcularConsumoLotes(
		[]entity.Entrada{sinFechaEntrada, entrada(2, "2024-01-01", "5")},
		[]entity.Salida{sinFechaSalida, salida(2, "2024-01-03", "2", "2")},
	)

	require.Len(t, res.Lotes, 1)
	assert.Equal(t, "available, residual 3.0", res.Lotes[0].Estado)
	assert.Len(t, res.Excluidas, 2)
	require.Len(t, res.Ledger.Salidas, 1, "la salida sin fecha no entra a la cola FIFO")
	assertDec(t, "6", res.PrecioPromedio, "el promedio usa todas las salidas del alcance")
	assertDec(t, "18", res.Lotes[0].ValorBodega)
}

// Una salida anterior a la entrada produce días negativos (no se valida el orden entre ellas).
func TestCalcularConsumoLotes_SalidaAnteriorALaEntrada(t *testing.T) {
	res := inventory.CalcularConsumoLotes(
		[]entity.Entrada{entrada(2, "2024-03-10", "2")},
		[]entity.Salida{salida(2, "2024-03-08", "2", "1")},
	)
	assert.Equal(t, "depleted in -2 days", res.Lotes[0].Estado)
}

func TestCalcularConsumoLotes_LoteCero(t *testing.T) {
	res := inventory.CalcularConsumoLotes(
		[]entity.Entrada{entrada(2, "2024-01-01", "0")},
		[]entity.Salida{salida(2, "2024-01-02", "1", "5")},
	)
	assert.Equal(t, "depleted in 1 days", res.Lotes[0].Estado)
	assertDec(t, "0", res.Lotes[0].CostoLote)

	res = inventory.CalcularConsumoLotes([]entity.Entrada{entrada(2, "2024-01-01", "0")}, nil)
	assert.Equal(t, "available, residual 0.0", res.Lotes[0].Estado)
}

func TestDiasEntre(t *testing.T) {
	base := time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, inventory.DiasEntre(base, base.Add(23*time.Hour)))
	assert.Equal(t, 1, inventory.DiasEntre(base, base.Add(24*time.Hour)))
	assert.Equal(t, -1, inventory.DiasEntre(base, base.Add(-1*time.Hour)), "redondea hacia abajo")

	santiago, err := time.LoadLocation("America/Santiago")
	if err == nil {
		// cruce de cambio de horario: se cuentan días de calendario
		desde := time.Date(2024, 4, 1, 0, 0, 0, 0, santiago)
		hasta := time.Date(2024, 4, 10, 0, 0, 0, 0, santiago)
		assert.Equal(t, 9, inventory.DiasEntre(desde, hasta))
	}
}

func TestEstadoDisponible_Redondeo(t *testing.T) {
	assert.Equal(t, "available, residual 0.33", inventory.EstadoDisponible(dec("0.3333")))
	assert.Equal(t, "available, residual 2.5", inventory.EstadoDisponible(dec("2.50")))
	assert.Equal(t, "available, residual 12.0", inventory.EstadoDisponible(dec("12")))
}
