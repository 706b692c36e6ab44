package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento en el ledger unificado.
const (
	TipoEntrada = "Entry" // material recibido en obra
	TipoSalida  = "Exit"  // material consumido o despachado
)

// Movimiento campos comunes de entradas y salidas, ya cruzados con la obra.
// FechaValida es false cuando la fecha venía vacía o no se pudo interpretar;
// esos movimientos se listan pero no participan del cálculo FIFO.
type Movimiento struct {
	Fila           int // fila en el archivo de origen (cabecera = 1)
	OT             string
	Material       string
	Articulo       string
	TipoMovimiento string
	Fecha          time.Time
	FechaValida    bool
	Cantidad       decimal.Decimal
	ObraNombre     string
	CentroCosto    string
}

// Antes ordena por fecha; las fechas inválidas van al final.
func (m Movimiento) Antes(o Movimiento) bool {
	if m.FechaValida != o.FechaValida {
		return m.FechaValida
	}
	if !m.FechaValida {
		return false
	}
	return m.Fecha.Before(o.Fecha)
}

// Entrada lote recibido en obra.
type Entrada struct {
	Movimiento
	CodigoArticulo string // art_codigo: se reporta, no participa del emparejamiento
}

// Salida evento de consumo con su precio unitario.
type Salida struct {
	Movimiento
	PrecioUnitario decimal.Decimal
}
