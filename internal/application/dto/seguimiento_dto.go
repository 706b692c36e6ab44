package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Requests (campos multipart junto a los archivos entradas, salidas, obras) ──

// OpcionesRequest filtros en cascada: obra -> material -> artículo.
type OpcionesRequest struct {
	Obra     string `form:"obra"`
	Material string `form:"material"`
}

// ResumenRequest vista agregada de entradas o salidas para una O.T.
type ResumenRequest struct {
	Vista string `form:"vista" validate:"required,oneof=entradas salidas"`
	Obra  string `form:"obra"`
}

// AnalisisRequest alcance del análisis FIFO.
type AnalisisRequest struct {
	Obra     string `form:"obra" validate:"notblank"`
	Material string `form:"material" validate:"notblank"`
	Articulo string `form:"articulo" validate:"notblank"`
}

// AnalisisObraRequest análisis de todos los pares material/artículo de una O.T.
type AnalisisObraRequest struct {
	Obra string `form:"obra" validate:"notblank"`
}

// ReporteRequest exportación del análisis de un alcance.
type ReporteRequest struct {
	Obra     string `form:"obra" validate:"notblank"`
	Material string `form:"material" validate:"notblank"`
	Articulo string `form:"articulo" validate:"notblank"`
	Formato  string `form:"formato"` // xlsx (por defecto) | pdf
}

// ── Responses ─────────────────────────────────────────────────────────────────

// ObraDTO O.T. con el nombre del cruce ("Desconocida" si no está en obras).
type ObraDTO struct {
	Numero      string `json:"numero"`
	Nombre      string `json:"nombre"`
	CentroCosto string `json:"centro_costo,omitempty"`
}

// ValidacionResponse resultado de validar y cruzar los tres archivos.
type ValidacionResponse struct {
	FilasEntradas int       `json:"filas_entradas"`
	FilasSalidas  int       `json:"filas_salidas"`
	FilasObras    int       `json:"filas_obras"`
	Obras         []ObraDTO `json:"obras"`
	Advertencias  []string  `json:"advertencias,omitempty"`
}

// OpcionesResponse listas para los selectores.
type OpcionesResponse struct {
	Obras      []ObraDTO `json:"obras"`
	Materiales []string  `json:"materiales"`
	Articulos  []string  `json:"articulos"`
}

// MovimientoDTO fila de listado de entradas o salidas.
type MovimientoDTO struct {
	Fila           int             `json:"fila"`
	Fecha          string          `json:"fecha"` // YYYY-MM-DD, o el texto original si no es fecha
	FechaValida    bool            `json:"fecha_valida"`
	Material       string          `json:"material"`
	Articulo       string          `json:"articulo"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	TipoMovimiento string          `json:"tipo_movimiento,omitempty"`
	OT             string          `json:"oth_numero"`
	ObraNombre     string          `json:"oth_nombre"`
}

// TotalArticuloDTO suma de cantidades por artículo.
type TotalArticuloDTO struct {
	Material string          `json:"material"`
	Articulo string          `json:"articulo"`
	Cantidad decimal.Decimal `json:"cantidad"`
}

// TotalObraDTO suma de cantidades por O.T.
type TotalObraDTO struct {
	Obra        ObraDTO         `json:"obra"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	Movimientos int             `json:"movimientos"`
}

// ResumenResponse vista agregada (entradas o salidas).
type ResumenResponse struct {
	Vista        string             `json:"vista"`
	Obras        []ObraDTO          `json:"obras"`
	Obra         *ObraDTO           `json:"obra,omitempty"`
	PorObra      []TotalObraDTO     `json:"por_obra"`
	PorArticulo  []TotalArticuloDTO `json:"por_articulo"`
	Movimientos  []MovimientoDTO    `json:"movimientos"`
	Advertencias []string           `json:"advertencias,omitempty"`
}

// ConsumoDTO porción de una salida asignada a un lote.
type ConsumoDTO struct {
	FilaSalida     int             `json:"fila_salida"`
	Fecha          time.Time       `json:"fecha"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Costo          decimal.Decimal `json:"costo"`
}

// LoteDTO resultado FIFO de una entrada.
type LoteDTO struct {
	Material         string          `json:"material"`
	Articulo         string          `json:"articulo"`
	CodigoArticulo   string          `json:"art_codigo"`
	FilaEntrada      int             `json:"fila_entrada"`
	FechaEntrada     time.Time       `json:"fecha_entrada"`
	CantidadLote     decimal.Decimal `json:"cantidad_lote"`
	Consumido        decimal.Decimal `json:"consumido"`
	Residual         decimal.Decimal `json:"residual"`
	Estado           string          `json:"estado"`
	FechaAgotamiento *time.Time      `json:"fecha_agotamiento,omitempty"`
	DiasAgotamiento  *int            `json:"dias_agotamiento,omitempty"`
	CostoLote        decimal.Decimal `json:"costo_lote"`
	ValorBodega      decimal.Decimal `json:"valor_bodega"`
	Consumos         []ConsumoDTO    `json:"consumos"`
}

// MovimientoLedgerDTO fila del ledger unificado.
type MovimientoLedgerDTO struct {
	Fecha          *time.Time      `json:"fecha"` // null si la fecha no es válida
	Material       string          `json:"material"`
	Articulo       string          `json:"articulo"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	TipoMovimiento string          `json:"tipo_movimiento"`
	Tipo           string          `json:"tipo"` // Entry | Exit
}

// TotalesAnalisisDTO totales del alcance.
type TotalesAnalisisDTO struct {
	Lotes         int             `json:"lotes"`
	LotesAgotados int             `json:"lotes_agotados"`
	CantidadTotal decimal.Decimal `json:"cantidad_total"`
	Consumido     decimal.Decimal `json:"consumido"`
	Residual      decimal.Decimal `json:"residual"`
	CostoTotal    decimal.Decimal `json:"costo_total"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"` // costo ponderado por unidad consumida
	ValorBodega   decimal.Decimal `json:"valor_bodega"`
}

// AnalisisResponse análisis FIFO de un alcance.
type AnalisisResponse struct {
	Obra           ObraDTO               `json:"obra"`
	Material       string                `json:"material"`
	Articulo       string                `json:"articulo"`
	PrecioPromedio decimal.Decimal       `json:"precio_promedio"`
	Lotes          []LoteDTO             `json:"lotes"`
	Movimientos    []MovimientoLedgerDTO `json:"movimientos"`
	Excluidas      []MovimientoDTO       `json:"excluidas,omitempty"`
	Totales        TotalesAnalisisDTO    `json:"totales"`
	Advertencias   []string              `json:"advertencias,omitempty"`
}

// AnalisisObraResponse análisis de todos los alcances de una O.T.
type AnalisisObraResponse struct {
	Obra         ObraDTO            `json:"obra"`
	Grupos       []AnalisisResponse `json:"grupos"`
	Totales      TotalesAnalisisDTO `json:"totales"`
	Advertencias []string           `json:"advertencias,omitempty"`
}
