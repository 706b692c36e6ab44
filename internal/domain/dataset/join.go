package dataset

import (
	"github.com/jhoicas/seguimiento-obra/internal/domain"
	"github.com/jhoicas/seguimiento-obra/internal/domain/entity"
)

// Registro fila de entradas o salidas cruzada con obras. Fecha, cantidad y precio siguen
// como texto: solo se interpretan las filas del alcance seleccionado.
type Registro struct {
	Dataset        string
	Fila           int
	OT             string
	Material       string
	Articulo       string
	TipoMovimiento string
	Fecha          string
	Cantidad       string
	CodigoArticulo string // solo entradas
	PrecioUnitario string // solo salidas
	Obra           entity.Obra
	serial         SerialFunc
}

// Cruce resultado del left join de entradas y salidas contra obras por oth_numero.
type Cruce struct {
	Entradas []Registro
	Salidas  []Registro
	Obras    map[string]entity.Obra
	// Duplicadas O.T. repetidas en el archivo de obras; se conserva la primera aparición.
	Duplicadas []string
}

// Cruzar valida el snapshot y hace el left join de entradas y salidas contra obras.
// Un error de estructura detiene todo: no se devuelve cruce parcial.
func Cruzar(s *Snapshot) (*Cruce, error) {
	if err := ValidarSnapshot(s); err != nil {
		return nil, err
	}
	c := &Cruce{Obras: make(map[string]entity.Obra, s.Obras.Len())}
	for i := range s.Obras.Filas {
		num := NormalizarClave(s.Obras.Valor(i, ColOT))
		if num == "" {
			continue
		}
		if _, ok := c.Obras[num]; ok {
			c.Duplicadas = append(c.Duplicadas, num)
			continue
		}
		c.Obras[num] = entity.Obra{
			Numero:      num,
			Nombre:      s.Obras.Valor(i, ColObraNombre),
			CentroCosto: s.Obras.Valor(i, ColObraCentroCosto),
		}
	}

	c.Entradas = make([]Registro, 0, s.Entradas.Len())
	for i := range s.Entradas.Filas {
		r := c.registro(s.Entradas, i)
		r.Dataset = DatasetEntradas
		r.Fecha = s.Entradas.Valor(i, ColFechaEntrada)
		r.Cantidad = s.Entradas.Valor(i, ColCantidadEntrada)
		r.TipoMovimiento = s.Entradas.Valor(i, ColTipoEntrada)
		r.CodigoArticulo = s.Entradas.Valor(i, ColCodigoArticulo)
		c.Entradas = append(c.Entradas, r)
	}
	c.Salidas = make([]Registro, 0, s.Salidas.Len())
	for i := range s.Salidas.Filas {
		r := c.registro(s.Salidas, i)
		r.Dataset = DatasetSalidas
		r.Fecha = s.Salidas.Valor(i, ColFechaSalida)
		r.Cantidad = s.Salidas.Valor(i, ColCantidadSalida)
		r.TipoMovimiento = s.Salidas.Valor(i, ColTipoSalida)
		r.PrecioUnitario = s.Salidas.Valor(i, ColPrecioUnitario)
		c.Salidas = append(c.Salidas, r)
	}
	return c, nil
}

func (c *Cruce) registro(t *Table, i int) Registro {
	ot := NormalizarClave(t.Valor(i, ColOT))
	obra, ok := c.Obras[ot]
	if !ok {
		obra = entity.Obra{Numero: ot}
	}
	return Registro{
		Fila:     t.NumeroFila(i),
		OT:       ot,
		Material: t.Valor(i, ColMaterial),
		Articulo: t.Valor(i, ColArticulo),
		Obra:     obra,
		serial:   t.FechaSerial,
	}
}

// Obra devuelve la obra por número; si no está en el archivo de obras, una con nombre vacío.
func (c *Cruce) Obra(numero string) entity.Obra {
	if o, ok := c.Obras[numero]; ok {
		return o
	}
	return entity.Obra{Numero: numero}
}

// Movimiento interpreta fecha y cantidad del registro sin mirar el precio.
// Una fecha no interpretable deja FechaValida en false; una cantidad inválida es *domain.DataQualityError.
func (r Registro) Movimiento(p Parser) (entity.Movimiento, error) {
	m := entity.Movimiento{
		Fila:           r.Fila,
		OT:             r.OT,
		Material:       r.Material,
		Articulo:       r.Articulo,
		TipoMovimiento: r.TipoMovimiento,
		ObraNombre:     r.Obra.Nombre,
		CentroCosto:    r.Obra.CentroCosto,
	}
	m.Fecha, m.FechaValida = p.Fecha(r.Fecha, r.serial)
	cant, err := p.Decimal(r.Cantidad)
	if err != nil {
		return m, &domain.DataQualityError{
			Dataset: r.Dataset, Fila: r.Fila, Columna: r.columnaCantidad(), Valor: r.Cantidad,
			Causa: "no es una cantidad válida (" + err.Error() + ")",
		}
	}
	m.Cantidad = cant
	return m, nil
}

func (r Registro) columnaCantidad() string {
	if r.Dataset == DatasetSalidas {
		return ColCantidadSalida
	}
	return ColCantidadEntrada
}

// ColumnaFecha columna de origen de la fecha según el dataset.
func (r Registro) ColumnaFecha() string {
	if r.Dataset == DatasetSalidas {
		return ColFechaSalida
	}
	return ColFechaEntrada
}

// Entrada convierte el registro a entity.Entrada interpretando fecha y cantidad.
func (r Registro) Entrada(p Parser) (entity.Entrada, error) {
	m, err := r.Movimiento(p)
	if err != nil {
		return entity.Entrada{}, err
	}
	return entity.Entrada{Movimiento: m, CodigoArticulo: r.CodigoArticulo}, nil
}

// Salida convierte el registro a entity.Salida interpretando fecha, cantidad y precio unitario.
func (r Registro) Salida(p Parser) (entity.Salida, error) {
	m, err := r.Movimiento(p)
	if err != nil {
		return entity.Salida{}, err
	}
	precio, err := p.Decimal(r.PrecioUnitario)
	if err != nil {
		return entity.Salida{}, &domain.DataQualityError{
			Dataset: DatasetSalidas, Fila: r.Fila, Columna: ColPrecioUnitario, Valor: r.PrecioUnitario,
			Causa: "no es un precio válido (" + err.Error() + ")",
		}
	}
	return entity.Salida{Movimiento: m, PrecioUnitario: precio}, nil
}

// FechaInvalida construye el error de calidad para una fecha no interpretable (modo estricto).
func (r Registro) FechaInvalida() error {
	return &domain.DataQualityError{
		Dataset: r.Dataset, Fila: r.Fila, Columna: r.ColumnaFecha(), Valor: r.Fecha,
		Causa: "no es una fecha válida",
	}
}
