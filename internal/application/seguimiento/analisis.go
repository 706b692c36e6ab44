package seguimiento

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/seguimiento-obra/internal/application/dto"
	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
	"github.com/jhoicas/seguimiento-obra/internal/domain/entity"
	"github.com/jhoicas/seguimiento-obra/internal/domain/inventory"
)

// Alcance O.T. + material + artículo: la unidad de cálculo FIFO.
type Alcance struct {
	Obra     string
	Material string
	Articulo string
}

func (a Alcance) normalizado() Alcance {
	return Alcance{
		Obra:     dataset.NormalizarClave(a.Obra),
		Material: strings.TrimSpace(a.Material),
		Articulo: strings.TrimSpace(a.Articulo),
	}
}

func (a Alcance) incluye(r dataset.Registro) bool {
	return r.OT == a.Obra && r.Material == a.Material && r.Articulo == a.Articulo
}

// Analisis resultado FIFO de un alcance con lo necesario para exportarlo.
type Analisis struct {
	ID           string
	Obra         entity.Obra
	Alcance      Alcance
	Resultado    inventory.ResultadoFIFO
	Movimientos  []inventory.MovimientoLedger
	Advertencias []string
	GeneradoEn   time.Time
}

// Totales agregados de los lotes del análisis.
type Totales struct {
	Lotes         int
	LotesAgotados int
	CantidadTotal decimal.Decimal
	Consumido     decimal.Decimal
	Residual      decimal.Decimal
	CostoTotal    decimal.Decimal
	CostoUnitario decimal.Decimal // ponderado por lo consumido; 0 al sumar varios artículos
	ValorBodega   decimal.Decimal
}

func totalesCero() Totales {
	z := decimal.Zero
	return Totales{CantidadTotal: z, Consumido: z, Residual: z, CostoTotal: z, CostoUnitario: z, ValorBodega: z}
}

// Totales suma los lotes del análisis.
func (a *Analisis) Totales() Totales {
	t := totalesCero()
	for _, l := range a.Resultado.Lotes {
		t.Lotes++
		if l.Agotado {
			t.LotesAgotados++
		}
		t.CantidadTotal = t.CantidadTotal.Add(l.CantidadLote)
		t.Consumido = t.Consumido.Add(l.Consumido)
		t.Residual = t.Residual.Add(l.Residual)
		t.CostoTotal = t.CostoTotal.Add(l.CostoLote)
		t.ValorBodega = t.ValorBodega.Add(l.ValorBodega)
	}
	t.CostoUnitario = inventory.CostoUnitarioConsumo(a.Resultado.Lotes)
	return t
}

func (t Totales) sumar(o Totales) Totales {
	return Totales{
		Lotes:         t.Lotes + o.Lotes,
		LotesAgotados: t.LotesAgotados + o.LotesAgotados,
		CantidadTotal: t.CantidadTotal.Add(o.CantidadTotal),
		Consumido:     t.Consumido.Add(o.Consumido),
		Residual:      t.Residual.Add(o.Residual),
		CostoTotal:    t.CostoTotal.Add(o.CostoTotal),
		CostoUnitario: decimal.Zero,
		ValorBodega:   t.ValorBodega.Add(o.ValorBodega),
	}
}

// Analizar ejecuta el emparejamiento FIFO de un alcance.
func (uc *SeguimientoUseCase) Analizar(ctx context.Context, s *dataset.Snapshot, req dto.AnalisisRequest) (*dto.AnalisisResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	_, c, err := uc.cruzar(ctx, s)
	if err != nil {
		return nil, err
	}
	an, err := uc.calcular(c, Alcance{Obra: req.Obra, Material: req.Material, Articulo: req.Articulo})
	if err != nil {
		return nil, err
	}
	resp := analisisDTO(an)
	return &resp, nil
}

// AnalizarObra analiza cada par material/artículo de la O.T. en paralelo (hasta Workers a la vez).
// Cada grupo filtra sus propias filas y arma su propio ledger de salidas.
func (uc *SeguimientoUseCase) AnalizarObra(ctx context.Context, s *dataset.Snapshot, req dto.AnalisisObraRequest) (*dto.AnalisisObraResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	_, c, err := uc.cruzar(ctx, s)
	if err != nil {
		return nil, err
	}
	ot := dataset.NormalizarClave(req.Obra)
	alcances := alcancesDeObra(c, ot)

	resp := &dto.AnalisisObraResponse{Obra: obraDTO(c.Obra(ot)), Grupos: []dto.AnalisisResponse{}}
	if len(alcances) == 0 {
		resp.Totales = totalesDTO(totalesCero())
		resp.Advertencias = []string{MensajeSinDatos}
		return resp, nil
	}

	inicio := time.Now()
	resultados := make([]*Analisis, len(alcances))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)
	for i, al := range alcances {
		i, al := i, al
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			an, err := uc.calcular(c, al)
			if err != nil {
				return fmt.Errorf("material %q, artículo %q: %w", al.Material, al.Articulo, err)
			}
			resultados[i] = an
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := totalesCero()
	for _, an := range resultados {
		resp.Grupos = append(resp.Grupos, analisisDTO(an))
		total = total.sumar(an.Totales())
	}
	resp.Totales = totalesDTO(total)
	uc.log.Info().
		Str("obra", ot).
		Int("grupos", len(alcances)).
		Int("workers", uc.workers).
		Dur("duracion", time.Since(inicio)).
		Msg("análisis de obra completo")
	return resp, nil
}

// calcular filtra el cruce al alcance, interpreta fechas y cantidades y corre el motor FIFO.
// Solo las filas del alcance se interpretan: un valor inválido fuera de él no afecta.
func (uc *SeguimientoUseCase) calcular(c *dataset.Cruce, alcance Alcance) (*Analisis, error) {
	a := alcance.normalizado()
	var entradas []entity.Entrada
	for _, r := range c.Entradas {
		if !a.incluye(r) {
			continue
		}
		e, err := r.Entrada(uc.parser)
		if err != nil {
			return nil, err
		}
		if !e.FechaValida && uc.estricto {
			return nil, r.FechaInvalida()
		}
		entradas = append(entradas, e)
	}
	var salidas []entity.Salida
	for _, r := range c.Salidas {
		if !a.incluye(r) {
			continue
		}
		s, err := r.Salida(uc.parser)
		if err != nil {
			return nil, err
		}
		if !s.FechaValida && uc.estricto {
			return nil, r.FechaInvalida()
		}
		salidas = append(salidas, s)
	}

	res := inventory.CalcularConsumoLotes(entradas, salidas)
	an := &Analisis{
		Obra:        c.Obra(a.Obra),
		Alcance:     a,
		Resultado:   res,
		Movimientos: inventory.ConstruirMovimientos(entradas, salidas),
		GeneradoEn:  uc.now().In(uc.parser.Location),
	}
	an.Advertencias = advertencias(entradas, salidas, res)

	uc.log.Debug().
		Str("obra", a.Obra).
		Str("material", a.Material).
		Str("articulo", a.Articulo).
		Int("entradas", len(entradas)).
		Int("salidas", len(salidas)).
		Int("excluidas", len(res.Excluidas)).
		Msg("alcance calculado")
	return an, nil
}

func advertencias(entradas []entity.Entrada, salidas []entity.Salida, res inventory.ResultadoFIFO) []string {
	var out []string
	switch {
	case len(entradas) == 0 && len(salidas) == 0:
		return []string{MensajeSinDatos}
	case len(entradas) == 0:
		out = append(out, "Hay salidas pero ninguna entrada en el alcance: no hay lotes que analizar")
	}
	if n := len(res.Excluidas); n > 0 {
		out = append(out, fmt.Sprintf("%d movimiento(s) sin fecha válida excluido(s) del cálculo FIFO", n))
	}
	sinLote := decimal.Zero
	for _, s := range res.Ledger.Salidas {
		sinLote = sinLote.Add(s.Disponible())
	}
	if sinLote.IsPositive() {
		out = append(out, fmt.Sprintf("Las salidas superan a las entradas en %s unidades sin lote asignado", sinLote.String()))
	}
	return out
}
