package seguimiento

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/seguimiento-obra/internal/application/dto"
	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
)

// Vistas del resumen.
const (
	VistaEntradas = "entradas"
	VistaSalidas  = "salidas"
)

// MensajeSinDatos advertencia cuando la O.T. elegida no tiene movimientos.
const MensajeSinDatos = "No se encontraron datos para la O.T. seleccionada."

// Resumen vista agregada de entradas o salidas: totales por O.T. de toda la vista y, si se
// eligió una O.T., su listado de movimientos y el total por artículo.
func (uc *SeguimientoUseCase) Resumen(ctx context.Context, s *dataset.Snapshot, req dto.ResumenRequest) (*dto.ResumenResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	_, c, err := uc.cruzar(ctx, s)
	if err != nil {
		return nil, err
	}
	regs := c.Entradas
	if req.Vista == VistaSalidas {
		regs = c.Salidas
	}

	resp := &dto.ResumenResponse{
		Vista:       req.Vista,
		Obras:       obrasDTO(obrasPresentes(c, regs)),
		PorArticulo: []dto.TotalArticuloDTO{},
		Movimientos: []dto.MovimientoDTO{},
	}
	resp.PorObra, resp.Advertencias = uc.totalesPorObra(c, regs)

	ot := dataset.NormalizarClave(req.Obra)
	if ot == "" {
		return resp, nil
	}

	indice := map[[2]string]int{}
	for _, r := range regs {
		if r.OT != ot {
			continue
		}
		m, err := r.Movimiento(uc.parser)
		if err != nil {
			return nil, err
		}
		if !m.FechaValida && uc.estricto {
			return nil, r.FechaInvalida()
		}
		resp.Movimientos = append(resp.Movimientos, movimientoDTO(m, r.Fecha))

		k := [2]string{r.Material, r.Articulo}
		i, ok := indice[k]
		if !ok {
			i = len(resp.PorArticulo)
			indice[k] = i
			resp.PorArticulo = append(resp.PorArticulo, dto.TotalArticuloDTO{Material: r.Material, Articulo: r.Articulo, Cantidad: decimal.Zero})
		}
		resp.PorArticulo[i].Cantidad = resp.PorArticulo[i].Cantidad.Add(m.Cantidad)
	}

	if len(resp.Movimientos) == 0 {
		resp.Advertencias = append(resp.Advertencias, MensajeSinDatos)
		return resp, nil
	}
	o := obraDTO(c.Obra(ot))
	resp.Obra = &o
	return resp, nil
}

// totalesPorObra suma cantidades por O.T. sobre toda la vista. Las filas con cantidad inválida
// quedan fuera del total y se informan como advertencia.
func (uc *SeguimientoUseCase) totalesPorObra(c *dataset.Cruce, regs []dataset.Registro) ([]dto.TotalObraDTO, []string) {
	out := []dto.TotalObraDTO{}
	indice := map[string]int{}
	invalidas := 0
	for _, r := range regs {
		if r.OT == "" {
			continue
		}
		m, err := r.Movimiento(uc.parser)
		if err != nil {
			invalidas++
			continue
		}
		i, ok := indice[r.OT]
		if !ok {
			i = len(out)
			indice[r.OT] = i
			out = append(out, dto.TotalObraDTO{Obra: obraDTO(c.Obra(r.OT)), Cantidad: decimal.Zero})
		}
		out[i].Cantidad = out[i].Cantidad.Add(m.Cantidad)
		out[i].Movimientos++
	}
	if invalidas == 0 {
		return out, nil
	}
	return out, []string{fmt.Sprintf("%d fila(s) con cantidad inválida no suman en el total por O.T.", invalidas)}
}
