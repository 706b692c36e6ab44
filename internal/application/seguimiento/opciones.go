package seguimiento

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/seguimiento-obra/internal/application/dto"
	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
	"github.com/jhoicas/seguimiento-obra/internal/domain/entity"
)

// Validar comprueba estructura y cruce de los tres datasets y devuelve conteos y O.T. presentes.
func (uc *SeguimientoUseCase) Validar(ctx context.Context, s *dataset.Snapshot) (*dto.ValidacionResponse, error) {
	s, c, err := uc.cruzar(ctx, s)
	if err != nil {
		return nil, err
	}
	obras := obrasPresentes(c, c.Entradas, c.Salidas)
	resp := &dto.ValidacionResponse{
		FilasEntradas: s.Entradas.Len(),
		FilasSalidas:  s.Salidas.Len(),
		FilasObras:    s.Obras.Len(),
		Obras:         obrasDTO(obras),
	}
	for _, ot := range c.Duplicadas {
		resp.Advertencias = append(resp.Advertencias, fmt.Sprintf("O.T. %s repetida en obras: se usa la primera aparición", ot))
	}
	sinObra := 0
	for _, o := range obras {
		if _, ok := c.Obras[o.Numero]; !ok {
			sinObra++
		}
	}
	if sinObra > 0 {
		resp.Advertencias = append(resp.Advertencias,
			fmt.Sprintf("%d O.T. sin registro en obras: se muestran como %s", sinObra, entity.NombreObraDesconocida))
	}
	return resp, nil
}

// Opciones listas en cascada: O.T. presentes en entradas o salidas; materiales de la O.T. elegida;
// artículos de la O.T. y material elegidos. Los filtros vacíos dejan las listas siguientes vacías.
func (uc *SeguimientoUseCase) Opciones(ctx context.Context, s *dataset.Snapshot, req dto.OpcionesRequest) (*dto.OpcionesResponse, error) {
	_, c, err := uc.cruzar(ctx, s)
	if err != nil {
		return nil, err
	}
	resp := &dto.OpcionesResponse{
		Obras:      obrasDTO(obrasPresentes(c, c.Entradas, c.Salidas)),
		Materiales: []string{},
		Articulos:  []string{},
	}
	ot := dataset.NormalizarClave(req.Obra)
	if ot == "" {
		return resp, nil
	}
	material := strings.TrimSpace(req.Material)

	vistosMat := map[string]bool{}
	vistosArt := map[string]bool{}
	for _, regs := range [][]dataset.Registro{c.Entradas, c.Salidas} {
		for _, r := range regs {
			if r.OT != ot {
				continue
			}
			if r.Material != "" && !vistosMat[r.Material] {
				vistosMat[r.Material] = true
				resp.Materiales = append(resp.Materiales, r.Material)
			}
			if material != "" && r.Material == material && r.Articulo != "" && !vistosArt[r.Articulo] {
				vistosArt[r.Articulo] = true
				resp.Articulos = append(resp.Articulos, r.Articulo)
			}
		}
	}
	return resp, nil
}

// obrasPresentes O.T. distintas de los registros, en orden de aparición, con los datos del cruce.
func obrasPresentes(c *dataset.Cruce, grupos ...[]dataset.Registro) []entity.Obra {
	vistas := map[string]bool{}
	var out []entity.Obra
	for _, regs := range grupos {
		for _, r := range regs {
			if r.OT == "" || vistas[r.OT] {
				continue
			}
			vistas[r.OT] = true
			out = append(out, c.Obra(r.OT))
		}
	}
	return out
}

// alcancesDeObra pares material/artículo distintos de una O.T., en orden de aparición.
func alcancesDeObra(c *dataset.Cruce, ot string) []Alcance {
	vistos := map[[2]string]bool{}
	var out []Alcance
	for _, regs := range [][]dataset.Registro{c.Entradas, c.Salidas} {
		for _, r := range regs {
			k := [2]string{r.Material, r.Articulo}
			if r.OT != ot || vistos[k] {
				continue
			}
			vistos[k] = true
			out = append(out, Alcance{Obra: ot, Material: r.Material, Articulo: r.Articulo})
		}
	}
	return out
}
