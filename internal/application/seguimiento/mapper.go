package seguimiento

import (
	"github.com/jhoicas/seguimiento-obra/internal/application/dto"
	"github.com/jhoicas/seguimiento-obra/internal/domain/entity"
	"github.com/jhoicas/seguimiento-obra/internal/domain/inventory"
)

func obraDTO(o entity.Obra) dto.ObraDTO {
	return dto.ObraDTO{Numero: o.Numero, Nombre: o.NombreVisible(), CentroCosto: o.CentroCosto}
}

func obrasDTO(obras []entity.Obra) []dto.ObraDTO {
	out := make([]dto.ObraDTO, 0, len(obras))
	for _, o := range obras {
		out = append(out, obraDTO(o))
	}
	return out
}

// movimientoDTO usa el texto original como fecha cuando no se pudo interpretar.
func movimientoDTO(m entity.Movimiento, fechaOriginal string) dto.MovimientoDTO {
	fecha := fechaOriginal
	if m.FechaValida {
		fecha = m.Fecha.Format("2006-01-02")
	}
	nombre := m.ObraNombre
	if nombre == "" {
		nombre = entity.NombreObraDesconocida
	}
	return dto.MovimientoDTO{
		Fila:           m.Fila,
		Fecha:          fecha,
		FechaValida:    m.FechaValida,
		Material:       m.Material,
		Articulo:       m.Articulo,
		Cantidad:       m.Cantidad,
		TipoMovimiento: m.TipoMovimiento,
		OT:             m.OT,
		ObraNombre:     nombre,
	}
}

func loteDTO(l inventory.ResultadoLote) dto.LoteDTO {
	consumos := make([]dto.ConsumoDTO, 0, len(l.Consumos))
	for _, c := range l.Consumos {
		consumos = append(consumos, dto.ConsumoDTO{
			FilaSalida:     c.FilaSalida,
			Fecha:          c.Fecha,
			Cantidad:       c.Cantidad,
			PrecioUnitario: c.PrecioUnitario,
			Costo:          c.Costo,
		})
	}
	return dto.LoteDTO{
		Material:         l.Material,
		Articulo:         l.Articulo,
		CodigoArticulo:   l.CodigoArticulo,
		FilaEntrada:      l.FilaEntrada,
		FechaEntrada:     l.FechaEntrada,
		CantidadLote:     l.CantidadLote,
		Consumido:        l.Consumido,
		Residual:         l.Residual,
		Estado:           l.Estado,
		FechaAgotamiento: l.FechaAgotamiento,
		DiasAgotamiento:  l.DiasAgotamiento,
		CostoLote:        l.CostoLote,
		ValorBodega:      l.ValorBodega,
		Consumos:         consumos,
	}
}

func totalesDTO(t Totales) dto.TotalesAnalisisDTO {
	return dto.TotalesAnalisisDTO{
		Lotes:         t.Lotes,
		LotesAgotados: t.LotesAgotados,
		CantidadTotal: t.CantidadTotal,
		Consumido:     t.Consumido,
		Residual:      t.Residual,
		CostoTotal:    t.CostoTotal,
		CostoUnitario: t.CostoUnitario,
		ValorBodega:   t.ValorBodega,
	}
}

func analisisDTO(a *Analisis) dto.AnalisisResponse {
	resp := dto.AnalisisResponse{
		Obra:           obraDTO(a.Obra),
		Material:       a.Alcance.Material,
		Articulo:       a.Alcance.Articulo,
		PrecioPromedio: a.Resultado.PrecioPromedio,
		Lotes:          make([]dto.LoteDTO, 0, len(a.Resultado.Lotes)),
		Movimientos:    make([]dto.MovimientoLedgerDTO, 0, len(a.Movimientos)),
		Totales:        totalesDTO(a.Totales()),
		Advertencias:   a.Advertencias,
	}
	for _, l := range a.Resultado.Lotes {
		resp.Lotes = append(resp.Lotes, loteDTO(l))
	}
	for _, m := range a.Movimientos {
		fila := dto.MovimientoLedgerDTO{
			Material:       m.Material,
			Articulo:       m.Articulo,
			Cantidad:       m.Cantidad,
			TipoMovimiento: m.TipoMovimiento,
			Tipo:           m.Tipo,
		}
		if m.FechaValida {
			f := m.Fecha
			fila.Fecha = &f
		}
		resp.Movimientos = append(resp.Movimientos, fila)
	}
	for _, m := range a.Resultado.Excluidas {
		resp.Excluidas = append(resp.Excluidas, movimientoDTO(m, ""))
	}
	return resp
}
