package inventory

import "github.com/shopspring/decimal"

// CostoPromedioPonderado costo unitario acumulado tras sumar una partida (servicio de dominio).
// Nuevo = ((CantAcum * CostoAcum) + (Cant * Costo)) / (CantAcum + Cant)
func CostoPromedioPonderado(cantAcum, costoAcum, cant, costo decimal.Decimal) decimal.Decimal {
	sum := cantAcum.Add(cant)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := cantAcum.Mul(costoAcum).Add(cant.Mul(costo))
	return num.Div(sum)
}

// CostoUnitarioConsumo costo por unidad de lo consumido, ponderado por cantidad
// sobre cada porción de salida asignada a un lote. Sin consumo devuelve 0.
func CostoUnitarioConsumo(lotes []ResultadoLote) decimal.Decimal {
	cant, costo := decimal.Zero, decimal.Zero
	for _, l := range lotes {
		for _, c := range l.Consumos {
			costo = CostoPromedioPonderado(cant, costo, c.Cantidad, c.PrecioUnitario)
			cant = cant.Add(c.Cantidad)
		}
	}
	return costo
}
