package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/seguimiento-obra/internal/domain/entity"
)

const decimalesValor = 2

var horasDia = 24 * time.Hour

// PrecioPromedio media aritmética de PrecioUnitario sobre todas las salidas del alcance.
// Sin salidas devuelve 0.
func PrecioPromedio(salidas []entity.Salida) decimal.Decimal {
	if len(salidas) == 0 {
		return decimal.Zero
	}
	suma := decimal.Zero
	for _, s := range salidas {
		suma = suma.Add(s.PrecioUnitario)
	}
	return suma.Div(decimal.NewFromInt(int64(len(salidas))))
}

// ValorBodega valor estimado del residual: residual × precio promedio, redondeado a 2 decimales.
func ValorBodega(residual, precioPromedio decimal.Decimal) decimal.Decimal {
	return residual.Mul(precioPromedio).RoundBank(decimalesValor)
}

// DiasEntre días completos entre dos fechas, redondeando hacia abajo
// (negativo si hasta es anterior a desde). Se compara la hora de reloj, sin saltos de horario.
func DiasEntre(desde, hasta time.Time) int {
	d := reloj(hasta).Sub(reloj(desde))
	dias := int(d / horasDia)
	if d%horasDia < 0 {
		dias--
	}
	return dias
}

func reloj(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// EstadoAgotado texto de estado de un lote agotado.
func EstadoAgotado(dias int) string {
	return fmt.Sprintf("depleted in %d days", dias)
}

// EstadoDisponible texto de estado de un lote con residual (redondeado a 2 decimales).
func EstadoDisponible(residual decimal.Decimal) string {
	return "available, residual " + FormatoFlotante(residual.RoundBank(decimalesValor))
}

// FormatoFlotante imprime como un float: siempre con parte decimal ("3.0", "2.5", "0.33").
func FormatoFlotante(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
