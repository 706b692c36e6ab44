package inventory_test

import (
	"testing"

	"github.com/jhoicas/seguimiento-obra/internal/domain/entity"
	"github.com/jhoicas/seguimiento-obra/internal/domain/inventory"
)

func TestCostoPromedioPonderado(t *testing.T) {
	casos := []struct {
		nombre                         string
		cantAcum, costoAcum, cant, pre string
		esperado                       string
	}{
		{"primera partida", "0", "0", "10", "3", "3"},
		{"misma tarifa", "10", "3", "2", "3", "3"},
		{"tarifas distintas", "4", "2", "4", "4", "3"},
		{"sin cantidad", "0", "0", "0", "5", "0"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := inventory.CostoPromedioPonderado(dec(c.cantAcum), dec(c.costoAcum), dec(c.cant), dec(c.pre))
			assertDec(t, c.esperado, got)
		})
	}
}

func TestCostoUnitarioConsumo(t *testing.T) {
	entradas := []entity.Entrada{
		entrada(2, "2024-01-01", "4"),
		entrada(3, "2024-01-02", "10"),
	}
	salidas := []entity.Salida{
		salida(2, "2024-01-03", "4", "2"),
		salida(3, "2024-01-04", "4", "4"),
	}
	res := inventory.CalcularConsumoLotes(entradas, salidas)

	assertDec(t, "3", inventory.CostoUnitarioConsumo(res.Lotes), "4@2 + 4@4 sobre 8 unidades")
	assertDec(t, "0", inventory.CostoUnitarioConsumo(inventory.CalcularConsumoLotes(entradas, nil).Lotes))
}
