package lector_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seguimiento-obra/internal/domain"
	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
	"github.com/jhoicas/seguimiento-obra/internal/infrastructure/lector"
)

func TestPredeterminado_Extensiones(t *testing.T) {
	r := lector.Predeterminado()
	assert.Equal(t, ".csv, .xlsm, .xlsx", r.Extensiones())

	for _, archivo := range []string{"e.xlsx", "E.XLSX", "macro.xlsm", "datos.csv"} {
		leer, err := r.Para(dataset.DatasetEntradas, archivo)
		require.NoError(t, err, archivo)
		assert.NotNil(t, leer, archivo)
	}
}

func TestPara_ExtensionDesconocida(t *testing.T) {
	_, err := lector.Predeterminado().Para(dataset.DatasetObras, "obras.ods")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), `"obras.ods"`)
	assert.Contains(t, err.Error(), "se aceptan .csv, .xlsm, .xlsx")
}

func TestPara_LeeCSV(t *testing.T) {
	leer, err := lector.Predeterminado().Para(dataset.DatasetObras, "obras.csv")
	require.NoError(t, err)

	tb, err := leer(dataset.DatasetObras, strings.NewReader("oth_numero,oth_nombre\n1001,Edificio Norte\n"))
	require.NoError(t, err)
	assert.Equal(t, "Edificio Norte", tb.Valor(0, "oth_nombre"))
}
