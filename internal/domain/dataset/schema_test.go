package dataset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seguimiento-obra/internal/domain"
	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
)

var (
	cabeceraEntradas = []string{"OTH_NUMERO", " gra_nombre ", "Art_Nombre", "art_codigo", "enh_fecha", "end_cantidad", "enh_tipo_movim"}
	cabeceraSalidas  = []string{"oth_numero", "gra_nombre", "art_nombre", "sah_fecha", "sad_cantidad", "sad_precio_unitario", "sah_tipo_movim"}
	cabeceraObras    = []string{"oth_numero", "oth_nombre", "cco_codigo"}
)

func snapshot(entradas, salidas, obras [][]string) *dataset.Snapshot {
	return &dataset.Snapshot{
		Entradas: dataset.NewTable(dataset.DatasetEntradas, cabeceraEntradas, entradas),
		Salidas:  dataset.NewTable(dataset.DatasetSalidas, cabeceraSalidas, salidas),
		Obras:    dataset.NewTable(dataset.DatasetObras, cabeceraObras, obras),
	}
}

func TestNewTable_NormalizaCabecerasYDescartaVacias(t *testing.T) {
	tb := dataset.NewTable("X", []string{" OTH_Numero ", "Gra_Nombre"}, [][]string{
		{"1001", "ACERO"},
		{"", "  "},
		{"1002"},
	})

	assert.Equal(t, []string{"oth_numero", "gra_nombre"}, tb.Columnas)
	require.Equal(t, 2, tb.Len(), "la fila vacía se descarta")
	assert.Equal(t, "", tb.Valor(1, "gra_nombre"), "la fila corta se completa")
	assert.Equal(t, "ACERO", tb.Valor(0, "gra_nombre"))
	assert.Equal(t, "", tb.Valor(0, "no_existe"))
	assert.Equal(t, 3, tb.NumeroFila(1))
}

func TestValidarSnapshot_Completo(t *testing.T) {
	assert.NoError(t, dataset.ValidarSnapshot(snapshot(nil, nil, nil)), "tablas vacías con cabecera válida")
}

func TestValidarSnapshot_ColumnaFaltante(t *testing.T) {
	s := snapshot(nil, nil, nil)
	s.Salidas = dataset.NewTable(dataset.DatasetSalidas, []string{"oth_numero", "gra_nombre", "art_nombre", "sah_fecha", "sad_cantidad", "sah_tipo_movim"}, nil)

	err := dataset.ValidarSnapshot(s)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSchema))
	var se *domain.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, dataset.DatasetSalidas, se.Dataset)
	assert.Equal(t, "sad_precio_unitario", se.Columna)
	assert.Equal(t, "la columna 'sad_precio_unitario' no está en el archivo de Salidas. Verifica los nombres de columna", err.Error())
}

// Se informa el primer dataset con error, en orden entradas, salidas, obras.
func TestValidarSnapshot_OrdenDeValidacion(t *testing.T) {
	s := snapshot(nil, nil, nil)
	s.Entradas = dataset.NewTable(dataset.DatasetEntradas, []string{"oth_numero"}, nil)
	s.Obras = dataset.NewTable(dataset.DatasetObras, []string{"oth_numero"}, nil)

	var se *domain.SchemaError
	require.ErrorAs(t, dataset.ValidarSnapshot(s), &se)
	assert.Equal(t, dataset.DatasetEntradas, se.Dataset)
	assert.Equal(t, "gra_nombre", se.Columna)
}

func TestValidarSnapshot_FaltaArchivo(t *testing.T) {
	s := snapshot(nil, nil, nil)
	s.Obras = nil
	assert.ErrorIs(t, dataset.ValidarSnapshot(s), domain.ErrMissingInput)
	assert.ErrorIs(t, dataset.ValidarSnapshot(nil), domain.ErrMissingInput)
}
