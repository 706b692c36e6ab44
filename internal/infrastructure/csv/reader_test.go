package csv_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
	"github.com/jhoicas/seguimiento-obra/internal/infrastructure/csv"
)

func TestLeer_Coma(t *testing.T) {
	in := "OTH_NUMERO,oth_nombre , cco_codigo\n1001,Edificio Norte,CC-10\n,,\n2002,\"Puente, Sur\",CC-20\n"

	tb, err := csv.Leer(dataset.DatasetObras, strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"oth_numero", "oth_nombre", "cco_codigo"}, tb.Columnas)
	require.Equal(t, 2, tb.Len(), "la fila vacía se descarta")
	assert.Equal(t, "Puente, Sur", tb.Valor(1, "oth_nombre"))
	assert.Nil(t, tb.FechaSerial)
}

func TestLeer_PuntoYComaConBOM(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("oth_numero;end_cantidad\r\n1001;10,5\r\n")...)

	tb, err := csv.Leer(dataset.DatasetEntradas, bytes.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "oth_numero", tb.Columnas[0], "el BOM no queda pegado a la primera cabecera")
	assert.Equal(t, "10,5", tb.Valor(0, "end_cantidad"))
}

func TestLeer_Windows1252(t *testing.T) {
	// "Ñuñoa" en Windows-1252: Ñ=0xD1, ñ=0xF1
	in := []byte("oth_numero;oth_nombre;cco_codigo\n1001;\xD1u\xF1oa;CC-10\n")

	tb, err := csv.Leer(dataset.DatasetObras, bytes.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "Ñuñoa", tb.Valor(0, "oth_nombre"))
}

func TestLeer_Vacio(t *testing.T) {
	tb, err := csv.Leer(dataset.DatasetSalidas, strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Zero(t, tb.Len())
	assert.Error(t, dataset.Validar(tb, dataset.ColumnasSalidas))
}

func TestLeer_FilasIrregulares(t *testing.T) {
	tb, err := csv.Leer(dataset.DatasetObras, strings.NewReader("oth_numero,oth_nombre,cco_codigo\n1001\n2002,Puente,CC-20,extra\n"))
	require.NoError(t, err)
	require.Equal(t, 2, tb.Len())
	assert.Equal(t, "", tb.Valor(0, "oth_nombre"))
	assert.Equal(t, "CC-20", tb.Valor(1, "cco_codigo"))
}
