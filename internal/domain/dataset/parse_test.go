package dataset_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
)

func TestParser_Fecha(t *testing.T) {
	p := dataset.NewParser(nil, true)

	casos := []struct {
		entrada  string
		ok       bool
		esperado time.Time
	}{
		{"2024-01-05", true, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"2024-01-05 13:45:00", true, time.Date(2024, 1, 5, 13, 45, 0, 0, time.UTC)},
		{"05/01/2024", true, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"5/1/2024", true, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"", false, time.Time{}},
		{"sin fecha", false, time.Time{}},
		{"31/02/2024", false, time.Time{}},
	}
	for _, tc := range casos {
		got, ok := p.Fecha(tc.entrada, nil)
		assert.Equal(t, tc.ok, ok, tc.entrada)
		if tc.ok {
			assert.True(t, tc.esperado.Equal(got), "%s: %s", tc.entrada, got)
		}
	}
}

func TestParser_FechaMesPrimero(t *testing.T) {
	p := dataset.NewParser(time.UTC, false)
	got, ok := p.Fecha("01/05/2024", nil)
	require.True(t, ok)
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 5, got.Day())
}

func TestParser_FechaSerial(t *testing.T) {
	p := dataset.NewParser(time.UTC, true)
	serial := func(n float64) (time.Time, error) {
		return time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC).Add(time.Duration(n*24) * time.Hour), nil
	}

	got, ok := p.Fecha("45296", serial)
	require.True(t, ok)
	assert.Equal(t, "2024-01-05", got.Format("2006-01-02"))

	_, ok = p.Fecha("0", serial)
	assert.False(t, ok, "serial 0 no es fecha")

	got, ok = p.Fecha("2024-01-05", serial)
	require.True(t, ok, "los textos ISO siguen funcionando con serial")
	assert.Equal(t, 5, got.Day())
}

func TestParser_FechaEnZonaHoraria(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Skip("zona horaria no disponible")
	}
	got, ok := dataset.NewParser(loc, true).Fecha("2024-01-05", nil)
	require.True(t, ok)
	assert.Equal(t, loc, got.Location())
}

func TestParser_Decimal(t *testing.T) {
	p := dataset.NewParser(nil, true)

	validos := map[string]string{
		"10":       "10",
		" 12.5 ":   "12.5",
		"12,5":     "12.5",
		"1.234,56": "1234.56",
		"1,234.56": "1234.56",
		"0":        "0",
	}
	for entrada, esperado := range validos {
		d, err := p.Decimal(entrada)
		require.NoError(t, err, entrada)
		assert.Equal(t, esperado, d.String(), entrada)
	}

	for _, entrada := range []string{"", "abc", "-3", "1,2,3x"} {
		_, err := p.Decimal(entrada)
		assert.Error(t, err, entrada)
	}
}

func TestNormalizarClave(t *testing.T) {
	assert.Equal(t, "1001", dataset.NormalizarClave(" 1001.0 "))
	assert.Equal(t, "1001", dataset.NormalizarClave("1001"))
	assert.Equal(t, "OT-7.0", dataset.NormalizarClave("OT-7.0"))
	assert.Equal(t, "", dataset.NormalizarClave("  "))
}
