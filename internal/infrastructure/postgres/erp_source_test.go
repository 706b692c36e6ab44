package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
	"github.com/jhoicas/seguimiento-obra/internal/infrastructure/postgres"
	"github.com/jhoicas/seguimiento-obra/pkg/config"
)

// filasFake resultado en memoria que cumple pgx.Rows.
type filasFake struct {
	cols  []string
	filas [][]any
	i     int
}

func (r *filasFake) Close()                        {}
func (r *filasFake) Err() error                    { return nil }
func (r *filasFake) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *filasFake) FieldDescriptions() []pgconn.FieldDescription {
	out := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		out[i] = pgconn.FieldDescription{Name: c}
	}
	return out
}
func (r *filasFake) Next() bool {
	if r.i >= len(r.filas) {
		return false
	}
	r.i++
	return true
}
func (r *filasFake) Scan(...any) error      { return errors.New("no implementado") }
func (r *filasFake) Values() ([]any, error) { return r.filas[r.i-1], nil }
func (r *filasFake) RawValues() [][]byte    { return nil }
func (r *filasFake) Conn() *pgx.Conn        { return nil }

type querierFake struct {
	resultados map[string]*filasFake
	errores    map[string]error
	consultas  []string
}

func (q *querierFake) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.consultas = append(q.consultas, sql)
	if err := q.errores[sql]; err != nil {
		return nil, err
	}
	return q.resultados[sql], nil
}

// runnerFake ejecuta fn sin transacción real.
type runnerFake struct {
	q       *querierFake
	llamado int
}

func (r *runnerFake) RunReadOnly(_ context.Context, fn func(q postgres.Querier) error) error {
	r.llamado++
	return fn(r.q)
}

var erpCfg = config.ERPConfig{
	Enabled:       true,
	EntradasQuery: "SELECT * FROM v_entradas",
	SalidasQuery:  "SELECT * FROM v_salidas",
	ObrasQuery:    "SELECT * FROM v_obras",
}

func querierBase() *querierFake {
	return &querierFake{resultados: map[string]*filasFake{
		erpCfg.EntradasQuery: {
			cols: []string{"OTH_NUMERO", "gra_nombre", "art_nombre", "art_codigo", "enh_fecha", "end_cantidad", "enh_tipo_movim"},
			filas: [][]any{
				{int32(1001), "ACERO", "BARRA 12MM", "AC-12", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("10.50"), "COMPRA"},
			},
		},
		erpCfg.SalidasQuery: {
			cols: []string{"oth_numero", "gra_nombre", "art_nombre", "sah_fecha", "sad_cantidad", "sad_precio_unitario", "sah_tipo_movim"},
			filas: [][]any{
				{int64(1001), "ACERO", "BARRA 12MM", time.Date(2024, 1, 9, 14, 30, 0, 0, time.UTC), 4.25, nil, "CONSUMO"},
			},
		},
		erpCfg.ObrasQuery: {
			cols:  []string{"oth_numero", "oth_nombre", "cco_codigo"},
			filas: [][]any{{"1001", []byte("Edificio Norte"), true}},
		},
	}}
}

func TestERPSource_Cargar(t *testing.T) {
	q := querierBase()
	runner := &runnerFake{q: q}

	snap, err := postgres.NewERPSource(runner, erpCfg, nil).Cargar(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, runner.llamado, "las tres consultas van en una sola transacción")
	assert.Equal(t, []string{erpCfg.EntradasQuery, erpCfg.SalidasQuery, erpCfg.ObrasQuery}, q.consultas)
	require.True(t, snap.Completo())

	assert.Equal(t, "oth_numero", snap.Entradas.Columnas[0], "cabeceras normalizadas")
	assert.Equal(t, "1001", snap.Entradas.Valor(0, dataset.ColOT))
	assert.Equal(t, "2024-01-05", snap.Entradas.Valor(0, dataset.ColFechaEntrada))
	assert.Equal(t, "10.5", snap.Entradas.Valor(0, dataset.ColCantidadEntrada))

	assert.Equal(t, "2024-01-09 14:30:00", snap.Salidas.Valor(0, dataset.ColFechaSalida))
	assert.Equal(t, "4.25", snap.Salidas.Valor(0, dataset.ColCantidadSalida))
	assert.Equal(t, "", snap.Salidas.Valor(0, dataset.ColPrecioUnitario), "NULL queda vacío")

	assert.Equal(t, "Edificio Norte", snap.Obras.Valor(0, dataset.ColObraNombre))
	assert.Equal(t, "true", snap.Obras.Valor(0, dataset.ColObraCentroCosto))

	require.NoError(t, dataset.Validar(snap.Entradas, dataset.ColumnasEntradas))
}

func TestERPSource_VistaInexistente(t *testing.T) {
	q := querierBase()
	q.errores = map[string]error{
		erpCfg.SalidasQuery: &pgconn.PgError{Code: "42P01", Message: `relation "v_salidas" does not exist`},
	}

	_, err := postgres.NewERPSource(&runnerFake{q: q}, erpCfg, nil).Cargar(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "consulta de Salidas: la tabla o vista no existe")

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
	assert.Len(t, q.consultas, 2, "se corta en la primera falla")
}

func TestERPSource_SinPermiso(t *testing.T) {
	q := querierBase()
	q.errores = map[string]error{erpCfg.EntradasQuery: &pgconn.PgError{Code: "42501"}}

	_, err := postgres.NewERPSource(&runnerFake{q: q}, erpCfg, nil).Cargar(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sin permiso de lectura")
}
