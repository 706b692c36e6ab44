package dataset

import "github.com/jhoicas/seguimiento-obra/internal/domain"

// Nombres de los datasets, tal como se muestran en los mensajes de error.
const (
	DatasetEntradas = "Entradas"
	DatasetSalidas  = "Salidas"
	DatasetObras    = "Obras"
)

// Columnas normalizadas de los tres datasets.
const (
	ColOT              = "oth_numero"
	ColMaterial        = "gra_nombre"
	ColArticulo        = "art_nombre"
	ColCodigoArticulo  = "art_codigo"
	ColFechaEntrada    = "enh_fecha"
	ColCantidadEntrada = "end_cantidad"
	ColTipoEntrada     = "enh_tipo_movim"
	ColFechaSalida     = "sah_fecha"
	ColCantidadSalida  = "sad_cantidad"
	ColPrecioUnitario  = "sad_precio_unitario"
	ColTipoSalida      = "sah_tipo_movim"
	ColObraNombre      = "oth_nombre"
	ColObraCentroCosto = "cco_codigo"
)

var (
	ColumnasEntradas = []string{ColOT, ColMaterial, ColArticulo, ColCodigoArticulo, ColFechaEntrada, ColCantidadEntrada, ColTipoEntrada}
	ColumnasSalidas  = []string{ColOT, ColMaterial, ColArticulo, ColFechaSalida, ColCantidadSalida, ColPrecioUnitario, ColTipoSalida}
	ColumnasObras    = []string{ColOT, ColObraNombre, ColObraCentroCosto}
)

// Snapshot los tres datasets de una ejecución.
type Snapshot struct {
	Entradas *Table
	Salidas  *Table
	Obras    *Table
}

// Completo indica si llegaron los tres datasets.
func (s *Snapshot) Completo() bool {
	return s != nil && s.Entradas != nil && s.Salidas != nil && s.Obras != nil
}

// Validar comprueba que la tabla tenga todas las columnas requeridas.
// Devuelve *domain.SchemaError con la primera columna faltante.
func Validar(t *Table, requeridas []string) error {
	for _, col := range requeridas {
		if !t.Has(col) {
			return &domain.SchemaError{Dataset: t.Nombre, Columna: col}
		}
	}
	return nil
}

// ValidarSnapshot valida entradas, salidas y obras en ese orden y se detiene en el primer error.
func ValidarSnapshot(s *Snapshot) error {
	if !s.Completo() {
		return domain.ErrMissingInput
	}
	if err := Validar(s.Entradas, ColumnasEntradas); err != nil {
		return err
	}
	if err := Validar(s.Salidas, ColumnasSalidas); err != nil {
		return err
	}
	return Validar(s.Obras, ColumnasObras)
}
