package seguimiento

import "context"

// Formatos de reporte soportados.
const (
	FormatoXLSX = "xlsx"
	FormatoPDF  = "pdf"
)

var contentTypes = map[string]string{
	FormatoXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatoPDF:  "application/pdf",
}

// ReportGenerator convierte un análisis en el archivo de un formato (xlsx o pdf).
// Las implementaciones viven en infrastructure y no deben modificar el análisis.
type ReportGenerator interface {
	GenerarReporte(ctx context.Context, a *Analisis) ([]byte, error)
}
