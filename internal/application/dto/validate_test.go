package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seguimiento-obra/internal/application/dto"
	"github.com/jhoicas/seguimiento-obra/internal/domain"
)

func TestValidate_CamposObligatorios(t *testing.T) {
	err := dto.Validate(dto.AnalisisRequest{Obra: "1001"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "el campo 'material' es obligatorio")
	assert.Contains(t, err.Error(), "el campo 'articulo' es obligatorio")
}

func TestValidate_SoloEspacios(t *testing.T) {
	err := dto.Validate(dto.AnalisisRequest{Obra: "  ", Material: "ACERO", Articulo: "\t"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "el campo 'obra' es obligatorio")
	assert.Contains(t, err.Error(), "el campo 'articulo' es obligatorio")
	assert.NotContains(t, err.Error(), "'material'")

	assert.Error(t, dto.Validate(dto.AnalisisObraRequest{Obra: " "}))
}

func TestValidate_Vista(t *testing.T) {
	err := dto.Validate(dto.ResumenRequest{Vista: "stock"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "el campo 'vista' debe ser uno de: entradas, salidas")

	assert.NoError(t, dto.Validate(dto.ResumenRequest{Vista: "salidas"}))
}

func TestValidate_Valido(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.ReporteRequest{Obra: "1", Material: "M", Articulo: "A"}))
	assert.NoError(t, dto.Validate(dto.OpcionesRequest{}))
}
