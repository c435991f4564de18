package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
)

// La referencia a negocio llega en dos formas según la versión del cliente:
// id plano o objeto denormalizado. Ambas deben normalizar al mismo struct.

func TestBusinessRef_IDPlano(t *testing.T) {
	var r dto.BusinessRef
	require.NoError(t, json.Unmarshal([]byte(`"biz-123"`), &r))
	assert.Equal(t, "biz-123", r.ID)
	assert.Empty(t, r.Name)
}

func TestBusinessRef_ObjetoDenormalizado(t *testing.T) {
	var r dto.BusinessRef
	payload := `{"id":"biz-123","name":"Acme S.A.S","logo":"https://cdn/acme.png"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &r))
	assert.Equal(t, "biz-123", r.ID)
	assert.Equal(t, "Acme S.A.S", r.Name)
	assert.Equal(t, "https://cdn/acme.png", r.Logo)
}

func TestBusinessRef_DentroDeMembresia(t *testing.T) {
	type wrapper struct {
		Business dto.BusinessRef `json:"business"`
		Role     string          `json:"role"`
	}
	var a, b wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"business":"biz-9","role":"viewer"}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"business":{"id":"biz-9"},"role":"viewer"}`), &b))
	assert.Equal(t, a.Business.ID, b.Business.ID, "ambas formas deben dar el mismo id")
}

func TestBusinessRef_JSONInvalido(t *testing.T) {
	var r dto.BusinessRef
	assert.Error(t, json.Unmarshal([]byte(`42`), &r))
}
