package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/billing-pro/internal/application/search"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  Peñalosa  ":   "penalosa",
		"JOSÉ García":    "jose garcia",
		"müller":         "muller",
		"factura":        "factura",
		"":               "",
		"ACME S.A.S":     "acme s.a.s",
		"Ítem Ñandú 123": "item nandu 123",
	}
	for in, want := range cases {
		assert.Equal(t, want, search.Normalize(in), "entrada %q", in)
	}
}
