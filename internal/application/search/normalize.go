package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents descompone a NFD, elimina las marcas diacríticas y recompone.
// "Peñalosa" y "Penalosa" deben encontrar el mismo cliente.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepara un término de búsqueda: minúsculas, sin acentos y sin
// espacios sobrantes. Los repos comparan contra columnas normalizadas igual.
func Normalize(q string) string {
	q = strings.ToLower(strings.TrimSpace(q))
	out, _, err := transform.String(stripAccents, q)
	if err != nil {
		return q
	}
	return out
}
