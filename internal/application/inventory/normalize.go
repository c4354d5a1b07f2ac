package inventory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeForSearch baja a minúsculas y elimina marcas diacríticas
// (NFD -> quitar Mn -> NFC), para que "limón" y "LIMON" comparen igual.
func normalizeForSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

// matchesSearch indica si name contiene la consulta ya normalizada.
func matchesSearch(name, normalizedQuery string) bool {
	return strings.Contains(normalizeForSearch(name), normalizedQuery)
}
