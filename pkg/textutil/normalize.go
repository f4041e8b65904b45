package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSearchTerm prepara un término de búsqueda para comparaciones
// insensibles a mayúsculas y acentos: "Cámara Fría" -> "camara fria".
// Se usa junto a columnas indexadas con la misma normalización.
func NormalizeSearchTerm(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		// Si la transformación falla se degrada a lowercase simple
		return strings.ToLower(strings.TrimSpace(s))
	}
	return strings.ToLower(strings.TrimSpace(out))
}
