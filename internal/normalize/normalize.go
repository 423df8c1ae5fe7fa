package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// descompone en NFD y descarta las marcas combinantes (tildes, diéresis)
var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Text removes diacritics from a value: "Región" -> "Region".
func Text(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return s
	}
	return out
}

// Header canonicalizes a column header so it can be matched against the
// declared input schema: accents stripped, lowercased, spaces collapsed to
// underscores.
func Header(s string) string {
	h := Text(strings.TrimSpace(s))
	h = strings.ToLower(h)
	return strings.ReplaceAll(h, " ", "_")
}
