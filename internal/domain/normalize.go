package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops combining marks, turning
// "Pão Francês" into "Pao Frances" before further cleanup.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName produces the lookup key for an item name: case-folded,
// accents stripped, punctuation and currency markers replaced by spaces,
// whitespace collapsed. "Pão Francês — R$" and "pao frances r" collide
// on purpose; display names are kept separately.
func NormalizeName(name string) string {
	folded := strings.ToLower(name)
	stripped, _, err := transform.String(stripMarks, folded)
	if err != nil {
		// Transform only fails on invalid UTF-8; fall back to the folded form.
		stripped = folded
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
