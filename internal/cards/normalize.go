// Package cards turns card display names into stable keys for local image
// lookup. The keys are display-only: game logic and protocol calls always
// use card IDs.
package cards

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ImageKey normalizes a display name: diacritics stripped, lowercased,
// punctuation dropped, word runs joined with hyphens.
// "Otra Víctima" -> "otra-victima".
func ImageKey(displayName string) string {
	stripped, _, err := transform.String(stripMarks, displayName)
	if err != nil {
		stripped = displayName
	}
	stripped = strings.ToLower(stripped)

	var b strings.Builder
	for _, r := range stripped {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-', r == '_':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}
