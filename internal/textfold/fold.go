// Package textfold normalizes human-edited spreadsheet text for matching.
//
// Spreadsheet headers and titles arrive with inconsistent casing, accents,
// and separator characters. Fold collapses all of that so that "Start_Date",
// "start date" and "STARTDATE" compare equal, and "São Paulo" matches
// "sao paulo".
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Deaccent removes diacritical marks ("é" -> "e") without changing case.
func Deaccent(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// Fold lowercases s, strips diacritics and a UTF-8 BOM if present, and
// collapses runs of whitespace, underscores, and hyphens into single spaces.
func Fold(s string) string {
	s = strings.ReplaceAll(s, "\uFEFF", "")
	s = strings.ToLower(Deaccent(s))

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) || r == '_' || r == '-' {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// Key is Fold with all spaces removed, suitable for map keys where even
// word boundaries should not matter ("startdate" == "start date").
func Key(s string) string {
	return strings.ReplaceAll(Fold(s), " ", "")
}
