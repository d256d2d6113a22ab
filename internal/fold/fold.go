// Package fold normalizes text for accent-insensitive guess matching:
// lowercase plus removal of combining diacritical marks, so a plain "e"
// matches "é" in a secret word. Folding is used only for comparison;
// display strings keep their original characters.
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// String returns the folded form of s
func String(s string) string {
	s = strings.ToLower(s)
	// Decompose, strip nonspacing marks, recompose. Transformers carry
	// state, so build the chain per call rather than sharing one.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// Rune returns the folded form of a single rune
func Rune(r rune) string {
	return String(string(r))
}
