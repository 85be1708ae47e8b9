package charrow

import "github.com/unilibs/uniwidth"

// RuneWidth returns how many cells g takes in a row: 2 for double-byte glyphs
// (CJK, fullwidth forms, emoji), 1 for ordinary glyphs, and 0 for combining
// marks and control characters, which WriteRune does not store.
func RuneWidth(g rune) int {
	return uniwidth.RuneWidth(g)
}

// isDoubleByte reports whether g needs a DbcsLeading/DbcsTrailing cell pair.
func isDoubleByte(g rune) bool {
	return RuneWidth(g) == 2
}

// StringWidth returns the number of cells WriteString needs to store s
// without wrapping.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
