package charrow

import "errors"

// WriteRune stores g at col and returns the column after it.
//
// A wide glyph takes two cells: both hold g, marked DbcsLeading and
// DbcsTrailing. If a wide glyph lands on the last column it cannot fit, so
// that cell is padded, the row is marked double-byte padded, and ErrNoRoom
// is returned with next == Width.
// Zero-width runes (combining marks, controls) are ignored and next == col.
// Overwriting one half of an existing wide glyph blanks the other half.
func (r *CharRow) WriteRune(col int, g rune) (next int, err error) {
	if err := r.checkColumn(col); err != nil {
		return col, err
	}

	switch {
	case RuneWidth(g) == 0:
		return col, nil
	case isDoubleByte(g):
		if col+1 >= r.width {
			r.breakPair(col)
			r.glyphs[col] = PaddingGlyph
			r.attributes[col] = DbcsSingle
			r.SetDoubleBytePadded(true)
			return r.width, ErrNoRoom
		}
		r.breakPair(col)
		r.breakPair(col + 1)
		r.glyphs[col] = g
		r.attributes[col] = DbcsLeading
		r.glyphs[col+1] = g
		r.attributes[col+1] = DbcsTrailing
		return col + 2, nil
	default:
		r.breakPair(col)
		r.glyphs[col] = g
		r.attributes[col] = DbcsSingle
		return col + 1, nil
	}
}

// WriteString writes s starting at col until the text or the row runs out.
// It returns the column after the last written cell and the unwritten rest of s.
// When text that needs cells remains, the row is marked wrap-forced.
// Zero-width runes never occupy a cell, so they are dropped before the
// boundary check and never end up in rest on their own.
func (r *CharRow) WriteString(col int, s string) (next int, rest string, err error) {
	if err := r.checkColumn(col); err != nil {
		return col, s, err
	}

	for i, g := range s {
		if RuneWidth(g) == 0 {
			continue
		}
		if col >= r.width {
			r.SetWrapStatus(true)
			return col, s[i:], nil
		}
		n, err := r.WriteRune(col, g)
		if errors.Is(err, ErrNoRoom) {
			r.SetWrapStatus(true)
			return n, s[i:], nil
		}
		col = n
	}
	return col, "", nil
}

// breakPair blanks the other half of a wide glyph that covers col.
func (r *CharRow) breakPair(col int) {
	switch r.attributes[col] {
	case DbcsLeading:
		if col+1 < r.width && r.attributes[col+1] == DbcsTrailing {
			r.glyphs[col+1] = PaddingGlyph
			r.attributes[col+1] = DbcsSingle
		}
	case DbcsTrailing:
		if col > 0 && r.attributes[col-1] == DbcsLeading {
			r.glyphs[col-1] = PaddingGlyph
			r.attributes[col-1] = DbcsSingle
		}
	}
}
