// Package charrow provides a fixed-width row of character cells for
// terminal and console screen buffers.
//
// A [CharRow] stores one line of a character grid as two parallel sequences:
// glyphs and per-cell double-byte (DBCS) attributes. It also carries two
// independent flags: whether the line wrapped because text ran out of room,
// and whether its last cell was padded because a wide glyph did not fit.
//
// # Quick Start
//
//	row, err := charrow.New(80)
//	if err != nil {
//	    return err
//	}
//	row.WriteString(0, "Hello 世界")
//	fmt.Println(row.TrimmedText()) // "Hello 世界"
//
// # Cells
//
// Every cell holds a glyph and a [DbcsAttribute]. Empty cells hold
// [PaddingGlyph] and [DbcsSingle]. A wide glyph occupies two cells, both
// holding the glyph, marked [DbcsLeading] and [DbcsTrailing]:
//
//	g, err := row.GlyphAt(6)
//	a, err := row.AttributeAt(7) // DbcsTrailing
//	*row.Glyph(0) = 'h'          // in-place edit, nil when out of range
//
// Columns are always range-checked. Out-of-range access returns a
// [*BoundsError] (matched by [ErrColumnOutOfRange]) and never modifies the row.
//
// # Resize
//
// [CharRow.Resize] keeps the existing cells at their columns. Growing pads
// the new cells, shrinking drops the cells past the new width. If storage
// cannot grow, [ErrOutOfMemory] is returned and the row is left untouched.
//
// # Redraw Span
//
// [CharRow.MeasureLeft] and [CharRow.MeasureRight] bound the columns that
// hold text; a renderer only needs to redraw [left, right):
//
//	left, right := row.MeasureLeft(), row.MeasureRight()
//	if left < right {
//	    // redraw columns left..right-1
//	}
//
// [RedrawSpan] does exactly that with a golang.org/x/image font.
//
// # Value Semantics
//
// Rows compare with [CharRow.Equal], copy with [CharRow.Clone] or
// [CharRow.CopyFrom], and exchange storage in constant time with [CharRow.Swap].
//
// # Thread Safety
//
// A CharRow is a plain data object with no internal locking. The owner of a
// row must serialize access to it.
package charrow
