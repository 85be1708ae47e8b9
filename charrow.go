package charrow

import (
	"fmt"
	"runtime"
	"slices"
)

// PaddingGlyph fills cells that hold no text.
const PaddingGlyph = ' '

// CharRow stores the glyphs and DBCS attributes for one line of a character grid.
// Glyphs and attributes are parallel: index i of each describes column i.
//
// We keep MeasureLeft and MeasureRight so that a renderer never redraws more
// columns than it has to:
//
//	[     foo.bar    12-12-61                       ]
//	      ^                  ^                      ^
//	      |                  |                      |
//	    Left               Right                  Width
//
// The zero value is an empty row; call Reset before use.
// A CharRow is not safe for concurrent use.
type CharRow struct {
	flags      RowFlags
	width      int
	glyphs     []rune
	attributes []DbcsAttribute
	maxWidth   int
}

// New creates a row of width cells, all padding with neutral attributes and no flags set.
func New(width int, opts ...Option) (*CharRow, error) {
	r := &CharRow{maxWidth: MaxWidth}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.Reset(width); err != nil {
		return nil, err
	}
	return r, nil
}

// Reset re-initializes the row to the state New(width) would produce.
// Existing storage is reused when it is large enough. On error the row is unchanged.
func (r *CharRow) Reset(width int) error {
	if err := r.checkWidth(width); err != nil {
		return fmt.Errorf("reset to %d cells: %w", width, err)
	}

	glyphs, attrs := r.glyphs, r.attributes
	if cap(glyphs) < width || cap(attrs) < width {
		var err error
		glyphs, attrs, err = allocate(width)
		if err != nil {
			return fmt.Errorf("reset to %d cells: %w", width, err)
		}
	}
	glyphs = glyphs[:width]
	attrs = attrs[:width]
	fill(glyphs, attrs)

	r.glyphs = glyphs
	r.attributes = attrs
	r.width = width
	r.flags = 0
	return nil
}

// Resize changes the row width. Growing keeps existing cells at their columns
// and pads the new ones; shrinking drops the cells past newWidth.
// On error (ErrInvalidWidth, ErrOutOfMemory) the row is unchanged.
func (r *CharRow) Resize(newWidth int) error {
	if newWidth == r.width && newWidth > 0 {
		return nil
	}
	if err := r.checkWidth(newWidth); err != nil {
		return fmt.Errorf("resize from %d to %d cells: %w", r.width, newWidth, err)
	}

	if newWidth < r.width {
		r.glyphs = r.glyphs[:newWidth]
		r.attributes = r.attributes[:newWidth]
		r.width = newWidth
		return nil
	}

	glyphs, attrs, err := allocate(newWidth)
	if err != nil {
		return fmt.Errorf("resize from %d to %d cells: %w", r.width, newWidth, err)
	}
	copy(glyphs, r.glyphs)
	copy(attrs, r.attributes)
	fill(glyphs[r.width:], attrs[r.width:])

	r.glyphs = glyphs
	r.attributes = attrs
	r.width = newWidth
	return nil
}

func (r *CharRow) checkWidth(width int) error {
	if width <= 0 {
		return ErrInvalidWidth
	}
	limit := r.maxWidth
	if limit <= 0 {
		limit = MaxWidth
	}
	if width > limit {
		return ErrOutOfMemory
	}
	return nil
}

// allocate builds fresh storage for n cells. A failing make (length overflow)
// is reported as ErrOutOfMemory instead of crashing the caller.
func allocate(n int) (glyphs []rune, attrs []DbcsAttribute, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if _, ok := rec.(runtime.Error); !ok {
				panic(rec)
			}
			glyphs, attrs, err = nil, nil, ErrOutOfMemory
		}
	}()
	glyphs = make([]rune, n)
	attrs = make([]DbcsAttribute, n)
	return glyphs, attrs, nil
}

func fill(glyphs []rune, attrs []DbcsAttribute) {
	for i := range glyphs {
		glyphs[i] = PaddingGlyph
	}
	clear(attrs)
}

func (r *CharRow) checkColumn(col int) error {
	if col < 0 || col >= r.width {
		return &BoundsError{Column: col, Width: r.width}
	}
	return nil
}

// Width returns the number of cells in the row.
func (r *CharRow) Width() int {
	return r.width
}

// --- Cell Access ---

// GlyphAt returns the glyph at col.
func (r *CharRow) GlyphAt(col int) (rune, error) {
	if err := r.checkColumn(col); err != nil {
		return 0, err
	}
	return r.glyphs[col], nil
}

// SetGlyphAt replaces the glyph at col. The attribute is not touched.
func (r *CharRow) SetGlyphAt(col int, g rune) error {
	if err := r.checkColumn(col); err != nil {
		return err
	}
	r.glyphs[col] = g
	return nil
}

// Glyph returns a pointer to the glyph at col for in-place editing.
// Returns nil if col is out of bounds.
func (r *CharRow) Glyph(col int) *rune {
	if r.checkColumn(col) != nil {
		return nil
	}
	return &r.glyphs[col]
}

// ClearGlyph sets the glyph at col back to PaddingGlyph. The attribute is not touched.
func (r *CharRow) ClearGlyph(col int) error {
	return r.SetGlyphAt(col, PaddingGlyph)
}

// AttributeAt returns the DBCS attribute at col.
func (r *CharRow) AttributeAt(col int) (DbcsAttribute, error) {
	if err := r.checkColumn(col); err != nil {
		return DbcsSingle, err
	}
	return r.attributes[col], nil
}

// SetAttributeAt replaces the DBCS attribute at col. The glyph is not touched.
func (r *CharRow) SetAttributeAt(col int, a DbcsAttribute) error {
	if err := r.checkColumn(col); err != nil {
		return err
	}
	r.attributes[col] = a
	return nil
}

// Attribute returns a pointer to the attribute at col for in-place editing.
// Returns nil if col is out of bounds.
func (r *CharRow) Attribute(col int) *DbcsAttribute {
	if r.checkColumn(col) != nil {
		return nil
	}
	return &r.attributes[col]
}

// GlyphsFrom returns a view over the glyphs in [col, Width).
// col == Width yields an empty view.
func (r *CharRow) GlyphsFrom(col int) (Span[rune], error) {
	if col < 0 || col > r.width {
		return Span[rune]{}, &BoundsError{Column: col, Width: r.width}
	}
	return newSpan(r.glyphs, col), nil
}

// AttributesFrom returns a view over the attributes in [col, Width).
// col == Width yields an empty view.
func (r *CharRow) AttributesFrom(col int) (Span[DbcsAttribute], error) {
	if col < 0 || col > r.width {
		return Span[DbcsAttribute]{}, &BoundsError{Column: col, Width: r.width}
	}
	return newSpan(r.attributes, col), nil
}

// Glyphs returns a view over every glyph of the row.
func (r *CharRow) Glyphs() Span[rune] {
	return newSpan(r.glyphs, 0)
}

// Attributes returns a view over every attribute of the row.
func (r *CharRow) Attributes() Span[DbcsAttribute] {
	return newSpan(r.attributes, 0)
}

// Runes returns a copy of every glyph in column order, padding included.
// Unlike Text, every glyph is returned exactly as stored.
func (r *CharRow) Runes() []rune {
	return slices.Clone(r.glyphs)
}

// Text returns every glyph in column order, padding included.
// Both halves of a double-byte glyph appear, as stored.
// Glyphs that are not valid Unicode scalar values (surrogates, values past
// U+10FFFF) become U+FFFD in the string; use Runes for the exact stored values.
func (r *CharRow) Text() string {
	return string(r.glyphs)
}

// TrimmedText returns the glyphs in [MeasureLeft, MeasureRight), skipping
// the trailing half of double-byte glyphs. Returns "" for a blank row.
func (r *CharRow) TrimmedText() string {
	left, right := r.MeasureLeft(), r.MeasureRight()
	if left >= right {
		return ""
	}
	runes := make([]rune, 0, right-left)
	for col := left; col < right; col++ {
		if r.attributes[col].IsTrailing() {
			continue
		}
		runes = append(runes, r.glyphs[col])
	}
	return string(runes)
}

func (r *CharRow) String() string {
	return r.Text()
}

// --- Flags ---

// Flags returns the current row flags.
func (r *CharRow) Flags() RowFlags {
	return r.flags
}

// SetWrapStatus records whether the row wrapped because text ran out of room.
func (r *CharRow) SetWrapStatus(forced bool) {
	r.flags.SetTo(RowFlagWrapForced, forced)
}

// WasWrapForced returns true if the row wrapped because text ran out of room.
func (r *CharRow) WasWrapForced() bool {
	return r.flags.Has(RowFlagWrapForced)
}

// SetDoubleBytePadded records whether the last cell was padded for a wide glyph that did not fit.
func (r *CharRow) SetDoubleBytePadded(padded bool) {
	r.flags.SetTo(RowFlagDoubleBytePadded, padded)
}

// WasDoubleBytePadded returns true if the last cell was padded for a wide glyph that did not fit.
func (r *CharRow) WasDoubleBytePadded() bool {
	return r.flags.Has(RowFlagDoubleBytePadded)
}

// --- Measurement ---

// ContainsText returns true if any cell holds something other than PaddingGlyph.
func (r *CharRow) ContainsText() bool {
	for _, g := range r.glyphs {
		if g != PaddingGlyph {
			return true
		}
	}
	return false
}

// MeasureLeft returns the column of the first non-padding glyph, or Width if there is none.
func (r *CharRow) MeasureLeft() int {
	for col, g := range r.glyphs {
		if g != PaddingGlyph {
			return col
		}
	}
	return r.width
}

// MeasureRight returns one past the column of the last non-padding glyph, or 0 if there is none.
func (r *CharRow) MeasureRight() int {
	for col := r.width - 1; col >= 0; col-- {
		if r.glyphs[col] != PaddingGlyph {
			return col + 1
		}
	}
	return 0
}

// --- Value Semantics ---

// Equal returns true if both rows have the same flags, width, glyphs and attributes.
// Configuration such as WithMaxWidth is not compared.
func (r *CharRow) Equal(other *CharRow) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return r.flags == other.flags &&
		r.width == other.width &&
		slices.Equal(r.glyphs, other.glyphs) &&
		slices.Equal(r.attributes, other.attributes)
}

// Clone returns an independent copy of the row.
func (r *CharRow) Clone() *CharRow {
	return &CharRow{
		flags:      r.flags,
		width:      r.width,
		glyphs:     slices.Clone(r.glyphs),
		attributes: slices.Clone(r.attributes),
		maxWidth:   r.maxWidth,
	}
}

// CopyFrom makes r an independent copy of src, reusing r's storage when possible.
// A nil src leaves r unchanged.
func (r *CharRow) CopyFrom(src *CharRow) {
	if src == nil || r == src {
		return
	}
	r.glyphs = append(r.glyphs[:0], src.glyphs...)
	r.attributes = append(r.attributes[:0], src.attributes...)
	r.width = src.width
	r.flags = src.flags
	r.maxWidth = src.maxWidth
}

// Swap exchanges the complete state of r and other in constant time.
func (r *CharRow) Swap(other *CharRow) {
	*r, *other = *other, *r
}
