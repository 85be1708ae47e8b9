package charrow

// DbcsAttribute marks the role of a cell in double-byte (wide) text.
// A wide glyph occupies two cells: the leading cell and the trailing cell.
// The zero value is DbcsSingle.
type DbcsAttribute uint8

const (
	DbcsSingle DbcsAttribute = iota
	DbcsLeading
	DbcsTrailing
)

// IsSingle returns true if the cell holds a narrow glyph or padding.
func (a DbcsAttribute) IsSingle() bool {
	return a == DbcsSingle
}

// IsLeading returns true if this is the first cell of a wide glyph.
func (a DbcsAttribute) IsLeading() bool {
	return a == DbcsLeading
}

// IsTrailing returns true if this is the second cell of a wide glyph (should be skipped during rendering).
func (a DbcsAttribute) IsTrailing() bool {
	return a == DbcsTrailing
}

// IsDbcs returns true for either half of a wide glyph.
func (a DbcsAttribute) IsDbcs() bool {
	return a == DbcsLeading || a == DbcsTrailing
}

// SetSingle marks the cell as narrow.
func (a *DbcsAttribute) SetSingle() {
	*a = DbcsSingle
}

// SetLeading marks the cell as the first half of a wide glyph.
func (a *DbcsAttribute) SetLeading() {
	*a = DbcsLeading
}

// SetTrailing marks the cell as the second half of a wide glyph.
func (a *DbcsAttribute) SetTrailing() {
	*a = DbcsTrailing
}

// Reset restores the neutral value.
func (a *DbcsAttribute) Reset() {
	*a = DbcsSingle
}

func (a DbcsAttribute) String() string {
	switch a {
	case DbcsSingle:
		return "single"
	case DbcsLeading:
		return "leading"
	case DbcsTrailing:
		return "trailing"
	default:
		return "invalid"
	}
}
