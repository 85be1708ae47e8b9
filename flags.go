package charrow

// RowFlags is a bitmask of per-row state that is independent of the row content.
type RowFlags uint8

const (
	// RowFlagWrapForced is set when text ran out of room at the end of the row
	// and continued on the next one (as opposed to an explicit newline).
	RowFlagWrapForced RowFlags = 1 << iota
	// RowFlagDoubleBytePadded is set when the last cell was padded because a
	// wide glyph did not fit and was moved to the next row.
	RowFlagDoubleBytePadded
)

// Has returns true if the specified flag is set.
func (f RowFlags) Has(flag RowFlags) bool {
	return f&flag != 0
}

// Set enables the specified flag without affecting others.
func (f *RowFlags) Set(flag RowFlags) {
	*f |= flag
}

// Clear disables the specified flag without affecting others.
func (f *RowFlags) Clear(flag RowFlags) {
	*f &^= flag
}

// SetTo enables or disables the specified flag.
func (f *RowFlags) SetTo(flag RowFlags, on bool) {
	if on {
		f.Set(flag)
	} else {
		f.Clear(flag)
	}
}
