package charrow

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text and flags only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailSegments adds runs of single-byte and double-byte text.
	SnapshotDetailSegments SnapshotDetail = "segments"
	// SnapshotDetailFull returns full cell-by-cell data.
	SnapshotDetailFull SnapshotDetail = "full"
)

// RowSnapshot is a serializable capture of a row.
type RowSnapshot struct {
	Width            int               `json:"width"`
	Text             string            `json:"text"`
	Left             int               `json:"left"`
	Right            int               `json:"right"`
	WrapForced       bool              `json:"wrap_forced,omitempty"`
	DoubleBytePadded bool              `json:"double_byte_padded,omitempty"`
	Segments         []SnapshotSegment `json:"segments,omitempty"`
	Cells            []SnapshotCell    `json:"cells,omitempty"`
}

// SnapshotSegment is a run of cells that are either all single-byte or all double-byte.
type SnapshotSegment struct {
	Col  int    `json:"col"`
	Text string `json:"text"`
	Wide bool   `json:"wide,omitempty"`
}

// SnapshotCell represents a single cell.
type SnapshotCell struct {
	Char string `json:"char"`
	Dbcs string `json:"dbcs"`
}

// Snapshot captures the row. Text is TrimmedText; Left and Right are the
// measured redraw span.
func (r *CharRow) Snapshot(detail SnapshotDetail) RowSnapshot {
	snap := RowSnapshot{
		Width:            r.width,
		Text:             r.TrimmedText(),
		Left:             r.MeasureLeft(),
		Right:            r.MeasureRight(),
		WrapForced:       r.WasWrapForced(),
		DoubleBytePadded: r.WasDoubleBytePadded(),
	}

	switch detail {
	case SnapshotDetailText:
		// Just text, already set

	case SnapshotDetailSegments:
		snap.Segments = r.segments()

	case SnapshotDetailFull:
		snap.Cells = r.cells()
	}

	return snap
}

// segments splits the full row into runs by DBCS kind, skipping trailing halves.
func (r *CharRow) segments() []SnapshotSegment {
	var segments []SnapshotSegment
	var current *SnapshotSegment
	var currentChars []rune

	for col := 0; col < r.width; col++ {
		attr := r.attributes[col]
		if attr.IsTrailing() {
			continue
		}

		wide := attr.IsLeading()
		if current == nil || current.Wide != wide {
			if current != nil && len(currentChars) > 0 {
				current.Text = string(currentChars)
				segments = append(segments, *current)
			}
			current = &SnapshotSegment{Col: col, Wide: wide}
			currentChars = nil
		}
		currentChars = append(currentChars, r.glyphs[col])
	}

	if current != nil && len(currentChars) > 0 {
		current.Text = string(currentChars)
		segments = append(segments, *current)
	}

	return segments
}

func (r *CharRow) cells() []SnapshotCell {
	cells := make([]SnapshotCell, r.width)
	for col := range cells {
		cells[col] = SnapshotCell{
			Char: string(r.glyphs[col]),
			Dbcs: r.attributes[col].String(),
		}
	}
	return cells
}
