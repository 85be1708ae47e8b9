package charrow

import (
	"encoding/json"
	"testing"
)

func TestSnapshot_Text(t *testing.T) {
	r := mustNew(t, 6)
	r.WriteString(0, "abcdefg")

	snap := r.Snapshot(SnapshotDetailText)

	if snap.Width != 6 {
		t.Errorf("Width = %d, want 6", snap.Width)
	}
	if snap.Text != "abcdef" {
		t.Errorf("Text = %q, want %q", snap.Text, "abcdef")
	}
	if snap.Left != 0 || snap.Right != 6 {
		t.Errorf("span = [%d, %d), want [0, 6)", snap.Left, snap.Right)
	}
	if !snap.WrapForced {
		t.Error("WrapForced = false, want true")
	}

	// Text mode should not have segments or cells
	if snap.Segments != nil {
		t.Error("Text mode should not have segments")
	}
	if snap.Cells != nil {
		t.Error("Text mode should not have cells")
	}
}

func TestSnapshot_BlankRow(t *testing.T) {
	r := mustNew(t, 3)

	snap := r.Snapshot(SnapshotDetailText)

	if snap.Text != "" {
		t.Errorf("Text = %q, want empty", snap.Text)
	}
	if snap.Left != 3 || snap.Right != 0 {
		t.Errorf("span = [%d, %d), want [3, 0)", snap.Left, snap.Right)
	}
}

func TestSnapshot_Segments(t *testing.T) {
	r := mustNew(t, 8)
	r.WriteString(0, "ab世界c")

	snap := r.Snapshot(SnapshotDetailSegments)

	want := []SnapshotSegment{
		{Col: 0, Text: "ab"},
		{Col: 2, Text: "世界", Wide: true},
		{Col: 6, Text: "c "},
	}
	if len(snap.Segments) != len(want) {
		t.Fatalf("got %d segments, want %d: %+v", len(snap.Segments), len(want), snap.Segments)
	}
	for i, seg := range snap.Segments {
		if seg != want[i] {
			t.Errorf("Segments[%d] = %+v, want %+v", i, seg, want[i])
		}
	}
}

func TestSnapshot_Full(t *testing.T) {
	r := mustNew(t, 3)
	r.WriteString(0, "世")

	snap := r.Snapshot(SnapshotDetailFull)

	if len(snap.Cells) != 3 {
		t.Fatalf("len(Cells) = %d, want 3", len(snap.Cells))
	}
	want := []SnapshotCell{
		{Char: "世", Dbcs: "leading"},
		{Char: "世", Dbcs: "trailing"},
		{Char: " ", Dbcs: "single"},
	}
	for i, c := range snap.Cells {
		if c != want[i] {
			t.Errorf("Cells[%d] = %+v, want %+v", i, c, want[i])
		}
	}
}

func TestSnapshot_JSON(t *testing.T) {
	r := mustNew(t, 4)
	r.WriteString(1, "hi")
	r.SetDoubleBytePadded(true)

	data, err := json.Marshal(r.Snapshot(SnapshotDetailText))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := `{"width":4,"text":"hi","left":1,"right":3,"double_byte_padded":true}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}
