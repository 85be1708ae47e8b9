package charrow

import "testing"

func TestRowFlagsIndependent(t *testing.T) {
	var f RowFlags

	f.Set(RowFlagWrapForced)
	if !f.Has(RowFlagWrapForced) {
		t.Error("expected wrap forced")
	}
	if f.Has(RowFlagDoubleBytePadded) {
		t.Error("setting wrap forced should not set double byte padded")
	}

	f.Set(RowFlagDoubleBytePadded)
	f.Clear(RowFlagWrapForced)
	if f.Has(RowFlagWrapForced) {
		t.Error("expected wrap forced to be cleared")
	}
	if !f.Has(RowFlagDoubleBytePadded) {
		t.Error("clearing wrap forced should not clear double byte padded")
	}
}

func TestRowFlagsSetTo(t *testing.T) {
	var f RowFlags

	f.SetTo(RowFlagDoubleBytePadded, true)
	if f != RowFlagDoubleBytePadded {
		t.Errorf("got %b, want %b", f, RowFlagDoubleBytePadded)
	}

	f.SetTo(RowFlagDoubleBytePadded, false)
	if f != 0 {
		t.Errorf("got %b, want 0", f)
	}
}
