package charrow

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWidth is returned when a row is created, reset or resized to a width < 1.
	ErrInvalidWidth = errors.New("charrow: width must be positive")

	// ErrOutOfMemory is returned when row storage cannot grow to the requested width.
	// The row is left unchanged.
	ErrOutOfMemory = errors.New("charrow: out of memory")

	// ErrColumnOutOfRange is matched by every *BoundsError.
	ErrColumnOutOfRange = errors.New("charrow: column out of range")

	// ErrNoRoom is returned when a wide glyph cannot fit at the end of the row.
	ErrNoRoom = errors.New("charrow: no room for double-byte glyph")
)

// BoundsError reports a column outside [0, Width).
type BoundsError struct {
	Column int
	Width  int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("charrow: column %d out of range [0, %d)", e.Column, e.Width)
}

// Is makes errors.Is(err, ErrColumnOutOfRange) true for bounds errors.
func (e *BoundsError) Is(target error) bool {
	return target == ErrColumnOutOfRange
}
