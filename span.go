package charrow

import "iter"

// Span is a read-only view over a contiguous range of row cells, starting at
// column Start. It observes the row's storage directly, so writes made
// through the row are visible; Resize and Reset invalidate it.
type Span[T any] struct {
	start int
	data  []T
}

func newSpan[T any](data []T, start int) Span[T] {
	return Span[T]{start: start, data: data[start:len(data):len(data)]}
}

// Start returns the column of the first cell in the view.
func (s Span[T]) Start() int {
	return s.start
}

// End returns one past the column of the last cell in the view.
func (s Span[T]) End() int {
	return s.start + len(s.data)
}

// Len returns the number of cells in the view.
func (s Span[T]) Len() int {
	return len(s.data)
}

// At returns the i-th element of the view (relative to Start).
// Returns false if i is out of range.
func (s Span[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.data) {
		var zero T
		return zero, false
	}
	return s.data[i], true
}

// All yields (column, value) pairs in column order. Columns are absolute row columns.
func (s Span[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.data {
			if !yield(s.start+i, v) {
				return
			}
		}
	}
}

// Backward yields (column, value) pairs from the last column to the first.
func (s Span[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(s.data) - 1; i >= 0; i-- {
			if !yield(s.start+i, s.data[i]) {
				return
			}
		}
	}
}

// CopyTo copies the view into dst and returns the number of elements copied.
func (s Span[T]) CopyTo(dst []T) int {
	return copy(dst, s.data)
}

// IndexFunc returns the column of the first element satisfying f, or -1.
func (s Span[T]) IndexFunc(f func(T) bool) int {
	for i, v := range s.data {
		if f(v) {
			return s.start + i
		}
	}
	return -1
}
