package charrow

// MaxWidth is the default upper bound on row width (a console coordinate is a signed 16-bit value).
const MaxWidth = 1<<15 - 1

// Option configures a CharRow at construction.
type Option func(*CharRow)

// WithMaxWidth caps how wide the row may grow through New, Reset or Resize.
// Requests beyond the cap fail with ErrOutOfMemory.
// Values <= 0 keep the default (MaxWidth).
func WithMaxWidth(n int) Option {
	return func(r *CharRow) {
		if n > 0 {
			r.maxWidth = n
		}
	}
}
