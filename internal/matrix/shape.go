package matrix

import (
	"fmt"
	"math"
)

// Shape holds the dimensions of a matrix.
type Shape struct {
	Rows int
	Cols int
}

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Validate checks that both dimensions are non-negative and that
// Rows*Cols fits in an int.
func (s Shape) Validate() error {
	if s.Rows < 0 || s.Cols < 0 {
		return fmt.Errorf("%w: %s (dimensions must be >= 0)", ErrInvalidShape, s)
	}
	if s.Cols != 0 && s.Rows > math.MaxInt/s.Cols {
		return fmt.Errorf("%w: %s overflows element count", ErrInvalidShape, s)
	}
	return nil
}

// Equal reports whether two shapes are identical.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// IsColumn reports whether the shape is a column vector [n x 1].
func (s Shape) IsColumn() bool {
	return s.Cols == 1
}

// String formats the shape as "RxC".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}
