package matrix

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrInvalidShape  = errors.New("invalid shape")
)

// ShapeMismatchError reports two operands that cannot be combined by Op.
type ShapeMismatchError struct {
	Op    string // Operation name (e.g., "multiply", "add")
	Left  Shape
	Right Shape
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("matrix %s: incompatible shapes (%s) and (%s)", e.Op, e.Left, e.Right)
}

// Unwrap lets errors.Is match ErrShapeMismatch.
func (e *ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}

func mismatch(op string, left, right Shape) error {
	return &ShapeMismatchError{Op: op, Left: left, Right: right}
}
