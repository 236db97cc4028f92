package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors. Match them with errors.Is; returned errors usually wrap them
// with context about where the failure happened.
var (
	// ErrInvalidArgument is returned when a value expected to be a shape is not
	// a sequence, or contains a non-numeric dimension.
	ErrInvalidArgument = errors.New("tensor: invalid argument")

	// ErrInvalidInput is returned when a value passed for shape inference is
	// neither a scalar, a sequence, nor a Tensor.
	ErrInvalidInput = errors.New("tensor: invalid input")

	// ErrDimensionMismatch is returned when nested sequence elements disagree
	// in inferred shape at some level, or when items do not fit a shape.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")
)

// MismatchError describes a jagged sequence: the element at Path has shape
// Got where every sibling before it had shape Want.
type MismatchError struct {
	Path []int // Index path from the outermost sequence to the offending element
	Want Shape // Shape of the first sibling
	Got  Shape // Shape of the offending element
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: element %v has shape %v, expected %v", ErrDimensionMismatch, e.Path, e.Got, e.Want)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
