package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Tensor is an immutable n-dimensional array: a Shape plus its items stored
// flat in row-major order (the last dimension varies fastest).
//
// Invariant: len(items) == shape.NumElements().
//
// A Tensor is also a Value, so it can be nested inside a Seq.
//
// Example:
//
//	t, _ := tensor.New(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
//	v, _ := t.At(1, 0) // 3
type Tensor[T Number] struct {
	shape Shape
	items []T
}

func (*Tensor[T]) sealed(T) {}

// New creates a Tensor from a shape and its flat row-major items.
// Both slices are copied.
func New[T Number](shape Shape, items []T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(items) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "shape %v requires %d items, but got %d",
			shape, shape.NumElements(), len(items))
	}
	return newTensor(shape.Clone(), append([]T(nil), items...)), nil
}

// newTensor takes ownership of shape and items without checks.
func newTensor[T Number](shape Shape, items []T) *Tensor[T] {
	if items == nil {
		items = []T{}
	}
	return &Tensor[T]{shape: shape, items: items}
}

// Shape returns a copy of the tensor's shape, or nil for a nil tensor.
func (t *Tensor[T]) Shape() Shape {
	if t == nil {
		return nil
	}
	return t.shape.Clone()
}

// Items returns a copy of the tensor's flat row-major items, or nil for a nil
// tensor.
func (t *Tensor[T]) Items() []T {
	if t == nil {
		return nil
	}
	return append([]T{}, t.items...)
}

// Rank returns the number of dimensions; 0 for a nil tensor.
func (t *Tensor[T]) Rank() int {
	if t == nil {
		return 0
	}
	return len(t.shape)
}

// NumItems returns the total number of items; 0 for a nil tensor.
func (t *Tensor[T]) NumItems() int {
	if t == nil {
		return 0
	}
	return len(t.items)
}

// At returns the item at the given indices.
// A nil tensor fails with ErrInvalidInput.
func (t *Tensor[T]) At(indices ...int) (T, error) {
	var zero T
	if t == nil {
		return zero, errors.Wrap(ErrInvalidInput, "nil tensor")
	}
	if len(indices) != len(t.shape) {
		return zero, errors.Wrapf(ErrInvalidArgument, "expected %d indices, got %d", len(t.shape), len(indices))
	}

	// Row-major: fold the indices from the outermost dimension inwards.
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return zero, errors.Wrapf(ErrInvalidArgument, "index %d out of bounds for dimension %d (size %d)",
				idx, i, t.shape[i])
		}
		offset = offset*t.shape[i] + idx
	}
	return t.items[offset], nil
}

// Equal reports whether t and other have equal shapes and equal items.
// A tensor always equals itself; nil only equals nil.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if !t.shape.Equal(other.shape) || len(t.items) != len(other.items) {
		return false
	}
	for i := range t.items {
		if t.items[i] != other.items[i] {
			return false
		}
	}
	return true
}

// String returns a short description such as "Tensor(shape=[2 2], items=[1 2 3 4])".
func (t *Tensor[T]) String() string {
	if t == nil {
		return "Tensor(nil)"
	}
	return fmt.Sprintf("Tensor(shape=%v, items=%v)", t.shape, t.items)
}
