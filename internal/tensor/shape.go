package tensor

import (
	"encoding/json"
	"fmt"
	"math"
	"math/bits"
	"reflect"

	"github.com/pkg/errors"
)

// Shape represents the dimensions of a tensor, outermost first.
//
// The empty, non-nil Shape{} is the rank-0 marker of a scalar. It is
// distinct from Shape{0}, the shape of an empty sequence.
type Shape []int

// ScalarShape returns the rank-0 marker.
func ScalarShape() Shape {
	return Shape{}
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// IsScalar reports whether s is the rank-0 marker.
func (s Shape) IsScalar() bool {
	return len(s) == 0
}

// NumElements returns the number of items a tensor of this shape holds.
// Negative dimensions are not rejected here; the product falls out as is.
// The result is only meaningful for shapes accepted by Validate or
// CountItems, which reject products that overflow int.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// checkedNumElements is NumElements with an ErrInvalidArgument on int overflow.
func (s Shape) checkedNumElements() (int, error) {
	for _, dim := range s {
		if dim == 0 {
			return 0, nil
		}
	}

	var acc uint64 = 1
	negative := false
	for _, dim := range s {
		mag := uint64(dim) //nolint:gosec // G115: dim is positive here.
		if dim < 0 {
			negative = !negative
			mag = uint64(-(dim + 1)) + 1 //nolint:gosec // G115: -(dim+1) cannot overflow.
		}
		hi, lo := bits.Mul64(acc, mag)
		if hi != 0 || lo > math.MaxInt {
			return 0, errors.Wrapf(ErrInvalidArgument, "shape %v holds more than %d items", s, math.MaxInt)
		}
		acc = lo
	}

	n := int(acc) //nolint:gosec // G115: acc <= MaxInt checked above.
	if negative {
		n = -n
	}
	return n, nil
}

// Validate checks that every dimension is non-negative and that the item
// count fits in an int.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return errors.Wrapf(ErrInvalidArgument, "dimension %d is %d (must be >= 0)", i, dim)
		}
	}
	_, err := s.checkedNumElements()
	return err
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape. The copy of a rank-0 marker is again a
// rank-0 marker, never nil.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String renders the rank-0 marker as "0" and any other shape as "[d0 d1 ...]".
func (s Shape) String() string {
	if len(s) == 0 {
		return "0"
	}
	return fmt.Sprintf("%v", []int(s))
}

// ParseShape converts an untyped value into a Shape. x must be a Shape or a
// slice/array whose elements are all numeric (including []any holding
// numbers); anything else fails with ErrInvalidArgument. Float dimensions must
// be integral.
func ParseShape(x any) (Shape, error) {
	if s, ok := x.(Shape); ok {
		return s.Clone(), nil
	}
	if x == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "shape is nil")
	}

	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, errors.Wrapf(ErrInvalidArgument, "shape must be a sequence, got %T", x)
	}

	shape := make(Shape, v.Len())
	for i := range shape {
		dim, err := parseDim(v.Index(i))
		if err != nil {
			return nil, errors.WithMessagef(err, "dimension %d", i)
		}
		shape[i] = dim
	}
	return shape, nil
}

// CountItems returns the number of scalar slots the shape x implies: the
// product of its dimensions, with the rank-0 marker counting 1. It fails with
// ErrInvalidArgument under the same rules as ParseShape, or when the product
// overflows int.
func CountItems(x any) (int, error) {
	shape, err := ParseShape(x)
	if err != nil {
		return 0, err
	}
	return shape.checkedNumElements()
}

func parseDim(v reflect.Value) (int, error) {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0, errors.Wrap(ErrInvalidArgument, "dimension is nil")
		}
		v = v.Elem()
	}

	if n, ok := v.Interface().(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidArgument, "dimension %q is not a number", n.String())
		}
		return integralDim(f)
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > math.MaxInt {
			return 0, errors.Wrapf(ErrInvalidArgument, "dimension %d overflows int", u)
		}
		return int(u), nil
	case reflect.Float32, reflect.Float64:
		return integralDim(v.Float())
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "dimension %v of type %s is not numeric", v.Interface(), v.Type())
}

func integralDim(f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, errors.Wrapf(ErrInvalidArgument, "non-integral dimension %v", f)
	}
	// [-2^63, 2^63) is exactly representable as float64.
	if f < math.MinInt || f >= -math.MinInt {
		return 0, errors.Wrapf(ErrInvalidArgument, "dimension %v overflows int", f)
	}
	return int(f), nil
}
