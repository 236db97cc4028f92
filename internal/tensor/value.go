package tensor

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/pkg/errors"
)

// Value is a source for shape inference: a scalar, a sequence of values, or
// a *Tensor. The set is closed; only Scalar, Seq and *Tensor implement it.
type Value[T Number] interface {
	sealed(T)
}

type scalarValue[T Number] struct {
	v T
}

func (scalarValue[T]) sealed(T) {}

type seqValue[T Number] []Value[T]

func (seqValue[T]) sealed(T) {}

// Scalar wraps a single number as a Value.
func Scalar[T Number](v T) Value[T] {
	return scalarValue[T]{v: v}
}

// Seq groups values into a sequence. An empty Seq has shape [0].
func Seq[T Number](elems ...Value[T]) Value[T] {
	return seqValue[T](elems)
}

func (scalarValue[T]) valueShape() (Shape, error) {
	return ScalarShape(), nil
}

func (v seqValue[T]) valueShape() (Shape, error) {
	return InferShape[T](v)
}

// ValueOf converts plain Go data into a Value.
//
// Numbers of any Go numeric kind (and json.Number) become scalars converted
// to T. The conversion must keep the value: an integer T rejects fractions
// and out-of-range numbers with ErrInvalidInput, while a float T accepts
// rounding but not overflow to infinity. Slices and arrays (including []any)
// become sequences, recursively; a *Tensor[T] or an existing Value[T] is used
// as is. Anything else (strings, bools, maps,
// structs, pointers, nil) fails with ErrInvalidInput.
//
// Example:
//
//	v, err := tensor.ValueOf[float64]([][]int{{1, 2}, {3, 4}})
func ValueOf[T Number](x any) (Value[T], error) {
	if v, ok := x.(Value[T]); ok {
		return v, nil
	}
	if x == nil {
		return nil, errors.Wrap(ErrInvalidInput, "nil value")
	}
	return valueOf[T](reflect.ValueOf(x))
}

func valueOf[T Number](v reflect.Value) (Value[T], error) {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, errors.Wrap(ErrInvalidInput, "nil value")
		}
		v = v.Elem()
	}
	if v.CanInterface() {
		if val, ok := v.Interface().(Value[T]); ok {
			return val, nil
		}
	}

	switch {
	case v.Type() == jsonNumberType:
		n, err := numberValue[T](v.Interface().(json.Number))
		if err != nil {
			return nil, err
		}
		return scalarFrom[T](n)
	case isNumericKind(v.Kind()):
		return scalarFrom[T](v)
	case v.Kind() == reflect.Slice || v.Kind() == reflect.Array:
		elems := make(seqValue[T], v.Len())
		for i := range elems {
			elem, err := valueOf[T](v.Index(i))
			if err != nil {
				return nil, errors.WithMessagef(err, "index %d", i)
			}
			elems[i] = elem
		}
		return elems, nil
	default:
		return nil, errors.Wrapf(ErrInvalidInput, "cannot use %s as a tensor source", v.Type())
	}
}

var jsonNumberType = reflect.TypeFor[json.Number]()

// numberValue turns a json.Number into an int64 when T is an integer type and
// the text is an integer, and into a float64 otherwise.
func numberValue[T Number](n json.Number) (reflect.Value, error) {
	if !isFloatKind(reflect.TypeFor[T]().Kind()) {
		if i, err := n.Int64(); err == nil {
			return reflect.ValueOf(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return reflect.Value{}, errors.Wrapf(ErrInvalidInput, "%q is not a number", n.String())
	}
	return reflect.ValueOf(f), nil
}

// scalarFrom converts a numeric reflect.Value to T, refusing lossy conversions.
func scalarFrom[T Number](v reflect.Value) (Value[T], error) {
	target := reflect.TypeFor[T]()

	if isFloatKind(target.Kind()) {
		out := v.Convert(target)
		if math.IsInf(out.Float(), 0) && !(isFloatKind(v.Kind()) && math.IsInf(v.Float(), 0)) {
			return nil, errors.Wrapf(ErrInvalidInput, "%v overflows %s", v.Interface(), target)
		}
		return Scalar(out.Interface().(T)), nil
	}

	if !fitsInteger(v, target) {
		return nil, errors.Wrapf(ErrInvalidInput, "%v cannot be represented as %s", v.Interface(), target)
	}
	return Scalar(v.Convert(target).Interface().(T)), nil
}

// fitsInteger reports whether the number v converts to the integer type
// target without loss.
func fitsInteger(v reflect.Value, target reflect.Type) bool {
	switch {
	case isFloatKind(v.Kind()):
		f := v.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return false
		}
		// Range-check in float64 before converting; out-of-range float to
		// int conversions are implementation-defined.
		if target.Kind() >= reflect.Uint && target.Kind() <= reflect.Uint64 {
			return f >= 0 && f < math.Ldexp(1, target.Bits())
		}
		return f >= -math.Ldexp(1, target.Bits()-1) && f < math.Ldexp(1, target.Bits()-1)
	default:
		return v.Convert(target).Convert(v.Type()).Equal(v) && sameSign(v, v.Convert(target))
	}
}

// sameSign catches conversions such as int(-1) -> uint64 -> int(-1) whose
// round trip hides the wrap.
func sameSign(a, b reflect.Value) bool {
	return isNegative(a) == isNegative(b)
}

func isNegative(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() < 0
	default:
		return false
	}
}
