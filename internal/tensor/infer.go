package tensor

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
)

// InferShape returns the rectangular shape of v.
//
// A Tensor reports its stored shape, a scalar the rank-0 marker, and a
// sequence of n elements [n] followed by the shape shared by all of its
// elements. Elements are checked depth-first against the first sibling, so a
// jagged sequence fails at the shallowest level where it diverges with a
// *MismatchError (ErrDimensionMismatch). An empty sequence has shape [0].
//
// Example:
//
//	s, _ := tensor.InferShape(tensor.Seq(
//	    tensor.Seq(tensor.Scalar(1.0), tensor.Scalar(2.0)),
//	    tensor.Seq(tensor.Scalar(3.0), tensor.Scalar(4.0)),
//	)) // [2 2]
func InferShape[T Number](v Value[T]) (Shape, error) {
	return inferShape(v, nil)
}

func inferShape[T Number](v Value[T], path []int) (Shape, error) {
	switch v := v.(type) {
	case *Tensor[T]:
		if v == nil {
			return nil, errors.Wrapf(ErrInvalidInput, "nil tensor at %v", path)
		}
		return v.shape.Clone(), nil
	case scalarValue[T]:
		return ScalarShape(), nil
	case seqValue[T]:
		return seqShape(len(v), path, func(i int, path []int) (Shape, error) {
			return inferShape(v[i], path)
		})
	default:
		return nil, errors.Wrapf(ErrInvalidInput, "nil value at %v", path)
	}
}

// ShapeOf returns the shape of plain Go data or of a Tensor: a *Tensor of any
// item type reports its stored shape, a number the rank-0 marker, and a
// nested slice its inferred shape, with tensors and Values allowed at any
// depth. Anything else fails with ErrInvalidInput.
//
// Use it to check shape compatibility before building a tensor.
func ShapeOf(x any) (Shape, error) {
	if x == nil {
		return nil, errors.Wrap(ErrInvalidInput, "nil value")
	}
	return shapeOf(reflect.ValueOf(x), nil)
}

// shapeOf mirrors inferShape over plain Go data without converting any item,
// so tensors and Values of every item type are accepted at any depth.
func shapeOf(v reflect.Value, path []int) (Shape, error) {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, errors.Wrapf(ErrInvalidInput, "nil value at %v", path)
		}
		v = v.Elem()
	}

	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case interface{ Shape() Shape }:
			if s := x.Shape(); s != nil {
				return s, nil
			}
			return nil, errors.Wrapf(ErrInvalidInput, "nil tensor at %v", path)
		case interface{ valueShape() (Shape, error) }:
			return x.valueShape()
		case json.Number:
			return ScalarShape(), nil
		}
	}

	switch {
	case isNumericKind(v.Kind()):
		return ScalarShape(), nil
	case v.Kind() == reflect.Slice || v.Kind() == reflect.Array:
		return seqShape(v.Len(), path, func(i int, path []int) (Shape, error) {
			return shapeOf(v.Index(i), path)
		})
	default:
		return nil, errors.Wrapf(ErrInvalidInput, "cannot use %s as a tensor source", v.Type())
	}
}

// seqShape infers the shape of a sequence of n elements: every element must
// share the first one's shape, and the result is [n] followed by that shape.
func seqShape(n int, path []int, elem func(i int, path []int) (Shape, error)) (Shape, error) {
	if n == 0 {
		return Shape{0}, nil
	}
	var first Shape
	for i := 0; i < n; i++ {
		at := append(path[:len(path):len(path)], i)
		s, err := elem(i, at)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			first = s
			continue
		}
		if !s.Equal(first) {
			return nil, &MismatchError{Path: at, Want: first, Got: s}
		}
	}
	return append(Shape{n}, first...), nil
}

// Flatten validates v and returns its scalars depth-first, in row-major
// order consistent with InferShape. A scalar flattens to a single item and a
// Tensor to a copy of its items.
func Flatten[T Number](v Value[T]) ([]T, error) {
	shape, err := InferShape(v)
	if err != nil {
		return nil, err
	}
	return flatten(v, make([]T, 0, shape.NumElements())), nil
}

// flatten appends the scalars of an already validated value to dst.
func flatten[T Number](v Value[T], dst []T) []T {
	switch v := v.(type) {
	case *Tensor[T]:
		return append(dst, v.items...)
	case scalarValue[T]:
		return append(dst, v.v)
	case seqValue[T]:
		for _, e := range v {
			dst = flatten(e, dst)
		}
	}
	return dst
}
