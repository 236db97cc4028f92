// Copyright 2026 TealToad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/tealtoad/tealtoad/internal/tensor"
)

// Type aliases for public API

// Number is a constraint for tensor item types.
// Supported types: every Go integer and floating-point kind.
type Number = tensor.Number

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
// The empty Shape{} is the rank-0 marker of a scalar.
type Shape = tensor.Shape

// Tensor is an immutable n-dimensional array of T stored in row-major order.
//
// Example:
//
//	x, _ := tensor.Zeros[float32](tensor.Shape{2, 3})
//	y, _ := tensor.From(tensor.Seq[float32](x, x)) // Shape: [2, 2, 3]
type Tensor[T Number] = tensor.Tensor[T]

// Value is a source for shape inference: Scalar, Seq or *Tensor.
type Value[T Number] = tensor.Value[T]

// MismatchError describes where a nested sequence stops being rectangular.
type MismatchError = tensor.MismatchError

// Errors returned by this package. Match them with errors.Is.
var (
	ErrInvalidArgument   = tensor.ErrInvalidArgument
	ErrInvalidInput      = tensor.ErrInvalidInput
	ErrDimensionMismatch = tensor.ErrDimensionMismatch
)

// Source values

// Scalar wraps a single number as a Value.
func Scalar[T Number](v T) Value[T] {
	return tensor.Scalar(v)
}

// Seq groups values into a sequence.
func Seq[T Number](elems ...Value[T]) Value[T] {
	return tensor.Seq(elems...)
}

// ValueOf converts plain Go data (numbers, nested slices and arrays, tensors)
// into a Value.
func ValueOf[T Number](x any) (Value[T], error) {
	return tensor.ValueOf[T](x)
}

// Shape inference

// ScalarShape returns the rank-0 marker.
func ScalarShape() Shape {
	return tensor.ScalarShape()
}

// InferShape returns the rectangular shape of v.
//
// Example:
//
//	v, _ := tensor.ValueOf[float64]([][]int{{1, 2, 3}, {4, 5, 6}})
//	s, _ := tensor.InferShape(v) // [2 3]
func InferShape[T Number](v Value[T]) (Shape, error) {
	return tensor.InferShape(v)
}

// ShapeOf returns the shape of a Tensor, a number or nested Go slices without
// building a tensor.
//
// Example:
//
//	s, _ := tensor.ShapeOf([][][]int{{{1, 2, 3}, {1, 2, 3}}, {{3, 4, 3}, {3, 4, 3}}}) // [2 2 3]
//	s, _ = tensor.ShapeOf(10)                                                        // 0 (rank-0)
func ShapeOf(x any) (Shape, error) {
	return tensor.ShapeOf(x)
}

// CountItems returns the number of items a shape implies.
//
// Example:
//
//	n, _ := tensor.CountItems([]int{2, 3, 5}) // 30
func CountItems(shape any) (int, error) {
	return tensor.CountItems(shape)
}

// ParseShape converts an untyped sequence of numbers into a Shape.
func ParseShape(shape any) (Shape, error) {
	return tensor.ParseShape(shape)
}

// Flatten returns the scalars of v in row-major order.
func Flatten[T Number](v Value[T]) ([]T, error) {
	return tensor.Flatten(v)
}

// Creation functions

// New creates a tensor from a shape and its flat row-major items.
func New[T Number](shape Shape, items []T) (*Tensor[T], error) {
	return tensor.New(shape, items)
}

// From builds a tensor from a Value. A *Tensor is returned unchanged.
//
// Example:
//
//	x, _ := tensor.From(tensor.Scalar(12)) // Shape: [1], items: [12]
func From[T Number](v Value[T]) (*Tensor[T], error) {
	return tensor.From(v)
}

// FromAny builds a tensor from plain Go data.
//
// Example:
//
//	x, err := tensor.FromAny[float64]([][]float64{{1, 2}, {3, 4}})
func FromAny[T Number](x any) (*Tensor[T], error) {
	return tensor.FromAny[T](x)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T Number](items []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(items, shape)
}

// Fill creates a tensor with every item set to value.
//
// Example:
//
//	x, _ := tensor.Fill(tensor.Shape{2, 2}, 10)
func Fill[T Number](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Fill(shape, value)
}

// Full creates a tensor filled with a specific value.
func Full[T Number](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// FillAny fills a shape given as untyped data, validated like CountItems.
func FillAny[T Number](shape any, value T) (*Tensor[T], error) {
	return tensor.FillAny(shape, value)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x, _ := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T Number](shape Shape) (*Tensor[T], error) {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	x, _ := tensor.Ones[float32](tensor.Shape{2, 3})
func Ones[T Number](shape Shape) (*Tensor[T], error) {
	return tensor.Ones[T](shape)
}
