// Copyright 2026 TealToad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tealtoad/tealtoad/tensor"
)

// TestPublicAPI walks the documented entry points through the facade.
func TestPublicAPI(t *testing.T) {
	nested := [][][]int{{{1, 2, 3}, {1, 2, 3}}, {{3, 4, 3}, {3, 4, 3}}}

	s, err := tensor.ShapeOf(nested)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2, 3}, s)

	s, err = tensor.ShapeOf(10)
	require.NoError(t, err)
	assert.Equal(t, tensor.ScalarShape(), s)

	n, err := tensor.CountItems([]int{2, 3, 5})
	require.NoError(t, err)
	assert.Equal(t, 30, n)

	x, err := tensor.FromAny[int](nested)
	require.NoError(t, err)
	assert.Equal(t, 12, x.NumItems())

	same, err := tensor.From[int](x)
	require.NoError(t, err)
	assert.Same(t, x, same)
}

func TestPublicConstruction(t *testing.T) {
	want, err := tensor.New(tensor.Shape{2, 2}, []int{10, 10, 10, 10})
	require.NoError(t, err)

	got, err := tensor.Fill(tensor.Shape{2, 2}, 10)
	require.NoError(t, err)
	assert.True(t, got.Equal(want))

	zeros, err := tensor.Zeros[int](tensor.Shape{2, 2})
	require.NoError(t, err)
	ones, err := tensor.Ones[int](tensor.Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, zeros.Items())
	assert.Equal(t, []int{1, 1, 1, 1}, ones.Items())

	scalar, err := tensor.From(tensor.Scalar(12))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1}, scalar.Shape())
}

func TestPublicErrors(t *testing.T) {
	_, err := tensor.ShapeOf("Hello!")
	assert.ErrorIs(t, err, tensor.ErrInvalidInput)

	_, err = tensor.CountItems([]any{1, 2, "Hello!"})
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)

	_, err = tensor.FromAny[int]([][][]int{{{1, 2}, {1, 2}}, {{3, 4}, {3, 4, 5}}})
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)

	var mismatch *tensor.MismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func ExampleShapeOf() {
	s, _ := tensor.ShapeOf([][]float64{{1, 2, 3}, {4, 5, 6}})
	fmt.Println(s)
	s, _ = tensor.ShapeOf(3.5)
	fmt.Println(s)
	// Output:
	// [2 3]
	// 0
}

func ExampleFrom() {
	row, _ := tensor.FromAny[int]([]int{1, 2})
	x, _ := tensor.From(tensor.Seq[int](row, row))
	fmt.Println(x)
	// Output: Tensor(shape=[2 2], items=[1 2 1 2])
}
