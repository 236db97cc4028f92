// Copyright 2026 TealToad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides immutable n-dimensional arrays for TealToad.
//
// # Overview
//
// A Tensor is a flat backing store of items paired with a Shape. This
// package provides:
//   - Shape inference from scalars, nested slices and other tensors
//   - Rejection of jagged (non-rectangular) input
//   - Element counts implied by a shape
//   - Construction helpers: From, Fill, Zeros, Ones
//
// # Basic Usage
//
//	import "github.com/tealtoad/tealtoad/tensor"
//
//	func main() {
//	    // Shape only, no allocation
//	    s, err := tensor.ShapeOf([][]int{{1, 2, 3}, {4, 5, 6}}) // [2 3]
//
//	    // Build tensors
//	    x, err := tensor.FromAny[float64]([][]int{{1, 2, 3}, {4, 5, 6}})
//	    y, err := tensor.Zeros[float64](tensor.Shape{2, 3})
//	    z, err := tensor.From(tensor.Seq[float64](x, y)) // Shape: [2, 2, 3]
//	}
//
// # Scalars
//
// ShapeOf reports a bare number as the rank-0 marker (Shape{}, printed as
// "0"), while From widens it to a one-item tensor of shape [1].
//
// # Errors
//
// All failures are returned, never panicked, and match one of:
//   - ErrInvalidArgument: a shape is not a sequence or holds a non-numeric dimension
//   - ErrInvalidInput: a value is neither a number, a sequence nor a Tensor
//   - ErrDimensionMismatch: nested sequences are jagged, or items do not fit a shape
//
// # Concurrency
//
// Tensors are immutable and every accessor returns a copy, so tensors can be
// shared between goroutines without coordination.
package tensor
