package tensor

// From builds a Tensor from a Value.
//
// A *Tensor is returned as is (the same pointer; tensors are immutable, so
// sharing is safe). A bare scalar becomes a one-item tensor of shape [1].
// Anything else is shaped with InferShape and flattened in row-major order.
//
// Example:
//
//	t, err := tensor.From(tensor.Seq(tensor.Scalar(1), tensor.Scalar(2)))
func From[T Number](v Value[T]) (*Tensor[T], error) {
	switch v := v.(type) {
	case *Tensor[T]:
		if v != nil {
			return v, nil
		}
	case scalarValue[T]:
		// Widened to rank-1 here; ShapeOf still reports rank-0.
		return newTensor(Shape{1}, []T{v.v}), nil
	}

	shape, err := InferShape(v)
	if err != nil {
		return nil, err
	}
	return newTensor(shape, flatten(v, make([]T, 0, shape.NumElements()))), nil
}

// FromAny converts plain Go data with ValueOf and builds a Tensor with From.
//
// Example:
//
//	t, err := tensor.FromAny[float64]([][]int{{1, 2}, {3, 4}}) // shape [2 2]
func FromAny[T Number](x any) (*Tensor[T], error) {
	v, err := ValueOf[T](x)
	if err != nil {
		return nil, err
	}
	return From(v)
}

// FromSlice creates a tensor from flat row-major items and a shape.
// The slice is copied into the tensor.
func FromSlice[T Number](items []T, shape Shape) (*Tensor[T], error) {
	return New(shape, items)
}

// Fill creates a tensor of the given shape with every item set to value.
//
// Example:
//
//	t, _ := tensor.Fill(tensor.Shape{2, 2}, 10) // [10 10 10 10]
func Fill[T Number](shape Shape, value T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	items := make([]T, shape.NumElements())
	for i := range items {
		items[i] = value
	}
	return newTensor(shape.Clone(), items), nil
}

// Full is an alias of Fill.
func Full[T Number](shape Shape, value T) (*Tensor[T], error) {
	return Fill(shape, value)
}

// FillAny parses an untyped shape with the CountItems rules, then fills it.
// Malformed shapes fail with ErrInvalidArgument.
func FillAny[T Number](shape any, value T) (*Tensor[T], error) {
	s, err := ParseShape(shape)
	if err != nil {
		return nil, err
	}
	return Fill(s, value)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T Number](shape Shape) (*Tensor[T], error) {
	return Fill[T](shape, 0)
}

// Ones creates a tensor filled with ones.
func Ones[T Number](shape Shape) (*Tensor[T], error) {
	return Fill[T](shape, 1)
}
