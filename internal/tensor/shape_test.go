package tensor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{ScalarShape(), 1},
		{Shape{0}, 0},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 5}, 30},
		{Shape{4, 0, 7}, 0},
		{Shape{-2, 3}, -6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.NumElements(), "shape %v", tt.shape)
	}
}

func TestShapeScalarMarker(t *testing.T) {
	s := ScalarShape()
	assert.NotNil(t, s)
	assert.True(t, s.IsScalar())
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, "0", s.String())

	empty := Shape{0}
	assert.False(t, empty.IsScalar())
	assert.False(t, s.Equal(empty), "rank-0 marker must differ from the empty sequence shape")
	assert.Equal(t, "[0]", empty.String())
	assert.Equal(t, "[2 2 3]", Shape{2, 2, 3}.String())
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	assert.Equal(t, Shape{2, 3}, s)
	assert.NotNil(t, ScalarShape().Clone())
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 0, 3}.Validate())
	require.NoError(t, ScalarShape().Validate())

	err := Shape{2, -1}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCountItems(t *testing.T) {
	tests := []struct {
		name  string
		shape any
		want  int
	}{
		{"ints", []int{2, 3, 5}, 30},
		{"shape", Shape{2, 3, 5}, 30},
		{"rank-0", []int{}, 1},
		{"mixed numerics", []any{2, int64(3), uint8(5)}, 30},
		{"integral floats", []float64{2, 3}, 6},
		{"array", [3]int32{1, 2, 3}, 6},
		{"negative passes through", []int{-2, 3}, -6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountItems(tt.shape)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountItemsInvalidArgument(t *testing.T) {
	tests := []struct {
		name  string
		shape any
	}{
		{"string", "Hello!"},
		{"number", 12},
		{"nil", nil},
		{"map", map[string]int{"a": 1}},
		{"non numeric item", []any{1, 2, "Hello!"}},
		{"nil item", []any{1, nil}},
		{"bool item", []any{true}},
		{"non-integral float", []float64{2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CountItems(tt.shape)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestParseShape(t *testing.T) {
	s, err := ParseShape([]any{float64(2), 3})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, s)

	orig := Shape{4}
	s, err = ParseShape(orig)
	require.NoError(t, err)
	s[0] = 1
	assert.Equal(t, Shape{4}, orig, "ParseShape must not alias its input")
}

func TestCountItemsOverflow(t *testing.T) {
	tests := []struct {
		name  string
		shape any
	}{
		{"product overflows", []int{1 << 32, 1 << 32}},
		{"negative product overflows", []int{-(1 << 32), 1 << 32}},
		{"uint64 above MaxInt", []uint64{1 << 63}},
		{"huge float", []float64{1e300}},
		{"float at 2^63", []float64{9223372036854775808}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CountItems(tt.shape)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestCountItemsNearLimit(t *testing.T) {
	n, err := CountItems([]int{1 << 31, 1 << 31})
	require.NoError(t, err)
	assert.Equal(t, 1<<62, n)

	n, err = CountItems([]int{1 << 62, 0, 1 << 62})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = CountItems([]int{-3, 1 << 40})
	require.NoError(t, err)
	assert.Equal(t, -3*(1<<40), n)
}

func TestCountItemsJSONNumber(t *testing.T) {
	n, err := CountItems([]any{json.Number("9007199254740993")})
	require.NoError(t, err)
	assert.Equal(t, 9007199254740993, n)

	n, err = CountItems([]any{json.Number("2.0"), json.Number("3")})
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	_, err = CountItems([]any{json.Number("2.5")})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestShapeValidateOverflow(t *testing.T) {
	err := Shape{1 << 32, 1 << 32}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	require.NoError(t, Shape{1 << 31, 1 << 31}.Validate())
}
