package normalize

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/matzehuels/deckjson/pkg/errors"
)

// Number is the element constraint for [Buffer].
type Number interface {
	constraints.Integer | constraints.Float
}

// Buffer is a row-major N-dimensional numeric array. Indexing the first
// dimension of a multi-dimensional buffer yields a view over the remaining
// dimensions, so normalizing a Buffer produces nested []any.
type Buffer[T Number] struct {
	data  []T
	shape []int
}

// NewBuffer wraps data with the given shape. With no shape the buffer is
// one-dimensional. The product of shape must equal len(data).
func NewBuffer[T Number](data []T, shape ...int) (*Buffer[T], error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	size := 1
	for _, d := range shape {
		if d < 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "negative dimension in shape %v", shape)
		}
		size *= d
	}
	if size != len(data) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "shape %v needs %d elements, got %d", shape, size, len(data))
	}
	return &Buffer[T]{data: data, shape: append([]int(nil), shape...)}, nil
}

// Len returns the size of the first dimension. A zero Buffer is empty.
func (b *Buffer[T]) Len() int {
	if len(b.shape) == 0 {
		return 0
	}
	return b.shape[0]
}

// Shape returns a copy of the buffer's dimensions.
func (b *Buffer[T]) Shape() []int { return append([]int(nil), b.shape...) }

// At returns element i of a one-dimensional buffer, or the sub-buffer at
// row i otherwise.
func (b *Buffer[T]) At(i int) any {
	switch len(b.shape) {
	case 0:
		return nil
	case 1:
		return b.data[i]
	}

	stride := 1
	for _, d := range b.shape[1:] {
		stride *= d
	}
	return &Buffer[T]{
		data:  b.data[i*stride : (i+1)*stride],
		shape: b.shape[1:],
	}
}

func (b *Buffer[T]) String() string {
	return fmt.Sprintf("Buffer%v%v", b.shape, b.data)
}

var _ ArrayLike = (*Buffer[float64])(nil)
