// Package arrays holds the typed numeric arrays that geometry generators fill and the buffer builder uploads.
package arrays

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/pika-go/common"
	"github.com/Carmen-Shannon/pika-go/engine/graphics"
)

// ErrCapacityExceeded is the panic value (wrapped) raised when a push or reset would move the cursor past capacity.
var ErrCapacityExceeded = errors.New("typed array capacity exceeded")

// Numeric is the set of element types a TypedArray can hold.
type Numeric interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | float32
}

// Array is a flat numeric array grouped into elements of NumComponents scalars.
type Array interface {
	// Len returns the number of scalars.
	Len() int

	// NumComponents returns how many scalars make up one element.
	NumComponents() int

	// NumElements returns Len divided by NumComponents.
	NumElements() int

	// DataType returns the GPU element type matching the Go element type.
	DataType() graphics.DataType

	// Bytes returns a view of the scalars suitable for a buffer upload.
	// The view shares memory with the array.
	Bytes() []byte
}

// TypedArray is a fixed-capacity numeric array with an advancing write cursor.
// Capacity is numComponents*numElements and is fixed at construction.
type TypedArray[T Numeric] struct {
	data          []T
	cursor        int
	numComponents int
}

var _ Array = &TypedArray[float32]{}

// New allocates a zeroed TypedArray able to hold numElements elements of numComponents scalars each.
// A numComponents below 1 is treated as 1.
//
// Parameters:
//   - numComponents: scalars per element
//   - numElements: element capacity
//
// Returns:
//   - *TypedArray[T]: the array with its cursor at 0
func New[T Numeric](numComponents, numElements int) *TypedArray[T] {
	numComponents = max(numComponents, 1)
	return &TypedArray[T]{
		data:          make([]T, numComponents*max(numElements, 0)),
		numComponents: numComponents,
	}
}

// FromSlice wraps existing values without copying. The cursor is placed at the end, so the array is full.
//
// Parameters:
//   - numComponents: scalars per element
//   - values: the backing scalars
//
// Returns:
//   - *TypedArray[T]: the wrapping array
func FromSlice[T Numeric](numComponents int, values []T) *TypedArray[T] {
	return &TypedArray[T]{
		data:          values,
		cursor:        len(values),
		numComponents: max(numComponents, 1),
	}
}

// Push writes values at the cursor and advances it.
// It panics with an error wrapping ErrCapacityExceeded, before writing anything, when the values do not fit.
func (a *TypedArray[T]) Push(values ...T) {
	a.ensure(len(values))
	a.cursor += copy(a.data[a.cursor:], values)
}

// PushSlices flattens each slice into the array in order, with the same capacity check as Push.
func (a *TypedArray[T]) PushSlices(values ...[]T) {
	n := 0
	for _, v := range values {
		n += len(v)
	}
	a.ensure(n)
	for _, v := range values {
		a.cursor += copy(a.data[a.cursor:], v)
	}
}

func (a *TypedArray[T]) ensure(n int) {
	if a.cursor+n > len(a.data) {
		panic(fmt.Errorf("%w: writing %d values at %d into capacity %d", ErrCapacityExceeded, n, a.cursor, len(a.data)))
	}
}

// Reset moves the cursor to index so the array can be refilled from there.
// It panics with an error wrapping ErrCapacityExceeded when index is outside [0, Len].
func (a *TypedArray[T]) Reset(index int) {
	if index < 0 || index > len(a.data) {
		panic(fmt.Errorf("%w: reset to %d with capacity %d", ErrCapacityExceeded, index, len(a.data)))
	}
	a.cursor = index
}

// Cursor returns the index the next push writes to.
func (a *TypedArray[T]) Cursor() int {
	return a.cursor
}

// Remaining returns how many scalars can still be pushed.
func (a *TypedArray[T]) Remaining() int {
	return len(a.data) - a.cursor
}

// Data returns the backing scalars. Writes through it are visible to the array.
func (a *TypedArray[T]) Data() []T {
	return a.data
}

// Element returns a view of the scalars of element i.
func (a *TypedArray[T]) Element(i int) []T {
	start := i * a.numComponents
	return a.data[start : start+a.numComponents]
}

func (a *TypedArray[T]) Len() int {
	return len(a.data)
}

func (a *TypedArray[T]) NumComponents() int {
	return a.numComponents
}

func (a *TypedArray[T]) NumElements() int {
	return len(a.data) / a.numComponents
}

func (a *TypedArray[T]) DataType() graphics.DataType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return graphics.DataTypeByte
	case uint8:
		return graphics.DataTypeUnsignedByte
	case int16:
		return graphics.DataTypeShort
	case uint16:
		return graphics.DataTypeUnsignedShort
	case int32:
		return graphics.DataTypeInt
	case uint32:
		return graphics.DataTypeUnsignedInt
	}
	return graphics.DataTypeFloat
}

func (a *TypedArray[T]) Bytes() []byte {
	return common.SliceToBytes(a.data)
}
