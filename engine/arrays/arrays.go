package arrays

import (
	"errors"
	"fmt"
	"strings"

	"cogentcore.org/core/base/ordmap"
)

// Well-known channel names produced by the geometry generators.
const (
	Position = "position"
	Normal   = "normal"
	Texcoord = "texcoord"
	Indices  = "indices"
)

// ErrUnsupportedData is returned when Put is given values it cannot turn into an Array.
var ErrUnsupportedData = errors.New("unsupported array data")

// Arrays is an ordered set of named arrays. Insertion order matters: the first non-index entry
// determines the element count of a non-indexed buffer set.
type Arrays = ordmap.Map[string, Array]

// NewArrays returns an empty ordered set.
func NewArrays() *Arrays {
	return ordmap.New[string, Array]()
}

// GuessNumComponents infers the component count from a channel name:
// names containing "coord" have 2, names containing "color" have 4, everything else has 3.
//
// Parameters:
//   - name: the channel name
//
// Returns:
//   - int: the inferred component count
func GuessNumComponents(name string) int {
	switch {
	case strings.Contains(name, "coord"):
		return 2
	case strings.Contains(name, "color"):
		return 4
	}
	return 3
}

// Coerce turns values into an Array.
// An Array is returned as is. Typed slices are wrapped without copying. []float64 and []int are
// converted to float32. Untyped slices ([]float32, []float64, []int) under the name "indices"
// always become uint16.
//
// Parameters:
//   - name: the channel name, used to infer component count and index type
//   - values: an Array or a numeric slice
//   - numComponents: scalars per element, 0 to infer from the name
//
// Returns:
//   - Array: the coerced array
//   - error: ErrUnsupportedData for any other value
func Coerce(name string, values any, numComponents int) (Array, error) {
	if numComponents <= 0 {
		numComponents = GuessNumComponents(name)
	}

	switch v := values.(type) {
	case Array:
		return v, nil
	case []float32:
		if name == Indices {
			return FromSlice(numComponents, convert[float32, uint16](v)), nil
		}
		return FromSlice(numComponents, v), nil
	case []float64:
		if name == Indices {
			return FromSlice(numComponents, convert[float64, uint16](v)), nil
		}
		return FromSlice(numComponents, convert[float64, float32](v)), nil
	case []int:
		if name == Indices {
			return FromSlice(numComponents, convert[int, uint16](v)), nil
		}
		return FromSlice(numComponents, convert[int, float32](v)), nil
	case []int8:
		return FromSlice(numComponents, v), nil
	case []uint8:
		return FromSlice(numComponents, v), nil
	case []int16:
		return FromSlice(numComponents, v), nil
	case []uint16:
		return FromSlice(numComponents, v), nil
	case []int32:
		return FromSlice(numComponents, v), nil
	case []uint32:
		return FromSlice(numComponents, v), nil
	}
	return nil, fmt.Errorf("%w: %q has type %T", ErrUnsupportedData, name, values)
}

// Put coerces values and appends them to set under name.
//
// Parameters:
//   - set: the destination set
//   - name: the channel name
//   - values: an Array or a numeric slice, see Coerce
//   - numComponents: scalars per element, 0 to infer from the name
//
// Returns:
//   - error: error if the values could not be coerced
func Put(set *Arrays, name string, values any, numComponents int) error {
	a, err := Coerce(name, values, numComponents)
	if err != nil {
		return err
	}
	set.Add(name, a)
	return nil
}

func convert[From int | float32 | float64, To Numeric](values []From) []To {
	out := make([]To, len(values))
	for i, v := range values {
		out[i] = To(v)
	}
	return out
}
