package program

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/pika-go/engine/graphics"
)

// floats flattens a uniform value into float32 scalars.
func floats(value any) ([]float32, bool) {
	switch v := value.(type) {
	case float32:
		return []float32{v}, true
	case float64:
		return []float32{float32(v)}, true
	case int:
		return []float32{float32(v)}, true
	case []float32:
		return v, true
	case []float64:
		out := make([]float32, len(v))
		for i, f := range v {
			out[i] = float32(f)
		}
		return out, true
	case mgl32.Vec2:
		return v[:], true
	case mgl32.Vec3:
		return v[:], true
	case mgl32.Vec4:
		return v[:], true
	case mgl32.Mat2:
		return v[:], true
	case mgl32.Mat3:
		return v[:], true
	case mgl32.Mat4:
		return v[:], true
	case [2]float32:
		return v[:], true
	case [3]float32:
		return v[:], true
	case [4]float32:
		return v[:], true
	case [9]float32:
		return v[:], true
	case [16]float32:
		return v[:], true
	case []mgl32.Mat4:
		out := make([]float32, 0, len(v)*16)
		for _, m := range v {
			out = append(out, m[:]...)
		}
		return out, true
	}
	return nil, false
}

// ints flattens a uniform value into int32 scalars. Booleans become 0 or 1.
func ints(value any) ([]int32, bool) {
	switch v := value.(type) {
	case int:
		return []int32{int32(v)}, true
	case int32:
		return []int32{v}, true
	case bool:
		return []int32{boolToInt(v)}, true
	case []int32:
		return v, true
	case []int:
		out := make([]int32, len(v))
		for i, n := range v {
			out[i] = int32(n)
		}
		return out, true
	case []bool:
		out := make([]int32, len(v))
		for i, b := range v {
			out[i] = boolToInt(b)
		}
		return out, true
	case [2]int32:
		return v[:], true
	case [3]int32:
		return v[:], true
	case [4]int32:
		return v[:], true
	}
	return nil, false
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// textures accepts a single texture or a list of them.
func textures(value any) ([]graphics.Texture, bool) {
	switch v := value.(type) {
	case graphics.Texture:
		return []graphics.Texture{v}, true
	case []graphics.Texture:
		return v, true
	}
	return nil, false
}
