package primitive

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/pika-go/common"
	"github.com/Carmen-Shannon/pika-go/engine/arrays"
)

// ReorientVertices transforms the 3 component float arrays of a set in place by m, choosing the transform from the
// array name: names containing "pos" are points, "tan" or "binorm" are directions, and other names containing "norm"
// are normals and use the inverse transpose of m. Other arrays are left alone.
//
// Parameters:
//   - set: the arrays to transform
//   - m: the transform
//
// Returns:
//   - *arrays.Arrays: set, for chaining
func ReorientVertices(set *arrays.Arrays, m mgl32.Mat4) *arrays.Arrays {
	normalMatrix := m.Inv().Transpose()

	for _, kv := range set.Order {
		values, ok := kv.Value.(*arrays.TypedArray[float32])
		if !ok || values.NumComponents() != 3 {
			continue
		}

		var transform func(mgl32.Vec3) mgl32.Vec3
		switch {
		case strings.Contains(kv.Key, "pos"):
			transform = func(v mgl32.Vec3) mgl32.Vec3 { return mgl32.TransformCoordinate(v, m) }
		case strings.Contains(kv.Key, "tan"), strings.Contains(kv.Key, "binorm"):
			transform = func(v mgl32.Vec3) mgl32.Vec3 { return mgl32.TransformNormal(v, m) }
		case strings.Contains(kv.Key, "norm"):
			transform = func(v mgl32.Vec3) mgl32.Vec3 { return mgl32.TransformNormal(v, normalMatrix) }
		default:
			continue
		}

		data := values.Data()
		for i := 0; i+2 < len(data); i += 3 {
			v := transform(mgl32.Vec3{data[i], data[i+1], data[i+2]})
			copy(data[i:i+3], v[:])
		}
		common.Logger().Debug("reoriented vertex array", "name", kv.Key, "elements", values.NumElements())
	}
	return set
}
