package program

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/pika-go/engine/graphics"
)

// ErrUniformValue is wrapped by errors for values whose Go type cannot feed a uniform's kind.
var ErrUniformValue = errors.New("invalid uniform value")

// UniformKind is the upload routine a uniform needs, derived from its GPU type and whether it is an array.
type UniformKind int

const (
	UniformKindFloat UniformKind = iota
	UniformKindFloatArray
	UniformKindVec2
	UniformKindVec3
	UniformKindVec4
	UniformKindInt
	UniformKindIntArray
	UniformKindIVec2
	UniformKindIVec3
	UniformKindIVec4
	UniformKindBool
	UniformKindBVec2
	UniformKindBVec3
	UniformKindBVec4
	UniformKindMat2
	UniformKindMat3
	UniformKindMat4
	UniformKindSampler
	UniformKindSamplerArray
)

var kindNames = [...]string{
	UniformKindFloat:        "float",
	UniformKindFloatArray:   "float[]",
	UniformKindVec2:         "vec2",
	UniformKindVec3:         "vec3",
	UniformKindVec4:         "vec4",
	UniformKindInt:          "int",
	UniformKindIntArray:     "int[]",
	UniformKindIVec2:        "ivec2",
	UniformKindIVec3:        "ivec3",
	UniformKindIVec4:        "ivec4",
	UniformKindBool:         "bool",
	UniformKindBVec2:        "bvec2",
	UniformKindBVec3:        "bvec3",
	UniformKindBVec4:        "bvec4",
	UniformKindMat2:         "mat2",
	UniformKindMat3:         "mat3",
	UniformKindMat4:         "mat4",
	UniformKindSampler:      "sampler",
	UniformKindSamplerArray: "sampler[]",
}

func (k UniformKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("UniformKind(%d)", int(k))
}

var typeKinds = map[graphics.UniformType]UniformKind{
	graphics.UniformTypeFloat:       UniformKindFloat,
	graphics.UniformTypeFloatVec2:   UniformKindVec2,
	graphics.UniformTypeFloatVec3:   UniformKindVec3,
	graphics.UniformTypeFloatVec4:   UniformKindVec4,
	graphics.UniformTypeInt:         UniformKindInt,
	graphics.UniformTypeIntVec2:     UniformKindIVec2,
	graphics.UniformTypeIntVec3:     UniformKindIVec3,
	graphics.UniformTypeIntVec4:     UniformKindIVec4,
	graphics.UniformTypeBool:        UniformKindBool,
	graphics.UniformTypeBoolVec2:    UniformKindBVec2,
	graphics.UniformTypeBoolVec3:    UniformKindBVec3,
	graphics.UniformTypeBoolVec4:    UniformKindBVec4,
	graphics.UniformTypeFloatMat2:   UniformKindMat2,
	graphics.UniformTypeFloatMat3:   UniformKindMat3,
	graphics.UniformTypeFloatMat4:   UniformKindMat4,
	graphics.UniformTypeSampler2D:   UniformKindSampler,
	graphics.UniformTypeSamplerCube: UniformKindSampler,
}

var samplerTargets = map[graphics.UniformType]graphics.TextureTarget{
	graphics.UniformTypeSampler2D:   graphics.TextureTarget2D,
	graphics.UniformTypeSamplerCube: graphics.TextureTargetCubeMap,
}

// kindFor maps a GPU type to its upload kind. Scalar floats, ints and samplers have distinct array kinds.
func kindFor(t graphics.UniformType, isArray bool) (UniformKind, bool) {
	kind, ok := typeKinds[t]
	if !ok {
		return 0, false
	}
	if isArray {
		switch kind {
		case UniformKindFloat:
			kind = UniformKindFloatArray
		case UniformKindInt:
			kind = UniformKindIntArray
		case UniformKindSampler:
			kind = UniformKindSamplerArray
		}
	}
	return kind, true
}

// UniformSetter uploads values to one active uniform of one linked program.
type UniformSetter struct {
	ctx graphics.Context

	// Name is the logical name, without any "[0]" suffix.
	Name string
	// Location is the uniform's location in its program.
	Location graphics.UniformLocation
	// Type is the GPU type tag reported by introspection.
	Type graphics.UniformType
	// Kind selects the upload routine.
	Kind UniformKind
	// Size is the number of array elements, 1 for non-arrays.
	Size int
	// Target is the texture binding point for samplers.
	Target graphics.TextureTarget
	// Units holds the texture units assigned to a sampler, one per array element.
	Units []uint32
}

// Set uploads value using the routine for the setter's kind.
//
// Parameters:
//   - value: a Go value matching the kind (see the package documentation of ProgramInfo.SetUniforms)
//
// Returns:
//   - error: an error wrapping ErrUniformValue if value cannot feed this uniform
func (s *UniformSetter) Set(value any) error {
	if ok := uniformDispatch[s.Kind](s, value); !ok {
		return fmt.Errorf("%w: %q (%s) cannot take %T", ErrUniformValue, s.Name, s.Kind, value)
	}
	return nil
}

var uniformDispatch = [...]func(*UniformSetter, any) bool{
	UniformKindFloat:        setFloat,
	UniformKindFloatArray:   floatVector(1, graphics.Context.Uniform1fv),
	UniformKindVec2:         floatVector(2, graphics.Context.Uniform2fv),
	UniformKindVec3:         floatVector(3, graphics.Context.Uniform3fv),
	UniformKindVec4:         floatVector(4, graphics.Context.Uniform4fv),
	UniformKindInt:          setInt,
	UniformKindIntArray:     intVector(1, graphics.Context.Uniform1iv),
	UniformKindIVec2:        intVector(2, graphics.Context.Uniform2iv),
	UniformKindIVec3:        intVector(3, graphics.Context.Uniform3iv),
	UniformKindIVec4:        intVector(4, graphics.Context.Uniform4iv),
	UniformKindBool:         intVector(1, graphics.Context.Uniform1iv),
	UniformKindBVec2:        intVector(2, graphics.Context.Uniform2iv),
	UniformKindBVec3:        intVector(3, graphics.Context.Uniform3iv),
	UniformKindBVec4:        intVector(4, graphics.Context.Uniform4iv),
	UniformKindMat2:         matrix(4, graphics.Context.UniformMatrix2fv),
	UniformKindMat3:         matrix(9, graphics.Context.UniformMatrix3fv),
	UniformKindMat4:         matrix(16, graphics.Context.UniformMatrix4fv),
	UniformKindSampler:      setSampler,
	UniformKindSamplerArray: setSamplerArray,
}

func setFloat(s *UniformSetter, value any) bool {
	v, ok := floats(value)
	if !ok || len(v) == 0 {
		return false
	}
	s.ctx.Uniform1f(s.Location, v[0])
	return true
}

func floatVector(width int, upload func(graphics.Context, graphics.UniformLocation, []float32)) func(*UniformSetter, any) bool {
	return func(s *UniformSetter, value any) bool {
		v, ok := floats(value)
		if !ok || len(v) == 0 || len(v)%width != 0 {
			return false
		}
		upload(s.ctx, s.Location, v)
		return true
	}
}

func setInt(s *UniformSetter, value any) bool {
	v, ok := ints(value)
	if !ok || len(v) == 0 {
		return false
	}
	s.ctx.Uniform1i(s.Location, v[0])
	return true
}

func intVector(width int, upload func(graphics.Context, graphics.UniformLocation, []int32)) func(*UniformSetter, any) bool {
	return func(s *UniformSetter, value any) bool {
		v, ok := ints(value)
		if !ok || len(v) == 0 || len(v)%width != 0 {
			return false
		}
		upload(s.ctx, s.Location, v)
		return true
	}
}

func matrix(width int, upload func(graphics.Context, graphics.UniformLocation, bool, []float32)) func(*UniformSetter, any) bool {
	return func(s *UniformSetter, value any) bool {
		v, ok := floats(value)
		if !ok || len(v) == 0 || len(v)%width != 0 {
			return false
		}
		upload(s.ctx, s.Location, false, v)
		return true
	}
}

func setSampler(s *UniformSetter, value any) bool {
	t, ok := textures(value)
	if !ok || len(t) != 1 {
		return false
	}
	unit := s.Units[0]
	s.ctx.Uniform1i(s.Location, int32(unit))
	s.ctx.ActiveTexture(unit)
	s.ctx.BindTexture(s.Target, t[0])
	return true
}

func setSamplerArray(s *UniformSetter, value any) bool {
	t, ok := textures(value)
	if !ok {
		return false
	}
	units := make([]int32, len(s.Units))
	for i, u := range s.Units {
		units[i] = int32(u)
	}
	s.ctx.Uniform1iv(s.Location, units)
	for i, tex := range t {
		if i >= len(s.Units) {
			break
		}
		s.ctx.ActiveTexture(s.Units[i])
		s.ctx.BindTexture(s.Target, tex)
	}
	return true
}
