package program

import (
	"testing"

	"cogentcore.org/core/base/ordmap"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/pika-go/engine/graphics"
	"github.com/Carmen-Shannon/pika-go/engine/graphics/graphicstest"
	"github.com/Carmen-Shannon/pika-go/engine/renderer/buffer_info"
	"github.com/Carmen-Shannon/pika-go/engine/renderer/shader"
)

func newRecorder() *graphicstest.Recorder {
	rec := graphicstest.NewRecorder()
	rec.Uniforms = []graphics.ActiveInfo{
		{Name: "u_world", Size: 1, Type: graphics.UniformTypeFloatMat4},
		{Name: "u_shadowMaps[0]", Size: 2, Type: graphics.UniformTypeSampler2D},
		{Name: "u_env", Size: 1, Type: graphics.UniformTypeSamplerCube},
		{Name: "gl_DepthRange.near", Size: 1, Type: graphics.UniformTypeFloat},
		{Name: "u_lights[0]", Size: 2, Type: graphics.UniformTypeFloatVec3},
		{Name: "u_diffuse", Size: 1, Type: graphics.UniformTypeSampler2D},
		{Name: "u_count", Size: 1, Type: graphics.UniformTypeInt},
		{Name: "u_weights[0]", Size: 3, Type: graphics.UniformTypeFloat},
		{Name: "u_enabled", Size: 1, Type: graphics.UniformTypeBool},
		{Name: "u_image", Size: 1, Type: graphics.UniformTypeUnknown},
	}
	rec.Attributes = []graphics.ActiveInfo{
		{Name: "a_position", Size: 1, Type: graphics.UniformTypeFloatVec3},
		{Name: "gl_VertexID", Size: 1, Type: graphics.UniformTypeInt},
		{Name: "a_normal", Size: 1, Type: graphics.UniformTypeFloatVec3},
	}
	return rec
}

func TestReflectBuildsOneSetterPerLogicalName(t *testing.T) {
	rec := newRecorder()
	info := Reflect(rec, graphics.Program(1))

	names := make([]string, 0)
	for _, s := range info.UniformSetters() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"u_count", "u_diffuse", "u_enabled", "u_env", "u_lights", "u_shadowMaps", "u_weights", "u_world"}, names)

	lights, ok := info.UniformSetter("u_lights")
	require.True(t, ok)
	assert.Equal(t, UniformKindVec3, lights.Kind)
	assert.Equal(t, 2, lights.Size)
	assert.Equal(t, graphics.UniformLocation(4), lights.Location)

	weights, _ := info.UniformSetter("u_weights")
	assert.Equal(t, UniformKindFloatArray, weights.Kind)

	_, ok = info.UniformSetter("u_image")
	assert.False(t, ok)

	require.Len(t, info.AttributeBinders(), 2)
	normal, ok := info.AttributeBinder("a_normal")
	require.True(t, ok)
	assert.Equal(t, uint32(2), normal.Location)
}

func TestReflectAssignsSamplerUnitsInNameOrder(t *testing.T) {
	info := Reflect(newRecorder(), graphics.Program(1))

	shadowMaps, _ := info.UniformSetter("u_shadowMaps")
	diffuse, _ := info.UniformSetter("u_diffuse")
	env, _ := info.UniformSetter("u_env")

	assert.Equal(t, UniformKindSamplerArray, shadowMaps.Kind)
	assert.Equal(t, []uint32{0, 1}, shadowMaps.Units)
	assert.Equal(t, []uint32{2}, diffuse.Units)
	assert.Equal(t, []uint32{2}, env.Units)
	assert.Equal(t, graphics.TextureTargetCubeMap, env.Target)
}

func TestReflectWithUniqueSamplerUnits(t *testing.T) {
	info := Reflect(newRecorder(), graphics.Program(1), WithUniqueSamplerUnits())

	diffuse, _ := info.UniformSetter("u_diffuse")
	env, _ := info.UniformSetter("u_env")
	shadowMaps, _ := info.UniformSetter("u_shadowMaps")

	assert.Equal(t, []uint32{0}, diffuse.Units)
	assert.Equal(t, []uint32{1}, env.Units)
	assert.Equal(t, []uint32{2, 3}, shadowMaps.Units)
}

func TestSetUniformsLayersMapsAndIgnoresUnknownNames(t *testing.T) {
	rec := newRecorder()
	info := Reflect(rec, graphics.Program(1))

	err := info.SetUniforms(
		Uniforms{"u_count": 1, "u_fog": 0.5},
		nil,
		Uniforms{"u_count": int32(2), "u_enabled": true},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"Uniform1i", "Uniform1i", "Uniform1iv"}, rec.Names())
	assert.Equal(t, []any{graphics.UniformLocation(6), int32(1)}, rec.Calls[0].Args)
	assert.Equal(t, []any{graphics.UniformLocation(6), int32(2)}, rec.Calls[1].Args)
	assert.Equal(t, []any{graphics.UniformLocation(8), []int32{1}}, rec.Calls[2].Args)
}

func TestSetUniformsMatricesAndVectors(t *testing.T) {
	rec := newRecorder()
	info := Reflect(rec, graphics.Program(1))

	require.NoError(t, info.SetUniforms(Uniforms{
		"u_world":   mgl32.Ident4(),
		"u_lights":  []float32{1, 2, 3, 4, 5, 6},
		"u_weights": []float64{0.25, 0.5, 0.25},
	}))

	lights := rec.Named("Uniform3fv")
	require.Len(t, lights, 1)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, lights[0].Args[1])

	weights := rec.Named("Uniform1fv")
	require.Len(t, weights, 1)
	assert.Equal(t, []float32{0.25, 0.5, 0.25}, weights[0].Args[1])

	world := rec.Named("UniformMatrix4fv")
	require.Len(t, world, 1)
	assert.Equal(t, false, world[0].Args[1])
	ident := mgl32.Ident4()
	assert.Equal(t, ident[:], world[0].Args[2])
}

func TestSetUniformsRejectsMismatchedValues(t *testing.T) {
	info := Reflect(newRecorder(), graphics.Program(1))

	err := info.SetUniforms(Uniforms{"u_world": "identity"})
	assert.ErrorIs(t, err, ErrUniformValue)
	assert.Contains(t, err.Error(), `"u_world" (mat4)`)

	err = info.SetUniforms(Uniforms{"u_lights": []float32{1, 2}})
	assert.ErrorIs(t, err, ErrUniformValue)

	err = info.SetUniforms(Uniforms{"u_diffuse": 3})
	assert.ErrorIs(t, err, ErrUniformValue)
}

func TestSamplerSetters(t *testing.T) {
	rec := newRecorder()
	info := Reflect(rec, graphics.Program(1))

	require.NoError(t, info.SetUniforms(Uniforms{"u_shadowMaps": []graphics.Texture{7, 8}}))
	assert.Equal(t, []Call{
		{"Uniform1iv", []any{graphics.UniformLocation(1), []int32{0, 1}}},
		{"ActiveTexture", []any{uint32(0)}},
		{"BindTexture", []any{graphics.TextureTarget2D, graphics.Texture(7)}},
		{"ActiveTexture", []any{uint32(1)}},
		{"BindTexture", []any{graphics.TextureTarget2D, graphics.Texture(8)}},
	}, calls(rec))

	rec.Reset()
	require.NoError(t, info.SetUniforms(Uniforms{"u_env": graphics.Texture(9)}))
	assert.Equal(t, []Call{
		{"Uniform1i", []any{graphics.UniformLocation(2), int32(2)}},
		{"ActiveTexture", []any{uint32(2)}},
		{"BindTexture", []any{graphics.TextureTargetCubeMap, graphics.Texture(9)}},
	}, calls(rec))
}

func TestAttributeBinderDefaults(t *testing.T) {
	rec := newRecorder()
	info := Reflect(rec, graphics.Program(1))

	attribs := ordmap.New[string, buffer_info.AttribBuffer]()
	attribs.Add("a_position", buffer_info.AttribBuffer{Buffer: 5, Size: 2})
	attribs.Add("a_tangent", buffer_info.AttribBuffer{Buffer: 6, NumComponents: 3})
	attribs.Add("a_normal", buffer_info.AttribBuffer{Buffer: 7, NumComponents: 4, Type: graphics.DataTypeByte, Normalize: true, Stride: 8, Offset: 4})
	info.SetAttributes(attribs)

	assert.Equal(t, []Call{
		{"BindBuffer", []any{graphics.BufferTargetArray, graphics.Buffer(5)}},
		{"EnableVertexAttribArray", []any{uint32(0)}},
		{"VertexAttribPointer", []any{uint32(0), 2, graphics.DataTypeFloat, false, 0, 0}},
		{"BindBuffer", []any{graphics.BufferTargetArray, graphics.Buffer(7)}},
		{"EnableVertexAttribArray", []any{uint32(2)}},
		{"VertexAttribPointer", []any{uint32(2), 4, graphics.DataTypeByte, true, 8, 4}},
	}, calls(rec))
}

func TestCreate(t *testing.T) {
	rec := newRecorder()
	info, err := Create(rec, shader.NewCompiler(rec), "void main() {}", "void main() {}")
	require.NoError(t, err)
	assert.NotZero(t, info.Program())

	rec.RejectLink = true
	_, err = Create(rec, shader.NewCompiler(rec), "void main() {}", "void main() {}")
	assert.ErrorIs(t, err, shader.ErrLinkFailure)
}

// Call mirrors graphicstest.Call so expectations read as plain literals.
type Call struct {
	Name string
	Args []any
}

func calls(rec *graphicstest.Recorder) []Call {
	out := make([]Call, len(rec.Calls))
	for i, c := range rec.Calls {
		out[i] = Call{Name: c.Name, Args: c.Args}
	}
	return out
}
