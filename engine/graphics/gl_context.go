package graphics

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glContext implements Context over desktop OpenGL 4.1 core, the closest desktop match to the WebGL2 feature set.
type glContext struct {
	// defaultVertexArray stands in for the implicit vertex array WebGL2 provides; core profiles have none.
	defaultVertexArray uint32
}

var _ Context = &glContext{}

// NewGLContext loads the OpenGL function pointers for the context current on the calling thread
// and returns a Context backed by it.
// The caller must keep every later call on that same OS thread.
//
// Returns:
//   - Context: the OpenGL backed context
//   - error: error if the function pointers could not be loaded
func NewGLContext() (Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	c := &glContext{}
	gl.GenVertexArrays(1, &c.defaultVertexArray)
	gl.BindVertexArray(c.defaultVertexArray)
	return c, nil
}

var shaderStages = map[ShaderStage]uint32{
	ShaderStageVertex:   gl.VERTEX_SHADER,
	ShaderStageFragment: gl.FRAGMENT_SHADER,
}

var dataTypes = map[DataType]uint32{
	DataTypeByte:          gl.BYTE,
	DataTypeUnsignedByte:  gl.UNSIGNED_BYTE,
	DataTypeShort:         gl.SHORT,
	DataTypeUnsignedShort: gl.UNSIGNED_SHORT,
	DataTypeInt:           gl.INT,
	DataTypeUnsignedInt:   gl.UNSIGNED_INT,
	DataTypeFloat:         gl.FLOAT,
}

var topologies = map[Topology]uint32{
	TopologyTriangles:     gl.TRIANGLES,
	TopologyTriangleStrip: gl.TRIANGLE_STRIP,
	TopologyTriangleFan:   gl.TRIANGLE_FAN,
	TopologyLines:         gl.LINES,
	TopologyLineStrip:     gl.LINE_STRIP,
	TopologyLineLoop:      gl.LINE_LOOP,
	TopologyPoints:        gl.POINTS,
}

var bufferTargets = map[BufferTarget]uint32{
	BufferTargetArray:        gl.ARRAY_BUFFER,
	BufferTargetElementArray: gl.ELEMENT_ARRAY_BUFFER,
}

var bufferUsages = map[BufferUsage]uint32{
	BufferUsageStaticDraw:  gl.STATIC_DRAW,
	BufferUsageDynamicDraw: gl.DYNAMIC_DRAW,
	BufferUsageStreamDraw:  gl.STREAM_DRAW,
}

var textureTargets = map[TextureTarget]uint32{
	TextureTarget2D:      gl.TEXTURE_2D,
	TextureTargetCubeMap: gl.TEXTURE_CUBE_MAP,
}

var textureParameters = map[TextureParameter]uint32{
	TextureParameterMinFilter: gl.TEXTURE_MIN_FILTER,
	TextureParameterMagFilter: gl.TEXTURE_MAG_FILTER,
	TextureParameterWrapS:     gl.TEXTURE_WRAP_S,
	TextureParameterWrapT:     gl.TEXTURE_WRAP_T,
}

var textureValues = map[TextureValue]int32{
	TextureValueNearest:            gl.NEAREST,
	TextureValueLinear:             gl.LINEAR,
	TextureValueLinearMipmapLinear: gl.LINEAR_MIPMAP_LINEAR,
	TextureValueClampToEdge:        gl.CLAMP_TO_EDGE,
	TextureValueRepeat:             gl.REPEAT,
}

var capabilities = map[Capability]uint32{
	CapabilityDepthTest: gl.DEPTH_TEST,
	CapabilityCullFace:  gl.CULL_FACE,
	CapabilityBlend:     gl.BLEND,
}

var feedbackModes = map[FeedbackMode]uint32{
	FeedbackModeSeparateAttribs:    gl.SEPARATE_ATTRIBS,
	FeedbackModeInterleavedAttribs: gl.INTERLEAVED_ATTRIBS,
}

var uniformTypes = map[uint32]UniformType{
	gl.FLOAT:        UniformTypeFloat,
	gl.FLOAT_VEC2:   UniformTypeFloatVec2,
	gl.FLOAT_VEC3:   UniformTypeFloatVec3,
	gl.FLOAT_VEC4:   UniformTypeFloatVec4,
	gl.INT:          UniformTypeInt,
	gl.INT_VEC2:     UniformTypeIntVec2,
	gl.INT_VEC3:     UniformTypeIntVec3,
	gl.INT_VEC4:     UniformTypeIntVec4,
	gl.BOOL:         UniformTypeBool,
	gl.BOOL_VEC2:    UniformTypeBoolVec2,
	gl.BOOL_VEC3:    UniformTypeBoolVec3,
	gl.BOOL_VEC4:    UniformTypeBoolVec4,
	gl.FLOAT_MAT2:   UniformTypeFloatMat2,
	gl.FLOAT_MAT3:   UniformTypeFloatMat3,
	gl.FLOAT_MAT4:   UniformTypeFloatMat4,
	gl.SAMPLER_2D:   UniformTypeSampler2D,
	gl.SAMPLER_CUBE: UniformTypeSamplerCube,
}

func (c *glContext) CreateShader(stage ShaderStage) Shader {
	return Shader(gl.CreateShader(shaderStages[stage]))
}

func (c *glContext) ShaderSource(s Shader, source string) {
	csources, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(uint32(s), 1, csources, nil)
}

func (c *glContext) CompileShader(s Shader) {
	gl.CompileShader(uint32(s))
}

func (c *glContext) ShaderCompiled(s Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (c *glContext) ShaderInfoLog(s Shader) string {
	var length int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	gl.GetShaderInfoLog(uint32(s), length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *glContext) DeleteShader(s Shader) {
	gl.DeleteShader(uint32(s))
}

func (c *glContext) CreateProgram() Program {
	return Program(gl.CreateProgram())
}

func (c *glContext) AttachShader(p Program, s Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (c *glContext) BindAttribLocation(p Program, index uint32, name string) {
	gl.BindAttribLocation(uint32(p), index, gl.Str(name+"\x00"))
}

func (c *glContext) TransformFeedbackVaryings(p Program, varyings []string, mode FeedbackMode) {
	if len(varyings) == 0 {
		return
	}
	terminated := make([]string, len(varyings))
	for i, v := range varyings {
		terminated[i] = v + "\x00"
	}
	cvaryings, free := gl.Strs(terminated...)
	defer free()
	gl.TransformFeedbackVaryings(uint32(p), int32(len(varyings)), cvaryings, feedbackModes[mode])
}

func (c *glContext) LinkProgram(p Program) {
	gl.LinkProgram(uint32(p))
}

func (c *glContext) ProgramLinked(p Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (c *glContext) ProgramInfoLog(p Program) string {
	var length int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(uint32(p), length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *glContext) DeleteProgram(p Program) {
	gl.DeleteProgram(uint32(p))
}

func (c *glContext) UseProgram(p Program) {
	gl.UseProgram(uint32(p))
}

func (c *glContext) ActiveUniformCount(p Program) int {
	var count int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_UNIFORMS, &count)
	return int(count)
}

func (c *glContext) ActiveUniform(p Program, index int) (ActiveInfo, bool) {
	var maxLength int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLength)
	return activeInfo(maxLength, func(length, size *int32, xtype *uint32, name *uint8) {
		gl.GetActiveUniform(uint32(p), uint32(index), maxLength, length, size, xtype, name)
	})
}

func (c *glContext) ActiveAttribCount(p Program) int {
	var count int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_ATTRIBUTES, &count)
	return int(count)
}

func (c *glContext) ActiveAttrib(p Program, index int) (ActiveInfo, bool) {
	var maxLength int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLength)
	return activeInfo(maxLength, func(length, size *int32, xtype *uint32, name *uint8) {
		gl.GetActiveAttrib(uint32(p), uint32(index), maxLength, length, size, xtype, name)
	})
}

// activeInfo runs one introspection query into a name buffer of maxLength bytes.
func activeInfo(maxLength int32, query func(length, size *int32, xtype *uint32, name *uint8)) (ActiveInfo, bool) {
	if maxLength <= 0 {
		return ActiveInfo{}, false
	}
	var length, size int32
	var xtype uint32
	name := make([]uint8, maxLength+1)
	query(&length, &size, &xtype, &name[0])
	if length == 0 {
		return ActiveInfo{}, false
	}
	return ActiveInfo{
		Name: string(name[:length]),
		Size: int(size),
		Type: uniformTypes[xtype],
	}, true
}

func (c *glContext) UniformLocation(p Program, name string) UniformLocation {
	return UniformLocation(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

func (c *glContext) AttribLocation(p Program, name string) int32 {
	return gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00"))
}

func (c *glContext) Uniform1f(loc UniformLocation, v float32) {
	gl.Uniform1f(int32(loc), v)
}

func (c *glContext) Uniform1fv(loc UniformLocation, v []float32) {
	if len(v) > 0 {
		gl.Uniform1fv(int32(loc), int32(len(v)), &v[0])
	}
}

func (c *glContext) Uniform2fv(loc UniformLocation, v []float32) {
	if len(v) >= 2 {
		gl.Uniform2fv(int32(loc), int32(len(v)/2), &v[0])
	}
}

func (c *glContext) Uniform3fv(loc UniformLocation, v []float32) {
	if len(v) >= 3 {
		gl.Uniform3fv(int32(loc), int32(len(v)/3), &v[0])
	}
}

func (c *glContext) Uniform4fv(loc UniformLocation, v []float32) {
	if len(v) >= 4 {
		gl.Uniform4fv(int32(loc), int32(len(v)/4), &v[0])
	}
}

func (c *glContext) Uniform1i(loc UniformLocation, v int32) {
	gl.Uniform1i(int32(loc), v)
}

func (c *glContext) Uniform1iv(loc UniformLocation, v []int32) {
	if len(v) > 0 {
		gl.Uniform1iv(int32(loc), int32(len(v)), &v[0])
	}
}

func (c *glContext) Uniform2iv(loc UniformLocation, v []int32) {
	if len(v) >= 2 {
		gl.Uniform2iv(int32(loc), int32(len(v)/2), &v[0])
	}
}

func (c *glContext) Uniform3iv(loc UniformLocation, v []int32) {
	if len(v) >= 3 {
		gl.Uniform3iv(int32(loc), int32(len(v)/3), &v[0])
	}
}

func (c *glContext) Uniform4iv(loc UniformLocation, v []int32) {
	if len(v) >= 4 {
		gl.Uniform4iv(int32(loc), int32(len(v)/4), &v[0])
	}
}

func (c *glContext) UniformMatrix2fv(loc UniformLocation, transpose bool, v []float32) {
	if len(v) >= 4 {
		gl.UniformMatrix2fv(int32(loc), int32(len(v)/4), transpose, &v[0])
	}
}

func (c *glContext) UniformMatrix3fv(loc UniformLocation, transpose bool, v []float32) {
	if len(v) >= 9 {
		gl.UniformMatrix3fv(int32(loc), int32(len(v)/9), transpose, &v[0])
	}
}

func (c *glContext) UniformMatrix4fv(loc UniformLocation, transpose bool, v []float32) {
	if len(v) >= 16 {
		gl.UniformMatrix4fv(int32(loc), int32(len(v)/16), transpose, &v[0])
	}
}

func (c *glContext) CreateBuffer() Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return Buffer(b)
}

func (c *glContext) BindBuffer(target BufferTarget, b Buffer) {
	gl.BindBuffer(bufferTargets[target], uint32(b))
}

func (c *glContext) BufferData(target BufferTarget, data []byte, usage BufferUsage) {
	if len(data) == 0 {
		gl.BufferData(bufferTargets[target], 0, nil, bufferUsages[usage])
		return
	}
	gl.BufferData(bufferTargets[target], len(data), gl.Ptr(data), bufferUsages[usage])
}

func (c *glContext) BufferSubData(target BufferTarget, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(bufferTargets[target], offset, len(data), gl.Ptr(data))
}

func (c *glContext) DeleteBuffer(b Buffer) {
	handle := uint32(b)
	gl.DeleteBuffers(1, &handle)
}

func (c *glContext) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *glContext) VertexAttribPointer(index uint32, size int, typ DataType, normalize bool, stride, offset int) {
	gl.VertexAttribPointer(index, int32(size), dataTypes[typ], normalize, int32(stride), gl.PtrOffset(offset))
}

func (c *glContext) CreateVertexArray() VertexArray {
	var v uint32
	gl.GenVertexArrays(1, &v)
	return VertexArray(v)
}

func (c *glContext) BindVertexArray(v VertexArray) {
	if v == 0 {
		gl.BindVertexArray(c.defaultVertexArray)
		return
	}
	gl.BindVertexArray(uint32(v))
}

func (c *glContext) DeleteVertexArray(v VertexArray) {
	handle := uint32(v)
	gl.DeleteVertexArrays(1, &handle)
}

func (c *glContext) DrawArrays(mode Topology, first, count int) {
	gl.DrawArrays(topologies[mode], int32(first), int32(count))
}

func (c *glContext) DrawArraysInstanced(mode Topology, first, count, instances int) {
	gl.DrawArraysInstanced(topologies[mode], int32(first), int32(count), int32(instances))
}

func (c *glContext) DrawElements(mode Topology, count int, typ DataType, offset int) {
	gl.DrawElements(topologies[mode], int32(count), dataTypes[typ], gl.PtrOffset(offset))
}

func (c *glContext) DrawElementsInstanced(mode Topology, count int, typ DataType, offset, instances int) {
	gl.DrawElementsInstanced(topologies[mode], int32(count), dataTypes[typ], gl.PtrOffset(offset), int32(instances))
}

func (c *glContext) CreateTexture() Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return Texture(t)
}

func (c *glContext) ActiveTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
}

func (c *glContext) BindTexture(target TextureTarget, t Texture) {
	gl.BindTexture(textureTargets[target], uint32(t))
}

func (c *glContext) TexImage2D(target TextureTarget, width, height int, pixels []byte) {
	if len(pixels) == 0 {
		gl.TexImage2D(textureTargets[target], 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
		return
	}
	gl.TexImage2D(textureTargets[target], 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (c *glContext) TexParameter(target TextureTarget, param TextureParameter, value TextureValue) {
	gl.TexParameteri(textureTargets[target], textureParameters[param], textureValues[value])
}

func (c *glContext) GenerateMipmap(target TextureTarget) {
	gl.GenerateMipmap(textureTargets[target])
}

func (c *glContext) DeleteTexture(t Texture) {
	handle := uint32(t)
	gl.DeleteTextures(1, &handle)
}

func (c *glContext) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (c *glContext) Enable(capability Capability) {
	gl.Enable(capabilities[capability])
}

func (c *glContext) Disable(capability Capability) {
	gl.Disable(capabilities[capability])
}

func (c *glContext) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *glContext) Clear(mask ClearMask) {
	var bits uint32
	if mask&ClearColor != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&ClearDepth != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}
