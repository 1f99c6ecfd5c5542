// Package graphicstest provides a recording graphics.Context for tests that have no GPU.
package graphicstest

import (
	"slices"
	"strings"

	"github.com/Carmen-Shannon/pika-go/engine/graphics"
)

// Call is one recorded Context method invocation.
type Call struct {
	Name string
	Args []any
}

// Recorder is a graphics.Context that records every call in order and simulates the
// object bookkeeping a driver does (handles, compile and link status, buffer contents, introspection).
type Recorder struct {
	// Calls holds every recorded call in order.
	Calls []Call

	// Uniforms is the active uniform list every linked program reports, in driver order.
	Uniforms []graphics.ActiveInfo
	// Attributes is the active attribute list every linked program reports, in driver order.
	Attributes []graphics.ActiveInfo

	// RejectSource fails compilation of any shader whose source contains it. Empty rejects nothing.
	RejectSource string
	// RejectLink fails every link.
	RejectLink bool

	// Sources maps each shader to the source it was given.
	Sources map[graphics.Shader]string
	// Buffers maps each buffer to its current contents.
	Buffers map[graphics.Buffer][]byte

	nextHandle   uint32
	compiled     map[graphics.Shader]bool
	linked       map[graphics.Program]bool
	attribSlots  map[graphics.Program]map[string]uint32
	boundBuffers map[graphics.BufferTarget]graphics.Buffer
}

var _ graphics.Context = &Recorder{}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Sources:      make(map[graphics.Shader]string),
		Buffers:      make(map[graphics.Buffer][]byte),
		compiled:     make(map[graphics.Shader]bool),
		linked:       make(map[graphics.Program]bool),
		attribSlots:  make(map[graphics.Program]map[string]uint32),
		boundBuffers: make(map[graphics.BufferTarget]graphics.Buffer),
	}
}

// Named returns the recorded calls with the given method name.
func (r *Recorder) Named(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many calls with the given method name were recorded.
func (r *Recorder) Count(name string) int {
	return len(r.Named(name))
}

// Names returns the method names of every recorded call in order.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Name
	}
	return out
}

// Reset forgets the recorded calls but keeps every simulated object.
func (r *Recorder) Reset() {
	r.Calls = nil
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) handle() uint32 {
	r.nextHandle++
	return r.nextHandle
}

func (r *Recorder) CreateShader(stage graphics.ShaderStage) graphics.Shader {
	s := graphics.Shader(r.handle())
	r.record("CreateShader", stage)
	return s
}

func (r *Recorder) ShaderSource(s graphics.Shader, source string) {
	r.Sources[s] = source
	r.record("ShaderSource", s, source)
}

func (r *Recorder) CompileShader(s graphics.Shader) {
	r.compiled[s] = r.RejectSource == "" || !strings.Contains(r.Sources[s], r.RejectSource)
	r.record("CompileShader", s)
}

func (r *Recorder) ShaderCompiled(s graphics.Shader) bool {
	return r.compiled[s]
}

func (r *Recorder) ShaderInfoLog(s graphics.Shader) string {
	if r.compiled[s] {
		return ""
	}
	return "ERROR: 0:1: '" + r.RejectSource + "' : syntax error"
}

func (r *Recorder) DeleteShader(s graphics.Shader) {
	r.record("DeleteShader", s)
}

func (r *Recorder) CreateProgram() graphics.Program {
	p := graphics.Program(r.handle())
	r.attribSlots[p] = make(map[string]uint32)
	r.record("CreateProgram")
	return p
}

func (r *Recorder) AttachShader(p graphics.Program, s graphics.Shader) {
	r.record("AttachShader", p, s)
}

func (r *Recorder) BindAttribLocation(p graphics.Program, index uint32, name string) {
	r.attribSlots[p][name] = index
	r.record("BindAttribLocation", p, index, name)
}

func (r *Recorder) TransformFeedbackVaryings(p graphics.Program, varyings []string, mode graphics.FeedbackMode) {
	r.record("TransformFeedbackVaryings", p, slices.Clone(varyings), mode)
}

func (r *Recorder) LinkProgram(p graphics.Program) {
	r.linked[p] = !r.RejectLink
	r.record("LinkProgram", p)
}

func (r *Recorder) ProgramLinked(p graphics.Program) bool {
	return r.linked[p]
}

func (r *Recorder) ProgramInfoLog(p graphics.Program) string {
	if r.linked[p] {
		return ""
	}
	return "error: vertex output not consumed by fragment shader"
}

func (r *Recorder) DeleteProgram(p graphics.Program) {
	r.record("DeleteProgram", p)
}

func (r *Recorder) UseProgram(p graphics.Program) {
	r.record("UseProgram", p)
}

func (r *Recorder) ActiveUniformCount(graphics.Program) int {
	return len(r.Uniforms)
}

func (r *Recorder) ActiveUniform(_ graphics.Program, index int) (graphics.ActiveInfo, bool) {
	if index < 0 || index >= len(r.Uniforms) {
		return graphics.ActiveInfo{}, false
	}
	return r.Uniforms[index], true
}

func (r *Recorder) ActiveAttribCount(graphics.Program) int {
	return len(r.Attributes)
}

func (r *Recorder) ActiveAttrib(_ graphics.Program, index int) (graphics.ActiveInfo, bool) {
	if index < 0 || index >= len(r.Attributes) {
		return graphics.ActiveInfo{}, false
	}
	return r.Attributes[index], true
}

// UniformLocation reports the uniform's index in Uniforms as its location.
func (r *Recorder) UniformLocation(_ graphics.Program, name string) graphics.UniformLocation {
	for i, u := range r.Uniforms {
		if u.Name == name || u.Name == name+"[0]" {
			return graphics.UniformLocation(i)
		}
	}
	return graphics.NoLocation
}

// AttribLocation reports a slot bound before linking, else the attribute's index in Attributes.
func (r *Recorder) AttribLocation(p graphics.Program, name string) int32 {
	if slot, ok := r.attribSlots[p][name]; ok {
		return int32(slot)
	}
	for i, a := range r.Attributes {
		if a.Name == name {
			return int32(i)
		}
	}
	return -1
}

func (r *Recorder) Uniform1f(loc graphics.UniformLocation, v float32) {
	r.record("Uniform1f", loc, v)
}

func (r *Recorder) Uniform1fv(loc graphics.UniformLocation, v []float32) {
	r.record("Uniform1fv", loc, slices.Clone(v))
}

func (r *Recorder) Uniform2fv(loc graphics.UniformLocation, v []float32) {
	r.record("Uniform2fv", loc, slices.Clone(v))
}

func (r *Recorder) Uniform3fv(loc graphics.UniformLocation, v []float32) {
	r.record("Uniform3fv", loc, slices.Clone(v))
}

func (r *Recorder) Uniform4fv(loc graphics.UniformLocation, v []float32) {
	r.record("Uniform4fv", loc, slices.Clone(v))
}

func (r *Recorder) Uniform1i(loc graphics.UniformLocation, v int32) {
	r.record("Uniform1i", loc, v)
}

func (r *Recorder) Uniform1iv(loc graphics.UniformLocation, v []int32) {
	r.record("Uniform1iv", loc, slices.Clone(v))
}

func (r *Recorder) Uniform2iv(loc graphics.UniformLocation, v []int32) {
	r.record("Uniform2iv", loc, slices.Clone(v))
}

func (r *Recorder) Uniform3iv(loc graphics.UniformLocation, v []int32) {
	r.record("Uniform3iv", loc, slices.Clone(v))
}

func (r *Recorder) Uniform4iv(loc graphics.UniformLocation, v []int32) {
	r.record("Uniform4iv", loc, slices.Clone(v))
}

func (r *Recorder) UniformMatrix2fv(loc graphics.UniformLocation, transpose bool, v []float32) {
	r.record("UniformMatrix2fv", loc, transpose, slices.Clone(v))
}

func (r *Recorder) UniformMatrix3fv(loc graphics.UniformLocation, transpose bool, v []float32) {
	r.record("UniformMatrix3fv", loc, transpose, slices.Clone(v))
}

func (r *Recorder) UniformMatrix4fv(loc graphics.UniformLocation, transpose bool, v []float32) {
	r.record("UniformMatrix4fv", loc, transpose, slices.Clone(v))
}

func (r *Recorder) CreateBuffer() graphics.Buffer {
	b := graphics.Buffer(r.handle())
	r.record("CreateBuffer")
	return b
}

func (r *Recorder) BindBuffer(target graphics.BufferTarget, b graphics.Buffer) {
	r.boundBuffers[target] = b
	r.record("BindBuffer", target, b)
}

func (r *Recorder) BufferData(target graphics.BufferTarget, data []byte, usage graphics.BufferUsage) {
	r.Buffers[r.boundBuffers[target]] = slices.Clone(data)
	r.record("BufferData", target, len(data), usage)
}

func (r *Recorder) BufferSubData(target graphics.BufferTarget, offset int, data []byte) {
	contents := r.Buffers[r.boundBuffers[target]]
	if offset+len(data) <= len(contents) {
		copy(contents[offset:], data)
	}
	r.record("BufferSubData", target, offset, len(data))
}

func (r *Recorder) DeleteBuffer(b graphics.Buffer) {
	delete(r.Buffers, b)
	r.record("DeleteBuffer", b)
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int, typ graphics.DataType, normalize bool, stride, offset int) {
	r.record("VertexAttribPointer", index, size, typ, normalize, stride, offset)
}

func (r *Recorder) CreateVertexArray() graphics.VertexArray {
	v := graphics.VertexArray(r.handle())
	r.record("CreateVertexArray")
	return v
}

func (r *Recorder) BindVertexArray(v graphics.VertexArray) {
	r.record("BindVertexArray", v)
}

func (r *Recorder) DeleteVertexArray(v graphics.VertexArray) {
	r.record("DeleteVertexArray", v)
}

func (r *Recorder) DrawArrays(mode graphics.Topology, first, count int) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) DrawArraysInstanced(mode graphics.Topology, first, count, instances int) {
	r.record("DrawArraysInstanced", mode, first, count, instances)
}

func (r *Recorder) DrawElements(mode graphics.Topology, count int, typ graphics.DataType, offset int) {
	r.record("DrawElements", mode, count, typ, offset)
}

func (r *Recorder) DrawElementsInstanced(mode graphics.Topology, count int, typ graphics.DataType, offset, instances int) {
	r.record("DrawElementsInstanced", mode, count, typ, offset, instances)
}

func (r *Recorder) CreateTexture() graphics.Texture {
	t := graphics.Texture(r.handle())
	r.record("CreateTexture")
	return t
}

func (r *Recorder) ActiveTexture(unit uint32) {
	r.record("ActiveTexture", unit)
}

func (r *Recorder) BindTexture(target graphics.TextureTarget, t graphics.Texture) {
	r.record("BindTexture", target, t)
}

func (r *Recorder) TexImage2D(target graphics.TextureTarget, width, height int, pixels []byte) {
	r.record("TexImage2D", target, width, height, len(pixels))
}

func (r *Recorder) TexParameter(target graphics.TextureTarget, param graphics.TextureParameter, value graphics.TextureValue) {
	r.record("TexParameter", target, param, value)
}

func (r *Recorder) GenerateMipmap(target graphics.TextureTarget) {
	r.record("GenerateMipmap", target)
}

func (r *Recorder) DeleteTexture(t graphics.Texture) {
	r.record("DeleteTexture", t)
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) Enable(capability graphics.Capability) {
	r.record("Enable", capability)
}

func (r *Recorder) Disable(capability graphics.Capability) {
	r.record("Disable", capability)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear(mask graphics.ClearMask) {
	r.record("Clear", mask)
}
