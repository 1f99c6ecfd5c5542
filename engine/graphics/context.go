package graphics

// Context is the immediate-mode graphics API consumed by the shader, program, buffer, renderer and texture packages.
// All calls must happen on the goroutine that owns the underlying driver context.
// Method names and semantics follow the WebGL2 entry points they stand for.
type Context interface {
	CreateShader(stage ShaderStage) Shader
	ShaderSource(s Shader, source string)
	CompileShader(s Shader)
	// ShaderCompiled reports the shader's compile status.
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	BindAttribLocation(p Program, index uint32, name string)
	TransformFeedbackVaryings(p Program, varyings []string, mode FeedbackMode)
	LinkProgram(p Program)
	// ProgramLinked reports the program's link status.
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)

	// ActiveUniformCount returns the number of active uniforms of a linked program.
	ActiveUniformCount(p Program) int
	// ActiveUniform describes the active uniform at index. ok is false when the index is not valid.
	ActiveUniform(p Program, index int) (info ActiveInfo, ok bool)
	// ActiveAttribCount returns the number of active attributes of a linked program.
	ActiveAttribCount(p Program) int
	// ActiveAttrib describes the active attribute at index. ok is false when the index is not valid.
	ActiveAttrib(p Program, index int) (info ActiveInfo, ok bool)
	UniformLocation(p Program, name string) UniformLocation
	// AttribLocation returns the attribute slot for name, or -1 when the attribute is not active.
	AttribLocation(p Program, name string) int32

	Uniform1f(loc UniformLocation, v float32)
	Uniform1fv(loc UniformLocation, v []float32)
	Uniform2fv(loc UniformLocation, v []float32)
	Uniform3fv(loc UniformLocation, v []float32)
	Uniform4fv(loc UniformLocation, v []float32)
	Uniform1i(loc UniformLocation, v int32)
	Uniform1iv(loc UniformLocation, v []int32)
	Uniform2iv(loc UniformLocation, v []int32)
	Uniform3iv(loc UniformLocation, v []int32)
	Uniform4iv(loc UniformLocation, v []int32)
	UniformMatrix2fv(loc UniformLocation, transpose bool, v []float32)
	UniformMatrix3fv(loc UniformLocation, transpose bool, v []float32)
	UniformMatrix4fv(loc UniformLocation, transpose bool, v []float32)

	CreateBuffer() Buffer
	BindBuffer(target BufferTarget, b Buffer)
	BufferData(target BufferTarget, data []byte, usage BufferUsage)
	// BufferSubData replaces part of the bound buffer's storage starting at offset bytes.
	BufferSubData(target BufferTarget, offset int, data []byte)
	DeleteBuffer(b Buffer)

	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int, typ DataType, normalize bool, stride, offset int)
	CreateVertexArray() VertexArray
	// BindVertexArray binds a vertex array. Binding the zero handle restores the default vertex state.
	BindVertexArray(v VertexArray)
	DeleteVertexArray(v VertexArray)

	DrawArrays(mode Topology, first, count int)
	DrawArraysInstanced(mode Topology, first, count, instances int)
	// DrawElements draws count indices of type typ starting offset bytes into the bound element buffer.
	DrawElements(mode Topology, count int, typ DataType, offset int)
	DrawElementsInstanced(mode Topology, count int, typ DataType, offset, instances int)

	CreateTexture() Texture
	// ActiveTexture selects the texture unit by index, not by driver enum.
	ActiveTexture(unit uint32)
	BindTexture(target TextureTarget, t Texture)
	// TexImage2D uploads tightly packed 8-bit RGBA pixels to mip level 0 of the bound texture.
	TexImage2D(target TextureTarget, width, height int, pixels []byte)
	TexParameter(target TextureTarget, param TextureParameter, value TextureValue)
	GenerateMipmap(target TextureTarget)
	DeleteTexture(t Texture)

	Viewport(x, y, width, height int)
	Enable(capability Capability)
	Disable(capability Capability)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
}
