// Package graphics describes the immediate-mode graphics API the rest of this module drives.
// Handles are plain integers whose zero value is the null handle, and every enum is API independent;
// the backend translates them to driver constants.
package graphics

// Shader is a compiled shader stage handle. The zero value is the null handle.
type Shader uint32

// Program is a linked program handle. The zero value is the null handle.
type Program uint32

// Buffer is a GPU buffer handle. The zero value is the null handle.
type Buffer uint32

// Texture is a GPU texture handle. The zero value is the null handle.
type Texture uint32

// VertexArray is a vertex array object handle capturing attribute and index bindings.
// The zero value restores the default vertex state.
type VertexArray uint32

// UniformLocation is a uniform's location within one linked program. NoLocation marks an absent uniform.
type UniformLocation int32

// NoLocation is returned for names that are not active in a program.
const NoLocation UniformLocation = -1

// ShaderStage selects which pipeline stage a shader is compiled for.
type ShaderStage int

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageFragment
)

// DataType is the element type of vertex or index data.
// DataTypeUnspecified lets consumers pick their documented default.
type DataType int

const (
	DataTypeUnspecified DataType = iota
	DataTypeByte
	DataTypeUnsignedByte
	DataTypeShort
	DataTypeUnsignedShort
	DataTypeInt
	DataTypeUnsignedInt
	DataTypeFloat
)

// Size returns the byte width of one element, or 0 when unspecified.
func (d DataType) Size() int {
	switch d {
	case DataTypeByte, DataTypeUnsignedByte:
		return 1
	case DataTypeShort, DataTypeUnsignedShort:
		return 2
	case DataTypeInt, DataTypeUnsignedInt, DataTypeFloat:
		return 4
	}
	return 0
}

// Topology is the primitive assembly mode of a draw call. The zero value draws triangles.
type Topology int

const (
	TopologyTriangles Topology = iota
	TopologyTriangleStrip
	TopologyTriangleFan
	TopologyLines
	TopologyLineStrip
	TopologyLineLoop
	TopologyPoints
)

// BufferTarget is the binding point of a buffer.
type BufferTarget int

const (
	BufferTargetArray BufferTarget = iota
	BufferTargetElementArray
)

// BufferUsage is the expected update frequency hint given when buffer storage is created.
type BufferUsage int

const (
	BufferUsageStaticDraw BufferUsage = iota
	BufferUsageDynamicDraw
	BufferUsageStreamDraw
)

// TextureTarget is the binding point of a texture.
type TextureTarget int

const (
	TextureTarget2D TextureTarget = iota
	TextureTargetCubeMap
)

// TextureParameter names a sampling parameter of a texture.
type TextureParameter int

const (
	TextureParameterMinFilter TextureParameter = iota
	TextureParameterMagFilter
	TextureParameterWrapS
	TextureParameterWrapT
)

// TextureValue is a value for a TextureParameter.
type TextureValue int

const (
	TextureValueNearest TextureValue = iota
	TextureValueLinear
	TextureValueLinearMipmapLinear
	TextureValueClampToEdge
	TextureValueRepeat
)

// Capability is a fixed-function state toggled with Enable and Disable.
type Capability int

const (
	CapabilityDepthTest Capability = iota
	CapabilityCullFace
	CapabilityBlend
)

// ClearMask selects the buffers Clear resets.
type ClearMask int

const (
	ClearColor ClearMask = 1 << iota
	ClearDepth
)

// FeedbackMode is how transform feedback varyings are captured.
// The zero value captures each varying into its own buffer.
type FeedbackMode int

const (
	FeedbackModeSeparateAttribs FeedbackMode = iota
	FeedbackModeInterleavedAttribs
)

// UniformType is the GPU type tag of an active uniform or attribute as reported by introspection.
type UniformType int

const (
	UniformTypeUnknown UniformType = iota
	UniformTypeFloat
	UniformTypeFloatVec2
	UniformTypeFloatVec3
	UniformTypeFloatVec4
	UniformTypeInt
	UniformTypeIntVec2
	UniformTypeIntVec3
	UniformTypeIntVec4
	UniformTypeBool
	UniformTypeBoolVec2
	UniformTypeBoolVec3
	UniformTypeBoolVec4
	UniformTypeFloatMat2
	UniformTypeFloatMat3
	UniformTypeFloatMat4
	UniformTypeSampler2D
	UniformTypeSamplerCube
)

// ActiveInfo describes one active uniform or attribute of a linked program.
type ActiveInfo struct {
	// Name is the name as reported by the driver, including any "[0]" array suffix.
	Name string
	// Size is the number of array elements, 1 for non-arrays.
	Size int
	// Type is the GPU type tag.
	Type UniformType
}
