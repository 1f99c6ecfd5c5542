package shader

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Carmen-Shannon/pika-go/common"
	"github.com/Carmen-Shannon/pika-go/engine/graphics"
)

// ShaderType identifies the pipeline stage a shader source is compiled for.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used in pair with a vertex shader.
	ShaderTypeFragment
)

var stages = map[ShaderType]graphics.ShaderStage{
	ShaderTypeVertex:   graphics.ShaderStageVertex,
	ShaderTypeFragment: graphics.ShaderStageFragment,
}

var (
	// ErrCompileFailure is wrapped by every error returned for a shader that failed to compile.
	ErrCompileFailure = errors.New("shader compile failure")

	// ErrLinkFailure is wrapped by every error returned for a program that failed to link.
	ErrLinkFailure = errors.New("program link failure")
)

// compiler is the implementation of the Compiler interface.
type compiler struct {
	ctx graphics.Context
	pp  PreProcessor
}

// Compiler turns shader source text into linked program handles.
// Failures never panic: they return the zero handle together with an error carrying the driver's info log,
// after releasing every object created along the way.
type Compiler interface {
	// Compile pre-processes and compiles a single shader stage.
	//
	// Parameters:
	//   - source: the shader source text
	//   - shaderType: the stage to compile for
	//
	// Returns:
	//   - graphics.Shader: the compiled shader, or the zero handle on failure
	//   - error: an error wrapping ErrCompileFailure if the driver rejected the source
	Compile(source string, shaderType ShaderType) (graphics.Shader, error)

	// Link attaches the shaders to a new program, applies the link options and links it.
	// Explicit attribute locations and transform feedback varyings take effect because they are declared before linking.
	// On failure the program and every given shader are deleted.
	//
	// Parameters:
	//   - shaders: compiled shaders to attach
	//   - options: link options (attribute locations, transform feedback varyings)
	//
	// Returns:
	//   - graphics.Program: the linked program, or the zero handle on failure
	//   - error: an error wrapping ErrLinkFailure if linking failed
	Link(shaders []graphics.Shader, options ...LinkOption) (graphics.Program, error)

	// CreateProgram compiles a vertex and a fragment source and links them.
	// If either stage fails to compile the other is released and no program is created.
	//
	// Parameters:
	//   - vertexSource: the vertex shader source
	//   - fragmentSource: the fragment shader source
	//   - options: link options
	//
	// Returns:
	//   - graphics.Program: the linked program, or the zero handle on failure
	//   - error: the compile or link error
	CreateProgram(vertexSource, fragmentSource string, options ...LinkOption) (graphics.Program, error)
}

var _ Compiler = &compiler{}

// NewCompiler creates a Compiler issuing its calls on ctx.
//
// Parameters:
//   - ctx: the graphics context
//   - options: functional options for the compiler
//
// Returns:
//   - Compiler: the compiler
func NewCompiler(ctx graphics.Context, options ...CompilerBuilderOption) Compiler {
	c := &compiler{
		ctx: ctx,
		pp:  NewPreProcessor(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *compiler) Compile(source string, shaderType ShaderType) (graphics.Shader, error) {
	s := c.ctx.CreateShader(stages[shaderType])
	c.ctx.ShaderSource(s, c.pp.Process(source))
	c.ctx.CompileShader(s)

	if !c.ctx.ShaderCompiled(s) {
		infoLog := c.ctx.ShaderInfoLog(s)
		c.ctx.DeleteShader(s)
		common.Logger().Debug("shader compile failed", "stage", shaderType, "log", infoLog)
		return 0, fmt.Errorf("%w: %s", ErrCompileFailure, infoLog)
	}
	return s, nil
}

func (c *compiler) Link(shaders []graphics.Shader, options ...LinkOption) (graphics.Program, error) {
	opts := linkOptions{}
	for _, option := range options {
		option(&opts)
	}

	p := c.ctx.CreateProgram()
	for _, s := range shaders {
		c.ctx.AttachShader(p, s)
	}

	names := make([]string, 0, len(opts.attribLocations))
	for name := range opts.attribLocations {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		c.ctx.BindAttribLocation(p, opts.attribLocations[name], name)
	}

	if len(opts.varyings) > 0 {
		c.ctx.TransformFeedbackVaryings(p, opts.varyings, opts.feedbackMode)
	}

	c.ctx.LinkProgram(p)
	if !c.ctx.ProgramLinked(p) {
		infoLog := c.ctx.ProgramInfoLog(p)
		c.ctx.DeleteProgram(p)
		for _, s := range shaders {
			c.ctx.DeleteShader(s)
		}
		common.Logger().Debug("program link failed", "log", infoLog)
		return 0, fmt.Errorf("%w: %s", ErrLinkFailure, infoLog)
	}
	return p, nil
}

func (c *compiler) CreateProgram(vertexSource, fragmentSource string, options ...LinkOption) (graphics.Program, error) {
	vs, err := c.Compile(vertexSource, ShaderTypeVertex)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := c.Compile(fragmentSource, ShaderTypeFragment)
	if err != nil {
		c.ctx.DeleteShader(vs)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	return c.Link([]graphics.Shader{vs, fs}, options...)
}
