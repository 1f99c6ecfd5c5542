package program

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/core/base/ordmap"

	"github.com/Carmen-Shannon/pika-go/common"
	"github.com/Carmen-Shannon/pika-go/engine/graphics"
	"github.com/Carmen-Shannon/pika-go/engine/renderer/buffer_info"
	"github.com/Carmen-Shannon/pika-go/engine/renderer/shader"
)

// Uniforms maps uniform logical names to values.
type Uniforms map[string]any

// programInfo is the unexported implementation of ProgramInfo.
type programInfo struct {
	ctx              graphics.Context
	program          graphics.Program
	uniformSetters   *ordmap.Map[string, *UniformSetter]
	attributeBinders *ordmap.Map[string, *AttributeBinder]
}

// ProgramInfo is the reflected interface of one linked program: a setter per active uniform and a binder per active attribute.
// It is built once by Reflect and never changes afterwards. Its setters and binders are only valid for that program.
type ProgramInfo interface {
	// Program returns the linked program handle.
	//
	// Returns:
	//   - graphics.Program: the program
	Program() graphics.Program

	// UniformSetters returns every uniform setter in name order.
	//
	// Returns:
	//   - []*UniformSetter: the setters
	UniformSetters() []*UniformSetter

	// UniformSetter returns the setter for a uniform logical name.
	//
	// Parameters:
	//   - name: the uniform name without any "[0]" suffix
	//
	// Returns:
	//   - *UniformSetter: the setter
	//   - bool: true if the program has that uniform
	UniformSetter(name string) (*UniformSetter, bool)

	// AttributeBinders returns every attribute binder in driver order.
	//
	// Returns:
	//   - []*AttributeBinder: the binders
	AttributeBinders() []*AttributeBinder

	// AttributeBinder returns the binder for an attribute name.
	//
	// Parameters:
	//   - name: the attribute name
	//
	// Returns:
	//   - *AttributeBinder: the binder
	//   - bool: true if the program has that attribute
	AttributeBinder(name string) (*AttributeBinder, bool)

	// SetUniforms applies each map in order, so later maps override earlier ones.
	// Within a map, names are applied in sorted order. Names without a setter are ignored.
	//
	// Accepted values: float32, float64, int, int32, bool, []float32, []float64, []int32, []int, []bool,
	// fixed size float32 and int32 arrays, mgl32 vectors and matrices, graphics.Texture and []graphics.Texture.
	//
	// Parameters:
	//   - values: uniform maps applied in order
	//
	// Returns:
	//   - error: an error wrapping ErrUniformValue for the first value that does not fit its uniform
	SetUniforms(values ...Uniforms) error

	// SetAttributes binds every attribute buffer that has a binder. Buffers without a binder are ignored.
	//
	// Parameters:
	//   - attribs: attribute buffers keyed by attribute name
	SetAttributes(attribs *ordmap.Map[string, buffer_info.AttribBuffer])
}

var _ ProgramInfo = &programInfo{}

// Reflect introspects a linked program and builds its ProgramInfo.
//
// Uniforms are ordered by logical name before texture units are handed out, so unit assignment does not depend
// on driver enumeration order. Sampler arrays take consecutive units from a counter shared by the whole program.
// Non-array samplers all share the unit that follows the last array unit, unless WithUniqueSamplerUnits is given.
// Uniforms of unsupported types and built-in "gl_" names get no setter.
//
// Parameters:
//   - ctx: the graphics context
//   - program: a linked program
//   - options: functional options for reflection
//
// Returns:
//   - ProgramInfo: the reflected interface
func Reflect(ctx graphics.Context, program graphics.Program, options ...ReflectBuilderOption) ProgramInfo {
	opts := reflectOptions{}
	for _, option := range options {
		option(&opts)
	}

	return &programInfo{
		ctx:              ctx,
		program:          program,
		uniformSetters:   reflectUniforms(ctx, program, opts),
		attributeBinders: reflectAttributes(ctx, program),
	}
}

// Create compiles and links a vertex and fragment source with compiler, then reflects the program.
//
// Parameters:
//   - ctx: the graphics context
//   - compiler: the compiler issuing calls on ctx
//   - vertexSource: the vertex shader source
//   - fragmentSource: the fragment shader source
//   - options: link options
//
// Returns:
//   - ProgramInfo: the reflected program
//   - error: the compile or link error
func Create(ctx graphics.Context, compiler shader.Compiler, vertexSource, fragmentSource string, options ...shader.LinkOption) (ProgramInfo, error) {
	p, err := compiler.CreateProgram(vertexSource, fragmentSource, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create program: %w", err)
	}
	return Reflect(ctx, p), nil
}

func reflectUniforms(ctx graphics.Context, program graphics.Program, opts reflectOptions) *ordmap.Map[string, *UniformSetter] {
	count := ctx.ActiveUniformCount(program)
	infos := make([]graphics.ActiveInfo, 0, count)
	for i := 0; i < count; i++ {
		info, ok := ctx.ActiveUniform(program, i)
		if !ok {
			break
		}
		if strings.HasPrefix(info.Name, "gl_") {
			continue
		}
		infos = append(infos, info)
	}
	slices.SortStableFunc(infos, func(a, b graphics.ActiveInfo) int {
		return strings.Compare(strings.TrimSuffix(a.Name, "[0]"), strings.TrimSuffix(b.Name, "[0]"))
	})

	setters := ordmap.New[string, *UniformSetter]()
	var unit uint32
	var sharedUnit []*UniformSetter
	for _, info := range infos {
		isArray := info.Size > 1 && strings.HasSuffix(info.Name, "[0]")
		name := strings.TrimSuffix(info.Name, "[0]")

		kind, ok := kindFor(info.Type, isArray)
		if !ok {
			common.Logger().Debug("uniform has no setter", "program", program, "uniform", name, "type", info.Type)
			continue
		}
		location := ctx.UniformLocation(program, info.Name)
		if location == graphics.NoLocation {
			continue
		}

		s := &UniformSetter{
			ctx:      ctx,
			Name:     name,
			Location: location,
			Type:     info.Type,
			Kind:     kind,
			Size:     info.Size,
		}
		if target, ok := samplerTargets[info.Type]; ok {
			s.Target = target
			switch {
			case kind == UniformKindSamplerArray:
				for range info.Size {
					s.Units = append(s.Units, unit)
					unit++
				}
			case opts.uniqueSamplerUnits:
				s.Units = []uint32{unit}
				unit++
			default:
				sharedUnit = append(sharedUnit, s)
			}
		}
		setters.Add(name, s)
	}

	// Known limitation: two non-array samplers used in one draw overwrite each other.
	for _, s := range sharedUnit {
		s.Units = []uint32{unit}
	}
	return setters
}

func reflectAttributes(ctx graphics.Context, program graphics.Program) *ordmap.Map[string, *AttributeBinder] {
	binders := ordmap.New[string, *AttributeBinder]()
	count := ctx.ActiveAttribCount(program)
	for i := 0; i < count; i++ {
		info, ok := ctx.ActiveAttrib(program, i)
		if !ok {
			break
		}
		if strings.HasPrefix(info.Name, "gl_") {
			continue
		}
		location := ctx.AttribLocation(program, info.Name)
		if location < 0 {
			continue
		}
		binders.Add(info.Name, &AttributeBinder{
			ctx:      ctx,
			Name:     info.Name,
			Location: uint32(location),
		})
	}
	return binders
}

func (p *programInfo) Program() graphics.Program {
	return p.program
}

func (p *programInfo) UniformSetters() []*UniformSetter {
	return p.uniformSetters.Values()
}

func (p *programInfo) UniformSetter(name string) (*UniformSetter, bool) {
	return p.uniformSetters.ValueByKeyTry(name)
}

func (p *programInfo) AttributeBinders() []*AttributeBinder {
	return p.attributeBinders.Values()
}

func (p *programInfo) AttributeBinder(name string) (*AttributeBinder, bool) {
	return p.attributeBinders.ValueByKeyTry(name)
}

func (p *programInfo) SetUniforms(values ...Uniforms) error {
	for _, u := range values {
		names := make([]string, 0, len(u))
		for name := range u {
			names = append(names, name)
		}
		slices.Sort(names)

		for _, name := range names {
			s, ok := p.uniformSetters.ValueByKeyTry(name)
			if !ok {
				continue
			}
			if err := s.Set(u[name]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *programInfo) SetAttributes(attribs *ordmap.Map[string, buffer_info.AttribBuffer]) {
	for _, kv := range attribs.Order {
		if b, ok := p.attributeBinders.ValueByKeyTry(kv.Key); ok {
			b.Bind(kv.Value)
		}
	}
}
