package renderer

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/pika-go/common"
	"github.com/Carmen-Shannon/pika-go/engine/graphics"
	"github.com/Carmen-Shannon/pika-go/engine/renderer/buffer_info"
	"github.com/Carmen-Shannon/pika-go/engine/renderer/program"
)

// ErrIncompleteObject is returned for an active DrawObject without a ProgramInfo or BufferInfo.
var ErrIncompleteObject = errors.New("draw object is missing its program or buffers")

// renderer is the implementation of the Renderer interface.
// It is not safe for concurrent use; every call must come from the goroutine owning the graphics context.
type renderer struct {
	ctx graphics.Context

	// lastProgram and lastBuffers are what the GPU currently has bound, as far as this renderer knows.
	lastProgram program.ProgramInfo
	lastBuffers buffer_info.BufferInfo

	stats FrameStats
}

// Renderer submits draw calls for lists of DrawObjects while skipping redundant program and buffer binds.
//
// The renderer remembers the last bound program and buffer set across DrawObjects calls. It assumes nothing
// else changes those bindings in between; call Invalidate after doing so.
type Renderer interface {
	// DrawObjects draws every active object in order, one draw call each.
	// The program is only switched when an object's ProgramInfo differs from the last bound one, and attributes are
	// only rebound when the program switched or the BufferInfo differs. Uniforms are applied for every object.
	// A trailing captured vertex array is unbound after the pass.
	//
	// Parameters:
	//   - objects: the objects to draw, in draw order
	//
	// Returns:
	//   - error: ErrIncompleteObject or a uniform value error, naming the object index; the pass stops there
	DrawObjects(objects []DrawObject) error

	// DrawBufferInfo issues one draw call for a buffer set whose attributes are already bound.
	// Sets with an index buffer or element type draw indexed, defaulting to 16-bit indices; others draw arrays.
	//
	// Parameters:
	//   - bi: the buffer set
	//   - topology: the primitive assembly mode
	//   - count: the number of elements to draw, 0 for the set's element count
	//   - offset: the first vertex for array draws, or the byte offset into the index buffer for indexed draws
	//   - instanceCount: the number of instances, 0 for a non-instanced draw
	DrawBufferInfo(bi buffer_info.BufferInfo, topology graphics.Topology, count, offset, instanceCount int)

	// SetBuffersAndAttributes binds a buffer set for a program: its captured vertex array if it has one,
	// otherwise every attribute the program consumes plus the index buffer.
	//
	// Parameters:
	//   - pi: the program the attributes are bound for
	//   - bi: the buffer set
	SetBuffersAndAttributes(pi program.ProgramInfo, bi buffer_info.BufferInfo)

	// SetUniforms applies uniform maps in order to the program, which must be in use.
	//
	// Parameters:
	//   - pi: the program
	//   - values: uniform maps, later maps override earlier ones
	//
	// Returns:
	//   - error: an error wrapping program.ErrUniformValue for a value that does not fit its uniform
	SetUniforms(pi program.ProgramInfo, values ...program.Uniforms) error

	// CreateVertexArrayInfo records the bindings of a buffer set for a program into a new vertex array
	// and returns a copy of the set that draws through it.
	//
	// Parameters:
	//   - pi: the program the attributes are bound for
	//   - bi: the buffer set
	//
	// Returns:
	//   - buffer_info.BufferInfo: the set with its captured vertex array
	CreateVertexArrayInfo(pi program.ProgramInfo, bi buffer_info.BufferInfo) buffer_info.BufferInfo

	// Invalidate forgets the cached program and buffer bindings so the next object binds from scratch.
	Invalidate()

	// Stats returns the counters accumulated since the last ResetStats.
	//
	// Returns:
	//   - FrameStats: the counters
	Stats() FrameStats

	// ResetStats zeroes the counters.
	ResetStats()

	// Resize sets the viewport to cover a drawable of the given size.
	//
	// Parameters:
	//   - width: the drawable width in pixels
	//   - height: the drawable height in pixels
	Resize(width, height int)
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer issuing its calls on ctx.
//
// Parameters:
//   - ctx: the graphics context
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the renderer
func NewRenderer(ctx graphics.Context, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		ctx: ctx,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *renderer) DrawObjects(objects []DrawObject) error {
	err := r.drawObjects(objects)

	if r.lastBuffers != nil && r.lastBuffers.VertexArray() != 0 {
		r.ctx.BindVertexArray(0)
		r.lastBuffers = nil
	}
	return err
}

func (r *renderer) drawObjects(objects []DrawObject) error {
	for i := range objects {
		obj := &objects[i]
		r.stats.Objects++
		if obj.Inactive {
			r.stats.Skipped++
			continue
		}
		if obj.ProgramInfo == nil || obj.BufferInfo == nil {
			return fmt.Errorf("%w: object %d", ErrIncompleteObject, i)
		}

		bindBuffers := false
		if obj.ProgramInfo != r.lastProgram {
			r.lastProgram = obj.ProgramInfo
			r.ctx.UseProgram(obj.ProgramInfo.Program())
			r.stats.ProgramBinds++
			bindBuffers = true
		}

		if bindBuffers || obj.BufferInfo != r.lastBuffers {
			if r.lastBuffers != nil && r.lastBuffers.VertexArray() != 0 && obj.BufferInfo.VertexArray() == 0 {
				r.ctx.BindVertexArray(0)
			}
			r.lastBuffers = obj.BufferInfo
			r.SetBuffersAndAttributes(obj.ProgramInfo, obj.BufferInfo)
		}

		if err := obj.ProgramInfo.SetUniforms(obj.Uniforms...); err != nil {
			return fmt.Errorf("draw object %d: %w", i, err)
		}

		r.DrawBufferInfo(obj.BufferInfo, obj.Topology, obj.Count, obj.Offset, obj.InstanceCount)
	}
	return nil
}

func (r *renderer) DrawBufferInfo(bi buffer_info.BufferInfo, topology graphics.Topology, count, offset, instanceCount int) {
	count = common.Coalesce(count, bi.NumElements())
	r.stats.DrawCalls++

	if bi.Indices() != 0 || bi.ElementType() != graphics.DataTypeUnspecified {
		elementType := common.Coalesce(bi.ElementType(), graphics.DataTypeUnsignedShort)
		if instanceCount > 0 {
			r.ctx.DrawElementsInstanced(topology, count, elementType, offset, instanceCount)
			return
		}
		r.ctx.DrawElements(topology, count, elementType, offset)
		return
	}

	if instanceCount > 0 {
		r.ctx.DrawArraysInstanced(topology, offset, count, instanceCount)
		return
	}
	r.ctx.DrawArrays(topology, offset, count)
}

func (r *renderer) SetBuffersAndAttributes(pi program.ProgramInfo, bi buffer_info.BufferInfo) {
	r.stats.BufferBinds++
	if vao := bi.VertexArray(); vao != 0 {
		r.ctx.BindVertexArray(vao)
		return
	}
	pi.SetAttributes(bi.Attribs())
	if indices := bi.Indices(); indices != 0 {
		r.ctx.BindBuffer(graphics.BufferTargetElementArray, indices)
	}
}

func (r *renderer) SetUniforms(pi program.ProgramInfo, values ...program.Uniforms) error {
	return pi.SetUniforms(values...)
}

func (r *renderer) CreateVertexArrayInfo(pi program.ProgramInfo, bi buffer_info.BufferInfo) buffer_info.BufferInfo {
	vao := r.ctx.CreateVertexArray()
	r.ctx.BindVertexArray(vao)
	pi.SetAttributes(bi.Attribs())
	if indices := bi.Indices(); indices != 0 {
		r.ctx.BindBuffer(graphics.BufferTargetElementArray, indices)
	}
	r.ctx.BindVertexArray(0)
	r.lastBuffers = nil

	common.Logger().Debug("vertex array captured", "label", bi.Label(), "vertexArray", vao)
	return bi.WithVertexArray(vao)
}

func (r *renderer) Invalidate() {
	r.lastProgram = nil
	r.lastBuffers = nil
}

func (r *renderer) Stats() FrameStats {
	return r.stats
}

func (r *renderer) ResetStats() {
	r.stats = FrameStats{}
}

func (r *renderer) Resize(width, height int) {
	r.ctx.Viewport(0, 0, width, height)
}
