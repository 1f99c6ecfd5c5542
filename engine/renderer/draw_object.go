package renderer

import (
	"github.com/Carmen-Shannon/pika-go/engine/graphics"
	"github.com/Carmen-Shannon/pika-go/engine/renderer/buffer_info"
	"github.com/Carmen-Shannon/pika-go/engine/renderer/program"
)

// DrawObject is one entry of a draw list. The zero value of every optional field selects its default:
// active, triangles, the whole buffer set and no instancing.
type DrawObject struct {
	// Inactive objects are skipped.
	Inactive bool
	// Topology is the primitive assembly mode.
	Topology graphics.Topology
	// ProgramInfo is the program to draw with.
	ProgramInfo program.ProgramInfo
	// BufferInfo is the geometry to draw.
	BufferInfo buffer_info.BufferInfo
	// Uniforms are applied in order, so shared maps can be layered under per-object ones.
	Uniforms []program.Uniforms
	// Offset is the first vertex, or the byte offset into the index buffer for indexed sets.
	Offset int
	// Count is the number of elements to draw, 0 for all of them.
	Count int
	// InstanceCount draws instanced when greater than 0.
	InstanceCount int
}

// FrameStats counts the work a Renderer has submitted.
type FrameStats struct {
	// Objects is the number of draw list entries visited.
	Objects int
	// Skipped is the number of inactive entries.
	Skipped int
	// DrawCalls is the number of draw calls issued.
	DrawCalls int
	// ProgramBinds is the number of program switches.
	ProgramBinds int
	// BufferBinds is the number of buffer set bindings.
	BufferBinds int
}
