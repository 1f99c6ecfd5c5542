package program

import (
	"github.com/Carmen-Shannon/pika-go/common"
	"github.com/Carmen-Shannon/pika-go/engine/graphics"
	"github.com/Carmen-Shannon/pika-go/engine/renderer/buffer_info"
)

// AttributeBinder feeds one active attribute slot of a linked program from a vertex buffer.
type AttributeBinder struct {
	ctx graphics.Context

	// Name is the attribute name.
	Name string
	// Location is the attribute slot.
	Location uint32
}

// Bind binds the attribute's buffer, enables the slot and declares its layout.
// The component count falls back to Size, the type to float.
//
// Parameters:
//   - attrib: the buffer and layout to read from
func (b *AttributeBinder) Bind(attrib buffer_info.AttribBuffer) {
	b.ctx.BindBuffer(graphics.BufferTargetArray, attrib.Buffer)
	b.ctx.EnableVertexAttribArray(b.Location)
	b.ctx.VertexAttribPointer(
		b.Location,
		common.Coalesce(attrib.NumComponents, attrib.Size),
		common.Coalesce(attrib.Type, graphics.DataTypeFloat),
		attrib.Normalize,
		attrib.Stride,
		attrib.Offset,
	)
}
