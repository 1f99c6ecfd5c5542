package buffer_info

import (
	"errors"
	"fmt"

	"cogentcore.org/core/base/ordmap"

	"github.com/Carmen-Shannon/pika-go/common"
	"github.com/Carmen-Shannon/pika-go/engine/arrays"
	"github.com/Carmen-Shannon/pika-go/engine/graphics"
)

var (
	// ErrUnknownBuffer is returned when a write names a buffer the set does not hold.
	ErrUnknownBuffer = errors.New("unknown buffer")

	// ErrElementCountMismatch is returned when attribute arrays disagree on their element count.
	ErrElementCountMismatch = errors.New("attribute element counts differ")
)

// AttribBuffer describes how one vertex attribute is read from a GPU buffer.
type AttribBuffer struct {
	// Buffer is the vertex buffer holding the attribute data.
	Buffer graphics.Buffer
	// NumComponents is the number of scalars per vertex. When zero, Size is used instead.
	NumComponents int
	// Size is the fallback component count.
	Size int
	// Type is the scalar type. When unspecified, float is assumed.
	Type graphics.DataType
	// Normalize maps integer data to [0, 1] or [-1, 1] when read by the shader.
	Normalize bool
	// Stride is the byte distance between consecutive vertices, 0 for tightly packed.
	Stride int
	// Offset is the byte offset of the first vertex in the buffer.
	Offset int
}

// bufferInfo is the unexported implementation of BufferInfo.
type bufferInfo struct {
	ctx graphics.Context

	// label is a debug label added for convenience.
	label string

	// attribs maps binding names to their buffers, in the order the source arrays were given.
	attribs *ordmap.Map[string, AttribBuffer]
	// indices is the element buffer, or the zero handle for non-indexed sets.
	indices graphics.Buffer
	// elementType is the index scalar type, unspecified for non-indexed sets.
	elementType graphics.DataType
	// numElements is the index count, or the vertex count for non-indexed sets.
	numElements int
	// vertexArray is the captured vertex state, or the zero handle.
	vertexArray graphics.VertexArray
	// shared marks a copy that borrows its buffers from another set and only owns its vertex array.
	shared bool

	prefix string
	usage  graphics.BufferUsage
}

// BufferInfo is a set of GPU buffers built from named arrays, ready to be bound to a program's attributes.
// It records everything a draw call needs: the attribute buffers and their layouts, the optional index
// buffer and its type, and the number of elements to draw.
type BufferInfo interface {
	// Release deletes the GPU buffers and the captured vertex array held by this set.
	// A set returned by WithVertexArray only deletes its vertex array.
	Release()

	// Label returns the debug label for this set.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// Attribs returns the attribute buffers keyed by binding name, in insertion order.
	// The map must not be modified.
	//
	// Returns:
	//   - *ordmap.Map[string, AttribBuffer]: the attribute buffers
	Attribs() *ordmap.Map[string, AttribBuffer]

	// Attrib returns the attribute buffer bound under name.
	//
	// Parameters:
	//   - name: the binding name, including the attribute prefix
	//
	// Returns:
	//   - AttribBuffer: the attribute buffer
	//   - bool: true if the set has that attribute
	Attrib(name string) (AttribBuffer, bool)

	// Indices returns the element buffer, or the zero handle if the set is not indexed.
	//
	// Returns:
	//   - graphics.Buffer: the element buffer
	Indices() graphics.Buffer

	// ElementType returns the index scalar type, or DataTypeUnspecified if the set is not indexed.
	//
	// Returns:
	//   - graphics.DataType: the index type
	ElementType() graphics.DataType

	// NumElements returns the number of indices, or of vertices when the set is not indexed.
	//
	// Returns:
	//   - int: the element count
	NumElements() int

	// VertexArray returns the captured vertex state, or the zero handle if none was captured.
	//
	// Returns:
	//   - graphics.VertexArray: the vertex array
	VertexArray() graphics.VertexArray

	// WithVertexArray returns a copy of the set that draws through the given captured vertex state.
	// The copy shares this set's buffers.
	//
	// Parameters:
	//   - vao: the vertex array holding this set's bindings
	//
	// Returns:
	//   - BufferInfo: the copy
	WithVertexArray(vao graphics.VertexArray) BufferInfo

	// WriteBuffers uploads sub-ranges into the set's buffers, for geometry that is streamed or edited in place.
	// Writes must stay inside the storage allocated when the set was built.
	// An index write first binds the set's own vertex array (the default one when none was captured),
	// so no other vertex array's index binding is replaced. Callers drawing through a renderer
	// must invalidate its cached bindings afterwards.
	//
	// Parameters:
	//   - writes: the writes to perform, in order
	//
	// Returns:
	//   - error: an error wrapping ErrUnknownBuffer if a write names a buffer the set does not hold
	WriteBuffers(writes ...BufferWrite) error
}

var _ BufferInfo = &bufferInfo{}

// NewBufferInfo uploads every array in set into its own GPU buffer.
// Every entry except "indices" becomes an attribute named prefix+name; "indices" becomes the element buffer.
// Integer byte data is marked normalized. The element count is the index count when indexed,
// otherwise the element count of the first array.
//
// Parameters:
//   - ctx: the graphics context
//   - set: the named arrays
//   - options: functional options (attribute prefix, usage, label)
//
// Returns:
//   - BufferInfo: the uploaded set
//   - error: an error wrapping ErrElementCountMismatch if the attribute arrays disagree on their element count
func NewBufferInfo(ctx graphics.Context, set *arrays.Arrays, options ...BufferInfoBuilderOption) (BufferInfo, error) {
	b := &bufferInfo{
		ctx:     ctx,
		attribs: ordmap.New[string, AttribBuffer](),
		usage:   graphics.BufferUsageStaticDraw,
	}
	for _, option := range options {
		option(b)
	}

	vertexCount := -1
	for _, kv := range set.Order {
		if kv.Key == arrays.Indices {
			continue
		}
		if vertexCount >= 0 && kv.Value.NumElements() != vertexCount {
			return nil, fmt.Errorf("%w: %q has %d elements, expected %d", ErrElementCountMismatch, kv.Key, kv.Value.NumElements(), vertexCount)
		}
		if vertexCount < 0 {
			vertexCount = kv.Value.NumElements()
		}
	}

	for _, kv := range set.Order {
		a := kv.Value
		if kv.Key == arrays.Indices {
			b.indices = b.upload(graphics.BufferTargetElementArray, a.Bytes())
			b.elementType = a.DataType()
			b.numElements = a.Len()
			continue
		}
		dataType := a.DataType()
		b.attribs.Add(b.prefix+kv.Key, AttribBuffer{
			Buffer:        b.upload(graphics.BufferTargetArray, a.Bytes()),
			NumComponents: a.NumComponents(),
			Type:          dataType,
			Normalize:     dataType == graphics.DataTypeByte || dataType == graphics.DataTypeUnsignedByte,
		})
	}

	if b.indices == 0 {
		b.numElements = max(vertexCount, 0)
	}

	common.Logger().Debug("buffer set created",
		"label", b.label,
		"attributes", b.attribs.Keys(),
		"indexed", b.indices != 0,
		"elements", b.numElements,
	)
	return b, nil
}

func (b *bufferInfo) upload(target graphics.BufferTarget, data []byte) graphics.Buffer {
	buf := b.ctx.CreateBuffer()
	b.ctx.BindBuffer(target, buf)
	b.ctx.BufferData(target, data, b.usage)
	return buf
}

func (b *bufferInfo) Label() string {
	return b.label
}

func (b *bufferInfo) Attribs() *ordmap.Map[string, AttribBuffer] {
	return b.attribs
}

func (b *bufferInfo) Attrib(name string) (AttribBuffer, bool) {
	return b.attribs.ValueByKeyTry(name)
}

func (b *bufferInfo) Indices() graphics.Buffer {
	return b.indices
}

func (b *bufferInfo) ElementType() graphics.DataType {
	return b.elementType
}

func (b *bufferInfo) NumElements() int {
	return b.numElements
}

func (b *bufferInfo) VertexArray() graphics.VertexArray {
	return b.vertexArray
}

func (b *bufferInfo) WithVertexArray(vao graphics.VertexArray) BufferInfo {
	c := *b
	c.vertexArray = vao
	c.shared = true
	return &c
}

func (b *bufferInfo) WriteBuffers(writes ...BufferWrite) error {
	for _, w := range writes {
		target := graphics.BufferTargetArray
		var buf graphics.Buffer
		if w.Name == arrays.Indices {
			target = graphics.BufferTargetElementArray
			buf = b.indices
			if buf != 0 {
				b.ctx.BindVertexArray(b.vertexArray)
			}
		} else if attrib, ok := b.attribs.ValueByKeyTry(w.Name); ok {
			buf = attrib.Buffer
		}
		if buf == 0 {
			return fmt.Errorf("%w: %q in buffer set %q", ErrUnknownBuffer, w.Name, b.label)
		}
		b.ctx.BindBuffer(target, buf)
		b.ctx.BufferSubData(target, w.Offset, w.Data)
	}
	return nil
}

func (b *bufferInfo) Release() {
	if b.vertexArray != 0 {
		b.ctx.DeleteVertexArray(b.vertexArray)
		b.vertexArray = 0
	}
	if b.shared {
		return
	}
	for _, kv := range b.attribs.Order {
		b.ctx.DeleteBuffer(kv.Value.Buffer)
	}
	b.attribs.Reset()
	if b.indices != 0 {
		b.ctx.DeleteBuffer(b.indices)
		b.indices = 0
	}
}
