package primitive

import (
	"fmt"

	"github.com/Carmen-Shannon/pika-go/common"
	"github.com/Carmen-Shannon/pika-go/engine/graphics"
	"github.com/Carmen-Shannon/pika-go/engine/renderer/buffer_info"
)

// primitive is the implementation of the Primitive interface.
type primitive struct {
	name          string
	shape         Shape
	bufferInfo    buffer_info.BufferInfo
	bufferOptions []buffer_info.BufferInfoBuilderOption
}

// Primitive is a generated shape uploaded to the GPU, ready to be referenced by draw objects.
type Primitive interface {
	// Name retrieves the primitive identifier, used as the buffer set label.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Shape retrieves the parameters the primitive was generated from.
	//
	// Returns:
	//   - Shape: the shape
	Shape() Shape

	// BufferInfo retrieves the uploaded buffer set.
	//
	// Returns:
	//   - buffer_info.BufferInfo: the buffer set
	BufferInfo() buffer_info.BufferInfo

	// Release deletes the GPU buffers of the primitive.
	Release()
}

var _ Primitive = &primitive{}

// NewPrimitive generates the vertices of shape and uploads them.
//
// Parameters:
//   - ctx: the graphics context
//   - shape: the shape to generate
//   - options: variadic list of PrimitiveBuilderOption functions to configure the Primitive
//
// Returns:
//   - Primitive: the uploaded primitive
//   - error: error if the buffer set could not be built
func NewPrimitive(ctx graphics.Context, shape Shape, options ...PrimitiveBuilderOption) (Primitive, error) {
	p := &primitive{
		name:  fmt.Sprintf("%T", shape),
		shape: shape,
	}
	for _, option := range options {
		option(p)
	}

	bi, err := NewBufferInfo(ctx, shape, append([]buffer_info.BufferInfoBuilderOption{buffer_info.WithLabel(p.name)}, p.bufferOptions...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create primitive %q: %w", p.name, err)
	}
	p.bufferInfo = bi

	common.Logger().Debug("primitive created", "name", p.name, "elements", bi.NumElements())
	return p, nil
}

// NewBufferInfo generates the vertices of shape and uploads them as a buffer set.
//
// Parameters:
//   - ctx: the graphics context
//   - shape: the shape to generate
//   - options: buffer set options such as an attribute prefix
//
// Returns:
//   - buffer_info.BufferInfo: the buffer set
//   - error: error if the buffer set could not be built
func NewBufferInfo(ctx graphics.Context, shape Shape, options ...buffer_info.BufferInfoBuilderOption) (buffer_info.BufferInfo, error) {
	return buffer_info.NewBufferInfo(ctx, shape.Vertices(), options...)
}

func (p *primitive) Name() string {
	return p.name
}

func (p *primitive) Shape() Shape {
	return p.shape
}

func (p *primitive) BufferInfo() buffer_info.BufferInfo {
	return p.bufferInfo
}

func (p *primitive) Release() {
	p.bufferInfo.Release()
}
