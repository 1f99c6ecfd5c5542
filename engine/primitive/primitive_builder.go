package primitive

import "github.com/Carmen-Shannon/pika-go/engine/renderer/buffer_info"

// PrimitiveBuilderOption is a functional option for configuring a Primitive via NewPrimitive.
type PrimitiveBuilderOption func(*primitive)

// WithName is an option builder that sets the name of the Primitive.
// The default is the Go type name of the shape.
//
// Parameters:
//   - name: the primitive identifier
//
// Returns:
//   - PrimitiveBuilderOption: a function that applies the name option to a primitive
func WithName(name string) PrimitiveBuilderOption {
	return func(p *primitive) {
		p.name = name
	}
}

// WithBufferOptions is an option builder that forwards options to the buffer set of the Primitive.
//
// Parameters:
//   - options: the buffer set options
//
// Returns:
//   - PrimitiveBuilderOption: a function that applies the buffer options to a primitive
func WithBufferOptions(options ...buffer_info.BufferInfoBuilderOption) PrimitiveBuilderOption {
	return func(p *primitive) {
		p.bufferOptions = append(p.bufferOptions, options...)
	}
}
