package buffer_info

import "github.com/Carmen-Shannon/pika-go/engine/graphics"

// BufferInfoBuilderOption is a functional option used to configure a BufferInfo during construction.
type BufferInfoBuilderOption func(*bufferInfo)

// WithAttribPrefix sets the prefix prepended to every array name to form its attribute binding name,
// so "position" becomes "a_position" with prefix "a_". The default is no prefix.
//
// Parameters:
//   - prefix: the attribute name prefix
//
// Returns:
//   - BufferInfoBuilderOption: a function that sets the prefix
func WithAttribPrefix(prefix string) BufferInfoBuilderOption {
	return func(b *bufferInfo) {
		b.prefix = prefix
	}
}

// WithUsage sets the usage hint every buffer is created with. The default is static draw.
//
// Parameters:
//   - usage: the usage hint
//
// Returns:
//   - BufferInfoBuilderOption: a function that sets the usage hint
func WithUsage(usage graphics.BufferUsage) BufferInfoBuilderOption {
	return func(b *bufferInfo) {
		b.usage = usage
	}
}

// WithLabel sets the debug label of the set.
//
// Parameters:
//   - label: the label
//
// Returns:
//   - BufferInfoBuilderOption: a function that sets the label
func WithLabel(label string) BufferInfoBuilderOption {
	return func(b *bufferInfo) {
		b.label = label
	}
}
