package shader

import "github.com/Carmen-Shannon/pika-go/engine/graphics"

// CompilerBuilderOption is a functional option for configuring a Compiler.
type CompilerBuilderOption func(*compiler)

// WithPreProcessor replaces the default pre-processor, which only strips a leading blank line.
//
// Parameters:
//   - pp: the pre-processor applied to every source before compilation
//
// Returns:
//   - CompilerBuilderOption: the option
func WithPreProcessor(pp PreProcessor) CompilerBuilderOption {
	return func(c *compiler) {
		c.pp = pp
	}
}

type linkOptions struct {
	attribLocations map[string]uint32
	varyings        []string
	feedbackMode    graphics.FeedbackMode
}

// LinkOption configures a single Link call.
type LinkOption func(*linkOptions)

// WithAttribLocations pins attributes to explicit slots before linking.
//
// Parameters:
//   - locations: attribute names mapped to slot indices
//
// Returns:
//   - LinkOption: the option
func WithAttribLocations(locations map[string]uint32) LinkOption {
	return func(o *linkOptions) {
		o.attribLocations = locations
	}
}

// WithTransformFeedbackVaryings declares the vertex outputs captured by transform feedback.
// The capture mode defaults to one buffer per varying.
//
// Parameters:
//   - varyings: the output variable names
//
// Returns:
//   - LinkOption: the option
func WithTransformFeedbackVaryings(varyings ...string) LinkOption {
	return func(o *linkOptions) {
		o.varyings = varyings
	}
}

// WithTransformFeedbackMode sets how declared varyings are captured.
//
// Parameters:
//   - mode: separate or interleaved capture
//
// Returns:
//   - LinkOption: the option
func WithTransformFeedbackMode(mode graphics.FeedbackMode) LinkOption {
	return func(o *linkOptions) {
		o.feedbackMode = mode
	}
}
