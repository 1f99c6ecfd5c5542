package shader

// PreProcessorBuilderOption is a functional option for configuring a PreProcessor.
type PreProcessorBuilderOption func(*preProcessor)

// WithVersion replaces the source's #version directive, or adds one when missing.
// For example "410 core" lets "300 es" sources compile against a desktop OpenGL 4.1 core context.
//
// Parameters:
//   - version: the directive argument, without "#version"
//
// Returns:
//   - PreProcessorBuilderOption: the option
func WithVersion(version string) PreProcessorBuilderOption {
	return func(p *preProcessor) {
		p.version = version
	}
}

// WithDefines injects "#define name value" lines after the #version directive, in name order.
//
// Parameters:
//   - defines: macro names mapped to their replacement text
//
// Returns:
//   - PreProcessorBuilderOption: the option
func WithDefines(defines map[string]string) PreProcessorBuilderOption {
	return func(p *preProcessor) {
		for name, value := range defines {
			p.defines[name] = value
		}
	}
}
