package texture

import "github.com/gogpu/gg/text"

// SynthesizerBuilderOption is a functional option for configuring a Synthesizer via NewSynthesizer.
type SynthesizerBuilderOption func(*synthesizer)

// WithWorkers is an option builder that sets how many images RasterizeBatch draws at once. The default is 4.
//
// Parameters:
//   - n: the number of workers, values below 1 are treated as 1
//
// Returns:
//   - SynthesizerBuilderOption: a function that applies the worker count to a synthesizer
func WithWorkers(n int) SynthesizerBuilderOption {
	return func(s *synthesizer) {
		s.workers = max(n, 1)
	}
}

// WithFontSource is an option builder that sets the font text textures are drawn with. The default is Go Regular.
//
// Parameters:
//   - source: the font source
//
// Returns:
//   - SynthesizerBuilderOption: a function that applies the font to a synthesizer
func WithFontSource(source *text.FontSource) SynthesizerBuilderOption {
	return func(s *synthesizer) {
		s.fontSource = source
	}
}
