package renderer

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithViewport sets the initial viewport, as Resize would.
//
// Parameters:
//   - width: the drawable width in pixels
//   - height: the drawable height in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the viewport option to a renderer
func WithViewport(width, height int) RendererBuilderOption {
	return func(r *renderer) {
		r.ctx.Viewport(0, 0, width, height)
	}
}
