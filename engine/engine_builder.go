package engine

import (
	"image/color"
	"time"

	"github.com/Carmen-Shannon/pika-go/engine/graphics"
	"github.com/Carmen-Shannon/pika-go/engine/profiler"
	"github.com/Carmen-Shannon/pika-go/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables frame statistics output.
//
// Parameters:
//   - enabled: if true, enables profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler.
//
// Parameters:
//   - p: the profiler
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithTickRate sets the logic tick rate in ticks per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithWindow sets a configured window rather than letting the engine open a default one.
// The window's context must be current on the calling goroutine.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithContext sets the graphics context rather than loading OpenGL for the window.
//
// Parameters:
//   - ctx: the graphics context
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithContext(ctx graphics.Context) EngineBuilderOption {
	return func(e *engine) {
		e.ctx = ctx
	}
}

// WithLayer registers a layer at the given key during engine construction.
//
// Parameters:
//   - key: the draw order (lower draws first)
//   - l: the layer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLayer(key int, l Layer) EngineBuilderOption {
	return func(e *engine) {
		e.layers[key] = l
	}
}

// WithClearColor sets the color the framebuffer is cleared to each frame. The default is black.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClearColor(c color.Color) EngineBuilderOption {
	return func(e *engine) {
		e.clearColor = c
	}
}

// WithDepthTest sets whether depth testing is enabled. The default is enabled.
//
// Parameters:
//   - enabled: true to enable depth testing
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDepthTest(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.depthTest = enabled
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Second / time.Duration(fps)
	}
}
