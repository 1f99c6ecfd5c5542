package engine

import (
	"fmt"
	"image/color"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/pika-go/common"
	"github.com/Carmen-Shannon/pika-go/engine/graphics"
	"github.com/Carmen-Shannon/pika-go/engine/profiler"
	"github.com/Carmen-Shannon/pika-go/engine/renderer"
	"github.com/Carmen-Shannon/pika-go/engine/window"
)

// engine implements the Engine interface.
// Logic ticks run on their own goroutine; frames run on the window goroutine, which owns the graphics context.
type engine struct {
	tickRateChannel chan time.Duration

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once

	window   window.Window
	ctx      graphics.Context
	renderer renderer.Renderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	layers     map[int]Layer
	clearColor color.Color
	depthTest  bool

	lastFrame        time.Time
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine owns a window, its graphics context and a renderer, and runs the frame and tick loops.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Context returns the graphics context of the window.
	//
	// Returns:
	//   - graphics.Context: the context
	Context() graphics.Context

	// Renderer returns the renderer drawing the layers.
	//
	// Returns:
	//   - renderer.Renderer: the renderer
	Renderer() renderer.Renderer

	// EnableProfiler enables frame statistics output to the log.
	EnableProfiler()

	// DisableProfiler disables frame statistics output.
	DisableProfiler()

	// SetTickRate sets the logic tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each logic tick, on the tick goroutine.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each frame on the window goroutine, before the layers are drawn.
	// It may make graphics calls.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// SetClearColor sets the color the framebuffer is cleared to each frame.
	//
	// Parameters:
	//   - c: the clear color
	SetClearColor(c color.Color)

	// AddLayer registers a layer at the given key, replacing any layer there.
	//
	// Parameters:
	//   - key: the draw order (lower draws first)
	//   - l: the layer
	AddLayer(key int, l Layer)

	// RemoveLayer removes the layer at the given key.
	//
	// Parameters:
	//   - key: the key of the layer to remove
	RemoveLayer(key int)

	// Layer retrieves the layer at the given key, or nil.
	//
	// Parameters:
	//   - key: the key
	//
	// Returns:
	//   - Layer: the layer or nil
	Layer(key int) Layer

	// Layers returns a copy of all registered layers.
	//
	// Returns:
	//   - map[int]Layer: the layers by key
	Layers() map[int]Layer

	// Run starts the loops and blocks until the window closes or Quit is called.
	Run()

	// Quit stops the loops. Safe to call multiple times and from any goroutine.
	Quit()
}

// NewEngine creates a new Engine. Without WithWindow it opens a default window, and without WithContext it loads
// OpenGL for the window's context. Panics when either cannot be created.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		layers:          make(map[int]Layer),
		profiler:        profiler.NewProfiler(),
		engineTickRate:  time.Second / 60,
		clearColor:      color.Black,
		depthTest:       true,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		e.window = window.NewWindow()
	}
	if e.ctx == nil {
		ctx, err := graphics.NewGLContext()
		if err != nil {
			panic(fmt.Sprintf("failed to create graphics context: %v", err))
		}
		e.ctx = ctx
	}
	e.renderer = renderer.NewRenderer(e.ctx, renderer.WithViewport(e.window.Width(), e.window.Height()))
	if e.depthTest {
		e.ctx.Enable(graphics.CapabilityDepthTest)
	}
	e.SetClearColor(e.clearColor)

	e.window.SetResizeCallback(e.resize)
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Context() graphics.Context {
	return e.ctx
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Run() {
	e.running = true
	e.lastFrame = time.Now()
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleQuit()

	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()

	e.signalQuit()
	e.wg.Wait()
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handleEngine runs the fixed-rate logic tick loop in its own goroutine.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleQuit blocks until the quit channel is closed.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// frame renders one frame on the window goroutine. A panic quits the engine instead of crashing the process.
func (e *engine) frame() {
	select {
	case <-e.quitChannel:
		if err := e.window.Close(); err != nil {
			common.Logger().Warn("window close failed", "error", err)
		}
		return
	default:
	}

	defer func() {
		if r := recover(); r != nil {
			common.Logger().Error("frame recovered from panic", "panic", r)
			e.signalQuit()
		}
	}()

	now := time.Now()
	dt := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now

	e.ctx.Clear(graphics.ClearColor | graphics.ClearDepth)

	if e.renderCallback != nil {
		e.renderCallback(dt)
	}

	for _, key := range slices.Sorted(maps.Keys(e.layers)) {
		l := e.layers[key]
		if !l.Active() {
			continue
		}
		if err := e.renderer.DrawObjects(l.DrawObjects()); err != nil {
			common.Logger().Error("layer draw failed", "layer", key, "error", err)
		}
	}

	stats := e.renderer.Stats()
	e.renderer.ResetStats()
	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(stats)
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(now); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// resize follows framebuffer size changes with the viewport and forwards them to resizable layers.
func (e *engine) resize(width, height int) {
	e.renderer.Resize(width, height)
	for _, l := range e.layers {
		if r, ok := l.(Resizer); ok {
			r.Resize(width, height)
		}
	}
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the logic tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		select {
		case e.tickRateChannel <- newRate:
		default:
			// replace the pending update
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Second / time.Duration(fps)
}

func (e *engine) SetClearColor(c color.Color) {
	e.clearColor = c
	r, g, b, a := c.RGBA()
	e.ctx.ClearColor(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
}

func (e *engine) AddLayer(key int, l Layer) {
	e.layers[key] = l
}

func (e *engine) RemoveLayer(key int) {
	delete(e.layers, key)
}

func (e *engine) Layer(key int) Layer {
	return e.layers[key]
}

func (e *engine) Layers() map[int]Layer {
	return maps.Clone(e.layers)
}
