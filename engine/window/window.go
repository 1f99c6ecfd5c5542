package window

import (
	"fmt"
)

// Window is a desktop window owning an OpenGL 4.1 core context.
// NewWindow locks the calling goroutine to its OS thread; every Window method and every graphics call
// must stay on that goroutine.
type Window interface {
	// SetUpdateCallback sets the function called once per loop iteration, after events are polled
	// and before buffers are swapped.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press and repeat events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetScrollCallback sets the callback for mouse wheel events.
	//
	// Parameters:
	//   - callback: function receiving the vertical scroll delta
	SetScrollCallback(callback func(delta float32))

	// MakeCurrent makes the window's context current on the calling thread.
	MakeCurrent()

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// Time returns the seconds elapsed since the window was created.
	//
	// Returns:
	//   - float64: elapsed seconds
	Time() float64

	// IsRunning returns true until the window is asked to close.
	//
	// Returns:
	//   - bool: true if the window is running
	IsRunning() bool

	// Close destroys the window and its context.
	//
	// Returns:
	//   - error: error if the window was already closed
	Close() error

	// ProcessMessages polls events, runs the update callback and swaps buffers until the window closes.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	title string

	// size limits applied while resizing
	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// framebuffer size in pixels
	width  int
	height int

	resizable    bool
	swapInterval int
	glMajor      int
	glMinor      int

	internalWindow *glfwWindow

	onUpdate  func()
	onResize  func(width, height int)
	onScroll  func(delta float32)
	onKeyDown func(keyCode uint32)
	onKeyUp   func(keyCode uint32)
}

var _ Window = &engineWindow{}

// NewWindow creates a window with a current OpenGL context.
// Applies default values first, then each option in order. Panics when GLFW or the context cannot be created.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the window, with its context current
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:        "pika",
		maxWidth:     3840,
		maxHeight:    2160,
		minWidth:     320,
		minHeight:    240,
		width:        1280,
		height:       720,
		resizable:    true,
		swapInterval: 1,
		glMajor:      4,
		glMinor:      1,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *engineWindow) MakeCurrent() {
	platformMakeCurrent(w)
}

func (w *engineWindow) SwapBuffers() {
	platformSwapBuffers(w)
}

func (w *engineWindow) Time() float64 {
	return platformTime()
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		platformSwapBuffers(w)
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
