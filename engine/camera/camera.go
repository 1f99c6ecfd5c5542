package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/pika-go/engine/renderer/program"
)

type camera struct {
	mu *sync.Mutex

	eye    mgl32.Vec3
	target mgl32.Vec3
	up     mgl32.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32

	view           mgl32.Mat4
	projection     mgl32.Mat4
	viewProjection mgl32.Mat4
}

// Camera is a perspective look-at camera.
// Matrices are recomputed whenever a setter changes the eye, target or lens.
type Camera interface {
	// Eye returns the camera position in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Eye() mgl32.Vec3

	// Target returns the point the camera looks at.
	//
	// Returns:
	//   - mgl32.Vec3: the look-at target
	Target() mgl32.Vec3

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// View returns the world to view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	View() mgl32.Mat4

	// Projection returns the perspective projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	Projection() mgl32.Mat4

	// ViewProjection returns Projection * View.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	ViewProjection() mgl32.Mat4

	// LookAt moves the camera.
	//
	// Parameters:
	//   - eye: the new camera position
	//   - target: the point to look at
	LookAt(eye, target mgl32.Vec3)

	// SetFov sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio.
	//
	// Parameters:
	//   - aspect: width / height
	SetAspect(aspect float32)

	// Resize sets the aspect ratio from a framebuffer size. Zero sizes are ignored.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	Resize(width, height int)

	// Uniforms writes u_viewInverse into dst and returns it.
	// A nil dst allocates a new map.
	//
	// Parameters:
	//   - dst: the uniform map to fill
	//
	// Returns:
	//   - program.Uniforms: dst
	Uniforms(dst program.Uniforms) program.Uniforms
}

var _ Camera = &camera{}

// NewCamera creates a Camera at (0, 0, 10) looking at the origin with a 45 degree field of view.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the new camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &camera{
		mu:     &sync.Mutex{},
		eye:    mgl32.Vec3{0, 0, 10},
		up:     mgl32.Vec3{0, 1, 0},
		fov:    45 * math.Pi / 180,
		aspect: 1,
		near:   0.1,
		far:    100,
	}
	for _, option := range options {
		option(c)
	}
	c.update()
	return c
}

func (c *camera) Eye() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye
}

func (c *camera) Target() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *camera) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *camera) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *camera) View() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *camera) Projection() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *camera) ViewProjection() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjection
}

func (c *camera) LookAt(eye, target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eye, c.target = eye, target
	c.update()
}

func (c *camera) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.update()
}

func (c *camera) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.update()
}

func (c *camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.SetAspect(float32(width) / float32(height))
}

func (c *camera) Uniforms(dst program.Uniforms) program.Uniforms {
	if dst == nil {
		dst = program.Uniforms{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	dst["u_viewInverse"] = c.view.Inv()
	return dst
}

// update must be called with mu held.
func (c *camera) update() {
	c.view = mgl32.LookAtV(c.eye, c.target, c.up)
	c.projection = mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
	c.viewProjection = c.projection.Mul4(c.view)
}
