package camera

import "github.com/go-gl/mathgl/mgl32"

type CameraBuilderOption func(*camera)

// WithLookAt sets the initial eye position and target.
//
// Parameters:
//   - eye: the camera position
//   - target: the point to look at
//
// Returns:
//   - CameraBuilderOption: a function that positions the camera
func WithLookAt(eye, target mgl32.Vec3) CameraBuilderOption {
	return func(c *camera) {
		c.eye, c.target = eye, target
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - up: the up vector
//
// Returns:
//   - CameraBuilderOption: a function that sets the up vector
func WithUp(up mgl32.Vec3) CameraBuilderOption {
	return func(c *camera) {
		c.up = up
	}
}

// WithFov sets the vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *camera) {
		c.fov = fov
	}
}

// WithAspect sets the aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio
//
// Returns:
//   - CameraBuilderOption: a function that sets the aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *camera) {
		c.aspect = aspect
	}
}

// WithClip sets the near and far clipping planes.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the clipping planes
func WithClip(near, far float32) CameraBuilderOption {
	return func(c *camera) {
		c.near, c.far = near, far
	}
}
