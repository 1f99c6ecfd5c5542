package light

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// LightBuilderOption is a function that configures a Light during construction.
type LightBuilderOption func(*light)

// WithPosition sets the world-space position of the light.
//
// Parameters:
//   - position: the light position
//
// Returns:
//   - LightBuilderOption: a function that sets the position
func WithPosition(position mgl32.Vec3) LightBuilderOption {
	return func(l *light) {
		l.position = position
	}
}

// WithColor sets the light color.
//
// Parameters:
//   - c: the light color
//
// Returns:
//   - LightBuilderOption: a function that sets the color
func WithColor(c color.Color) LightBuilderOption {
	return func(l *light) {
		l.color = toVec4(c)
	}
}

// WithSpecular sets the specular color, exponent and strength.
//
// Parameters:
//   - c: the specular color
//   - shininess: the specular exponent
//   - factor: the specular strength
//
// Returns:
//   - LightBuilderOption: a function that sets the specular terms
func WithSpecular(c color.Color, shininess, factor float32) LightBuilderOption {
	return func(l *light) {
		l.specular = toVec4(c)
		l.shininess = shininess
		l.specularFactor = factor
	}
}
