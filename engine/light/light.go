package light

import (
	"image/color"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Carmen-Shannon/pika-go/engine/renderer/program"
)

type light struct {
	mu *sync.Mutex

	position       mgl32.Vec3
	color          mgl32.Vec4
	specular       mgl32.Vec4
	shininess      float32
	specularFactor float32
}

// Light is a single point light feeding the lit shading model
// (u_lightWorldPos, u_lightColor, u_specular, u_shininess, u_specularFactor).
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - mgl32.Vec3: the light position
	Position() mgl32.Vec3

	// Color returns the light color as linear RGBA.
	//
	// Returns:
	//   - mgl32.Vec4: the light color
	Color() mgl32.Vec4

	// SetPosition moves the light.
	//
	// Parameters:
	//   - position: the new world-space position
	SetPosition(position mgl32.Vec3)

	// SetColor sets the light color.
	//
	// Parameters:
	//   - c: the new color
	SetColor(c color.Color)

	// Uniforms writes the light uniforms into dst and returns it.
	// A nil dst allocates a new map.
	//
	// Parameters:
	//   - dst: the uniform map to fill
	//
	// Returns:
	//   - program.Uniforms: dst
	Uniforms(dst program.Uniforms) program.Uniforms
}

var _ Light = &light{}

// NewLight creates a white point light at the origin with a shininess of 50.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - Light: the new light
func NewLight(options ...LightBuilderOption) Light {
	l := &light{
		mu:             &sync.Mutex{},
		color:          mgl32.Vec4{1, 1, 1, 1},
		specular:       mgl32.Vec4{1, 1, 1, 1},
		shininess:      50,
		specularFactor: 1,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *light) Position() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position
}

func (l *light) Color() mgl32.Vec4 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *light) SetPosition(position mgl32.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = position
}

func (l *light) SetColor(c color.Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = toVec4(c)
}

func (l *light) Uniforms(dst program.Uniforms) program.Uniforms {
	if dst == nil {
		dst = program.Uniforms{}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	dst["u_lightWorldPos"] = l.position
	dst["u_lightColor"] = l.color
	dst["u_specular"] = l.specular
	dst["u_shininess"] = l.shininess
	dst["u_specularFactor"] = l.specularFactor
	return dst
}

// toVec4 converts c to non-premultiplied RGBA in [0, 1]. Fully transparent colors become zero.
func toVec4(c color.Color) mgl32.Vec4 {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return mgl32.Vec4{}
	}
	cf, _ := colorful.MakeColor(c)
	return mgl32.Vec4{float32(cf.R), float32(cf.G), float32(cf.B), float32(a) / 0xffff}
}
