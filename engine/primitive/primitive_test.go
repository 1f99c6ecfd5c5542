package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/pika-go/engine/graphics"
	"github.com/Carmen-Shannon/pika-go/engine/graphics/graphicstest"
	"github.com/Carmen-Shannon/pika-go/engine/renderer/buffer_info"
)

func TestNewPrimitive(t *testing.T) {
	rec := graphicstest.NewRecorder()
	p, err := NewPrimitive(rec, Cube{Side: 1}, WithBufferOptions(buffer_info.WithAttribPrefix("a_")))
	require.NoError(t, err)

	assert.Equal(t, "primitive.Cube", p.Name())
	assert.Equal(t, Cube{Side: 1}, p.Shape())

	bi := p.BufferInfo()
	assert.Equal(t, "primitive.Cube", bi.Label())
	assert.Equal(t, []string{"a_position", "a_normal", "a_texcoord"}, bi.Attribs().Keys())
	assert.Equal(t, 36, bi.NumElements())
	assert.Equal(t, graphics.DataTypeUnsignedShort, bi.ElementType())
	assert.Len(t, rec.Buffers[bi.Indices()], 36*2)

	p.Release()
	assert.Equal(t, 4, rec.Count("DeleteBuffer"))
}

func TestNewPrimitiveName(t *testing.T) {
	rec := graphicstest.NewRecorder()
	p, err := NewPrimitive(rec, Sphere{Radius: 1, SubdivisionsAxis: 8, SubdivisionsHeight: 4}, WithName("ball"))
	require.NoError(t, err)

	assert.Equal(t, "ball", p.BufferInfo().Label())
	assert.Equal(t, 8*4*2*3, p.BufferInfo().NumElements())
}
