package buffer_info

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/pika-go/common"
	"github.com/Carmen-Shannon/pika-go/engine/arrays"
	"github.com/Carmen-Shannon/pika-go/engine/graphics"
	"github.com/Carmen-Shannon/pika-go/engine/graphics/graphicstest"
)

func quadArrays(t *testing.T, indexed bool) *arrays.Arrays {
	t.Helper()
	set := arrays.NewArrays()
	require.NoError(t, arrays.Put(set, arrays.Position, []float64{-1, -1, 0, 1, -1, 0, 1, 1, 0, -1, 1, 0}, 0))
	require.NoError(t, arrays.Put(set, arrays.Texcoord, []float64{0, 0, 1, 0, 1, 1, 0, 1}, 0))
	require.NoError(t, arrays.Put(set, "color", []uint8{255, 0, 0, 255, 0, 255, 0, 255, 0, 0, 255, 255, 255, 255, 255, 255}, 0))
	if indexed {
		require.NoError(t, arrays.Put(set, arrays.Indices, []int{0, 1, 2, 0, 2, 3}, 0))
	}
	return set
}

func TestNewBufferInfoPrefixesAttributes(t *testing.T) {
	rec := graphicstest.NewRecorder()
	bi, err := NewBufferInfo(rec, quadArrays(t, true), WithAttribPrefix("a_"), WithLabel("quad"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a_position", "a_texcoord", "a_color"}, bi.Attribs().Keys())
	assert.Equal(t, "quad", bi.Label())

	position, ok := bi.Attrib("a_position")
	require.True(t, ok)
	assert.Equal(t, 3, position.NumComponents)
	assert.Equal(t, graphics.DataTypeFloat, position.Type)
	assert.False(t, position.Normalize)
	assert.Len(t, rec.Buffers[position.Buffer], 12*4)

	texcoord, _ := bi.Attrib("a_texcoord")
	assert.Equal(t, 2, texcoord.NumComponents)

	color, _ := bi.Attrib("a_color")
	assert.Equal(t, 4, color.NumComponents)
	assert.Equal(t, graphics.DataTypeUnsignedByte, color.Type)
	assert.True(t, color.Normalize)
}

func TestNewBufferInfoIndexed(t *testing.T) {
	rec := graphicstest.NewRecorder()
	bi, err := NewBufferInfo(rec, quadArrays(t, true))
	require.NoError(t, err)

	assert.NotZero(t, bi.Indices())
	assert.Equal(t, graphics.DataTypeUnsignedShort, bi.ElementType())
	assert.Equal(t, 6, bi.NumElements())
	assert.Len(t, rec.Buffers[bi.Indices()], 6*2)
	_, ok := bi.Attrib("indices")
	assert.False(t, ok)
}

func TestNewBufferInfoNonIndexedCountsFirstArray(t *testing.T) {
	rec := graphicstest.NewRecorder()
	bi, err := NewBufferInfo(rec, quadArrays(t, false))
	require.NoError(t, err)

	assert.Zero(t, bi.Indices())
	assert.Equal(t, graphics.DataTypeUnspecified, bi.ElementType())
	assert.Equal(t, 4, bi.NumElements())
}

func TestNewBufferInfoRejectsDivergentCounts(t *testing.T) {
	set := arrays.NewArrays()
	require.NoError(t, arrays.Put(set, arrays.Position, []float32{0, 0, 0, 1, 1, 1}, 0))
	require.NoError(t, arrays.Put(set, arrays.Normal, []float32{0, 1, 0}, 0))

	_, err := NewBufferInfo(graphicstest.NewRecorder(), set)
	assert.ErrorIs(t, err, ErrElementCountMismatch)
}

func TestNewBufferInfoUsage(t *testing.T) {
	rec := graphicstest.NewRecorder()
	_, err := NewBufferInfo(rec, quadArrays(t, false), WithUsage(graphics.BufferUsageDynamicDraw))
	require.NoError(t, err)

	for _, call := range rec.Named("BufferData") {
		assert.Equal(t, graphics.BufferUsageDynamicDraw, call.Args[2])
	}
}

func TestWriteBuffers(t *testing.T) {
	rec := graphicstest.NewRecorder()
	bi, err := NewBufferInfo(rec, quadArrays(t, true), WithAttribPrefix("a_"))
	require.NoError(t, err)

	moved := []float32{5, 5, 5}
	require.NoError(t, bi.WriteBuffers(
		BufferWrite{Name: "a_position", Offset: 12, Data: common.SliceToBytes(moved)},
		BufferWrite{Name: arrays.Indices, Offset: 0, Data: common.SliceToBytes([]uint16{3})},
	))

	position, _ := bi.Attrib("a_position")
	assert.Equal(t, common.SliceToBytes(moved), rec.Buffers[position.Buffer][12:24])
	assert.Equal(t, []byte{3, 0}, rec.Buffers[bi.Indices()][:2])

	err = bi.WriteBuffers(BufferWrite{Name: "a_tangent", Data: []byte{0}})
	assert.ErrorIs(t, err, ErrUnknownBuffer)
}

func TestWriteBuffersIndexWriteKeepsOtherVertexArrays(t *testing.T) {
	rec := graphicstest.NewRecorder()
	bi, err := NewBufferInfo(rec, quadArrays(t, true))
	require.NoError(t, err)
	indices := common.SliceToBytes([]uint16{2, 1, 0})

	rec.Reset()
	require.NoError(t, bi.WriteBuffers(BufferWrite{Name: arrays.Indices, Data: indices}))
	assert.Equal(t, []string{"BindVertexArray", "BindBuffer", "BufferSubData"}, rec.Names())
	assert.Equal(t, graphics.VertexArray(0), rec.Named("BindVertexArray")[0].Args[0])

	vao := rec.CreateVertexArray()
	captured := bi.WithVertexArray(vao)
	rec.Reset()
	require.NoError(t, captured.WriteBuffers(BufferWrite{Name: arrays.Indices, Data: indices}))
	assert.Equal(t, vao, rec.Named("BindVertexArray")[0].Args[0])

	rec.Reset()
	require.NoError(t, bi.WriteBuffers(BufferWrite{Name: arrays.Position, Data: []byte{0, 0, 0, 0}}))
	assert.Zero(t, rec.Count("BindVertexArray"))
}

func TestReleaseOwnedAndShared(t *testing.T) {
	rec := graphicstest.NewRecorder()
	bi, err := NewBufferInfo(rec, quadArrays(t, true))
	require.NoError(t, err)

	withVAO := bi.WithVertexArray(graphics.VertexArray(42))
	assert.Equal(t, bi.NumElements(), withVAO.NumElements())
	assert.Equal(t, graphics.VertexArray(42), withVAO.VertexArray())
	assert.Zero(t, bi.VertexArray())

	withVAO.Release()
	assert.Equal(t, 1, rec.Count("DeleteVertexArray"))
	assert.Zero(t, rec.Count("DeleteBuffer"))

	bi.Release()
	assert.Equal(t, 4, rec.Count("DeleteBuffer"))
}
