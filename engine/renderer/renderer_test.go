package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/pika-go/engine/arrays"
	"github.com/Carmen-Shannon/pika-go/engine/graphics"
	"github.com/Carmen-Shannon/pika-go/engine/graphics/graphicstest"
	"github.com/Carmen-Shannon/pika-go/engine/renderer/buffer_info"
	"github.com/Carmen-Shannon/pika-go/engine/renderer/program"
)

type fixture struct {
	rec      *graphicstest.Recorder
	r        Renderer
	programA program.ProgramInfo
	programB program.ProgramInfo
	indexed  buffer_info.BufferInfo
	plain    buffer_info.BufferInfo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rec := graphicstest.NewRecorder()
	rec.Uniforms = []graphics.ActiveInfo{
		{Name: "u_color", Size: 1, Type: graphics.UniformTypeFloatVec4},
		{Name: "u_world", Size: 1, Type: graphics.UniformTypeFloatMat4},
	}
	rec.Attributes = []graphics.ActiveInfo{
		{Name: "a_position", Size: 1, Type: graphics.UniformTypeFloatVec3},
		{Name: "a_normal", Size: 1, Type: graphics.UniformTypeFloatVec3},
	}

	triangle := func(indexed bool) *arrays.Arrays {
		set := arrays.NewArrays()
		require.NoError(t, arrays.Put(set, arrays.Position, []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}, 0))
		require.NoError(t, arrays.Put(set, arrays.Normal, []float64{0, 0, 1, 0, 0, 1, 0, 0, 1}, 0))
		if indexed {
			require.NoError(t, arrays.Put(set, arrays.Indices, []int{0, 1, 2}, 0))
		}
		return set
	}

	indexed, err := buffer_info.NewBufferInfo(rec, triangle(true), buffer_info.WithAttribPrefix("a_"))
	require.NoError(t, err)
	plain, err := buffer_info.NewBufferInfo(rec, triangle(false), buffer_info.WithAttribPrefix("a_"))
	require.NoError(t, err)

	f := &fixture{
		rec:      rec,
		r:        NewRenderer(rec),
		programA: program.Reflect(rec, rec.CreateProgram()),
		programB: program.Reflect(rec, rec.CreateProgram()),
		indexed:  indexed,
		plain:    plain,
	}
	rec.Reset()
	return f
}

func TestDrawObjectsSkipsRedundantBinds(t *testing.T) {
	f := newFixture(t)
	objects := []DrawObject{
		{ProgramInfo: f.programA, BufferInfo: f.indexed, Uniforms: []program.Uniforms{{"u_color": mgl32.Vec4{1, 0, 0, 1}}}},
		{ProgramInfo: f.programA, BufferInfo: f.indexed, Uniforms: []program.Uniforms{{"u_color": mgl32.Vec4{0, 1, 0, 1}}}},
	}

	require.NoError(t, f.r.DrawObjects(objects))

	assert.Equal(t, 1, f.rec.Count("UseProgram"))
	assert.Equal(t, 2, f.rec.Count("EnableVertexAttribArray"))
	assert.Equal(t, 2, f.rec.Count("Uniform4fv"))
	assert.Equal(t, 2, f.rec.Count("DrawElements"))
	assert.Equal(t, FrameStats{Objects: 2, DrawCalls: 2, ProgramBinds: 1, BufferBinds: 1}, f.r.Stats())
}

func TestDrawObjectsProgramSwitchRebindsBuffers(t *testing.T) {
	f := newFixture(t)
	objects := []DrawObject{
		{ProgramInfo: f.programA, BufferInfo: f.indexed},
		{ProgramInfo: f.programB, BufferInfo: f.indexed},
		{ProgramInfo: f.programB, BufferInfo: f.plain},
	}

	require.NoError(t, f.r.DrawObjects(objects))

	assert.Equal(t, 2, f.rec.Count("UseProgram"))
	assert.Equal(t, 3, f.r.Stats().BufferBinds)
	assert.Equal(t, 2, f.rec.Count("DrawElements"))
	draws := f.rec.Named("DrawArrays")
	require.Len(t, draws, 1)
	assert.Equal(t, []any{graphics.TopologyTriangles, 0, 3}, draws[0].Args)
}

func TestDrawObjectsSkipsInactive(t *testing.T) {
	f := newFixture(t)
	objects := []DrawObject{
		{Inactive: true, ProgramInfo: f.programA, BufferInfo: f.indexed},
		{Inactive: true},
	}

	require.NoError(t, f.r.DrawObjects(objects))

	assert.Empty(t, f.rec.Calls)
	assert.Equal(t, FrameStats{Objects: 2, Skipped: 2}, f.r.Stats())
}

func TestDrawObjectsKeepsBindingsAcrossCalls(t *testing.T) {
	f := newFixture(t)
	objects := []DrawObject{{ProgramInfo: f.programA, BufferInfo: f.indexed}}

	require.NoError(t, f.r.DrawObjects(objects))
	require.NoError(t, f.r.DrawObjects(objects))
	assert.Equal(t, 1, f.rec.Count("UseProgram"))

	f.r.Invalidate()
	require.NoError(t, f.r.DrawObjects(objects))
	assert.Equal(t, 2, f.rec.Count("UseProgram"))
	assert.Equal(t, 3, f.rec.Count("DrawElements"))
}

func TestDrawObjectsIncompleteObject(t *testing.T) {
	f := newFixture(t)
	err := f.r.DrawObjects([]DrawObject{
		{ProgramInfo: f.programA, BufferInfo: f.indexed},
		{ProgramInfo: f.programA},
	})

	require.ErrorIs(t, err, ErrIncompleteObject)
	assert.Contains(t, err.Error(), "object 1")
	assert.Equal(t, 1, f.rec.Count("DrawElements"))
}

func TestDrawObjectsUniformError(t *testing.T) {
	f := newFixture(t)
	err := f.r.DrawObjects([]DrawObject{
		{ProgramInfo: f.programA, BufferInfo: f.indexed, Uniforms: []program.Uniforms{{"u_color": "red"}}},
	})

	require.ErrorIs(t, err, program.ErrUniformValue)
	assert.Contains(t, err.Error(), "draw object 0")
	assert.Zero(t, f.rec.Count("DrawElements"))
}

func TestCreateVertexArrayInfo(t *testing.T) {
	f := newFixture(t)
	withVAO := f.r.CreateVertexArrayInfo(f.programA, f.indexed)

	vao := withVAO.VertexArray()
	require.NotZero(t, vao)
	assert.Equal(t, f.indexed.Indices(), withVAO.Indices())
	assert.Equal(t, []graphicstest.Call{
		{Name: "BindVertexArray", Args: []any{vao}},
		{Name: "BindVertexArray", Args: []any{graphics.VertexArray(0)}},
	}, f.rec.Named("BindVertexArray"))
	assert.Equal(t, 2, f.rec.Count("VertexAttribPointer"))
}

func TestDrawObjectsVertexArrayTransitions(t *testing.T) {
	f := newFixture(t)
	withVAO := f.r.CreateVertexArrayInfo(f.programA, f.indexed)
	vao := withVAO.VertexArray()

	t.Run("vertex array then plain", func(t *testing.T) {
		f.rec.Reset()
		f.r.Invalidate()
		require.NoError(t, f.r.DrawObjects([]DrawObject{
			{ProgramInfo: f.programA, BufferInfo: withVAO},
			{ProgramInfo: f.programA, BufferInfo: f.plain},
		}))

		names := f.rec.Names()
		assert.Equal(t, []string{
			"UseProgram",
			"BindVertexArray",
			"DrawElements",
			"BindVertexArray",
			"BindBuffer", "EnableVertexAttribArray", "VertexAttribPointer",
			"BindBuffer", "EnableVertexAttribArray", "VertexAttribPointer",
			"DrawArrays",
		}, names)
		binds := f.rec.Named("BindVertexArray")
		assert.Equal(t, []any{vao}, binds[0].Args)
		assert.Equal(t, []any{graphics.VertexArray(0)}, binds[1].Args)
	})

	t.Run("plain then vertex array", func(t *testing.T) {
		f.rec.Reset()
		f.r.Invalidate()
		require.NoError(t, f.r.DrawObjects([]DrawObject{
			{ProgramInfo: f.programA, BufferInfo: f.plain},
			{ProgramInfo: f.programA, BufferInfo: withVAO},
		}))

		names := f.rec.Names()
		require.NotEmpty(t, names)
		assert.Equal(t, "BindVertexArray", names[len(names)-1])
		binds := f.rec.Named("BindVertexArray")
		require.Len(t, binds, 2)
		assert.Equal(t, []any{graphics.VertexArray(0)}, binds[1].Args)
	})
}

func TestDrawBufferInfo(t *testing.T) {
	f := newFixture(t)

	f.r.DrawBufferInfo(f.plain, graphics.TopologyLines, 0, 1, 0)
	f.r.DrawBufferInfo(f.plain, graphics.TopologyPoints, 2, 0, 4)
	f.r.DrawBufferInfo(f.indexed, graphics.TopologyTriangles, 0, 0, 0)
	f.r.DrawBufferInfo(f.indexed, graphics.TopologyTriangleStrip, 3, 2, 5)

	assert.Equal(t, []graphicstest.Call{
		{Name: "DrawArrays", Args: []any{graphics.TopologyLines, 1, 3}},
		{Name: "DrawArraysInstanced", Args: []any{graphics.TopologyPoints, 0, 2, 4}},
		{Name: "DrawElements", Args: []any{graphics.TopologyTriangles, 3, graphics.DataTypeUnsignedShort, 0}},
		{Name: "DrawElementsInstanced", Args: []any{graphics.TopologyTriangleStrip, 3, graphics.DataTypeUnsignedShort, 2, 5}},
	}, f.rec.Calls)
	assert.Equal(t, 4, f.r.Stats().DrawCalls)

	f.r.ResetStats()
	assert.Zero(t, f.r.Stats())
}

func TestResize(t *testing.T) {
	rec := graphicstest.NewRecorder()
	r := NewRenderer(rec, WithViewport(640, 480))
	r.Resize(800, 600)

	assert.Equal(t, []graphicstest.Call{
		{Name: "Viewport", Args: []any{0, 0, 640, 480}},
		{Name: "Viewport", Args: []any{0, 0, 800, 600}},
	}, rec.Calls)
}
