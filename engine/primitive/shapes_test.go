package primitive

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/pika-go/engine/arrays"
)

const epsilon = 1e-5

func floats(t *testing.T, set *arrays.Arrays, name string) *arrays.TypedArray[float32] {
	t.Helper()
	a, ok := set.ValueByKeyTry(name)
	require.True(t, ok, "missing %q", name)
	values, ok := a.(*arrays.TypedArray[float32])
	require.True(t, ok, "%q is %T", name, a)
	return values
}

func indices(t *testing.T, set *arrays.Arrays) []uint16 {
	t.Helper()
	a, ok := set.ValueByKeyTry(arrays.Indices)
	require.True(t, ok)
	values, ok := a.(*arrays.TypedArray[uint16])
	require.True(t, ok)
	return values.Data()
}

func assertVec(t *testing.T, expected []float32, actual []float32) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], epsilon, "component %d of %v", i, actual)
	}
}

func assertFilled(t *testing.T, set *arrays.Arrays) {
	t.Helper()
	for _, kv := range set.Order {
		switch a := kv.Value.(type) {
		case *arrays.TypedArray[float32]:
			assert.Zero(t, a.Remaining(), "%q not filled", kv.Key)
		case *arrays.TypedArray[uint16]:
			assert.Zero(t, a.Remaining(), "%q not filled", kv.Key)
		}
	}
}

func TestCube(t *testing.T) {
	set := Cube{Side: 2}.Vertices()
	assertFilled(t, set)

	assert.Equal(t, []string{arrays.Position, arrays.Normal, arrays.Texcoord, arrays.Indices}, set.Keys())

	positions := floats(t, set, arrays.Position)
	require.Equal(t, 24, positions.NumElements())
	assertVec(t, []float32{1, 1, -1}, positions.Element(0))
	assertVec(t, []float32{1, 1, 1}, positions.Element(1))
	assertVec(t, []float32{1, -1, 1}, positions.Element(2))
	assertVec(t, []float32{1, -1, -1}, positions.Element(3))
	assertVec(t, []float32{-1, 1, -1}, positions.Element(20))

	normals := floats(t, set, arrays.Normal)
	assertVec(t, []float32{1, 0, 0}, normals.Element(3))
	assertVec(t, []float32{0, 0, -1}, normals.Element(23))

	texcoords := floats(t, set, arrays.Texcoord)
	assertVec(t, []float32{1, 0}, texcoords.Element(0))
	assertVec(t, []float32{1, 1}, texcoords.Element(7))

	idx := indices(t, set)
	require.Len(t, idx, 36)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, idx[:6])
	assert.Equal(t, []uint16{20, 21, 22, 20, 22, 23}, idx[30:])
}

func TestCubeFacesAreFlatQuads(t *testing.T) {
	tests := []struct {
		name   string
		face   int
		normal mgl32.Vec3
	}{
		{"+x", 0, mgl32.Vec3{1, 0, 0}},
		{"-x", 1, mgl32.Vec3{-1, 0, 0}},
		{"+y", 2, mgl32.Vec3{0, 1, 0}},
		{"-y", 3, mgl32.Vec3{0, -1, 0}},
		{"+z", 4, mgl32.Vec3{0, 0, 1}},
		{"-z", 5, mgl32.Vec3{0, 0, -1}},
	}

	set := Cube{Side: 3}.Vertices()
	positions := floats(t, set, arrays.Position)
	normals := floats(t, set, arrays.Normal)
	idx := indices(t, set)
	require.Len(t, idx, 36)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := 4 * tt.face
			for v := first; v < first+4; v++ {
				assertVec(t, tt.normal[:], normals.Element(v))
				p := positions.Element(v)
				assert.InDelta(t, 1.5, mgl32.Vec3{p[0], p[1], p[2]}.Dot(tt.normal), epsilon, "vertex %d", v)
			}
			for _, i := range idx[6*tt.face : 6*tt.face+6] {
				assert.GreaterOrEqual(t, int(i), first)
				assert.Less(t, int(i), first+4)
			}
		})
	}
}

func TestSphere(t *testing.T) {
	set := Sphere{Radius: 2, SubdivisionsAxis: 4, SubdivisionsHeight: 2}.Vertices()
	assertFilled(t, set)

	positions := floats(t, set, arrays.Position)
	require.Equal(t, 15, positions.NumElements())
	assertVec(t, []float32{0, 2, 0}, positions.Element(0))
	assertVec(t, []float32{2, 0, 0}, positions.Element(5))
	assertVec(t, []float32{0, 0, 2}, positions.Element(6))
	assertVec(t, []float32{0, -2, 0}, positions.Element(14))

	normals := floats(t, set, arrays.Normal)
	for i := 0; i < normals.NumElements(); i++ {
		n := normals.Element(i)
		assert.InDelta(t, 1, mgl32.Vec3{n[0], n[1], n[2]}.Len(), epsilon)
	}

	texcoords := floats(t, set, arrays.Texcoord)
	assertVec(t, []float32{1, 0}, texcoords.Element(0))
	assertVec(t, []float32{0, 1}, texcoords.Element(14))

	idx := indices(t, set)
	require.Len(t, idx, 4*2*2*3)
	assert.Equal(t, []uint16{0, 1, 5, 5, 1, 6, 5, 6, 10, 10, 6, 11}, idx[:12])
}

func TestTruncatedCone(t *testing.T) {
	cone := TruncatedCone{BottomRadius: 1, TopRadius: 0.5, Height: 2, RadialSubdivisions: 4, VerticalSubdivisions: 1}
	set := cone.Vertices()
	assertFilled(t, set)

	positions := floats(t, set, arrays.Position)
	normals := floats(t, set, arrays.Normal)
	texcoords := floats(t, set, arrays.Texcoord)
	require.Equal(t, 5*6, positions.NumElements())

	// bottom center ring
	assertVec(t, []float32{0, -1, 0}, positions.Element(0))
	assertVec(t, []float32{0, -1, 0}, normals.Element(0))
	assertVec(t, []float32{0, 1}, texcoords.Element(0))

	// bottom cap edge
	assertVec(t, []float32{0, -1, 1}, positions.Element(5))
	assertVec(t, []float32{0, -1, 0}, normals.Element(5))
	assertVec(t, []float32{0, 0}, texcoords.Element(5))

	// side rings
	sinSlant, cosSlant := math.Sincos(math.Atan2(0.5, 2))
	assertVec(t, []float32{0, -1, 1}, positions.Element(10))
	assertVec(t, []float32{0, float32(sinSlant), float32(cosSlant)}, normals.Element(10))
	assertVec(t, []float32{0, 1}, texcoords.Element(10))
	assertVec(t, []float32{0.5, 1, 0}, positions.Element(16))
	assertVec(t, []float32{0.25, 0}, texcoords.Element(16))

	// top cap edge and center
	assertVec(t, []float32{0, 1, 0.5}, positions.Element(20))
	assertVec(t, []float32{0, 1, 0}, normals.Element(20))
	assertVec(t, []float32{0, 1, 0}, positions.Element(29))
	assertVec(t, []float32{1, 1}, texcoords.Element(29))

	idx := indices(t, set)
	require.Len(t, idx, 4*5*2*3)
	assert.Equal(t, []uint16{0, 1, 6, 0, 6, 5}, idx[:6])
}

func TestCylinderAndPrismAreCones(t *testing.T) {
	cylinder := Cylinder{Radius: 1, Height: 3, RadialSubdivisions: 6, VerticalSubdivisions: 2}.Vertices()
	cone := TruncatedCone{BottomRadius: 1, TopRadius: 1, Height: 3, RadialSubdivisions: 6, VerticalSubdivisions: 2}.Vertices()
	assert.Equal(t, floats(t, cone, arrays.Position).Data(), floats(t, cylinder, arrays.Position).Data())
	assert.Equal(t, indices(t, cone), indices(t, cylinder))

	side := floats(t, cylinder, arrays.Normal).Element(2 * 7)
	assertVec(t, []float32{0, 0, 1}, side)

	prism := RegularPrism{NumSides: 3, Width: 2, Height: 1, VerticalSubdivisions: 1}.Vertices()
	assert.Equal(t, 4*(1+1+4), floats(t, prism, arrays.Position).NumElements())
	assertVec(t, []float32{0, -0.5, 2}, floats(t, prism, arrays.Position).Element(4))
}

func TestCylinderSideRingsKeepRadius(t *testing.T) {
	tests := []struct {
		name     string
		cylinder Cylinder
	}{
		{"single band", Cylinder{Radius: 1, Height: 2, RadialSubdivisions: 4, VerticalSubdivisions: 1}},
		{"three bands", Cylinder{Radius: 1.5, Height: 3, RadialSubdivisions: 6, VerticalSubdivisions: 3}},
		{"fine", Cylinder{Radius: 0.25, Height: 1, RadialSubdivisions: 24, VerticalSubdivisions: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.cylinder
			set := c.Vertices()
			positions := floats(t, set, arrays.Position)
			normals := floats(t, set, arrays.Normal)
			perRing := c.RadialSubdivisions + 1

			// side rings follow the bottom center and bottom edge rings
			for ring := 0; ring <= c.VerticalSubdivisions; ring++ {
				y := float32(ring)/float32(c.VerticalSubdivisions)*c.Height - c.Height/2
				for i := 0; i < perRing; i++ {
					v := (ring+2)*perRing + i
					p := positions.Element(v)
					assert.InDelta(t, c.Radius, math.Hypot(float64(p[0]), float64(p[2])), epsilon, "ring %d vertex %d", ring, i)
					assert.InDelta(t, y, p[1], epsilon, "ring %d vertex %d", ring, i)

					n := normals.Element(v)
					assert.InDelta(t, 0, n[1], epsilon)
					assert.InDelta(t, 1, mgl32.Vec3{n[0], n[1], n[2]}.Len(), epsilon)
				}
			}
		})
	}
}

func TestPlane(t *testing.T) {
	set := Plane{Width: 2, Depth: 4, SubdivisionsWidth: 2, SubdivisionsDepth: 1}.Vertices()
	assertFilled(t, set)

	positions := floats(t, set, arrays.Position)
	require.Equal(t, 6, positions.NumElements())
	assertVec(t, []float32{-1, 0, -2}, positions.Element(0))
	assertVec(t, []float32{1, 0, -2}, positions.Element(2))
	assertVec(t, []float32{1, 0, 2}, positions.Element(5))
	assertVec(t, []float32{0.5, 1}, floats(t, set, arrays.Texcoord).Element(4))

	assert.Equal(t, []uint16{0, 3, 1, 3, 4, 1, 1, 4, 2, 4, 5, 2}, indices(t, set))
}

func TestPlaneMatrix(t *testing.T) {
	m := mgl32.Translate3D(0, 1, 0).Mul4(mgl32.HomogRotate3DX(math.Pi / 2))
	set := Plane{Width: 2, Depth: 4, SubdivisionsWidth: 1, SubdivisionsDepth: 1, Matrix: m}.Vertices()

	assertVec(t, []float32{-1, 3, 0}, floats(t, set, arrays.Position).Element(0))
	assertVec(t, []float32{0, 0, 1}, floats(t, set, arrays.Normal).Element(0))
	assertVec(t, []float32{0, 0}, floats(t, set, arrays.Texcoord).Element(0))
}

func TestPlaneMatrixOrientation(t *testing.T) {
	tests := []struct {
		name   string
		matrix mgl32.Mat4
		apply  func(v mgl32.Vec3) mgl32.Vec3
	}{
		{"identity", mgl32.Ident4(), func(v mgl32.Vec3) mgl32.Vec3 { return v }},
		{"half turn about x", mgl32.HomogRotate3DX(math.Pi), func(v mgl32.Vec3) mgl32.Vec3 {
			return mgl32.Vec3{v[0], -v[1], -v[2]}
		}},
	}

	flat := Plane{Width: 2, Depth: 4, SubdivisionsWidth: 2, SubdivisionsDepth: 3}.Vertices()
	flatPositions := floats(t, flat, arrays.Position)
	flatNormals := floats(t, flat, arrays.Normal)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Plane{Width: 2, Depth: 4, SubdivisionsWidth: 2, SubdivisionsDepth: 3, Matrix: tt.matrix}.Vertices()
			positions := floats(t, set, arrays.Position)
			normals := floats(t, set, arrays.Normal)
			require.Equal(t, flatPositions.NumElements(), positions.NumElements())

			for v := 0; v < positions.NumElements(); v++ {
				p := flatPositions.Element(v)
				n := flatNormals.Element(v)
				want := tt.apply(mgl32.Vec3{p[0], p[1], p[2]})
				wantNormal := tt.apply(mgl32.Vec3{n[0], n[1], n[2]})
				assertVec(t, want[:], positions.Element(v))
				assertVec(t, wantNormal[:], normals.Element(v))
			}
			assert.Equal(t, floats(t, flat, arrays.Texcoord).Data(), floats(t, set, arrays.Texcoord).Data())
			assert.Equal(t, indices(t, flat), indices(t, set))
		})
	}
}

func TestReorientVertices(t *testing.T) {
	set := arrays.NewArrays()
	set.Add("position", arrays.FromSlice(3, []float32{1, 1, 0}))
	set.Add("normal", arrays.FromSlice(3, []float32{1, 1, 0}))
	set.Add("tangent", arrays.FromSlice(3, []float32{1, 1, 0}))
	set.Add("binormal", arrays.FromSlice(3, []float32{1, 1, 0}))
	set.Add("texcoord", arrays.FromSlice(2, []float32{1, 1}))
	set.Add("color", arrays.FromSlice(3, []float32{1, 1, 0}))

	m := mgl32.Translate3D(0, 0, 5).Mul4(mgl32.Scale3D(2, 1, 1))
	ReorientVertices(set, m)

	assertVec(t, []float32{2, 1, 5}, floats(t, set, "position").Data())
	assertVec(t, []float32{0.5, 1, 0}, floats(t, set, "normal").Data())
	assertVec(t, []float32{2, 1, 0}, floats(t, set, "tangent").Data())
	assertVec(t, []float32{2, 1, 0}, floats(t, set, "binormal").Data())
	assertVec(t, []float32{1, 1}, floats(t, set, "texcoord").Data())
	assertVec(t, []float32{1, 1, 0}, floats(t, set, "color").Data())
}
