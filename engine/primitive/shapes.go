package primitive

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/pika-go/engine/arrays"
)

// Shape generates the vertex arrays of a primitive: position, normal, texcoord and 16-bit indices.
// Parameters are not validated; zero subdivisions produce degenerate geometry.
type Shape interface {
	// Vertices generates a fresh set of vertex arrays.
	//
	// Returns:
	//   - *arrays.Arrays: the generated arrays
	Vertices() *arrays.Arrays
}

var (
	_ Shape = Cube{}
	_ Shape = Sphere{}
	_ Shape = TruncatedCone{}
	_ Shape = Cylinder{}
	_ Shape = RegularPrism{}
	_ Shape = Plane{}
)

// Cube is an axis aligned cube centered on the origin, with four vertices per face.
type Cube struct {
	Side float32
}

var (
	cubeFaceIndices = [6][4]int{
		{3, 7, 5, 1},
		{6, 2, 0, 4},
		{6, 7, 3, 2},
		{0, 1, 5, 4},
		{7, 6, 4, 5},
		{2, 3, 1, 0},
	}

	cubeFaceNormals = [6][]float32{
		{+1, +0, +0},
		{-1, +0, +0},
		{+0, +1, +0},
		{+0, -1, +0},
		{+0, +0, +1},
		{+0, +0, -1},
	}

	cubeUVs = [4][]float32{
		{1, 0},
		{0, 0},
		{0, 1},
		{1, 1},
	}
)

func (c Cube) Vertices() *arrays.Arrays {
	s := c.Side / 2
	corners := [8][]float32{
		{-s, -s, -s},
		{+s, -s, -s},
		{-s, +s, -s},
		{+s, +s, -s},
		{-s, -s, +s},
		{+s, -s, +s},
		{-s, +s, +s},
		{+s, +s, +s},
	}

	const numVertices = 6 * 4
	positions := arrays.New[float32](3, numVertices)
	normals := arrays.New[float32](3, numVertices)
	texcoords := arrays.New[float32](2, numVertices)
	indices := arrays.New[uint16](3, 6*2)

	for f, face := range cubeFaceIndices {
		for v, corner := range face {
			positions.PushSlices(corners[corner])
			normals.PushSlices(cubeFaceNormals[f])
			texcoords.PushSlices(cubeUVs[v])
		}

		offset := uint16(4 * f)
		indices.Push(offset+0, offset+1, offset+2)
		indices.Push(offset+0, offset+2, offset+3)
	}

	return assemble(positions, normals, texcoords, indices)
}

// Sphere is a UV sphere centered on the origin with its poles on the y axis.
type Sphere struct {
	Radius             float32
	SubdivisionsAxis   int
	SubdivisionsHeight int
}

func (s Sphere) Vertices() *arrays.Arrays {
	numVertices := (s.SubdivisionsAxis + 1) * (s.SubdivisionsHeight + 1)
	positions := arrays.New[float32](3, numVertices)
	normals := arrays.New[float32](3, numVertices)
	texcoords := arrays.New[float32](2, numVertices)

	for y := 0; y <= s.SubdivisionsHeight; y++ {
		for x := 0; x <= s.SubdivisionsAxis; x++ {
			u := float64(x) / float64(s.SubdivisionsAxis)
			v := float64(y) / float64(s.SubdivisionsHeight)
			sinTheta, cosTheta := math.Sincos(2 * math.Pi * u)
			sinPhi, cosPhi := math.Sincos(math.Pi * v)

			ux := float32(cosTheta * sinPhi)
			uy := float32(cosPhi)
			uz := float32(sinTheta * sinPhi)
			positions.Push(s.Radius*ux, s.Radius*uy, s.Radius*uz)
			normals.Push(ux, uy, uz)
			texcoords.Push(float32(1-u), float32(v))
		}
	}

	around := s.SubdivisionsAxis + 1
	indices := arrays.New[uint16](3, s.SubdivisionsAxis*s.SubdivisionsHeight*2)
	for x := 0; x < s.SubdivisionsAxis; x++ {
		for y := 0; y < s.SubdivisionsHeight; y++ {
			indices.Push(
				uint16((y+0)*around+x),
				uint16((y+0)*around+x+1),
				uint16((y+1)*around+x),
			)
			indices.Push(
				uint16((y+1)*around+x),
				uint16((y+0)*around+x+1),
				uint16((y+1)*around+x+1),
			)
		}
	}

	return assemble(positions, normals, texcoords, indices)
}

// TruncatedCone is a capped cone frustum centered on the origin along the y axis.
// Each cap is a ring at the cap radius plus a ring collapsed onto the axis.
type TruncatedCone struct {
	BottomRadius         float32
	TopRadius            float32
	Height               float32
	RadialSubdivisions   int
	VerticalSubdivisions int
}

// capRings is the number of extra rings, two per cap.
const capRings = 4

func (c TruncatedCone) Vertices() *arrays.Arrays {
	around := c.RadialSubdivisions + 1
	numVertices := around * (c.VerticalSubdivisions + 1 + capRings)
	positions := arrays.New[float32](3, numVertices)
	normals := arrays.New[float32](3, numVertices)
	texcoords := arrays.New[float32](2, numVertices)
	indices := arrays.New[uint16](3, c.RadialSubdivisions*(c.VerticalSubdivisions+capRings)*2)

	slant := math.Atan2(float64(c.BottomRadius-c.TopRadius), float64(c.Height))
	sinSlant, cosSlant := math.Sincos(slant)

	for y := -2; y <= c.VerticalSubdivisions+2; y++ {
		v := float64(y) / float64(c.VerticalSubdivisions)
		height := float64(c.Height) * v
		var ringRadius float64
		switch {
		case y < 0:
			height = 0
			v = 1
			ringRadius = float64(c.BottomRadius)
		case y > c.VerticalSubdivisions:
			height = float64(c.Height)
			v = 1
			ringRadius = float64(c.TopRadius)
		default:
			ringRadius = float64(c.BottomRadius) + float64(c.TopRadius-c.BottomRadius)*v
		}
		if y == -2 || y == c.VerticalSubdivisions+2 {
			ringRadius = 0
			v = 0
		}
		height -= float64(c.Height) / 2

		side := y >= 0 && y <= c.VerticalSubdivisions
		for i := 0; i < around; i++ {
			sin, cos := math.Sincos(float64(i) * math.Pi * 2 / float64(c.RadialSubdivisions))
			positions.Push(float32(sin*ringRadius), float32(height), float32(cos*ringRadius))

			switch {
			case side:
				normals.Push(float32(sin*cosSlant), float32(sinSlant), float32(cos*cosSlant))
			case y < 0:
				normals.Push(0, -1, 0)
			default:
				normals.Push(0, 1, 0)
			}
			texcoords.Push(float32(i)/float32(c.RadialSubdivisions), float32(1-v))
		}
	}

	for y := 0; y < c.VerticalSubdivisions+capRings; y++ {
		for i := 0; i < c.RadialSubdivisions; i++ {
			indices.Push(
				uint16(around*(y+0)+0+i),
				uint16(around*(y+0)+1+i),
				uint16(around*(y+1)+1+i),
			)
			indices.Push(
				uint16(around*(y+0)+0+i),
				uint16(around*(y+1)+1+i),
				uint16(around*(y+1)+0+i),
			)
		}
	}

	return assemble(positions, normals, texcoords, indices)
}

// Cylinder is a TruncatedCone with equal radii.
type Cylinder struct {
	Radius               float32
	Height               float32
	RadialSubdivisions   int
	VerticalSubdivisions int
}

func (c Cylinder) Vertices() *arrays.Arrays {
	return TruncatedCone{
		BottomRadius:         c.Radius,
		TopRadius:            c.Radius,
		Height:               c.Height,
		RadialSubdivisions:   c.RadialSubdivisions,
		VerticalSubdivisions: c.VerticalSubdivisions,
	}.Vertices()
}

// RegularPrism is a Cylinder with one radial subdivision per side. Width is the circumradius.
type RegularPrism struct {
	NumSides             int
	Width                float32
	Height               float32
	VerticalSubdivisions int
}

func (p RegularPrism) Vertices() *arrays.Arrays {
	return Cylinder{
		Radius:               p.Width,
		Height:               p.Height,
		RadialSubdivisions:   p.NumSides,
		VerticalSubdivisions: p.VerticalSubdivisions,
	}.Vertices()
}

// Plane is a subdivided quad in the xz plane facing +y, centered on the origin and then transformed by Matrix.
// A zero Matrix leaves the plane untransformed.
type Plane struct {
	Width             float32
	Depth             float32
	SubdivisionsWidth int
	SubdivisionsDepth int
	Matrix            mgl32.Mat4
}

func (p Plane) Vertices() *arrays.Arrays {
	numVertices := (p.SubdivisionsWidth + 1) * (p.SubdivisionsDepth + 1)
	positions := arrays.New[float32](3, numVertices)
	normals := arrays.New[float32](3, numVertices)
	texcoords := arrays.New[float32](2, numVertices)

	for z := 0; z <= p.SubdivisionsDepth; z++ {
		for x := 0; x <= p.SubdivisionsWidth; x++ {
			u := float32(x) / float32(p.SubdivisionsWidth)
			v := float32(z) / float32(p.SubdivisionsDepth)
			positions.Push(p.Width*u-p.Width*0.5, 0, p.Depth*v-p.Depth*0.5)
			normals.Push(0, 1, 0)
			texcoords.Push(u, v)
		}
	}

	across := p.SubdivisionsWidth + 1
	indices := arrays.New[uint16](3, p.SubdivisionsWidth*p.SubdivisionsDepth*2)
	for z := 0; z < p.SubdivisionsDepth; z++ {
		for x := 0; x < p.SubdivisionsWidth; x++ {
			indices.Push(
				uint16((z+0)*across+x),
				uint16((z+1)*across+x),
				uint16((z+0)*across+x+1),
			)
			indices.Push(
				uint16((z+1)*across+x),
				uint16((z+1)*across+x+1),
				uint16((z+0)*across+x+1),
			)
		}
	}

	set := assemble(positions, normals, texcoords, indices)
	if p.Matrix != (mgl32.Mat4{}) {
		ReorientVertices(set, p.Matrix)
	}
	return set
}

func assemble(positions, normals, texcoords *arrays.TypedArray[float32], indices *arrays.TypedArray[uint16]) *arrays.Arrays {
	set := arrays.NewArrays()
	set.Add(arrays.Position, positions)
	set.Add(arrays.Normal, normals)
	set.Add(arrays.Texcoord, texcoords)
	set.Add(arrays.Indices, indices)
	return set
}
