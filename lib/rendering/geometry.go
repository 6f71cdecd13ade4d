package rendering

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	f32 = 4
	u16 = 2

	FloatsPerPosition = 3
	FloatsPerColour   = 4
	FloatsPerVertex   = FloatsPerPosition + FloatsPerColour

	// Stride is the size in bytes of one interleaved vertex.
	Stride = FloatsPerVertex * f32
)

type Vertex struct {
	Position mgl32.Vec3
	Colour   mgl32.Vec4
}

var (
	red   = mgl32.Vec4{1, 0, 0, 1}
	green = mgl32.Vec4{0, 1, 0, 1}
	blue  = mgl32.Vec4{0, 0, 1, 1}
)

// TwoTriangles is the fixed shape: a left triangle (0,1,2) and a right
// triangle (2,3,4) that meet at vertex 2.
var TwoTriangles = []Vertex{
	{mgl32.Vec3{-1.0, 1.0, 0.0}, red},   // top left
	{mgl32.Vec3{-1.0, 0.0, 0.0}, blue},  // centre left
	{mgl32.Vec3{-0.5, 0.0, 0.0}, green}, // shared
	{mgl32.Vec3{0.0, 0.0, 0.0}, red},    // centre
	{mgl32.Vec3{0.0, -1.0, 0.0}, green}, // bottom centre
}

var TwoTrianglesIndices = []uint16{0, 1, 2, 3, 4}

// Attribute is one entry of the vertex layout.
type Attribute struct {
	Location   uint32
	Components int32
	Offset     uintptr
}

// Layout maps the interleaved vertex buffer onto the shader inputs:
// location 0 is the position, location 1 the colour.
var Layout = []Attribute{
	{Location: 0, Components: FloatsPerPosition, Offset: 0},
	{Location: 1, Components: FloatsPerColour, Offset: FloatsPerPosition * f32},
}

// Interleave flattens vertices into position/colour runs of FloatsPerVertex.
func Interleave(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*FloatsPerVertex)
	for _, v := range vertices {
		out = append(out, v.Position[:]...)
		out = append(out, v.Colour[:]...)
	}
	return out
}

// Triangles splits an index sequence using shared-vertex indexing: the
// first three indices are a triangle, and each following pair forms a
// triangle together with the last index of the previous one.
func Triangles(indices []uint16) ([][3]uint16, error) {
	if len(indices) < 3 || (len(indices)-3)%2 != 0 {
		return nil, fmt.Errorf("%d indices do not describe a shared-vertex triangle chain", len(indices))
	}
	tris := [][3]uint16{{indices[0], indices[1], indices[2]}}
	for i := 3; i < len(indices); i += 2 {
		prev := tris[len(tris)-1][2]
		tris = append(tris, [3]uint16{prev, indices[i], indices[i+1]})
	}
	return tris, nil
}

// Elements expands an index sequence into the plain triangle list that
// GL_TRIANGLES draws.
func Elements(indices []uint16) ([]uint16, error) {
	tris, err := Triangles(indices)
	if err != nil {
		return nil, err
	}
	out := make([]uint16, 0, len(tris)*3)
	for _, t := range tris {
		out = append(out, t[:]...)
	}
	return out, nil
}

// SharedVertices returns, in ascending order, the indices that belong to
// more than one triangle.
func SharedVertices(tris [][3]uint16) []uint16 {
	seen := map[uint16]int{}
	for _, t := range tris {
		for _, idx := range t {
			seen[idx]++
		}
	}
	var shared []uint16
	for idx, n := range seen {
		if n > 1 {
			shared = append(shared, idx)
		}
	}
	slices.Sort(shared)
	return shared
}
