package rendering

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var ErrMeshDestroyed = errors.New("mesh has been destroyed")

// Mesh owns a vertex array object together with its vertex and element
// buffers. The contents are uploaded once and never changed.
type Mesh struct {
	vao  uint32
	vbos [2]uint32

	indexCount   int
	elementCount int32
	destroyed    bool
}

// NewTwoTriangles uploads the fixed two-triangle shape.
func NewTwoTriangles() (*Mesh, error) {
	return NewMesh(TwoTriangles, TwoTrianglesIndices)
}

// NewMesh checks the geometry and uploads it. Nothing is allocated on the
// GPU when the geometry is rejected.
func NewMesh(vertices []Vertex, indices []uint16) (*Mesh, error) {
	for _, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("index %d out of range for %d vertices", idx, len(vertices))
		}
	}
	elements, err := Elements(indices)
	if err != nil {
		return nil, err
	}
	verts := Interleave(vertices)

	m := &Mesh{
		indexCount:   len(indices),
		elementCount: int32(len(elements)),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(2, &m.vbos[0])
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[0])
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*f32, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.vbos[1])
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(elements)*u16, gl.Ptr(elements), gl.STATIC_DRAW)

	for _, a := range Layout {
		gl.VertexAttribPointerWithOffset(a.Location, a.Components, gl.FLOAT, false, Stride, a.Offset)
		gl.EnableVertexAttribArray(a.Location)
	}

	// the element buffer binding is part of the VAO state, so only the
	// array buffer is reset
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return m, nil
}

// IndexCount is the length of the index sequence the mesh was built from.
func (m *Mesh) IndexCount() int {
	return m.indexCount
}

func (m *Mesh) Destroyed() bool {
	return m.destroyed
}

// Draw issues one indexed triangle draw over the whole element buffer and
// leaves no vertex array bound.
func (m *Mesh) Draw() error {
	if m.destroyed {
		return ErrMeshDestroyed
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.elementCount, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	return nil
}

// Destroy releases the GPU storage. Calling it again does nothing.
func (m *Mesh) Destroy() {
	if m.destroyed {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(2, &m.vbos[0])
	m.vao = 0
	m.vbos = [2]uint32{}
	m.destroyed = true
}
