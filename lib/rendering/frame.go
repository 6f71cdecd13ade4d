package rendering

import (
	"github.com/fosdem/twotri/lib/rendering/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// FrameRenderer draws one mesh with one program per frame.
type FrameRenderer struct {
	Program     *shaders.Program
	Mesh        *Mesh
	ClearColour mgl32.Vec4
}

func NewFrameRenderer(program *shaders.Program, mesh *Mesh, clearColour mgl32.Vec4) *FrameRenderer {
	return &FrameRenderer{
		Program:     program,
		Mesh:        mesh,
		ClearColour: clearColour,
	}
}

// Start sets the state that stays fixed for every frame.
func (r *FrameRenderer) Start() {
	gl.ClearColor(r.ClearColour[0], r.ClearColour[1], r.ClearColour[2], r.ClearColour[3])
}

// DrawFrame clears the colour buffer and draws the mesh. It does not
// present the frame.
func (r *FrameRenderer) DrawFrame() error {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	err := r.Program.Use()
	if err != nil {
		return err
	}
	return r.Mesh.Draw()
}
