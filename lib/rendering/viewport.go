package rendering

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Viewport is the framebuffer area drawn into, anchored at the origin.
type Viewport struct {
	Width  int
	Height int
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

// SetViewport maps clip space onto the whole framebuffer. No aspect ratio
// correction is applied.
func SetViewport(width, height int) Viewport {
	gl.Viewport(0, 0, int32(width), int32(height))
	return Viewport{Width: width, Height: height}
}
