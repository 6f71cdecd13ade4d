package rendering

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ContextInfo describes the driver behind the current context.
type ContextInfo struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

// Init loads the GL function pointers for the context that is current on
// the calling thread.
func Init() (*ContextInfo, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("could not initialise OpenGL context: %w", err)
	}

	return &ContextInfo{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}, nil
}
