package kbdctl

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// KeyWindow is the part of a GLFW window input handling needs.
// *glfw.Window implements it.
type KeyWindow interface {
	GetKey(key glfw.Key) glfw.Action
	SetShouldClose(value bool)
}

// ProcessInput requests the window to close while Escape is held. It
// reports whether it did so.
func ProcessInput(w KeyWindow) bool {
	if w.GetKey(glfw.KeyEscape) == glfw.Press {
		slog.Debug("escape pressed, closing", "module", "kbdctl")
		w.SetShouldClose(true)
		return true
	}
	return false
}

// Poll processes pending window system events, running any resize or
// close callbacks on the calling thread.
func Poll() {
	glfw.PollEvents()
}
