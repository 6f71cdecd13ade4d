// Package gltest provides a hidden OpenGL context for tests that need to
// talk to a driver.
package gltest

import (
	"runtime"
	"testing"

	"github.com/fosdem/twotri/lib/rendering"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Context makes a hidden 4.1 core context current on the calling
// goroutine's thread and skips the test when no display or driver is
// available. Everything is torn down in t.Cleanup.
func Context(t *testing.T) *rendering.ContextInfo {
	t.Helper()
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		runtime.UnlockOSThread()
		t.Skipf("no display available: %s", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(64, 64, t.Name(), nil, nil)
	if err != nil {
		glfw.Terminate()
		runtime.UnlockOSThread()
		t.Skipf("no OpenGL 4.1 core context available: %s", err)
	}
	window.MakeContextCurrent()

	t.Cleanup(func() {
		window.Destroy()
		glfw.Terminate()
		runtime.UnlockOSThread()
	})

	info, err := rendering.Init()
	if err != nil {
		t.Skipf("could not load OpenGL: %s", err)
	}
	return info
}
