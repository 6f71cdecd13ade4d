package window

import (
	"log/slog"

	"github.com/fosdem/twotri/lib/config"
	"github.com/fosdem/twotri/lib/kbdctl"
	"github.com/fosdem/twotri/lib/log"
	"github.com/fosdem/twotri/lib/rendering"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns the GLFW window and its core-profile context. All methods
// must be called from the thread that created it.
type Window struct {
	handle  *glfw.Window
	Context *rendering.ContextInfo

	viewport    rendering.Viewport
	setViewport func(width, height int) rendering.Viewport
	onResize    func(rendering.Viewport)

	log       *slog.Logger
	destroyed bool
}

// New creates the window, makes its context current on the calling thread
// and loads OpenGL. The caller must have locked its OS thread.
func New(cfg *config.WindowCfg, glCfg *config.GLCfg) (*Window, error) {
	w := &Window{
		setViewport: rendering.SetViewport,
		log:         log.Module("window"),
	}

	w.log.Debug("Initializing window")
	if err := glfw.Init(); err != nil {
		return nil, &InitializationError{Step: "initialize glfw", Err: err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, glCfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, glCfg.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &InitializationError{Step: "create window", Err: err}
	}
	w.handle = window

	window.MakeContextCurrent()

	w.Context, err = rendering.Init()
	if err != nil {
		w.Destroy()
		return nil, &InitializationError{Step: "load OpenGL", Err: err}
	}
	w.log.Info("OpenGL version " + w.Context.Vendor + " / " + w.Context.Renderer + " / " + w.Context.Version)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.framebufferResized(width, height)
	})
	w.framebufferResized(window.GetFramebufferSize())

	return w, nil
}

func (w *Window) framebufferResized(width, height int) {
	w.viewport = w.setViewport(width, height)
	w.log.Debug("viewport resized to " + w.viewport.String())
	if w.onResize != nil {
		w.onResize(w.viewport)
	}
}

// OnResize registers fn to run after every viewport change, on the thread
// that polls events.
func (w *Window) OnResize(fn func(rendering.Viewport)) {
	w.onResize = fn
}

func (w *Window) Viewport() rendering.Viewport {
	return w.viewport
}

func (w *Window) GetKey(key glfw.Key) glfw.Action {
	return w.handle.GetKey(key)
}

func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

func (w *Window) SetShouldClose(value bool) {
	w.handle.SetShouldClose(value)
}

func (w *Window) SwapBuffers() {
	w.handle.SwapBuffers()
}

// PollEvents runs pending window system callbacks, resize included.
func (w *Window) PollEvents() {
	kbdctl.Poll()
}

// Destroy closes the window and shuts GLFW down. Calling it again does
// nothing.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	if w.handle != nil {
		w.handle.Destroy()
		w.handle = nil
	}
	glfw.Terminate()
}
