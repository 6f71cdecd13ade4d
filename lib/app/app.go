package app

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/fosdem/twotri/lib/api"
	"github.com/fosdem/twotri/lib/config"
	"github.com/fosdem/twotri/lib/log"
	"github.com/fosdem/twotri/lib/metrics"
	"github.com/fosdem/twotri/lib/rendering"
	"github.com/fosdem/twotri/lib/rendering/shaders"
	"github.com/fosdem/twotri/lib/stats"
	"github.com/fosdem/twotri/lib/utils"
	"github.com/fosdem/twotri/lib/window"
)

// App holds everything the program owns while it runs. Run creates it and
// releases its resources on every exit path.
type App struct {
	cfg *config.Config
	log *slog.Logger

	Window   *window.Window
	Program  *shaders.Program
	Mesh     *rendering.Mesh
	Renderer *rendering.FrameRenderer
	Stats    *stats.Stats
	Api      *api.Api

	closeRequested atomic.Bool
}

// Run opens the window, builds the program and mesh and renders until the
// window closes. It must be called on the main, OS-locked thread. Teardown
// order is mesh, program, window.
func Run(cfg *config.Config) error {
	a := &App{
		cfg:   cfg,
		log:   log.Module("app"),
		Stats: stats.New(),
	}

	// read shader files before any window shows up
	vertex, fragment, err := shaders.Sources(cfg)
	if err != nil {
		return err
	}

	a.Window, err = window.New(&cfg.Window, &cfg.GL)
	if err != nil {
		return err
	}
	defer func() {
		a.Window.Destroy()
		a.log.Debug("window destroyed")
	}()
	a.Window.OnResize(a.resized)
	a.resized(a.Window.Viewport())

	a.Program, err = shaders.CompileAndLink(vertex, fragment)
	if err != nil {
		metrics.ShaderFailures.WithLabelValues(failedStage(err)).Inc()
		return fmt.Errorf("could not init GL program: %w", err)
	}
	defer func() {
		a.Program.Destroy()
		a.log.Debug("shader program destroyed")
	}()

	a.Mesh, err = rendering.NewTwoTriangles()
	if err != nil {
		return fmt.Errorf("could not create mesh: %w", err)
	}
	defer func() {
		a.Mesh.Destroy()
		a.log.Debug("mesh destroyed")
	}()

	a.Renderer = rendering.NewFrameRenderer(a.Program, a.Mesh, utils.ColourVec4(cfg.ClearColour))
	a.Renderer.Start()

	a.Api = api.ServeInBackground(cfg, a.Stats, a.RequestClose)
	defer a.Api.Shutdown()

	loop := NewLoop(a.Window, a.Renderer, a.Stats, &a.closeRequested, a.log)
	loop.OnStateChange(func(s State) {
		a.Api.Broadcast("state", s.String())
	})
	a.log.Info("rendering")
	return loop.Run()
}

// RequestClose asks the render loop to stop after the current frame. It is
// safe to call from any goroutine.
func (a *App) RequestClose() {
	a.closeRequested.Store(true)
}

func (a *App) resized(v rendering.Viewport) {
	metrics.ObserveViewport(v.Width, v.Height)
	a.Stats.SetViewport(v.Width, v.Height)
	a.Api.Broadcast("viewport", v)
}

func failedStage(err error) string {
	var compileErr *shaders.CompileError
	if errors.As(err, &compileErr) {
		return string(compileErr.Stage)
	}
	return "link"
}
