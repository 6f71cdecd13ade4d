// Package api serves frame statistics and a close request over HTTP.
//
//	@title			twotri
//	@version		1.0
//	@description	Status API of the two-triangle renderer.
//	@BasePath		/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/fosdem/twotri/lib/config"
	"github.com/fosdem/twotri/lib/log"
	"github.com/fosdem/twotri/lib/metrics"
	"github.com/fosdem/twotri/lib/stats"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fosdem/twotri/docs"
)

type Api struct {
	srv http.Server
	mux *http.ServeMux
	cfg *config.Config
	log *slog.Logger

	Stats        *stats.Stats
	requestClose func()

	wsMu      sync.Mutex
	wsClients map[*websocket.Conn]chan []byte
}

// New prepares the API. requestClose is called from server goroutines and
// must be safe for concurrent use.
func New(cfg *config.Config, s *stats.Stats, requestClose func()) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.srv.Addr = cfg.Api.Bind
	a.srv.Handler = a.mux
	a.log = log.Module("api")
	a.Stats = s
	a.requestClose = requestClose
	a.wsClients = make(map[*websocket.Conn]chan []byte)

	if cfg.Api.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("POST /api/kill", a.kill)
	a.mux.HandleFunc("GET /api/stats", a.getStats)
	a.mux.HandleFunc("GET /api/config", a.handleConfig)
	a.mux.HandleFunc("GET /api/ws", a.handleWebsocket)
	a.mux.Handle("GET /metrics", metrics.Handler())
	a.mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	return a
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

// Shutdown stops the server and disconnects websocket clients. A nil Api
// is a no-op so callers need not check whether the API was configured.
func (a *Api) Shutdown() {
	if a == nil {
		return
	}
	err := a.srv.Close()
	if err != nil {
		a.log.Warn("could not close web server", "err", err)
	}
	a.wsMu.Lock()
	defer a.wsMu.Unlock()
	for ws, send := range a.wsClients {
		close(send)
		delete(a.wsClients, ws)
	}
}

// @Summary	Ask the renderer to close its window and exit
// @Router		/api/kill [post]
// @Tags		base
// @Success	200
func (a *Api) kill(w http.ResponseWriter, _ *http.Request) {
	a.log.Info("shutting down as per api request")
	a.requestClose()
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.log.Warn("could not write response", "err", err)
		return
	}
}

// @Summary	Get frame statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Snapshot
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats.Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

type Config struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Title       string `json:"title"`
	GLVersion   string `json:"gl_version"`
	GLSLVersion int    `json:"glsl_version"`
	ClearColour string `json:"clear_colour"`
}

// @Summary	Get the active configuration
// @Router		/api/config [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	Config
func (a *Api) handleConfig(w http.ResponseWriter, _ *http.Request) {
	result := &Config{
		Width:       a.cfg.Window.Width,
		Height:      a.cfg.Window.Height,
		Title:       a.cfg.Window.Title,
		GLVersion:   fmt.Sprintf("%d.%d", a.cfg.GL.Major, a.cfg.GL.Minor),
		GLSLVersion: a.cfg.GL.GLSLVersion(),
		ClearColour: a.cfg.ClearColour,
	}
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(result)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode config: %s", err), http.StatusInternalServerError)
		return
	}
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// ServeInBackground starts the API when cfg.Api is set and returns nil
// otherwise.
func ServeInBackground(cfg *config.Config, s *stats.Stats, requestClose func()) *Api {
	if cfg.Api == nil {
		return nil
	}
	theApi := New(cfg, s, requestClose)

	theApi.log.Info("starting web server on " + cfg.Api.Bind)
	go func() {
		err := theApi.Serve()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			theApi.log.Error("web server stopped", "err", err)
		}
	}()
	return theApi
}
