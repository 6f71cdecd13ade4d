package app

import (
	"log/slog"
	"sync/atomic"

	"github.com/fosdem/twotri/lib/kbdctl"
	"github.com/fosdem/twotri/lib/metrics"
	"github.com/fosdem/twotri/lib/stats"
	"github.com/fosdem/twotri/lib/utils"
)

type State int

const (
	Running State = iota
	Closing
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// Surface is what the loop needs from the window.
type Surface interface {
	kbdctl.KeyWindow
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
}

// Frame draws one frame into the back buffer.
type Frame interface {
	DrawFrame() error
}

type Loop struct {
	surface Surface
	frame   Frame
	stats   *stats.Stats

	// closeRequested may be set from other goroutines; the loop forwards
	// it to the window on its own thread.
	closeRequested *atomic.Bool
	onState        func(State)

	state State
	log   *slog.Logger
}

func NewLoop(surface Surface, frame Frame, s *stats.Stats, closeRequested *atomic.Bool, log *slog.Logger) *Loop {
	return &Loop{
		surface:        surface,
		frame:          frame,
		stats:          s,
		closeRequested: closeRequested,
		log:            log,
	}
}

// OnStateChange registers fn to run on every state transition.
func (l *Loop) OnStateChange(fn func(State)) {
	l.onState = fn
}

func (l *Loop) State() State {
	return l.state
}

func (l *Loop) setState(s State) {
	if l.state == s {
		return
	}
	l.state = s
	l.log.Debug("loop is now " + s.String())
	l.stats.SetState(s.String())
	if l.onState != nil {
		l.onState(s)
	}
}

// Run draws frames until the window is asked to close, by Escape, by the
// window system or through closeRequested. A frame that has started is
// always finished and presented.
func (l *Loop) Run() error {
	l.state = Running
	l.stats.SetState(Running.String())

	var deltaTimer utils.DeltaTimer
	for !l.surface.ShouldClose() {
		kbdctl.ProcessInput(l.surface)
		if l.closeRequested.Load() {
			l.surface.SetShouldClose(true)
		}
		if l.surface.ShouldClose() {
			l.setState(Closing)
		}

		err := l.frame.DrawFrame()
		if err != nil {
			l.setState(Closing)
			return err
		}

		l.surface.SwapBuffers()
		l.surface.PollEvents()

		metrics.FramesPresented.Inc()
		l.stats.Update(deltaTimer.Next())
	}
	l.setState(Closing)
	return nil
}
