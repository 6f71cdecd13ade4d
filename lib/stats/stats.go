package stats

import (
	"sync"
	"time"
)

// Stats is written by the render loop and read by the API. All methods
// are safe for concurrent use.
type Stats struct {
	mu   sync.Mutex
	snap Snapshot

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
}

type Snapshot struct {
	Frames         uint64  `json:"frames"`
	FPS            uint64  `json:"fps"`
	LastFrameMs    float64 `json:"last_frame_ms"`
	Uptime         float64 `json:"uptime"`
	ViewportWidth  int     `json:"viewport_width"`
	ViewportHeight int     `json:"viewport_height"`
	State          string  `json:"state"`
	WsClients      int     `json:"ws_clients"`
}

func New() *Stats {
	s := &Stats{}
	s.start = time.Now()
	s.frameTimer = s.start
	return s
}

// Update records one presented frame that took dt since the previous one.
func (s *Stats) Update(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Frames++
	s.frameCounter++
	if time.Since(s.frameTimer) > 1*time.Second {
		s.snap.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = time.Now()
	}

	s.snap.LastFrameMs = float64(dt.Microseconds()) / 1e3
	s.snap.Uptime = float64(time.Since(s.start).Nanoseconds()) / 1e9
}

func (s *Stats) SetViewport(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ViewportWidth = width
	s.snap.ViewportHeight = height
}

func (s *Stats) SetState(state string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.State = state
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.WsClients = n
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
