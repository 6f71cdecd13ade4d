package stats

import (
	"sync"
	"testing"
	"time"
)

func TestUpdateCountsFrames(t *testing.T) {
	s := New()
	s.Update(0)
	s.Update(16 * time.Millisecond)

	snap := s.Snapshot()
	if snap.Frames != 2 {
		t.Errorf("frames = %d, want 2", snap.Frames)
	}
	if snap.LastFrameMs != 16 {
		t.Errorf("last frame = %vms, want 16", snap.LastFrameMs)
	}
	if snap.FPS != 0 {
		t.Errorf("fps should stay 0 within the first second, got %d", snap.FPS)
	}
}

func TestUpdatePublishesFPSEverySecond(t *testing.T) {
	s := New()
	s.frameTimer = time.Now().Add(-2 * time.Second)
	for range 3 {
		s.Update(time.Millisecond)
	}
	if fps := s.Snapshot().FPS; fps != 1 {
		t.Errorf("fps = %d, want 1 (the window closed on the first frame)", fps)
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 100 {
			s.Update(time.Millisecond)
			s.SetViewport(400, 300)
		}
	}()
	go func() {
		defer wg.Done()
		for range 100 {
			_ = s.Snapshot()
			s.SetWsClients(1)
		}
	}()
	wg.Wait()

	snap := s.Snapshot()
	if snap.Frames != 100 || snap.ViewportWidth != 400 || snap.WsClients != 1 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}
