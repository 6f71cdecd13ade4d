package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveViewport(t *testing.T) {
	before := testutil.ToFloat64(ViewportResizes)

	ObserveViewport(400, 300)

	if got := testutil.ToFloat64(ViewportResizes) - before; got != 1 {
		t.Errorf("resize counter moved by %v, want 1", got)
	}
	if w := testutil.ToFloat64(ViewportSize.WithLabelValues("width")); w != 400 {
		t.Errorf("width gauge = %v", w)
	}
	if h := testutil.ToFloat64(ViewportSize.WithLabelValues("height")); h != 300 {
		t.Errorf("height gauge = %v", h)
	}
}

func TestHandlerExposesCounters(t *testing.T) {
	FramesPresented.Inc()
	ShaderFailures.WithLabelValues("fragment").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{"twotri_frames_presented_total", `twotri_shader_failures_total{stage="fragment"}`} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output lacks %s", want)
		}
	}
}
