package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesPresented = promauto.NewCounter(prometheus.CounterOpts{
		Name: "twotri_frames_presented_total",
		Help: "Total number of frames drawn and swapped to the window",
	})
	ViewportResizes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "twotri_viewport_resizes_total",
		Help: "Total number of viewport updates caused by framebuffer resizes",
	})
	ViewportSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "twotri_viewport_pixels",
		Help: "Current viewport size in pixels",
	}, []string{"dimension"})
	ShaderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twotri_shader_failures_total",
		Help: "Total number of shader program build failures by stage (vertex, fragment, link)",
	}, []string{"stage"})
)

func ObserveViewport(width, height int) {
	ViewportResizes.Inc()
	ViewportSize.WithLabelValues("width").Set(float64(width))
	ViewportSize.WithLabelValues("height").Set(float64(height))
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
