package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/fosdem/twotri/lib/config"
	"github.com/fosdem/twotri/lib/metrics"
	"github.com/fosdem/twotri/lib/rendering/shaders"
	"github.com/fosdem/twotri/lib/window"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFailedStage(t *testing.T) {
	cases := map[string]error{
		"vertex":   &shaders.CompileError{Stage: shaders.StageVertex},
		"fragment": fmt.Errorf("wrapped: %w", &shaders.CompileError{Stage: shaders.StageFragment}),
		"link":     &shaders.LinkError{Log: "no main"},
	}
	for want, err := range cases {
		if got := failedStage(err); got != want {
			t.Errorf("failedStage(%v) = %s, want %s", err, got, want)
		}
	}
}

func TestRequestClose(t *testing.T) {
	a := &App{}
	if a.closeRequested.Load() {
		t.Fatal("close requested from the start")
	}
	a.RequestClose()
	if !a.closeRequested.Load() {
		t.Error("close not requested")
	}
}

func TestRunFailsBeforeWindowOnMissingShader(t *testing.T) {
	cfg := testConfig(t)
	cfg.Shaders.Fragment = "/nonexistent/broken.frag"

	err := Run(cfg)
	if err == nil {
		t.Fatal("expected an error")
	}
	var compileErr *shaders.CompileError
	if errors.As(err, &compileErr) {
		t.Error("the file is missing, nothing should have been compiled")
	}
}

func TestRunRejectsMalformedFragmentShader(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	path := filepath.Join(t.TempDir(), "broken.frag")
	err := os.WriteFile(path, []byte("#version 410 core\nout vec4 FragColor;\nvoid main() { FragColor = }\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(t)
	cfg.Shaders.Fragment = config.CfgPath(path)
	failures := metrics.ShaderFailures.WithLabelValues("fragment")
	before := testutil.ToFloat64(failures)

	err = Run(cfg)

	var initErr *window.InitializationError
	if errors.As(err, &initErr) {
		t.Skipf("no window available: %s", err)
	}
	var compileErr *shaders.CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("expected a CompileError, got %v", err)
	}
	if compileErr.Stage != shaders.StageFragment {
		t.Errorf("stage = %s, want fragment", compileErr.Stage)
	}
	if got := testutil.ToFloat64(failures) - before; got != 1 {
		t.Errorf("fragment failure counter moved by %v, want 1", got)
	}
}
