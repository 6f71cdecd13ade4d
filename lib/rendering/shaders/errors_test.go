package shaders

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCompileErrorNamesStage(t *testing.T) {
	err := fmt.Errorf("could not build program: %w", &CompileError{Stage: StageFragment, Log: "0:3: syntax error"})

	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("%v is not a CompileError", err)
	}
	if compileErr.Stage != StageFragment {
		t.Errorf("stage = %s, want fragment", compileErr.Stage)
	}
	if !strings.Contains(err.Error(), "failed to compile fragment shader: 0:3: syntax error") {
		t.Errorf("unexpected message %q", err)
	}

	var linkErr *LinkError
	if errors.As(err, &linkErr) {
		t.Error("compile error must not look like a link error")
	}
}

func TestTrimLog(t *testing.T) {
	if got := trimLog("ERROR: 0:1: oops\n\x00\x00"); got != "ERROR: 0:1: oops" {
		t.Errorf("got %q", got)
	}
}
