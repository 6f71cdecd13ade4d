package shaders_test

import (
	"errors"
	"testing"

	"github.com/fosdem/twotri/lib/config"
	"github.com/fosdem/twotri/lib/rendering/gltest"
	"github.com/fosdem/twotri/lib/rendering/shaders"
)

func sources(t *testing.T) (string, string) {
	t.Helper()
	cfg := config.Default()
	cfg.GL = config.GLCfg{Major: 4, Minor: 1}
	vertex, fragment, err := shaders.Sources(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return vertex, fragment
}

func TestCompileAndLink(t *testing.T) {
	gltest.Context(t)
	vertex, fragment := sources(t)

	program, err := shaders.CompileAndLink(vertex, fragment)
	if err != nil {
		t.Fatal(err)
	}
	if program.ID() == 0 {
		t.Error("program has no GL name")
	}
	if err := program.Use(); err != nil {
		t.Errorf("could not bind program: %s", err)
	}

	program.Destroy()
	if err := program.Use(); !errors.Is(err, shaders.ErrProgramDestroyed) {
		t.Errorf("use after destroy returned %v", err)
	}
	program.Destroy()
}

func TestCompileAndLinkReportsFailingStage(t *testing.T) {
	gltest.Context(t)
	vertex, fragment := sources(t)
	broken := "#version 410 core\nvoid main() { this is not glsl }\n"

	cases := []struct {
		name     string
		vertex   string
		fragment string
		stage    shaders.Stage
	}{
		{"vertex", broken, fragment, shaders.StageVertex},
		{"fragment", vertex, broken, shaders.StageFragment},
		{"both", broken, broken, shaders.StageVertex},
	}
	// no subtests: the context is only current on this goroutine's thread
	for _, c := range cases {
		program, err := shaders.CompileAndLink(c.vertex, c.fragment)
		if program != nil {
			t.Errorf("%s: a program was returned for broken sources", c.name)
		}
		var compileErr *shaders.CompileError
		if !errors.As(err, &compileErr) {
			t.Errorf("%s: expected a CompileError, got %v", c.name, err)
			continue
		}
		if compileErr.Stage != c.stage {
			t.Errorf("%s: stage = %s, want %s", c.name, compileErr.Stage, c.stage)
		}
		if compileErr.Log == "" {
			t.Errorf("%s: driver log is empty", c.name)
		}
	}
}

func TestCompileAndLinkReportsLinkFailure(t *testing.T) {
	gltest.Context(t)
	vertex, _ := sources(t)
	// compiles on its own but cannot be linked into a program
	noMain := "#version 410 core\nin vec4 colorFromVS;\nout vec4 FragColor;\nvoid helper() { FragColor = colorFromVS; }\n"

	program, err := shaders.CompileAndLink(vertex, noMain)
	if program != nil {
		t.Error("a program was returned for an unlinkable pair")
	}
	var linkErr *shaders.LinkError
	if !errors.As(err, &linkErr) {
		t.Fatalf("expected a LinkError, got %v", err)
	}
}
