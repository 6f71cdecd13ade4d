package shaders

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/fosdem/twotri/lib/config"
)

func TestTemplateNames(t *testing.T) {
	s, err := NewShaderer()
	if err != nil {
		t.Fatal(err)
	}
	names := s.TemplateNames()
	for _, want := range []string{VertexTemplate, FragmentTemplate} {
		if !slices.Contains(names, want) {
			t.Errorf("template %s missing from %v", want, names)
		}
	}
}

func TestSourcesFollowContextVersion(t *testing.T) {
	cfg := config.Default()
	vertex, fragment, err := Sources(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for name, src := range map[string]string{"vertex": vertex, "fragment": fragment} {
		if !strings.HasPrefix(src, "#version 440 core\n") {
			t.Errorf("%s source does not start with the 4.4 version line:\n%s", name, src)
		}
	}
	if !strings.Contains(vertex, "gl_Position = vec4(aPos, 1.0);") {
		t.Errorf("vertex stage should pass the position through:\n%s", vertex)
	}
	if !strings.Contains(fragment, "FragColor = colorFromVS;") {
		t.Errorf("fragment stage should output the interpolated colour:\n%s", fragment)
	}

	cfg.GL = config.GLCfg{Major: 3, Minor: 3}
	vertex, _, err = Sources(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(vertex, "#version 330 core\n") {
		t.Errorf("unexpected version line:\n%s", vertex)
	}
}

func TestSourcesUseOverrideFiles(t *testing.T) {
	dir := t.TempDir()
	fragPath := filepath.Join(dir, "custom.frag")
	custom := "#version 410 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"
	if err := os.WriteFile(fragPath, []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Shaders.Fragment = config.CfgPath(fragPath)
	vertex, fragment, err := Sources(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if fragment != custom {
		t.Errorf("override not used, got:\n%s", fragment)
	}
	if !strings.HasPrefix(vertex, "#version 440 core") {
		t.Errorf("vertex should still come from the embedded template:\n%s", vertex)
	}

	cfg.Shaders.Vertex = config.CfgPath(filepath.Join(dir, "missing.vert"))
	if _, _, err := Sources(cfg); err == nil {
		t.Error("missing override file should fail")
	}
}
