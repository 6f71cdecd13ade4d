package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/twotri/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

const (
	DefaultWidth       = 800
	DefaultHeight      = 600
	DefaultTitle       = "2-D Triangles"
	DefaultGLMajor     = 4
	DefaultGLMinor     = 4
	DefaultClearColour = "#000000ff"
)

type Config struct {
	Window      WindowCfg
	GL          GLCfg  `yaml:"gl"`
	ClearColour string `yaml:"clear_colour"`
	Shaders     ShadersCfg
	Api         *ApiCfg
}

type WindowCfg struct {
	Width  int
	Height int
	Title  string
}

// GLCfg is the requested context version. The profile is always core.
type GLCfg struct {
	Major int
	Minor int
}

// ShadersCfg optionally replaces the embedded shader sources with files on
// disk. Relative paths are taken relative to the config file.
type ShadersCfg struct {
	Vertex   CfgPath
	Fragment CfgPath
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Window: WindowCfg{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
		},
		GL: GLCfg{
			Major: DefaultGLMajor,
			Minor: DefaultGLMinor,
		},
		ClearColour: DefaultClearColour,
	}
}

func Parse(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}

	return ParseBytes(b, filepath.Dir(absFilename))
}

// ParseBytes decodes a YAML document on top of Default and validates the
// result. base is the directory relative shader paths are resolved against.
func ParseBytes(b []byte, base string) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(b)) > 0 {
		m := yaml.NewDecoder(bytes.NewReader(b), yaml.DisallowUnknownField())
		err := m.Decode(cfg)
		if err != nil {
			return nil, err
		}
	}
	cfg.Shaders.Vertex = cfg.Shaders.Vertex.Resolve(base)
	cfg.Shaders.Fragment = cfg.Shaders.Fragment.Resolve(base)

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	err := c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window is invalid: %w", err)
	}
	err = c.GL.Validate()
	if err != nil {
		return fmt.Errorf("gl is invalid: %w", err)
	}
	if c.ClearColour == "" {
		return fmt.Errorf("please set clear_colour in the config")
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}
	err = c.Shaders.Validate()
	if err != nil {
		return fmt.Errorf("shaders are invalid: %w", err)
	}
	if c.Api != nil {
		err = c.Api.Validate()
		if err != nil {
			return fmt.Errorf("api is invalid: %w", err)
		}
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %dx%d %q\n", c.Window.Width, c.Window.Height, c.Window.Title))

	b.WriteString("\nContext:\n")
	b.WriteString(fmt.Sprintf("  OpenGL %d.%d core (GLSL %d)\n", c.GL.Major, c.GL.Minor, c.GL.GLSLVersion()))
	b.WriteString(fmt.Sprintf("  clear colour %s\n", c.ClearColour))

	b.WriteString("\nShaders:\n")
	b.WriteString(fmt.Sprintf("  vertex: %s\n", c.Shaders.Vertex.OrEmbedded()))
	b.WriteString(fmt.Sprintf("  fragment: %s\n", c.Shaders.Fragment.OrEmbedded()))

	if c.Api != nil {
		b.WriteString("\nApi:\n")
		b.WriteString(fmt.Sprintf("  %s\n", c.Api.Bind))
	}

	return b.String()
}

func (w *WindowCfg) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("size must be positive, got %dx%d", w.Width, w.Height)
	}
	if w.Title == "" {
		return fmt.Errorf("title must be specified")
	}
	return nil
}

func (g *GLCfg) Validate() error {
	if g.Minor < 0 || g.Minor > 9 {
		return fmt.Errorf("minor version %d out of range", g.Minor)
	}
	if g.Major < 3 || (g.Major == 3 && g.Minor < 2) {
		return fmt.Errorf("a core profile needs at least OpenGL 3.2, got %d.%d", g.Major, g.Minor)
	}
	if g.Major > 4 || (g.Major == 4 && g.Minor > 6) {
		return fmt.Errorf("OpenGL %d.%d does not exist", g.Major, g.Minor)
	}
	return nil
}

// GLSLVersion is the shading language version matching the context
// version, as written after #version.
func (g *GLCfg) GLSLVersion() int {
	if g.Major == 3 && g.Minor < 3 {
		return 150
	}
	return g.Major*100 + g.Minor*10
}

func (s *ShadersCfg) Validate() error {
	for stage, p := range map[string]CfgPath{"vertex": s.Vertex, "fragment": s.Fragment} {
		if p == "" {
			continue
		}
		st, err := os.Stat(string(p))
		if err != nil {
			return fmt.Errorf("%s shader: %w", stage, err)
		}
		if st.IsDir() {
			return fmt.Errorf("%s shader: %s is a directory", stage, p)
		}
	}
	return nil
}

func (a *ApiCfg) Validate() error {
	if a.Bind == "" {
		return fmt.Errorf("bind address must be specified")
	}
	return nil
}
