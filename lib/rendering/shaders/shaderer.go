package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"

	"github.com/fosdem/twotri/lib/config"
)

//go:embed *.frag *.vert
var templateDir embed.FS

const (
	VertexTemplate   = "triangle.vert"
	FragmentTemplate = "triangle.frag"
)

type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the shader templates
type ShaderData struct {
	GLSLVersion int
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %w", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}

// Sources returns the vertex and fragment sources to build the program
// from: the override files named in cfg if any, otherwise the embedded
// templates rendered for the configured context version.
func Sources(cfg *config.Config) (vertex string, fragment string, err error) {
	shaderer, err := NewShaderer()
	if err != nil {
		return "", "", fmt.Errorf("could not get shaders: %w", err)
	}
	data := &ShaderData{GLSLVersion: cfg.GL.GLSLVersion()}

	vertex, err = shaderer.source(cfg.Shaders.Vertex, VertexTemplate, data)
	if err != nil {
		return "", "", fmt.Errorf("could not get vertex shader: %w", err)
	}
	fragment, err = shaderer.source(cfg.Shaders.Fragment, FragmentTemplate, data)
	if err != nil {
		return "", "", fmt.Errorf("could not get fragment shader: %w", err)
	}
	return vertex, fragment, nil
}

func (s *Shaderer) source(override config.CfgPath, name string, data *ShaderData) (string, error) {
	if override == "" {
		return s.GetShaderSource(name, data)
	}
	b, err := os.ReadFile(string(override))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
