package shaders

import (
	"errors"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var ErrProgramDestroyed = errors.New("shader program has been destroyed")

// Program is a linked vertex+fragment program.
type Program struct {
	id        uint32
	destroyed bool
}

// CompileAndLink compiles both stages and links them. On failure every GL
// object created on the way is deleted again and no program is returned.
func CompileAndLink(vertexShaderSource, fragmentShaderSource string) (*Program, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER, StageVertex)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER, StageFragment)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		logmsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))
		gl.DeleteProgram(program)

		return nil, &LinkError{Log: trimLog(logmsg)}
	}

	// detached stages are freed right away by the deferred deletes
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	return &Program{id: program}, nil
}

func compileShader(source string, shaderType uint32, stage Stage) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		clog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))
		gl.DeleteShader(shader)

		return 0, &CompileError{Stage: stage, Log: trimLog(clog)}
	}

	return shader, nil
}

func trimLog(s string) string {
	return strings.TrimSpace(strings.TrimRight(s, "\x00"))
}

func (p *Program) ID() uint32 {
	return p.id
}

// Use makes this the current program.
func (p *Program) Use() error {
	if p.destroyed {
		return ErrProgramDestroyed
	}
	gl.UseProgram(p.id)
	return nil
}

// Destroy deletes the program. Calling it again does nothing.
func (p *Program) Destroy() {
	if p.destroyed {
		return
	}
	gl.DeleteProgram(p.id)
	p.id = 0
	p.destroyed = true
}
