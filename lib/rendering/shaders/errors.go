package shaders

import "fmt"

type Stage string

const (
	StageVertex   Stage = "vertex"
	StageFragment Stage = "fragment"
)

// CompileError is returned when one stage fails to compile. Log holds the
// driver's info log.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError is returned when both stages compiled but the program did not
// link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}
