package window

import "fmt"

// InitializationError is returned when the window or its context cannot be
// set up. Step names what was being attempted.
type InitializationError struct {
	Step string
	Err  error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("could not %s: %s", e.Step, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}
