package render

import (
	"errors"
	"fmt"
)

// ErrNoTarget is returned when a draw system is asked to draw without a
// destination image.
var ErrNoTarget = errors.New("no render target")

// DrawError reports a failed draw request. Err wraps the cause, for example
// drawables.ErrNotFound.
type DrawError struct {
	System string
	Err    error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("draw %s: %v", e.System, e.Err)
}

func (e *DrawError) Unwrap() error {
	return e.Err
}
