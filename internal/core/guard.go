package core

import (
	"fmt"
	"runtime/debug"
)

// FrameError is returned by Guard when a frame panicked.
type FrameError struct {
	Value any
	Stack []byte
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame panicked: %v", e.Value)
}

// Guard runs one frame update and converts a panic into a *FrameError.
// Callers restore their previous state when Guard returns an error.
func Guard(update func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FrameError{Value: r, Stack: debug.Stack()}
		}
	}()
	return update()
}
