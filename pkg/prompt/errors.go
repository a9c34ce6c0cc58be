package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrUnresolved is returned when a nested model cannot be resolved.
	ErrUnresolved = errors.New("prompt: nested schema cannot be resolved")
)
