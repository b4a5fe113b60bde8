package generator

import "fmt"

// ErrInvalidOutput indicates the generator returned zero or malformed items.
// It is not retryable; the session that requested generation moves to its
// failed state and other sessions are unaffected.
type ErrInvalidOutput struct {
	Kind   Kind
	Reason string
}

func (e *ErrInvalidOutput) Error() string {
	return fmt.Sprintf("invalid %s output: %s", e.Kind, e.Reason)
}
