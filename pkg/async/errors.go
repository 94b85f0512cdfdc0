package async

import (
	"errors"
	"fmt"
)

// ErrTimeout is returned by AwaitWithTimeout when the future does not
// complete within the given duration.
var ErrTimeout = errors.New("async: operation timed out waiting for future completion")

// PanicError records a panic recovered while completing a future.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("async: recovered panic: %v", e.Value)
}

// IsPanicError reports whether err wraps a recovered panic.
func IsPanicError(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}
