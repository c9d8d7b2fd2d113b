package phases

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks a programming contract violation, e.g. a hook registered
// for a phase that was never declared. Errors of this kind are raised using panic
// at the point of detection and are never retried.
var ErrConfiguration = errors.New("configuration error")

func configurationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
