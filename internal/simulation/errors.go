package simulation

import (
	"errors"
	"fmt"
)

// ErrRandomSource indicates the entropy source used to seed the generator
// could not be read. There is no retry; the caller surfaces it as a fatal
// simulation failure.
var ErrRandomSource = errors.New("random source unavailable")

// InvalidParameterError reports which simulation parameter failed validation.
// It is always returned before any path is generated.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
}
