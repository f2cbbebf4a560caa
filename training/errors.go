package training

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an assignment, section or certificate does not
// exist or is not visible to the calling organization.
var ErrNotFound = errors.New("not found")

// ValidationError describes a rejected input. It never accompanies a partial
// write: bulk operations abort entirely on the first invalid entry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
