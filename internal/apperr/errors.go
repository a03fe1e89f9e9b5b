package apperr

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to the shell. Operations wrap them with context,
// so callers match with errors.Is.
var (
	ErrValidation     = errors.New("invalid input")
	ErrDuplicateLogin = errors.New("login already exists")
	ErrAuthentication = errors.New("invalid login or password")
	ErrAuthorization  = errors.New("not authorized")
	ErrNotFound       = errors.New("not found")
)

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// IsKnown reports whether err carries one of the kinds above.
func IsKnown(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrDuplicateLogin) ||
		errors.Is(err, ErrAuthentication) ||
		errors.Is(err, ErrAuthorization) ||
		errors.Is(err, ErrNotFound)
}

// Message renders err for a human at the console.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuthentication):
		return "Invalid login or password."
	case errors.Is(err, ErrDuplicateLogin):
		return "This login is already taken."
	case errors.Is(err, ErrAuthorization):
		return "You need to be logged in as the trainer of this client."
	default:
		return "Error: " + err.Error()
	}
}
