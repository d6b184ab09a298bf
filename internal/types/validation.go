package types

import (
	"errors"
	"fmt"
	"strings"
)

// ------------------------------
// Shared Errors
// ------------------------------

var (
	// ErrDecode is returned when a 2xx body does not match the expected shape.
	ErrDecode = errors.New("decode response")

	// ErrInvalidRecovery is returned unless exactly one of username or email is set.
	ErrInvalidRecovery = errors.New("recovery requires exactly one of username or email")

	// ErrEmptyPathSegment is returned when a username or slug is blank.
	ErrEmptyPathSegment = errors.New("empty path segment")
)

// ValidatePathSegment rejects blank path parameters before a request is built.
func ValidatePathSegment(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyPathSegment, field)
	}
	return nil
}

// ValidateRecovery enforces that exactly one identifier is provided.
func ValidateRecovery(req RecoveryRequest) error {
	hasUser := strings.TrimSpace(req.Username) != ""
	hasEmail := strings.TrimSpace(req.Email) != ""
	if hasUser == hasEmail {
		return ErrInvalidRecovery
	}
	return nil
}
