package utils

import "errors"

// Common application errors used across services.
var (
	ErrDealerExists       = errors.New("dealer already exists")
	ErrDealerNotFound     = errors.New("dealer not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// ValidationError reports a field-level input failure. The request is
// rejected as a whole; no partial write happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Invalid builds a ValidationError for a field.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
