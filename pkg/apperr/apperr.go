package apperr

import "errors"

// Error kinds used across services. Handlers map these to HTTP status codes
// in a single place; services never pick status codes themselves.
var (
	ErrValidation     = errors.New("validation error")
	ErrAuthentication = errors.New("authentication error")
	ErrAuthorization  = errors.New("authorization error")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
)

// Error carries a user-facing message tagged with one of the kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// New builds an Error of the given kind. Match with errors.Is.
func New(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}
