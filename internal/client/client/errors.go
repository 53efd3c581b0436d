package client

import "errors"

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrRequestFailed = errors.New("request failed")
	ErrNoSession     = errors.New("no user logged in")
)

// User-facing messages.
const (
	MsgUnavailable        = "Failed to connect to the server. Please try again later."
	MsgAdminRequired      = "Admin access required"
	MsgCannotEditMaster   = "Cannot edit master recipes directly. Please create a personal copy first."
	MsgCannotDeleteMaster = "Cannot delete master recipes"
	MsgRecipeForbidden    = "You do not have access to this recipe"
	MsgCloneNotMaster     = "Only master recipes can be copied"
)

// APIError is returned for every failed call. Error() is the message meant
// for the user; Unwrap exposes the sentinel for errors.Is.
type APIError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }

func sentinelFor(status int) error {
	switch status {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 422:
		return ErrValidation
	default:
		return ErrRequestFailed
	}
}
