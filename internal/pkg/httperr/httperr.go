package httperr

import (
	"errors"
	"net/http"
)

var (
	ErrNotOwner     = errors.New("User must be an owner")
	ErrUnauthorized = errors.New("unauthorized")
)

// BusinessError is an error that already knows how it should be rendered.
type BusinessError struct {
	Status  int
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func New(status int, code, message string) error {
	return BusinessError{Status: status, Code: code, Message: message}
}

// StatusFor maps an error forwarded to the central handler onto an HTTP status
// and the message shown to the caller.
func StatusFor(err error) (int, string) {
	var be BusinessError
	switch {
	case errors.As(err, &be):
		return be.Status, be.Error()
	case errors.Is(err, ErrNotOwner):
		return http.StatusForbidden, ErrNotOwner.Error()
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "Token is not valid"
	default:
		return http.StatusInternalServerError, "Server error"
	}
}
