package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation   = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal error")
)

// E carries an HTTP status and a caller-safe message. Wrapped causes stay
// server-side; handlers serialize only Msg.
type E struct {
	Status int
	Msg    string
	cause  error
}

func (e *E) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

func (e *E) Unwrap() error { return e.cause }

func New(status int, msg string) *E { return &E{Status: status, Msg: msg} }

func Wrap(status int, msg string, cause error) *E {
	return &E{Status: status, Msg: msg, cause: cause}
}

func BadRequest(msg string) *E {
	return &E{Status: http.StatusBadRequest, Msg: msg, cause: ErrValidation}
}

func Forbidden(msg string) *E { return &E{Status: http.StatusForbidden, Msg: msg, cause: ErrForbidden} }

func NotFound(msg string) *E { return &E{Status: http.StatusNotFound, Msg: msg, cause: ErrNotFound} }

func Internal(cause error) *E {
	return &E{Status: http.StatusInternalServerError, Msg: "Server error", cause: cause}
}

// StatusOf maps any error to the HTTP status a handler should answer with.
func StatusOf(err error) int {
	var e *E
	if errors.As(err, &e) {
		return e.Status
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// MessageOf returns the caller-safe message for err. Internal errors never
// leak their cause.
func MessageOf(err error) string {
	var e *E
	if errors.As(err, &e) {
		return e.Msg
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return "Not found"
	case errors.Is(err, ErrValidation):
		return "Invalid input"
	case errors.Is(err, ErrForbidden):
		return "Forbidden"
	case errors.Is(err, ErrUnauthorized):
		return "Unauthorized"
	default:
		return "Server error"
	}
}
