package apperr

import "net/http"

// Error is an error the API reports to the caller as-is: Status becomes the
// HTTP status and Message the body text. Any other error is treated as an
// internal failure.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}
