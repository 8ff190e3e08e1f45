package handler

import "net/http"

// HTTPError is an error with a status code and a client-safe message.
// The Key is written verbatim into the "error" field of the JSON body.
type HTTPError struct {
	Code int
	Key  string
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "Invalid request body"}
	ErrUnauthorized        = HTTPError{Code: http.StatusUnauthorized, Key: "Unauthorized"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "Not Found"}
	ErrMethodNotAllowed    = HTTPError{Code: http.StatusMethodNotAllowed, Key: "Method Not Allowed"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "Internal server error"}
)

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}
