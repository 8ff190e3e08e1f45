package handler

import "net/http"

type failure struct {
	err error
}

func (f failure) Render(http.ResponseWriter, *http.Request) error {
	return f.err
}

// Error hands err to the ErrorHandler configured on Wrap instead of writing
// a body itself, so the error is logged and translated in one place.
func Error(err error) Response {
	if err == nil {
		err = ErrNilResponse
	}
	return failure{err: err}
}
