package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

type jsonResponse struct {
	status int
	header http.Header
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for k, vs := range j.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONHeader adds a response header, e.g. Allow on 405 responses.
func WithJSONHeader(key, value string) JSONOption {
	return func(r *jsonResponse) {
		if r.header == nil {
			r.header = make(http.Header)
		}
		r.header.Add(key, value)
	}
}

// JSON renders v as the response body with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err as {"error": "..."}.
// HTTPError keeps its code and key, ValidationError becomes 422 with per-field
// messages, anything else becomes a generic 500 so internal details never leak.
func JSONError(err error, opts ...JSONOption) Response {
	status, body := errorToBody(err)
	r := &jsonResponse{status: status, body: body}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorToBody(err error) (int, ErrorBody) {
	var valErr ValidationError
	if errors.As(err, &valErr) {
		body := ErrorBody{Error: "Validation failed"}
		if len(valErr) > 0 {
			body.Fields = make(map[string][]string, len(valErr))
			maps.Copy(body.Fields, valErr)
		}
		return http.StatusUnprocessableEntity, body
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, ErrorBody{Error: httpErr.Key}
	}

	return http.StatusInternalServerError, ErrorBody{Error: ErrInternalServerError.Key}
}
