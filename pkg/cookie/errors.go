package cookie

import "errors"

var (
	ErrCookieNotFound = errors.New("cookie.not_found")
	ErrEmptyName      = errors.New("cookie.empty_name")
)
