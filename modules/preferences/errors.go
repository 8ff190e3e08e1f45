package preferences

import "errors"

var (
	ErrNoStore     = errors.New("preferences: store is required")
	ErrNoResolver  = errors.New("preferences: identity resolver is required")
	ErrNotFound    = errors.New("preferences: not found")
	ErrQueryFailed = errors.New("preferences: query failed")
)
