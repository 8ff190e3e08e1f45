package auth

import "errors"

var (
	ErrNoIssuer            = errors.New("auth.no_issuer")
	ErrInvalidCookiePolicy = errors.New("auth.invalid_cookie_policy")
	ErrStartSession        = errors.New("auth.start_session_failed")
)
