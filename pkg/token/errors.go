package token

import "errors"

var (
	ErrNoSecret       = errors.New("token.no_secret")
	ErrSecretTooShort = errors.New("token.secret_too_short")
	ErrEmptyAddress   = errors.New("token.empty_address")
	ErrSigningFailed  = errors.New("token.signing_failed")
)
