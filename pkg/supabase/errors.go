package supabase

import "errors"

var (
	ErrMissingURL       = errors.New("supabase.missing_url")
	ErrMissingKey       = errors.New("supabase.missing_key")
	ErrInvalidTable     = errors.New("supabase.invalid_table")
	ErrRequestFailed    = errors.New("supabase.request_failed")
	ErrUnexpectedStatus = errors.New("supabase.unexpected_status")
	ErrDecodeFailed     = errors.New("supabase.decode_failed")
)
