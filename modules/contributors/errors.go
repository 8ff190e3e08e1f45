package contributors

import "errors"

var (
	ErrNoStore      = errors.New("contributors: store is required")
	ErrListFailed   = errors.New("contributors: list failed")
	ErrTableMissing = errors.New("contributors: table does not exist")
	ErrInvalidTTL   = errors.New("contributors: cache ttl must be positive")
)
