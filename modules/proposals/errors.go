package proposals

import (
	"errors"
	"net/http"

	"github.com/meshjs/dashboard/handler"
)

var (
	ErrNoStorage = errors.New("proposals: storage is required")

	// ErrContentNotFound is the only failure clients see for content reads.
	ErrContentNotFound = handler.NewHTTPError(http.StatusNotFound, "Proposal content not found")
)
