package auth

import "github.com/meshjs/dashboard/pkg/cookie"

// Config carries the deployment flags of the session endpoints.
// Production adds HttpOnly and Secure to the session cookie.
type Config struct {
	Production bool
	Cookie     cookie.Config
}
