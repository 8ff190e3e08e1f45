package session

import (
	"net/http"

	"github.com/meshjs/dashboard/pkg/token"
)

// Verifier checks a raw session token. *token.Codec implements it.
type Verifier interface {
	Verify(raw string) (token.Claims, bool)
}

// CookieReader returns the raw session cookie value. *cookie.Manager implements it.
type CookieReader interface {
	Get(r *http.Request) (string, error)
}

// Resolver maps an inbound request to an Identity.
type Resolver struct {
	verifier Verifier
	cookies  CookieReader
}

// NewResolver creates a resolver reading the token through cookies.
func NewResolver(verifier Verifier, cookies CookieReader) *Resolver {
	return &Resolver{verifier: verifier, cookies: cookies}
}

// Resolve never fails: anything short of a verified token yields the zero Identity.
func (res *Resolver) Resolve(r *http.Request) Identity {
	if res == nil || res.verifier == nil || res.cookies == nil || r == nil {
		return Identity{}
	}

	raw, err := res.cookies.Get(r)
	if err != nil || raw == "" {
		return Identity{}
	}

	claims, ok := res.verifier.Verify(raw)
	if !ok || claims.Address == "" {
		return Identity{}
	}

	return Identity{Address: claims.Address}
}
