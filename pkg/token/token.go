package token

import (
	"fmt"
	"slices"
	"time"
)

const (
	minSecretLength = 32

	// DefaultTTL is the lifetime of a freshly issued session token.
	DefaultTTL = 7 * 24 * time.Hour
	// DefaultIssuer is written to the iss claim and required on verification.
	DefaultIssuer = "cardano-dashboard"
)

// Claims is the verified content of a session token.
type Claims struct {
	Address   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Codec signs and verifies session tokens with process-wide key material.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	keys   [][]byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// Option configures a Codec.
type Option func(*Codec)

// WithTTL sets the lifetime of issued tokens. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(c *Codec) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithIssuer overrides the issuer claim.
func WithIssuer(issuer string) Option {
	return func(c *Codec) {
		if issuer != "" {
			c.issuer = issuer
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Codec. The first secret signs, every secret verifies.
func New(secrets []string, opts ...Option) (*Codec, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	keys := make([][]byte, 0, len(secrets))
	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
		keys = append(keys, []byte(s))
	}

	c := &Codec{
		keys:   keys,
		ttl:    DefaultTTL,
		issuer: DefaultIssuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// TTL returns the lifetime given to issued tokens.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}
