package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// Verify checks integrity, issuer and expiry of raw and returns its claims.
// Any failure yields ok == false and the reason is not exposed.
func (c *Codec) Verify(raw string) (claims Claims, ok bool) {
	if raw == "" {
		return Claims{}, false
	}

	// Nothing past this boundary may panic on hostile input.
	defer func() {
		if recover() != nil {
			claims, ok = Claims{}, false
		}
	}()

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(c.now),
	)

	// Try all keys to support rotation; the first one that verifies wins.
	for _, key := range c.keys {
		var registered jwt.RegisteredClaims
		tok, err := parser.ParseWithClaims(raw, &registered, func(*jwt.Token) (any, error) {
			return key, nil
		})
		if err != nil || !tok.Valid {
			continue
		}
		if registered.Subject == "" {
			return Claims{}, false
		}
		return toClaims(registered), true
	}

	return Claims{}, false
}

func toClaims(rc jwt.RegisteredClaims) Claims {
	c := Claims{Address: rc.Subject}
	if rc.IssuedAt != nil {
		c.IssuedAt = rc.IssuedAt.Time
	}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c
}
