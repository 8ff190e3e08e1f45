package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Issue creates a signed token for address, valid for the codec TTL.
func (c *Codec) Issue(address string) (string, error) {
	if address == "" {
		return "", ErrEmptyAddress
	}

	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   address,
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.keys[0])
	if err != nil {
		return "", errors.Join(ErrSigningFailed, err)
	}

	return signed, nil
}
