// Package token issues and verifies the signed session tokens stored in the
// dashboard's authentication cookie.
//
// A token is an HS256 JWT whose subject is the wallet address of the
// authenticated principal. Tokens carry issued-at, expiry and issuer claims.
//
// # Usage
//
//	import "github.com/meshjs/dashboard/pkg/token"
//
//	codec, err := token.New([]string{os.Getenv("SESSION_SECRET")}, token.WithTTL(24*time.Hour))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	raw, err := codec.Issue("addr1xyz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	claims, ok := codec.Verify(raw)
//	if !ok {
//	    // treat the caller as anonymous
//	}
//	_ = claims.Address
//
// # Key rotation
//
// The codec accepts several secrets. The first one signs new tokens; all of
// them are tried on verification so tokens issued before a rotation stay
// valid until they expire.
//
// # Error Handling
//
// New and Issue return sentinel errors (ErrNoSecret, ErrSecretTooShort,
// ErrEmptyAddress). Verify never returns an error: a malformed, tampered,
// expired or foreign token is reported with ok == false and nothing else,
// so callers cannot tell verification failures apart.
package token
