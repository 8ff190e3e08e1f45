// Package cookie writes and reads the dashboard session cookie.
//
// A Manager is built from a Policy that fixes the cookie name, path, domain and
// SameSite mode. The HttpOnly and Secure attributes follow the Production flag:
// they are emitted only for production deployments so that local builds served
// over plain http keep working.
//
// # Usage
//
//	import "github.com/meshjs/dashboard/pkg/cookie"
//
//	man, err := cookie.New(cookie.DefaultPolicy(cfg.Production))
//	if err != nil {
//	    return err
//	}
//
//	man.Set(w, signedToken, int(ttl.Seconds()))
//	raw, err := man.Get(r)
//	man.Clear(w) // cd_auth=; Path=/; Max-Age=0; SameSite=Lax
//
// # Error Handling
//
// Get returns ErrCookieNotFound when the cookie is absent. New returns
// ErrEmptyName when the policy has no cookie name.
package cookie
