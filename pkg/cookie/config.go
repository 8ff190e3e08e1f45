package cookie

import "net/http"

// DefaultName is the session cookie name shared by both dashboards.
const DefaultName = "cd_auth"

// Policy describes the attributes written with the session cookie.
// HttpOnly and Secure are derived from Production and cannot be set directly.
type Policy struct {
	Name       string
	Production bool
	Path       string
	Domain     string
	SameSite   http.SameSite
}

// Config holds the environment-driven part of the policy.
type Config struct {
	Name   string `env:"SESSION_COOKIE_NAME" envDefault:"cd_auth"`
	Domain string `env:"SESSION_COOKIE_DOMAIN" envDefault:""`
}

// DefaultPolicy returns the session cookie policy: cd_auth, Path=/, SameSite=Lax.
func DefaultPolicy(production bool) Policy {
	return Policy{
		Name:       DefaultName,
		Production: production,
		Path:       "/",
		SameSite:   http.SameSiteLaxMode,
	}
}

// PolicyFromConfig applies non-zero config values on top of DefaultPolicy.
func PolicyFromConfig(cfg Config, production bool) Policy {
	p := DefaultPolicy(production)
	if cfg.Name != "" {
		p.Name = cfg.Name
	}
	if cfg.Domain != "" {
		p.Domain = cfg.Domain
	}
	return p
}
