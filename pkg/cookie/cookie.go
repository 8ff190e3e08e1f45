package cookie

import (
	"errors"
	"net/http"
)

// Manager reads and writes the session cookie according to a Policy.
type Manager struct {
	policy Policy
}

// New validates policy and fills Path=/ and SameSite=Lax when unset.
func New(policy Policy) (*Manager, error) {
	if policy.Name == "" {
		return nil, ErrEmptyName
	}
	if policy.Path == "" {
		policy.Path = "/"
	}
	if policy.SameSite == 0 {
		policy.SameSite = http.SameSiteLaxMode
	}

	return &Manager{policy: policy}, nil
}

// Get returns the raw session cookie value, or ErrCookieNotFound when the
// request carries none.
func (m *Manager) Get(r *http.Request) (string, error) {
	if r == nil {
		return "", ErrCookieNotFound
	}
	c, err := r.Cookie(m.policy.Name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Set writes value with the given Max-Age in seconds.
func (m *Manager) Set(w http.ResponseWriter, value string, maxAge int) {
	http.SetCookie(w, m.build(value, maxAge))
}

// Clear overwrites the session cookie with an empty, immediately expired value.
func (m *Manager) Clear(w http.ResponseWriter) {
	// MaxAge < 0 is serialized as Max-Age=0.
	http.SetCookie(w, m.build("", -1))
}

func (m *Manager) build(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.policy.Name,
		Value:    value,
		Path:     m.policy.Path,
		Domain:   m.policy.Domain,
		MaxAge:   maxAge,
		SameSite: m.policy.SameSite,
		// Production only.
		HttpOnly: m.policy.Production,
		Secure:   m.policy.Production,
	}
}
