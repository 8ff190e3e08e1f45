package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshjs/dashboard/modules/auth"
	"github.com/meshjs/dashboard/pkg/cookie"
	"github.com/meshjs/dashboard/pkg/session"
	"github.com/meshjs/dashboard/pkg/token"
)

const testSecret = "this-is-a-very-long-secret-key-32-chars-long"

type fixture struct {
	codec    *token.Codec
	resolver *session.Resolver
	svc      *auth.Service
}

func newFixture(t *testing.T, production bool) fixture {
	t.Helper()
	codec, err := token.New([]string{testSecret})
	require.NoError(t, err)
	cookies, err := cookie.New(cookie.DefaultPolicy(production))
	require.NoError(t, err)
	resolver := session.NewResolver(codec, cookies)
	svc, err := auth.NewService(auth.Config{Production: production}, codec, resolver, nil)
	require.NoError(t, err)
	return fixture{codec: codec, resolver: resolver, svc: svc}
}

func (f fixture) do(method, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	f.resolver.Middleware(f.svc.Handle()).ServeHTTP(w, r)
	return w
}

func TestLogout(t *testing.T) {
	t.Parallel()

	t.Run("post without session clears cookie", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, false)
		w := f.do(http.MethodPost, "/logout")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, "cd_auth=; Path=/; Max-Age=0; SameSite=Lax", w.Header().Get("Set-Cookie"))
	})

	t.Run("production cookie attributes", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, true)
		w := f.do(http.MethodPost, "/logout")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "cd_auth=; Path=/; Max-Age=0; HttpOnly; Secure; SameSite=Lax", w.Header().Get("Set-Cookie"))
	})

	t.Run("other methods are rejected without clearing", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, false)
		for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
			w := f.do(m, "/logout")
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code, m)
			assert.Equal(t, "POST", w.Header().Get("Allow"), m)
			assert.JSONEq(t, `{"error":"Method Not Allowed"}`, w.Body.String(), m)
			assert.Empty(t, w.Header().Get("Set-Cookie"), m)
		}
	})
}

func TestMe(t *testing.T) {
	t.Parallel()

	t.Run("valid cookie", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, false)
		raw, err := f.codec.Issue("addr1xyz")
		require.NoError(t, err)

		w := f.do(http.MethodGet, "/me", &http.Cookie{Name: "cd_auth", Value: raw})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":true,"address":"addr1xyz"}`, w.Body.String())
	})

	t.Run("no cookie", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, false)
		w := f.do(http.MethodGet, "/me")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
	})

	t.Run("tampered cookie", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, false)
		raw, err := f.codec.Issue("addr1xyz")
		require.NoError(t, err)
		tampered := []byte(raw)
		tampered[len(tampered)/2] ^= 0x01

		w := f.do(http.MethodGet, "/me", &http.Cookie{Name: "cd_auth", Value: string(tampered)})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
	})

	t.Run("any method", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, false)
		for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
			w := f.do(m, "/me")
			assert.Equal(t, http.StatusOK, w.Code, m)
			assert.Empty(t, w.Header().Get("Allow"), m)
		}
	})

	t.Run("without session middleware", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, false)
		raw, err := f.codec.Issue("addr1xyz")
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/me", nil)
		r.AddCookie(&http.Cookie{Name: "cd_auth", Value: raw})
		w := httptest.NewRecorder()
		f.svc.Handle().ServeHTTP(w, r)
		assert.JSONEq(t, `{"authenticated":true,"address":"addr1xyz"}`, w.Body.String())
	})
}

func TestStartSession(t *testing.T) {
	t.Parallel()
	f := newFixture(t, true)

	w := httptest.NewRecorder()
	require.NoError(t, f.svc.StartSession(w, "addr1xyz"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "cd_auth", c.Name)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)

	claims, ok := f.codec.Verify(c.Value)
	require.True(t, ok)
	assert.Equal(t, "addr1xyz", claims.Address)

	// The issued cookie is accepted by /me and removed by /logout.
	me := f.do(http.MethodGet, "/me", c)
	assert.JSONEq(t, `{"authenticated":true,"address":"addr1xyz"}`, me.Body.String())

	out := f.do(http.MethodPost, "/logout", c)
	assert.Contains(t, out.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestStartSession_EmptyAddress(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)
	err := f.svc.StartSession(httptest.NewRecorder(), "")
	assert.ErrorIs(t, err, auth.ErrStartSession)
	assert.True(t, errors.Is(err, token.ErrEmptyAddress))
}

func TestNewService(t *testing.T) {
	t.Parallel()
	_, err := auth.NewService(auth.Config{}, nil, nil, nil)
	assert.ErrorIs(t, err, auth.ErrNoIssuer)

	codec, err := token.New([]string{testSecret})
	require.NoError(t, err)
	_, err = auth.NewService(auth.Config{Cookie: cookie.Config{Name: "custom"}}, codec, nil, nil)
	require.NoError(t, err)
}
