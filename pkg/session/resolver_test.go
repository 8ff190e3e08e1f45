package session_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshjs/dashboard/pkg/cookie"
	"github.com/meshjs/dashboard/pkg/session"
	"github.com/meshjs/dashboard/pkg/token"
)

const testSecret = "this-is-a-very-long-secret-key-32-chars-long"

type stubVerifier struct {
	claims token.Claims
	ok     bool
	calls  int
}

func (s *stubVerifier) Verify(string) (token.Claims, bool) {
	s.calls++
	return s.claims, s.ok
}

func newCodec(t *testing.T) *token.Codec {
	t.Helper()
	c, err := token.New([]string{testSecret})
	require.NoError(t, err)
	return c
}

func newCookies(t *testing.T) *cookie.Manager {
	t.Helper()
	m, err := cookie.New(cookie.DefaultPolicy(false))
	require.NoError(t, err)
	return m
}

func requestWithCookie(value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "cd_auth", Value: value})
	return r
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()
	codec := newCodec(t)
	valid, err := codec.Issue("addr1xyz")
	require.NoError(t, err)

	res := session.NewResolver(codec, newCookies(t))

	tests := []struct {
		name string
		req  *http.Request
		want session.Identity
	}{
		{name: "valid cookie", req: requestWithCookie(valid), want: session.Identity{Address: "addr1xyz"}},
		{name: "no cookie", req: httptest.NewRequest(http.MethodGet, "/", nil), want: session.Identity{}},
		{name: "empty cookie", req: requestWithCookie(""), want: session.Identity{}},
		{name: "garbage cookie", req: requestWithCookie("garbage"), want: session.Identity{}},
		{name: "tampered cookie", req: requestWithCookie(valid[:len(valid)-2] + "xx"), want: session.Identity{}},
		{name: "nil request", req: nil, want: session.Identity{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := res.Resolve(tt.req)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Address != "", got.Authenticated())
		})
	}
}

func TestResolver_ResolveEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("nil resolver", func(t *testing.T) {
		t.Parallel()
		var res *session.Resolver
		assert.Equal(t, session.Identity{}, res.Resolve(requestWithCookie("x")))
	})

	t.Run("nil verifier", func(t *testing.T) {
		t.Parallel()
		res := session.NewResolver(nil, newCookies(t))
		assert.Equal(t, session.Identity{}, res.Resolve(requestWithCookie("x")))
	})

	t.Run("nil cookie reader", func(t *testing.T) {
		t.Parallel()
		v := &stubVerifier{ok: true, claims: token.Claims{Address: "a"}}
		res := session.NewResolver(v, nil)
		assert.Equal(t, session.Identity{}, res.Resolve(requestWithCookie("x")))
		assert.Zero(t, v.calls)
	})

	t.Run("custom cookie name from policy", func(t *testing.T) {
		t.Parallel()
		policy := cookie.DefaultPolicy(false)
		policy.Name = "gov_auth"
		m, err := cookie.New(policy)
		require.NoError(t, err)

		v := &stubVerifier{ok: true, claims: token.Claims{Address: "addr1gov"}}
		res := session.NewResolver(v, m)
		assert.False(t, res.Resolve(requestWithCookie("x")).Authenticated())

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "gov_auth", Value: "x"})
		assert.Equal(t, "addr1gov", res.Resolve(r).Address)
	})

	t.Run("verifier ok with empty address", func(t *testing.T) {
		t.Parallel()
		v := &stubVerifier{ok: true}
		res := session.NewResolver(v, newCookies(t))
		assert.False(t, res.Resolve(requestWithCookie("x")).Authenticated())
	})

	t.Run("verifier not called without cookie", func(t *testing.T) {
		t.Parallel()
		v := &stubVerifier{ok: true, claims: token.Claims{Address: "a"}}
		res := session.NewResolver(v, newCookies(t))
		res.Resolve(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Zero(t, v.calls)
	})

	t.Run("other cookie name ignored", func(t *testing.T) {
		t.Parallel()
		v := &stubVerifier{ok: true, claims: token.Claims{Address: "a"}}
		res := session.NewResolver(v, newCookies(t))
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "other", Value: "x"})
		assert.False(t, res.Resolve(r).Authenticated())
	})
}

func TestResolver_Middleware(t *testing.T) {
	t.Parallel()
	v := &stubVerifier{ok: true, claims: token.Claims{Address: "addr1xyz"}}
	res := session.NewResolver(v, newCookies(t))

	var got session.Identity
	var found bool
	h := res.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = session.FromContext(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), requestWithCookie("x"))
	require.True(t, found)
	assert.Equal(t, "addr1xyz", got.Address)
	assert.Equal(t, 1, v.calls)
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	_, ok := session.FromContext(context.Background())
	assert.False(t, ok)

	ctx := session.WithIdentity(context.Background(), session.Identity{})
	id, ok := session.FromContext(ctx)
	assert.True(t, ok)
	assert.False(t, id.Authenticated())

	_, ok = session.AddressFromContext(ctx)
	assert.False(t, ok)

	ctx = session.WithIdentity(context.Background(), session.Identity{Address: "addr1"})
	addr, ok := session.AddressFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "addr1", addr)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()
	extract := session.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	ctx := session.WithIdentity(context.Background(), session.Identity{Address: "addr1"})
	attr, ok := extract(ctx)
	require.True(t, ok)
	assert.Equal(t, "address", attr.Key)
	assert.Equal(t, "addr1", attr.Value.String())

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("x", attr)
	assert.Contains(t, buf.String(), "address=addr1")
}
