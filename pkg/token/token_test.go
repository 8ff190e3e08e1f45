package token_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshjs/dashboard/pkg/token"
)

const (
	testSecret  = "this-is-a-very-long-secret-key-32-chars-long"
	otherSecret = "this-is-old-very-long-secret-key-32-chars-ok"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		secrets []string
		wantErr error
	}{
		{name: "no secrets", secrets: nil, wantErr: token.ErrNoSecret},
		{name: "only empty secrets", secrets: []string{"", ""}, wantErr: token.ErrNoSecret},
		{name: "secret too short", secrets: []string{"short"}, wantErr: token.ErrSecretTooShort},
		{name: "valid secret", secrets: []string{testSecret}},
		{name: "rotation set", secrets: []string{testSecret, otherSecret}},
		{name: "empty entries are dropped", secrets: []string{"", testSecret}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := token.New(tt.secrets)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, token.DefaultTTL, c.TTL())
		})
	}
}

func TestCodec_IssueVerify(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c, err := token.New([]string{testSecret}, token.WithClock(fixedClock(now)), token.WithTTL(time.Hour))
	require.NoError(t, err)

	raw, err := c.Issue("addr1xyz")
	require.NoError(t, err)
	assert.Len(t, strings.Split(raw, "."), 3)

	claims, ok := c.Verify(raw)
	require.True(t, ok)
	assert.Equal(t, "addr1xyz", claims.Address)
	assert.True(t, claims.IssuedAt.Equal(now))
	assert.True(t, claims.ExpiresAt.Equal(now.Add(time.Hour)))
}

func TestCodec_IssueEmptyAddress(t *testing.T) {
	t.Parallel()
	c, err := token.New([]string{testSecret})
	require.NoError(t, err)

	_, err = c.Issue("")
	assert.True(t, errors.Is(err, token.ErrEmptyAddress))
}

func TestCodec_VerifyRejects(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c, err := token.New([]string{testSecret}, token.WithClock(fixedClock(now)))
	require.NoError(t, err)

	valid, err := c.Issue("addr1xyz")
	require.NoError(t, err)

	foreign, err := token.New([]string{otherSecret}, token.WithClock(fixedClock(now)))
	require.NoError(t, err)
	foreignToken, err := foreign.Issue("addr1xyz")
	require.NoError(t, err)

	otherIssuer, err := token.New([]string{testSecret}, token.WithClock(fixedClock(now)), token.WithIssuer("someone-else"))
	require.NoError(t, err)
	otherIssuerToken, err := otherIssuer.Issue("addr1xyz")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "addr1xyz",
		Issuer:    token.DefaultIssuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    token.DefaultIssuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "addr1xyz",
		Issuer:  token.DefaultIssuer,
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"two segments", "abc.def"},
		{"four segments", valid + ".extra"},
		{"invalid base64", "!!!.@@@.###"},
		{"truncated", valid[:len(valid)-5]},
		{"signed with unknown secret", foreignToken},
		{"wrong issuer", otherIssuerToken},
		{"alg none", noneToken},
		{"missing subject", noSubject},
		{"missing expiry", noExpiry},
		{"whitespace", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			claims, ok := c.Verify(tt.raw)
			assert.False(t, ok)
			assert.Equal(t, token.Claims{}, claims)
		})
	}
}

func TestCodec_VerifyExpired(t *testing.T) {
	t.Parallel()
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer, err := token.New([]string{testSecret}, token.WithClock(fixedClock(issuedAt)), token.WithTTL(time.Hour))
	require.NoError(t, err)

	raw, err := issuer.Issue("addr1xyz")
	require.NoError(t, err)

	later, err := token.New([]string{testSecret}, token.WithClock(fixedClock(issuedAt.Add(time.Hour+time.Second))))
	require.NoError(t, err)

	_, ok := later.Verify(raw)
	assert.False(t, ok, "expired token must not verify")

	justBefore, err := token.New([]string{testSecret}, token.WithClock(fixedClock(issuedAt.Add(59*time.Minute))))
	require.NoError(t, err)

	claims, ok := justBefore.Verify(raw)
	assert.True(t, ok)
	assert.Equal(t, "addr1xyz", claims.Address)
}

func TestCodec_SingleByteTampering(t *testing.T) {
	t.Parallel()
	c, err := token.New([]string{testSecret})
	require.NoError(t, err)

	raw, err := c.Issue("addr1qx2fxv2umyhttkxyxp8x0dlpdt3k6cwng5pxj3jhsydzer3n0d3vllmyqwsx5wktcd8cc3sq835lu7drv2xwl2wywfgse35a3x")
	require.NoError(t, err)

	for i := range len(raw) {
		b := []byte(raw)
		b[i] ^= 0x01
		_, ok := c.Verify(string(b))
		assert.False(t, ok, "tampered byte %d must not verify", i)
	}
}

func TestCodec_KeyRotation(t *testing.T) {
	t.Parallel()
	old, err := token.New([]string{otherSecret})
	require.NoError(t, err)
	raw, err := old.Issue("addr1xyz")
	require.NoError(t, err)

	rotated, err := token.New([]string{testSecret, otherSecret})
	require.NoError(t, err)

	claims, ok := rotated.Verify(raw)
	require.True(t, ok, "token signed with a previous secret must stay valid")
	assert.Equal(t, "addr1xyz", claims.Address)

	fresh, err := rotated.Issue("addr1abc")
	require.NoError(t, err)

	_, ok = old.Verify(fresh)
	assert.False(t, ok, "new tokens are signed with the first secret only")
}
