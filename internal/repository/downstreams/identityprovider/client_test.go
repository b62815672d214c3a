package identityprovider

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"github.com/DEFRA/mpdp-admin-frontend/internal/config"
)

const (
	testClientID = "the-client-id"
	testKeyID    = "test-key"
)

type fakeIdentityProvider struct {
	srv       *httptest.Server
	key       *rsa.PrivateKey
	idToken   string
	lastCode  string
	tokenHits int
}

func newFakeIdentityProvider(t *testing.T) *fakeIdentityProvider {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	f := &fakeIdentityProvider{key: key}
	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, map[string]interface{}{
			"issuer":                                f.srv.URL,
			"authorization_endpoint":                f.srv.URL + "/authorize",
			"token_endpoint":                        f.srv.URL + "/token",
			"jwks_uri":                              f.srv.URL + "/keys",
			"end_session_endpoint":                  f.srv.URL + "/logout",
			"id_token_signing_alg_values_supported": []string{"RS256"},
		})
	})
	mux.HandleFunc("/keys", func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, map[string]interface{}{
			"keys": []map[string]string{{
				"kty": "RSA",
				"kid": testKeyID,
				"alg": "RS256",
				"use": "sig",
				"n":   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes()),
			}},
		})
	})
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenHits++
		_ = r.ParseForm()
		f.lastCode = r.PostForm.Get("code")
		writeJson(w, map[string]interface{}{
			"access_token":  "the-access-token",
			"token_type":    "Bearer",
			"refresh_token": "the-refresh-token",
			"expires_in":    3600,
			"id_token":      f.idToken,
		})
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func writeJson(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeIdentityProvider) sign(t *testing.T, claims idTokenClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKeyID
	signed, err := token.SignedString(f.key)
	require.NoError(t, err)
	return signed
}

func (f *fakeIdentityProvider) config() config.OpenIdConnectConfig {
	return config.OpenIdConnectConfig{
		IssuerURL:          f.srv.URL,
		ClientID:           testClientID,
		ClientSecret:       "the-client-secret",
		RedirectURL:        "http://localhost:3000/auth/sign-in-oidc",
		SignOutRedirectURL: "http://localhost:3000/auth/sign-out-oidc",
		Scopes:             []string{"openid", "profile", "email"},
	}
}

func validClaims(issuer string) idTokenClaims {
	now := time.Now()
	return idTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "user-123",
			Audience:  jwt.ClaimStrings{testClientID},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(30 * time.Minute)),
		},
		Name:      "Jane Admin",
		Email:     "jane@example.com",
		LoginHint: "the-login-hint",
		Roles:     []string{"MPDP.Admin"},
	}
}

func TestNewRequiresIssuer(t *testing.T) {
	_, err := New(context.Background(), config.OpenIdConnectConfig{})
	require.Error(t, err)
}

func TestAuthCodeURL(t *testing.T) {
	f := newFakeIdentityProvider(t)
	idp, err := New(context.Background(), f.config())
	require.NoError(t, err)

	u, err := url.Parse(idp.AuthCodeURL("the-state"))
	require.NoError(t, err)
	require.Equal(t, "/authorize", u.Path)
	require.Equal(t, "the-state", u.Query().Get("state"))
	require.Equal(t, testClientID, u.Query().Get("client_id"))
	require.Equal(t, "http://localhost:3000/auth/sign-in-oidc", u.Query().Get("redirect_uri"))
	require.Equal(t, "openid profile email", u.Query().Get("scope"))
}

func TestSignOutURL(t *testing.T) {
	f := newFakeIdentityProvider(t)
	idp, err := New(context.Background(), f.config())
	require.NoError(t, err)

	expected := f.srv.URL + "/logout?post_logout_redirect_uri=http%3A%2F%2Flocalhost%3A3000%2Fauth%2Fsign-out-oidc&logout_hint=the-login-hint&state=abc"
	require.Equal(t, expected, idp.SignOutURL("the-login-hint", "abc"))
}

func TestExchange(t *testing.T) {
	f := newFakeIdentityProvider(t)
	f.idToken = f.sign(t, validClaims(f.srv.URL))

	idp, err := New(context.Background(), f.config())
	require.NoError(t, err)

	identity, err := idp.Exchange(context.Background(), "the-code")
	require.NoError(t, err)
	require.Equal(t, "the-code", f.lastCode)
	require.Equal(t, "user-123", identity.Subject)
	require.Equal(t, "Jane Admin", identity.DisplayName)
	require.Equal(t, "jane@example.com", identity.Email)
	require.Equal(t, "the-login-hint", identity.LoginHint)
	require.Equal(t, []string{"MPDP.Admin"}, identity.Roles)
	require.Equal(t, "the-access-token", identity.Token)
	require.Equal(t, "the-refresh-token", identity.RefreshToken)
	require.WithinDuration(t, time.Now().Add(30*time.Minute), identity.ExpiresAt, time.Minute)
}

func TestExchangeRejectsBadTokens(t *testing.T) {
	tests := []struct {
		name   string
		claims func(issuer string) idTokenClaims
	}{
		{
			name: "wrong audience",
			claims: func(issuer string) idTokenClaims {
				c := validClaims(issuer)
				c.Audience = jwt.ClaimStrings{"somebody-else"}
				return c
			},
		},
		{
			name: "wrong issuer",
			claims: func(issuer string) idTokenClaims {
				return validClaims("https://evil.example.com")
			},
		},
		{
			name: "expired",
			claims: func(issuer string) idTokenClaims {
				c := validClaims(issuer)
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
				return c
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeIdentityProvider(t)
			f.idToken = f.sign(t, tt.claims(f.srv.URL))

			idp, err := New(context.Background(), f.config())
			require.NoError(t, err)

			_, err = idp.Exchange(context.Background(), "the-code")
			require.Error(t, err)
		})
	}
}

func TestExchangeWithoutIdToken(t *testing.T) {
	f := newFakeIdentityProvider(t)

	idp, err := New(context.Background(), f.config())
	require.NoError(t, err)

	_, err = idp.Exchange(context.Background(), "the-code")
	require.ErrorIs(t, err, ErrNoIdToken)
}
