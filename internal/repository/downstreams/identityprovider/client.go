package identityprovider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/oauth2"

	"github.com/DEFRA/mpdp-admin-frontend/internal/config"
)

var ErrNoIdToken = errors.New("token response did not contain an id_token")

// idTokenClaims are the Entra ID token claims we care about.
type idTokenClaims struct {
	jwt.RegisteredClaims
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	PreferredUsername string   `json:"preferred_username"`
	LoginHint         string   `json:"login_hint"`
	Roles             []string `json:"roles"`
}

type discoveryClaims struct {
	EndSessionEndpoint string `json:"end_session_endpoint"`
}

type Impl struct {
	oauth              oauth2.Config
	verifier           *oidc.IDTokenVerifier
	endSessionEndpoint string
	signOutRedirectURL string
}

// New runs oidc discovery against the configured issuer, so it needs the identity provider to be reachable.
func New(ctx context.Context, conf config.OpenIdConnectConfig) (IdentityProvider, error) {
	if conf.IssuerURL == "" {
		return nil, errors.New("security.oidc.issuer_url not configured")
	}

	provider, err := oidc.NewProvider(ctx, conf.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery failed for %s: %w", conf.IssuerURL, err)
	}

	discovered := discoveryClaims{}
	if err := provider.Claims(&discovered); err != nil {
		return nil, err
	}

	return &Impl{
		oauth: oauth2.Config{
			ClientID:     conf.ClientID,
			ClientSecret: conf.ClientSecret,
			Endpoint:     provider.Endpoint(),
			RedirectURL:  conf.RedirectURL,
			Scopes:       conf.Scopes,
		},
		verifier:           provider.Verifier(&oidc.Config{ClientID: conf.ClientID}),
		endSessionEndpoint: discovered.EndSessionEndpoint,
		signOutRedirectURL: conf.SignOutRedirectURL,
	}, nil
}

func (i *Impl) AuthCodeURL(state string) string {
	return i.oauth.AuthCodeURL(state)
}

func (i *Impl) Exchange(ctx context.Context, code string) (*Identity, error) {
	token, err := i.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	rawIdToken, ok := token.Extra("id_token").(string)
	if !ok || rawIdToken == "" {
		return nil, ErrNoIdToken
	}

	idToken, err := i.verifier.Verify(ctx, rawIdToken)
	if err != nil {
		return nil, err
	}

	claims := idTokenClaims{}
	if err := idToken.Claims(&claims); err != nil {
		return nil, err
	}

	identity := &Identity{
		Subject:      claims.Subject,
		DisplayName:  claims.Name,
		Email:        claims.Email,
		LoginHint:    claims.LoginHint,
		Roles:        claims.Roles,
		Token:        token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
	}
	if identity.Email == "" {
		identity.Email = claims.PreferredUsername
	}
	if claims.ExpiresAt != nil && (identity.ExpiresAt.IsZero() || claims.ExpiresAt.Time.Before(identity.ExpiresAt)) {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}

func (i *Impl) SignOutURL(loginHint string, state string) string {
	query := []string{
		"post_logout_redirect_uri=" + url.QueryEscape(i.signOutRedirectURL),
		"logout_hint=" + url.QueryEscape(loginHint),
		"state=" + url.QueryEscape(state),
	}
	return i.endSessionEndpoint + "?" + strings.Join(query, "&")
}
