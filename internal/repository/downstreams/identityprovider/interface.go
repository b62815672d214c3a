package identityprovider

import (
	"context"
	"time"
)

// Identity is what a successful sign in tells us about the user.
type Identity struct {
	Subject      string
	DisplayName  string
	Email        string
	LoginHint    string
	Roles        []string
	Token        string
	RefreshToken string
	ExpiresAt    time.Time
}

type IdentityProvider interface {
	// AuthCodeURL is where to send the browser to sign in.
	AuthCodeURL(state string) string

	// Exchange redeems the authorization code and verifies the returned id token.
	Exchange(ctx context.Context, code string) (*Identity, error)

	// SignOutURL ends the single sign on session and brings the browser back with the given state.
	SignOutURL(loginHint string, state string) string
}
