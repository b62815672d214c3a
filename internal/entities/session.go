package entities

import "time"

// UserSession is what is kept server side for a signed in user.
type UserSession struct {
	SessionID    string    `json:"session_id"`
	DisplayName  string    `json:"display_name"`
	Email        string    `json:"email"`
	LoginHint    string    `json:"login_hint"`
	Scope        []string  `json:"scope"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (s *UserSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
