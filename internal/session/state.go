package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
)

const (
	PurposeSignIn  = "sign-in"
	PurposeSignOut = "sign-out"
)

var ErrStateMismatch = errors.New("state mismatch - possible forged or replayed callback")

func stateKey(purpose string) string {
	return "state-" + purpose
}

// CreateState generates a single use state token and remembers it in the temp session.
func (m *Manager) CreateState(ctx context.Context, w http.ResponseWriter, r *http.Request, purpose string) (string, error) {
	state, err := NewToken()
	if err != nil {
		return "", err
	}
	if err := m.SetTemp(ctx, w, r, stateKey(purpose), state); err != nil {
		return "", err
	}
	return state, nil
}

// HasState reports whether a state for purpose is waiting to be validated.
func (m *Manager) HasState(ctx context.Context, r *http.Request, purpose string) (bool, error) {
	_, ok, err := m.GetTemp(ctx, r, stateKey(purpose))
	return ok, err
}

// ValidateState compares the returned state with the stored one. The stored state is used up either way.
func (m *Manager) ValidateState(ctx context.Context, r *http.Request, purpose string, returned string) error {
	stored, ok, err := m.GetTemp(ctx, r, stateKey(purpose))
	if err != nil {
		return err
	}
	if ok {
		if err := m.ClearTemp(ctx, r, stateKey(purpose)); err != nil {
			return err
		}
	}

	if !ok || stored == "" || returned == "" {
		return ErrStateMismatch
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(returned)) != 1 {
		return ErrStateMismatch
	}
	return nil
}
