package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/database"
)

const (
	SegmentSession = "session"
	SegmentTemp    = "session-temp"

	// KeyRedirect is the temp session value holding where to go after sign in.
	KeyRedirect = "redirect"
)

type Manager struct {
	repo   database.Repository
	ttl    time.Duration
	secure bool
}

func NewManager(repo database.Repository, ttl time.Duration, secureCookies bool) (*Manager, error) {
	if repo == nil {
		return nil, errors.New("repository must not be nil")
	}
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}
	return &Manager{
		repo:   repo,
		ttl:    ttl,
		secure: secureCookies,
	}, nil
}

// CreateSession stores a new signed in session and hands its id to the browser.
func (m *Manager) CreateSession(ctx context.Context, w http.ResponseWriter, us entities.UserSession) (*entities.UserSession, error) {
	id, err := NewToken()
	if err != nil {
		return nil, err
	}
	us.SessionID = id

	value, err := json.Marshal(us)
	if err != nil {
		return nil, err
	}
	if err := m.repo.Set(ctx, SegmentSession, id, value, m.ttl); err != nil {
		return nil, err
	}

	setCookie(w, SessionCookieName, id, int(m.ttl.Seconds()), m.secure)
	return &us, nil
}

// LoadSession returns nil and no error if there is no valid session.
func (m *Manager) LoadSession(ctx context.Context, r *http.Request) (*entities.UserSession, error) {
	id, ok := readCookie(r, SessionCookieName)
	if !ok {
		return nil, nil
	}

	value, err := m.repo.Get(ctx, SegmentSession, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	us := entities.UserSession{}
	if err := json.Unmarshal(value, &us); err != nil {
		return nil, err
	}
	if us.IsExpired(time.Now()) {
		return nil, nil
	}
	return &us, nil
}

func (m *Manager) DropSession(ctx context.Context, w http.ResponseWriter, us *entities.UserSession) error {
	clearCookie(w, SessionCookieName, m.secure)
	if us == nil || us.SessionID == "" {
		return nil
	}
	return m.repo.Drop(ctx, SegmentSession, us.SessionID)
}

// temp session id, created on first use within the request
func (m *Manager) tempID(w http.ResponseWriter, r *http.Request) (string, error) {
	if id, ok := readCookie(r, TempCookieName); ok {
		return id, nil
	}
	id, err := NewToken()
	if err != nil {
		return "", err
	}
	setCookie(w, TempCookieName, id, 0, m.secure)
	r.AddCookie(&http.Cookie{Name: TempCookieName, Value: id})
	return id, nil
}

func (m *Manager) loadTemp(ctx context.Context, id string) (map[string]string, error) {
	values := make(map[string]string)
	raw, err := m.repo.Get(ctx, SegmentTemp, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return values, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (m *Manager) storeTemp(ctx context.Context, id string, values map[string]string) error {
	if len(values) == 0 {
		return m.repo.Drop(ctx, SegmentTemp, id)
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return m.repo.Set(ctx, SegmentTemp, id, raw, m.ttl)
}

func (m *Manager) SetTemp(ctx context.Context, w http.ResponseWriter, r *http.Request, name string, value string) error {
	id, err := m.tempID(w, r)
	if err != nil {
		return err
	}
	values, err := m.loadTemp(ctx, id)
	if err != nil {
		return err
	}
	values[name] = value
	return m.storeTemp(ctx, id, values)
}

func (m *Manager) GetTemp(ctx context.Context, r *http.Request, name string) (string, bool, error) {
	id, ok := readCookie(r, TempCookieName)
	if !ok {
		return "", false, nil
	}
	values, err := m.loadTemp(ctx, id)
	if err != nil {
		return "", false, err
	}
	value, ok := values[name]
	return value, ok, nil
}

func (m *Manager) ClearTemp(ctx context.Context, r *http.Request, name string) error {
	id, ok := readCookie(r, TempCookieName)
	if !ok {
		return nil
	}
	values, err := m.loadTemp(ctx, id)
	if err != nil {
		return err
	}
	if _, ok := values[name]; !ok {
		return nil
	}
	delete(values, name)
	return m.storeTemp(ctx, id, values)
}

// GetSafeRedirect only allows paths on this site, anything else becomes "/".
// Browsers read a leading "//" or "/\" as another host.
func GetSafeRedirect(redirect string) string {
	if len(redirect) == 0 || redirect[0] != '/' {
		return "/"
	}
	if len(redirect) > 1 && (redirect[1] == '/' || redirect[1] == '\\') {
		return "/"
	}
	return redirect
}
