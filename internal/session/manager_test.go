package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/database/inmemory"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(inmemory.NewInMemoryProvider(), time.Hour, true)
	require.NoError(t, err)
	return m
}

// nextRequest carries the cookies a response set over to a fresh request, like a browser would.
func nextRequest(rec *httptest.ResponseRecorder, previous *http.Request) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	jar := map[string]*http.Cookie{}
	if previous != nil {
		for _, c := range previous.Cookies() {
			jar[c.Name] = c
		}
	}
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(jar, c.Name)
			continue
		}
		jar[c.Name] = c
	}
	for _, c := range jar {
		r.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	return r
}

func TestNewManagerRequiresRepository(t *testing.T) {
	_, err := NewManager(nil, time.Hour, true)
	require.EqualError(t, err, "repository must not be nil")
}

func TestGetSafeRedirect(t *testing.T) {
	tests := []struct {
		name     string
		redirect string
		expected string
	}{
		{name: "relative path", redirect: "/admin/payments", expected: "/admin/payments"},
		{name: "with query", redirect: "/admin/payments?page=2", expected: "/admin/payments?page=2"},
		{name: "absolute url", redirect: "https://evil.example.com", expected: "/"},
		{name: "empty", redirect: "", expected: "/"},
		{name: "no leading slash", redirect: "admin", expected: "/"},
		{name: "protocol relative", redirect: "//evil.com", expected: "/"},
		{name: "backslash host", redirect: `/\evil.com`, expected: "/"},
		{name: "root", redirect: "/", expected: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, GetSafeRedirect(tt.redirect))
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	created, err := m.CreateSession(ctx, rec, entities.UserSession{
		DisplayName: "Jane Admin",
		Email:       "jane@example.com",
		Scope:       []string{"MPDP.Admin"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.SessionID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, SessionCookieName, cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)
	require.True(t, cookies[0].Secure)
	require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	r := nextRequest(rec, nil)
	loaded, err := m.LoadSession(ctx, r)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, "Jane Admin", loaded.DisplayName)
	require.Equal(t, []string{"MPDP.Admin"}, loaded.Scope)

	rec = httptest.NewRecorder()
	require.NoError(t, m.DropSession(ctx, rec, loaded))

	loaded, err = m.LoadSession(ctx, r)
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestLoadSessionWithoutCookie(t *testing.T) {
	m := newTestManager(t)

	loaded, err := m.LoadSession(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestTempValues(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, m.SetTemp(ctx, rec, r, KeyRedirect, "/admin/summary"))
	require.NoError(t, m.SetTemp(ctx, rec, r, "other", "value"))
	require.Len(t, rec.Result().Cookies(), 1)

	r = nextRequest(rec, r)
	value, ok, err := m.GetTemp(ctx, r, KeyRedirect)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "/admin/summary", value)

	require.NoError(t, m.ClearTemp(ctx, r, KeyRedirect))
	_, ok, err = m.GetTemp(ctx, r, KeyRedirect)
	require.NoError(t, err)
	require.False(t, ok)

	value, ok, err = m.GetTemp(ctx, r, "other")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "value", value)
}
