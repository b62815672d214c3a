package start

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/restapi/middleware"
	"github.com/DEFRA/mpdp-admin-frontend/internal/web/views"
)

func TestStartPage(t *testing.T) {
	renderer, err := views.NewRenderer("Manage payment data", "/public", views.Manifest{})
	require.NoError(t, err)
	router := chi.NewRouter()
	Create(router, renderer)

	tests := []struct {
		name     string
		user     *entities.UserSession
		contains string
	}{
		{name: "signed out", contains: `href="/auth/sign-in" role="button"`},
		{name: "signed in", user: &entities.UserSession{DisplayName: "Jane Admin"}, contains: `href="/admin/payments" role="button"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.user != nil {
				req = req.WithContext(middleware.ContextWithSession(req.Context(), tt.user))
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			require.Contains(t, rec.Body.String(), "Find farm and land payment data")
			require.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}
