package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		expectRobots  bool
		expectNoStore bool
	}{
		{name: "start page may be indexed and cached", path: "/", expectRobots: false, expectNoStore: false},
		{name: "assets may be cached", path: "/public/stylesheets/application.css", expectRobots: true, expectNoStore: false},
		{name: "admin pages are never cached", path: "/admin/payments", expectRobots: true, expectNoStore: true},
		{name: "lookalike prefix is not an asset", path: "/publicity", expectRobots: true, expectNoStore: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := SecurityHeadersMiddleware("/public")(http.HandlerFunc(okHandler))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			h := rec.Header()
			require.Equal(t, "same-origin", h.Get("Cross-Origin-Opener-Policy"))
			require.Equal(t, "require-corp", h.Get("Cross-Origin-Embedder-Policy"))
			require.Equal(t, "same-site", h.Get("Cross-Origin-Resource-Policy"))
			require.Equal(t, "same-origin", h.Get("Referrer-Policy"))
			require.Equal(t, permissionsPolicy, h.Get("Permissions-Policy"))
			require.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))

			if tt.expectRobots {
				require.Equal(t, "noindex, nofollow", h.Get("X-Robots-Tag"))
			} else {
				require.Empty(t, h.Get("X-Robots-Tag"))
			}

			if tt.expectNoStore {
				require.Equal(t, noStore, h.Get("Cache-Control"))
				require.Equal(t, "no-cache", h.Get("Pragma"))
				require.Equal(t, "0", h.Get("Expires"))
			} else {
				require.Empty(t, h.Get("Cache-Control"))
			}
		})
	}
}
