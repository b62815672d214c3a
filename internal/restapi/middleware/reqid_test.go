package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
)

func TestRequestIdMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "Should keep a valid incoming id", incoming: "0123abcd", keep: true},
		{name: "Should replace an invalid incoming id", incoming: "not-an-id"},
		{name: "Should create an id when none is sent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			var logger logging.Logger
			handler := RequestIdMiddleware()(LogRequestIdMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = logging.GetRequestID(r.Context())
				logger = logging.LoggerFromContext(r.Context())
			})))

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				r.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, r)

			require.Regexp(t, ValidRequestIdRegex, seen)
			if tt.keep {
				require.Equal(t, tt.incoming, seen)
			}
			require.Equal(t, seen, rec.Header().Get(RequestIDHeader))
			require.NotNil(t, logger)
			require.NotSame(t, logging.NoCtx(), logger)
		})
	}
}
