package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
)

func TestWantsJSON(t *testing.T) {
	tests := []struct {
		name     string
		accept   string
		expected bool
	}{
		{name: "json client", accept: "application/json", expected: true},
		{name: "browser", accept: "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8", expected: false},
		{name: "browser that also takes json", accept: "text/html, application/json", expected: false},
		{name: "no accept header", accept: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				r.Header.Set("Accept", tt.accept)
			}
			require.Equal(t, tt.expected, WantsJSON(r))
		})
	}
}

func TestSendStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected APIErrorMessage
	}{
		{status: http.StatusBadRequest, expected: RequestParseErrorMessage},
		{status: http.StatusForbidden, expected: AuthForbiddenMessage},
		{status: http.StatusNotFound, expected: NotFoundMessage},
		{status: http.StatusRequestEntityTooLarge, expected: RequestTooLargeMessage},
		{status: http.StatusInternalServerError, expected: InternalErrorMessage},
		{status: http.StatusTeapot, expected: UnknownErrorMessage},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			rec := httptest.NewRecorder()
			SendStatus(rec, tt.status, "abcdef12", logging.NewNoopLogger(), "some detail")

			require.Equal(t, tt.status, rec.Code)
			require.Equal(t, ContentTypeApplicationJson, rec.Header().Get("Content-Type"))

			apiErr := APIError{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
			require.Equal(t, "abcdef12", apiErr.RequestID)
			require.Equal(t, string(tt.expected), apiErr.Message)
			require.Equal(t, []string{"some detail"}, apiErr.Details["details"])
		})
	}
}
