package downstreams

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
)

// RequestLoggingTransport logs streaming downstream calls that cannot go through the rest client.
type RequestLoggingTransport struct {
	Wrapped http.RoundTripper
	ApiKey  string
}

func NewStreamingClient(apiKey string) *http.Client {
	return &http.Client{
		Transport: &RequestLoggingTransport{
			Wrapped: http.DefaultTransport,
			ApiKey:  apiKey,
		},
	}
}

func (t *RequestLoggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()
	r = r.Clone(ctx)
	if t.ApiKey != "" {
		r.Header.Set(apiKeyHeader, t.ApiKey)
	}
	r.Header.Set(middleware.RequestIDHeader, logging.GetRequestID(ctx))

	before := time.Now()
	resp, err := t.Wrapped.RoundTrip(r)
	millis := time.Since(before).Milliseconds()
	if err != nil {
		logging.LoggerFromContext(ctx).Warn("downstream %s %s -> FAILED (%d ms): %s", r.Method, r.URL.String(), millis, err.Error())
		return resp, err
	}
	logging.LoggerFromContext(ctx).Info("downstream %s %s -> %d (%d ms)", r.Method, r.URL.String(), resp.StatusCode, millis)
	return resp, nil
}
