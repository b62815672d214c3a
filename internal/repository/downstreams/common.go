package downstreams

import (
	"context"
	"errors"
	"net/http"
	"time"

	aurestlogging "github.com/StephanHCB/go-autumn-restclient/implementation/requestlogging"
	"github.com/go-chi/chi/v5/middleware"

	aurestbreaker "github.com/StephanHCB/go-autumn-restclient-circuitbreaker/implementation/breaker"
	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"
	auresthttpclient "github.com/StephanHCB/go-autumn-restclient/implementation/httpclient"

	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
)

// nolint
const apiKeyHeader = "X-Api-Key"

var (
	ErrDownStreamUnavailable = errors.New("downstream unavailable - see log for details")
)

// ApiKeyRequestManipulator forwards the request id, and the api key if one is configured.
func ApiKeyRequestManipulator(apiKey string) aurestclientapi.RequestManipulatorCallback {
	return func(ctx context.Context, r *http.Request) {
		if apiKey != "" {
			r.Header.Add(apiKeyHeader, apiKey)
		}
		r.Header.Add(middleware.RequestIDHeader, logging.GetRequestID(ctx))
	}
}

func ClientWith(requestManipulator aurestclientapi.RequestManipulatorCallback, circuitBreakerName string) (aurestclientapi.Client, error) {
	httpClient, err := auresthttpclient.New(0, nil, requestManipulator)
	if err != nil {
		return nil, err
	}

	requestLoggingClient := aurestlogging.New(httpClient)

	circuitBreakerClient := aurestbreaker.New(requestLoggingClient,
		circuitBreakerName,
		10,
		2*time.Minute,
		30*time.Second,
		15*time.Second,
	)

	return circuitBreakerClient, nil
}

func ErrByStatus(err error, status int) error {
	if err != nil {
		return err
	}
	if status >= 300 {
		return ErrDownStreamUnavailable
	}
	return nil
}

// IsAbsent reports whether a read got no usable answer.
func IsAbsent(status int) bool {
	return status == http.StatusNotFound || status == http.StatusNoContent
}
