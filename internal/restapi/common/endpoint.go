package common

import (
	"context"
	"net/http"

	"github.com/go-http-utils/headers"

	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
)

type RequestHandler[Req any] func(r *http.Request) (*Req, error)
type ResponseHandler[Res any] func(ctx context.Context, res *Res, w http.ResponseWriter) error
type Endpoint[Req, Res any] func(ctx context.Context, request *Req, logger logging.Logger) (*Res, error)

// CreateHandler glues request parsing, the endpoint and response writing together for json endpoints.
func CreateHandler[Req, Res any](endpoint Endpoint[Req, Res],
	requestHandler RequestHandler[Req],
	responseHandler ResponseHandler[Res]) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := logging.GetRequestID(ctx)
		logger := logging.LoggerFromContext(ctx)

		defer func() {
			err := r.Body.Close()
			if err != nil {
				logger.Error("Error when closing the request body. [error]: %v", err)
			}
		}()

		if requestHandler == nil {
			logger.Error("No request handler supplied")
			SendInternalServerError(w, reqID, UnknownErrorMessage, logger, "")
			return
		}

		if responseHandler == nil {
			logger.Error("No response handler supplied")
			SendInternalServerError(w, reqID, UnknownErrorMessage, logger, "")
			return
		}

		request, err := requestHandler(r)
		if err != nil {
			logger.Error("An error occurred while parsing the request. [error]: %v", err)
			SendBadRequestResponse(w, reqID, logger, "")
			return
		}

		response, err := endpoint(ctx, request, logger)
		if err != nil {
			logger.Error("An error occurred during the request. [error]: %v", err)
			SendInternalServerError(w, reqID, InternalErrorMessage, logger, "")
			return
		}

		if err := responseHandler(ctx, response, w); err != nil {
			logger.Error("An error occurred during the handling of the response. [error]: %v", err)
			SendInternalServerError(w, reqID, UnknownErrorMessage, logger, "")
			return
		}
	})
}

// NoRequest is the request handler for endpoints that take no input.
func NoRequest(_ *http.Request) (*struct{}, error) {
	return &struct{}{}, nil
}

// JSONResponse writes res with status 200.
func JSONResponse[Res any](ctx context.Context, res *Res, w http.ResponseWriter) error {
	w.Header().Set(headers.ContentType, ContentTypeApplicationJson)
	w.WriteHeader(http.StatusOK)
	EncodeToJSON(w, res, logging.LoggerFromContext(ctx))
	return nil
}
