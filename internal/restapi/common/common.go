package common

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-http-utils/headers"

	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
)

const ContentTypeApplicationJson = "application/json"

func EncodeToJSON(w http.ResponseWriter, obj interface{}, logger logging.Logger) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if obj != nil {
		err := enc.Encode(obj)

		if err != nil {
			logger.Error("Could not encode response. [error]: %v", err)
		}
	}
}

// WantsJSON is true for clients that prefer json over a rendered page, such as scripts and monitoring.
func WantsJSON(r *http.Request) bool {
	accept := r.Header.Get(headers.Accept)
	return strings.Contains(accept, ContentTypeApplicationJson) && !strings.Contains(accept, "text/html")
}

func SendBadRequestResponse(w http.ResponseWriter, reqID string, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusBadRequest, reqID, RequestParseErrorMessage, logger, details)
}

func SendForbiddenResponse(w http.ResponseWriter, reqID string, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusForbidden, reqID, AuthForbiddenMessage, logger, details)
}

func SendStatusNotFoundResponse(w http.ResponseWriter, reqID string, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusNotFound, reqID, NotFoundMessage, logger, details)
}

func SendRequestTooLargeResponse(w http.ResponseWriter, reqID string, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusRequestEntityTooLarge, reqID, RequestTooLargeMessage, logger, details)
}

func SendInternalServerError(w http.ResponseWriter, reqID string, message APIErrorMessage, logger logging.Logger, details string) {
	SendResponseWithStatusAndMessage(w, http.StatusInternalServerError, reqID, message, logger, details)
}

// SendStatus picks the matching error message for a bare status code.
func SendStatus(w http.ResponseWriter, status int, reqID string, logger logging.Logger, details string) {
	switch status {
	case http.StatusBadRequest:
		SendBadRequestResponse(w, reqID, logger, details)
	case http.StatusForbidden:
		SendForbiddenResponse(w, reqID, logger, details)
	case http.StatusNotFound:
		SendStatusNotFoundResponse(w, reqID, logger, details)
	case http.StatusRequestEntityTooLarge:
		SendRequestTooLargeResponse(w, reqID, logger, details)
	case http.StatusInternalServerError:
		SendInternalServerError(w, reqID, InternalErrorMessage, logger, details)
	default:
		SendResponseWithStatusAndMessage(w, status, reqID, UnknownErrorMessage, logger, details)
	}
}

func SendResponseWithStatusAndMessage(w http.ResponseWriter, status int, reqID string, message APIErrorMessage, logger logging.Logger, details string) {
	if reqID == "" {
		logger.Debug("request id is empty")
	}

	w.Header().Set(headers.ContentType, ContentTypeApplicationJson)
	w.WriteHeader(status)

	var detailValues url.Values
	if details != "" {
		logger.Debug("Request was not successful: [error]: %s", details)
		detailValues = url.Values{"details": []string{details}}
	}

	apiErr := NewAPIError(reqID, message, detailValues)
	EncodeToJSON(w, apiErr, logger)
}
