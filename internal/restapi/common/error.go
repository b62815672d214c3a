package common

import (
	"net/url"
	"time"
)

type APIErrorMessage string

const (
	AuthForbiddenMessage     APIErrorMessage = "auth.forbidden"
	CrumbMismatchMessage     APIErrorMessage = "auth.crumb.mismatch"
	RequestParseErrorMessage APIErrorMessage = "request.parse.failed"
	RequestTooLargeMessage   APIErrorMessage = "request.too.large"
	NotFoundMessage          APIErrorMessage = "resource.not.found"
	InternalErrorMessage     APIErrorMessage = "http.error.internal"
	UnknownErrorMessage      APIErrorMessage = "http.error.unknown"
)

// APIError is the generic return type for any Failure
// during endpoint operations
type APIError struct {
	RequestID string     `json:"requestid"`
	Message   string     `json:"message"`
	Timestamp int64      `json:"timestamp"`
	Details   url.Values `json:"details,omitempty"`
}

// NewAPIError creates a new instance of the `APIError` which will be returned
// to the client if an operation fails
func NewAPIError(reqID string, message APIErrorMessage, details url.Values) *APIError {
	return &APIError{
		RequestID: reqID,
		Message:   string(message),
		Timestamp: time.Now().Unix(),
		Details:   details,
	}
}
