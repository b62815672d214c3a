package common

// ApplicationName is attached to every log line and used as the default service name.
const ApplicationName = "mpdp-admin-frontend"

// DefaultRequestID is used whenever no request id could be determined.
const DefaultRequestID = "ffffffff"

// context key types, so no other package has a chance of accessing the values
type (
	CtxKeyRequestID struct{}
	CtxKeyLogger    struct{}
	CtxKeySession   struct{}
	CtxKeyCrumb     struct{}
)
