package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/go-http-utils/headers"

	"github.com/DEFRA/mpdp-admin-frontend/internal/common"
	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
	restcommon "github.com/DEFRA/mpdp-admin-frontend/internal/restapi/common"
	"github.com/DEFRA/mpdp-admin-frontend/internal/session"
)

const (
	CrumbCookieName = "crumb"
	CrumbFieldName  = "crumb"

	// file parts beyond this are spooled to disk
	multipartMemory = 32 << 20
)

func CrumbFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	crumb, _ := ctx.Value(common.CtxKeyCrumb{}).(string)
	return crumb
}

// CrumbMiddleware implements double submit csrf protection.
//
// Every visitor gets a random token in the crumb cookie. Requests that change state must echo it,
// either in the crumb form field or in the X-CSRF-Token header. Request bodies are limited to maxBodyBytes.
func CrumbMiddleware(secureCookie bool, maxBodyBytes int64, onError ErrorResponder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger := logging.LoggerFromContext(ctx)

			token := ""
			if c, err := r.Cookie(CrumbCookieName); err == nil {
				token = c.Value
			}
			fresh := token == ""
			if fresh {
				var err error
				token, err = session.NewToken()
				if err != nil {
					logger.Error("failed to generate crumb: %s", err.Error())
					onError(w, r, http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     CrumbCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					Secure:   secureCookie,
					SameSite: http.SameSiteStrictMode,
				})
			}

			r = r.WithContext(context.WithValue(ctx, common.CtxKeyCrumb{}, token))

			if !changesState(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			submitted, err := submittedCrumb(r)
			if r.MultipartForm != nil {
				defer func() {
					_ = r.MultipartForm.RemoveAll()
				}()
			}
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					logger.Warn("request body exceeds %d bytes", maxBodyBytes)
					onError(w, r, http.StatusRequestEntityTooLarge)
					return
				}
				logger.Warn("failed to parse form: %s", err.Error())
				onError(w, r, http.StatusBadRequest)
				return
			}

			if fresh || submitted == "" || subtle.ConstantTimeCompare([]byte(submitted), []byte(token)) != 1 {
				logger.Warn("crumb mismatch on %s %s", r.Method, r.URL.Path)
				if restcommon.WantsJSON(r) {
					restcommon.SendResponseWithStatusAndMessage(w, http.StatusForbidden, logging.GetRequestID(ctx), restcommon.CrumbMismatchMessage, logger, "")
					return
				}
				onError(w, r, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func changesState(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func submittedCrumb(r *http.Request) (string, error) {
	if fromHeader := r.Header.Get(headers.XCSRFToken); fromHeader != "" {
		return fromHeader, nil
	}

	if strings.HasPrefix(r.Header.Get(headers.ContentType), "multipart/form-data") {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return "", err
		}
	} else if err := r.ParseForm(); err != nil {
		return "", err
	}
	return r.PostFormValue(CrumbFieldName), nil
}
