package middleware

import (
	"context"
	"net/http"

	"github.com/DEFRA/mpdp-admin-frontend/internal/common"
	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
	"github.com/DEFRA/mpdp-admin-frontend/internal/session"
)

const SignInPath = "/auth/sign-in"

// ErrorResponder answers a request that cannot proceed, as a rendered page or as json.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, status int)

type SessionLoader interface {
	LoadSession(ctx context.Context, r *http.Request) (*entities.UserSession, error)
}

type RedirectRememberer interface {
	SetTemp(ctx context.Context, w http.ResponseWriter, r *http.Request, name string, value string) error
}

type Authorizer interface {
	Authorize(us *entities.UserSession, path string, method string) (bool, error)
}

// SessionFromContext returns the signed in user, or nil.
func SessionFromContext(ctx context.Context) *entities.UserSession {
	if ctx == nil {
		return nil
	}
	us, _ := ctx.Value(common.CtxKeySession{}).(*entities.UserSession)
	return us
}

func ContextWithSession(ctx context.Context, us *entities.UserSession) context.Context {
	return context.WithValue(ctx, common.CtxKeySession{}, us)
}

// SessionMiddleware places the signed in user, if any, in the request context.
//
// A broken session store degrades to an anonymous request.
func SessionMiddleware(sessions SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			us, err := sessions.LoadSession(ctx, r)
			if err != nil {
				logging.LoggerFromContext(ctx).Warn("failed to load session, continuing signed out: %s", err.Error())
				us = nil
			}
			if us != nil {
				r = r.WithContext(ContextWithSession(ctx, us))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuthorization sends anonymous users to sign in, remembering where they wanted to go,
// and refuses signed in users the policy does not allow.
func RequireAuthorization(authorizer Authorizer, redirects RedirectRememberer, onError ErrorResponder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger := logging.LoggerFromContext(ctx)

			us := SessionFromContext(ctx)
			if us == nil {
				if r.Method == http.MethodGet {
					if err := redirects.SetTemp(ctx, w, r, session.KeyRedirect, r.URL.RequestURI()); err != nil {
						logger.Warn("failed to remember redirect after sign in: %s", err.Error())
					}
				}
				http.Redirect(w, r, SignInPath, http.StatusFound)
				return
			}

			allowed, err := authorizer.Authorize(us, r.URL.Path, r.Method)
			if err != nil {
				logger.Error("authorization check failed for %s %s: %s", r.Method, r.URL.Path, err.Error())
				onError(w, r, http.StatusInternalServerError)
				return
			}
			if !allowed {
				logger.Warn("%s may not %s %s", us.Email, r.Method, r.URL.Path)
				onError(w, r, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
