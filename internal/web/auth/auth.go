package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/downstreams/identityprovider"
	"github.com/DEFRA/mpdp-admin-frontend/internal/restapi/middleware"
	"github.com/DEFRA/mpdp-admin-frontend/internal/session"
	"github.com/DEFRA/mpdp-admin-frontend/internal/web/views"
)

type authHandler struct {
	sessions *session.Manager
	idp      identityprovider.IdentityProvider
	views    *views.Renderer
}

func Create(router chi.Router, sessions *session.Manager, idp identityprovider.IdentityProvider, v *views.Renderer) {
	handler := authHandler{
		sessions: sessions,
		idp:      idp,
		views:    v,
	}

	router.Get(middleware.SignInPath, handler.handleSignInGet)
	router.Get("/auth/sign-in-oidc", handler.handleSignInCallbackGet)
	router.Get("/auth/sign-out", handler.handleSignOutGet)
	router.Get("/auth/sign-out-oidc", handler.handleSignOutCallbackGet)
}

func (h *authHandler) handleSignInGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state, err := h.sessions.CreateState(ctx, w, r, session.PurposeSignIn)
	if err != nil {
		logging.LoggerFromContext(ctx).Error("failed to create sign in state: %s", err.Error())
		h.views.RenderError(w, r, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.idp.AuthCodeURL(state), http.StatusFound)
}

func (h *authHandler) handleSignInCallbackGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.LoggerFromContext(ctx)
	query := r.URL.Query()

	if err := h.sessions.ValidateState(ctx, r, session.PurposeSignIn, query.Get("state")); err != nil {
		h.stateFailed(w, r, err)
		return
	}

	if idpErr := query.Get("error"); idpErr != "" {
		logger.Warn("identity provider refused sign in: %s %s", idpErr, query.Get("error_description"))
		h.views.RenderError(w, r, http.StatusUnauthorized)
		return
	}

	code := query.Get("code")
	if code == "" {
		h.views.RenderError(w, r, http.StatusBadRequest)
		return
	}

	identity, err := h.idp.Exchange(ctx, code)
	if err != nil {
		logger.Warn("sign in failed: %s", err.Error())
		h.views.RenderError(w, r, http.StatusUnauthorized)
		return
	}

	us, err := h.sessions.CreateSession(ctx, w, entities.UserSession{
		DisplayName:  identity.DisplayName,
		Email:        identity.Email,
		LoginHint:    identity.LoginHint,
		Scope:        identity.Roles,
		Token:        identity.Token,
		RefreshToken: identity.RefreshToken,
		ExpiresAt:    identity.ExpiresAt,
	})
	if err != nil {
		logger.Error("failed to store session: %s", err.Error())
		h.views.RenderError(w, r, http.StatusInternalServerError)
		return
	}
	logger.Info("%s signed in with roles %v", identity.Subject, us.Scope)

	redirect, _, err := h.sessions.GetTemp(ctx, r, session.KeyRedirect)
	if err != nil {
		logger.Warn("failed to read redirect after sign in: %s", err.Error())
	}
	if err := h.sessions.ClearTemp(ctx, r, session.KeyRedirect); err != nil {
		logger.Warn("failed to clear redirect after sign in: %s", err.Error())
	}

	http.Redirect(w, r, session.GetSafeRedirect(redirect), http.StatusFound)
}

func (h *authHandler) handleSignOutGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.LoggerFromContext(ctx)

	us := middleware.SessionFromContext(ctx)
	if us == nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := h.sessions.DropSession(ctx, w, us); err != nil {
		logger.Warn("failed to drop session on sign out: %s", err.Error())
	}

	state, err := h.sessions.CreateState(ctx, w, r, session.PurposeSignOut)
	if err != nil {
		logger.Error("failed to create sign out state: %s", err.Error())
		h.views.RenderError(w, r, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.idp.SignOutURL(us.LoginHint, state), http.StatusFound)
}

func (h *authHandler) handleSignOutCallbackGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	returned := r.URL.Query().Get("state")
	pending, err := h.sessions.HasState(ctx, r, session.PurposeSignOut)
	if err != nil {
		logging.LoggerFromContext(ctx).Error("failed to read sign out state: %s", err.Error())
		h.views.RenderError(w, r, http.StatusInternalServerError)
		return
	}

	if pending || returned != "" {
		if err := h.sessions.ValidateState(ctx, r, session.PurposeSignOut, returned); err != nil {
			h.stateFailed(w, r, err)
			return
		}
	}

	// should already be gone after sign out
	if us := middleware.SessionFromContext(ctx); us != nil {
		if err := h.sessions.DropSession(ctx, w, us); err != nil {
			logging.LoggerFromContext(ctx).Warn("failed to drop session: %s", err.Error())
		}
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *authHandler) stateFailed(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.LoggerFromContext(r.Context())
	if errors.Is(err, session.ErrStateMismatch) {
		logger.Warn("rejected callback: %s", err.Error())
		h.views.RenderError(w, r, http.StatusForbidden)
		return
	}
	logger.Error("failed to validate state: %s", err.Error())
	h.views.RenderError(w, r, http.StatusInternalServerError)
}
