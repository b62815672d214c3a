package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/DEFRA/mpdp-admin-frontend/internal/config"
	"github.com/DEFRA/mpdp-admin-frontend/internal/interaction"
	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/downstreams/identityprovider"
	"github.com/DEFRA/mpdp-admin-frontend/internal/restapi/middleware"
	v1health "github.com/DEFRA/mpdp-admin-frontend/internal/restapi/v1/health"
	"github.com/DEFRA/mpdp-admin-frontend/internal/session"
	adminpayments "github.com/DEFRA/mpdp-admin-frontend/internal/web/admin/payments"
	adminsummaries "github.com/DEFRA/mpdp-admin-frontend/internal/web/admin/summaries"
	"github.com/DEFRA/mpdp-admin-frontend/internal/web/auth"
	"github.com/DEFRA/mpdp-admin-frontend/internal/web/start"
	"github.com/DEFRA/mpdp-admin-frontend/internal/web/views"
)

// MaxBodyBytes is the largest request body accepted, sized for csv uploads.
const MaxBodyBytes = 100 << 20

const shutdownGrace = 10 * time.Second

// Collaborators is everything the routes need, wired up in main.
type Collaborators struct {
	Interactor interaction.Interactor
	Sessions   *session.Manager
	Authorizer middleware.Authorizer
	Identity   identityprovider.IdentityProvider
	Views      *views.Renderer
}

func NewServer(ctx context.Context, conf *config.ServerConfig, router http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", conf.BaseAddress, conf.Port),
		Handler:      router,
		ReadTimeout:  time.Second * time.Duration(conf.ReadTimeout),
		WriteTimeout: time.Second * time.Duration(conf.WriteTimeout),
		IdleTimeout:  time.Second * time.Duration(conf.IdleTimeout),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}
}

func CreateRouter(conf *config.Application, c Collaborators) chi.Router {
	router := chi.NewRouter()

	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestIdMiddleware())
	router.Use(middleware.LogRequestIdMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware(conf.Service.AssetPath))
	router.Use(middleware.SessionMiddleware(c.Sessions))
	router.Use(middleware.CrumbMiddleware(!conf.Security.InsecureCookies, MaxBodyBytes, c.Views.RenderError))

	router.NotFound(c.Views.NotFound)
	router.MethodNotAllowed(c.Views.MethodNotAllowed)

	v1health.Create(router)
	setupStaticFiles(router, conf.Service)
	start.Create(router, c.Views)
	auth.Create(router, c.Sessions, c.Identity, c.Views)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuthorization(c.Authorizer, c.Sessions, c.Views.RenderError))
		adminpayments.Create(r, c.Interactor, c.Views)
		adminsummaries.Create(r, c.Interactor, c.Views)
	})

	return router
}

func setupStaticFiles(router chi.Router, conf config.ServiceConfig) {
	if conf.StaticDir == "" {
		return
	}
	prefix := strings.TrimSuffix(conf.AssetPath, "/")
	fileServer := http.StripPrefix(prefix, http.FileServer(http.Dir(conf.StaticDir)))
	router.Handle(prefix+"/*", fileServer)
}

// Serve runs srv until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, srv *http.Server) error {
	errs := make(chan error, 1)
	go func() {
		logging.NoCtx().Info("listening on %s", srv.Addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.NoCtx().Info("shutting down, waiting up to %s for open requests", shutdownGrace)
	tCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(tCtx); err != nil {
		return fmt.Errorf("could not shut down server gracefully: %w", err)
	}
	return nil
}
