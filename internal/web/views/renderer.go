package views

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
	"github.com/DEFRA/mpdp-admin-frontend/internal/restapi/common"
	"github.com/DEFRA/mpdp-admin-frontend/internal/restapi/middleware"
)

// Renderer turns a Page into html, wrapped in the shared layout.
type Renderer struct {
	serviceName string
	assetPath   string
	manifest    Manifest
}

func NewRenderer(serviceName string, assetPath string, manifest Manifest) (*Renderer, error) {
	if manifest == nil {
		manifest = Manifest{}
	}
	return &Renderer{
		serviceName: serviceName,
		assetPath:   assetPath,
		manifest:    manifest,
	}, nil
}

func (v *Renderer) assetURL(asset string) string {
	return v.manifest.Resolve(v.assetPath, asset)
}

// Render writes the named page with status. The page is rendered completely before anything is sent,
// so a rendering failure still ends in a proper error response.
func (v *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, page Page) {
	ctx := r.Context()
	logger := logging.LoggerFromContext(ctx)

	build, ok := pages[name]
	if !ok {
		logger.Error("no such page: %s", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	page.ServiceName = v.serviceName
	page.AssetPath = v.assetPath
	page.User = middleware.SessionFromContext(ctx)
	page.Crumb = middleware.CrumbFromContext(ctx)
	page.assetURL = v.assetURL
	if page.Errors == nil {
		page.Errors = map[string]string{}
	}
	if page.Values == nil {
		page.Values = map[string]string{}
	}

	content, err := build(page)
	if err != nil {
		logger.Error("failed to render page %s: %s", name, err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	templ.Handler(layout(page, content),
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			logger.Error("failed to render page %s: %s", name, err.Error())
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

var errorDetails = map[int]ErrorDetails{
	http.StatusBadRequest:            {Heading: "Bad request", Message: "The request could not be understood."},
	http.StatusUnauthorized:          {Heading: "You could not be signed in", Message: "Sign in again. Contact your administrator if the problem continues."},
	http.StatusForbidden:             {Heading: "You do not have access to this page", Message: "Your account is not allowed to do this. Contact your administrator if you think this is wrong."},
	http.StatusNotFound:              {Heading: "Page not found", Message: "If you typed the web address, check it is correct."},
	http.StatusRequestEntityTooLarge: {Heading: "File too large", Message: "The file you uploaded is too large."},
}

// RenderError shows the error page for status. Clients asking for json get an APIError instead.
func (v *Renderer) RenderError(w http.ResponseWriter, r *http.Request, status int) {
	if common.WantsJSON(r) {
		common.SendStatus(w, status, logging.GetRequestID(r.Context()), logging.LoggerFromContext(r.Context()), "")
		return
	}

	details, ok := errorDetails[status]
	if !ok {
		details = ErrorDetails{Heading: "Sorry, there is a problem with the service", Message: "Try again later."}
	}
	details.Status = status

	v.Render(w, r, status, PageError, NewPage(details.Heading).WithData(details))
}

// NotFound and MethodNotAllowed plug into the router.
func (v *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	v.RenderError(w, r, http.StatusNotFound)
}

func (v *Renderer) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	v.RenderError(w, r, http.StatusMethodNotAllowed)
}
