package start

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DEFRA/mpdp-admin-frontend/internal/web/views"
)

func Create(router chi.Router, v *views.Renderer) {
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		v.Render(w, r, http.StatusOK, views.PageStart, views.NewPage(""))
	})
}
