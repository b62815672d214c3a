package adminsummaries

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DEFRA/mpdp-admin-frontend/internal/interaction"
	"github.com/DEFRA/mpdp-admin-frontend/internal/web/admin"
	"github.com/DEFRA/mpdp-admin-frontend/internal/web/views"
)

const (
	BasePath = "/admin/summary"

	pageManage = views.PageManageSummaries
	pageAdd    = views.PageAddSummary
	pageEdit   = views.PageEditSummary
	pageDelete = views.PageDeleteSummary
)

var successMessages = map[string]string{
	admin.SuccessAdded:   "Payment summary added successfully",
	admin.SuccessUpdated: "Payment summary updated successfully",
	admin.SuccessDeleted: "Payment summary deleted successfully",
}

type summariesHandler struct {
	interactor interaction.Interactor
	views      *views.Renderer
}

func Create(router chi.Router, i interaction.Interactor, v *views.Renderer) {
	handler := summariesHandler{
		interactor: i,
		views:      v,
	}

	router.Get(BasePath, handler.handleSummariesGet)
	router.Get(BasePath+"/add", handler.handleAddGet)
	router.Post(BasePath+"/add", handler.handleAddPost)
	router.Get(BasePath+"/edit/{id}", handler.handleEditGet)
	router.Post(BasePath+"/edit/{id}", handler.handleEditPost)
	router.Get(BasePath+"/delete/{id}", handler.handleDeleteGet)
	router.Post(BasePath+"/delete/{id}", handler.handleDeletePost)
}

func (h *summariesHandler) handleSummariesGet(w http.ResponseWriter, r *http.Request) {
	page := views.NewPage("Manage payment summaries").
		WithData(h.interactor.ListSummaries(r.Context())).
		WithSuccess(successMessages[r.URL.Query().Get("success")])
	h.views.Render(w, r, http.StatusOK, pageManage, page)
}

func (h *summariesHandler) handleAddGet(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, http.StatusOK, pageAdd, views.NewPage("Add payment summary"))
}

func (h *summariesHandler) handleAddPost(w http.ResponseWriter, r *http.Request) {
	form, err := admin.PostForm(r)
	if err != nil {
		h.views.RenderError(w, r, http.StatusBadRequest)
		return
	}

	res := h.interactor.CreateSummary(r.Context(), form)
	if !res.OK {
		status, page := admin.FailedForm(views.NewPage("Add payment summary"), res)
		h.views.Render(w, r, status, pageAdd, page)
		return
	}
	redirectWithSuccess(w, r, admin.SuccessAdded)
}

func (h *summariesHandler) handleEditGet(w http.ResponseWriter, r *http.Request) {
	id, ok := admin.ParseID(r)
	if !ok {
		h.views.NotFound(w, r)
		return
	}

	res := h.interactor.GetSummary(r.Context(), id)
	if !res.OK {
		h.views.RenderError(w, r, admin.StatusFor(res.Kind))
		return
	}

	page := views.NewPage("Edit payment summary").
		WithValues(admin.SummaryValues(res.Value)).
		WithData(views.EditTarget{ID: id})
	h.views.Render(w, r, http.StatusOK, pageEdit, page)
}

func (h *summariesHandler) handleEditPost(w http.ResponseWriter, r *http.Request) {
	id, ok := admin.ParseID(r)
	if !ok {
		h.views.NotFound(w, r)
		return
	}
	form, err := admin.PostForm(r)
	if err != nil {
		h.views.RenderError(w, r, http.StatusBadRequest)
		return
	}

	res := h.interactor.UpdateSummary(r.Context(), id, form)
	if !res.OK {
		status, page := admin.FailedForm(views.NewPage("Edit payment summary").WithData(views.EditTarget{ID: id}), res)
		h.views.Render(w, r, status, pageEdit, page)
		return
	}
	redirectWithSuccess(w, r, admin.SuccessUpdated)
}

func (h *summariesHandler) handleDeleteGet(w http.ResponseWriter, r *http.Request) {
	id, ok := admin.ParseID(r)
	if !ok {
		h.views.NotFound(w, r)
		return
	}

	res := h.interactor.GetSummary(r.Context(), id)
	if !res.OK {
		h.views.RenderError(w, r, admin.StatusFor(res.Kind))
		return
	}
	h.views.Render(w, r, http.StatusOK, pageDelete, views.NewPage("Delete payment summary").WithData(res.Value))
}

func (h *summariesHandler) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := admin.ParseID(r)
	if !ok {
		h.views.NotFound(w, r)
		return
	}

	ctx := r.Context()
	res := h.interactor.DeleteSummary(ctx, id)
	if !res.OK {
		page := views.NewPage("Delete payment summary").WithError(res.Detail)
		if current := h.interactor.GetSummary(ctx, id); current.OK {
			page = page.WithData(current.Value)
		}
		h.views.Render(w, r, admin.StatusFor(res.Kind), pageDelete, page)
		return
	}
	redirectWithSuccess(w, r, admin.SuccessDeleted)
}

func redirectWithSuccess(w http.ResponseWriter, r *http.Request, success string) {
	http.Redirect(w, r, BasePath+"?success="+success, http.StatusFound)
}
