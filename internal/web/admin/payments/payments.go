package adminpayments

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DEFRA/mpdp-admin-frontend/internal/interaction"
	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
	"github.com/DEFRA/mpdp-admin-frontend/internal/validation"
	"github.com/DEFRA/mpdp-admin-frontend/internal/web/admin"
	"github.com/DEFRA/mpdp-admin-frontend/internal/web/views"
)

const (
	BasePath = "/admin/payments"

	pageManage               = views.PageManagePayments
	pageAdd                  = views.PageAddPayment
	pageEdit                 = views.PageEditPayment
	pageDelete               = views.PageDeletePayment
	pageBulkUpload           = views.PageBulkUpload
	pageDeleteByYear         = views.PageDeleteByYear
	pageDeleteByYearDone     = views.PageDeleteByYearDone
	pageDeleteByDate         = views.PageDeleteByPublishedDate
	pageDeleteByDateDone     = views.PageDeleteByPublishedDateDone
	pageBulkSetPublished     = views.PageBulkSetPublishedDate
	pageBulkSetPublishedDone = views.PageBulkSetPublishedDateDone
)

var successMessages = map[string]string{
	admin.SuccessAdded:   "Payment added successfully",
	admin.SuccessUpdated: "Payment updated successfully",
	admin.SuccessDeleted: "Payment deleted successfully",
}

type paymentsHandler struct {
	interactor interaction.Interactor
	views      *views.Renderer
}

func Create(router chi.Router, i interaction.Interactor, v *views.Renderer) {
	handler := paymentsHandler{
		interactor: i,
		views:      v,
	}

	router.Get(BasePath, handler.handlePaymentsGet)
	router.Get(BasePath+"/add", handler.handleAddGet)
	router.Post(BasePath+"/add", handler.handleAddPost)
	router.Get(BasePath+"/{id}/edit", handler.handleEditGet)
	router.Post(BasePath+"/{id}/edit", handler.handleEditPost)
	router.Get(BasePath+"/{id}/delete", handler.handleDeleteGet)
	router.Post(BasePath+"/{id}/delete", handler.handleDeletePost)

	router.Get(BasePath+"/bulk-upload", handler.handleBulkUploadGet)
	router.Post(BasePath+"/bulk-upload", handler.handleBulkUploadPost)
	router.Get(BasePath+"/delete-by-year", handler.handleDeleteByYearGet)
	router.Post(BasePath+"/delete-by-year", handler.handleDeleteByYearPost)
	router.Get(BasePath+"/delete-by-published-date", handler.handleDeleteByDateGet)
	router.Post(BasePath+"/delete-by-published-date", handler.handleDeleteByDatePost)
	router.Get(BasePath+"/bulk-set-published-date", handler.handleBulkSetGet)
	router.Post(BasePath+"/bulk-set-published-date", handler.handleBulkSetPost)
}

func (h *paymentsHandler) handlePaymentsGet(w http.ResponseWriter, r *http.Request) {
	query := validation.ListPaymentsQuerySchema.Validate(r.URL.Query())
	if !query.Valid() {
		h.views.RenderError(w, r, http.StatusBadRequest)
		return
	}

	searchString := query.String(validation.FieldSearchString)
	payments := h.interactor.ListPayments(r.Context(), query.Int(validation.FieldPage), searchString)

	page := views.NewPage("Manage Payments").
		WithData(views.PaymentList{Payments: payments, SearchString: searchString}).
		WithSuccess(successMessages[r.URL.Query().Get("success")])
	h.views.Render(w, r, http.StatusOK, pageManage, page)
}

func (h *paymentsHandler) handleAddGet(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, http.StatusOK, pageAdd, views.NewPage("Add Payment"))
}

func (h *paymentsHandler) handleAddPost(w http.ResponseWriter, r *http.Request) {
	form, err := admin.PostForm(r)
	if err != nil {
		h.views.RenderError(w, r, http.StatusBadRequest)
		return
	}

	res := h.interactor.CreatePayment(r.Context(), form)
	if !res.OK {
		status, page := admin.FailedForm(views.NewPage("Add Payment"), res)
		h.views.Render(w, r, status, pageAdd, page)
		return
	}
	redirectWithSuccess(w, r, admin.SuccessAdded)
}

func (h *paymentsHandler) handleEditGet(w http.ResponseWriter, r *http.Request) {
	id, ok := admin.ParseID(r)
	if !ok {
		h.views.NotFound(w, r)
		return
	}

	res := h.interactor.GetPayment(r.Context(), id)
	if !res.OK {
		h.views.RenderError(w, r, admin.StatusFor(res.Kind))
		return
	}

	page := views.NewPage("Edit Payment").
		WithValues(admin.PaymentValues(res.Value)).
		WithData(views.EditTarget{ID: id})
	h.views.Render(w, r, http.StatusOK, pageEdit, page)
}

func (h *paymentsHandler) handleEditPost(w http.ResponseWriter, r *http.Request) {
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

	res := h.interactor.UpdatePayment(r.Context(), id, form)
	if !res.OK {
		status, page := admin.FailedForm(views.NewPage("Edit Payment").WithData(views.EditTarget{ID: id}), res)
		h.views.Render(w, r, status, pageEdit, page)
		return
	}
	redirectWithSuccess(w, r, admin.SuccessUpdated)
}

func (h *paymentsHandler) handleDeleteGet(w http.ResponseWriter, r *http.Request) {
	id, ok := admin.ParseID(r)
	if !ok {
		h.views.NotFound(w, r)
		return
	}

	res := h.interactor.GetPayment(r.Context(), id)
	if !res.OK {
		h.views.RenderError(w, r, admin.StatusFor(res.Kind))
		return
	}
	h.views.Render(w, r, http.StatusOK, pageDelete, views.NewPage("Delete Payment").WithData(res.Value))
}

func (h *paymentsHandler) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := admin.ParseID(r)
	if !ok {
		h.views.NotFound(w, r)
		return
	}

	ctx := r.Context()
	res := h.interactor.DeletePayment(ctx, id)
	if !res.OK {
		page := views.NewPage("Delete Payment").WithError(res.Detail)
		// show what was about to be deleted if it can still be loaded
		if current := h.interactor.GetPayment(ctx, id); current.OK {
			page = page.WithData(current.Value)
		}
		h.views.Render(w, r, admin.StatusFor(res.Kind), pageDelete, page)
		return
	}
	redirectWithSuccess(w, r, admin.SuccessDeleted)
}

func (h *paymentsHandler) handleBulkUploadGet(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, http.StatusOK, pageBulkUpload, views.NewPage("Bulk Upload Payments"))
}

func (h *paymentsHandler) handleBulkUploadPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var csv io.Reader
	file, _, err := r.FormFile(interaction.FieldFile)
	switch {
	case err == nil:
		defer file.Close()
		csv = file
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// no file chosen, reported by the interactor
	default:
		logging.LoggerFromContext(ctx).Warn("failed to read uploaded file: %s", err.Error())
		h.views.RenderError(w, r, http.StatusBadRequest)
		return
	}

	res := h.interactor.BulkUpload(ctx, csv)
	if !res.OK {
		status, page := admin.FailedForm(views.NewPage("Bulk Upload Payments"), res)
		h.views.Render(w, r, status, pageBulkUpload, page)
		return
	}

	page := views.NewPage("Bulk Upload Payments").
		WithSuccess(fmt.Sprintf("Successfully uploaded %d payments", res.Value.Imported)).
		WithData(&res.Value)
	h.views.Render(w, r, http.StatusOK, pageBulkUpload, page)
}

func (h *paymentsHandler) yearsPage(r *http.Request, title string) views.Page {
	return views.NewPage(title).WithData(views.YearChoices{Years: h.interactor.ListFinancialYears(r.Context())})
}

func (h *paymentsHandler) handleDeleteByYearGet(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, http.StatusOK, pageDeleteByYear, h.yearsPage(r, "Delete Payments by Financial Year"))
}

func (h *paymentsHandler) handleDeleteByYearPost(w http.ResponseWriter, r *http.Request) {
	form, err := admin.PostForm(r)
	if err != nil {
		h.views.RenderError(w, r, http.StatusBadRequest)
		return
	}

	res := h.interactor.DeleteByYear(r.Context(), form)
	if !res.OK {
		status, page := admin.FailedForm(h.yearsPage(r, "Delete Payments by Financial Year"), res)
		h.views.Render(w, r, status, pageDeleteByYear, page)
		return
	}
	h.views.Render(w, r, http.StatusOK, pageDeleteByYearDone, views.NewPage("Deletion Complete").WithData(res.Value))
}

func (h *paymentsHandler) handleDeleteByDateGet(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, http.StatusOK, pageDeleteByDate, views.NewPage("Delete Payments by Published Date"))
}

func (h *paymentsHandler) handleDeleteByDatePost(w http.ResponseWriter, r *http.Request) {
	form, err := admin.PostForm(r)
	if err != nil {
		h.views.RenderError(w, r, http.StatusBadRequest)
		return
	}

	res := h.interactor.DeleteByPublishedDate(r.Context(), form)
	if !res.OK {
		status, page := admin.FailedForm(views.NewPage("Delete Payments by Published Date"), res)
		h.views.Render(w, r, status, pageDeleteByDate, page)
		return
	}
	h.views.Render(w, r, http.StatusOK, pageDeleteByDateDone, views.NewPage("Deletion Complete").WithData(res.Value))
}

func (h *paymentsHandler) handleBulkSetGet(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, http.StatusOK, pageBulkSetPublished, h.yearsPage(r, "Bulk Set Published Date"))
}

func (h *paymentsHandler) handleBulkSetPost(w http.ResponseWriter, r *http.Request) {
	form, err := admin.PostForm(r)
	if err != nil {
		h.views.RenderError(w, r, http.StatusBadRequest)
		return
	}

	res := h.interactor.BulkSetPublishedDate(r.Context(), form)
	if !res.OK {
		status, page := admin.FailedForm(h.yearsPage(r, "Bulk Set Published Date"), res)
		h.views.Render(w, r, status, pageBulkSetPublished, page)
		return
	}
	h.views.Render(w, r, http.StatusOK, pageBulkSetPublishedDone, views.NewPage("Published Date Updated").WithData(res.Value))
}

func redirectWithSuccess(w http.ResponseWriter, r *http.Request, success string) {
	http.Redirect(w, r, BasePath+"?success="+success, http.StatusFound)
}
