// Package admin holds what the admin page handlers share: id parsing, status mapping and form values.
package admin

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/interaction"
	"github.com/DEFRA/mpdp-admin-frontend/internal/mapping"
	"github.com/DEFRA/mpdp-admin-frontend/internal/validation"
	"github.com/DEFRA/mpdp-admin-frontend/internal/web/views"
)

const (
	SuccessAdded   = "added"
	SuccessUpdated = "updated"
	SuccessDeleted = "deleted"
)

// ParseID reads the {id} path parameter. Only positive integers are ids.
func ParseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func StatusFor(kind interaction.Kind) int {
	switch kind {
	case interaction.KindNone:
		return http.StatusOK
	case interaction.KindValidation:
		return http.StatusBadRequest
	case interaction.KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// FailedForm turns a failed write into the status and page for showing the form again.
func FailedForm[T any](page views.Page, res interaction.Result[T]) (int, views.Page) {
	page = page.WithValues(res.Submitted)
	if len(res.FieldErrors) > 0 {
		page = page.WithFieldErrors(res.FieldErrors)
	} else if res.Detail != "" {
		page = page.WithError(res.Detail)
	}
	return StatusFor(res.Kind), page
}

// PostForm returns the submitted form. Multipart bodies have already been parsed by the crumb check.
func PostForm(r *http.Request) (url.Values, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}

// PaymentValues fills the payment form for editing.
func PaymentValues(p entities.Payment) map[string]string {
	values := map[string]string{
		validation.FieldPayeeName:                 p.PayeeName,
		validation.FieldPartPostcode:              p.PartPostcode,
		validation.FieldTown:                      p.Town,
		validation.FieldParliamentaryConstituency: p.ParliamentaryConstituency,
		validation.FieldCountyCouncil:             p.CountyCouncil,
		validation.FieldScheme:                    p.Scheme,
		validation.FieldAmount:                    p.Amount.String(),
		validation.FieldFinancialYear:             p.FinancialYear,
		validation.FieldSchemeDetail:              p.SchemeDetail,
		validation.FieldActivityLevel:             p.ActivityLevel,
	}

	date := mapping.SplitDate(p.PaymentDate)
	if !date.IsEmpty() {
		values[validation.FieldPaymentDateDay] = strconv.Itoa(date.Day)
		values[validation.FieldPaymentDateMonth] = strconv.Itoa(date.Month)
		values[validation.FieldPaymentDateYear] = strconv.Itoa(date.Year)
	}
	return values
}

func SummaryValues(s entities.PaymentSummary) map[string]string {
	return map[string]string{
		validation.FieldFinancialYear: s.FinancialYear,
		validation.FieldScheme:        s.Scheme,
		validation.FieldTotalAmount:   s.TotalAmount.String(),
	}
}
