package adminsummaries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/interaction"
	"github.com/DEFRA/mpdp-admin-frontend/internal/validation"
	"github.com/DEFRA/mpdp-admin-frontend/internal/web/views"
)

type fakeInteractor struct {
	interaction.Interactor

	calls []string

	summaries []entities.PaymentSummary
	summary   interaction.Result[entities.PaymentSummary]
	write     interaction.Result[entities.PaymentSummary]
	deleted   interaction.Result[int64]
	lastID    int64
	lastForm  url.Values
}

func (f *fakeInteractor) ListSummaries(_ context.Context) []entities.PaymentSummary {
	f.calls = append(f.calls, "ListSummaries")
	return f.summaries
}

func (f *fakeInteractor) GetSummary(_ context.Context, id int64) interaction.Result[entities.PaymentSummary] {
	f.calls = append(f.calls, "GetSummary")
	f.lastID = id
	return f.summary
}

func (f *fakeInteractor) CreateSummary(_ context.Context, form url.Values) interaction.Result[entities.PaymentSummary] {
	f.calls = append(f.calls, "CreateSummary")
	f.lastForm = form
	return f.write
}

func (f *fakeInteractor) UpdateSummary(_ context.Context, id int64, form url.Values) interaction.Result[entities.PaymentSummary] {
	f.calls = append(f.calls, "UpdateSummary")
	f.lastID, f.lastForm = id, form
	return f.write
}

func (f *fakeInteractor) DeleteSummary(_ context.Context, id int64) interaction.Result[int64] {
	f.calls = append(f.calls, "DeleteSummary")
	f.lastID = id
	return f.deleted
}

func setupRouter(t *testing.T, f *fakeInteractor) http.Handler {
	t.Helper()
	renderer, err := views.NewRenderer("Manage payment data", "/public", views.Manifest{})
	require.NoError(t, err)

	router := chi.NewRouter()
	Create(router, f, renderer)
	return router
}

func do(router http.Handler, method string, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListSummaries(t *testing.T) {
	f := &fakeInteractor{summaries: []entities.PaymentSummary{
		{ID: 1, FinancialYear: "23/24", Scheme: "SFI", TotalAmount: decimal.RequireFromString("2500000")},
	}}
	router := setupRouter(t, f)

	rec := do(router, http.MethodGet, "/admin/summary?success=added", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "£2,500,000.00")
	require.Contains(t, body, `href="/admin/summary/delete/1"`)
	require.Contains(t, body, "Payment summary added successfully")
}

func TestListSummariesEmpty(t *testing.T) {
	router := setupRouter(t, &fakeInteractor{summaries: []entities.PaymentSummary{}})

	rec := do(router, http.MethodGet, "/admin/summary?success=bogus", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "No payment summaries to show.")
	require.NotContains(t, rec.Body.String(), "govuk-notification-banner--success")
}

func TestWriteSummary(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		result   interaction.Result[entities.PaymentSummary]
		status   int
		location string
		contains string
	}{
		{
			name:     "add",
			target:   "/admin/summary/add",
			result:   interaction.Result[entities.PaymentSummary]{OK: true},
			status:   http.StatusFound,
			location: "/admin/summary?success=added",
		},
		{
			name:   "add invalid",
			target: "/admin/summary/add",
			result: interaction.Result[entities.PaymentSummary]{
				Kind:        interaction.KindValidation,
				FieldErrors: []validation.FieldError{{Field: "totalAmount", Message: `"totalAmount" must be a number`}},
				Submitted:   map[string]string{"totalAmount": "12x"},
			},
			status:   http.StatusBadRequest,
			contains: `name="totalAmount" type="text" value="12x"`,
		},
		{
			name:     "edit",
			target:   "/admin/summary/edit/4",
			result:   interaction.Result[entities.PaymentSummary]{OK: true},
			status:   http.StatusFound,
			location: "/admin/summary?success=updated",
		},
		{
			name:     "edit rejected",
			target:   "/admin/summary/edit/4",
			result:   interaction.Result[entities.PaymentSummary]{Kind: interaction.KindBackendRejected, Detail: interaction.MsgUpdateSummaryFailed},
			status:   http.StatusInternalServerError,
			contains: interaction.MsgUpdateSummaryFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeInteractor{write: tt.result}
			router := setupRouter(t, f)

			rec := do(router, http.MethodPost, tt.target, url.Values{"scheme": {"SFI"}})

			require.Equal(t, tt.status, rec.Code)
			require.Equal(t, "SFI", f.lastForm.Get("scheme"))
			if tt.location != "" {
				require.Equal(t, tt.location, rec.Header().Get("Location"))
			}
			if tt.contains != "" {
				require.Contains(t, rec.Body.String(), tt.contains)
			}
		})
	}
}

func TestEditSummaryGet(t *testing.T) {
	f := &fakeInteractor{summary: interaction.Result[entities.PaymentSummary]{OK: true, Value: entities.PaymentSummary{
		ID: 4, FinancialYear: "23/24", Scheme: "SFI", TotalAmount: decimal.RequireFromString("99.5"),
	}}}
	router := setupRouter(t, f)

	rec := do(router, http.MethodGet, "/admin/summary/edit/4", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(4), f.lastID)
	require.Contains(t, rec.Body.String(), `name="totalAmount" type="text" value="99.5"`)
	require.Contains(t, rec.Body.String(), `action="/admin/summary/edit/4"`)
}

func TestSummaryNotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown id", method: http.MethodGet, target: "/admin/summary/edit/77"},
		{name: "zero id", method: http.MethodGet, target: "/admin/summary/delete/0"},
		{name: "text id", method: http.MethodPost, target: "/admin/summary/delete/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeInteractor{summary: interaction.Result[entities.PaymentSummary]{Kind: interaction.KindNotFound}}
			router := setupRouter(t, f)

			require.Equal(t, http.StatusNotFound, do(router, tt.method, tt.target, nil).Code)
		})
	}
}

func TestDeleteSummary(t *testing.T) {
	f := &fakeInteractor{
		summary: interaction.Result[entities.PaymentSummary]{OK: true, Value: entities.PaymentSummary{ID: 2, Scheme: "SFI"}},
		deleted: interaction.Result[int64]{OK: true, Value: 2},
	}
	router := setupRouter(t, f)

	rec := do(router, http.MethodGet, "/admin/summary/delete/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `action="/admin/summary/delete/2"`)

	rec = do(router, http.MethodPost, "/admin/summary/delete/2", url.Values{})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/admin/summary?success=deleted", rec.Header().Get("Location"))

	f.deleted = interaction.Result[int64]{Kind: interaction.KindBackendRejected, Detail: interaction.MsgDeleteSummaryFailed}
	rec = do(router, http.MethodPost, "/admin/summary/delete/2", url.Values{})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), interaction.MsgDeleteSummaryFailed)
}
