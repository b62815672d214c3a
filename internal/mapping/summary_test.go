package mapping

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/downstreams/paymentsapi"
)

func TestSummaryMapping(t *testing.T) {
	require.Nil(t, SummaryToViewModel(nil))

	dto := paymentsapi.PaymentSummaryDto{
		ID:            4,
		FinancialYear: "23/24",
		Scheme:        "SFI",
		TotalAmount:   decimal.RequireFromString("123456.78"),
	}
	view := SummaryToViewModel(&dto)
	require.Equal(t, &entities.PaymentSummary{
		ID:            4,
		FinancialYear: "23/24",
		Scheme:        "SFI",
		TotalAmount:   decimal.RequireFromString("123456.78"),
	}, view)

	require.Equal(t, dto, SummaryToApiModel(*view))
}

func TestSummariesToViewModel(t *testing.T) {
	actual := SummariesToViewModel([]paymentsapi.PaymentSummaryDto{
		{ID: 1, Scheme: "SFI"},
		{ID: 2, Scheme: "CS"},
	})
	require.Len(t, actual, 2)
	require.Equal(t, "CS", actual[1].Scheme)

	require.Equal(t, []entities.PaymentSummary{}, SummariesToViewModel(nil))
}

func TestBulkResultMapping(t *testing.T) {
	require.Equal(t, entities.BulkResult{}, BulkResultToViewModel(nil))
	require.Equal(t, entities.BulkResult{PaymentCount: 4, Deleted: 4},
		BulkResultToViewModel(&paymentsapi.BulkResultDto{PaymentCount: 4, Deleted: 4}))

	require.Equal(t, entities.UploadResult{}, UploadResultToViewModel(nil))
	require.Equal(t, entities.UploadResult{Imported: 12}, UploadResultToViewModel(&paymentsapi.UploadResultDto{Imported: 12}))
}
