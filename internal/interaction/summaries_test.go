package interaction

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/downstreams/paymentsapi"
)

func summaryForm() url.Values {
	return url.Values{
		"financialYear": {"23/24"},
		"scheme":        {"SFI"},
		"totalAmount":   {"1234567.89"},
	}
}

func TestListSummaries(t *testing.T) {
	tests := []struct {
		name     string
		dtos     []paymentsapi.PaymentSummaryDto
		err      error
		expected int
	}{
		{name: "summaries", dtos: []paymentsapi.PaymentSummaryDto{{ID: 1}, {ID: 2}}, expected: 2},
		{name: "no answer", expected: 0},
		{name: "backend error", err: errors.New("down"), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &PaymentsApiMock{
				ListSummariesFunc: func(ctx context.Context) ([]paymentsapi.PaymentSummaryDto, error) {
					return tt.dtos, tt.err
				},
			}
			i := newTestInteractor(t, api)

			summaries := i.ListSummaries(context.Background())
			require.NotNil(t, summaries)
			require.Len(t, summaries, tt.expected)
		})
	}
}

func TestGetSummary(t *testing.T) {
	api := &PaymentsApiMock{
		GetSummaryFunc: func(ctx context.Context, id int64) (*paymentsapi.PaymentSummaryDto, error) {
			if id == 3 {
				return &paymentsapi.PaymentSummaryDto{ID: 3, Scheme: "SFI"}, nil
			}
			return nil, nil
		},
	}
	i := newTestInteractor(t, api)

	result := i.GetSummary(context.Background(), 3)
	require.True(t, result.OK)
	require.Equal(t, "SFI", result.Value.Scheme)

	result = i.GetSummary(context.Background(), 4)
	require.False(t, result.OK)
	require.Equal(t, KindNotFound, result.Kind)
}

func TestCreateSummary(t *testing.T) {
	var sent paymentsapi.PaymentSummaryDto
	api := &PaymentsApiMock{
		CreateSummaryFunc: func(ctx context.Context, summary paymentsapi.PaymentSummaryDto) (*paymentsapi.PaymentSummaryDto, error) {
			sent = summary
			summary.ID = 8
			return &summary, nil
		},
	}
	i := newTestInteractor(t, api)

	result := i.CreateSummary(context.Background(), summaryForm())
	require.True(t, result.OK)
	require.Equal(t, int64(8), result.Value.ID)
	require.Equal(t, "23/24", sent.FinancialYear)
	require.Equal(t, "SFI", sent.Scheme)
	require.True(t, decimal.RequireFromString("1234567.89").Equal(sent.TotalAmount))
}

func TestCreateSummaryInvalidMakesNoBackendCall(t *testing.T) {
	api := &PaymentsApiMock{}
	i := newTestInteractor(t, api)

	form := summaryForm()
	form.Del("scheme")
	result := i.CreateSummary(context.Background(), form)
	require.Equal(t, KindValidation, result.Kind)
	require.Equal(t, map[string]string{"scheme": `"scheme" is required`}, result.ErrorMap())
	require.Equal(t, 0, api.TotalCalls())
}

func TestUpdateSummary(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedOK   bool
		expectedKind Kind
	}{
		{name: "accepted", expectedOK: true},
		{name: "rejected", err: errBackendDown, expectedKind: KindBackendRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &PaymentsApiMock{
				UpdateSummaryFunc: func(ctx context.Context, id int64, summary paymentsapi.PaymentSummaryDto) (*paymentsapi.PaymentSummaryDto, error) {
					return nil, tt.err
				},
			}
			i := newTestInteractor(t, api)

			result := i.UpdateSummary(context.Background(), 6, summaryForm())
			require.Equal(t, tt.expectedOK, result.OK)
			require.Equal(t, tt.expectedKind, result.Kind)
			if tt.expectedOK {
				require.Equal(t, int64(6), result.Value.ID)
				require.Equal(t, "SFI", result.Value.Scheme)
			} else {
				require.Equal(t, MsgUpdateSummaryFailed, result.Detail)
				require.Equal(t, "SFI", result.Submitted["scheme"])
			}
			require.Equal(t, 1, api.Calls("UpdateSummary"))
		})
	}
}

func TestDeleteSummary(t *testing.T) {
	api := &PaymentsApiMock{
		DeleteSummaryFunc: func(ctx context.Context, id int64) error {
			return errBackendDown
		},
	}
	i := newTestInteractor(t, api)

	result := i.DeleteSummary(context.Background(), 1)
	require.Equal(t, KindBackendRejected, result.Kind)
	require.Equal(t, MsgDeleteSummaryFailed, result.Detail)

	api.DeleteSummaryFunc = nil
	result = i.DeleteSummary(context.Background(), 1)
	require.True(t, result.OK)
	require.Equal(t, []entities.PaymentSummary{}, i.ListSummaries(context.Background()))
}
