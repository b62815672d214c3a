package interaction

import (
	"context"
	"errors"
	"io"
	"net/url"

	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/downstreams/paymentsapi"
)

var _ Interactor = (*serviceInteractor)(nil)

// Interactor orchestrates every admin operation: validate, map, make exactly one backend call, map back.
//
// Reads never fail, they degrade to empty results. Writes report failures through Result.
type Interactor interface {
	ListPayments(ctx context.Context, page int, searchString string) entities.PaymentsPage
	GetPayment(ctx context.Context, id int64) Result[entities.Payment]
	CreatePayment(ctx context.Context, form url.Values) Result[entities.Payment]
	UpdatePayment(ctx context.Context, id int64, form url.Values) Result[entities.Payment]
	DeletePayment(ctx context.Context, id int64) Result[int64]

	ListFinancialYears(ctx context.Context) []string
	DeleteByYear(ctx context.Context, form url.Values) Result[entities.BulkResult]
	DeleteByPublishedDate(ctx context.Context, form url.Values) Result[entities.BulkResult]
	BulkSetPublishedDate(ctx context.Context, form url.Values) Result[entities.BulkResult]
	// BulkUpload streams csv to the backend. A nil reader means no file was chosen.
	BulkUpload(ctx context.Context, csv io.Reader) Result[entities.UploadResult]

	ListSummaries(ctx context.Context) []entities.PaymentSummary
	GetSummary(ctx context.Context, id int64) Result[entities.PaymentSummary]
	CreateSummary(ctx context.Context, form url.Values) Result[entities.PaymentSummary]
	UpdateSummary(ctx context.Context, id int64, form url.Values) Result[entities.PaymentSummary]
	DeleteSummary(ctx context.Context, id int64) Result[int64]
}

type serviceInteractor struct {
	logger   logging.Logger
	payments paymentsapi.PaymentsApi
}

func NewServiceInteractor(payments paymentsapi.PaymentsApi, logger logging.Logger) (Interactor, error) {
	if payments == nil {
		return nil, errors.New("no payments api client provided")
	}

	if logger == nil {
		logger = logging.NoCtx()
	}

	return &serviceInteractor{
		logger:   logger,
		payments: payments,
	}, nil
}

// loggerFor prefers the request scoped logger, so log lines carry the request id.
func (s *serviceInteractor) loggerFor(ctx context.Context) logging.Logger {
	if ctx != nil {
		if l := logging.LoggerFromContext(ctx); l != logging.NoCtx() {
			return l
		}
	}
	return s.logger
}
