package paymentsapi

import (
	"context"
	"errors"
	"io"
)

var ErrBackendRejected = errors.New("backend rejected the operation")

// PaymentsApi is the backend payments api as seen by this application.
//
// Reads return nil and no error when the backend has no answer (404, 204 or an empty body).
// Writes return ErrBackendRejected (possibly wrapped) when the backend answers with an unexpected status.
type PaymentsApi interface {
	ListPayments(ctx context.Context, page int, limit int, searchString string) (*PaymentsPageDto, error)
	GetPayment(ctx context.Context, id int64) (*PaymentDto, error)
	CreatePayment(ctx context.Context, payment PaymentDto) (*PaymentDto, error)
	UpdatePayment(ctx context.Context, id int64, payment PaymentDto) (*PaymentDto, error)
	DeletePayment(ctx context.Context, id int64) error

	ListFinancialYears(ctx context.Context) ([]string, error)
	DeletePaymentsByYear(ctx context.Context, financialYear string) (*BulkResultDto, error)
	DeletePaymentsByPublishedDate(ctx context.Context, publishedDate string) (*BulkResultDto, error)
	BulkSetPublishedDate(ctx context.Context, financialYear string, publishedDate string) (*BulkResultDto, error)

	// UploadPaymentsCsv streams csv to the backend unchanged.
	UploadPaymentsCsv(ctx context.Context, csv io.Reader) (*UploadResultDto, error)

	ListSummaries(ctx context.Context) ([]PaymentSummaryDto, error)
	GetSummary(ctx context.Context, id int64) (*PaymentSummaryDto, error)
	CreateSummary(ctx context.Context, summary PaymentSummaryDto) (*PaymentSummaryDto, error)
	UpdateSummary(ctx context.Context, id int64, summary PaymentSummaryDto) (*PaymentSummaryDto, error)
	DeleteSummary(ctx context.Context, id int64) error
}
