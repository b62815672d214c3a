package interaction

import (
	"context"
	"io"
	"sync"

	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/downstreams/paymentsapi"
)

var _ paymentsapi.PaymentsApi = &PaymentsApiMock{}

// PaymentsApiMock answers with whatever its Func fields return and counts the calls.
// A nil Func field answers with zero values.
type PaymentsApiMock struct {
	ListPaymentsFunc                  func(ctx context.Context, page int, limit int, searchString string) (*paymentsapi.PaymentsPageDto, error)
	GetPaymentFunc                    func(ctx context.Context, id int64) (*paymentsapi.PaymentDto, error)
	CreatePaymentFunc                 func(ctx context.Context, payment paymentsapi.PaymentDto) (*paymentsapi.PaymentDto, error)
	UpdatePaymentFunc                 func(ctx context.Context, id int64, payment paymentsapi.PaymentDto) (*paymentsapi.PaymentDto, error)
	DeletePaymentFunc                 func(ctx context.Context, id int64) error
	ListFinancialYearsFunc            func(ctx context.Context) ([]string, error)
	DeletePaymentsByYearFunc          func(ctx context.Context, financialYear string) (*paymentsapi.BulkResultDto, error)
	DeletePaymentsByPublishedDateFunc func(ctx context.Context, publishedDate string) (*paymentsapi.BulkResultDto, error)
	BulkSetPublishedDateFunc          func(ctx context.Context, financialYear string, publishedDate string) (*paymentsapi.BulkResultDto, error)
	UploadPaymentsCsvFunc             func(ctx context.Context, csv io.Reader) (*paymentsapi.UploadResultDto, error)
	ListSummariesFunc                 func(ctx context.Context) ([]paymentsapi.PaymentSummaryDto, error)
	GetSummaryFunc                    func(ctx context.Context, id int64) (*paymentsapi.PaymentSummaryDto, error)
	CreateSummaryFunc                 func(ctx context.Context, summary paymentsapi.PaymentSummaryDto) (*paymentsapi.PaymentSummaryDto, error)
	UpdateSummaryFunc                 func(ctx context.Context, id int64, summary paymentsapi.PaymentSummaryDto) (*paymentsapi.PaymentSummaryDto, error)
	DeleteSummaryFunc                 func(ctx context.Context, id int64) error

	mu    sync.Mutex
	calls map[string]int
}

func (m *PaymentsApiMock) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[name]++
}

func (m *PaymentsApiMock) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *PaymentsApiMock) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, c := range m.calls {
		total += c
	}
	return total
}

func (m *PaymentsApiMock) ListPayments(ctx context.Context, page int, limit int, searchString string) (*paymentsapi.PaymentsPageDto, error) {
	m.record("ListPayments")
	if m.ListPaymentsFunc == nil {
		return nil, nil
	}
	return m.ListPaymentsFunc(ctx, page, limit, searchString)
}

func (m *PaymentsApiMock) GetPayment(ctx context.Context, id int64) (*paymentsapi.PaymentDto, error) {
	m.record("GetPayment")
	if m.GetPaymentFunc == nil {
		return nil, nil
	}
	return m.GetPaymentFunc(ctx, id)
}

func (m *PaymentsApiMock) CreatePayment(ctx context.Context, payment paymentsapi.PaymentDto) (*paymentsapi.PaymentDto, error) {
	m.record("CreatePayment")
	if m.CreatePaymentFunc == nil {
		return nil, nil
	}
	return m.CreatePaymentFunc(ctx, payment)
}

func (m *PaymentsApiMock) UpdatePayment(ctx context.Context, id int64, payment paymentsapi.PaymentDto) (*paymentsapi.PaymentDto, error) {
	m.record("UpdatePayment")
	if m.UpdatePaymentFunc == nil {
		return nil, nil
	}
	return m.UpdatePaymentFunc(ctx, id, payment)
}

func (m *PaymentsApiMock) DeletePayment(ctx context.Context, id int64) error {
	m.record("DeletePayment")
	if m.DeletePaymentFunc == nil {
		return nil
	}
	return m.DeletePaymentFunc(ctx, id)
}

func (m *PaymentsApiMock) ListFinancialYears(ctx context.Context) ([]string, error) {
	m.record("ListFinancialYears")
	if m.ListFinancialYearsFunc == nil {
		return nil, nil
	}
	return m.ListFinancialYearsFunc(ctx)
}

func (m *PaymentsApiMock) DeletePaymentsByYear(ctx context.Context, financialYear string) (*paymentsapi.BulkResultDto, error) {
	m.record("DeletePaymentsByYear")
	if m.DeletePaymentsByYearFunc == nil {
		return nil, nil
	}
	return m.DeletePaymentsByYearFunc(ctx, financialYear)
}

func (m *PaymentsApiMock) DeletePaymentsByPublishedDate(ctx context.Context, publishedDate string) (*paymentsapi.BulkResultDto, error) {
	m.record("DeletePaymentsByPublishedDate")
	if m.DeletePaymentsByPublishedDateFunc == nil {
		return nil, nil
	}
	return m.DeletePaymentsByPublishedDateFunc(ctx, publishedDate)
}

func (m *PaymentsApiMock) BulkSetPublishedDate(ctx context.Context, financialYear string, publishedDate string) (*paymentsapi.BulkResultDto, error) {
	m.record("BulkSetPublishedDate")
	if m.BulkSetPublishedDateFunc == nil {
		return nil, nil
	}
	return m.BulkSetPublishedDateFunc(ctx, financialYear, publishedDate)
}

func (m *PaymentsApiMock) UploadPaymentsCsv(ctx context.Context, csv io.Reader) (*paymentsapi.UploadResultDto, error) {
	m.record("UploadPaymentsCsv")
	if m.UploadPaymentsCsvFunc == nil {
		return nil, nil
	}
	return m.UploadPaymentsCsvFunc(ctx, csv)
}

func (m *PaymentsApiMock) ListSummaries(ctx context.Context) ([]paymentsapi.PaymentSummaryDto, error) {
	m.record("ListSummaries")
	if m.ListSummariesFunc == nil {
		return nil, nil
	}
	return m.ListSummariesFunc(ctx)
}

func (m *PaymentsApiMock) GetSummary(ctx context.Context, id int64) (*paymentsapi.PaymentSummaryDto, error) {
	m.record("GetSummary")
	if m.GetSummaryFunc == nil {
		return nil, nil
	}
	return m.GetSummaryFunc(ctx, id)
}

func (m *PaymentsApiMock) CreateSummary(ctx context.Context, summary paymentsapi.PaymentSummaryDto) (*paymentsapi.PaymentSummaryDto, error) {
	m.record("CreateSummary")
	if m.CreateSummaryFunc == nil {
		return nil, nil
	}
	return m.CreateSummaryFunc(ctx, summary)
}

func (m *PaymentsApiMock) UpdateSummary(ctx context.Context, id int64, summary paymentsapi.PaymentSummaryDto) (*paymentsapi.PaymentSummaryDto, error) {
	m.record("UpdateSummary")
	if m.UpdateSummaryFunc == nil {
		return nil, nil
	}
	return m.UpdateSummaryFunc(ctx, id, summary)
}

func (m *PaymentsApiMock) DeleteSummary(ctx context.Context, id int64) error {
	m.record("DeleteSummary")
	if m.DeleteSummaryFunc == nil {
		return nil
	}
	return m.DeleteSummaryFunc(ctx, id)
}
