package paymentsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"
	"github.com/go-http-utils/headers"

	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/downstreams"
)

const contentTypeCsv = "text/csv"

type Impl struct {
	client    aurestclientapi.Client
	streaming *http.Client
	baseUrl   string
}

func New(backendBaseUrl string, apiKey string) (PaymentsApi, error) {
	if backendBaseUrl == "" {
		return nil, errors.New("service.backend_url not configured. This service cannot function without the backend payments api")
	}

	client, err := downstreams.ClientWith(
		jsonRequestManipulator(downstreams.ApiKeyRequestManipulator(apiKey)),
		"payments-api-breaker",
	)
	if err != nil {
		return nil, err
	}

	return &Impl{
		client:    client,
		streaming: downstreams.NewStreamingClient(apiKey),
		baseUrl:   backendBaseUrl,
	}, nil
}

func jsonRequestManipulator(next aurestclientapi.RequestManipulatorCallback) aurestclientapi.RequestManipulatorCallback {
	return func(ctx context.Context, r *http.Request) {
		if r.Body != nil && r.Header.Get(headers.ContentType) == "" {
			r.Header.Set(headers.ContentType, "application/json")
		}
		r.Header.Set(headers.Accept, "application/json")
		next(ctx, r)
	}
}

func (i *Impl) url(pathFormat string, args ...interface{}) string {
	return i.baseUrl + "/" + fmt.Sprintf(pathFormat, args...)
}

// perform returns the status even when err is set, so callers can tell transport and parse failures apart.
func (i *Impl) perform(ctx context.Context, method string, requestUrl string, requestBody interface{}, responseBody interface{}) (int, error) {
	response := aurestclientapi.ParsedResponse{
		Body: responseBody,
	}
	err := i.client.Perform(ctx, method, requestUrl, requestBody, &response)
	if err != nil {
		logging.LoggerFromContext(ctx).Error("Encountered error while calling the backend with URL %s: %s", requestUrl, err.Error())
	}
	return response.Status, err
}

func readResult(status int, err error) (absent bool, result error) {
	if downstreams.IsAbsent(status) {
		return true, nil
	}
	return false, downstreams.ErrByStatus(err, status)
}

func writeResult(status int, err error, accepted ...int) error {
	for _, a := range accepted {
		if status == a {
			if err != nil {
				return fmt.Errorf("%w: unparsable response: %s", ErrBackendRejected, err.Error())
			}
			return nil
		}
	}
	if status == 0 && err != nil {
		return err
	}
	return fmt.Errorf("%w: status %d", ErrBackendRejected, status)
}

func (i *Impl) ListPayments(ctx context.Context, page int, limit int, searchString string) (*PaymentsPageDto, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if searchString != "" {
		query.Set("searchString", searchString)
	}

	var dto *PaymentsPageDto
	status, err := i.perform(ctx, http.MethodGet, i.url("admin/payments?%s", query.Encode()), nil, &dto)
	if absent, err := readResult(status, err); absent || err != nil {
		return nil, err
	}
	return dto, nil
}

func (i *Impl) GetPayment(ctx context.Context, id int64) (*PaymentDto, error) {
	var dto *PaymentDto
	status, err := i.perform(ctx, http.MethodGet, i.url("admin/payments/%d", id), nil, &dto)
	if absent, err := readResult(status, err); absent || err != nil {
		return nil, err
	}
	return dto, nil
}

func (i *Impl) CreatePayment(ctx context.Context, payment PaymentDto) (*PaymentDto, error) {
	var dto *PaymentDto
	status, err := i.perform(ctx, http.MethodPost, i.url("admin/payments"), payment, &dto)
	if err := writeResult(status, err, http.StatusOK, http.StatusCreated); err != nil {
		return nil, err
	}
	return dto, nil
}

func (i *Impl) UpdatePayment(ctx context.Context, id int64, payment PaymentDto) (*PaymentDto, error) {
	var dto *PaymentDto
	status, err := i.perform(ctx, http.MethodPut, i.url("admin/payments/%d", id), payment, &dto)
	if err := writeResult(status, err, http.StatusOK); err != nil {
		return nil, err
	}
	return dto, nil
}

func (i *Impl) DeletePayment(ctx context.Context, id int64) error {
	status, err := i.perform(ctx, http.MethodDelete, i.url("admin/payments/%d", id), nil, nil)
	return writeResult(status, err, http.StatusOK)
}

func (i *Impl) ListFinancialYears(ctx context.Context) ([]string, error) {
	var years []string
	status, err := i.perform(ctx, http.MethodGet, i.url("admin/financial-years"), nil, &years)
	if absent, err := readResult(status, err); absent || err != nil {
		return nil, err
	}
	return years, nil
}

func (i *Impl) DeletePaymentsByYear(ctx context.Context, financialYear string) (*BulkResultDto, error) {
	dto := BulkResultDto{}
	status, err := i.perform(ctx, http.MethodDelete, i.url("admin/payments/year/%s", url.PathEscape(financialYear)), nil, &dto)
	if err := writeResult(status, err, http.StatusOK); err != nil {
		return nil, err
	}
	return &dto, nil
}

func (i *Impl) DeletePaymentsByPublishedDate(ctx context.Context, publishedDate string) (*BulkResultDto, error) {
	dto := BulkResultDto{}
	status, err := i.perform(ctx, http.MethodDelete, i.url("admin/payments/published-date/%s", url.PathEscape(publishedDate)), nil, &dto)
	if err := writeResult(status, err, http.StatusOK); err != nil {
		return nil, err
	}
	return &dto, nil
}

func (i *Impl) BulkSetPublishedDate(ctx context.Context, financialYear string, publishedDate string) (*BulkResultDto, error) {
	dto := BulkResultDto{}
	body := PublishedDateDto{PublishedDate: publishedDate}
	status, err := i.perform(ctx, http.MethodPut, i.url("admin/payments/year/%s/published-date", url.PathEscape(financialYear)), body, &dto)
	if err := writeResult(status, err, http.StatusOK); err != nil {
		return nil, err
	}
	return &dto, nil
}

func (i *Impl) UploadPaymentsCsv(ctx context.Context, csv io.Reader) (*UploadResultDto, error) {
	requestUrl := i.url("admin/payments/bulk-upload")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestUrl, csv)
	if err != nil {
		return nil, err
	}
	req.Header.Set(headers.ContentType, contentTypeCsv)

	resp, err := i.streaming.Do(req)
	if err != nil {
		logging.LoggerFromContext(ctx).Error("Encountered error while calling the backend with URL %s: %s", requestUrl, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", ErrBackendRejected, resp.StatusCode)
	}

	dto := UploadResultDto{}
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: unparsable response: %s", ErrBackendRejected, err.Error())
	}
	return &dto, nil
}

func (i *Impl) ListSummaries(ctx context.Context) ([]PaymentSummaryDto, error) {
	var summaries []PaymentSummaryDto
	status, err := i.perform(ctx, http.MethodGet, i.url("admin/summary"), nil, &summaries)
	if absent, err := readResult(status, err); absent || err != nil {
		return nil, err
	}
	return summaries, nil
}

func (i *Impl) GetSummary(ctx context.Context, id int64) (*PaymentSummaryDto, error) {
	var dto *PaymentSummaryDto
	status, err := i.perform(ctx, http.MethodGet, i.url("admin/summary/%d", id), nil, &dto)
	if absent, err := readResult(status, err); absent || err != nil {
		return nil, err
	}
	return dto, nil
}

func (i *Impl) CreateSummary(ctx context.Context, summary PaymentSummaryDto) (*PaymentSummaryDto, error) {
	var dto *PaymentSummaryDto
	status, err := i.perform(ctx, http.MethodPost, i.url("admin/summary"), summary, &dto)
	if err := writeResult(status, err, http.StatusOK, http.StatusCreated); err != nil {
		return nil, err
	}
	return dto, nil
}

func (i *Impl) UpdateSummary(ctx context.Context, id int64, summary PaymentSummaryDto) (*PaymentSummaryDto, error) {
	var dto *PaymentSummaryDto
	status, err := i.perform(ctx, http.MethodPut, i.url("admin/summary/%d", id), summary, &dto)
	if err := writeResult(status, err, http.StatusOK); err != nil {
		return nil, err
	}
	return dto, nil
}

func (i *Impl) DeleteSummary(ctx context.Context, id int64) error {
	status, err := i.perform(ctx, http.MethodDelete, i.url("admin/summary/%d", id), nil, nil)
	return writeResult(status, err, http.StatusOK, http.StatusNoContent)
}
