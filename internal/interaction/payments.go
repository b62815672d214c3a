package interaction

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/mapping"
	"github.com/DEFRA/mpdp-admin-frontend/internal/validation"
)

const (
	MsgCreatePaymentFailed = "Failed to add payment. Please try again."
	MsgUpdatePaymentFailed = "Failed to update payment. Please try again."
	MsgDeletePaymentFailed = "Failed to delete payment. Please try again."
	MsgDeleteByYearFailed  = "Failed to delete payments. Please try again."
	MsgDeleteByDateFailed  = "Failed to delete payments. Please try again."
	MsgBulkSetFailed       = "Failed to update published date. Please try again."
	MsgUploadFailed        = "Failed to upload CSV. Please check the file and try again."
	MsgSelectCsvFile       = "Please select a CSV file to upload"
	MsgEnterValidDate      = "Please enter a valid date"

	FieldFile = "file"
)

func (s *serviceInteractor) ListPayments(ctx context.Context, page int, searchString string) entities.PaymentsPage {
	if page < 1 {
		page = 1
	}
	dto, err := s.payments.ListPayments(ctx, page, entities.PageSize, strings.TrimSpace(searchString))
	if err != nil {
		s.loggerFor(ctx).Warn("listing payments failed, showing an empty list: %s", err.Error())
		return entities.EmptyPaymentsPage()
	}
	if dto == nil {
		return entities.EmptyPaymentsPage()
	}
	return mapping.PaymentsToViewModel(*dto)
}

func (s *serviceInteractor) GetPayment(ctx context.Context, id int64) Result[entities.Payment] {
	dto, err := s.payments.GetPayment(ctx, id)
	if err != nil {
		s.loggerFor(ctx).Warn("fetching payment %d failed: %s", id, err.Error())
		return notFound[entities.Payment]()
	}
	payment := mapping.PaymentToViewModel(dto)
	if payment == nil {
		return notFound[entities.Payment]()
	}
	return ok(*payment)
}

func paymentFromForm(vr validation.Result) entities.Payment {
	return entities.Payment{
		PayeeName:                 vr.String(validation.FieldPayeeName),
		PartPostcode:              vr.String(validation.FieldPartPostcode),
		Town:                      vr.String(validation.FieldTown),
		ParliamentaryConstituency: vr.String(validation.FieldParliamentaryConstituency),
		CountyCouncil:             vr.String(validation.FieldCountyCouncil),
		Scheme:                    vr.String(validation.FieldScheme),
		Amount:                    vr.Decimal(validation.FieldAmount),
		FinancialYear:             vr.String(validation.FieldFinancialYear),
		PaymentDate: mapping.CombineDate(
			vr.Int(validation.FieldPaymentDateDay),
			vr.Int(validation.FieldPaymentDateMonth),
			vr.Int(validation.FieldPaymentDateYear),
		),
		SchemeDetail:  vr.String(validation.FieldSchemeDetail),
		ActivityLevel: vr.String(validation.FieldActivityLevel),
	}
}

func (s *serviceInteractor) CreatePayment(ctx context.Context, form url.Values) Result[entities.Payment] {
	vr := validation.PaymentSchema.Validate(form)
	if !vr.Valid() {
		return invalid[entities.Payment](vr)
	}

	payment := paymentFromForm(vr)
	created, err := s.payments.CreatePayment(ctx, mapping.PaymentToApiModel(payment))
	if err != nil {
		s.loggerFor(ctx).Error("creating payment failed: %s", err.Error())
		return rejected[entities.Payment](MsgCreatePaymentFailed, vr.Submitted)
	}

	if view := mapping.PaymentToViewModel(created); view != nil {
		payment = *view
	}
	s.loggerFor(ctx).Info("payment %d created by %s", payment.ID, NewIdentityManager(ctx).Subject())
	return ok(payment)
}

func (s *serviceInteractor) UpdatePayment(ctx context.Context, id int64, form url.Values) Result[entities.Payment] {
	vr := validation.PaymentSchema.Validate(form)
	if !vr.Valid() {
		return invalid[entities.Payment](vr)
	}

	payment := paymentFromForm(vr)
	updated, err := s.payments.UpdatePayment(ctx, id, mapping.PaymentToApiModel(payment))
	if err != nil {
		s.loggerFor(ctx).Error("updating payment %d failed: %s", id, err.Error())
		return rejected[entities.Payment](MsgUpdatePaymentFailed, vr.Submitted)
	}

	payment.ID = id
	if view := mapping.PaymentToViewModel(updated); view != nil {
		payment = *view
	}
	s.loggerFor(ctx).Info("payment %d updated by %s", id, NewIdentityManager(ctx).Subject())
	return ok(payment)
}

func (s *serviceInteractor) DeletePayment(ctx context.Context, id int64) Result[int64] {
	if err := s.payments.DeletePayment(ctx, id); err != nil {
		s.loggerFor(ctx).Error("deleting payment %d failed: %s", id, err.Error())
		return rejected[int64](MsgDeletePaymentFailed, nil)
	}
	s.loggerFor(ctx).Info("payment %d deleted by %s", id, NewIdentityManager(ctx).Subject())
	return ok(id)
}

func (s *serviceInteractor) ListFinancialYears(ctx context.Context) []string {
	years, err := s.payments.ListFinancialYears(ctx)
	if err != nil {
		s.loggerFor(ctx).Warn("listing financial years failed, showing none: %s", err.Error())
		return []string{}
	}
	if years == nil {
		return []string{}
	}
	return years
}

func (s *serviceInteractor) DeleteByYear(ctx context.Context, form url.Values) Result[entities.BulkResult] {
	vr := validation.DeleteByYearSchema.Validate(form)
	if !vr.Valid() {
		return invalid[entities.BulkResult](vr)
	}

	financialYear := vr.String(validation.FieldFinancialYear)
	dto, err := s.payments.DeletePaymentsByYear(ctx, financialYear)
	if err != nil {
		s.loggerFor(ctx).Error("deleting payments for year %s failed: %s", financialYear, err.Error())
		return rejected[entities.BulkResult](MsgDeleteByYearFailed, vr.Submitted)
	}

	result := mapping.BulkResultToViewModel(dto)
	result.FinancialYear = financialYear
	s.loggerFor(ctx).Info("%d payments for year %s deleted by %s", result.Deleted, financialYear, NewIdentityManager(ctx).Subject())
	return ok(result)
}

func (s *serviceInteractor) DeleteByPublishedDate(ctx context.Context, form url.Values) Result[entities.BulkResult] {
	vr := validation.DeleteByPublishedDateSchema.Validate(form)
	if !vr.Valid() {
		return invalid[entities.BulkResult](vr)
	}

	publishedDate := mapping.CombineDate(
		vr.Int(validation.FieldPublishedDateDay),
		vr.Int(validation.FieldPublishedDateMonth),
		vr.Int(validation.FieldPublishedDateYear),
	)
	if publishedDate == nil {
		return invalidField[entities.BulkResult](validation.FieldPublishedDateDay, MsgEnterValidDate, vr.Submitted)
	}

	dto, err := s.payments.DeletePaymentsByPublishedDate(ctx, *publishedDate)
	if err != nil {
		s.loggerFor(ctx).Error("deleting payments published on %s failed: %s", *publishedDate, err.Error())
		return rejected[entities.BulkResult](MsgDeleteByDateFailed, vr.Submitted)
	}

	result := mapping.BulkResultToViewModel(dto)
	result.PublishedDate = *publishedDate
	s.loggerFor(ctx).Info("%d payments published on %s deleted by %s", result.Deleted, *publishedDate, NewIdentityManager(ctx).Subject())
	return ok(result)
}

func (s *serviceInteractor) BulkSetPublishedDate(ctx context.Context, form url.Values) Result[entities.BulkResult] {
	vr := validation.BulkSetPublishedDateSchema.Validate(form)
	if !vr.Valid() {
		return invalid[entities.BulkResult](vr)
	}

	financialYear := vr.String(validation.FieldFinancialYear)
	publishedDate := mapping.CombineDate(
		vr.Int(validation.FieldPublishedDateDay),
		vr.Int(validation.FieldPublishedDateMonth),
		vr.Int(validation.FieldPublishedDateYear),
	)
	if publishedDate == nil {
		return invalidField[entities.BulkResult](validation.FieldPublishedDateDay, MsgEnterValidDate, vr.Submitted)
	}

	dto, err := s.payments.BulkSetPublishedDate(ctx, financialYear, *publishedDate)
	if err != nil {
		s.loggerFor(ctx).Error("setting published date %s for year %s failed: %s", *publishedDate, financialYear, err.Error())
		return rejected[entities.BulkResult](MsgBulkSetFailed, vr.Submitted)
	}

	result := mapping.BulkResultToViewModel(dto)
	result.FinancialYear = financialYear
	result.PublishedDate = *publishedDate
	s.loggerFor(ctx).Info("published date of %d payments for year %s set to %s by %s", result.Updated, financialYear, *publishedDate, NewIdentityManager(ctx).Subject())
	return ok(result)
}

func (s *serviceInteractor) BulkUpload(ctx context.Context, csv io.Reader) Result[entities.UploadResult] {
	if csv == nil {
		return invalidField[entities.UploadResult](FieldFile, MsgSelectCsvFile, nil)
	}

	dto, err := s.payments.UploadPaymentsCsv(ctx, csv)
	if err != nil {
		s.loggerFor(ctx).Error("csv upload failed: %s", err.Error())
		return rejected[entities.UploadResult](MsgUploadFailed, nil)
	}

	result := mapping.UploadResultToViewModel(dto)
	s.loggerFor(ctx).Info("%d payments imported from csv by %s", result.Imported, NewIdentityManager(ctx).Subject())
	return ok(result)
}
