package interaction

import (
	"context"
	"net/url"

	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/mapping"
	"github.com/DEFRA/mpdp-admin-frontend/internal/validation"
)

const (
	MsgCreateSummaryFailed = "Failed to add payment summary. Please try again."
	MsgUpdateSummaryFailed = "Failed to update payment summary. Please try again."
	MsgDeleteSummaryFailed = "Failed to delete payment summary. Please try again."
)

func summaryFromForm(vr validation.Result) entities.PaymentSummary {
	return entities.PaymentSummary{
		FinancialYear: vr.String(validation.FieldFinancialYear),
		Scheme:        vr.String(validation.FieldScheme),
		TotalAmount:   vr.Decimal(validation.FieldTotalAmount),
	}
}

func (s *serviceInteractor) ListSummaries(ctx context.Context) []entities.PaymentSummary {
	dtos, err := s.payments.ListSummaries(ctx)
	if err != nil {
		s.loggerFor(ctx).Warn("listing payment summaries failed, showing none: %s", err.Error())
		return []entities.PaymentSummary{}
	}
	return mapping.SummariesToViewModel(dtos)
}

func (s *serviceInteractor) GetSummary(ctx context.Context, id int64) Result[entities.PaymentSummary] {
	dto, err := s.payments.GetSummary(ctx, id)
	if err != nil {
		s.loggerFor(ctx).Warn("fetching payment summary %d failed: %s", id, err.Error())
		return notFound[entities.PaymentSummary]()
	}
	summary := mapping.SummaryToViewModel(dto)
	if summary == nil {
		return notFound[entities.PaymentSummary]()
	}
	return ok(*summary)
}

func (s *serviceInteractor) CreateSummary(ctx context.Context, form url.Values) Result[entities.PaymentSummary] {
	vr := validation.SummarySchema.Validate(form)
	if !vr.Valid() {
		return invalid[entities.PaymentSummary](vr)
	}

	summary := summaryFromForm(vr)
	created, err := s.payments.CreateSummary(ctx, mapping.SummaryToApiModel(summary))
	if err != nil {
		s.loggerFor(ctx).Error("creating payment summary failed: %s", err.Error())
		return rejected[entities.PaymentSummary](MsgCreateSummaryFailed, vr.Submitted)
	}

	if view := mapping.SummaryToViewModel(created); view != nil {
		summary = *view
	}
	s.loggerFor(ctx).Info("payment summary %d created by %s", summary.ID, NewIdentityManager(ctx).Subject())
	return ok(summary)
}

func (s *serviceInteractor) UpdateSummary(ctx context.Context, id int64, form url.Values) Result[entities.PaymentSummary] {
	vr := validation.SummarySchema.Validate(form)
	if !vr.Valid() {
		return invalid[entities.PaymentSummary](vr)
	}

	summary := summaryFromForm(vr)
	updated, err := s.payments.UpdateSummary(ctx, id, mapping.SummaryToApiModel(summary))
	if err != nil {
		s.loggerFor(ctx).Error("updating payment summary %d failed: %s", id, err.Error())
		return rejected[entities.PaymentSummary](MsgUpdateSummaryFailed, vr.Submitted)
	}

	summary.ID = id
	if view := mapping.SummaryToViewModel(updated); view != nil {
		summary = *view
	}
	s.loggerFor(ctx).Info("payment summary %d updated by %s", id, NewIdentityManager(ctx).Subject())
	return ok(summary)
}

func (s *serviceInteractor) DeleteSummary(ctx context.Context, id int64) Result[int64] {
	if err := s.payments.DeleteSummary(ctx, id); err != nil {
		s.loggerFor(ctx).Error("deleting payment summary %d failed: %s", id, err.Error())
		return rejected[int64](MsgDeleteSummaryFailed, nil)
	}
	s.loggerFor(ctx).Info("payment summary %d deleted by %s", id, NewIdentityManager(ctx).Subject())
	return ok(id)
}
