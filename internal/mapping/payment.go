package mapping

import (
	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/downstreams/paymentsapi"
)

func PaymentToViewModel(dto *paymentsapi.PaymentDto) *entities.Payment {
	if dto == nil {
		return nil
	}
	return &entities.Payment{
		ID:                        dto.ID,
		PayeeName:                 dto.PayeeName,
		PartPostcode:              dto.PartPostcode,
		Town:                      dto.Town,
		ParliamentaryConstituency: dto.ParliamentaryConstituency,
		CountyCouncil:             dto.CountyCouncil,
		Scheme:                    dto.Scheme,
		Amount:                    dto.Amount,
		FinancialYear:             dto.FinancialYear,
		PaymentDate:               dto.PaymentDate,
		SchemeDetail:              dto.SchemeDetail,
		ActivityLevel:             dto.ActivityLevel,
	}
}

func PaymentToApiModel(payment entities.Payment) paymentsapi.PaymentDto {
	return paymentsapi.PaymentDto{
		ID:                        payment.ID,
		PayeeName:                 payment.PayeeName,
		PartPostcode:              payment.PartPostcode,
		Town:                      payment.Town,
		ParliamentaryConstituency: payment.ParliamentaryConstituency,
		CountyCouncil:             payment.CountyCouncil,
		Scheme:                    payment.Scheme,
		Amount:                    payment.Amount,
		FinancialYear:             payment.FinancialYear,
		PaymentDate:               nilIfEmpty(payment.PaymentDate),
		SchemeDetail:              payment.SchemeDetail,
		ActivityLevel:             payment.ActivityLevel,
	}
}

// PaymentsToViewModel maps the rows and keeps the paging metadata as is.
func PaymentsToViewModel(dto paymentsapi.PaymentsPageDto) entities.PaymentsPage {
	rows := make([]entities.Payment, 0, len(dto.Rows))
	for i := range dto.Rows {
		rows = append(rows, *PaymentToViewModel(&dto.Rows[i]))
	}
	return entities.PaymentsPage{
		Count:      dto.Count,
		Rows:       rows,
		Page:       dto.Page,
		TotalPages: dto.TotalPages,
	}
}

func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
