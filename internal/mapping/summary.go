package mapping

import (
	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/downstreams/paymentsapi"
)

func SummaryToViewModel(dto *paymentsapi.PaymentSummaryDto) *entities.PaymentSummary {
	if dto == nil {
		return nil
	}
	return &entities.PaymentSummary{
		ID:            dto.ID,
		FinancialYear: dto.FinancialYear,
		Scheme:        dto.Scheme,
		TotalAmount:   dto.TotalAmount,
	}
}

func SummaryToApiModel(summary entities.PaymentSummary) paymentsapi.PaymentSummaryDto {
	return paymentsapi.PaymentSummaryDto{
		ID:            summary.ID,
		FinancialYear: summary.FinancialYear,
		Scheme:        summary.Scheme,
		TotalAmount:   summary.TotalAmount,
	}
}

func SummariesToViewModel(dtos []paymentsapi.PaymentSummaryDto) []entities.PaymentSummary {
	result := make([]entities.PaymentSummary, 0, len(dtos))
	for i := range dtos {
		result = append(result, *SummaryToViewModel(&dtos[i]))
	}
	return result
}
