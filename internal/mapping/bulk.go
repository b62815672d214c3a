package mapping

import (
	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/repository/downstreams/paymentsapi"
)

// BulkResultToViewModel maps the counts. A missing answer counts as nothing done.
func BulkResultToViewModel(dto *paymentsapi.BulkResultDto) entities.BulkResult {
	if dto == nil {
		return entities.BulkResult{}
	}
	return entities.BulkResult{
		PaymentCount: dto.PaymentCount,
		Deleted:      dto.Deleted,
		Updated:      dto.Updated,
	}
}

func UploadResultToViewModel(dto *paymentsapi.UploadResultDto) entities.UploadResult {
	if dto == nil {
		return entities.UploadResult{}
	}
	return entities.UploadResult{
		Imported: dto.Imported,
	}
}
