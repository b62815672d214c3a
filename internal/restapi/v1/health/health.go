package v1health

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/DEFRA/mpdp-admin-frontend/internal/logging"
	"github.com/DEFRA/mpdp-admin-frontend/internal/restapi/common"
)

type HealthResultDto struct {
	Message string `json:"message"`
}

func Create(server chi.Router) {
	server.Get("/health", common.CreateHandler(healthEndpoint, common.NoRequest, common.JSONResponse[HealthResultDto]))
}

func healthEndpoint(_ context.Context, _ *struct{}, _ logging.Logger) (*HealthResultDto, error) {
	return &HealthResultDto{Message: "success"}, nil
}
