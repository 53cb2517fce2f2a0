package contracts

import (
	"context"
	"medicore-admin-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	Overview(ctx context.Context) (*responses.Dashboard, error)
}
