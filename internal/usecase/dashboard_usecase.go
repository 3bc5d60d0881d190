package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
)

// DashboardUsecase computes the dashboard figures.
type DashboardUsecase interface {
	Summary(ctx context.Context, tokens service.TokenStore) (*entity.DashboardSummary, error)
}
