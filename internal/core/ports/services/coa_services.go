package services

import (
	"context"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

// COASvcFacade defines the chart-of-accounts registry operations.
type COASvcFacade interface {
	CreateCOA(ctx context.Context, gasStationID string, req dto.CreateCOARequest, creatorUserID string) (*domain.COA, error)
	GetCOA(ctx context.Context, gasStationID, coaID string) (*domain.COA, int64, error)
	ListCOAs(ctx context.Context, gasStationID string, includeInactive bool) ([]domain.COA, error)
	UpdateCOA(ctx context.Context, gasStationID, coaID string, req dto.UpdateCOARequest, userID string) (*domain.COA, error)

	// GetCOABalance returns the derived balance, counting only entries of
	// APPROVED transactions.
	GetCOABalance(ctx context.Context, coaID string) (int64, error)

	// EnsureRetainedEarnings returns the station's retained-earnings EQUITY
	// COA, creating it when absent.
	EnsureRetainedEarnings(ctx context.Context, gasStationID string) (*domain.COA, error)
}
