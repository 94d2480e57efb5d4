package services

import (
	"context"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

// GasStationSvcFacade defines station administration operations.
type GasStationSvcFacade interface {
	CreateStation(ctx context.Context, req dto.CreateGasStationRequest, creatorUserID string) (*domain.GasStation, error)
	GetStation(ctx context.Context, gasStationID string) (*domain.GasStation, error)
	ListStations(ctx context.Context) ([]domain.GasStation, error)
}

// TankSvcFacade defines tank registry operations.
type TankSvcFacade interface {
	CreateTank(ctx context.Context, gasStationID string, req dto.CreateTankRequest, creatorUserID string) (*domain.Tank, error)
	GetTank(ctx context.Context, tankID string) (*domain.Tank, error)
	ListTanks(ctx context.Context, gasStationID string) ([]domain.Tank, error)

	// RecomputeTankStock refreshes the cached stock from approved unloads
	// minus sales volume. Idempotent.
	RecomputeTankStock(ctx context.Context, tankID string) (int64, error)
}
