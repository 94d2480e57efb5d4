package repositories

import (
	"context"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
)

// TankReader defines read operations for tanks.
type TankReader interface {
	// FindTankByID retrieves a specific tank.
	FindTankByID(ctx context.Context, tankID string) (*domain.Tank, error)

	// ListTanksByStation retrieves all tanks of a station.
	ListTanksByStation(ctx context.Context, gasStationID string) ([]domain.Tank, error)
}

// TankWriter defines write operations for tanks.
type TankWriter interface {
	// SaveTank inserts a new tank.
	SaveTank(ctx context.Context, tank domain.Tank) error

	// RecomputeTankStock recalculates the cached stock from approved unloads
	// minus sales volume, clamped to [0, capacity], and returns the new
	// value. Idempotent.
	RecomputeTankStock(ctx context.Context, tankID string) (int64, error)
}

// TankRepositoryFacade combines all tank repository interfaces.
type TankRepositoryFacade interface {
	TankReader
	TankWriter
}
