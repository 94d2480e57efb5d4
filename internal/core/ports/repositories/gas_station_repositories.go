package repositories

import (
	"context"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
)

// GasStationReader defines read operations for stations.
type GasStationReader interface {
	// FindStationByID retrieves a specific station.
	FindStationByID(ctx context.Context, gasStationID string) (*domain.GasStation, error)

	// ListStations retrieves all stations.
	ListStations(ctx context.Context) ([]domain.GasStation, error)

	// ListActiveStations retrieves stations with ACTIVE status. Batch
	// closing iterates this list.
	ListActiveStations(ctx context.Context) ([]domain.GasStation, error)
}

// GasStationWriter defines write operations for stations.
type GasStationWriter interface {
	// SaveStation inserts a new station.
	SaveStation(ctx context.Context, station domain.GasStation) error
}

// GasStationRepositoryFacade combines all station repository interfaces.
type GasStationRepositoryFacade interface {
	GasStationReader
	GasStationWriter
}
