package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	portsrepo "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/repositories"
	portssvc "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/services"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
	"github.com/PettaPuang/nozzle.website-sub005/internal/middleware"
)

type gasStationService struct {
	stationRepo portsrepo.GasStationRepositoryFacade
}

// NewGasStationService creates a new station administration service.
func NewGasStationService(stationRepo portsrepo.GasStationRepositoryFacade) portssvc.GasStationSvcFacade {
	return &gasStationService{stationRepo: stationRepo}
}

var _ portssvc.GasStationSvcFacade = (*gasStationService)(nil)

// CreateStation implements portssvc.GasStationSvcFacade. New stations start
// ACTIVE and join the monthly closing batch immediately.
func (s *gasStationService) CreateStation(ctx context.Context, req dto.CreateGasStationRequest, creatorUserID string) (*domain.GasStation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	station := domain.GasStation{
		GasStationID: uuid.NewString(),
		Name:         req.Name,
		Code:         req.Code,
		Address:      req.Address,
		Status:       domain.StationActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.stationRepo.SaveStation(ctx, station); err != nil {
		logger.Error("Failed to save gas station", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save gas station: %w", err)
	}

	logger.Info("Gas station created", slog.String("gas_station_id", station.GasStationID), slog.String("code", station.Code))
	return &station, nil
}

// GetStation implements portssvc.GasStationSvcFacade.
func (s *gasStationService) GetStation(ctx context.Context, gasStationID string) (*domain.GasStation, error) {
	return s.stationRepo.FindStationByID(ctx, gasStationID)
}

// ListStations implements portssvc.GasStationSvcFacade.
func (s *gasStationService) ListStations(ctx context.Context) ([]domain.GasStation, error) {
	return s.stationRepo.ListStations(ctx)
}
