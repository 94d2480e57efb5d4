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

type tankService struct {
	tankRepo    portsrepo.TankRepositoryFacade
	stationRepo portsrepo.GasStationRepositoryFacade
}

// NewTankService creates a new tank registry service.
func NewTankService(tankRepo portsrepo.TankRepositoryFacade, stationRepo portsrepo.GasStationRepositoryFacade) portssvc.TankSvcFacade {
	return &tankService{tankRepo: tankRepo, stationRepo: stationRepo}
}

var _ portssvc.TankSvcFacade = (*tankService)(nil)

// CreateTank implements portssvc.TankSvcFacade.
func (s *tankService) CreateTank(ctx context.Context, gasStationID string, req dto.CreateTankRequest, creatorUserID string) (*domain.Tank, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.stationRepo.FindStationByID(ctx, gasStationID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tank := domain.Tank{
		TankID:       uuid.NewString(),
		GasStationID: gasStationID,
		ProductID:    req.ProductID,
		Name:         req.Name,
		Capacity:     req.Capacity,
		CurrentStock: 0,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.tankRepo.SaveTank(ctx, tank); err != nil {
		logger.Error("Failed to save tank", slog.String("error", err.Error()), slog.String("gas_station_id", gasStationID))
		return nil, fmt.Errorf("failed to save tank: %w", err)
	}

	logger.Info("Tank created", slog.String("tank_id", tank.TankID), slog.String("product_id", tank.ProductID))
	return &tank, nil
}

// GetTank implements portssvc.TankSvcFacade.
func (s *tankService) GetTank(ctx context.Context, tankID string) (*domain.Tank, error) {
	return s.tankRepo.FindTankByID(ctx, tankID)
}

// ListTanks implements portssvc.TankSvcFacade.
func (s *tankService) ListTanks(ctx context.Context, gasStationID string) ([]domain.Tank, error) {
	return s.tankRepo.ListTanksByStation(ctx, gasStationID)
}

// RecomputeTankStock implements portssvc.TankSvcFacade.
func (s *tankService) RecomputeTankStock(ctx context.Context, tankID string) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	stock, err := s.tankRepo.RecomputeTankStock(ctx, tankID)
	if err != nil {
		logger.Error("Failed to recompute tank stock", slog.String("error", err.Error()), slog.String("tank_id", tankID))
		return 0, fmt.Errorf("failed to recompute tank stock: %w", err)
	}

	logger.Info("Tank stock recomputed", slog.String("tank_id", tankID), slog.Int64("stock", stock))
	return stock, nil
}
