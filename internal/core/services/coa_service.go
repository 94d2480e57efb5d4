package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PettaPuang/nozzle.website-sub005/internal/apperrors"
	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	portsrepo "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/repositories"
	portssvc "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/services"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
	"github.com/PettaPuang/nozzle.website-sub005/internal/middleware"
)

// coaService is the chart-of-accounts registry. Balances are always derived
// from journal entries of approved transactions; nothing here mutates a
// stored balance.
type coaService struct {
	coaRepo              portsrepo.COARepositoryFacade
	retainedEarningsName string
}

// NewCOAService creates a new COA registry service. retainedEarningsName is
// the account name used for the per-station retained-earnings equity COA.
func NewCOAService(coaRepo portsrepo.COARepositoryFacade, retainedEarningsName string) portssvc.COASvcFacade {
	if retainedEarningsName == "" {
		retainedEarningsName = "Laba Ditahan"
	}
	return &coaService{coaRepo: coaRepo, retainedEarningsName: retainedEarningsName}
}

var _ portssvc.COASvcFacade = (*coaService)(nil)

// CreateCOA implements portssvc.COASvcFacade.
func (s *coaService) CreateCOA(ctx context.Context, gasStationID string, req dto.CreateCOARequest, creatorUserID string) (*domain.COA, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown COA category %q", apperrors.ErrValidation, req.Category)
	}

	now := time.Now().UTC()
	coa := domain.COA{
		COAID:        uuid.NewString(),
		GasStationID: gasStationID,
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.coaRepo.SaveCOA(ctx, coa); err != nil {
		logger.Error("Failed to save COA", slog.String("error", err.Error()), slog.String("gas_station_id", gasStationID))
		return nil, fmt.Errorf("failed to save COA: %w", err)
	}

	logger.Info("COA created", slog.String("coa_id", coa.COAID), slog.String("category", string(coa.Category)))
	return &coa, nil
}

// GetCOA implements portssvc.COASvcFacade. The returned balance is derived
// on read.
func (s *coaService) GetCOA(ctx context.Context, gasStationID, coaID string) (*domain.COA, int64, error) {
	coa, err := s.coaRepo.FindCOAByID(ctx, coaID)
	if err != nil {
		return nil, 0, err
	}
	if coa.GasStationID != gasStationID {
		// Obscure existence across stations.
		return nil, 0, apperrors.ErrNotFound
	}

	balance, err := s.GetCOABalance(ctx, coaID)
	if err != nil {
		return nil, 0, err
	}
	return coa, balance, nil
}

// ListCOAs implements portssvc.COASvcFacade.
func (s *coaService) ListCOAs(ctx context.Context, gasStationID string, includeInactive bool) ([]domain.COA, error) {
	return s.coaRepo.ListCOAByStation(ctx, gasStationID, includeInactive)
}

// UpdateCOA implements portssvc.COASvcFacade. Category changes are refused
// once journal entries reference the COA, because they would corrupt the
// balance semantics of history.
func (s *coaService) UpdateCOA(ctx context.Context, gasStationID, coaID string, req dto.UpdateCOARequest, userID string) (*domain.COA, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	coa, err := s.coaRepo.FindCOAByID(ctx, coaID)
	if err != nil {
		return nil, err
	}
	if coa.GasStationID != gasStationID {
		return nil, apperrors.ErrNotFound
	}

	updated := false
	if req.Name != nil && *req.Name != coa.Name {
		coa.Name = *req.Name
		updated = true
	}
	if req.Description != nil && *req.Description != coa.Description {
		coa.Description = *req.Description
		updated = true
	}
	if req.Category != nil && *req.Category != coa.Category {
		if !req.Category.IsValid() {
			return nil, fmt.Errorf("%w: unknown COA category %q", apperrors.ErrValidation, *req.Category)
		}
		referenced, err := s.coaRepo.HasJournalEntries(ctx, coaID)
		if err != nil {
			return nil, fmt.Errorf("failed to check COA references: %w", err)
		}
		if referenced {
			return nil, apperrors.ErrImmutableCategory
		}
		coa.Category = *req.Category
		updated = true
	}

	if !updated {
		return coa, nil
	}

	coa.LastUpdatedAt = time.Now().UTC()
	coa.LastUpdatedBy = userID
	if err := s.coaRepo.UpdateCOA(ctx, *coa); err != nil {
		logger.Error("Failed to update COA", slog.String("error", err.Error()), slog.String("coa_id", coaID))
		return nil, fmt.Errorf("failed to update COA: %w", err)
	}
	return coa, nil
}

// GetCOABalance implements portssvc.COASvcFacade.
func (s *coaService) GetCOABalance(ctx context.Context, coaID string) (int64, error) {
	coa, err := s.coaRepo.FindCOAByID(ctx, coaID)
	if err != nil {
		return 0, err
	}
	debitSum, creditSum, err := s.coaRepo.SumEntriesByCOA(ctx, coaID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum entries for COA %s: %w", coaID, err)
	}
	return coa.BalanceFromSums(debitSum, creditSum), nil
}

// EnsureRetainedEarnings implements portssvc.COASvcFacade. Idempotent: the
// closing engine calls it on every run.
func (s *coaService) EnsureRetainedEarnings(ctx context.Context, gasStationID string) (*domain.COA, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	coa, err := s.coaRepo.FindCOAByName(ctx, gasStationID, s.retainedEarningsName, domain.Equity)
	if err == nil {
		return coa, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up retained earnings COA: %w", err)
	}

	now := time.Now().UTC()
	created := domain.COA{
		COAID:        uuid.NewString(),
		GasStationID: gasStationID,
		Name:         s.retainedEarningsName,
		Category:     domain.Equity,
		Description:  "Akumulasi laba/rugi hasil tutup buku bulanan",
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     domain.SystemUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: domain.SystemUserID,
		},
	}
	if err := s.coaRepo.SaveCOA(ctx, created); err != nil {
		// A concurrent closing run may have created it first.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.coaRepo.FindCOAByName(ctx, gasStationID, s.retainedEarningsName, domain.Equity)
		}
		logger.Error("Failed to create retained earnings COA", slog.String("error", err.Error()), slog.String("gas_station_id", gasStationID))
		return nil, fmt.Errorf("failed to create retained earnings COA: %w", err)
	}

	logger.Info("Retained earnings COA created", slog.String("coa_id", created.COAID), slog.String("gas_station_id", gasStationID))
	return &created, nil
}
