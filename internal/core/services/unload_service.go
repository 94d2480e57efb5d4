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

// unloadService reconciles fuel deliveries against purchase transactions.
// deliveredVolume is always a full recomputation over approved unloads,
// never an increment, so concurrent approvals and repairs converge on the
// same value.
type unloadService struct {
	unloadRepo      portsrepo.UnloadRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	tankRepo        portsrepo.TankRepositoryFacade
}

// NewUnloadService creates a new reconciliation service.
func NewUnloadService(unloadRepo portsrepo.UnloadRepositoryFacade, transactionRepo portsrepo.TransactionRepositoryFacade, tankRepo portsrepo.TankRepositoryFacade) portssvc.UnloadSvcFacade {
	return &unloadService{
		unloadRepo:      unloadRepo,
		transactionRepo: transactionRepo,
		tankRepo:        tankRepo,
	}
}

var _ portssvc.UnloadSvcFacade = (*unloadService)(nil)

// RequestUnload implements portssvc.UnloadSvcFacade.
func (s *unloadService) RequestUnload(ctx context.Context, req dto.RequestUnloadRequest, unloaderID string) (*domain.Unload, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, req.PurchaseTransactionID)
	if err != nil {
		return nil, err
	}
	// Approval status is terminal once set, so these checks cannot race
	// with a status change. The volume check races with other unloads and
	// is re-run under lock inside the repository save.
	if txn.TransactionType != domain.PurchaseBBM || txn.ApprovalStatus != domain.Approved {
		return nil, apperrors.ErrPurchaseNotApproved
	}
	if txn.PurchaseVolume == nil {
		return nil, fmt.Errorf("%w: purchase transaction %s has no purchase volume", apperrors.ErrValidation, txn.TransactionID)
	}

	tank, err := s.tankRepo.FindTankByID(ctx, req.TankID)
	if err != nil {
		return nil, err
	}
	if txn.ProductID == nil || tank.ProductID != *txn.ProductID {
		return nil, apperrors.ErrProductMismatch
	}
	if tank.GasStationID != txn.GasStationID {
		return nil, fmt.Errorf("%w: tank %s does not belong to station %s", apperrors.ErrValidation, tank.TankID, txn.GasStationID)
	}

	now := time.Now().UTC()
	unload := domain.Unload{
		UnloadID:              uuid.NewString(),
		TankID:                req.TankID,
		UnloaderID:            unloaderID,
		PurchaseTransactionID: req.PurchaseTransactionID,
		InitialOrderVolume:    *txn.PurchaseVolume,
		DeliveredVolume:       req.Volume,
		Status:                domain.Pending,
		Notes:                 req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     unloaderID,
			LastUpdatedAt: now,
			LastUpdatedBy: unloaderID,
		},
	}

	if err := s.unloadRepo.SaveUnload(ctx, unload); err != nil {
		if errors.Is(err, apperrors.ErrOverDelivery) {
			return nil, err
		}
		logger.Error("Failed to save unload", slog.String("error", err.Error()), slog.String("purchase_transaction_id", req.PurchaseTransactionID))
		return nil, fmt.Errorf("failed to save unload: %w", err)
	}

	logger.Info("Unload requested",
		slog.String("unload_id", unload.UnloadID),
		slog.String("purchase_transaction_id", unload.PurchaseTransactionID),
		slog.Int64("volume", unload.DeliveredVolume),
	)
	return &unload, nil
}

// finalizeUnload validates the state machine around a pending unload and
// delegates the guarded flip plus recomputation to the repository.
func (s *unloadService) finalizeUnload(ctx context.Context, unloadID string, manager domain.Actor, status domain.ApprovalStatus) (*domain.Unload, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	unload, err := s.unloadRepo.FindUnloadByID(ctx, unloadID)
	if err != nil {
		return nil, err
	}
	if unload.Status.IsTerminal() {
		return nil, apperrors.ErrAlreadyFinalized
	}

	now := time.Now().UTC()
	finalized, delivered, err := s.unloadRepo.FinalizeUnload(ctx, unloadID, status, manager.UserID, now)
	if err != nil {
		return nil, err
	}

	logger.Info("Unload finalized",
		slog.String("unload_id", unloadID),
		slog.String("status", string(status)),
		slog.Int64("delivered_volume", delivered),
	)
	return finalized, nil
}

// ApproveUnload implements portssvc.UnloadSvcFacade.
func (s *unloadService) ApproveUnload(ctx context.Context, unloadID string, manager domain.Actor) (*domain.Unload, error) {
	return s.finalizeUnload(ctx, unloadID, manager, domain.Approved)
}

// RejectUnload implements portssvc.UnloadSvcFacade.
func (s *unloadService) RejectUnload(ctx context.Context, unloadID string, manager domain.Actor) (*domain.Unload, error) {
	return s.finalizeUnload(ctx, unloadID, manager, domain.Rejected)
}

// ListUnloads implements portssvc.UnloadSvcFacade.
func (s *unloadService) ListUnloads(ctx context.Context, purchaseTransactionID string) ([]domain.Unload, error) {
	return s.unloadRepo.ListUnloadsByPurchase(ctx, purchaseTransactionID)
}

// RemainingVolume implements portssvc.UnloadSvcFacade. A negative raw value
// indicates an upstream bug and is clamped to zero, never surfaced.
func (s *unloadService) RemainingVolume(ctx context.Context, purchaseTransactionID string) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, purchaseTransactionID)
	if err != nil {
		return 0, err
	}
	if txn.TransactionType != domain.PurchaseBBM {
		return 0, fmt.Errorf("%w: transaction %s is not a PURCHASE_BBM", apperrors.ErrValidation, purchaseTransactionID)
	}

	remaining, violated := txn.RemainingVolume()
	if violated {
		logger.Error("volume invariant violation: delivered volume exceeds purchase volume",
			slog.String("transaction_id", purchaseTransactionID),
			slog.Int64("purchase_volume", *txn.PurchaseVolume),
			slog.Int64("delivered_volume", *txn.DeliveredVolume),
		)
	}
	return remaining, nil
}

// RepairDeliveredVolumes implements portssvc.UnloadSvcFacade.
func (s *unloadService) RepairDeliveredVolumes(ctx context.Context, gasStationID *string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	repaired, err := s.unloadRepo.RepairDeliveredVolumes(ctx, gasStationID)
	if err != nil {
		logger.Error("Failed to repair delivered volumes", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to repair delivered volumes: %w", err)
	}

	logger.Info("Delivered volumes repaired", slog.Int("repaired_count", repaired))
	return repaired, nil
}
