package services

import (
	"context"
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

// transactionService is the transaction lifecycle manager: typed creation
// under the capability policy, then the PENDING -> APPROVED/REJECTED state
// machine. Entries only count toward balances once APPROVED.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	journalSvc      portssvc.JournalSvcFacade
}

// NewTransactionService creates a new transaction lifecycle manager.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, journalSvc portssvc.JournalSvcFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		journalSvc:      journalSvc,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction implements portssvc.TransactionSvcFacade.
func (s *transactionService) CreateTransaction(ctx context.Context, gasStationID string, req dto.CreateTransactionRequest, creator domain.Actor) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.TransactionType.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.TransactionType)
	}
	if req.TransactionType == domain.Closing {
		return nil, fmt.Errorf("%w: CLOSING transactions are system-generated", apperrors.ErrValidation)
	}
	if !domain.CanCreateTransaction(req.TransactionType, creator.Role) {
		logger.Warn("Role not permitted to create transaction type", slog.String("role", string(creator.Role)), slog.String("type", string(req.TransactionType)))
		return nil, fmt.Errorf("%w: role %s cannot create %s transactions", apperrors.ErrForbidden, creator.Role, req.TransactionType)
	}

	if req.TransactionType == domain.PurchaseBBM {
		if req.PurchaseVolume == nil || *req.PurchaseVolume <= 0 {
			return nil, fmt.Errorf("%w: PURCHASE_BBM requires a positive purchaseVolume", apperrors.ErrValidation)
		}
		if req.ProductID == nil || *req.ProductID == "" {
			return nil, fmt.Errorf("%w: PURCHASE_BBM requires a productID", apperrors.ErrValidation)
		}
	}

	now := time.Now().UTC()
	transactionID := uuid.NewString()

	prepared, err := s.journalSvc.PrepareJournal(ctx, gasStationID, transactionID, req.Entries, creator.UserID)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID:   transactionID,
		GasStationID:    gasStationID,
		TransactionDate: req.Date.UTC(),
		TransactionType: req.TransactionType,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		ApprovalStatus:  domain.Pending,
		CreatedByRole:   creator.Role,
		PurchaseVolume:  req.PurchaseVolume,
		ProductID:       req.ProductID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creator.UserID,
		},
	}
	if req.TransactionType == domain.PurchaseBBM {
		zero := int64(0)
		txn.DeliveredVolume = &zero
	}

	// Some adjustment paths skip the human approval step entirely.
	if domain.IsAutoApproved(req.TransactionType, creator.Role) {
		txn.ApprovalStatus = domain.Approved
		txn.ApproverID = &creator.UserID
		approvedAt := now
		txn.ApprovedAt = &approvedAt
	}

	if err := s.transactionRepo.SaveTransactionWithEntries(ctx, txn, prepared.Entries, prepared.NewCOAs); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.String("gas_station_id", gasStationID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.TransactionType)),
		slog.String("status", string(txn.ApprovalStatus)),
	)
	txn.Entries = prepared.Entries
	return &txn, nil
}

// GetTransaction implements portssvc.TransactionSvcFacade.
func (s *transactionService) GetTransaction(ctx context.Context, gasStationID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.GasStationID != gasStationID {
		return nil, apperrors.ErrNotFound
	}

	entries, err := s.transactionRepo.FindEntriesByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve entries for transaction %s: %w", transactionID, err)
	}
	txn.Entries = entries
	return txn, nil
}

// ListTransactions implements portssvc.TransactionSvcFacade.
func (s *transactionService) ListTransactions(ctx context.Context, gasStationID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	if params.Limit <= 0 {
		params.Limit = 20
	}
	return s.transactionRepo.ListTransactionsByStation(ctx, gasStationID, params)
}

// finalize validates the state machine and capability rules shared by
// approve and reject, then performs the guarded status flip.
func (s *transactionService) finalize(ctx context.Context, gasStationID, transactionID string, approver domain.Actor, status domain.ApprovalStatus, notes string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.GasStationID != gasStationID {
		return nil, apperrors.ErrNotFound
	}
	if txn.ApprovalStatus.IsTerminal() {
		return nil, apperrors.ErrAlreadyFinalized
	}
	if !domain.CanApproveTransaction(txn.TransactionType, approver.Role) {
		logger.Warn("Role not permitted to finalize transaction type", slog.String("role", string(approver.Role)), slog.String("type", string(txn.TransactionType)))
		return nil, apperrors.ErrUnauthorizedApprover
	}
	if txn.CreatedBy == approver.UserID {
		return nil, apperrors.ErrSelfApproval
	}

	now := time.Now().UTC()
	// The repository re-checks the PENDING guard inside the update, so a
	// concurrent finalization loses with ErrAlreadyFinalized instead of
	// double-flipping.
	if err := s.transactionRepo.FinalizeTransaction(ctx, transactionID, status, approver.UserID, notes, now); err != nil {
		return nil, err
	}

	txn.ApprovalStatus = status
	txn.ApproverID = &approver.UserID
	txn.ApprovedAt = &now
	txn.ApprovalNotes = notes
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = approver.UserID

	logger.Info("Transaction finalized",
		slog.String("transaction_id", transactionID),
		slog.String("status", string(status)),
		slog.String("approver_id", approver.UserID),
	)
	return txn, nil
}

// ApproveTransaction implements portssvc.TransactionSvcFacade.
func (s *transactionService) ApproveTransaction(ctx context.Context, gasStationID, transactionID string, approver domain.Actor) (*domain.Transaction, error) {
	return s.finalize(ctx, gasStationID, transactionID, approver, domain.Approved, "")
}

// RejectTransaction implements portssvc.TransactionSvcFacade.
func (s *transactionService) RejectTransaction(ctx context.Context, gasStationID, transactionID string, approver domain.Actor, notes string) (*domain.Transaction, error) {
	return s.finalize(ctx, gasStationID, transactionID, approver, domain.Rejected, notes)
}
