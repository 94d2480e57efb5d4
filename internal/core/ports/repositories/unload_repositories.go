package repositories

import (
	"context"
	"time"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
)

// UnloadReader defines read operations for unload records.
type UnloadReader interface {
	// FindUnloadByID retrieves a specific unload.
	FindUnloadByID(ctx context.Context, unloadID string) (*domain.Unload, error)

	// ListUnloadsByPurchase retrieves all unloads referencing one purchase
	// transaction, oldest first.
	ListUnloadsByPurchase(ctx context.Context, purchaseTransactionID string) ([]domain.Unload, error)

	// SumApprovedVolume returns the delivered-volume sum of APPROVED unloads
	// for one purchase transaction.
	SumApprovedVolume(ctx context.Context, purchaseTransactionID string) (int64, error)
}

// UnloadWriter defines write operations for unload records. Every method
// runs as one database transaction; over-delivery guards execute under a
// row lock on the purchase transaction so concurrent calls serialize.
type UnloadWriter interface {
	// SaveUnload inserts a PENDING unload after re-checking, under lock,
	// that approved volume plus the new volume stays within the purchase
	// volume. Fails with ErrOverDelivery otherwise.
	SaveUnload(ctx context.Context, unload domain.Unload) error

	// FinalizeUnload moves a PENDING unload to APPROVED or REJECTED. On
	// approval it re-checks over-delivery under lock, then fully recomputes
	// the purchase transaction's deliveredVolume from approved unloads and
	// refreshes the receiving tank's cached stock. Returns the updated
	// unload and the recomputed deliveredVolume.
	FinalizeUnload(ctx context.Context, unloadID string, status domain.ApprovalStatus, managerID string, at time.Time) (*domain.Unload, int64, error)

	// RepairDeliveredVolumes recomputes deliveredVolume for every (or one
	// station's) PURCHASE_BBM transaction from its approved unloads,
	// touching only rows whose stored value differs. Returns the number of
	// repaired rows. Safe to run repeatedly.
	RepairDeliveredVolumes(ctx context.Context, gasStationID *string) (int, error)
}

// UnloadRepositoryFacade combines all unload repository interfaces.
type UnloadRepositoryFacade interface {
	UnloadReader
	UnloadWriter
}
