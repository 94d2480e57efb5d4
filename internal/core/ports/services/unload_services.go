package services

import (
	"context"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

// UnloadSvcFacade is the purchase/unload reconciliation component.
type UnloadSvcFacade interface {
	// RequestUnload records a PENDING fuel delivery against an approved
	// PURCHASE_BBM transaction. Fails with ErrPurchaseNotApproved,
	// ErrProductMismatch or ErrOverDelivery.
	RequestUnload(ctx context.Context, req dto.RequestUnloadRequest, unloaderID string) (*domain.Unload, error)

	// ApproveUnload approves a PENDING unload and fully recomputes the
	// parent transaction's deliveredVolume from approved unloads.
	ApproveUnload(ctx context.Context, unloadID string, manager domain.Actor) (*domain.Unload, error)

	// RejectUnload rejects a PENDING unload.
	RejectUnload(ctx context.Context, unloadID string, manager domain.Actor) (*domain.Unload, error)

	// ListUnloads lists the unloads of one purchase transaction.
	ListUnloads(ctx context.Context, purchaseTransactionID string) ([]domain.Unload, error)

	// RemainingVolume reports purchaseVolume minus deliveredVolume for a
	// purchase, clamped at zero.
	RemainingVolume(ctx context.Context, purchaseTransactionID string) (int64, error)

	// RepairDeliveredVolumes is the idempotent administrative repair of
	// deliveredVolume drift, optionally scoped to one station.
	RepairDeliveredVolumes(ctx context.Context, gasStationID *string) (int, error)
}
