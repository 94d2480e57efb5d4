package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PettaPuang/nozzle.website-sub005/internal/apperrors"
	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	portsrepo "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/repositories"
)

type PgxUnloadRepository struct {
	BaseRepository
}

// newPgxUnloadRepository creates a new repository for unload records.
func newPgxUnloadRepository(pool *pgxpool.Pool) portsrepo.UnloadRepositoryFacade {
	return &PgxUnloadRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UnloadRepositoryFacade = (*PgxUnloadRepository)(nil)

const unloadColumns = `unload_id, tank_id, unloader_id, manager_id, purchase_transaction_id, initial_order_volume, delivered_volume, status, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanUnload(row pgx.Row) (domain.Unload, error) {
	var u domain.Unload
	err := row.Scan(
		&u.UnloadID,
		&u.TankID,
		&u.UnloaderID,
		&u.ManagerID,
		&u.PurchaseTransactionID,
		&u.InitialOrderVolume,
		&u.DeliveredVolume,
		&u.Status,
		&u.Notes,
		&u.CreatedAt,
		&u.CreatedBy,
		&u.LastUpdatedAt,
		&u.LastUpdatedBy,
	)
	return u, err
}

// FindUnloadByID retrieves a specific unload.
func (r *PgxUnloadRepository) FindUnloadByID(ctx context.Context, unloadID string) (*domain.Unload, error) {
	query := `SELECT ` + unloadColumns + ` FROM unloads WHERE unload_id = $1;`
	u, err := scanUnload(r.Pool.QueryRow(ctx, query, unloadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find unload %s: %w", unloadID, err)
	}
	return &u, nil
}

// ListUnloadsByPurchase retrieves all unloads referencing one purchase
// transaction, oldest first.
func (r *PgxUnloadRepository) ListUnloadsByPurchase(ctx context.Context, purchaseTransactionID string) ([]domain.Unload, error) {
	query := `SELECT ` + unloadColumns + ` FROM unloads WHERE purchase_transaction_id = $1 ORDER BY created_at, unload_id;`
	rows, err := r.Pool.Query(ctx, query, purchaseTransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query unloads for purchase %s: %w", purchaseTransactionID, err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Unload, error) {
		return scanUnload(row)
	})
}

// SumApprovedVolume returns the delivered-volume sum of APPROVED unloads for
// one purchase transaction.
func (r *PgxUnloadRepository) SumApprovedVolume(ctx context.Context, purchaseTransactionID string) (int64, error) {
	var sum int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(delivered_volume), 0) FROM unloads WHERE purchase_transaction_id = $1 AND status = 'APPROVED';`,
		purchaseTransactionID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to sum approved volume for purchase %s: %w", purchaseTransactionID, err)
	}
	return sum, nil
}

// lockPurchaseVolume takes a row lock on the purchase transaction and returns
// its purchase volume. All over-delivery checks run behind this lock so
// concurrent unload writes serialize per purchase.
func lockPurchaseVolume(ctx context.Context, tx pgx.Tx, purchaseTransactionID string) (int64, error) {
	var purchaseVolume *int64
	err := tx.QueryRow(ctx,
		`SELECT purchase_volume FROM transactions WHERE transaction_id = $1 AND transaction_type = 'PURCHASE_BBM' FOR UPDATE;`,
		purchaseTransactionID,
	).Scan(&purchaseVolume)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("failed to lock purchase transaction %s: %w", purchaseTransactionID, err)
	}
	if purchaseVolume == nil {
		return 0, fmt.Errorf("%w: purchase transaction %s has no purchase volume", apperrors.ErrValidation, purchaseTransactionID)
	}
	return *purchaseVolume, nil
}

// SaveUnload inserts a PENDING unload after re-checking, under lock, that
// approved volume plus the new volume stays within the purchase volume.
func (r *PgxUnloadRepository) SaveUnload(ctx context.Context, unload domain.Unload) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	purchaseVolume, err := lockPurchaseVolume(ctx, tx, unload.PurchaseTransactionID)
	if err != nil {
		return err
	}

	var approvedSum int64
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(delivered_volume), 0) FROM unloads WHERE purchase_transaction_id = $1 AND status = 'APPROVED';`,
		unload.PurchaseTransactionID,
	).Scan(&approvedSum)
	if err != nil {
		return fmt.Errorf("failed to sum approved volume: %w", err)
	}
	if approvedSum+unload.DeliveredVolume > purchaseVolume {
		return apperrors.ErrOverDelivery
	}

	query := `
		INSERT INTO unloads (` + unloadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	if _, err := tx.Exec(ctx, query,
		unload.UnloadID,
		unload.TankID,
		unload.UnloaderID,
		unload.ManagerID,
		unload.PurchaseTransactionID,
		unload.InitialOrderVolume,
		unload.DeliveredVolume,
		unload.Status,
		unload.Notes,
		unload.CreatedAt,
		unload.CreatedBy,
		unload.LastUpdatedAt,
		unload.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to insert unload %s: %w", unload.UnloadID, err)
	}

	return r.Commit(ctx, tx)
}

// FinalizeUnload moves a PENDING unload to APPROVED or REJECTED. On approval
// it re-checks over-delivery under the purchase row lock, then fully
// recomputes the purchase's delivered_volume from approved unloads and
// refreshes the receiving tank's cached stock.
func (r *PgxUnloadRepository) FinalizeUnload(ctx context.Context, unloadID string, status domain.ApprovalStatus, managerID string, at time.Time) (*domain.Unload, int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer r.Rollback(ctx, tx)

	unload, err := scanUnload(tx.QueryRow(ctx, `SELECT `+unloadColumns+` FROM unloads WHERE unload_id = $1 FOR UPDATE;`, unloadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, apperrors.ErrNotFound
		}
		return nil, 0, fmt.Errorf("failed to lock unload %s: %w", unloadID, err)
	}
	if unload.Status.IsTerminal() {
		return nil, 0, apperrors.ErrAlreadyFinalized
	}

	purchaseVolume, err := lockPurchaseVolume(ctx, tx, unload.PurchaseTransactionID)
	if err != nil {
		return nil, 0, err
	}

	if status == domain.Approved {
		var approvedSum int64
		err = tx.QueryRow(ctx,
			`SELECT COALESCE(SUM(delivered_volume), 0) FROM unloads WHERE purchase_transaction_id = $1 AND status = 'APPROVED';`,
			unload.PurchaseTransactionID,
		).Scan(&approvedSum)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to sum approved volume: %w", err)
		}
		if approvedSum+unload.DeliveredVolume > purchaseVolume {
			return nil, 0, apperrors.ErrOverDelivery
		}
	}

	if _, err := tx.Exec(ctx,
		`UPDATE unloads SET status = $2, manager_id = $3, last_updated_at = $4, last_updated_by = $3 WHERE unload_id = $1;`,
		unloadID, status, managerID, at,
	); err != nil {
		return nil, 0, fmt.Errorf("failed to update unload %s: %w", unloadID, err)
	}

	// Full recomputation, never an increment. The same statement serves both
	// the approve and reject paths.
	var delivered int64
	err = tx.QueryRow(ctx, `
		UPDATE transactions
		SET delivered_volume = (
			SELECT COALESCE(SUM(delivered_volume), 0) FROM unloads
			WHERE purchase_transaction_id = $1 AND status = 'APPROVED'
		), last_updated_at = $2, last_updated_by = $3
		WHERE transaction_id = $1
		RETURNING delivered_volume;
	`, unload.PurchaseTransactionID, at, managerID).Scan(&delivered)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to recompute delivered volume for purchase %s: %w", unload.PurchaseTransactionID, err)
	}

	if status == domain.Approved {
		if err := recomputeTankStockInTx(ctx, tx, unload.TankID); err != nil {
			return nil, 0, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, 0, err
	}

	unload.Status = status
	unload.ManagerID = &managerID
	unload.LastUpdatedAt = at
	unload.LastUpdatedBy = managerID
	return &unload, delivered, nil
}

// RepairDeliveredVolumes recomputes delivered_volume for every (or one
// station's) PURCHASE_BBM transaction from its approved unloads, touching
// only rows whose stored value differs.
func (r *PgxUnloadRepository) RepairDeliveredVolumes(ctx context.Context, gasStationID *string) (int, error) {
	query := `
		UPDATE transactions t
		SET delivered_volume = sub.actual
		FROM (
			SELECT p.transaction_id, COALESCE(SUM(u.delivered_volume) FILTER (WHERE u.status = 'APPROVED'), 0) AS actual
			FROM transactions p
			LEFT JOIN unloads u ON u.purchase_transaction_id = p.transaction_id
			WHERE p.transaction_type = 'PURCHASE_BBM'
			  AND ($1::text IS NULL OR p.gas_station_id = $1)
			GROUP BY p.transaction_id
		) sub
		WHERE t.transaction_id = sub.transaction_id
		  AND t.delivered_volume IS DISTINCT FROM sub.actual;
	`
	tag, err := r.Pool.Exec(ctx, query, gasStationID)
	if err != nil {
		return 0, fmt.Errorf("failed to repair delivered volumes: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
