package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PettaPuang/nozzle.website-sub005/internal/apperrors"
	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	portsrepo "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/repositories"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

// closingUniqueConstraint is the partial unique index guaranteeing at most
// one APPROVED CLOSING per station and period.
const closingUniqueConstraint = "uq_transactions_closing_period"

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction and
// journal entry data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, gas_station_id, transaction_date, transaction_type, description, reference_number, approval_status, created_by_role, approver_id, approved_at, approval_notes, purchase_volume, delivered_volume, product_id, closing_year, closing_month, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.GasStationID,
		&txn.TransactionDate,
		&txn.TransactionType,
		&txn.Description,
		&txn.ReferenceNumber,
		&txn.ApprovalStatus,
		&txn.CreatedByRole,
		&txn.ApproverID,
		&txn.ApprovedAt,
		&txn.ApprovalNotes,
		&txn.PurchaseVolume,
		&txn.DeliveredVolume,
		&txn.ProductID,
		&txn.ClosingYear,
		&txn.ClosingMonth,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	return txn, err
}

// FindTransactionByID retrieves a transaction without its entries.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

// FindEntriesByTransactionID retrieves all journal entries owned by a
// transaction in deterministic order.
func (r *PgxTransactionRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, transaction_id, coa_id, debit, credit, description, created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE transaction_id = $1
		ORDER BY entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.JournalEntry, error) {
		var e domain.JournalEntry
		err := row.Scan(
			&e.EntryID,
			&e.TransactionID,
			&e.COAID,
			&e.Debit,
			&e.Credit,
			&e.Description,
			&e.CreatedAt,
			&e.CreatedBy,
			&e.LastUpdatedAt,
			&e.LastUpdatedBy,
		)
		return e, err
	})
}

// ListTransactionsByStation retrieves a station's transactions matching the
// filter, newest first.
func (r *PgxTransactionRepository) ListTransactionsByStation(ctx context.Context, gasStationID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE gas_station_id = $1`
	args := []any{gasStationID}

	if params.TransactionType != nil {
		args = append(args, *params.TransactionType)
		query += ` AND transaction_type = $` + strconv.Itoa(len(args))
	}
	if params.ApprovalStatus != nil {
		args = append(args, *params.ApprovalStatus)
		query += ` AND approval_status = $` + strconv.Itoa(len(args))
	}
	if params.From != nil {
		args = append(args, *params.From)
		query += ` AND transaction_date >= $` + strconv.Itoa(len(args))
	}
	if params.To != nil {
		args = append(args, *params.To)
		query += ` AND transaction_date < $` + strconv.Itoa(len(args))
	}

	args = append(args, params.Limit)
	query += ` ORDER BY transaction_date DESC, transaction_id DESC LIMIT $` + strconv.Itoa(len(args))
	args = append(args, params.Offset)
	query += ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for station %s: %w", gasStationID, err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		return scanTransaction(row)
	})
}

// HasApprovedClosing reports whether an APPROVED CLOSING transaction exists
// for the station and period.
func (r *PgxTransactionRepository) HasApprovedClosing(ctx context.Context, gasStationID string, year, month int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE gas_station_id = $1
			  AND transaction_type = 'CLOSING'
			  AND approval_status = 'APPROVED'
			  AND closing_year = $2 AND closing_month = $3
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, gasStationID, year, month).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check closing for station %s: %w", gasStationID, err)
	}
	return exists, nil
}

// SaveTransactionWithEntries persists a transaction, any inline-created COAs,
// and all journal entries in one database transaction.
func (r *PgxTransactionRepository) SaveTransactionWithEntries(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry, newCOAs []domain.COA) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	coaQuery := `
		INSERT INTO coas (coa_id, gas_station_id, name, category, description, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, coa := range newCOAs {
		if _, err := tx.Exec(ctx, coaQuery,
			coa.COAID, coa.GasStationID, coa.Name, coa.Category, coa.Description, coa.IsActive,
			coa.CreatedAt, coa.CreatedBy, coa.LastUpdatedAt, coa.LastUpdatedBy,
		); err != nil {
			if isUniqueViolation(err, "") {
				return apperrors.ErrDuplicate
			}
			return fmt.Errorf("failed to insert COA %s: %w", coa.COAID, err)
		}
	}

	txnQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	if _, err := tx.Exec(ctx, txnQuery,
		txn.TransactionID,
		txn.GasStationID,
		txn.TransactionDate,
		txn.TransactionType,
		txn.Description,
		txn.ReferenceNumber,
		txn.ApprovalStatus,
		txn.CreatedByRole,
		txn.ApproverID,
		txn.ApprovedAt,
		txn.ApprovalNotes,
		txn.PurchaseVolume,
		txn.DeliveredVolume,
		txn.ProductID,
		txn.ClosingYear,
		txn.ClosingMonth,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	); err != nil {
		if isUniqueViolation(err, closingUniqueConstraint) {
			return apperrors.ErrAlreadyClosed
		}
		if isUniqueViolation(err, "") {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert transaction %s: %w", txn.TransactionID, err)
	}

	if len(entries) > 0 {
		batch := &pgx.Batch{}
		entryQuery := `
			INSERT INTO journal_entries (entry_id, transaction_id, coa_id, debit, credit, description, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`
		for _, e := range entries {
			batch.Queue(entryQuery,
				e.EntryID, e.TransactionID, e.COAID, e.Debit, e.Credit, e.Description,
				e.CreatedAt, e.CreatedBy, e.LastUpdatedAt, e.LastUpdatedBy,
			)
		}
		br := tx.SendBatch(ctx, batch)
		for range entries {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to insert journal entries for transaction %s: %w", txn.TransactionID, err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close entry batch for transaction %s: %w", txn.TransactionID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FinalizeTransaction moves a PENDING transaction to a terminal status. The
// WHERE clause is the concurrency guard: a row that already left PENDING
// matches nothing and the caller gets ErrAlreadyFinalized.
func (r *PgxTransactionRepository) FinalizeTransaction(ctx context.Context, transactionID string, status domain.ApprovalStatus, approverID string, notes string, at time.Time) error {
	query := `
		UPDATE transactions
		SET approval_status = $2, approver_id = $3, approved_at = $4, approval_notes = $5, last_updated_at = $4, last_updated_by = $3
		WHERE transaction_id = $1 AND approval_status = 'PENDING';
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID, status, approverID, at, notes)
	if err != nil {
		return fmt.Errorf("failed to finalize transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		exists, checkErr := r.transactionExists(ctx, transactionID)
		if checkErr != nil {
			return checkErr
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrAlreadyFinalized
	}
	return nil
}

func (r *PgxTransactionRepository) transactionExists(ctx context.Context, transactionID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM transactions WHERE transaction_id = $1);`, transactionID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check transaction %s: %w", transactionID, err)
	}
	return exists, nil
}
