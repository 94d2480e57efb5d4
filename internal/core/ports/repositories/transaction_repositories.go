package repositories

import (
	"context"
	"time"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

// TransactionReader defines read operations for transactions and their
// journal entries.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction without its entries.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindEntriesByTransactionID retrieves all journal entries owned by a
	// transaction in deterministic order.
	FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error)

	// ListTransactionsByStation retrieves a station's transactions matching
	// the filter, newest first.
	ListTransactionsByStation(ctx context.Context, gasStationID string, params dto.ListTransactionsParams) ([]domain.Transaction, error)

	// HasApprovedClosing reports whether an APPROVED CLOSING transaction
	// exists for the station and period.
	HasApprovedClosing(ctx context.Context, gasStationID string, year, month int) (bool, error)
}

// TransactionWriter defines write operations for transactions. Each method
// is a single atomic unit against the store.
type TransactionWriter interface {
	// SaveTransactionWithEntries persists a transaction, any inline-created
	// COAs, and all journal entries in one database transaction. For CLOSING
	// transactions the period uniqueness constraint maps to ErrAlreadyClosed.
	SaveTransactionWithEntries(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry, newCOAs []domain.COA) error

	// FinalizeTransaction moves a PENDING transaction to a terminal status.
	// The status guard is a conditional update: if the row already left
	// PENDING the call fails with ErrAlreadyFinalized regardless of what the
	// caller read beforehand.
	FinalizeTransaction(ctx context.Context, transactionID string, status domain.ApprovalStatus, approverID string, notes string, at time.Time) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
