package services

import (
	"context"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

// TransactionSvcFacade is the transaction lifecycle manager.
type TransactionSvcFacade interface {
	// CreateTransaction creates a typed transaction with its journal
	// entries. Status is PENDING unless the policy auto-approves the
	// creator's role.
	CreateTransaction(ctx context.Context, gasStationID string, req dto.CreateTransactionRequest, creator domain.Actor) (*domain.Transaction, error)

	// GetTransaction retrieves a transaction with its entries.
	GetTransaction(ctx context.Context, gasStationID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a station's transactions.
	ListTransactions(ctx context.Context, gasStationID string, params dto.ListTransactionsParams) ([]domain.Transaction, error)

	// ApproveTransaction finalizes a PENDING transaction as APPROVED. From
	// this moment its entries count toward COA balances.
	ApproveTransaction(ctx context.Context, gasStationID, transactionID string, approver domain.Actor) (*domain.Transaction, error)

	// RejectTransaction finalizes a PENDING transaction as REJECTED; its
	// entries are permanently excluded from balances.
	RejectTransaction(ctx context.Context, gasStationID, transactionID string, approver domain.Actor, notes string) (*domain.Transaction, error)
}
