package services

import (
	"context"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

// PreparedJournal is the validated output of the journal engine: entries
// ready to persist plus any COAs to create atomically with them.
type PreparedJournal struct {
	Entries []domain.JournalEntry
	NewCOAs []domain.COA
}

// JournalSvcFacade is the journal engine. It validates and prepares balanced
// entry sets; persistence happens atomically with the owning transaction.
type JournalSvcFacade interface {
	// PrepareJournal validates the entry inputs (at least two lines, each a
	// debit XOR credit of a positive integer amount, debit and credit sums
	// equal) and resolves COA references, creating specs for inline COAs.
	// Fails with ErrUnbalancedJournal, ErrInvalidCOASpec or ErrValidation.
	PrepareJournal(ctx context.Context, gasStationID, transactionID string, inputs []dto.JournalEntryInput, creatorUserID string) (*PreparedJournal, error)

	// ValidateBalanced re-checks the balance invariant on already prepared
	// entries. Used as a safety net by the closing engine.
	ValidateBalanced(entries []domain.JournalEntry) error
}
