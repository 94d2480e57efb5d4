package services

import (
	"context"
	"time"

	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

// ClosingSvcFacade is the monthly closing engine.
type ClosingSvcFacade interface {
	// HasClosingBeenDone reports whether the period already has an approved
	// CLOSING transaction. Read-only.
	HasClosingBeenDone(ctx context.Context, gasStationID string, year, month int) (bool, error)

	// CreateClosing closes the calendar month preceding closingDate for one
	// station: zeroes REVENUE/EXPENSE/COGS period balances into retained
	// earnings via a system-approved CLOSING transaction. Fails with
	// ErrAlreadyClosed when the period is closed.
	CreateClosing(ctx context.Context, gasStationID string, closingDate time.Time, performedByID string) (*dto.ClosingResponse, error)

	// AutoCloseAll runs CreateClosing for the previous month across every
	// ACTIVE station. Per-station failures are recorded, never aborting the
	// batch.
	AutoCloseAll(ctx context.Context, now time.Time) (*dto.AutoCloseSummary, error)
}
