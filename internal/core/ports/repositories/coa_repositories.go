package repositories

import (
	"context"
	"time"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
)

// COAReader defines read operations for chart-of-accounts data. All balance
// reads are derived aggregations over journal entries of APPROVED
// transactions; nothing reads a stored balance counter.
type COAReader interface {
	// FindCOAByID retrieves a specific COA by its unique identifier.
	FindCOAByID(ctx context.Context, coaID string) (*domain.COA, error)

	// FindCOAByIDs retrieves multiple COAs keyed by ID. Missing IDs are
	// simply absent from the map.
	FindCOAByIDs(ctx context.Context, coaIDs []string) (map[string]domain.COA, error)

	// FindCOAByName retrieves a station's COA by exact name and category.
	FindCOAByName(ctx context.Context, gasStationID, name string, category domain.COACategory) (*domain.COA, error)

	// ListCOAByStation retrieves all COAs of a station.
	ListCOAByStation(ctx context.Context, gasStationID string, includeInactive bool) ([]domain.COA, error)

	// SumEntriesByCOA returns the all-time debit and credit sums for one COA,
	// counting only entries of APPROVED transactions.
	SumEntriesByCOA(ctx context.Context, coaID string) (debitSum, creditSum int64, err error)

	// PeriodCategoryActivity returns per-COA debit/credit sums for the given
	// categories over [from, to), counting only entries of APPROVED
	// transactions. COAs with no activity in the period are omitted.
	PeriodCategoryActivity(ctx context.Context, gasStationID string, categories []domain.COACategory, from, to time.Time) ([]domain.COAPeriodActivity, error)

	// PeriodActivityAllCOAs is PeriodCategoryActivity without a category
	// filter, used for trial-balance reports.
	PeriodActivityAllCOAs(ctx context.Context, gasStationID string, from, to time.Time) ([]domain.COAPeriodActivity, error)

	// HasJournalEntries reports whether any journal entry references the COA.
	HasJournalEntries(ctx context.Context, coaID string) (bool, error)
}

// COAWriter defines write operations for chart-of-accounts data.
type COAWriter interface {
	// SaveCOA inserts a new COA.
	SaveCOA(ctx context.Context, coa domain.COA) error

	// UpdateCOA updates mutable COA fields. Category immutability is
	// enforced by the service before calling this.
	UpdateCOA(ctx context.Context, coa domain.COA) error
}

// COARepositoryFacade combines all COA repository interfaces.
type COARepositoryFacade interface {
	COAReader
	COAWriter
}
