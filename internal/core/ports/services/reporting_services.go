package services

import (
	"context"
	"time"

	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

// ReportingSvcFacade provides read-only financial reports built on the same
// derived-balance queries the closing engine uses.
type ReportingSvcFacade interface {
	ProfitLossSummary(ctx context.Context, gasStationID string, from, to time.Time) (*dto.ProfitLossSummary, error)
	TrialBalance(ctx context.Context, gasStationID string, from, to time.Time) (*dto.TrialBalanceReport, error)
}
