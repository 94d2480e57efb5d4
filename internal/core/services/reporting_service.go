package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	portsrepo "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/repositories"
	portssvc "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/services"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

// reportingService builds read-only financial reports from the same derived
// aggregations the closing engine uses. Amounts stay in minor units; only
// ratios use decimals.
type reportingService struct {
	coaRepo portsrepo.COARepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(coaRepo portsrepo.COARepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{coaRepo: coaRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// ProfitLossSummary implements portssvc.ReportingSvcFacade.
func (s *reportingService) ProfitLossSummary(ctx context.Context, gasStationID string, from, to time.Time) (*dto.ProfitLossSummary, error) {
	activity, err := s.coaRepo.PeriodCategoryActivity(ctx, gasStationID, closingCategories, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate P&L activity: %w", err)
	}

	summary := &dto.ProfitLossSummary{
		GasStationID: gasStationID,
		From:         from,
		To:           to,
	}
	for _, act := range activity {
		balance := act.PeriodBalance()
		switch act.COA.Category {
		case domain.Revenue:
			summary.Revenue += balance
		case domain.Expense:
			summary.Expense += balance
		case domain.COGS:
			summary.COGS += balance
		}
	}
	summary.NetProfit = summary.Revenue - summary.Expense - summary.COGS
	summary.IsProfit = summary.NetProfit >= 0
	if summary.Revenue != 0 {
		summary.ProfitMargin = decimal.NewFromInt(summary.NetProfit).
			Div(decimal.NewFromInt(summary.Revenue)).
			Round(4)
	}
	return summary, nil
}

// TrialBalance implements portssvc.ReportingSvcFacade.
func (s *reportingService) TrialBalance(ctx context.Context, gasStationID string, from, to time.Time) (*dto.TrialBalanceReport, error) {
	activity, err := s.coaRepo.PeriodActivityAllCOAs(ctx, gasStationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate trial balance activity: %w", err)
	}

	report := &dto.TrialBalanceReport{
		GasStationID: gasStationID,
		From:         from,
		To:           to,
		Rows:         make([]dto.TrialBalanceRow, 0, len(activity)),
	}
	for _, act := range activity {
		report.Rows = append(report.Rows, dto.TrialBalanceRow{
			COAID:     act.COA.COAID,
			Name:      act.COA.Name,
			Category:  act.COA.Category,
			DebitSum:  act.DebitSum,
			CreditSum: act.CreditSum,
			Balance:   act.PeriodBalance(),
		})
		report.TotalDebit += act.DebitSum
		report.TotalCredit += act.CreditSum
	}
	return report, nil
}
