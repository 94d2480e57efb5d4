package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PettaPuang/nozzle.website-sub005/internal/apperrors"
	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	portsrepo "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/repositories"
	portssvc "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/services"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
	"github.com/PettaPuang/nozzle.website-sub005/internal/middleware"
	"github.com/PettaPuang/nozzle.website-sub005/internal/utils"
)

// closingService is the monthly closing engine. It rolls each station's
// period P&L into retained earnings through a system-generated CLOSING
// transaction. The (station, year, month) uniqueness is enforced both here
// and by a partial unique index, so concurrent runs cannot double-post.
type closingService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	coaRepo         portsrepo.COARepositoryFacade
	stationRepo     portsrepo.GasStationRepositoryFacade
	coaSvc          portssvc.COASvcFacade
	journalSvc      portssvc.JournalSvcFacade
}

// NewClosingService creates a new monthly closing engine.
func NewClosingService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	coaRepo portsrepo.COARepositoryFacade,
	stationRepo portsrepo.GasStationRepositoryFacade,
	coaSvc portssvc.COASvcFacade,
	journalSvc portssvc.JournalSvcFacade,
) portssvc.ClosingSvcFacade {
	return &closingService{
		transactionRepo: transactionRepo,
		coaRepo:         coaRepo,
		stationRepo:     stationRepo,
		coaSvc:          coaSvc,
		journalSvc:      journalSvc,
	}
}

var _ portssvc.ClosingSvcFacade = (*closingService)(nil)

// HasClosingBeenDone implements portssvc.ClosingSvcFacade.
func (s *closingService) HasClosingBeenDone(ctx context.Context, gasStationID string, year, month int) (bool, error) {
	return s.transactionRepo.HasApprovedClosing(ctx, gasStationID, year, month)
}

// closingCategories are the temporary accounts zeroed into equity each
// period.
var closingCategories = []domain.COACategory{domain.Revenue, domain.Expense, domain.COGS}

// CreateClosing implements portssvc.ClosingSvcFacade.
func (s *closingService) CreateClosing(ctx context.Context, gasStationID string, closingDate time.Time, performedByID string) (*dto.ClosingResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	year, month := utils.PreviousPeriod(closingDate)
	periodStart, periodEnd := utils.PeriodBounds(year, month)

	closed, err := s.transactionRepo.HasApprovedClosing(ctx, gasStationID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing closing: %w", err)
	}
	if closed {
		return nil, apperrors.ErrAlreadyClosed
	}

	activity, err := s.coaRepo.PeriodCategoryActivity(ctx, gasStationID, closingCategories, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate period activity: %w", err)
	}

	now := time.Now().UTC()
	transactionID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     performedByID,
		LastUpdatedAt: now,
		LastUpdatedBy: performedByID,
	}

	// Zero each temporary account by posting its period balance on the
	// opposite side, and accumulate the net P&L as we go.
	var netPL int64
	entries := make([]domain.JournalEntry, 0, len(activity)+1)
	for _, act := range activity {
		balance := act.PeriodBalance()
		if balance == 0 {
			continue
		}

		entry := domain.JournalEntry{
			EntryID:       uuid.NewString(),
			TransactionID: transactionID,
			COAID:         act.COA.COAID,
			Description:   fmt.Sprintf("Tutup buku %s %d: %s", utils.MonthName(month), year, act.COA.Name),
			AuditFields:   audit,
		}
		// Credit-normal accounts (REVENUE) are zeroed with a debit,
		// debit-normal ones (EXPENSE/COGS) with a credit; negative period
		// balances flip the side.
		zeroOnDebitSide := act.COA.Category.IsCreditNormal()
		if balance < 0 {
			zeroOnDebitSide = !zeroOnDebitSide
			balance = -balance
		}
		if zeroOnDebitSide {
			entry.Debit = balance
		} else {
			entry.Credit = balance
		}
		entries = append(entries, entry)

		switch act.COA.Category {
		case domain.Revenue:
			netPL += act.PeriodBalance()
		case domain.Expense, domain.COGS:
			netPL -= act.PeriodBalance()
		}
	}

	if len(entries) > 0 {
		retained, err := s.coaSvc.EnsureRetainedEarnings(ctx, gasStationID)
		if err != nil {
			return nil, err
		}
		if netPL != 0 {
			reEntry := domain.JournalEntry{
				EntryID:       uuid.NewString(),
				TransactionID: transactionID,
				COAID:         retained.COAID,
				Description:   fmt.Sprintf("Laba/rugi bersih %s %d", utils.MonthName(month), year),
				AuditFields:   audit,
			}
			if netPL > 0 {
				reEntry.Credit = netPL
			} else {
				reEntry.Debit = -netPL
			}
			entries = append(entries, reEntry)
		}

		// Safety net: the entries balance by construction, but the journal
		// engine's invariant check is cheap and a failure here means a bug.
		if err := s.journalSvc.ValidateBalanced(entries); err != nil {
			logger.Error("Closing entries failed balance validation", slog.String("error", err.Error()), slog.String("gas_station_id", gasStationID))
			return nil, fmt.Errorf("closing entries invalid: %w", err)
		}
	}

	systemID := domain.SystemUserID
	txn := domain.Transaction{
		TransactionID:   transactionID,
		GasStationID:    gasStationID,
		TransactionDate: periodEnd.Add(-time.Second),
		TransactionType: domain.Closing,
		Description:     fmt.Sprintf("Tutup buku periode %s %d", utils.MonthName(month), year),
		ApprovalStatus:  domain.Approved,
		CreatedByRole:   domain.RoleAdministrator,
		ApproverID:      &systemID,
		ApprovedAt:      &now,
		ClosingYear:     &year,
		ClosingMonth:    &month,
		AuditFields:     audit,
	}

	if err := s.transactionRepo.SaveTransactionWithEntries(ctx, txn, entries, nil); err != nil {
		// Two concurrent closers race on the partial unique index; the
		// loser surfaces as already closed, never as a double post.
		return nil, err
	}

	logger.Info("Monthly closing posted",
		slog.String("gas_station_id", gasStationID),
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int64("net_pl", netPL),
	)

	return &dto.ClosingResponse{
		GasStationID: gasStationID,
		Year:         year,
		Month:        month,
		MonthName:    utils.MonthName(month),
		Balance:      netPL,
		IsProfit:     netPL >= 0,
	}, nil
}

// AutoCloseAll implements portssvc.ClosingSvcFacade. One station's failure
// must not block the others.
func (s *closingService) AutoCloseAll(ctx context.Context, now time.Time) (*dto.AutoCloseSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	stations, err := s.stationRepo.ListActiveStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active stations: %w", err)
	}

	summary := &dto.AutoCloseSummary{
		Results: make([]dto.AutoCloseResult, 0, len(stations)),
	}
	for _, station := range stations {
		result := dto.AutoCloseResult{GasStationID: station.GasStationID}

		resp, err := s.CreateClosing(ctx, station.GasStationID, now, domain.SystemUserID)
		if err != nil {
			result.Success = false
			result.Message = err.Error()
			summary.FailCount++
			logger.Warn("Auto close failed for station",
				slog.String("gas_station_id", station.GasStationID),
				slog.String("error", err.Error()),
			)
		} else {
			result.Success = true
			result.Message = fmt.Sprintf("Tutup buku %s berhasil, saldo %d", resp.MonthName, resp.Balance)
			summary.SuccessCount++
		}
		summary.Results = append(summary.Results, result)
	}

	logger.Info("Auto close run finished",
		slog.Int("success_count", summary.SuccessCount),
		slog.Int("fail_count", summary.FailCount),
	)
	return summary, nil
}
