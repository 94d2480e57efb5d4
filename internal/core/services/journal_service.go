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
)

// journalService is the journal engine: it turns entry inputs into a
// validated, balanced set of journal entries plus any COAs to create
// alongside them. Persistence stays with the transaction repository so the
// whole set lands in one database transaction.
type journalService struct {
	coaRepo portsrepo.COARepositoryFacade
}

// NewJournalService creates a new journal engine.
func NewJournalService(coaRepo portsrepo.COARepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{coaRepo: coaRepo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateEntryShape checks one input line: non-negative integer amounts and
// exactly one positive side.
func validateEntryShape(input dto.JournalEntryInput, index int) error {
	if input.Debit < 0 || input.Credit < 0 {
		return fmt.Errorf("%w: entry %d has a negative amount", apperrors.ErrValidation, index)
	}
	isDebit := input.Debit > 0
	isCredit := input.Credit > 0
	if isDebit == isCredit {
		return fmt.Errorf("%w: entry %d must be either a debit line or a credit line", apperrors.ErrValidation, index)
	}
	return nil
}

// PrepareJournal implements portssvc.JournalSvcFacade.
func (s *journalService) PrepareJournal(ctx context.Context, gasStationID, transactionID string, inputs []dto.JournalEntryInput, creatorUserID string) (*portssvc.PreparedJournal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(inputs) < 2 {
		return nil, fmt.Errorf("%w: journal must have at least two entry lines", apperrors.ErrValidation)
	}

	var debitSum, creditSum int64
	for i, input := range inputs {
		if err := validateEntryShape(input, i); err != nil {
			return nil, err
		}
		debitSum += input.Debit
		creditSum += input.Credit
	}
	if debitSum != creditSum {
		return nil, fmt.Errorf("%w: debits sum to %d, credits sum to %d", apperrors.ErrUnbalancedJournal, debitSum, creditSum)
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	// Resolve COA references. Inline specs become new COAs created in the
	// same atomic save as the entries.
	prepared := &portssvc.PreparedJournal{
		Entries: make([]domain.JournalEntry, len(inputs)),
	}
	existingIDs := make([]string, 0, len(inputs))
	entryCOAIDs := make([]string, len(inputs))

	for i, input := range inputs {
		switch {
		case input.COAID != nil && *input.COAID != "":
			entryCOAIDs[i] = *input.COAID
			existingIDs = append(existingIDs, *input.COAID)
		case input.NewCOA != nil:
			if input.NewCOA.Name == "" || !input.NewCOA.Category.IsValid() {
				return nil, fmt.Errorf("%w (entry %d)", apperrors.ErrInvalidCOASpec, i)
			}
			newCOA := domain.COA{
				COAID:        uuid.NewString(),
				GasStationID: gasStationID,
				Name:         input.NewCOA.Name,
				Category:     input.NewCOA.Category,
				Description:  input.NewCOA.Description,
				IsActive:     true,
				AuditFields:  audit,
			}
			prepared.NewCOAs = append(prepared.NewCOAs, newCOA)
			entryCOAIDs[i] = newCOA.COAID
		default:
			return nil, fmt.Errorf("%w: entry %d references no COA and carries no new COA spec", apperrors.ErrValidation, i)
		}
	}

	if len(existingIDs) > 0 {
		coasMap, err := s.coaRepo.FindCOAByIDs(ctx, uniqueStrings(existingIDs))
		if err != nil {
			logger.Error("Failed to fetch COAs for journal preparation", slog.String("error", err.Error()), slog.String("gas_station_id", gasStationID))
			return nil, fmt.Errorf("failed to fetch COAs: %w", err)
		}
		for _, id := range existingIDs {
			coa, found := coasMap[id]
			if !found {
				return nil, fmt.Errorf("%w: COA %s", apperrors.ErrNotFound, id)
			}
			if coa.GasStationID != gasStationID {
				logger.Warn("COA used in journal belongs to a different station", slog.String("coa_id", id), slog.String("coa_station", coa.GasStationID), slog.String("journal_station", gasStationID))
				return nil, fmt.Errorf("%w: COA %s does not belong to station %s", apperrors.ErrNotFound, id, gasStationID)
			}
			if !coa.IsActive {
				return nil, fmt.Errorf("%w: COA %s is inactive", apperrors.ErrValidation, id)
			}
		}
	}

	// Journals must move value between at least two different accounts.
	distinct := make(map[string]struct{}, len(entryCOAIDs))
	for _, id := range entryCOAIDs {
		distinct[id] = struct{}{}
	}
	if len(distinct) < 2 {
		return nil, fmt.Errorf("%w: journal must affect at least two different COAs", apperrors.ErrValidation)
	}

	for i, input := range inputs {
		prepared.Entries[i] = domain.JournalEntry{
			EntryID:       uuid.NewString(),
			TransactionID: transactionID,
			COAID:         entryCOAIDs[i],
			Debit:         input.Debit,
			Credit:        input.Credit,
			Description:   input.Description,
			AuditFields:   audit,
		}
	}

	return prepared, nil
}

// ValidateBalanced implements portssvc.JournalSvcFacade. Used by the closing
// engine as a safety net on machine-built entries.
func (s *journalService) ValidateBalanced(entries []domain.JournalEntry) error {
	var debitSum, creditSum int64
	for _, e := range entries {
		if e.Debit < 0 || e.Credit < 0 {
			return fmt.Errorf("%w: entry %s has a negative amount", apperrors.ErrValidation, e.EntryID)
		}
		if (e.Debit > 0) == (e.Credit > 0) {
			return fmt.Errorf("%w: entry %s must be either a debit line or a credit line", apperrors.ErrValidation, e.EntryID)
		}
		debitSum += e.Debit
		creditSum += e.Credit
	}
	if debitSum != creditSum {
		return fmt.Errorf("%w: debits sum to %d, credits sum to %d", apperrors.ErrUnbalancedJournal, debitSum, creditSum)
	}
	return nil
}

// uniqueStrings returns a slice containing only the unique strings from the
// input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
