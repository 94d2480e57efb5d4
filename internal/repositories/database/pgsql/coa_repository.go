package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PettaPuang/nozzle.website-sub005/internal/apperrors"
	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	portsrepo "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/repositories"
)

type PgxCOARepository struct {
	BaseRepository
}

// newPgxCOARepository creates a new repository for chart-of-accounts data.
func newPgxCOARepository(pool *pgxpool.Pool) portsrepo.COARepositoryFacade {
	return &PgxCOARepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.COARepositoryFacade = (*PgxCOARepository)(nil)

const coaColumns = `coa_id, gas_station_id, name, category, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanCOA(row pgx.Row) (domain.COA, error) {
	var coa domain.COA
	err := row.Scan(
		&coa.COAID,
		&coa.GasStationID,
		&coa.Name,
		&coa.Category,
		&coa.Description,
		&coa.IsActive,
		&coa.CreatedAt,
		&coa.CreatedBy,
		&coa.LastUpdatedAt,
		&coa.LastUpdatedBy,
	)
	return coa, err
}

// FindCOAByID retrieves a COA by its unique identifier.
func (r *PgxCOARepository) FindCOAByID(ctx context.Context, coaID string) (*domain.COA, error) {
	query := `SELECT ` + coaColumns + ` FROM coas WHERE coa_id = $1;`
	coa, err := scanCOA(r.Pool.QueryRow(ctx, query, coaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find COA by id %s: %w", coaID, err)
	}
	return &coa, nil
}

// FindCOAByIDs retrieves multiple COAs keyed by ID. Missing IDs are simply
// absent from the map.
func (r *PgxCOARepository) FindCOAByIDs(ctx context.Context, coaIDs []string) (map[string]domain.COA, error) {
	if len(coaIDs) == 0 {
		return map[string]domain.COA{}, nil
	}
	query := `SELECT ` + coaColumns + ` FROM coas WHERE coa_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, coaIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query COAs by ids: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.COA, len(coaIDs))
	for rows.Next() {
		coa, err := scanCOA(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan COA row: %w", err)
		}
		result[coa.COAID] = coa
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read COA rows: %w", err)
	}
	return result, nil
}

// FindCOAByName retrieves a station's COA by exact name and category.
func (r *PgxCOARepository) FindCOAByName(ctx context.Context, gasStationID, name string, category domain.COACategory) (*domain.COA, error) {
	query := `SELECT ` + coaColumns + ` FROM coas WHERE gas_station_id = $1 AND name = $2 AND category = $3;`
	coa, err := scanCOA(r.Pool.QueryRow(ctx, query, gasStationID, name, category))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find COA by name %q: %w", name, err)
	}
	return &coa, nil
}

// ListCOAByStation retrieves all COAs of a station.
func (r *PgxCOARepository) ListCOAByStation(ctx context.Context, gasStationID string, includeInactive bool) ([]domain.COA, error) {
	query := `SELECT ` + coaColumns + ` FROM coas WHERE gas_station_id = $1`
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY category, name;`

	rows, err := r.Pool.Query(ctx, query, gasStationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query COAs for station %s: %w", gasStationID, err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.COA, error) {
		return scanCOA(row)
	})
}

// SumEntriesByCOA returns the all-time debit and credit sums for one COA.
// Only entries of APPROVED transactions count.
func (r *PgxCOARepository) SumEntriesByCOA(ctx context.Context, coaID string) (int64, int64, error) {
	query := `
		SELECT COALESCE(SUM(je.debit), 0), COALESCE(SUM(je.credit), 0)
		FROM journal_entries je
		JOIN transactions t ON t.transaction_id = je.transaction_id
		WHERE je.coa_id = $1 AND t.approval_status = 'APPROVED';
	`
	var debitSum, creditSum int64
	if err := r.Pool.QueryRow(ctx, query, coaID).Scan(&debitSum, &creditSum); err != nil {
		return 0, 0, fmt.Errorf("failed to sum entries for COA %s: %w", coaID, err)
	}
	return debitSum, creditSum, nil
}

// PeriodCategoryActivity returns per-COA debit/credit sums for the given
// categories over [from, to). Only entries of APPROVED transactions count,
// and CLOSING transactions are excluded so an existing closing never feeds a
// report or a re-run.
func (r *PgxCOARepository) PeriodCategoryActivity(ctx context.Context, gasStationID string, categories []domain.COACategory, from, to time.Time) ([]domain.COAPeriodActivity, error) {
	cats := make([]string, len(categories))
	for i, c := range categories {
		cats[i] = string(c)
	}
	query := `
		SELECT ` + prefixedCOAColumns("c") + `, COALESCE(SUM(je.debit), 0), COALESCE(SUM(je.credit), 0)
		FROM coas c
		JOIN journal_entries je ON je.coa_id = c.coa_id
		JOIN transactions t ON t.transaction_id = je.transaction_id
		WHERE c.gas_station_id = $1
		  AND c.category = ANY($2)
		  AND t.approval_status = 'APPROVED'
		  AND t.transaction_type <> 'CLOSING'
		  AND t.transaction_date >= $3 AND t.transaction_date < $4
		GROUP BY c.coa_id
		ORDER BY c.category, c.name;
	`
	return r.queryPeriodActivity(ctx, query, gasStationID, cats, from, to)
}

// PeriodActivityAllCOAs is PeriodCategoryActivity without a category filter.
func (r *PgxCOARepository) PeriodActivityAllCOAs(ctx context.Context, gasStationID string, from, to time.Time) ([]domain.COAPeriodActivity, error) {
	query := `
		SELECT ` + prefixedCOAColumns("c") + `, COALESCE(SUM(je.debit), 0), COALESCE(SUM(je.credit), 0)
		FROM coas c
		JOIN journal_entries je ON je.coa_id = c.coa_id
		JOIN transactions t ON t.transaction_id = je.transaction_id
		WHERE c.gas_station_id = $1
		  AND t.approval_status = 'APPROVED'
		  AND t.transaction_date >= $2 AND t.transaction_date < $3
		GROUP BY c.coa_id
		ORDER BY c.category, c.name;
	`
	return r.queryPeriodActivity(ctx, query, gasStationID, from, to)
}

func (r *PgxCOARepository) queryPeriodActivity(ctx context.Context, query string, args ...any) ([]domain.COAPeriodActivity, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query period activity: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.COAPeriodActivity, error) {
		var act domain.COAPeriodActivity
		err := row.Scan(
			&act.COA.COAID,
			&act.COA.GasStationID,
			&act.COA.Name,
			&act.COA.Category,
			&act.COA.Description,
			&act.COA.IsActive,
			&act.COA.CreatedAt,
			&act.COA.CreatedBy,
			&act.COA.LastUpdatedAt,
			&act.COA.LastUpdatedBy,
			&act.DebitSum,
			&act.CreditSum,
		)
		return act, err
	})
}

// HasJournalEntries reports whether any journal entry references the COA.
func (r *PgxCOARepository) HasJournalEntries(ctx context.Context, coaID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE coa_id = $1);`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, coaID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check entries for COA %s: %w", coaID, err)
	}
	return exists, nil
}

// SaveCOA inserts a new COA.
func (r *PgxCOARepository) SaveCOA(ctx context.Context, coa domain.COA) error {
	query := `
		INSERT INTO coas (coa_id, gas_station_id, name, category, description, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		coa.COAID,
		coa.GasStationID,
		coa.Name,
		coa.Category,
		coa.Description,
		coa.IsActive,
		coa.CreatedAt,
		coa.CreatedBy,
		coa.LastUpdatedAt,
		coa.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save COA %s: %w", coa.COAID, err)
	}
	return nil
}

// UpdateCOA updates mutable COA fields.
func (r *PgxCOARepository) UpdateCOA(ctx context.Context, coa domain.COA) error {
	query := `
		UPDATE coas
		SET name = $2, category = $3, description = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE coa_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		coa.COAID,
		coa.Name,
		coa.Category,
		coa.Description,
		coa.IsActive,
		coa.LastUpdatedAt,
		coa.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update COA %s: %w", coa.COAID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// prefixedCOAColumns returns the COA column list qualified with a table
// alias, for joined queries.
func prefixedCOAColumns(alias string) string {
	return alias + `.coa_id, ` + alias + `.gas_station_id, ` + alias + `.name, ` + alias + `.category, ` + alias + `.description, ` + alias + `.is_active, ` + alias + `.created_at, ` + alias + `.created_by, ` + alias + `.last_updated_at, ` + alias + `.last_updated_by`
}
