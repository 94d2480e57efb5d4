package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PettaPuang/nozzle.website-sub005/internal/apperrors"
	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	portsrepo "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/repositories"
)

type PgxGasStationRepository struct {
	BaseRepository
}

// newPgxGasStationRepository creates a new repository for station data.
func newPgxGasStationRepository(pool *pgxpool.Pool) portsrepo.GasStationRepositoryFacade {
	return &PgxGasStationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.GasStationRepositoryFacade = (*PgxGasStationRepository)(nil)

const stationColumns = `gas_station_id, name, code, address, status, created_at, created_by, last_updated_at, last_updated_by`

func scanStation(row pgx.Row) (domain.GasStation, error) {
	var s domain.GasStation
	err := row.Scan(
		&s.GasStationID,
		&s.Name,
		&s.Code,
		&s.Address,
		&s.Status,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

// FindStationByID retrieves a specific station.
func (r *PgxGasStationRepository) FindStationByID(ctx context.Context, gasStationID string) (*domain.GasStation, error) {
	query := `SELECT ` + stationColumns + ` FROM gas_stations WHERE gas_station_id = $1;`
	s, err := scanStation(r.Pool.QueryRow(ctx, query, gasStationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find station %s: %w", gasStationID, err)
	}
	return &s, nil
}

// ListStations retrieves all stations.
func (r *PgxGasStationRepository) ListStations(ctx context.Context) ([]domain.GasStation, error) {
	return r.listStations(ctx, `SELECT `+stationColumns+` FROM gas_stations ORDER BY code;`)
}

// ListActiveStations retrieves stations with ACTIVE status.
func (r *PgxGasStationRepository) ListActiveStations(ctx context.Context) ([]domain.GasStation, error) {
	return r.listStations(ctx, `SELECT `+stationColumns+` FROM gas_stations WHERE status = 'ACTIVE' ORDER BY code;`)
}

func (r *PgxGasStationRepository) listStations(ctx context.Context, query string) ([]domain.GasStation, error) {
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.GasStation, error) {
		return scanStation(row)
	})
}

// SaveStation inserts a new station.
func (r *PgxGasStationRepository) SaveStation(ctx context.Context, station domain.GasStation) error {
	query := `
		INSERT INTO gas_stations (` + stationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		station.GasStationID,
		station.Name,
		station.Code,
		station.Address,
		station.Status,
		station.CreatedAt,
		station.CreatedBy,
		station.LastUpdatedAt,
		station.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save station %s: %w", station.GasStationID, err)
	}
	return nil
}
