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

type PgxTankRepository struct {
	BaseRepository
}

// newPgxTankRepository creates a new repository for tank data.
func newPgxTankRepository(pool *pgxpool.Pool) portsrepo.TankRepositoryFacade {
	return &PgxTankRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TankRepositoryFacade = (*PgxTankRepository)(nil)

const tankColumns = `tank_id, gas_station_id, product_id, name, capacity, current_stock, sales_volume, created_at, created_by, last_updated_at, last_updated_by`

func scanTank(row pgx.Row) (domain.Tank, error) {
	var t domain.Tank
	err := row.Scan(
		&t.TankID,
		&t.GasStationID,
		&t.ProductID,
		&t.Name,
		&t.Capacity,
		&t.CurrentStock,
		&t.SalesVolume,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	return t, err
}

// FindTankByID retrieves a specific tank.
func (r *PgxTankRepository) FindTankByID(ctx context.Context, tankID string) (*domain.Tank, error) {
	query := `SELECT ` + tankColumns + ` FROM tanks WHERE tank_id = $1;`
	t, err := scanTank(r.Pool.QueryRow(ctx, query, tankID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tank %s: %w", tankID, err)
	}
	return &t, nil
}

// ListTanksByStation retrieves all tanks of a station.
func (r *PgxTankRepository) ListTanksByStation(ctx context.Context, gasStationID string) ([]domain.Tank, error) {
	query := `SELECT ` + tankColumns + ` FROM tanks WHERE gas_station_id = $1 ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, gasStationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tanks for station %s: %w", gasStationID, err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Tank, error) {
		return scanTank(row)
	})
}

// SaveTank inserts a new tank.
func (r *PgxTankRepository) SaveTank(ctx context.Context, tank domain.Tank) error {
	query := `
		INSERT INTO tanks (` + tankColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		tank.TankID,
		tank.GasStationID,
		tank.ProductID,
		tank.Name,
		tank.Capacity,
		tank.CurrentStock,
		tank.SalesVolume,
		tank.CreatedAt,
		tank.CreatedBy,
		tank.LastUpdatedAt,
		tank.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save tank %s: %w", tank.TankID, err)
	}
	return nil
}

// RecomputeTankStock recalculates the cached stock from approved unloads
// minus sales volume, clamped to [0, capacity], and returns the new value.
func (r *PgxTankRepository) RecomputeTankStock(ctx context.Context, tankID string) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	if err := recomputeTankStockInTx(ctx, tx, tankID); err != nil {
		return 0, err
	}

	var stock int64
	if err := tx.QueryRow(ctx, `SELECT current_stock FROM tanks WHERE tank_id = $1;`, tankID).Scan(&stock); err != nil {
		return 0, fmt.Errorf("failed to read recomputed stock for tank %s: %w", tankID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return stock, nil
}

// recomputeTankStockInTx refreshes one tank's cached stock inside an open
// transaction. The clamp to [0, capacity] mirrors domain.Tank.ClampStock.
func recomputeTankStockInTx(ctx context.Context, tx pgx.Tx, tankID string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE tanks t
		SET current_stock = LEAST(t.capacity, GREATEST(0, (
			SELECT COALESCE(SUM(u.delivered_volume), 0) FROM unloads u
			WHERE u.tank_id = t.tank_id AND u.status = 'APPROVED'
		) - t.sales_volume))
		WHERE t.tank_id = $1;
	`, tankID)
	if err != nil {
		return fmt.Errorf("failed to recompute stock for tank %s: %w", tankID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
