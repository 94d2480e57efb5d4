package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all PostgreSQL repositories against one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		COARepo:         newPgxCOARepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		UnloadRepo:      newPgxUnloadRepository(dbPool),
		TankRepo:        newPgxTankRepository(dbPool),
		StationRepo:     newPgxGasStationRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
