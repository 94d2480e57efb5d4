package services

import (
	portsrepo "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/repositories"
	portssvc "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/services"
	"github.com/PettaPuang/nozzle.website-sub005/pkg/config"
)

// Container holds all the services and manages their dependencies.
type Container struct {
	Auth        portssvc.AuthSvcFacade
	COA         portssvc.COASvcFacade
	Journal     portssvc.JournalSvcFacade
	Transaction portssvc.TransactionSvcFacade
	Unload      portssvc.UnloadSvcFacade
	Closing     portssvc.ClosingSvcFacade
	Reporting   portssvc.ReportingSvcFacade
	GasStation  portssvc.GasStationSvcFacade
	Tank        portssvc.TankSvcFacade
}

// NewContainer creates a new service container with properly initialized
// dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *Container {
	container := &Container{}

	container.Auth = NewAuthService(repos.UserRepo, cfg.JWTSecret, cfg.JWTExpiry, cfg.JWTIssuer)
	container.COA = NewCOAService(repos.COARepo, cfg.RetainedEarningsName)
	container.Journal = NewJournalService(repos.COARepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, container.Journal)
	container.Unload = NewUnloadService(repos.UnloadRepo, repos.TransactionRepo, repos.TankRepo)
	container.Closing = NewClosingService(repos.TransactionRepo, repos.COARepo, repos.StationRepo, container.COA, container.Journal)
	container.Reporting = NewReportingService(repos.COARepo)
	container.GasStation = NewGasStationService(repos.StationRepo)
	container.Tank = NewTankService(repos.TankRepo, repos.StationRepo)

	return container
}
