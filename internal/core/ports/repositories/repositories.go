package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor
// cleaner.
type RepositoryProvider struct {
	COARepo         COARepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	UnloadRepo      UnloadRepositoryFacade
	TankRepo        TankRepositoryFacade
	StationRepo     GasStationRepositoryFacade
	UserRepo        UserRepositoryFacade
}
