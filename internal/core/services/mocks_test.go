package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	portsrepo "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/repositories"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

// --- Mock COARepository ---

type MockCOARepository struct {
	mock.Mock
}

var _ portsrepo.COARepositoryFacade = (*MockCOARepository)(nil)

func (m *MockCOARepository) FindCOAByID(ctx context.Context, coaID string) (*domain.COA, error) {
	args := m.Called(ctx, coaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.COA), args.Error(1)
}

func (m *MockCOARepository) FindCOAByIDs(ctx context.Context, coaIDs []string) (map[string]domain.COA, error) {
	args := m.Called(ctx, coaIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.COA), args.Error(1)
}

func (m *MockCOARepository) FindCOAByName(ctx context.Context, gasStationID, name string, category domain.COACategory) (*domain.COA, error) {
	args := m.Called(ctx, gasStationID, name, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.COA), args.Error(1)
}

func (m *MockCOARepository) ListCOAByStation(ctx context.Context, gasStationID string, includeInactive bool) ([]domain.COA, error) {
	args := m.Called(ctx, gasStationID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.COA), args.Error(1)
}

func (m *MockCOARepository) SumEntriesByCOA(ctx context.Context, coaID string) (int64, int64, error) {
	args := m.Called(ctx, coaID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockCOARepository) PeriodCategoryActivity(ctx context.Context, gasStationID string, categories []domain.COACategory, from, to time.Time) ([]domain.COAPeriodActivity, error) {
	args := m.Called(ctx, gasStationID, categories, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.COAPeriodActivity), args.Error(1)
}

func (m *MockCOARepository) PeriodActivityAllCOAs(ctx context.Context, gasStationID string, from, to time.Time) ([]domain.COAPeriodActivity, error) {
	args := m.Called(ctx, gasStationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.COAPeriodActivity), args.Error(1)
}

func (m *MockCOARepository) HasJournalEntries(ctx context.Context, coaID string) (bool, error) {
	args := m.Called(ctx, coaID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCOARepository) SaveCOA(ctx context.Context, coa domain.COA) error {
	args := m.Called(ctx, coa)
	return args.Error(0)
}

func (m *MockCOARepository) UpdateCOA(ctx context.Context, coa domain.COA) error {
	args := m.Called(ctx, coa)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByStation(ctx context.Context, gasStationID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	args := m.Called(ctx, gasStationID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) HasApprovedClosing(ctx context.Context, gasStationID string, year, month int) (bool, error) {
	args := m.Called(ctx, gasStationID, year, month)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransactionWithEntries(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry, newCOAs []domain.COA) error {
	args := m.Called(ctx, txn, entries, newCOAs)
	return args.Error(0)
}

func (m *MockTransactionRepository) FinalizeTransaction(ctx context.Context, transactionID string, status domain.ApprovalStatus, approverID string, notes string, at time.Time) error {
	args := m.Called(ctx, transactionID, status, approverID, notes, at)
	return args.Error(0)
}

// --- Mock UnloadRepository ---

type MockUnloadRepository struct {
	mock.Mock
}

var _ portsrepo.UnloadRepositoryFacade = (*MockUnloadRepository)(nil)

func (m *MockUnloadRepository) FindUnloadByID(ctx context.Context, unloadID string) (*domain.Unload, error) {
	args := m.Called(ctx, unloadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unload), args.Error(1)
}

func (m *MockUnloadRepository) ListUnloadsByPurchase(ctx context.Context, purchaseTransactionID string) ([]domain.Unload, error) {
	args := m.Called(ctx, purchaseTransactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Unload), args.Error(1)
}

func (m *MockUnloadRepository) SumApprovedVolume(ctx context.Context, purchaseTransactionID string) (int64, error) {
	args := m.Called(ctx, purchaseTransactionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUnloadRepository) SaveUnload(ctx context.Context, unload domain.Unload) error {
	args := m.Called(ctx, unload)
	return args.Error(0)
}

func (m *MockUnloadRepository) FinalizeUnload(ctx context.Context, unloadID string, status domain.ApprovalStatus, managerID string, at time.Time) (*domain.Unload, int64, error) {
	args := m.Called(ctx, unloadID, status, managerID, at)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(*domain.Unload), args.Get(1).(int64), args.Error(2)
}

func (m *MockUnloadRepository) RepairDeliveredVolumes(ctx context.Context, gasStationID *string) (int, error) {
	args := m.Called(ctx, gasStationID)
	return args.Int(0), args.Error(1)
}

// --- Mock TankRepository ---

type MockTankRepository struct {
	mock.Mock
}

var _ portsrepo.TankRepositoryFacade = (*MockTankRepository)(nil)

func (m *MockTankRepository) FindTankByID(ctx context.Context, tankID string) (*domain.Tank, error) {
	args := m.Called(ctx, tankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tank), args.Error(1)
}

func (m *MockTankRepository) ListTanksByStation(ctx context.Context, gasStationID string) ([]domain.Tank, error) {
	args := m.Called(ctx, gasStationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tank), args.Error(1)
}

func (m *MockTankRepository) SaveTank(ctx context.Context, tank domain.Tank) error {
	args := m.Called(ctx, tank)
	return args.Error(0)
}

func (m *MockTankRepository) RecomputeTankStock(ctx context.Context, tankID string) (int64, error) {
	args := m.Called(ctx, tankID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock GasStationRepository ---

type MockGasStationRepository struct {
	mock.Mock
}

var _ portsrepo.GasStationRepositoryFacade = (*MockGasStationRepository)(nil)

func (m *MockGasStationRepository) FindStationByID(ctx context.Context, gasStationID string) (*domain.GasStation, error) {
	args := m.Called(ctx, gasStationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GasStation), args.Error(1)
}

func (m *MockGasStationRepository) ListStations(ctx context.Context) ([]domain.GasStation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GasStation), args.Error(1)
}

func (m *MockGasStationRepository) ListActiveStations(ctx context.Context) ([]domain.GasStation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GasStation), args.Error(1)
}

func (m *MockGasStationRepository) SaveStation(ctx context.Context, station domain.GasStation) error {
	args := m.Called(ctx, station)
	return args.Error(0)
}
