package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/PettaPuang/nozzle.website-sub005/internal/apperrors"
	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	portssvc "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/services"
	"github.com/PettaPuang/nozzle.website-sub005/internal/core/services"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	mockCOARepo *MockCOARepository
	service     portssvc.TransactionSvcFacade
	ctx         context.Context

	gasStationID string
	finance      domain.Actor
	manager      domain.Actor
	operator     domain.Actor
	admin        domain.Actor
	cashCOA      domain.COA
	revenueCOA   domain.COA
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCOARepo = new(MockCOARepository)
	journalSvc := services.NewJournalService(suite.mockCOARepo)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, journalSvc)
	suite.ctx = context.Background()

	suite.gasStationID = uuid.NewString()
	suite.finance = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleFinance, GasStationID: &suite.gasStationID}
	suite.manager = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleManager, GasStationID: &suite.gasStationID}
	suite.operator = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOperator, GasStationID: &suite.gasStationID}
	suite.admin = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdministrator}
	suite.cashCOA = domain.COA{
		COAID:        uuid.NewString(),
		GasStationID: suite.gasStationID,
		Name:         "Kas",
		Category:     domain.Asset,
		IsActive:     true,
	}
	suite.revenueCOA = domain.COA{
		COAID:        uuid.NewString(),
		GasStationID: suite.gasStationID,
		Name:         "Pendapatan Penjualan BBM",
		Category:     domain.Revenue,
		IsActive:     true,
	}
}

func (suite *TransactionServiceTestSuite) balancedEntries(amount int64) []dto.JournalEntryInput {
	return []dto.JournalEntryInput{
		{COAID: &suite.cashCOA.COAID, Debit: amount},
		{COAID: &suite.revenueCOA.COAID, Credit: amount},
	}
}

func (suite *TransactionServiceTestSuite) expectCOALookup() {
	suite.mockCOARepo.On("FindCOAByIDs", suite.ctx, mock.AnythingOfType("[]string")).
		Return(map[string]domain.COA{
			suite.cashCOA.COAID:    suite.cashCOA,
			suite.revenueCOA.COAID: suite.revenueCOA,
		}, nil).Once()
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CashPending() {
	req := dto.CreateTransactionRequest{
		TransactionType: domain.Cash,
		Date:            time.Now().UTC(),
		Description:     "Setoran kas harian",
		Entries:         suite.balancedEntries(500_000),
	}
	suite.expectCOALookup()
	suite.mockTxnRepo.On("SaveTransactionWithEntries", suite.ctx,
		mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("[]domain.JournalEntry"),
		mock.Anything).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.gasStationID, req, suite.finance)

	suite.NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.Pending, txn.ApprovalStatus)
	suite.Equal(domain.RoleFinance, txn.CreatedByRole)
	suite.Nil(txn.ApproverID)
	suite.Len(txn.Entries, 2)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RoleForbidden() {
	req := dto.CreateTransactionRequest{
		TransactionType: domain.Cash,
		Date:            time.Now().UTC(),
		Description:     "Setoran kas harian",
		Entries:         suite.balancedEntries(500_000),
	}

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.gasStationID, req, suite.operator)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactionWithEntries")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ClosingRefused() {
	req := dto.CreateTransactionRequest{
		TransactionType: domain.Closing,
		Date:            time.Now().UTC(),
		Description:     "Tutup buku manual",
		Entries:         suite.balancedEntries(100_000),
	}

	_, err := suite.service.CreateTransaction(suite.ctx, suite.gasStationID, req, suite.admin)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_PurchaseRequiresVolumeAndProduct() {
	owner := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOwner, GasStationID: &suite.gasStationID}
	req := dto.CreateTransactionRequest{
		TransactionType: domain.PurchaseBBM,
		Date:            time.Now().UTC(),
		Description:     "Pembelian Pertalite",
		Entries:         suite.balancedEntries(80_000_000),
	}

	_, err := suite.service.CreateTransaction(suite.ctx, suite.gasStationID, req, owner)
	suite.ErrorIs(err, apperrors.ErrValidation)

	volume := int64(8000)
	req.PurchaseVolume = &volume
	_, err = suite.service.CreateTransaction(suite.ctx, suite.gasStationID, req, owner)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_PurchaseInitializesDeliveredVolume() {
	owner := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOwner, GasStationID: &suite.gasStationID}
	volume := int64(8000)
	product := "PERTALITE"
	req := dto.CreateTransactionRequest{
		TransactionType: domain.PurchaseBBM,
		Date:            time.Now().UTC(),
		Description:     "Pembelian Pertalite",
		Entries:         suite.balancedEntries(80_000_000),
		PurchaseVolume:  &volume,
		ProductID:       &product,
	}
	suite.expectCOALookup()
	suite.mockTxnRepo.On("SaveTransactionWithEntries", suite.ctx,
		mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("[]domain.JournalEntry"),
		mock.Anything).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.gasStationID, req, owner)

	suite.NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.Pending, txn.ApprovalStatus)
	suite.Require().NotNil(txn.DeliveredVolume)
	suite.Equal(int64(0), *txn.DeliveredVolume)
	suite.Equal(volume, *txn.PurchaseVolume)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AdminAdjustmentAutoApproved() {
	req := dto.CreateTransactionRequest{
		TransactionType: domain.Adjustment,
		Date:            time.Now().UTC(),
		Description:     "Koreksi saldo kas",
		Entries:         suite.balancedEntries(25_000),
	}
	suite.expectCOALookup()
	suite.mockTxnRepo.On("SaveTransactionWithEntries", suite.ctx,
		mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("[]domain.JournalEntry"),
		mock.Anything).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.gasStationID, req, suite.admin)

	suite.NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.Approved, txn.ApprovalStatus)
	suite.Require().NotNil(txn.ApproverID)
	suite.Equal(suite.admin.UserID, *txn.ApproverID)
	suite.NotNil(txn.ApprovedAt)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ManagerAdjustmentStaysPending() {
	req := dto.CreateTransactionRequest{
		TransactionType: domain.Adjustment,
		Date:            time.Now().UTC(),
		Description:     "Koreksi saldo kas",
		Entries:         suite.balancedEntries(25_000),
	}
	suite.expectCOALookup()
	suite.mockTxnRepo.On("SaveTransactionWithEntries", suite.ctx,
		mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("[]domain.JournalEntry"),
		mock.Anything).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.gasStationID, req, suite.manager)

	suite.NoError(err)
	suite.Equal(domain.Pending, txn.ApprovalStatus)
}

func (suite *TransactionServiceTestSuite) pendingCashTransaction(createdBy string) *domain.Transaction {
	return &domain.Transaction{
		TransactionID:   uuid.NewString(),
		GasStationID:    suite.gasStationID,
		TransactionType: domain.Cash,
		ApprovalStatus:  domain.Pending,
		CreatedByRole:   domain.RoleFinance,
		AuditFields:     domain.AuditFields{CreatedBy: createdBy},
	}
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_Success() {
	txn := suite.pendingCashTransaction(suite.finance.UserID)
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("FinalizeTransaction", suite.ctx, txn.TransactionID, domain.Approved,
		suite.manager.UserID, "", mock.AnythingOfType("time.Time")).Return(nil).Once()

	approved, err := suite.service.ApproveTransaction(suite.ctx, suite.gasStationID, txn.TransactionID, suite.manager)

	suite.NoError(err)
	suite.Require().NotNil(approved)
	suite.Equal(domain.Approved, approved.ApprovalStatus)
	suite.Require().NotNil(approved.ApproverID)
	suite.Equal(suite.manager.UserID, *approved.ApproverID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_SelfApproval() {
	admin2 := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdministrator}
	txn := suite.pendingCashTransaction(admin2.UserID)
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.ApproveTransaction(suite.ctx, suite.gasStationID, txn.TransactionID, admin2)

	suite.ErrorIs(err, apperrors.ErrSelfApproval)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FinalizeTransaction")
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_UnauthorizedRole() {
	txn := suite.pendingCashTransaction(suite.finance.UserID)
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.ApproveTransaction(suite.ctx, suite.gasStationID, txn.TransactionID, suite.operator)

	suite.ErrorIs(err, apperrors.ErrUnauthorizedApprover)
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_AlreadyFinalized() {
	txn := suite.pendingCashTransaction(suite.finance.UserID)
	txn.ApprovalStatus = domain.Rejected
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.ApproveTransaction(suite.ctx, suite.gasStationID, txn.TransactionID, suite.manager)

	suite.ErrorIs(err, apperrors.ErrAlreadyFinalized)
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_WrongStation() {
	txn := suite.pendingCashTransaction(suite.finance.UserID)
	txn.GasStationID = uuid.NewString()
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.ApproveTransaction(suite.ctx, suite.gasStationID, txn.TransactionID, suite.manager)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_ConcurrentLoser() {
	txn := suite.pendingCashTransaction(suite.finance.UserID)
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("FinalizeTransaction", suite.ctx, txn.TransactionID, domain.Approved,
		suite.manager.UserID, "", mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrAlreadyFinalized).Once()

	_, err := suite.service.ApproveTransaction(suite.ctx, suite.gasStationID, txn.TransactionID, suite.manager)

	suite.ErrorIs(err, apperrors.ErrAlreadyFinalized)
}

func (suite *TransactionServiceTestSuite) TestRejectTransaction_RecordsNotes() {
	txn := suite.pendingCashTransaction(suite.finance.UserID)
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("FinalizeTransaction", suite.ctx, txn.TransactionID, domain.Rejected,
		suite.manager.UserID, "Bukti setoran tidak lengkap", mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	rejected, err := suite.service.RejectTransaction(suite.ctx, suite.gasStationID, txn.TransactionID, suite.manager, "Bukti setoran tidak lengkap")

	suite.NoError(err)
	suite.Equal(domain.Rejected, rejected.ApprovalStatus)
	suite.Equal("Bukti setoran tidak lengkap", rejected.ApprovalNotes)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
