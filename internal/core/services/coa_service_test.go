package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/PettaPuang/nozzle.website-sub005/internal/apperrors"
	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	portssvc "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/services"
	"github.com/PettaPuang/nozzle.website-sub005/internal/core/services"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

type COAServiceTestSuite struct {
	suite.Suite
	mockCOARepo *MockCOARepository
	service     portssvc.COASvcFacade
	ctx         context.Context

	gasStationID string
	userID       string
	cashCOA      domain.COA
}

func (suite *COAServiceTestSuite) SetupTest() {
	suite.mockCOARepo = new(MockCOARepository)
	suite.service = services.NewCOAService(suite.mockCOARepo, "Laba Ditahan")
	suite.ctx = context.Background()

	suite.gasStationID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.cashCOA = domain.COA{
		COAID:        uuid.NewString(),
		GasStationID: suite.gasStationID,
		Name:         "Kas",
		Category:     domain.Asset,
		IsActive:     true,
	}
}

func (suite *COAServiceTestSuite) TestCreateCOA_Success() {
	req := dto.CreateCOARequest{Name: "Beban Gaji", Category: domain.Expense}
	suite.mockCOARepo.On("SaveCOA", suite.ctx, mock.AnythingOfType("domain.COA")).Return(nil).Once()

	coa, err := suite.service.CreateCOA(suite.ctx, suite.gasStationID, req, suite.userID)

	suite.NoError(err)
	suite.Require().NotNil(coa)
	suite.Equal("Beban Gaji", coa.Name)
	suite.Equal(domain.Expense, coa.Category)
	suite.Equal(suite.gasStationID, coa.GasStationID)
	suite.True(coa.IsActive)
	suite.Equal(suite.userID, coa.CreatedBy)
}

func (suite *COAServiceTestSuite) TestCreateCOA_InvalidCategory() {
	req := dto.CreateCOARequest{Name: "Beban Gaji", Category: "BOGUS"}

	_, err := suite.service.CreateCOA(suite.ctx, suite.gasStationID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCOARepo.AssertNotCalled(suite.T(), "SaveCOA")
}

func (suite *COAServiceTestSuite) TestGetCOA_DerivesBalance() {
	suite.mockCOARepo.On("FindCOAByID", suite.ctx, suite.cashCOA.COAID).Return(&suite.cashCOA, nil).Twice()
	suite.mockCOARepo.On("SumEntriesByCOA", suite.ctx, suite.cashCOA.COAID).
		Return(int64(1_000_000), int64(400_000), nil).Once()

	coa, balance, err := suite.service.GetCOA(suite.ctx, suite.gasStationID, suite.cashCOA.COAID)

	suite.NoError(err)
	suite.Equal(suite.cashCOA.COAID, coa.COAID)
	suite.Equal(int64(600_000), balance)
}

func (suite *COAServiceTestSuite) TestGetCOA_WrongStation() {
	suite.mockCOARepo.On("FindCOAByID", suite.ctx, suite.cashCOA.COAID).Return(&suite.cashCOA, nil).Once()

	_, _, err := suite.service.GetCOA(suite.ctx, uuid.NewString(), suite.cashCOA.COAID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCOARepo.AssertNotCalled(suite.T(), "SumEntriesByCOA")
}

func (suite *COAServiceTestSuite) TestUpdateCOA_CategoryImmutableOnceReferenced() {
	newCategory := domain.Expense
	req := dto.UpdateCOARequest{Category: &newCategory}
	suite.mockCOARepo.On("FindCOAByID", suite.ctx, suite.cashCOA.COAID).Return(&suite.cashCOA, nil).Once()
	suite.mockCOARepo.On("HasJournalEntries", suite.ctx, suite.cashCOA.COAID).Return(true, nil).Once()

	_, err := suite.service.UpdateCOA(suite.ctx, suite.gasStationID, suite.cashCOA.COAID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrImmutableCategory)
	suite.mockCOARepo.AssertNotCalled(suite.T(), "UpdateCOA")
}

func (suite *COAServiceTestSuite) TestUpdateCOA_CategoryChangeWhileUnreferenced() {
	newCategory := domain.Expense
	req := dto.UpdateCOARequest{Category: &newCategory}
	suite.mockCOARepo.On("FindCOAByID", suite.ctx, suite.cashCOA.COAID).Return(&suite.cashCOA, nil).Once()
	suite.mockCOARepo.On("HasJournalEntries", suite.ctx, suite.cashCOA.COAID).Return(false, nil).Once()
	suite.mockCOARepo.On("UpdateCOA", suite.ctx, mock.AnythingOfType("domain.COA")).Return(nil).Once()

	coa, err := suite.service.UpdateCOA(suite.ctx, suite.gasStationID, suite.cashCOA.COAID, req, suite.userID)

	suite.NoError(err)
	suite.Equal(domain.Expense, coa.Category)
}

func (suite *COAServiceTestSuite) TestUpdateCOA_NoChangesSkipsWrite() {
	req := dto.UpdateCOARequest{}
	suite.mockCOARepo.On("FindCOAByID", suite.ctx, suite.cashCOA.COAID).Return(&suite.cashCOA, nil).Once()

	coa, err := suite.service.UpdateCOA(suite.ctx, suite.gasStationID, suite.cashCOA.COAID, req, suite.userID)

	suite.NoError(err)
	suite.Equal(suite.cashCOA.Name, coa.Name)
	suite.mockCOARepo.AssertNotCalled(suite.T(), "UpdateCOA")
}

func (suite *COAServiceTestSuite) TestEnsureRetainedEarnings_Existing() {
	retained := domain.COA{
		COAID:        uuid.NewString(),
		GasStationID: suite.gasStationID,
		Name:         "Laba Ditahan",
		Category:     domain.Equity,
		IsActive:     true,
	}
	suite.mockCOARepo.On("FindCOAByName", suite.ctx, suite.gasStationID, "Laba Ditahan", domain.Equity).
		Return(&retained, nil).Once()

	coa, err := suite.service.EnsureRetainedEarnings(suite.ctx, suite.gasStationID)

	suite.NoError(err)
	suite.Equal(retained.COAID, coa.COAID)
	suite.mockCOARepo.AssertNotCalled(suite.T(), "SaveCOA")
}

func (suite *COAServiceTestSuite) TestEnsureRetainedEarnings_CreatesWhenMissing() {
	suite.mockCOARepo.On("FindCOAByName", suite.ctx, suite.gasStationID, "Laba Ditahan", domain.Equity).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCOARepo.On("SaveCOA", suite.ctx, mock.AnythingOfType("domain.COA")).Return(nil).Once()

	coa, err := suite.service.EnsureRetainedEarnings(suite.ctx, suite.gasStationID)

	suite.NoError(err)
	suite.Require().NotNil(coa)
	suite.Equal("Laba Ditahan", coa.Name)
	suite.Equal(domain.Equity, coa.Category)
	suite.Equal(domain.SystemUserID, coa.CreatedBy)
}

func (suite *COAServiceTestSuite) TestEnsureRetainedEarnings_LosesCreationRace() {
	winner := domain.COA{
		COAID:        uuid.NewString(),
		GasStationID: suite.gasStationID,
		Name:         "Laba Ditahan",
		Category:     domain.Equity,
		IsActive:     true,
	}
	suite.mockCOARepo.On("FindCOAByName", suite.ctx, suite.gasStationID, "Laba Ditahan", domain.Equity).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCOARepo.On("SaveCOA", suite.ctx, mock.AnythingOfType("domain.COA")).
		Return(apperrors.ErrDuplicate).Once()
	suite.mockCOARepo.On("FindCOAByName", suite.ctx, suite.gasStationID, "Laba Ditahan", domain.Equity).
		Return(&winner, nil).Once()

	coa, err := suite.service.EnsureRetainedEarnings(suite.ctx, suite.gasStationID)

	suite.NoError(err)
	suite.Equal(winner.COAID, coa.COAID)
}

func TestCOAServiceTestSuite(t *testing.T) {
	suite.Run(t, new(COAServiceTestSuite))
}
