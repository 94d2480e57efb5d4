package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/PettaPuang/nozzle.website-sub005/internal/apperrors"
	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	portsrepo "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/repositories"
	portssvc "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/services"
	"github.com/PettaPuang/nozzle.website-sub005/internal/core/services"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
	"github.com/PettaPuang/nozzle.website-sub005/internal/middleware"
	"github.com/PettaPuang/nozzle.website-sub005/internal/utils"
)

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.AuthSvcFacade
	ctx          context.Context

	jwtSecret string
	user      *domain.User
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.jwtSecret = "test-secret"
	suite.service = services.NewAuthService(suite.mockUserRepo, suite.jwtSecret, time.Hour, "spbu-backend")
	suite.ctx = context.Background()

	hash, err := utils.HashPassword("kata-sandi-rahasia")
	suite.Require().NoError(err)
	gasStationID := uuid.NewString()
	suite.user = &domain.User{
		UserID:       uuid.NewString(),
		Username:     "budi.finance",
		Name:         "Budi",
		PasswordHash: hash,
		Role:         domain.RoleFinance,
		GasStationID: &gasStationID,
		IsActive:     true,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "budi.finance").Return(suite.user, nil).Once()

	resp, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "budi.finance", Password: "kata-sandi-rahasia"})

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(suite.user.UserID, resp.User.UserID)
	suite.Equal(domain.RoleFinance, resp.User.Role)

	claims := &middleware.AccessClaims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(suite.jwtSecret), nil
	})
	suite.NoError(err)
	suite.True(token.Valid)
	suite.Equal(suite.user.UserID, claims.Subject)
	suite.Equal(domain.RoleFinance, claims.Role)
	suite.Require().NotNil(claims.GasStationID)
	suite.Equal(*suite.user.GasStationID, *claims.GasStationID)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "budi.finance").Return(suite.user, nil).Once()

	resp, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "budi.finance", Password: "salah"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUsername() {
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "tidak.ada").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "tidak.ada", Password: "apapun"})

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveUser() {
	suite.user.IsActive = false
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "budi.finance").Return(suite.user, nil).Once()

	_, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "budi.finance", Password: "kata-sandi-rahasia"})

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
