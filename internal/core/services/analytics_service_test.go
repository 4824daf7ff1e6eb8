package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/expenza/claims_management_app/internal/apperrors"
	"github.com/expenza/claims_management_app/internal/core/domain"
	portssvc "github.com/expenza/claims_management_app/internal/core/ports/services"
	"github.com/expenza/claims_management_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockClaimRepo     *MockClaimRepository
	mockDimensionRepo *MockDimensionRepository
	service           portssvc.AnalyticsSvcFacade
	fixedNow          time.Time
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.mockClaimRepo = new(MockClaimRepository)
	suite.mockDimensionRepo = new(MockDimensionRepository)
	suite.fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewAnalyticsService(
		suite.mockClaimRepo,
		suite.mockDimensionRepo,
		services.WithAnalyticsClock(func() time.Time { return suite.fixedNow }),
	)
}

func (suite *AnalyticsServiceTestSuite) TestGetUserAnalytics_Success() {
	ctx := context.Background()
	claims := []domain.Claim{
		{
			ClaimID:           "claim-1",
			Amount:            decimal.NewFromInt(100),
			Type:              1,
			Status:            domain.StatusApprovedFinal,
			UserID:            "user-1",
			ClaimCreationDate: suite.fixedNow.AddDate(0, 0, -1),
			ClaimDate:         suite.fixedNow.AddDate(0, 0, -1),
		},
	}

	suite.mockClaimRepo.On("FindClaims", ctx, domain.ClaimFilter{UserID: "user-1"}).Return(claims, nil).Once()
	suite.mockDimensionRepo.On("FindClaimTypes", ctx).Return(testTypeDims, nil).Once()

	analytics, err := suite.service.GetUserAnalytics(ctx, "user-1", "")

	suite.Require().NoError(err)
	suite.Equal(1, analytics.Summary.TotalClaims)
	suite.Equal(100, analytics.Summary.ApprovalRate)
	suite.Require().NotEmpty(analytics.ClaimsByType)
	suite.Equal("Travel", analytics.ClaimsByType[0].Name)
	suite.mockClaimRepo.AssertExpectations(suite.T())
	suite.mockDimensionRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestGetUserAnalytics_TenantScoped() {
	ctx := context.Background()

	suite.mockClaimRepo.On("FindClaims", ctx, domain.ClaimFilter{UserID: "user-1", TenantID: "tenant-a"}).
		Return([]domain.Claim{}, nil).Once()
	suite.mockDimensionRepo.On("FindClaimTypes", ctx).Return(testTypeDims, nil).Once()

	_, err := suite.service.GetUserAnalytics(ctx, "user-1", "tenant-a")

	suite.Require().NoError(err)
	suite.mockClaimRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestGetUserAnalytics_MissingUserID() {
	ctx := context.Background()

	_, err := suite.service.GetUserAnalytics(ctx, "", "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockClaimRepo.AssertNotCalled(suite.T(), "FindClaims", mock.Anything, mock.Anything)
}

func (suite *AnalyticsServiceTestSuite) TestGetUserAnalytics_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockClaimRepo.On("FindClaims", ctx, domain.ClaimFilter{UserID: "user-1"}).
		Return(nil, expectedErr).Once()

	_, err := suite.service.GetUserAnalytics(ctx, "user-1", "")

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
