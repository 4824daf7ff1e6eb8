package services_test

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/expenza/claims_management_app/internal/apperrors"
	"github.com/expenza/claims_management_app/internal/core/domain"
	portssvc "github.com/expenza/claims_management_app/internal/core/ports/services"
	"github.com/expenza/claims_management_app/internal/core/services"
	"github.com/expenza/claims_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClaimRepository ---
type MockClaimRepository struct {
	mock.Mock
}

func (m *MockClaimRepository) FindClaimByID(ctx context.Context, claimID string) (*domain.Claim, error) {
	args := m.Called(ctx, claimID)
	var claim *domain.Claim
	if args.Get(0) != nil {
		claim = args.Get(0).(*domain.Claim)
	}
	return claim, args.Error(1)
}

func (m *MockClaimRepository) FindClaims(ctx context.Context, filter domain.ClaimFilter) ([]domain.Claim, error) {
	args := m.Called(ctx, filter)
	var claims []domain.Claim
	if args.Get(0) != nil {
		claims = args.Get(0).([]domain.Claim)
	}
	return claims, args.Error(1)
}

func (m *MockClaimRepository) FindReceiptByClaimID(ctx context.Context, claimID string) (*domain.Receipt, error) {
	args := m.Called(ctx, claimID)
	var receipt *domain.Receipt
	if args.Get(0) != nil {
		receipt = args.Get(0).(*domain.Receipt)
	}
	return receipt, args.Error(1)
}

func (m *MockClaimRepository) SaveClaim(ctx context.Context, claim domain.Claim, receipt domain.Receipt) error {
	args := m.Called(ctx, claim, receipt)
	return args.Error(0)
}

func (m *MockClaimRepository) UpdateClaimFields(ctx context.Context, claimID string, update domain.ClaimUpdate) (int64, error) {
	args := m.Called(ctx, claimID, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClaimRepository) DeleteClaim(ctx context.Context, claimID string) (int64, error) {
	args := m.Called(ctx, claimID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClaimRepository) TransitionClaimStatus(ctx context.Context, claimID string, expectedCurrent domain.ClaimStatus, patch domain.TransitionPatch) (int64, error) {
	args := m.Called(ctx, claimID, expectedCurrent, patch)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock DimensionRepository ---
type MockDimensionRepository struct {
	mock.Mock
}

func (m *MockDimensionRepository) FindClaimStatuses(ctx context.Context) ([]domain.ClaimStatusDimension, error) {
	args := m.Called(ctx)
	var rows []domain.ClaimStatusDimension
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.ClaimStatusDimension)
	}
	return rows, args.Error(1)
}

func (m *MockDimensionRepository) FindClaimTypes(ctx context.Context) ([]domain.ClaimTypeDimension, error) {
	args := m.Called(ctx)
	var rows []domain.ClaimTypeDimension
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.ClaimTypeDimension)
	}
	return rows, args.Error(1)
}

func (m *MockDimensionRepository) FindApproverMappings(ctx context.Context, approverID string) ([]domain.UserApproverMapping, error) {
	args := m.Called(ctx, approverID)
	var rows []domain.UserApproverMapping
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.UserApproverMapping)
	}
	return rows, args.Error(1)
}

func (m *MockDimensionRepository) FindUsersUnderApprover(ctx context.Context, approverID string) ([]string, error) {
	args := m.Called(ctx, approverID)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}

var testStatusDims = []domain.ClaimStatusDimension{
	{RNo: 1, Description: "Approved L1"},
	{RNo: 2, Description: "Pending"},
	{RNo: 3, Description: "Rejected by Approver"},
	{RNo: 4, Description: "Rejected by Admin"},
	{RNo: 5, Description: "Approved"},
}

var testTypeDims = []domain.ClaimTypeDimension{
	{RNo: 1, Description: "Travel"},
	{RNo: 2, Description: "Meals"},
}

// --- Test Suite ---
type ClaimServiceTestSuite struct {
	suite.Suite
	mockClaimRepo     *MockClaimRepository
	mockDimensionRepo *MockDimensionRepository
	service           portssvc.ClaimSvcFacade
	fixedNow          time.Time
}

func (suite *ClaimServiceTestSuite) SetupTest() {
	suite.mockClaimRepo = new(MockClaimRepository)
	suite.mockDimensionRepo = new(MockDimensionRepository)
	suite.fixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewClaimService(
		suite.mockClaimRepo,
		suite.mockDimensionRepo,
		services.WithClaimClock(func() time.Time { return suite.fixedNow }),
	)
}

// --- CreateClaim Tests ---

func (suite *ClaimServiceTestSuite) TestCreateClaim_Success() {
	ctx := context.Background()
	receiptBytes := []byte("fake-image-bytes")
	req := dto.CreateClaimRequest{
		Title:           "Taxi to airport",
		Description:     "Client visit travel",
		Type:            1,
		Amount:          decimal.NewFromInt(45),
		UserID:          "user-1",
		Receipt:         base64.StdEncoding.EncodeToString(receiptBytes),
		ReceiptMimeType: "image/png",
		ReceiptFileName: "taxi.png",
	}

	suite.mockClaimRepo.On("SaveClaim", ctx, mock.MatchedBy(func(claim domain.Claim) bool {
		return claim.Status == domain.StatusPending &&
			claim.UserID == "user-1" &&
			claim.HasReceipt &&
			claim.ReceiptSize == int64(len(receiptBytes)) &&
			claim.ClaimCreationDate.Equal(suite.fixedNow) &&
			claim.ClaimDate.Equal(suite.fixedNow)
	}), mock.MatchedBy(func(receipt domain.Receipt) bool {
		return string(receipt.Data) == string(receiptBytes) && receipt.MimeType == "image/png"
	})).Return(nil).Once()

	created, err := suite.service.CreateClaim(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(domain.StatusPending, created.Status)
	suite.NotEmpty(created.ClaimID)
	_, parseErr := uuid.Parse(created.ClaimID)
	suite.NoError(parseErr)

	suite.mockClaimRepo.AssertExpectations(suite.T())
}

func (suite *ClaimServiceTestSuite) TestCreateClaim_ExplicitClaimDate() {
	ctx := context.Background()
	claimDate := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateClaimRequest{
		Title:       "Hotel",
		Description: "Two nights",
		Amount:      decimal.NewFromInt(200),
		UserID:      "user-1",
		ClaimDate:   &claimDate,
		Receipt:     base64.StdEncoding.EncodeToString([]byte("receipt")),
	}

	suite.mockClaimRepo.On("SaveClaim", ctx, mock.MatchedBy(func(claim domain.Claim) bool {
		return claim.ClaimDate.Equal(claimDate) && claim.ClaimCreationDate.Equal(suite.fixedNow)
	}), mock.AnythingOfType("domain.Receipt")).Return(nil).Once()

	_, err := suite.service.CreateClaim(ctx, req)
	suite.Require().NoError(err)
	suite.mockClaimRepo.AssertExpectations(suite.T())
}

func (suite *ClaimServiceTestSuite) TestCreateClaim_DefaultsMimeType() {
	ctx := context.Background()
	req := dto.CreateClaimRequest{
		Title:       "Lunch",
		Description: "Team lunch",
		UserID:      "user-1",
		Receipt:     base64.StdEncoding.EncodeToString([]byte("receipt")),
	}

	suite.mockClaimRepo.On("SaveClaim", ctx, mock.MatchedBy(func(claim domain.Claim) bool {
		return claim.ReceiptMimeType == "application/octet-stream"
	}), mock.AnythingOfType("domain.Receipt")).Return(nil).Once()

	_, err := suite.service.CreateClaim(ctx, req)
	suite.Require().NoError(err)
	suite.mockClaimRepo.AssertExpectations(suite.T())
}

func (suite *ClaimServiceTestSuite) TestCreateClaim_MissingFields() {
	ctx := context.Background()

	_, err := suite.service.CreateClaim(ctx, dto.CreateClaimRequest{
		Description: "no title",
		UserID:      "user-1",
		Receipt:     base64.StdEncoding.EncodeToString([]byte("receipt")),
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateClaim(ctx, dto.CreateClaimRequest{
		Title:       "no receipt",
		Description: "missing",
		UserID:      "user-1",
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockClaimRepo.AssertNotCalled(suite.T(), "SaveClaim", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClaimServiceTestSuite) TestCreateClaim_InvalidBase64() {
	ctx := context.Background()
	req := dto.CreateClaimRequest{
		Title:       "Bad receipt",
		Description: "not base64",
		UserID:      "user-1",
		Receipt:     "!!!not-base64!!!",
	}

	_, err := suite.service.CreateClaim(ctx, req)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockClaimRepo.AssertNotCalled(suite.T(), "SaveClaim", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClaimServiceTestSuite) TestCreateClaim_ReceiptTooLarge() {
	ctx := context.Background()
	oversized := strings.Repeat("a", domain.MaxReceiptSize+1)
	req := dto.CreateClaimRequest{
		Title:       "Huge receipt",
		Description: "over the cap",
		UserID:      "user-1",
		Receipt:     base64.StdEncoding.EncodeToString([]byte(oversized)),
	}

	_, err := suite.service.CreateClaim(ctx, req)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockClaimRepo.AssertNotCalled(suite.T(), "SaveClaim", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClaimServiceTestSuite) TestCreateClaim_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateClaimRequest{
		Title:       "Refund",
		Description: "negative amount",
		Amount:      decimal.NewFromInt(-5),
		UserID:      "user-1",
		Receipt:     base64.StdEncoding.EncodeToString([]byte("receipt")),
	}

	_, err := suite.service.CreateClaim(ctx, req)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- GetClaimByID Tests ---

func (suite *ClaimServiceTestSuite) TestGetClaimByID_Success() {
	ctx := context.Background()
	claimID := uuid.NewString()
	claim := &domain.Claim{ClaimID: claimID, Title: "Taxi", Status: domain.StatusPending, Type: 1}

	suite.mockClaimRepo.On("FindClaimByID", ctx, claimID).Return(claim, nil).Once()
	suite.mockDimensionRepo.On("FindClaimStatuses", ctx).Return(testStatusDims, nil).Once()
	suite.mockDimensionRepo.On("FindClaimTypes", ctx).Return(testTypeDims, nil).Once()

	enriched, err := suite.service.GetClaimByID(ctx, claimID)

	suite.Require().NoError(err)
	suite.Equal("Pending", enriched.StatusDescription)
	suite.Equal("Travel", enriched.TypeDescription)
	suite.mockClaimRepo.AssertExpectations(suite.T())
}

func (suite *ClaimServiceTestSuite) TestGetClaimByID_InvalidID() {
	ctx := context.Background()

	_, err := suite.service.GetClaimByID(ctx, "not-a-uuid")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockClaimRepo.AssertNotCalled(suite.T(), "FindClaimByID", mock.Anything, mock.Anything)
}

func (suite *ClaimServiceTestSuite) TestGetClaimByID_NotFound() {
	ctx := context.Background()
	claimID := uuid.NewString()

	suite.mockClaimRepo.On("FindClaimByID", ctx, claimID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetClaimByID(ctx, claimID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ListClaimsForUser Tests ---

func (suite *ClaimServiceTestSuite) TestListClaimsForUser_Success() {
	ctx := context.Background()
	claims := []domain.Claim{
		{ClaimID: uuid.NewString(), UserID: "user-1", Status: domain.StatusPending, Type: 2},
	}

	suite.mockClaimRepo.On("FindClaims", ctx, domain.ClaimFilter{UserID: "user-1"}).Return(claims, nil).Once()
	suite.mockDimensionRepo.On("FindClaimStatuses", ctx).Return(testStatusDims, nil).Once()
	suite.mockDimensionRepo.On("FindClaimTypes", ctx).Return(testTypeDims, nil).Once()

	result, err := suite.service.ListClaimsForUser(ctx, dto.ListClaimsParams{UserID: "user-1"})

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Meals", result[0].TypeDescription)
}

func (suite *ClaimServiceTestSuite) TestListClaimsForUser_StatusFilter() {
	ctx := context.Background()
	expectedFilter := domain.ClaimFilter{
		UserID:   "user-1",
		Statuses: []domain.ClaimStatus{domain.StatusApprovedLevel1, domain.StatusPending},
	}

	suite.mockClaimRepo.On("FindClaims", ctx, expectedFilter).Return([]domain.Claim{}, nil).Once()
	suite.mockDimensionRepo.On("FindClaimStatuses", ctx).Return(testStatusDims, nil).Once()
	suite.mockDimensionRepo.On("FindClaimTypes", ctx).Return(testTypeDims, nil).Once()

	result, err := suite.service.ListClaimsForUser(ctx, dto.ListClaimsParams{UserID: "user-1", Statuses: []int{1, 2}})

	suite.Require().NoError(err)
	suite.Empty(result)
	suite.mockClaimRepo.AssertExpectations(suite.T())
}

func (suite *ClaimServiceTestSuite) TestListClaimsForUser_MissingUserID() {
	ctx := context.Background()

	_, err := suite.service.ListClaimsForUser(ctx, dto.ListClaimsParams{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- ListClaimsForApproval Tests ---

func (suite *ClaimServiceTestSuite) TestListClaimsForApproval_Approver() {
	ctx := context.Background()
	mappedUsers := []string{"user-1", "user-2"}

	suite.mockDimensionRepo.On("FindUsersUnderApprover", ctx, "approver-1").Return(mappedUsers, nil).Once()
	suite.mockClaimRepo.On("FindClaims", ctx, domain.ClaimFilter{UserIDs: mappedUsers}).Return([]domain.Claim{}, nil).Once()
	suite.mockDimensionRepo.On("FindClaimStatuses", ctx).Return(testStatusDims, nil).Once()
	suite.mockDimensionRepo.On("FindClaimTypes", ctx).Return(testTypeDims, nil).Once()

	_, err := suite.service.ListClaimsForApproval(ctx, dto.ListForApprovalParams{UserID: "approver-1", Role: "Approver"})

	suite.Require().NoError(err)
	suite.mockClaimRepo.AssertExpectations(suite.T())
	suite.mockDimensionRepo.AssertExpectations(suite.T())
}

func (suite *ClaimServiceTestSuite) TestListClaimsForApproval_UnmappedApproverSeesNothing() {
	ctx := context.Background()

	suite.mockDimensionRepo.On("FindUsersUnderApprover", ctx, "approver-9").Return([]string{}, nil).Once()
	suite.mockClaimRepo.On("FindClaims", ctx, mock.MatchedBy(func(filter domain.ClaimFilter) bool {
		return filter.UserIDs != nil && len(filter.UserIDs) == 0
	})).Return([]domain.Claim{}, nil).Once()
	suite.mockDimensionRepo.On("FindClaimStatuses", ctx).Return(testStatusDims, nil).Once()
	suite.mockDimensionRepo.On("FindClaimTypes", ctx).Return(testTypeDims, nil).Once()

	result, err := suite.service.ListClaimsForApproval(ctx, dto.ListForApprovalParams{UserID: "approver-9", Role: "Approver"})

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *ClaimServiceTestSuite) TestListClaimsForApproval_AdminSeesAll() {
	ctx := context.Background()

	suite.mockClaimRepo.On("FindClaims", ctx, domain.ClaimFilter{}).Return([]domain.Claim{}, nil).Once()
	suite.mockDimensionRepo.On("FindClaimStatuses", ctx).Return(testStatusDims, nil).Once()
	suite.mockDimensionRepo.On("FindClaimTypes", ctx).Return(testTypeDims, nil).Once()

	_, err := suite.service.ListClaimsForApproval(ctx, dto.ListForApprovalParams{UserID: "admin-1", Role: "Admin"})

	suite.Require().NoError(err)
	suite.mockDimensionRepo.AssertNotCalled(suite.T(), "FindUsersUnderApprover", mock.Anything, mock.Anything)
}

func (suite *ClaimServiceTestSuite) TestListClaimsForApproval_UnknownRole() {
	ctx := context.Background()

	_, err := suite.service.ListClaimsForApproval(ctx, dto.ListForApprovalParams{UserID: "user-1", Role: "Employee"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockClaimRepo.AssertNotCalled(suite.T(), "FindClaims", mock.Anything, mock.Anything)
}

// --- UpdateClaim Tests ---

func (suite *ClaimServiceTestSuite) TestUpdateClaim_Success() {
	ctx := context.Background()
	claimID := uuid.NewString()
	newTitle := "Updated title"

	suite.mockClaimRepo.On("UpdateClaimFields", ctx, claimID, mock.MatchedBy(func(update domain.ClaimUpdate) bool {
		return update.Title != nil && *update.Title == newTitle && update.UpdatedAt.Equal(suite.fixedNow)
	})).Return(int64(1), nil).Once()

	modified, err := suite.service.UpdateClaim(ctx, claimID, dto.UpdateClaimRequest{Title: &newTitle})

	suite.Require().NoError(err)
	suite.Equal(int64(1), modified)
	suite.mockClaimRepo.AssertExpectations(suite.T())
}

func (suite *ClaimServiceTestSuite) TestUpdateClaim_EmptyTitleRejected() {
	ctx := context.Background()
	claimID := uuid.NewString()
	empty := ""

	_, err := suite.service.UpdateClaim(ctx, claimID, dto.UpdateClaimRequest{Title: &empty})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockClaimRepo.AssertNotCalled(suite.T(), "UpdateClaimFields", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClaimServiceTestSuite) TestUpdateClaim_NotFound() {
	ctx := context.Background()
	claimID := uuid.NewString()
	newTitle := "Updated title"

	suite.mockClaimRepo.On("UpdateClaimFields", ctx, claimID, mock.AnythingOfType("domain.ClaimUpdate")).
		Return(int64(0), apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateClaim(ctx, claimID, dto.UpdateClaimRequest{Title: &newTitle})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteClaim Tests ---

func (suite *ClaimServiceTestSuite) TestDeleteClaim_Success() {
	ctx := context.Background()
	claimID := uuid.NewString()

	suite.mockClaimRepo.On("DeleteClaim", ctx, claimID).Return(int64(1), nil).Once()

	deleted, err := suite.service.DeleteClaim(ctx, claimID)

	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)
}

// --- TransitionClaimStatus Tests ---

func (suite *ClaimServiceTestSuite) TestTransitionClaimStatus_ApproverApprovesPending() {
	ctx := context.Background()
	claimID := uuid.NewString()
	claim := &domain.Claim{ClaimID: claimID, Status: domain.StatusPending}

	suite.mockClaimRepo.On("FindClaimByID", ctx, claimID).Return(claim, nil).Once()
	suite.mockClaimRepo.On("TransitionClaimStatus", ctx, claimID, domain.StatusPending, mock.MatchedBy(func(patch domain.TransitionPatch) bool {
		return patch.NewStatus == domain.StatusApprovedLevel1 &&
			patch.ApproverID != nil && *patch.ApproverID == "approver-1"
	})).Return(int64(1), nil).Once()

	result, err := suite.service.TransitionClaimStatus(ctx, claimID, dto.TransitionClaimRequest{
		Action:   "approve",
		UserRole: "Approver",
		UserID:   "approver-1",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, result.OldStatus)
	suite.Equal(domain.StatusApprovedLevel1, result.NewStatus)
	suite.Equal(int64(1), result.ModifiedCount)
	suite.mockClaimRepo.AssertExpectations(suite.T())
}

func (suite *ClaimServiceTestSuite) TestTransitionClaimStatus_InvalidTransition() {
	ctx := context.Background()
	claimID := uuid.NewString()
	claim := &domain.Claim{ClaimID: claimID, Status: domain.StatusPending}

	suite.mockClaimRepo.On("FindClaimByID", ctx, claimID).Return(claim, nil).Once()

	_, err := suite.service.TransitionClaimStatus(ctx, claimID, dto.TransitionClaimRequest{
		Action:   "approve",
		UserRole: "Admin",
		UserID:   "admin-1",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockClaimRepo.AssertNotCalled(suite.T(), "TransitionClaimStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClaimServiceTestSuite) TestTransitionClaimStatus_ConcurrentChangeConflicts() {
	ctx := context.Background()
	claimID := uuid.NewString()
	claim := &domain.Claim{ClaimID: claimID, Status: domain.StatusPending}

	// First read sees Pending; the conditional update matches nothing because
	// a concurrent transition won; the re-read still finds the claim.
	suite.mockClaimRepo.On("FindClaimByID", ctx, claimID).Return(claim, nil).Twice()
	suite.mockClaimRepo.On("TransitionClaimStatus", ctx, claimID, domain.StatusPending, mock.AnythingOfType("domain.TransitionPatch")).
		Return(int64(0), nil).Once()

	_, err := suite.service.TransitionClaimStatus(ctx, claimID, dto.TransitionClaimRequest{
		Action:   "approve",
		UserRole: "Approver",
		UserID:   "approver-1",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockClaimRepo.AssertExpectations(suite.T())
}

func (suite *ClaimServiceTestSuite) TestTransitionClaimStatus_ClaimGoneAfterRace() {
	ctx := context.Background()
	claimID := uuid.NewString()
	claim := &domain.Claim{ClaimID: claimID, Status: domain.StatusPending}

	suite.mockClaimRepo.On("FindClaimByID", ctx, claimID).Return(claim, nil).Once()
	suite.mockClaimRepo.On("TransitionClaimStatus", ctx, claimID, domain.StatusPending, mock.AnythingOfType("domain.TransitionPatch")).
		Return(int64(0), nil).Once()
	suite.mockClaimRepo.On("FindClaimByID", ctx, claimID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.TransitionClaimStatus(ctx, claimID, dto.TransitionClaimRequest{
		Action:   "approve",
		UserRole: "Approver",
		UserID:   "approver-1",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClaimServiceTestSuite) TestTransitionClaimStatus_UnknownRole() {
	ctx := context.Background()
	claimID := uuid.NewString()
	claim := &domain.Claim{ClaimID: claimID, Status: domain.StatusPending}

	suite.mockClaimRepo.On("FindClaimByID", ctx, claimID).Return(claim, nil).Once()

	_, err := suite.service.TransitionClaimStatus(ctx, claimID, dto.TransitionClaimRequest{
		Action:   "approve",
		UserRole: "Employee",
		UserID:   "user-1",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- GetReceipt Tests ---

func (suite *ClaimServiceTestSuite) TestGetReceipt_Success() {
	ctx := context.Background()
	claimID := uuid.NewString()
	receipt := &domain.Receipt{ClaimID: claimID, FileName: "taxi.png", MimeType: "image/png", Data: []byte("bytes")}

	suite.mockClaimRepo.On("FindReceiptByClaimID", ctx, claimID).Return(receipt, nil).Once()

	got, err := suite.service.GetReceipt(ctx, claimID)

	suite.Require().NoError(err)
	suite.Equal(receipt, got)
}

func (suite *ClaimServiceTestSuite) TestGetReceipt_NotFound() {
	ctx := context.Background()
	claimID := uuid.NewString()

	suite.mockClaimRepo.On("FindReceiptByClaimID", ctx, claimID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetReceipt(ctx, claimID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestClaimServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClaimServiceTestSuite))
}
