package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/expenza/claims_management_app/internal/apperrors"
	"github.com/expenza/claims_management_app/internal/core/domain"
	portsrepo "github.com/expenza/claims_management_app/internal/core/ports/repositories"
	portssvc "github.com/expenza/claims_management_app/internal/core/ports/services"
	"github.com/expenza/claims_management_app/internal/dto"
	"github.com/google/uuid"
)

const defaultReceiptMimeType = "application/octet-stream"

// claimService implements the ClaimSvcFacade interface.
type claimService struct {
	BaseService
	claimRepo     portsrepo.ClaimRepositoryFacade
	dimensionRepo portsrepo.DimensionRepositoryFacade
	now           func() time.Time
}

// ClaimServiceOption is a functional option for configuring the claim service
type ClaimServiceOption func(*claimService)

// WithClaimClock overrides the wall clock, primarily for tests.
func WithClaimClock(now func() time.Time) ClaimServiceOption {
	return func(s *claimService) {
		s.now = now
	}
}

// NewClaimService creates a new claim service with the provided options
func NewClaimService(claimRepo portsrepo.ClaimRepositoryFacade, dimensionRepo portsrepo.DimensionRepositoryFacade, options ...ClaimServiceOption) portssvc.ClaimSvcFacade {
	svc := &claimService{
		claimRepo:     claimRepo,
		dimensionRepo: dimensionRepo,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure claimService implements the ClaimSvcFacade interface
var _ portssvc.ClaimSvcFacade = (*claimService)(nil)

func validateClaimID(claimID string) error {
	if _, err := uuid.Parse(claimID); err != nil {
		return fmt.Errorf("invalid claim ID format: %w", apperrors.ErrValidation)
	}
	return nil
}

// CreateClaim validates and persists a new claim. Every claim starts Pending;
// the status is not settable by callers.
func (s *claimService) CreateClaim(ctx context.Context, req dto.CreateClaimRequest) (*domain.Claim, error) {
	if req.Title == "" || req.Description == "" {
		return nil, fmt.Errorf("title and description are required: %w", apperrors.ErrValidation)
	}
	if req.Receipt == "" {
		return nil, fmt.Errorf("receipt is required: %w", apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}

	receiptData, err := base64.StdEncoding.DecodeString(req.Receipt)
	if err != nil {
		return nil, fmt.Errorf("receipt is not valid base64: %w", apperrors.ErrValidation)
	}
	if len(receiptData) == 0 {
		return nil, fmt.Errorf("receipt payload is empty: %w", apperrors.ErrValidation)
	}
	if len(receiptData) > domain.MaxReceiptSize {
		return nil, fmt.Errorf("receipt exceeds the %d byte limit: %w", domain.MaxReceiptSize, apperrors.ErrValidation)
	}

	now := s.now()
	claimDate := now
	if req.ClaimDate != nil {
		claimDate = *req.ClaimDate
	}
	mimeType := req.ReceiptMimeType
	if mimeType == "" {
		mimeType = defaultReceiptMimeType
	}
	uploadedAt := now

	claim := domain.Claim{
		ClaimID:           uuid.NewString(),
		Title:             req.Title,
		Description:       req.Description,
		Amount:            req.Amount,
		Type:              req.Type,
		Status:            domain.StatusPending,
		UserID:            req.UserID,
		TenantID:          req.TenantID,
		ClaimCreationDate: now,
		ClaimDate:         claimDate,
		HasReceipt:        true,
		ReceiptMimeType:   mimeType,
		ReceiptFileName:   req.ReceiptFileName,
		ReceiptSize:       int64(len(receiptData)),
		ReceiptUploadedAt: &uploadedAt,
	}
	receipt := domain.Receipt{
		ClaimID:  claim.ClaimID,
		FileName: claim.ReceiptFileName,
		MimeType: claim.ReceiptMimeType,
		Data:     receiptData,
	}

	if err := s.claimRepo.SaveClaim(ctx, claim, receipt); err != nil {
		s.LogError(ctx, err, "Failed to save claim", slog.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}

	s.LogInfo(ctx, "Claim created",
		slog.String("claim_id", claim.ClaimID),
		slog.String("user_id", claim.UserID),
		slog.Int64("receipt_size", claim.ReceiptSize))
	return &claim, nil
}

func (s *claimService) GetClaimByID(ctx context.Context, claimID string) (*domain.EnrichedClaim, error) {
	if err := validateClaimID(claimID); err != nil {
		return nil, err
	}

	claim, err := s.claimRepo.FindClaimByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}

	statusDescs, typeDescs, err := s.dimensionMaps(ctx)
	if err != nil {
		return nil, err
	}
	enriched := EnrichClaims([]domain.Claim{*claim}, statusDescs, typeDescs)
	return &enriched[0], nil
}

func (s *claimService) ListClaimsForUser(ctx context.Context, params dto.ListClaimsParams) ([]domain.EnrichedClaim, error) {
	if params.UserID == "" {
		return nil, fmt.Errorf("userId is required: %w", apperrors.ErrValidation)
	}

	filter := domain.ClaimFilter{
		UserID:   params.UserID,
		TenantID: params.TenantID,
	}
	for _, s := range params.Statuses {
		filter.Statuses = append(filter.Statuses, domain.ClaimStatus(s))
	}

	claims, err := s.claimRepo.FindClaims(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	return s.enrich(ctx, claims)
}

// ListClaimsForApproval applies the reviewer visibility rules: an Approver
// sees every claim of the users mapped to them (regardless of status), an
// Admin sees everything, anyone else is refused.
func (s *claimService) ListClaimsForApproval(ctx context.Context, params dto.ListForApprovalParams) ([]domain.EnrichedClaim, error) {
	if params.UserID == "" || params.Role == "" {
		return nil, fmt.Errorf("userId and role are required: %w", apperrors.ErrValidation)
	}

	role, ok := domain.ParseRole(params.Role)
	if !ok {
		return nil, fmt.Errorf("only approvers and admins can list claims for approval: %w", apperrors.ErrForbidden)
	}

	filter := domain.ClaimFilter{TenantID: params.TenantID}
	if role == domain.RoleApprover {
		userIDs, err := s.dimensionRepo.FindUsersUnderApprover(ctx, params.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve users under approver: %w", err)
		}
		// Non-nil even when empty: an unmapped approver sees no claims.
		filter.UserIDs = userIDs
	}

	claims, err := s.claimRepo.FindClaims(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims for approval: %w", err)
	}
	return s.enrich(ctx, claims)
}

func (s *claimService) UpdateClaim(ctx context.Context, claimID string, req dto.UpdateClaimRequest) (int64, error) {
	if err := validateClaimID(claimID); err != nil {
		return 0, err
	}
	if req.Title != nil && *req.Title == "" {
		return 0, fmt.Errorf("title must not be empty: %w", apperrors.ErrValidation)
	}
	if req.Description != nil && *req.Description == "" {
		return 0, fmt.Errorf("description must not be empty: %w", apperrors.ErrValidation)
	}
	if req.Amount != nil && req.Amount.IsNegative() {
		return 0, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}

	update := domain.ClaimUpdate{
		Title:       req.Title,
		Description: req.Description,
		ClaimDate:   req.ClaimDate,
		Type:        req.Type,
		Amount:      req.Amount,
		UpdatedAt:   s.now(),
	}

	modified, err := s.claimRepo.UpdateClaimFields(ctx, claimID, update)
	if err != nil {
		return 0, fmt.Errorf("failed to update claim: %w", err)
	}
	s.LogInfo(ctx, "Claim updated", slog.String("claim_id", claimID), slog.Int64("modified_count", modified))
	return modified, nil
}

func (s *claimService) DeleteClaim(ctx context.Context, claimID string) (int64, error) {
	if err := validateClaimID(claimID); err != nil {
		return 0, err
	}

	deleted, err := s.claimRepo.DeleteClaim(ctx, claimID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete claim: %w", err)
	}
	s.LogInfo(ctx, "Claim deleted", slog.String("claim_id", claimID))
	return deleted, nil
}

// TransitionClaimStatus runs the lifecycle engine: read the current status,
// validate the (role, action, status) triple against the transition table,
// then apply one conditional update keyed on the status just read. When the
// update matches nothing, either the claim vanished or a concurrent
// transition won; a single re-read picks the right error.
func (s *claimService) TransitionClaimStatus(ctx context.Context, claimID string, req dto.TransitionClaimRequest) (*domain.TransitionResult, error) {
	if err := validateClaimID(claimID); err != nil {
		return nil, err
	}

	claim, err := s.claimRepo.FindClaimByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("failed to load claim for transition: %w", err)
	}

	patch, err := domain.PlanTransition(req.UserRole, req.Action, claim.Status, req.UserID, s.now())
	if err != nil {
		return nil, err
	}

	matched, err := s.claimRepo.TransitionClaimStatus(ctx, claimID, claim.Status, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to apply transition: %w", err)
	}
	if matched == 0 {
		if _, rerr := s.claimRepo.FindClaimByID(ctx, claimID); rerr != nil {
			return nil, fmt.Errorf("claim disappeared during transition: %w", rerr)
		}
		return nil, fmt.Errorf("claim status changed concurrently: %w", apperrors.ErrConflict)
	}

	s.LogInfo(ctx, "Claim status transitioned",
		slog.String("claim_id", claimID),
		slog.String("role", req.UserRole),
		slog.String("action", req.Action),
		slog.Int("old_status", int(claim.Status)),
		slog.Int("new_status", int(patch.NewStatus)))

	return &domain.TransitionResult{
		OldStatus:     claim.Status,
		NewStatus:     patch.NewStatus,
		ModifiedCount: matched,
	}, nil
}

func (s *claimService) GetReceipt(ctx context.Context, claimID string) (*domain.Receipt, error) {
	if err := validateClaimID(claimID); err != nil {
		return nil, err
	}

	receipt, err := s.claimRepo.FindReceiptByClaimID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}
	return receipt, nil
}

func (s *claimService) dimensionMaps(ctx context.Context) (map[int]string, map[int]string, error) {
	statuses, err := s.dimensionRepo.FindClaimStatuses(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load claim status dimension: %w", err)
	}
	types, err := s.dimensionRepo.FindClaimTypes(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load claim type dimension: %w", err)
	}
	return domain.StatusDescriptions(statuses), domain.TypeDescriptions(types), nil
}

func (s *claimService) enrich(ctx context.Context, claims []domain.Claim) ([]domain.EnrichedClaim, error) {
	statusDescs, typeDescs, err := s.dimensionMaps(ctx)
	if err != nil {
		return nil, err
	}
	return EnrichClaims(claims, statusDescs, typeDescs), nil
}
