package services

import (
	"context"

	"github.com/expenza/claims_management_app/internal/core/domain"
	"github.com/expenza/claims_management_app/internal/dto"
)

// ClaimReaderSvc defines read operations over claims.
type ClaimReaderSvc interface {
	// GetClaimByID retrieves a single claim enriched with dimension labels.
	GetClaimByID(ctx context.Context, claimID string) (*domain.EnrichedClaim, error)

	// ListClaimsForUser retrieves a user's own claims, enriched.
	ListClaimsForUser(ctx context.Context, params dto.ListClaimsParams) ([]domain.EnrichedClaim, error)

	// ListClaimsForApproval retrieves the claims visible to a reviewer:
	// every claim of the users mapped to an Approver, or every claim for an Admin.
	ListClaimsForApproval(ctx context.Context, params dto.ListForApprovalParams) ([]domain.EnrichedClaim, error)

	// GetReceipt retrieves the raw receipt payload for a claim.
	GetReceipt(ctx context.Context, claimID string) (*domain.Receipt, error)
}

// ClaimWriterSvc defines write operations over claims.
type ClaimWriterSvc interface {
	// CreateClaim validates and persists a new claim in the Pending state.
	CreateClaim(ctx context.Context, req dto.CreateClaimRequest) (*domain.Claim, error)

	// UpdateClaim applies a sparse owner update and returns the modified count.
	UpdateClaim(ctx context.Context, claimID string, req dto.UpdateClaimRequest) (int64, error)

	// DeleteClaim removes a claim permanently and returns the deleted count.
	DeleteClaim(ctx context.Context, claimID string) (int64, error)

	// TransitionClaimStatus runs the role-gated lifecycle engine on a claim.
	TransitionClaimStatus(ctx context.Context, claimID string, req dto.TransitionClaimRequest) (*domain.TransitionResult, error)
}

// ClaimSvcFacade aggregates all claim service capabilities.
type ClaimSvcFacade interface {
	ClaimReaderSvc
	ClaimWriterSvc
}
