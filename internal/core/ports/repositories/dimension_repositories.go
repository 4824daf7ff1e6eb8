package repositories

import (
	"context"

	"github.com/expenza/claims_management_app/internal/core/domain"
)

// DimensionRepositoryFacade exposes the read-only reference collections.
type DimensionRepositoryFacade interface {
	// FindClaimStatuses retrieves every row of the Claim_Status dimension.
	FindClaimStatuses(ctx context.Context) ([]domain.ClaimStatusDimension, error)

	// FindClaimTypes retrieves every row of the Claim_Type dimension.
	FindClaimTypes(ctx context.Context) ([]domain.ClaimTypeDimension, error)

	// FindApproverMappings retrieves user-approver mappings, optionally
	// filtered to a single approver. An empty approverID returns all mappings.
	FindApproverMappings(ctx context.Context, approverID string) ([]domain.UserApproverMapping, error)

	// FindUsersUnderApprover returns the user IDs mapped to an approver, or
	// an empty slice when no mapping exists.
	FindUsersUnderApprover(ctx context.Context, approverID string) ([]string, error)
}
