package services

import (
	"context"

	"github.com/expenza/claims_management_app/internal/core/domain"
)

// DimensionSvcFacade exposes the static reference tables.
type DimensionSvcFacade interface {
	// ListStatuses returns every claim status dimension row.
	ListStatuses(ctx context.Context) ([]domain.ClaimStatusDimension, error)

	// ListTypes returns every claim type dimension row.
	ListTypes(ctx context.Context) ([]domain.ClaimTypeDimension, error)

	// ListApproverMappings returns user-approver mappings, optionally
	// filtered to one approver.
	ListApproverMappings(ctx context.Context, approverID string) ([]domain.UserApproverMapping, error)

	// UsersUnderApprover returns the user IDs under an approver's purview.
	UsersUnderApprover(ctx context.Context, approverID string) ([]string, error)
}
