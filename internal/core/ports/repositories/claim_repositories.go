package repositories

import (
	"context"

	"github.com/expenza/claims_management_app/internal/core/domain"
)

// ClaimReader defines read operations for claim data. Implementations must
// always exclude the receipt binary payload except through FindReceiptByClaimID.
type ClaimReader interface {
	// FindClaimByID retrieves a specific claim by its ID, receipt metadata only.
	FindClaimByID(ctx context.Context, claimID string) (*domain.Claim, error)

	// FindClaims retrieves every claim matching the filter conjunction.
	FindClaims(ctx context.Context, filter domain.ClaimFilter) ([]domain.Claim, error)

	// FindReceiptByClaimID retrieves the raw receipt payload for a claim.
	// Returns apperrors.ErrNotFound when the claim or its receipt is absent.
	FindReceiptByClaimID(ctx context.Context, claimID string) (*domain.Receipt, error)
}

// ClaimWriter defines write operations for claim data.
type ClaimWriter interface {
	// SaveClaim persists a new claim together with its receipt payload.
	SaveClaim(ctx context.Context, claim domain.Claim, receipt domain.Receipt) error

	// UpdateClaimFields applies a sparse owner-editable update and stamps
	// updatedAt. Returns the number of modified rows; zero matches means
	// apperrors.ErrNotFound.
	UpdateClaimFields(ctx context.Context, claimID string, update domain.ClaimUpdate) (int64, error)

	// DeleteClaim removes the claim record entirely, returning the removed count.
	DeleteClaim(ctx context.Context, claimID string) (int64, error)

	// TransitionClaimStatus applies the transition patch in a single
	// conditional update matching both the claim ID and the expected current
	// status. A matched count of zero means the claim is gone or another
	// transition won the race; the caller decides which.
	TransitionClaimStatus(ctx context.Context, claimID string, expectedCurrent domain.ClaimStatus, patch domain.TransitionPatch) (int64, error)
}

// ClaimRepositoryFacade aggregates every claim repository capability.
type ClaimRepositoryFacade interface {
	ClaimReader
	ClaimWriter
}
