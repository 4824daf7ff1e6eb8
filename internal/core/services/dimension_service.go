package services

import (
	"context"
	"fmt"

	"github.com/expenza/claims_management_app/internal/core/domain"
	portsrepo "github.com/expenza/claims_management_app/internal/core/ports/repositories"
	portssvc "github.com/expenza/claims_management_app/internal/core/ports/services"
)

// dimensionService exposes the static reference tables.
type dimensionService struct {
	BaseService
	dimensionRepo portsrepo.DimensionRepositoryFacade
}

// NewDimensionService creates a new dimension service.
func NewDimensionService(dimensionRepo portsrepo.DimensionRepositoryFacade) portssvc.DimensionSvcFacade {
	return &dimensionService{dimensionRepo: dimensionRepo}
}

// Ensure dimensionService implements the DimensionSvcFacade interface
var _ portssvc.DimensionSvcFacade = (*dimensionService)(nil)

func (s *dimensionService) ListStatuses(ctx context.Context) ([]domain.ClaimStatusDimension, error) {
	statuses, err := s.dimensionRepo.FindClaimStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list claim statuses: %w", err)
	}
	return statuses, nil
}

func (s *dimensionService) ListTypes(ctx context.Context) ([]domain.ClaimTypeDimension, error) {
	types, err := s.dimensionRepo.FindClaimTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list claim types: %w", err)
	}
	return types, nil
}

func (s *dimensionService) ListApproverMappings(ctx context.Context, approverID string) ([]domain.UserApproverMapping, error) {
	mappings, err := s.dimensionRepo.FindApproverMappings(ctx, approverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approver mappings: %w", err)
	}
	return mappings, nil
}

func (s *dimensionService) UsersUnderApprover(ctx context.Context, approverID string) ([]string, error) {
	userIDs, err := s.dimensionRepo.FindUsersUnderApprover(ctx, approverID)
	if err != nil {
		return nil, fmt.Errorf("failed to find users under approver: %w", err)
	}
	return userIDs, nil
}
