package services

import (
	portsrepo "github.com/expenza/claims_management_app/internal/core/ports/repositories"
	portssvc "github.com/expenza/claims_management_app/internal/core/ports/services"
	"github.com/expenza/claims_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Claim = NewClaimService(repos.ClaimRepo, repos.DimensionRepo)
	container.Dimension = NewDimensionService(repos.DimensionRepo)
	container.Analytics = NewAnalyticsService(repos.ClaimRepo, repos.DimensionRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ClaimSvcFacade     = (*claimService)(nil)
	_ portssvc.DimensionSvcFacade = (*dimensionService)(nil)
	_ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)
)
