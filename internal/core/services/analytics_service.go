package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/expenza/claims_management_app/internal/apperrors"
	"github.com/expenza/claims_management_app/internal/core/domain"
	portsrepo "github.com/expenza/claims_management_app/internal/core/ports/repositories"
	portssvc "github.com/expenza/claims_management_app/internal/core/ports/services"
)

// analyticsService implements the AnalyticsSvcFacade interface.
type analyticsService struct {
	BaseService
	claimRepo     portsrepo.ClaimRepositoryFacade
	dimensionRepo portsrepo.DimensionRepositoryFacade
	now           func() time.Time
}

// AnalyticsServiceOption is a functional option for configuring the analytics service
type AnalyticsServiceOption func(*analyticsService)

// WithAnalyticsClock overrides the wall clock so the calendar windows are
// deterministic under test.
func WithAnalyticsClock(now func() time.Time) AnalyticsServiceOption {
	return func(s *analyticsService) {
		s.now = now
	}
}

// NewAnalyticsService creates a new analytics service with the provided options
func NewAnalyticsService(claimRepo portsrepo.ClaimRepositoryFacade, dimensionRepo portsrepo.DimensionRepositoryFacade, options ...AnalyticsServiceOption) portssvc.AnalyticsSvcFacade {
	svc := &analyticsService{
		claimRepo:     claimRepo,
		dimensionRepo: dimensionRepo,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure analyticsService implements the AnalyticsSvcFacade interface
var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

// GetUserAnalytics fetches the user's claim set once and aggregates the whole
// dashboard from it in memory; the only secondary query is the type dimension
// for label resolution.
func (s *analyticsService) GetUserAnalytics(ctx context.Context, userID string, tenantID string) (*domain.UserAnalytics, error) {
	if userID == "" {
		return nil, fmt.Errorf("userId is required: %w", apperrors.ErrValidation)
	}

	claims, err := s.claimRepo.FindClaims(ctx, domain.ClaimFilter{UserID: userID, TenantID: tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch claims for analytics: %w", err)
	}

	types, err := s.dimensionRepo.FindClaimTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load claim type dimension: %w", err)
	}

	analytics := BuildUserAnalytics(claims, domain.TypeDescriptions(types), s.now())

	s.LogInfo(ctx, "User analytics generated",
		slog.String("user_id", userID),
		slog.Int("claim_count", len(claims)))
	return analytics, nil
}
