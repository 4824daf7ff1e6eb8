package services

import (
	"context"

	"github.com/expenza/claims_management_app/internal/core/domain"
)

// AnalyticsSvcFacade defines operations for generating dashboard analytics.
type AnalyticsSvcFacade interface {
	// GetUserAnalytics aggregates a user's (optionally tenant-scoped) claim
	// set into the dashboard payload.
	GetUserAnalytics(ctx context.Context, userID string, tenantID string) (*domain.UserAnalytics, error)
}
