package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsSummary holds the headline dashboard figures for a user's claim set.
type AnalyticsSummary struct {
	TotalSubmitted      decimal.Decimal `json:"totalSubmitted"`
	TotalClaims         int             `json:"totalClaims"`
	TotalApprovedCount  int             `json:"totalApprovedCount"`
	TotalApprovedAmount decimal.Decimal `json:"totalApprovedAmount"`
	PendingCount        int             `json:"pendingCount"`
	RejectedCount       int             `json:"rejectedCount"`
	ApprovalRate        int             `json:"approvalRate"` // rounded percentage, 0 when no claims
}

// MonthlyTrendPoint is one calendar month of the trailing-12-month trend,
// with submitted amounts bucketed by status.
type MonthlyTrendPoint struct {
	Date          string          `json:"date"` // e.g. "Jan 25"
	Pending       decimal.Decimal `json:"pending"`
	Approved      decimal.Decimal `json:"approved"` // level 1 approvals
	FullyApproved decimal.Decimal `json:"fullyApproved"`
	Total         decimal.Decimal `json:"total"`
}

// WeeklyClaimsPoint is one calendar day of the trailing-7-day claim count.
type WeeklyClaimsPoint struct {
	Day      string `json:"day"`      // day-of-week abbreviation
	Claims   int    `json:"claims"`   // claims created that day
	FullDate string `json:"fullDate"` // ISO date
}

// DailyActivityPoint is one calendar day of the current month, bucketed on Claim_Date.
type DailyActivityPoint struct {
	Day    int             `json:"day"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// ClaimsByTypeGroup aggregates a user's claims for one resolved type label.
type ClaimsByTypeGroup struct {
	Name       string          `json:"name"`
	Count      int             `json:"count"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int             `json:"percentage"` // rounded share of total submitted amount
}

// StatusBreakdown counts claims per individual status code.
type StatusBreakdown struct {
	Pending          int `json:"pending"`
	ApproverApproved int `json:"approverApproved"`
	FullyApproved    int `json:"fullyApproved"`
	Rejected         int `json:"rejected"`
}

// RecentPendingClaim is a reduced projection of a claim still awaiting a decision.
type RecentPendingClaim struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Status ClaimStatus     `json:"status"`
	Type   string          `json:"type"`
}

// UserAnalytics is the full dashboard payload for one user.
type UserAnalytics struct {
	Summary         AnalyticsSummary     `json:"summary"`
	MonthlyTrend    []MonthlyTrendPoint  `json:"monthlyTrend"`
	WeeklyClaims    []WeeklyClaimsPoint  `json:"weeklyClaims"`
	DailyActivity   []DailyActivityPoint `json:"dailyActivity"`
	ClaimsByType    []ClaimsByTypeGroup  `json:"claimsByType"`
	StatusBreakdown StatusBreakdown      `json:"statusBreakdown"`
	RecentPending   []RecentPendingClaim `json:"recentPending"`
}
