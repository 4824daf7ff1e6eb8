package dto

import (
	"time"

	"github.com/expenza/claims_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AnalyticsSummaryResponse holds the headline dashboard figures.
type AnalyticsSummaryResponse struct {
	TotalSubmitted      decimal.Decimal `json:"totalSubmitted"`
	TotalClaims         int             `json:"totalClaims"`
	TotalApprovedCount  int             `json:"totalApprovedCount"`
	TotalApprovedAmount decimal.Decimal `json:"totalApprovedAmount"`
	PendingCount        int             `json:"pendingCount"`
	RejectedCount       int             `json:"rejectedCount"`
	ApprovalRate        int             `json:"approvalRate"`
}

// MonthlyTrendResponse is one month of the trailing-12-month trend.
type MonthlyTrendResponse struct {
	Date          string          `json:"date"`
	Pending       decimal.Decimal `json:"pending"`
	Approved      decimal.Decimal `json:"approved"`
	FullyApproved decimal.Decimal `json:"fullyApproved"`
	Total         decimal.Decimal `json:"total"`
}

// WeeklyClaimsResponse is one day of the trailing-7-day claim count.
type WeeklyClaimsResponse struct {
	Day      string `json:"day"`
	Claims   int    `json:"claims"`
	FullDate string `json:"fullDate"`
}

// DailyActivityResponse is one day of the current month's activity.
type DailyActivityResponse struct {
	Day    int             `json:"day"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// ClaimsByTypeResponse aggregates claims for one type label.
type ClaimsByTypeResponse struct {
	Name       string          `json:"name"`
	Count      int             `json:"count"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int             `json:"percentage"`
}

// StatusBreakdownResponse counts claims per individual status code.
type StatusBreakdownResponse struct {
	Pending          int `json:"pending"`
	ApproverApproved int `json:"approverApproved"`
	FullyApproved    int `json:"fullyApproved"`
	Rejected         int `json:"rejected"`
}

// RecentPendingResponse is a reduced projection of a still-pending claim.
type RecentPendingResponse struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Status int             `json:"status"`
	Type   string          `json:"type"`
}

// UserAnalyticsResponse is the full dashboard payload for one user.
type UserAnalyticsResponse struct {
	Summary         AnalyticsSummaryResponse `json:"summary"`
	MonthlyTrend    []MonthlyTrendResponse   `json:"monthlyTrend"`
	WeeklyClaims    []WeeklyClaimsResponse   `json:"weeklyClaims"`
	DailyActivity   []DailyActivityResponse  `json:"dailyActivity"`
	ClaimsByType    []ClaimsByTypeResponse   `json:"claimsByType"`
	StatusBreakdown StatusBreakdownResponse  `json:"statusBreakdown"`
	RecentPending   []RecentPendingResponse  `json:"recentPending"`
}

// ToUserAnalyticsResponse converts the domain analytics payload to its response DTO.
func ToUserAnalyticsResponse(a *domain.UserAnalytics) UserAnalyticsResponse {
	resp := UserAnalyticsResponse{
		Summary: AnalyticsSummaryResponse{
			TotalSubmitted:      a.Summary.TotalSubmitted,
			TotalClaims:         a.Summary.TotalClaims,
			TotalApprovedCount:  a.Summary.TotalApprovedCount,
			TotalApprovedAmount: a.Summary.TotalApprovedAmount,
			PendingCount:        a.Summary.PendingCount,
			RejectedCount:       a.Summary.RejectedCount,
			ApprovalRate:        a.Summary.ApprovalRate,
		},
		StatusBreakdown: StatusBreakdownResponse{
			Pending:          a.StatusBreakdown.Pending,
			ApproverApproved: a.StatusBreakdown.ApproverApproved,
			FullyApproved:    a.StatusBreakdown.FullyApproved,
			Rejected:         a.StatusBreakdown.Rejected,
		},
		MonthlyTrend:  make([]MonthlyTrendResponse, len(a.MonthlyTrend)),
		WeeklyClaims:  make([]WeeklyClaimsResponse, len(a.WeeklyClaims)),
		DailyActivity: make([]DailyActivityResponse, len(a.DailyActivity)),
		ClaimsByType:  make([]ClaimsByTypeResponse, len(a.ClaimsByType)),
		RecentPending: make([]RecentPendingResponse, len(a.RecentPending)),
	}
	for i, p := range a.MonthlyTrend {
		resp.MonthlyTrend[i] = MonthlyTrendResponse{
			Date: p.Date, Pending: p.Pending, Approved: p.Approved,
			FullyApproved: p.FullyApproved, Total: p.Total,
		}
	}
	for i, p := range a.WeeklyClaims {
		resp.WeeklyClaims[i] = WeeklyClaimsResponse{Day: p.Day, Claims: p.Claims, FullDate: p.FullDate}
	}
	for i, p := range a.DailyActivity {
		resp.DailyActivity[i] = DailyActivityResponse{Day: p.Day, Count: p.Count, Amount: p.Amount}
	}
	for i, g := range a.ClaimsByType {
		resp.ClaimsByType[i] = ClaimsByTypeResponse{Name: g.Name, Count: g.Count, Amount: g.Amount, Percentage: g.Percentage}
	}
	for i, r := range a.RecentPending {
		resp.RecentPending[i] = RecentPendingResponse{
			ID: r.ID, Title: r.Title, Amount: r.Amount,
			Date: r.Date, Status: int(r.Status), Type: r.Type,
		}
	}
	return resp
}
