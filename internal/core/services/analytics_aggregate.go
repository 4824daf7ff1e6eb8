package services

import (
	"math"
	"sort"
	"time"

	"github.com/expenza/claims_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// BuildUserAnalytics aggregates a claim set into the full dashboard payload.
// It is a pure function: every calendar window derives from the injected now.
func BuildUserAnalytics(claims []domain.Claim, typeDescs map[int]string, now time.Time) *domain.UserAnalytics {
	return &domain.UserAnalytics{
		Summary:         buildSummary(claims),
		MonthlyTrend:    buildMonthlyTrend(claims, now),
		WeeklyClaims:    buildWeeklyClaims(claims, now),
		DailyActivity:   buildDailyActivity(claims, now),
		ClaimsByType:    buildClaimsByType(claims, typeDescs),
		StatusBreakdown: buildStatusBreakdown(claims),
		RecentPending:   buildRecentPending(claims, typeDescs),
	}
}

func statusIn(status domain.ClaimStatus, set []domain.ClaimStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

func buildSummary(claims []domain.Claim) domain.AnalyticsSummary {
	summary := domain.AnalyticsSummary{
		TotalSubmitted:      decimal.Zero,
		TotalApprovedAmount: decimal.Zero,
		TotalClaims:         len(claims),
	}
	for _, c := range claims {
		summary.TotalSubmitted = summary.TotalSubmitted.Add(c.Amount)
		switch {
		case c.Status == domain.StatusApprovedFinal:
			summary.TotalApprovedCount++
			summary.TotalApprovedAmount = summary.TotalApprovedAmount.Add(c.Amount)
		case statusIn(c.Status, domain.PendingStatuses):
			summary.PendingCount++
		case statusIn(c.Status, domain.RejectedStatuses):
			summary.RejectedCount++
		}
	}
	if summary.TotalClaims > 0 {
		summary.ApprovalRate = int(math.Round(float64(summary.TotalApprovedCount) / float64(summary.TotalClaims) * 100))
	}
	return summary
}

// buildMonthlyTrend buckets submitted amounts by status over the trailing 12
// calendar months (oldest first, current month included), keyed on each
// claim's creation date.
func buildMonthlyTrend(claims []domain.Claim, now time.Time) []domain.MonthlyTrendPoint {
	loc := now.Location()
	trend := make([]domain.MonthlyTrendPoint, 0, 12)

	for i := 11; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, loc)
		point := domain.MonthlyTrendPoint{
			Date:          monthStart.Format("Jan 06"),
			Pending:       decimal.Zero,
			Approved:      decimal.Zero,
			FullyApproved: decimal.Zero,
		}

		for _, c := range claims {
			created := c.ClaimCreationDate.In(loc)
			if created.Year() != monthStart.Year() || created.Month() != monthStart.Month() {
				continue
			}
			switch c.Status {
			case domain.StatusPending:
				point.Pending = point.Pending.Add(c.Amount)
			case domain.StatusApprovedLevel1:
				point.Approved = point.Approved.Add(c.Amount)
			case domain.StatusApprovedFinal:
				point.FullyApproved = point.FullyApproved.Add(c.Amount)
			}
		}

		point.Total = point.Pending.Add(point.Approved).Add(point.FullyApproved)
		trend = append(trend, point)
	}
	return trend
}

// buildWeeklyClaims counts claims created on each of the trailing 7 calendar
// days, oldest first, today included.
func buildWeeklyClaims(claims []domain.Claim, now time.Time) []domain.WeeklyClaimsPoint {
	loc := now.Location()
	points := make([]domain.WeeklyClaimsPoint, 0, 7)

	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		count := 0
		for _, c := range claims {
			created := c.ClaimCreationDate.In(loc)
			if sameDay(created, day) {
				count++
			}
		}
		points = append(points, domain.WeeklyClaimsPoint{
			Day:      day.Format("Mon"),
			Claims:   count,
			FullDate: day.Format("2006-01-02"),
		})
	}
	return points
}

// buildDailyActivity reports count and summed amount per calendar day of the
// current month, keyed on each claim's expense date rather than its creation.
func buildDailyActivity(claims []domain.Claim, now time.Time) []domain.DailyActivityPoint {
	loc := now.Location()
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, loc).Day()
	points := make([]domain.DailyActivityPoint, 0, daysInMonth)

	for day := 1; day <= daysInMonth; day++ {
		point := domain.DailyActivityPoint{Day: day, Amount: decimal.Zero}
		for _, c := range claims {
			claimDate := c.ClaimDate.In(loc)
			if claimDate.Year() == now.Year() && claimDate.Month() == now.Month() && claimDate.Day() == day {
				point.Count++
				point.Amount = point.Amount.Add(c.Amount)
			}
		}
		points = append(points, point)
	}
	return points
}

func buildClaimsByType(claims []domain.Claim, typeDescs map[int]string) []domain.ClaimsByTypeGroup {
	groups := map[string]*domain.ClaimsByTypeGroup{}
	total := decimal.Zero

	for _, c := range claims {
		name, ok := typeDescs[c.Type]
		if !ok {
			name = unknownDescription
		}
		g, ok := groups[name]
		if !ok {
			g = &domain.ClaimsByTypeGroup{Name: name, Amount: decimal.Zero}
			groups[name] = g
		}
		g.Count++
		g.Amount = g.Amount.Add(c.Amount)
		total = total.Add(c.Amount)
	}

	out := make([]domain.ClaimsByTypeGroup, 0, len(groups))
	for _, g := range groups {
		if total.IsPositive() {
			g.Percentage = int(g.Amount.Mul(oneHundred).Div(total).Round(0).IntPart())
		}
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Amount.Cmp(out[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func buildStatusBreakdown(claims []domain.Claim) domain.StatusBreakdown {
	var breakdown domain.StatusBreakdown
	for _, c := range claims {
		switch c.Status {
		case domain.StatusPending:
			breakdown.Pending++
		case domain.StatusApprovedLevel1:
			breakdown.ApproverApproved++
		case domain.StatusApprovedFinal:
			breakdown.FullyApproved++
		case domain.StatusRejectedByApprover, domain.StatusRejectedByAdmin:
			breakdown.Rejected++
		}
	}
	return breakdown
}

// buildRecentPending returns the 5 most recently created claims still in a
// pending state, newest first, reduced to the dashboard projection.
func buildRecentPending(claims []domain.Claim, typeDescs map[int]string) []domain.RecentPendingClaim {
	pending := make([]domain.Claim, 0, len(claims))
	for _, c := range claims {
		if statusIn(c.Status, domain.PendingStatuses) {
			pending = append(pending, c)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].ClaimCreationDate.After(pending[j].ClaimCreationDate)
	})
	if len(pending) > 5 {
		pending = pending[:5]
	}

	out := make([]domain.RecentPendingClaim, len(pending))
	for i, c := range pending {
		name, ok := typeDescs[c.Type]
		if !ok {
			name = unknownDescription
		}
		out[i] = domain.RecentPendingClaim{
			ID:     c.ClaimID,
			Title:  c.Title,
			Amount: c.Amount,
			Date:   c.ClaimCreationDate,
			Status: c.Status,
			Type:   name,
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
