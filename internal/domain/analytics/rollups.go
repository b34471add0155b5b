package analytics

import (
	"sort"
	"strings"
	"time"

	"homeservices_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// UnknownSource collects won jobs with no recorded lead source.
const UnknownSource = "unknown"

type CommissionTotals struct {
	Frontend decimal.Decimal `json:"frontend"`
	Backend  decimal.Decimal `json:"backend"`
	Total    decimal.Decimal `json:"total"`
}

// ParseMonth validates a YYYY-MM key. The empty string means all months.
func ParseMonth(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	if _, err := time.Parse("2006-01", v); err != nil {
		return "", entities.NewValidationError("month", "must be YYYY-MM, got %q", v)
	}
	return v, nil
}

// CommissionSummary sums commissions per user, optionally restricted to one
// user and one paid month.
func CommissionSummary(commissions []entities.Commission, userID, month string) map[string]CommissionTotals {
	out := make(map[string]CommissionTotals)
	for _, c := range commissions {
		if userID != "" && c.UserID != userID {
			continue
		}
		if month != "" && c.PaidMonth != month {
			continue
		}
		t := out[c.UserID]
		switch c.Phase {
		case entities.CommissionFrontend:
			t.Frontend = t.Frontend.Add(c.Amount)
		case entities.CommissionBackend:
			t.Backend = t.Backend.Add(c.Amount)
		}
		t.Total = t.Frontend.Add(t.Backend)
		out[c.UserID] = t
	}
	if userID != "" {
		if _, ok := out[userID]; !ok {
			out[userID] = CommissionTotals{Frontend: decimal.Zero, Backend: decimal.Zero, Total: decimal.Zero}
		}
	}
	return out
}

// wonRevenue yields each won job with its approved current estimate.
func wonRevenue(jobs []entities.Job, estimates []entities.Estimate, fn func(entities.Job, entities.Estimate)) {
	byID := make(map[string]entities.Estimate, len(estimates))
	for _, e := range estimates {
		byID[e.ID] = e
	}
	for _, j := range jobs {
		if j.Status != entities.JobStatusWon {
			continue
		}
		est, ok := byID[j.CurrentEstimateID]
		if !ok || est.Status != entities.EstimateStatusApproved || est.ApprovedAt == nil {
			continue
		}
		fn(j, est)
	}
}

// RevenueBySource sums approved totals of won jobs per lead source. Every
// source in sources is present in the result, at zero when it earned nothing.
func RevenueBySource(jobs []entities.Job, estimates []entities.Estimate, sources []string, month string, loc *time.Location) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(sources))
	for _, s := range sources {
		out[s] = decimal.Zero
	}
	wonRevenue(jobs, estimates, func(j entities.Job, est entities.Estimate) {
		if month != "" && entities.MonthKey(*est.ApprovedAt, loc) != month {
			return
		}
		src := strings.TrimSpace(j.LeadSource)
		if src == "" {
			src = UnknownSource
		}
		out[src] = out[src].Add(est.TotalAmount)
	})
	return out
}

// RevenueByMonth sums approved totals of won jobs per approval month.
func RevenueByMonth(jobs []entities.Job, estimates []entities.Estimate, loc *time.Location) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	wonRevenue(jobs, estimates, func(_ entities.Job, est entities.Estimate) {
		m := entities.MonthKey(*est.ApprovedAt, loc)
		out[m] = out[m].Add(est.TotalAmount)
	})
	return out
}

// SortedKeys returns map keys in ascending order for stable rendering.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Report bundles the rollups for one query so they can be rendered together.
type Report struct {
	UserID          string                      `json:"user_id,omitempty"`
	Month           string                      `json:"month,omitempty"`
	Commissions     map[string]CommissionTotals `json:"commissions"`
	RevenueBySource map[string]decimal.Decimal  `json:"revenue_by_source"`
	RevenueByMonth  map[string]decimal.Decimal  `json:"revenue_by_month"`
}
