package response

import (
	"homeservices_crm/internal/domain/analytics"

	"github.com/shopspring/decimal"
)

type CommissionSummaryResponse struct {
	UserID string                                `json:"user_id,omitempty"`
	Month  string                                `json:"month,omitempty"`
	Users  map[string]analytics.CommissionTotals `json:"users"`
}

type RevenueBySourceResponse struct {
	Month   string                     `json:"month,omitempty"`
	Sources map[string]decimal.Decimal `json:"sources"`
	Total   decimal.Decimal            `json:"total"`
}

func FromRevenueBySource(month string, sources map[string]decimal.Decimal) RevenueBySourceResponse {
	total := decimal.Zero
	for _, v := range sources {
		total = total.Add(v)
	}
	return RevenueBySourceResponse{Month: month, Sources: sources, Total: total}
}
