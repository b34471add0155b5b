package request

import (
	"strings"

	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/domain/pricing"
	"homeservices_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

type HVACEntryRequest struct {
	SourceID         string          `json:"source_id"`
	Tons             decimal.Decimal `json:"tons"`
	DuctworkLinearFt decimal.Decimal `json:"ductwork_linear_ft"`
	VentCount        int             `json:"vent_count" binding:"gte=0"`
}

// BuildEstimateRequest prices (or re-prices) the job's current measurements.
type BuildEstimateRequest struct {
	SalespersonID    string             `json:"salesperson_id"`
	TierFlag         string             `json:"tier_flag" binding:"omitempty,oneof=premium volume specialized"`
	MarkupOverride   *decimal.Decimal   `json:"markup_override"`
	CostBasis        *decimal.Decimal   `json:"cost_basis"`
	HVAC             []HVACEntryRequest `json:"hvac" binding:"dive"`
	PlasterCondition string             `json:"plaster_condition" binding:"omitempty,oneof=good fair poor"`
	PrepHours        decimal.Decimal    `json:"prep_hours"`
	HoldDraft        bool               `json:"hold_draft"`
}

func (r BuildEstimateRequest) ToInput() usecase.BuildEstimateInput {
	in := usecase.BuildEstimateInput{
		SalespersonID:    strings.TrimSpace(r.SalespersonID),
		TierFlag:         strings.TrimSpace(r.TierFlag),
		MarkupOverride:   r.MarkupOverride,
		CostBasis:        r.CostBasis,
		PlasterCondition: strings.TrimSpace(r.PlasterCondition),
		PrepHours:        r.PrepHours,
		HoldDraft:        r.HoldDraft,
	}
	for _, h := range r.HVAC {
		in.HVAC = append(in.HVAC, pricing.HVACEntry{
			SourceID:         strings.TrimSpace(h.SourceID),
			Tons:             h.Tons,
			DuctworkLinearFt: h.DuctworkLinearFt,
			VentCount:        h.VentCount,
		})
	}
	return in
}

type TransitionEstimateRequest struct {
	Status string `json:"status" binding:"required"`
	Actor  string `json:"actor"`
}

func (r TransitionEstimateRequest) Target() entities.EstimateStatus {
	return entities.EstimateStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

// ResolveActor prefers the body actor and falls back to the caller header.
func (r TransitionEstimateRequest) ResolveActor(header string) string {
	if v := strings.TrimSpace(r.Actor); v != "" {
		return v
	}
	return strings.TrimSpace(header)
}
