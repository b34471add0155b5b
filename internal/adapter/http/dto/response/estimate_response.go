package response

import (
	"time"

	"homeservices_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type LineItemResponse struct {
	SourceID    string          `json:"source_id"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	RValue      string          `json:"r_value,omitempty"`
}

type EstimateResponse struct {
	EstimateID       string             `json:"estimate_id"`
	JobID            string             `json:"job_id"`
	Revision         int                `json:"revision"`
	SupersedesID     string             `json:"supersedes_id,omitempty"`
	SalespersonID    string             `json:"salesperson_id"`
	ServiceType      string             `json:"service_type"`
	BuildingType     string             `json:"building_type"`
	TierFlag         string             `json:"tier_flag,omitempty"`
	LineItems        []LineItemResponse `json:"line_items"`
	MarkupPercentage decimal.Decimal    `json:"markup_percentage"`
	Subtotal         decimal.Decimal    `json:"subtotal"`
	CostBasis        decimal.Decimal    `json:"cost_basis"`
	TotalAmount      decimal.Decimal    `json:"total_amount"`
	MinimumJobValue  decimal.Decimal    `json:"minimum_job_value"`
	BelowMinimum     bool               `json:"below_minimum"`
	RequiresApproval bool               `json:"requires_approval"`
	ApprovalMessage  string             `json:"approval_message,omitempty"`
	Status           string             `json:"status"`
	ApprovedBy       string             `json:"approved_by,omitempty"`
	ApprovedAt       *time.Time         `json:"approved_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]LineItemResponse, 0, len(e.LineItems))
	for _, li := range e.LineItems {
		items = append(items, LineItemResponse{
			SourceID:    li.SourceID,
			Kind:        string(li.Kind),
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Total:       li.Total,
			RValue:      li.RValue,
		})
	}
	return EstimateResponse{
		EstimateID:       e.ID,
		JobID:            e.JobID,
		Revision:         e.Revision,
		SupersedesID:     e.SupersedesID,
		SalespersonID:    e.SalespersonID,
		ServiceType:      string(e.ServiceType),
		BuildingType:     string(e.BuildingType),
		TierFlag:         string(e.TierFlag),
		LineItems:        items,
		MarkupPercentage: e.MarkupPercentage,
		Subtotal:         e.Subtotal,
		CostBasis:        e.CostBasis,
		TotalAmount:      e.TotalAmount,
		MinimumJobValue:  e.MinimumJobValue,
		BelowMinimum:     e.BelowMinimum,
		RequiresApproval: e.RequiresApproval,
		ApprovalMessage:  e.ApprovalMessage,
		Status:           string(e.Status),
		ApprovedBy:       e.ApprovedBy,
		ApprovedAt:       e.ApprovedAt,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
