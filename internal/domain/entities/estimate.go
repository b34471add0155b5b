package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus represents the lifecycle of an estimate.
//
// Domain notes:
//   - draft -> pending_approval -> approved | rejected
//   - draft -> sent -> approved | rejected, for estimates that skip internal approval
//   - draft -> approved only when the total is under the auto-approval threshold
//   - approved and rejected are terminal
type EstimateStatus string

const (
	EstimateStatusDraft           EstimateStatus = "draft"
	EstimateStatusPendingApproval EstimateStatus = "pending_approval"
	EstimateStatusSent            EstimateStatus = "sent"
	EstimateStatusApproved        EstimateStatus = "approved"
	EstimateStatusRejected        EstimateStatus = "rejected"
)

func (s EstimateStatus) IsTerminal() bool {
	return s == EstimateStatusApproved || s == EstimateStatusRejected
}

// IsMutable reports whether line items and totals may still be rewritten in place.
func (s EstimateStatus) IsMutable() bool {
	return s == EstimateStatusDraft || s == EstimateStatusPendingApproval
}

func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusPendingApproval, EstimateStatusSent, EstimateStatusApproved, EstimateStatusRejected:
		return true
	}
	return false
}

type BuildingType string

const (
	BuildingResidential BuildingType = "residential"
	BuildingCommercial  BuildingType = "commercial"
	BuildingMultiFamily BuildingType = "multi_family"
)

var BuildingTypes = []BuildingType{BuildingResidential, BuildingCommercial, BuildingMultiFamily}

// TierFlag selects an alternate markup tier. The empty flag is the default tier.
type TierFlag string

const (
	TierDefault     TierFlag = ""
	TierPremium     TierFlag = "premium"
	TierVolume      TierFlag = "volume"
	TierSpecialized TierFlag = "specialized"
)

// Estimate is the priced proposal for a job, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//   - GSI2 (status-index): status
//
// Monetary representation:
//   - Subtotal is the sum of line totals.
//   - TotalAmount is Subtotal marked up by MarkupPercentage, rounded half-up to cents.
//   - CostBasis is what the contractor pays; it defaults to Subtotal.
//
// A closed estimate (approved/rejected) is never rewritten. Later changes to the
// job's measurements produce a new revision with SupersedesID pointing back.
type Estimate struct {
	ID               string          `json:"id"`
	JobID            string          `json:"job_id"`
	Revision         int             `json:"revision"`
	SupersedesID     string          `json:"supersedes_id,omitempty"`
	SalespersonID    string          `json:"salesperson_id"`
	ServiceType      ServiceType     `json:"service_type"`
	BuildingType     BuildingType    `json:"building_type"`
	TierFlag         TierFlag        `json:"tier_flag,omitempty"`
	LineItems        []LineItem      `json:"line_items"`
	MeasurementIDs   []string        `json:"measurement_ids,omitempty"`
	MarkupPercentage decimal.Decimal `json:"markup_percentage"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	CostBasis        decimal.Decimal `json:"cost_basis"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	MinimumJobValue  decimal.Decimal `json:"minimum_job_value"`
	BelowMinimum     bool            `json:"below_minimum"`
	RequiresApproval bool            `json:"requires_approval"`
	ApprovalMessage  string          `json:"approval_message,omitempty"`
	Status           EstimateStatus  `json:"status"`
	ApprovedBy       string          `json:"approved_by,omitempty"`
	ApprovedAt       *time.Time      `json:"approved_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Profit is TotalAmount minus CostBasis.
func (e Estimate) Profit() decimal.Decimal {
	return e.TotalAmount.Sub(e.CostBasis)
}

// References reports whether the estimate was priced from the measurement.
func (e Estimate) References(measurementID string) bool {
	for _, id := range e.MeasurementIDs {
		if id == measurementID {
			return true
		}
	}
	return false
}
