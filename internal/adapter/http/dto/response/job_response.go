package response

import (
	"time"

	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

type JobResponse struct {
	ID                string          `json:"id"`
	CustomerName      string          `json:"customer_name"`
	LeadSource        string          `json:"lead_source"`
	SalespersonID     string          `json:"salesperson_id"`
	ServiceType       string          `json:"service_type"`
	BuildingType      string          `json:"building_type"`
	Status            string          `json:"status"`
	TotalSquareFeet   decimal.Decimal `json:"total_square_feet"`
	MeasurementCount  int             `json:"measurement_count"`
	CurrentEstimateID string          `json:"current_estimate_id,omitempty"`
	CompletedAt       *time.Time      `json:"completed_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:                j.ID,
		CustomerName:      j.CustomerName,
		LeadSource:        j.LeadSource,
		SalespersonID:     j.SalespersonID,
		ServiceType:       string(j.ServiceType),
		BuildingType:      string(j.BuildingType),
		Status:            string(j.Status),
		TotalSquareFeet:   j.TotalSquareFeet,
		MeasurementCount:  j.MeasurementCount,
		CurrentEstimateID: j.CurrentEstimateID,
		CompletedAt:       j.CompletedAt,
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
	}
}

type CommissionResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	JobID      string          `json:"job_id"`
	EstimateID string          `json:"estimate_id"`
	Phase      string          `json:"phase"`
	Rate       decimal.Decimal `json:"rate"`
	BaseAmount decimal.Decimal `json:"base_amount"`
	Amount     decimal.Decimal `json:"amount"`
	PaidMonth  string          `json:"paid_month"`
	CreatedAt  time.Time       `json:"created_at"`
}

func FromCommission(c entities.Commission) CommissionResponse {
	return CommissionResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		JobID:      c.JobID,
		EstimateID: c.EstimateID,
		Phase:      string(c.Phase),
		Rate:       c.Rate,
		BaseAmount: c.BaseAmount,
		Amount:     c.Amount,
		PaidMonth:  c.PaidMonth,
		CreatedAt:  c.CreatedAt,
	}
}

// JobCompletionResponse reports the completed job and its backend commission.
// Created is false when the commission was recorded by an earlier completion.
type JobCompletionResponse struct {
	Job        JobResponse         `json:"job"`
	Commission *CommissionResponse `json:"commission,omitempty"`
	Created    bool                `json:"commission_created"`
}

func FromJobCompletion(c usecase.JobCompletion) JobCompletionResponse {
	res := JobCompletionResponse{Job: FromJob(c.Job), Created: c.Created}
	if c.Commission != nil {
		cr := FromCommission(*c.Commission)
		res.Commission = &cr
	}
	return res
}
