package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ServiceType string

const (
	ServiceInsulation ServiceType = "insulation"
	ServiceHVAC       ServiceType = "hvac"
	ServicePlaster    ServiceType = "plaster"
)

var ServiceTypes = []ServiceType{ServiceInsulation, ServiceHVAC, ServicePlaster}

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusWon        JobStatus = "won"
	JobStatusLost       JobStatus = "lost"
)

var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusPending:    {JobStatusInProgress, JobStatusWon, JobStatusLost},
	JobStatusInProgress: {JobStatusWon, JobStatusLost},
}

func (s JobStatus) IsClosed() bool {
	return s == JobStatusWon || s == JobStatusLost
}

// CanTransitionTo reports whether the pipeline allows moving from s to next.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range jobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Job is a customer project moving through the pipeline.
//
// Storage model (DynamoDB):
//   - PK: id
//
// TotalSquareFeet and MeasurementCount are maintained with atomic ADD updates in
// the same transaction that writes or deletes a measurement.
type Job struct {
	ID                string          `json:"id"`
	CustomerName      string          `json:"customer_name"`
	LeadSource        string          `json:"lead_source"`
	SalespersonID     string          `json:"salesperson_id"`
	ServiceType       ServiceType     `json:"service_type"`
	BuildingType      BuildingType    `json:"building_type"`
	Status            JobStatus       `json:"status"`
	TotalSquareFeet   decimal.Decimal `json:"total_square_feet"`
	MeasurementCount  int             `json:"measurement_count"`
	CurrentEstimateID string          `json:"current_estimate_id,omitempty"`
	CompletedAt       *time.Time      `json:"completed_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// IsCompleted reports a won job whose completion has been confirmed.
func (j Job) IsCompleted() bool {
	return j.Status == JobStatusWon && j.CompletedAt != nil
}
