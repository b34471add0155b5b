// Package commission computes the two-phase sales payout. Frontend commission
// rewards a profitable approved estimate; backend commission rewards a
// completed job. The functions are pure: persisting the result at most once
// per (user, job, phase) is the caller's job.
package commission

import (
	"strings"
	"time"

	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// Rules are the rates and floor applied to commissions.
type Rules struct {
	FrontendRate decimal.Decimal
	BackendRate  decimal.Decimal
	MinJobValue  decimal.Decimal
	Location     *time.Location
}

func RulesFromTable(t *pricing.Table, loc *time.Location) Rules {
	return Rules{
		FrontendRate: decimal.NewFromFloat(t.Commission.FrontendRate),
		BackendRate:  decimal.NewFromFloat(t.Commission.BackendRate),
		MinJobValue:  decimal.NewFromFloat(t.Commission.MinJobValue),
		Location:     loc,
	}
}

// ComputeFrontend returns the frontend commission for an approved estimate, or
// nil when the estimate is not profitable or is under the minimum job value.
func ComputeFrontend(est entities.Estimate, userID string, rules Rules, now time.Time) (*entities.Commission, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, entities.NewValidationError("user_id", "is required")
	}
	if est.Status != entities.EstimateStatusApproved {
		return nil, entities.NewConsistencyError("frontend commission requested for estimate %s in status %s", est.ID, est.Status)
	}
	if !est.Profit().IsPositive() || est.TotalAmount.LessThan(rules.MinJobValue) {
		return nil, nil
	}

	at := now
	if est.ApprovedAt != nil {
		at = *est.ApprovedAt
	}
	c := build(userID, est.JobID, est.ID, entities.CommissionFrontend, rules.FrontendRate, est.TotalAmount, at, rules.Location)
	c.CreatedAt = now
	return &c, nil
}

// ComputeBackend returns the backend commission for a completed job, or nil
// when the job has not been completed (including jobs that were lost).
func ComputeBackend(job entities.Job, est entities.Estimate, userID string, rules Rules, now time.Time) (*entities.Commission, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, entities.NewValidationError("user_id", "is required")
	}
	if !job.IsCompleted() {
		return nil, nil
	}
	if est.JobID != job.ID {
		return nil, entities.NewConsistencyError("estimate %s does not belong to job %s", est.ID, job.ID)
	}
	if est.Status != entities.EstimateStatusApproved {
		return nil, entities.NewConsistencyError("backend commission requested for estimate %s in status %s", est.ID, est.Status)
	}

	c := build(userID, job.ID, est.ID, entities.CommissionBackend, rules.BackendRate, est.TotalAmount, *job.CompletedAt, rules.Location)
	c.CreatedAt = now
	return &c, nil
}

func build(userID, jobID, estimateID string, phase entities.CommissionPhase, rate, base decimal.Decimal, at time.Time, loc *time.Location) entities.Commission {
	return entities.Commission{
		ID:         entities.CommissionKey(userID, jobID, phase),
		UserID:     userID,
		JobID:      jobID,
		EstimateID: estimateID,
		Phase:      phase,
		Rate:       rate,
		BaseAmount: base,
		Amount:     base.Mul(rate).Round(2),
		PaidMonth:  entities.MonthKey(at, loc),
	}
}
