package interfaces

import (
	"context"

	"homeservices_crm/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Conditional writes return a zero Estimate when the stored status no longer
// matches the expected one, the same way a missing record is reported:
//   - CreateCurrent stores a new estimate and makes it the job's current one,
//     only while the job is still pending or in progress
//   - Replace rewrites a draft/pending estimate in place (re-pricing)
//   - Transition moves an estimate out of `from`, writing the frontend
//     commission (when not nil) in the same transaction; created is false
//     when that commission already existed and was left untouched

type IEstimateRepository interface {
	CreateCurrent(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Estimate, error)
	ListApproved(ctx context.Context) ([]entities.Estimate, error)
	Replace(ctx context.Context, e entities.Estimate, expected entities.EstimateStatus) (entities.Estimate, error)
	Transition(ctx context.Context, e entities.Estimate, from entities.EstimateStatus, c *entities.Commission) (saved entities.Estimate, created bool, err error)
}
