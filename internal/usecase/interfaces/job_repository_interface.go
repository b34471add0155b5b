package interfaces

import (
	"context"
	"time"

	"homeservices_crm/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// total_square_feet and measurement_count are never written here; they move
// only together with a measurement (see IMeasurementRepository).

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.JobStatus) (entities.Job, error)
	Complete(ctx context.Context, id string, from entities.JobStatus, at time.Time) (entities.Job, error)
}
