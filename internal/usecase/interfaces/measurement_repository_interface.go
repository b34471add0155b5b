package interfaces

import (
	"context"

	"homeservices_crm/internal/domain/entities"
)

// IMeasurementRepository writes a measurement and adjusts the owning job's
// total_square_feet in one transaction.
type IMeasurementRepository interface {
	CreateWithAggregate(ctx context.Context, m entities.Measurement) (entities.Measurement, error)
	DeleteWithAggregate(ctx context.Context, m entities.Measurement) error
	GetByID(ctx context.Context, id string) (entities.Measurement, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Measurement, error)
}
