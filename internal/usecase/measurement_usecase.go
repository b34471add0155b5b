package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/domain/pricing"
	"homeservices_crm/internal/infrastructure/logger"
	"homeservices_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrMeasurementNotFound  = errors.New("measurement not found")
	ErrInvalidMeasurementID = errors.New("invalid measurement id")
	ErrMeasurementLocked    = errors.New("measurement is referenced by an approved estimate")
)

// IMeasurementUseCase captures field measurements for a job. Every write
// moves the job's total_square_feet in the same transaction.
type IMeasurementUseCase interface {
	AddMeasurement(ctx context.Context, jobID string, raw pricing.RawMeasurement) (entities.Measurement, error)
	ListByJob(ctx context.Context, jobID string) ([]entities.Measurement, error)
	DeleteMeasurement(ctx context.Context, jobID, measurementID string) error
}

type MeasurementUseCase struct {
	measurements interfaces.IMeasurementRepository
	jobs         interfaces.IJobRepository
	estimates    interfaces.IEstimateRepository
	prices       interfaces.IPricingSource
	now          func() time.Time
	log          *logrus.Entry
}

var _ IMeasurementUseCase = (*MeasurementUseCase)(nil)

func NewMeasurementUseCase(
	measurements interfaces.IMeasurementRepository,
	jobs interfaces.IJobRepository,
	estimates interfaces.IEstimateRepository,
	prices interfaces.IPricingSource,
) *MeasurementUseCase {
	return &MeasurementUseCase{
		measurements: measurements,
		jobs:         jobs,
		estimates:    estimates,
		prices:       prices,
		now:          func() time.Time { return time.Now().UTC() },
		log:          logger.For("measurement", "usecase"),
	}
}

func (u *MeasurementUseCase) AddMeasurement(ctx context.Context, jobID string, raw pricing.RawMeasurement) (entities.Measurement, error) {
	job, err := u.openJob(ctx, jobID)
	if err != nil {
		return entities.Measurement{}, err
	}

	m, err := pricing.NormalizeMeasurement(raw, u.prices.Current().Limits)
	if err != nil {
		return entities.Measurement{}, err
	}
	m.ID = uuid.NewString()
	m.JobID = job.ID
	m.CreatedAt = u.now()

	created, err := u.measurements.CreateWithAggregate(ctx, m)
	if err != nil {
		logger.LogError(u.log, "AddMeasurement", map[string]string{"job_id": job.ID}, err)
		return entities.Measurement{}, err
	}
	u.log.WithFields(logrus.Fields{
		"job_id":         job.ID,
		"measurement_id": created.ID,
		"square_feet":    created.SquareFeet.StringFixed(2),
	}).Info("measurement recorded")
	return created, nil
}

func (u *MeasurementUseCase) ListByJob(ctx context.Context, jobID string) ([]entities.Measurement, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.measurements.ListByJobID(ctx, jobID)
}

func (u *MeasurementUseCase) DeleteMeasurement(ctx context.Context, jobID, measurementID string) error {
	measurementID = strings.TrimSpace(measurementID)
	if measurementID == "" {
		return ErrInvalidMeasurementID
	}
	job, err := u.openJob(ctx, jobID)
	if err != nil {
		return err
	}

	m, err := u.measurements.GetByID(ctx, measurementID)
	if err != nil {
		return err
	}
	if m.ID == "" || m.JobID != job.ID {
		return ErrMeasurementNotFound
	}

	estimates, err := u.estimates.ListByJobID(ctx, job.ID)
	if err != nil {
		return err
	}
	for _, e := range estimates {
		if e.Status == entities.EstimateStatusApproved && e.References(m.ID) {
			return ErrMeasurementLocked
		}
	}

	if err := u.measurements.DeleteWithAggregate(ctx, m); err != nil {
		logger.LogError(u.log, "DeleteMeasurement", map[string]string{"job_id": job.ID, "measurement_id": m.ID}, err)
		return err
	}
	u.log.WithFields(logrus.Fields{"job_id": job.ID, "measurement_id": m.ID}).Info("measurement deleted")
	return nil
}

// openJob loads a job that still accepts measurements.
func (u *MeasurementUseCase) openJob(ctx context.Context, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if job.Status.IsClosed() {
		return entities.Job{}, ErrJobClosed
	}
	return job, nil
}
