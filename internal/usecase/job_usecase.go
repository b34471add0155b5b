package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"homeservices_crm/internal/domain/commission"
	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/infrastructure/logger"
	"homeservices_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrJobNotFound      = errors.New("job not found")
	ErrInvalidJobID     = errors.New("invalid job id")
	ErrJobClosed        = errors.New("job is closed")
	ErrJobBusy          = errors.New("job is being updated by another request")
	ErrConcurrentUpdate = errors.New("record changed concurrently, reload and retry")
)

const jobLockTTL = 30 * time.Second

func jobLockKey(jobID string) string {
	return "lock:job:" + jobID
}

type CreateJobInput struct {
	CustomerName  string
	LeadSource    string
	SalespersonID string
	ServiceType   string
	BuildingType  string
}

// JobCompletion is the outcome of completing a job. Commission is nil when the
// job does not earn a backend commission; Created is false when a previous
// completion already recorded it.
type JobCompletion struct {
	Job        entities.Job
	Commission *entities.Commission
	Created    bool
}

// IJobUseCase drives a job through the pipeline.
//
//   - POST /jobs => CreateJob()
//   - PATCH /jobs/{id}/status => UpdateStatus()
//   - POST /jobs/{id}/complete => CompleteJob() (backend commission)
type IJobUseCase interface {
	CreateJob(ctx context.Context, in CreateJobInput) (entities.Job, error)
	GetJob(ctx context.Context, id string) (entities.Job, error)
	UpdateStatus(ctx context.Context, id string, target entities.JobStatus) (entities.Job, error)
	CompleteJob(ctx context.Context, id string) (JobCompletion, error)
}

type JobUseCase struct {
	jobs        interfaces.IJobRepository
	estimates   interfaces.IEstimateRepository
	commissions interfaces.ICommissionRepository
	locker      interfaces.ILocker
	prices      interfaces.IPricingSource
	loc         *time.Location
	now         func() time.Time
	log         *logrus.Entry
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(
	jobs interfaces.IJobRepository,
	estimates interfaces.IEstimateRepository,
	commissions interfaces.ICommissionRepository,
	locker interfaces.ILocker,
	prices interfaces.IPricingSource,
	loc *time.Location,
) *JobUseCase {
	return &JobUseCase{
		jobs:        jobs,
		estimates:   estimates,
		commissions: commissions,
		locker:      locker,
		prices:      prices,
		loc:         loc,
		now:         func() time.Time { return time.Now().UTC() },
		log:         logger.For("job", "usecase"),
	}
}

func (u *JobUseCase) CreateJob(ctx context.Context, in CreateJobInput) (entities.Job, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return entities.Job{}, entities.NewValidationError("customer_name", "is required")
	}
	salesperson := strings.TrimSpace(in.SalespersonID)
	if salesperson == "" {
		return entities.Job{}, entities.NewValidationError("salesperson_id", "is required")
	}
	st := entities.ServiceType(strings.ToLower(strings.TrimSpace(in.ServiceType)))
	if !containsValue(entities.ServiceTypes, st) {
		return entities.Job{}, entities.NewValidationError("service_type", "unknown value %q", in.ServiceType)
	}
	bt := entities.BuildingType(strings.ToLower(strings.TrimSpace(in.BuildingType)))
	if bt == "" {
		bt = entities.BuildingResidential
	}
	if !containsValue(entities.BuildingTypes, bt) {
		return entities.Job{}, entities.NewValidationError("building_type", "unknown value %q", in.BuildingType)
	}

	now := u.now()
	j := entities.Job{
		ID:            uuid.NewString(),
		CustomerName:  name,
		LeadSource:    normalizeLeadSource(in.LeadSource),
		SalespersonID: salesperson,
		ServiceType:   st,
		BuildingType:  bt,
		Status:        entities.JobStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.jobs.Create(ctx, j)
	if err != nil {
		logger.LogError(u.log, "CreateJob", nil, err)
		return entities.Job{}, err
	}
	u.log.WithFields(logrus.Fields{"job_id": created.ID, "service_type": created.ServiceType}).Info("job created")
	return created, nil
}

func (u *JobUseCase) GetJob(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

// UpdateStatus moves a job along the pipeline. Winning a job here does not
// confirm completion; CompleteJob does. A job is only won on an approved
// current estimate, checked under the job lock so a rebuild cannot replace
// that estimate in between.
func (u *JobUseCase) UpdateStatus(ctx context.Context, id string, target entities.JobStatus) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if target == entities.JobStatusWon {
		release, err := u.locker.Acquire(ctx, jobLockKey(id), jobLockTTL)
		if err != nil {
			if errors.Is(err, interfaces.ErrLockNotObtained) {
				return entities.Job{}, ErrJobBusy
			}
			return entities.Job{}, err
		}
		defer release()
	}

	cur, err := u.GetJob(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if !cur.Status.CanTransitionTo(target) {
		return entities.Job{}, &entities.InvalidTransitionError{Entity: "job", From: string(cur.Status), To: string(target)}
	}
	if target == entities.JobStatusWon {
		if _, err := u.approvedEstimate(ctx, cur); err != nil {
			return entities.Job{}, err
		}
	}

	updated, err := u.jobs.UpdateStatus(ctx, cur.ID, cur.Status, target)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrConcurrentUpdate
	}
	u.log.WithFields(logrus.Fields{"job_id": cur.ID, "from": cur.Status, "to": target}).Info("job status changed")
	return updated, nil
}

// CompleteJob confirms a won job and records the backend commission. Replaying
// a completion returns the job as already completed and never creates a
// second commission.
func (u *JobUseCase) CompleteJob(ctx context.Context, id string) (JobCompletion, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return JobCompletion{}, ErrInvalidJobID
	}

	release, err := u.locker.Acquire(ctx, jobLockKey(id), jobLockTTL)
	if err != nil {
		if errors.Is(err, interfaces.ErrLockNotObtained) {
			return JobCompletion{}, ErrJobBusy
		}
		return JobCompletion{}, err
	}
	defer release()

	job, err := u.GetJob(ctx, id)
	if err != nil {
		return JobCompletion{}, err
	}

	if !job.IsCompleted() {
		if job.Status == entities.JobStatusLost {
			return JobCompletion{}, &entities.InvalidTransitionError{Entity: "job", From: string(job.Status), To: string(entities.JobStatusWon), Reason: "lost jobs cannot be completed"}
		}
		if _, err := u.approvedEstimate(ctx, job); err != nil {
			return JobCompletion{}, err
		}
		completed, err := u.jobs.Complete(ctx, job.ID, job.Status, u.now())
		if err != nil {
			logger.LogError(u.log, "CompleteJob", map[string]string{"job_id": job.ID}, err)
			return JobCompletion{}, err
		}
		if completed.ID == "" {
			return JobCompletion{}, ErrConcurrentUpdate
		}
		job = completed
		u.log.WithField("job_id", job.ID).Info("job completed")
	}

	est, err := u.approvedEstimate(ctx, job)
	if err != nil {
		return JobCompletion{}, err
	}
	rules := commission.RulesFromTable(u.prices.Current(), u.loc)
	c, err := commission.ComputeBackend(job, est, job.SalespersonID, rules, u.now())
	if err != nil {
		return JobCompletion{}, err
	}
	out := JobCompletion{Job: job, Commission: c}
	if c == nil {
		return out, nil
	}

	created, err := u.commissions.CreateIfAbsent(ctx, *c)
	if err != nil {
		logger.LogError(u.log, "CompleteJob", map[string]string{"job_id": job.ID, "commission_id": c.ID}, err)
		return JobCompletion{}, err
	}
	out.Created = created
	if !created {
		existing, err := u.commissions.GetByID(ctx, c.ID)
		if err != nil {
			return JobCompletion{}, err
		}
		if existing.ID != "" {
			out.Commission = &existing
		}
	}
	u.log.WithFields(logrus.Fields{
		"job_id":        job.ID,
		"commission_id": c.ID,
		"amount":        out.Commission.Amount.StringFixed(2),
		"created":       created,
	}).Info("backend commission recorded")
	return out, nil
}

func (u *JobUseCase) approvedEstimate(ctx context.Context, job entities.Job) (entities.Estimate, error) {
	if job.CurrentEstimateID == "" {
		return entities.Estimate{}, entities.NewConsistencyError("job %s has no estimate", job.ID)
	}
	est, err := u.estimates.GetByID(ctx, job.CurrentEstimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if est.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if est.Status != entities.EstimateStatusApproved {
		return entities.Estimate{}, entities.NewConsistencyError("job %s current estimate %s is %s, not approved", job.ID, est.ID, est.Status)
	}
	return est, nil
}

func normalizeLeadSource(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.NewReplacer("-", "_", " ", "_").Replace(v)
}

func containsValue[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
