package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"homeservices_crm/internal/domain/commission"
	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/domain/estimating"
	"homeservices_crm/internal/domain/pricing"
	"homeservices_crm/internal/infrastructure/logger"
	"homeservices_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
)

// BuildEstimateInput carries what the measurements alone do not say: the
// markup tier, HVAC equipment and plaster condition.
type BuildEstimateInput struct {
	SalespersonID    string
	TierFlag         string
	MarkupOverride   *decimal.Decimal
	CostBasis        *decimal.Decimal
	HVAC             []pricing.HVACEntry
	PlasterCondition string
	PrepHours        decimal.Decimal
	// HoldDraft keeps an estimate that needs no human approval in draft so it
	// can be sent to the customer first. Otherwise it is approved by the system
	// actor as soon as it is priced.
	HoldDraft bool
}

// IEstimateUseCase exposes estimate operations.
//
//   - POST /jobs/{id}/estimates => BuildEstimate() (re-price or new revision)
//   - PATCH /estimates/{id}/status => Transition() (frontend commission on approval)
type IEstimateUseCase interface {
	BuildEstimate(ctx context.Context, jobID string, in BuildEstimateInput) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Transition(ctx context.Context, id string, target entities.EstimateStatus, actor string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	estimates    interfaces.IEstimateRepository
	jobs         interfaces.IJobRepository
	measurements interfaces.IMeasurementRepository
	locker       interfaces.ILocker
	prices       interfaces.IPricingSource
	loc          *time.Location
	now          func() time.Time
	log          *logrus.Entry
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	estimates interfaces.IEstimateRepository,
	jobs interfaces.IJobRepository,
	measurements interfaces.IMeasurementRepository,
	locker interfaces.ILocker,
	prices interfaces.IPricingSource,
	loc *time.Location,
) *EstimateUseCase {
	return &EstimateUseCase{
		estimates:    estimates,
		jobs:         jobs,
		measurements: measurements,
		locker:       locker,
		prices:       prices,
		loc:          loc,
		now:          func() time.Time { return time.Now().UTC() },
		log:          logger.For("estimate", "usecase"),
	}
}

// BuildEstimate prices the job's measurements. A draft or pending estimate is
// re-priced in place; a sent, approved or rejected one is superseded by a new
// revision.
func (u *EstimateUseCase) BuildEstimate(ctx context.Context, jobID string, in BuildEstimateInput) (entities.Estimate, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Estimate{}, ErrInvalidJobID
	}

	release, err := u.locker.Acquire(ctx, jobLockKey(jobID), jobLockTTL)
	if err != nil {
		if errors.Is(err, interfaces.ErrLockNotObtained) {
			return entities.Estimate{}, ErrJobBusy
		}
		return entities.Estimate{}, err
	}
	defer release()

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if job.ID == "" {
		return entities.Estimate{}, ErrJobNotFound
	}
	if job.Status.IsClosed() {
		return entities.Estimate{}, ErrJobClosed
	}

	measurements, err := u.measurements.ListByJobID(ctx, job.ID)
	if err != nil {
		return entities.Estimate{}, err
	}

	table := u.prices.Current()
	items, ids, err := lineItemsFor(job, measurements, in, table)
	if err != nil {
		return entities.Estimate{}, err
	}
	salesperson := strings.TrimSpace(in.SalespersonID)
	if salesperson == "" {
		salesperson = job.SalespersonID
	}
	agg := estimating.Input{
		JobID:          job.ID,
		SalespersonID:  salesperson,
		ServiceType:    job.ServiceType,
		BuildingType:   job.BuildingType,
		TierFlag:       entities.TierFlag(strings.ToLower(strings.TrimSpace(in.TierFlag))),
		LineItems:      items,
		MeasurementIDs: ids,
		MarkupOverride: in.MarkupOverride,
		CostBasis:      in.CostBasis,
	}

	est, err := u.persistPriced(ctx, job, agg, table)
	if err != nil {
		return entities.Estimate{}, err
	}

	if !in.HoldDraft && estimating.CanAutoApprove(est) {
		return u.transition(ctx, est, entities.EstimateStatusApproved, estimating.SystemActor)
	}
	return est, nil
}

func (u *EstimateUseCase) persistPriced(ctx context.Context, job entities.Job, agg estimating.Input, table *pricing.Table) (entities.Estimate, error) {
	now := u.now()

	var prev entities.Estimate
	if job.CurrentEstimateID != "" {
		var err error
		prev, err = u.estimates.GetByID(ctx, job.CurrentEstimateID)
		if err != nil {
			return entities.Estimate{}, err
		}
	}

	if prev.ID != "" && prev.Status.IsMutable() {
		e, err := estimating.Reprice(prev, agg, table)
		if err != nil {
			return entities.Estimate{}, err
		}
		e.UpdatedAt = now
		saved, err := u.estimates.Replace(ctx, e, prev.Status)
		if err != nil {
			logger.LogError(u.log, "BuildEstimate", map[string]string{"estimate_id": prev.ID}, err)
			return entities.Estimate{}, err
		}
		if saved.ID == "" {
			return entities.Estimate{}, ErrConcurrentUpdate
		}
		u.log.WithFields(logrus.Fields{"job_id": job.ID, "estimate_id": saved.ID, "total": saved.TotalAmount.StringFixed(2)}).Info("estimate repriced")
		return saved, nil
	}

	var (
		e   entities.Estimate
		err error
	)
	if prev.ID != "" {
		e, err = estimating.Revise(prev, agg, table)
	} else {
		e, err = estimating.AggregateEstimate(agg, table)
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now

	created, err := u.estimates.CreateCurrent(ctx, e)
	if err != nil {
		logger.LogError(u.log, "BuildEstimate", map[string]string{"job_id": job.ID}, err)
		return entities.Estimate{}, err
	}
	if created.ID == "" {
		return entities.Estimate{}, ErrJobClosed
	}
	u.log.WithFields(logrus.Fields{
		"job_id":      job.ID,
		"estimate_id": created.ID,
		"revision":    created.Revision,
		"total":       created.TotalAmount.StringFixed(2),
		"approval":    created.RequiresApproval,
	}).Info("estimate created")
	return created, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, err := u.estimates.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) Transition(ctx context.Context, id string, target entities.EstimateStatus, actor string) (entities.Estimate, error) {
	cur, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.transition(ctx, cur, target, actor)
}

// transition applies the lifecycle rules and stores the result conditionally
// on the status it was read in. Entering approved writes the frontend
// commission in the same transaction.
func (u *EstimateUseCase) transition(ctx context.Context, cur entities.Estimate, target entities.EstimateStatus, actor string) (entities.Estimate, error) {
	now := u.now()
	next, err := estimating.TransitionEstimate(cur, target, actor, now)
	if err != nil {
		return entities.Estimate{}, err
	}
	next.UpdatedAt = now

	var c *entities.Commission
	if next.Status == entities.EstimateStatusApproved {
		rules := commission.RulesFromTable(u.prices.Current(), u.loc)
		c, err = commission.ComputeFrontend(next, next.SalespersonID, rules, now)
		if err != nil {
			return entities.Estimate{}, err
		}
	}

	saved, created, err := u.estimates.Transition(ctx, next, cur.Status, c)
	if err != nil {
		logger.LogError(u.log, "Transition", map[string]string{"estimate_id": cur.ID, "to": string(target)}, err)
		return entities.Estimate{}, err
	}
	if saved.ID == "" {
		return entities.Estimate{}, ErrConcurrentUpdate
	}

	fields := logrus.Fields{"estimate_id": saved.ID, "from": cur.Status, "to": saved.Status}
	if created {
		fields["frontend_commission"] = c.Amount.StringFixed(2)
	}
	u.log.WithFields(fields).Info("estimate status changed")
	return saved, nil
}

// lineItemsFor prices a job according to its service type and returns the
// measurement ids the items were derived from.
func lineItemsFor(job entities.Job, measurements []entities.Measurement, in BuildEstimateInput, t *pricing.Table) ([]entities.LineItem, []string, error) {
	var (
		items []entities.LineItem
		ids   []string
	)
	switch job.ServiceType {
	case entities.ServiceHVAC:
		for i, entry := range in.HVAC {
			if entry.SourceID == "" {
				entry.SourceID = fmt.Sprintf("hvac-%d", i+1)
			}
			priced, err := pricing.PriceHVAC(entry, t)
			if err != nil {
				return nil, nil, err
			}
			items = append(items, priced...)
		}
		if len(items) == 0 {
			return nil, nil, entities.NewConsistencyError("hvac job %s has no equipment entries", job.ID)
		}
		return items, ids, nil

	case entities.ServicePlaster:
		if len(measurements) == 0 {
			return nil, nil, entities.NewConsistencyError("job %s has no measurements", job.ID)
		}
		cond, err := pricing.ParsePlasterCondition(in.PlasterCondition)
		if err != nil {
			return nil, nil, err
		}
		for i, m := range measurements {
			prep := decimal.Zero
			if i == 0 {
				prep = in.PrepHours
			}
			priced, err := pricing.PricePlaster(pricing.PlasterEntryFromMeasurement(m, cond, prep), t)
			if err != nil {
				return nil, nil, err
			}
			items = append(items, priced...)
			ids = append(ids, m.ID)
		}
		return items, ids, nil

	default:
		if len(measurements) == 0 {
			return nil, nil, entities.NewConsistencyError("job %s has no measurements", job.ID)
		}
		for _, m := range measurements {
			item, err := pricing.PriceLineItem(m, t)
			if err != nil {
				return nil, nil, err
			}
			items = append(items, item)
			ids = append(ids, m.ID)
		}
		return items, ids, nil
	}
}
