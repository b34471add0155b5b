package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/usecase/interfaces"
	mock_interfaces "homeservices_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type jobDeps struct {
	jobs        *mock_interfaces.MockIJobRepository
	estimates   *mock_interfaces.MockIEstimateRepository
	commissions *mock_interfaces.MockICommissionRepository
	locker      *mock_interfaces.MockILocker
}

func newJobUseCase(t *testing.T, locker *mock_interfaces.MockILocker) (*JobUseCase, jobDeps) {
	ctrl := gomock.NewController(t)
	d := jobDeps{
		jobs:        mock_interfaces.NewMockIJobRepository(ctrl),
		estimates:   mock_interfaces.NewMockIEstimateRepository(ctrl),
		commissions: mock_interfaces.NewMockICommissionRepository(ctrl),
		locker:      locker,
	}
	if d.locker == nil {
		d.locker = mock_interfaces.NewMockILocker(ctrl)
	}
	uc := NewJobUseCase(d.jobs, d.estimates, d.commissions, d.locker, defaultPrices(ctrl), chicago())
	uc.now = func() time.Time { return fixedNow }
	return uc, d
}

func TestJobUseCase_CreateJob(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc, _ := newJobUseCase(t, nil)
		cases := map[string]CreateJobInput{
			"customer_name":  {SalespersonID: "rep-1", ServiceType: "insulation"},
			"salesperson_id": {CustomerName: "Ada", ServiceType: "insulation"},
			"service_type":   {CustomerName: "Ada", SalespersonID: "rep-1", ServiceType: "roofing"},
			"building_type":  {CustomerName: "Ada", SalespersonID: "rep-1", ServiceType: "hvac", BuildingType: "barn"},
		}
		for field, in := range cases {
			_, err := uc.CreateJob(context.Background(), in)
			var verr *entities.ValidationError
			if !errors.As(err, &verr) || verr.Field != field {
				t.Fatalf("expected validation error on %s, got %v", field, err)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, d := newJobUseCase(t, nil)
		d.jobs.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" || j.Status != entities.JobStatusPending || j.ServiceType != entities.ServiceInsulation {
					t.Fatalf("unexpected job: %+v", j)
				}
				if j.BuildingType != entities.BuildingResidential || j.LeadSource != "google_ads" {
					t.Fatalf("expected defaults and normalized source, got %+v", j)
				}
				return j, nil
			},
		)

		res, err := uc.CreateJob(context.Background(), CreateJobInput{
			CustomerName:  " Ada Lovelace ",
			LeadSource:    "Google Ads",
			SalespersonID: "rep-1",
			ServiceType:   "Insulation",
		})
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if res.CustomerName != "Ada Lovelace" || !res.CreatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestJobUseCase_UpdateStatus(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, d := newJobUseCase(t, nil)
		d.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)
		_, err := uc.UpdateStatus(context.Background(), "job-1", entities.JobStatusLost)
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("closed job cannot move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker, released := grantingLocker(ctrl, "lock:job:job-1")
		uc, d := newJobUseCase(t, locker)
		d.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusLost}, nil)
		_, err := uc.UpdateStatus(context.Background(), "job-1", entities.JobStatusWon)
		var terr *entities.InvalidTransitionError
		if !errors.As(err, &terr) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
		if !*released {
			t.Fatalf("expected lock release")
		}
	})

	t.Run("won needs an approved estimate", func(t *testing.T) {
		cases := map[string]struct {
			job      entities.Job
			estimate *entities.Estimate
		}{
			"no estimate": {
				job: entities.Job{ID: "job-1", Status: entities.JobStatusInProgress},
			},
			"draft estimate": {
				job:      entities.Job{ID: "job-1", Status: entities.JobStatusPending, CurrentEstimateID: "est-1"},
				estimate: &entities.Estimate{ID: "est-1", JobID: "job-1", Status: entities.EstimateStatusDraft},
			},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				locker, _ := grantingLocker(ctrl, "lock:job:job-1")
				uc, d := newJobUseCase(t, locker)
				d.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(tc.job, nil)
				if tc.estimate != nil {
					d.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(*tc.estimate, nil)
				}

				_, err := uc.UpdateStatus(context.Background(), "job-1", entities.JobStatusWon)
				var cerr *entities.ConsistencyError
				if !errors.As(err, &cerr) {
					t.Fatalf("expected ConsistencyError, got %v", err)
				}
			})
		}
	})

	t.Run("won on an approved estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker, released := grantingLocker(ctrl, "lock:job:job-1")
		uc, d := newJobUseCase(t, locker)
		job := entities.Job{ID: "job-1", Status: entities.JobStatusInProgress, CurrentEstimateID: "est-1"}
		d.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		d.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(approvedEstimate("est-1", "job-1", "3750"), nil)
		d.jobs.EXPECT().UpdateStatus(gomock.Any(), "job-1", entities.JobStatusInProgress, entities.JobStatusWon).
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusWon, CurrentEstimateID: "est-1"}, nil)

		res, err := uc.UpdateStatus(context.Background(), "job-1", entities.JobStatusWon)
		if err != nil || res.Status != entities.JobStatusWon || res.IsCompleted() {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
		if !*released {
			t.Fatalf("expected lock release")
		}
	})

	t.Run("won while the job is busy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker := mock_interfaces.NewMockILocker(ctrl)
		locker.EXPECT().Acquire(gomock.Any(), "lock:job:job-1", jobLockTTL).Return(nil, interfaces.ErrLockNotObtained)
		uc, _ := newJobUseCase(t, locker)

		_, err := uc.UpdateStatus(context.Background(), "job-1", entities.JobStatusWon)
		if !errors.Is(err, ErrJobBusy) {
			t.Fatalf("expected ErrJobBusy, got %v", err)
		}
	})

	t.Run("lost the race", func(t *testing.T) {
		uc, d := newJobUseCase(t, nil)
		d.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusPending}, nil)
		d.jobs.EXPECT().UpdateStatus(gomock.Any(), "job-1", entities.JobStatusPending, entities.JobStatusInProgress).Return(entities.Job{}, nil)
		_, err := uc.UpdateStatus(context.Background(), "job-1", entities.JobStatusInProgress)
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, d := newJobUseCase(t, nil)
		d.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusInProgress}, nil)
		d.jobs.EXPECT().UpdateStatus(gomock.Any(), "job-1", entities.JobStatusInProgress, entities.JobStatusLost).
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusLost}, nil)
		res, err := uc.UpdateStatus(context.Background(), " job-1 ", entities.JobStatusLost)
		if err != nil || res.Status != entities.JobStatusLost {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestJobUseCase_CompleteJob(t *testing.T) {
	t.Run("busy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker := mock_interfaces.NewMockILocker(ctrl)
		locker.EXPECT().Acquire(gomock.Any(), "lock:job:job-1", jobLockTTL).Return(nil, interfaces.ErrLockNotObtained)
		uc, _ := newJobUseCase(t, locker)

		_, err := uc.CompleteJob(context.Background(), "job-1")
		if !errors.Is(err, ErrJobBusy) {
			t.Fatalf("expected ErrJobBusy, got %v", err)
		}
	})

	t.Run("lost job earns nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker, released := grantingLocker(ctrl, "lock:job:job-1")
		uc, d := newJobUseCase(t, locker)
		d.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusLost, CurrentEstimateID: "est-1"}, nil)

		_, err := uc.CompleteJob(context.Background(), "job-1")
		var terr *entities.InvalidTransitionError
		if !errors.As(err, &terr) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
		if !*released {
			t.Fatalf("expected lock release")
		}
	})

	t.Run("estimate not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker, _ := grantingLocker(ctrl, "lock:job:job-1")
		uc, d := newJobUseCase(t, locker)
		d.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusInProgress, CurrentEstimateID: "est-1"}, nil)
		d.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", JobID: "job-1", Status: entities.EstimateStatusSent}, nil)

		_, err := uc.CompleteJob(context.Background(), "job-1")
		var cerr *entities.ConsistencyError
		if !errors.As(err, &cerr) {
			t.Fatalf("expected ConsistencyError, got %v", err)
		}
	})

	t.Run("records backend commission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker, _ := grantingLocker(ctrl, "lock:job:job-1")
		uc, d := newJobUseCase(t, locker)
		job := entities.Job{ID: "job-1", SalespersonID: "rep-1", Status: entities.JobStatusWon, CurrentEstimateID: "est-1"}
		est := approvedEstimate("est-1", "job-1", "10000")

		d.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		d.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil).Times(2)
		d.jobs.EXPECT().Complete(gomock.Any(), "job-1", entities.JobStatusWon, fixedNow).DoAndReturn(
			func(_ context.Context, _ string, _ entities.JobStatus, at time.Time) (entities.Job, error) {
				done := job
				done.CompletedAt = &at
				return done, nil
			},
		)
		d.commissions.EXPECT().CreateIfAbsent(gomock.Any(), gomock.AssignableToTypeOf(entities.Commission{})).DoAndReturn(
			func(_ context.Context, c entities.Commission) (bool, error) {
				if c.ID != "rep-1#job-1#backend" || c.Amount.StringFixed(2) != "100.00" {
					t.Fatalf("unexpected commission: %+v", c)
				}
				// 23:30 UTC on April 30th is still April in Chicago.
				if c.PaidMonth != "2026-04" {
					t.Fatalf("expected paid month 2026-04, got %s", c.PaidMonth)
				}
				return true, nil
			},
		)

		res, err := uc.CompleteJob(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if !res.Created || res.Commission == nil || !res.Job.IsCompleted() {
			t.Fatalf("unexpected completion: %+v", res)
		}
	})

	t.Run("replay is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker, _ := grantingLocker(ctrl, "lock:job:job-1")
		uc, d := newJobUseCase(t, locker)
		done := fixedNow.Add(-time.Hour)
		job := entities.Job{ID: "job-1", SalespersonID: "rep-1", Status: entities.JobStatusWon, CurrentEstimateID: "est-1", CompletedAt: &done}
		stored := entities.Commission{ID: "rep-1#job-1#backend", UserID: "rep-1", JobID: "job-1", Phase: entities.CommissionBackend}

		d.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		d.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(approvedEstimate("est-1", "job-1", "10000"), nil)
		d.commissions.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil)
		d.commissions.EXPECT().GetByID(gomock.Any(), "rep-1#job-1#backend").Return(stored, nil)

		res, err := uc.CompleteJob(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if res.Created || res.Commission == nil || res.Commission.ID != stored.ID {
			t.Fatalf("expected existing commission, got %+v", res)
		}
	})
}
