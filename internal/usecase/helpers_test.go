package usecase

import (
	"context"
	"time"

	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/domain/pricing"
	mock_interfaces "homeservices_crm/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 4, 30, 23, 30, 0, 0, time.UTC)

func chicago() *time.Location {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		panic(err)
	}
	return loc
}

func defaultPrices(ctrl *gomock.Controller) *mock_interfaces.MockIPricingSource {
	src := mock_interfaces.NewMockIPricingSource(ctrl)
	src.EXPECT().Current().Return(pricing.DefaultTable()).AnyTimes()
	return src
}

func grantingLocker(ctrl *gomock.Controller, key string) (*mock_interfaces.MockILocker, *bool) {
	released := false
	locker := mock_interfaces.NewMockILocker(ctrl)
	locker.EXPECT().Acquire(gomock.Any(), key, jobLockTTL).Return(func() { released = true }, nil)
	return locker, &released
}

func approvedEstimate(id, jobID, total string) entities.Estimate {
	at := fixedNow.Add(-48 * time.Hour)
	amount := decimal.RequireFromString(total)
	return entities.Estimate{
		ID:            id,
		JobID:         jobID,
		SalespersonID: "rep-1",
		Status:        entities.EstimateStatusApproved,
		TotalAmount:   amount,
		CostBasis:     amount.Mul(decimal.NewFromFloat(0.8)),
		ApprovedBy:    "mgr-1",
		ApprovedAt:    &at,
	}
}

func echoEstimate(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	return e, nil
}
