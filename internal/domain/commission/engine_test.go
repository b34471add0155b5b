package commission

import (
	"errors"
	"testing"
	"time"

	"homeservices_crm/internal/domain/analytics"
	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chicago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	return loc
}

func approvedEstimate(total, cost string, approvedAt time.Time) entities.Estimate {
	return entities.Estimate{
		ID:          "est-1",
		JobID:       "job-1",
		Status:      entities.EstimateStatusApproved,
		TotalAmount: decimal.RequireFromString(total),
		CostBasis:   decimal.RequireFromString(cost),
		ApprovedBy:  "mgr-1",
		ApprovedAt:  &approvedAt,
	}
}

func TestComputeFrontendAndBackend(t *testing.T) {
	loc := chicago(t)
	rules := RulesFromTable(pricing.DefaultTable(), loc)
	approvedAt := time.Date(2026, 4, 12, 15, 0, 0, 0, time.UTC)
	completedAt := time.Date(2026, 5, 20, 18, 0, 0, 0, time.UTC)
	now := completedAt.Add(time.Hour)

	est := approvedEstimate("10000", "8000", approvedAt)
	job := entities.Job{ID: "job-1", Status: entities.JobStatusWon, CompletedAt: &completedAt}

	front, err := ComputeFrontend(est, "rep-1", rules, now)
	require.NoError(t, err)
	require.NotNil(t, front)
	assert.Equal(t, "200.00", front.Amount.StringFixed(2))
	assert.Equal(t, "rep-1#job-1#frontend", front.ID)
	assert.Equal(t, "2026-04", front.PaidMonth)

	back, err := ComputeBackend(job, est, "rep-1", rules, now)
	require.NoError(t, err)
	require.NotNil(t, back)
	assert.Equal(t, "100.00", back.Amount.StringFixed(2))
	assert.Equal(t, "2026-05", back.PaidMonth)
	assert.NotEqual(t, front.ID, back.ID)

	summary := analytics.CommissionSummary([]entities.Commission{*front, *back}, "rep-1", "")
	assert.Equal(t, "300.00", summary["rep-1"].Total.StringFixed(2))
}

func TestComputeFrontend_Skips(t *testing.T) {
	rules := RulesFromTable(pricing.DefaultTable(), time.UTC)
	now := time.Now()

	t.Run("not approved", func(t *testing.T) {
		est := approvedEstimate("10000", "8000", now)
		est.Status = entities.EstimateStatusSent
		_, err := ComputeFrontend(est, "rep-1", rules, now)
		var cerr *entities.ConsistencyError
		assert.True(t, errors.As(err, &cerr), "got %v", err)
	})

	t.Run("under minimum job value", func(t *testing.T) {
		c, err := ComputeFrontend(approvedEstimate("499.99", "300", now), "rep-1", rules, now)
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("unprofitable", func(t *testing.T) {
		c, err := ComputeFrontend(approvedEstimate("10000", "10000", now), "rep-1", rules, now)
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := ComputeFrontend(approvedEstimate("10000", "8000", now), " ", rules, now)
		var verr *entities.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "user_id", verr.Field)
	})
}

func TestComputeBackend_Skips(t *testing.T) {
	rules := RulesFromTable(pricing.DefaultTable(), time.UTC)
	now := time.Now()
	est := approvedEstimate("10000", "8000", now)

	c, err := ComputeBackend(entities.Job{ID: "job-1", Status: entities.JobStatusLost}, est, "rep-1", rules, now)
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = ComputeBackend(entities.Job{ID: "job-1", Status: entities.JobStatusWon}, est, "rep-1", rules, now)
	require.NoError(t, err)
	assert.Nil(t, c, "won but not completed")

	_, err = ComputeBackend(entities.Job{ID: "job-2", Status: entities.JobStatusWon, CompletedAt: &now}, est, "rep-1", rules, now)
	var cerr *entities.ConsistencyError
	assert.True(t, errors.As(err, &cerr), "got %v", err)
}

func TestPaidMonth_UsesBusinessTimezone(t *testing.T) {
	loc := chicago(t)
	// 03:00 UTC on May 1st is still April 30th in Chicago.
	approvedAt := time.Date(2026, 5, 1, 3, 0, 0, 0, time.UTC)
	est := approvedEstimate("10000", "8000", approvedAt)

	c, err := ComputeFrontend(est, "rep-1", RulesFromTable(pricing.DefaultTable(), loc), approvedAt)
	require.NoError(t, err)
	assert.Equal(t, "2026-04", c.PaidMonth)

	c, err = ComputeFrontend(est, "rep-1", RulesFromTable(pricing.DefaultTable(), time.UTC), approvedAt)
	require.NoError(t, err)
	assert.Equal(t, "2026-05", c.PaidMonth)
}
