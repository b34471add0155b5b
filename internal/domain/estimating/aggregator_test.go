package estimating

import (
	"errors"
	"testing"
	"time"

	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(total string) entities.LineItem {
	return entities.NewLineItem("m-1", entities.LineItemInsulation, "insulation", decimal.NewFromInt(1), decimal.RequireFromString(total))
}

func input(totals ...string) Input {
	items := make([]entities.LineItem, 0, len(totals))
	for _, tot := range totals {
		items = append(items, item(tot))
	}
	return Input{
		JobID:         "job-1",
		SalespersonID: "rep-1",
		ServiceType:   entities.ServiceInsulation,
		BuildingType:  entities.BuildingResidential,
		LineItems:     items,
	}
}

func TestAggregateEstimate(t *testing.T) {
	table := pricing.DefaultTable()

	t.Run("threshold is inclusive", func(t *testing.T) {
		e, err := AggregateEstimate(input("2500", "1500"), table)
		require.NoError(t, err)
		assert.Equal(t, "4000.00", e.Subtotal.StringFixed(2))
		assert.Equal(t, "25", e.MarkupPercentage.String())
		assert.Equal(t, "5000.00", e.TotalAmount.StringFixed(2))
		assert.True(t, e.RequiresApproval)
		assert.Contains(t, e.ApprovalMessage, "approval required")
		assert.Equal(t, entities.EstimateStatusDraft, e.Status)
		assert.Equal(t, 1, e.Revision)
		assert.False(t, CanAutoApprove(e))
	})

	t.Run("under threshold auto approves", func(t *testing.T) {
		e, err := AggregateEstimate(input("3000"), table)
		require.NoError(t, err)
		assert.Equal(t, "3750.00", e.TotalAmount.StringFixed(2))
		assert.False(t, e.RequiresApproval)
		assert.Empty(t, e.ApprovalMessage)
		assert.True(t, CanAutoApprove(e))

		approved, err := TransitionEstimate(e, entities.EstimateStatusApproved, "", time.Now())
		require.NoError(t, err)
		assert.Equal(t, entities.EstimateStatusApproved, approved.Status)
		assert.Equal(t, SystemActor, approved.ApprovedBy)
		require.NotNil(t, approved.ApprovedAt)
	})

	t.Run("cost basis defaults to subtotal", func(t *testing.T) {
		e, err := AggregateEstimate(input("3000"), table)
		require.NoError(t, err)
		assert.True(t, e.CostBasis.Equal(e.Subtotal))
		assert.Equal(t, "750.00", e.Profit().StringFixed(2))
	})

	t.Run("tier flag selects alternate markup", func(t *testing.T) {
		in := input("1000")
		in.TierFlag = entities.TierPremium
		e, err := AggregateEstimate(in, table)
		require.NoError(t, err)
		assert.Equal(t, "35", e.MarkupPercentage.String())
		assert.Equal(t, "1350.00", e.TotalAmount.StringFixed(2))
	})

	t.Run("override outside bounds", func(t *testing.T) {
		for _, v := range []string{"9.99", "50.01", "60"} {
			in := input("1000")
			override := decimal.RequireFromString(v)
			in.MarkupOverride = &override
			_, err := AggregateEstimate(in, table)
			var verr *entities.ValidationError
			require.True(t, errors.As(err, &verr), "override %s: %v", v, err)
			assert.Equal(t, "markup_percentage", verr.Field)
		}
	})

	t.Run("rounds half up", func(t *testing.T) {
		e, err := AggregateEstimate(input("0.02"), table)
		require.NoError(t, err)
		assert.Equal(t, "0.03", e.TotalAmount.StringFixed(2))
	})

	t.Run("no line items", func(t *testing.T) {
		_, err := AggregateEstimate(input(), table)
		var cerr *entities.ConsistencyError
		assert.True(t, errors.As(err, &cerr), "got %v", err)
	})

	t.Run("flags jobs below minimum", func(t *testing.T) {
		e, err := AggregateEstimate(input("800"), table)
		require.NoError(t, err)
		assert.True(t, e.BelowMinimum)
		assert.Equal(t, "1000.00", e.MinimumJobValue.StringFixed(2))
		assert.Contains(t, e.ApprovalMessage, "below the 1000.00 minimum")
		assert.False(t, CanAutoApprove(e))
	})
}

func TestApplyMarkup_Monotonic(t *testing.T) {
	subtotals := []string{"0.01", "99.99", "3999.99", "123456.78"}
	for _, s := range subtotals {
		sub := decimal.RequireFromString(s)
		prev := decimal.Zero
		for m := 10; m <= 50; m++ {
			total := ApplyMarkup(sub, decimal.NewFromInt(int64(m)))
			assert.True(t, total.GreaterThanOrEqual(prev), "subtotal %s markup %d: %s < %s", s, m, total, prev)
			prev = total
		}
	}
}

func TestReviseAndReprice(t *testing.T) {
	table := pricing.DefaultTable()
	orig, err := AggregateEstimate(input("3000"), table)
	require.NoError(t, err)
	orig.ID = "est-1"
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	orig.CreatedAt = created

	repriced, err := Reprice(orig, input("3200"), table)
	require.NoError(t, err)
	assert.Equal(t, "est-1", repriced.ID)
	assert.Equal(t, created, repriced.CreatedAt)
	assert.Equal(t, "4000.00", repriced.TotalAmount.StringFixed(2))

	approved, err := TransitionEstimate(orig, entities.EstimateStatusApproved, "", time.Now())
	require.NoError(t, err)

	_, err = Reprice(approved, input("3200"), table)
	var terr *entities.InvalidTransitionError
	require.True(t, errors.As(err, &terr), "got %v", err)

	next, err := Revise(approved, input("3200"), table)
	require.NoError(t, err)
	assert.Equal(t, 2, next.Revision)
	assert.Equal(t, "est-1", next.SupersedesID)
	assert.Equal(t, entities.EstimateStatusDraft, next.Status)
	assert.Equal(t, "3750.00", approved.TotalAmount.StringFixed(2))
}
