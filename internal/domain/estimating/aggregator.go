package estimating

import (
	"fmt"
	"strings"

	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Input is everything the aggregator needs to price one estimate.
type Input struct {
	JobID          string
	SalespersonID  string
	ServiceType    entities.ServiceType
	BuildingType   entities.BuildingType
	TierFlag       entities.TierFlag
	LineItems      []entities.LineItem
	MeasurementIDs []string

	// MarkupOverride replaces the tier percentage when set. It is range-checked
	// the same way.
	MarkupOverride *decimal.Decimal
	// CostBasis defaults to the subtotal.
	CostBasis *decimal.Decimal
}

// AggregateEstimate builds a draft estimate from priced line items. It does not
// assign an ID or timestamps.
func AggregateEstimate(in Input, t *pricing.Table) (entities.Estimate, error) {
	if len(in.LineItems) == 0 {
		return entities.Estimate{}, entities.NewConsistencyError("job %s has no priced line items", in.JobID)
	}

	markup, err := ResolveMarkup(in.BuildingType, in.TierFlag, in.MarkupOverride, t)
	if err != nil {
		return entities.Estimate{}, err
	}

	subtotal := entities.SumLineItems(in.LineItems)
	costBasis := subtotal
	if in.CostBasis != nil {
		if in.CostBasis.IsNegative() {
			return entities.Estimate{}, entities.NewValidationError("cost_basis", "must not be negative")
		}
		costBasis = *in.CostBasis
	}

	e := entities.Estimate{
		JobID:            in.JobID,
		Revision:         1,
		SalespersonID:    in.SalespersonID,
		ServiceType:      in.ServiceType,
		BuildingType:     in.BuildingType,
		TierFlag:         in.TierFlag,
		LineItems:        append([]entities.LineItem(nil), in.LineItems...),
		MeasurementIDs:   append([]string(nil), in.MeasurementIDs...),
		MarkupPercentage: markup,
		Subtotal:         subtotal,
		CostBasis:        costBasis,
		TotalAmount:      ApplyMarkup(subtotal, markup),
		MinimumJobValue:  t.MinimumJobValue(in.ServiceType),
		Status:           entities.EstimateStatusDraft,
	}
	e.BelowMinimum = e.Subtotal.LessThan(e.MinimumJobValue)
	e.RequiresApproval = e.TotalAmount.GreaterThanOrEqual(t.AutoApprovalThreshold())
	e.ApprovalMessage = approvalMessage(e, t)
	return e, nil
}

// ResolveMarkup picks the override or the building type's tier and checks it
// against the configured bounds.
func ResolveMarkup(bt entities.BuildingType, flag entities.TierFlag, override *decimal.Decimal, t *pricing.Table) (decimal.Decimal, error) {
	var markup decimal.Decimal
	if override != nil {
		markup = *override
	} else {
		var err error
		markup, err = t.MarkupFor(bt, flag)
		if err != nil {
			return decimal.Zero, err
		}
	}

	lo := decimal.NewFromFloat(t.Markup.PercentageMin)
	hi := decimal.NewFromFloat(t.Markup.PercentageMax)
	if markup.LessThan(lo) || markup.GreaterThan(hi) {
		return decimal.Zero, entities.NewValidationError("markup_percentage", "%s outside [%s, %s]", markup.String(), lo.String(), hi.String())
	}
	return markup, nil
}

// ApplyMarkup returns subtotal*(1+markup/100) rounded half-up to cents.
func ApplyMarkup(subtotal, markup decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(decimal.NewFromInt(1).Add(markup.Div(hundred))).Round(2)
}

// Reprice recomputes a mutable estimate in place from fresh input, keeping its
// identity, revision and status.
func Reprice(existing entities.Estimate, in Input, t *pricing.Table) (entities.Estimate, error) {
	if !existing.Status.IsMutable() {
		return entities.Estimate{}, &entities.InvalidTransitionError{
			Entity: "estimate",
			From:   string(existing.Status),
			To:     string(existing.Status),
			Reason: "closed estimates are never repriced; create a revision",
		}
	}
	next, err := AggregateEstimate(in, t)
	if err != nil {
		return entities.Estimate{}, err
	}
	next.ID = existing.ID
	next.Revision = existing.Revision
	next.SupersedesID = existing.SupersedesID
	next.Status = existing.Status
	next.CreatedAt = existing.CreatedAt
	return next, nil
}

// Revise builds the next revision of an estimate that can no longer change.
func Revise(previous entities.Estimate, in Input, t *pricing.Table) (entities.Estimate, error) {
	next, err := AggregateEstimate(in, t)
	if err != nil {
		return entities.Estimate{}, err
	}
	next.Revision = previous.Revision + 1
	next.SupersedesID = previous.ID
	return next, nil
}

func approvalMessage(e entities.Estimate, t *pricing.Table) string {
	var reasons []string
	if e.RequiresApproval && e.ApprovedBy == "" {
		reasons = append(reasons, fmt.Sprintf("total %s meets the %s auto-approval threshold; manager approval required",
			e.TotalAmount.StringFixed(2), t.AutoApprovalThreshold().StringFixed(2)))
	}
	if e.BelowMinimum {
		reasons = append(reasons, fmt.Sprintf("subtotal %s is below the %s minimum for %s jobs",
			e.Subtotal.StringFixed(2), e.MinimumJobValue.StringFixed(2), e.ServiceType))
	}
	return strings.Join(reasons, "; ")
}
