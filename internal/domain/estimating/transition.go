package estimating

import (
	"strings"
	"time"

	"homeservices_crm/internal/domain/entities"
)

// SystemActor approves estimates that fall under the auto-approval threshold.
const SystemActor = "system"

var estimateTransitions = map[entities.EstimateStatus][]entities.EstimateStatus{
	entities.EstimateStatusDraft:           {entities.EstimateStatusPendingApproval, entities.EstimateStatusSent, entities.EstimateStatusApproved},
	entities.EstimateStatusPendingApproval: {entities.EstimateStatusApproved, entities.EstimateStatusRejected},
	entities.EstimateStatusSent:            {entities.EstimateStatusApproved, entities.EstimateStatusRejected},
}

// TransitionEstimate moves e to target on behalf of actor and returns the
// updated copy. The input is never modified.
func TransitionEstimate(e entities.Estimate, target entities.EstimateStatus, actor string, now time.Time) (entities.Estimate, error) {
	if !target.Valid() {
		return entities.Estimate{}, entities.NewValidationError("status", "unknown estimate status %q", target)
	}
	if !allowed(e.Status, target) {
		return entities.Estimate{}, invalid(e.Status, target, "")
	}

	actor = strings.TrimSpace(actor)
	switch target {
	case entities.EstimateStatusSent:
		if e.RequiresApproval {
			return entities.Estimate{}, invalid(e.Status, target, "estimate requires internal approval before it can be sent")
		}
		if e.BelowMinimum {
			return entities.Estimate{}, entities.NewValidationError("subtotal", "below the %s job minimum", e.MinimumJobValue.StringFixed(2))
		}
	case entities.EstimateStatusApproved:
		if e.Status == entities.EstimateStatusDraft && e.RequiresApproval {
			return entities.Estimate{}, invalid(e.Status, target, "total meets the auto-approval threshold")
		}
		if e.Status == entities.EstimateStatusPendingApproval && (actor == "" || actor == SystemActor) {
			return entities.Estimate{}, entities.NewValidationError("approved_by", "an approver is required")
		}
		if e.BelowMinimum {
			return entities.Estimate{}, entities.NewValidationError("subtotal", "below the %s job minimum", e.MinimumJobValue.StringFixed(2))
		}
	}

	out := e
	out.LineItems = append([]entities.LineItem(nil), e.LineItems...)
	out.MeasurementIDs = append([]string(nil), e.MeasurementIDs...)
	out.Status = target
	out.UpdatedAt = now

	if target == entities.EstimateStatusApproved {
		if actor == "" {
			actor = SystemActor
		}
		approvedAt := now
		out.ApprovedBy = actor
		out.ApprovedAt = &approvedAt
		out.ApprovalMessage = ""
	}
	return out, nil
}

// CanAutoApprove reports whether a draft may go straight to approved.
func CanAutoApprove(e entities.Estimate) bool {
	return e.Status == entities.EstimateStatusDraft && !e.RequiresApproval && !e.BelowMinimum
}

func allowed(from, to entities.EstimateStatus) bool {
	for _, s := range estimateTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func invalid(from, to entities.EstimateStatus, reason string) *entities.InvalidTransitionError {
	return &entities.InvalidTransitionError{Entity: "estimate", From: string(from), To: string(to), Reason: reason}
}
