package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionPhase string

const (
	CommissionFrontend CommissionPhase = "frontend"
	CommissionBackend  CommissionPhase = "backend"
)

// Commission is an immutable payout record. There is at most one per
// (user, job, phase); its ID is derived from that key so a replayed trigger
// collides with the existing row instead of creating a second one.
//
// Storage model (DynamoDB):
//   - PK: id (user_id#job_id#phase)
//   - GSI1 (paid_month-index): paid_month
type Commission struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	JobID      string          `json:"job_id"`
	EstimateID string          `json:"estimate_id"`
	Phase      CommissionPhase `json:"phase"`
	Rate       decimal.Decimal `json:"rate"`
	BaseAmount decimal.Decimal `json:"base_amount"`
	Amount     decimal.Decimal `json:"amount"`
	PaidMonth  string          `json:"paid_month"`
	CreatedAt  time.Time       `json:"created_at"`
}

func CommissionKey(userID, jobID string, phase CommissionPhase) string {
	return userID + "#" + jobID + "#" + string(phase)
}

// MonthKey formats t as YYYY-MM in loc.
func MonthKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01")
}
