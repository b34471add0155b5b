package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:               "est-1",
		JobID:            "job-1",
		Revision:         1,
		ServiceType:      entities.ServiceInsulation,
		BuildingType:     entities.BuildingResidential,
		LineItems:        []entities.LineItem{entities.NewLineItem("m-1", entities.LineItemInsulation, "Closed cell", decimal.NewFromInt(120), decimal.RequireFromString("2.50"))},
		MarkupPercentage: decimal.NewFromInt(25),
		Subtotal:         decimal.NewFromInt(300),
		TotalAmount:      decimal.NewFromInt(375),
		Status:           entities.EstimateStatusDraft,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	res := FromEstimate(e)
	if res.EstimateID != "est-1" || res.Status != "draft" || len(res.LineItems) != 1 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.LineItems[0].Total.String() != "300" {
		t.Fatalf("unexpected line total: %s", res.LineItems[0].Total)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"total_amount":"375"`) {
		t.Fatalf("expected money rendered as decimal string, got %s", raw)
	}
	if strings.Contains(string(raw), "approved_at") {
		t.Fatalf("expected approved_at omitted for draft, got %s", raw)
	}
}

func TestFromJobCompletion(t *testing.T) {
	c := entities.Commission{ID: "u1#job-1#backend", Phase: entities.CommissionBackend, Amount: decimal.NewFromInt(100)}
	res := FromJobCompletion(usecase.JobCompletion{Job: entities.Job{ID: "job-1", Status: entities.JobStatusWon}, Commission: &c})
	if res.Job.Status != "won" || res.Commission == nil || res.Commission.Phase != "backend" || res.Created {
		t.Fatalf("unexpected completion: %+v", res)
	}

	res = FromJobCompletion(usecase.JobCompletion{Job: entities.Job{ID: "job-2"}})
	if res.Commission != nil {
		t.Fatalf("expected no commission")
	}
}

func TestFromMeasurement_OmitsUnsetThickness(t *testing.T) {
	m := entities.Measurement{ID: "m-1", ThicknessInches: decimal.Zero, ClosedCellInches: decimal.NewFromInt(2)}
	res := FromMeasurement(m)
	if res.ThicknessInches != nil || res.ClosedCellInches == nil || res.ClosedCellInches.String() != "2" {
		t.Fatalf("unexpected measurement response: %+v", res)
	}
}

func TestFromRevenueBySource(t *testing.T) {
	res := FromRevenueBySource("2026-04", map[string]decimal.Decimal{
		"referral": decimal.RequireFromString("5000.50"),
		"website":  decimal.Zero,
	})
	if res.Total.String() != "5000.5" || len(res.Sources) != 2 {
		t.Fatalf("unexpected revenue response: %+v", res)
	}
}
