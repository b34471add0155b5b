package request

import (
	"encoding/json"
	"testing"

	"homeservices_crm/internal/domain/entities"
)

func TestBuildEstimateRequest_ToInput(t *testing.T) {
	var r BuildEstimateRequest
	body := `{"salesperson_id":" u1 ","tier_flag":"premium","markup_override":"30","hvac":[{"source_id":"","tons":3.5,"vent_count":4}],"prep_hours":"2"}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	in := r.ToInput()
	if in.SalespersonID != "u1" || in.TierFlag != "premium" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.MarkupOverride == nil || in.MarkupOverride.String() != "30" {
		t.Fatalf("expected markup override 30, got %v", in.MarkupOverride)
	}
	if in.CostBasis != nil {
		t.Fatalf("expected nil cost basis")
	}
	if len(in.HVAC) != 1 || in.HVAC[0].Tons.String() != "3.5" || in.HVAC[0].VentCount != 4 {
		t.Fatalf("unexpected hvac entries: %+v", in.HVAC)
	}
	if in.PrepHours.String() != "2" {
		t.Fatalf("expected prep hours 2, got %s", in.PrepHours)
	}
}

func TestTransitionEstimateRequest(t *testing.T) {
	r := TransitionEstimateRequest{Status: " Approved "}
	if r.Target() != entities.EstimateStatusApproved {
		t.Fatalf("expected approved, got %q", r.Target())
	}
	if got := r.ResolveActor(" mgr-1 "); got != "mgr-1" {
		t.Fatalf("expected header actor, got %q", got)
	}
	r.Actor = "mgr-2"
	if got := r.ResolveActor("mgr-1"); got != "mgr-2" {
		t.Fatalf("expected body actor, got %q", got)
	}
}

func TestMeasurementRequest_ToRaw(t *testing.T) {
	var r MeasurementRequest
	if err := json.Unmarshal([]byte(`{"room_name":"Attic","surface_type":"ceiling","height":"8.5","width":11.25}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	raw := r.ToRaw()
	if raw.Height != "8.5" || raw.Width != "11.25" || raw.Thickness != "" {
		t.Fatalf("unexpected raw measurement: %+v", raw)
	}
}
