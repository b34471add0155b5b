package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"homeservices_crm/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func TestEstimateItem_PreservesMoneyAndApproval(t *testing.T) {
	approvedAt := time.Date(2026, 4, 12, 15, 4, 5, 0, time.UTC)
	e := entities.Estimate{
		ID:       "est-1",
		JobID:    "job-1",
		Revision: 2,
		LineItems: []entities.LineItem{
			entities.NewLineItem("m-1", entities.LineItemInsulation, "Closed cell", decimal.RequireFromString("100"), decimal.RequireFromString("2.21375")),
		},
		MeasurementIDs:   []string{"m-1"},
		MarkupPercentage: decimal.NewFromInt(25),
		Subtotal:         decimal.RequireFromString("221.38"),
		TotalAmount:      decimal.RequireFromString("276.73"),
		Status:           entities.EstimateStatusApproved,
		ApprovedBy:       "mgr-1",
		ApprovedAt:       &approvedAt,
	}

	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if s, ok := av["total_amount"].(*types.AttributeValueMemberS); !ok || s.Value != "276.73" {
		t.Fatalf("expected total_amount stored as decimal string, got %#v", av["total_amount"])
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := fromEstimateItem(it)
	if !got.LineItems[0].UnitPrice.Equal(decimal.RequireFromString("2.21375")) || got.LineItems[0].Total.String() != "221.38" {
		t.Fatalf("line item precision lost: %+v", got.LineItems[0])
	}
	if got.ApprovedAt == nil || !got.ApprovedAt.Equal(approvedAt) || !got.References("m-1") {
		t.Fatalf("unexpected estimate: %+v", got)
	}
	if _, ok := av["supersedes_id"]; ok {
		t.Fatalf("expected empty supersedes_id to be omitted")
	}
}

func TestJobItem_SquareFeetIsNumber(t *testing.T) {
	j := entities.Job{ID: "job-1", Status: entities.JobStatusPending, TotalSquareFeet: decimal.RequireFromString("120.5")}
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	n, ok := av["total_square_feet"].(*types.AttributeValueMemberN)
	if !ok || n.Value != "120.5" {
		t.Fatalf("expected number attribute, got %#v", av["total_square_feet"])
	}
	if _, ok := av["completed_at"]; ok {
		t.Fatalf("expected completed_at to be omitted")
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := fromJobItem(it); !got.TotalSquareFeet.Equal(j.TotalSquareFeet) || got.IsCompleted() {
		t.Fatalf("unexpected job: %+v", got)
	}
}

func TestMeasurementItem_RecomputesSquareFeet(t *testing.T) {
	it := measurementItem{ID: "m-1", HeightFt: "8.5", WidthFt: "11.25", SquareFeet: "1"}
	if got := fromMeasurementItem(it); got.SquareFeet.String() != "95.63" {
		t.Fatalf("expected recomputed 95.63, got %s", got.SquareFeet)
	}
}

func TestCancellationReasons(t *testing.T) {
	err := fmt.Errorf("transact: %w", &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String(conditionalCheckFailed)},
		},
	})
	got := cancellationReasons(err)
	if len(got) != 2 || got[0] != "None" || got[1] != conditionalCheckFailed {
		t.Fatalf("unexpected reasons: %v", got)
	}
	if cancellationReasons(errors.New("boom")) != nil {
		t.Fatalf("expected nil for unrelated error")
	}
	if !isConditionFailed(fmt.Errorf("put: %w", &types.ConditionalCheckFailedException{})) {
		t.Fatalf("expected conditional check failure to be detected")
	}
}

func TestSortByCreatedAt(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []entities.Measurement{
		{ID: "b", CreatedAt: base.Add(time.Minute)},
		{ID: "c", CreatedAt: base},
		{ID: "a", CreatedAt: base},
	}
	sortByCreatedAt(items, func(m entities.Measurement) (time.Time, string) { return m.CreatedAt, m.ID })
	if items[0].ID != "a" || items[1].ID != "c" || items[2].ID != "b" {
		t.Fatalf("unexpected order: %v %v %v", items[0].ID, items[1].ID, items[2].ID)
	}
}

func TestTableDefinitions(t *testing.T) {
	t.Setenv("ESTIMATES_TABLE", "crm-estimates")

	defs := TableDefinitions()
	if len(defs) != 4 {
		t.Fatalf("expected 4 tables, got %d", len(defs))
	}
	est := defs[2]
	if aws.ToString(est.TableName) != "crm-estimates" || len(est.GlobalSecondaryIndexes) != 2 {
		t.Fatalf("unexpected estimates table: %+v", est)
	}
	if got := aws.ToString(est.GlobalSecondaryIndexes[1].KeySchema[0].AttributeName); got != "status" {
		t.Fatalf("expected status-index keyed by status, got %s", got)
	}
	if len(defs[0].GlobalSecondaryIndexes) != 0 || len(est.AttributeDefinitions) != 3 {
		t.Fatalf("unexpected attribute definitions")
	}
}
