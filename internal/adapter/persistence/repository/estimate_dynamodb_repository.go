package repository

import (
	"context"
	"time"

	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimatesJobIDIndex       = "job_id-index"
	estimatesStatusIndex      = "status-index"
)

type lineItemItem struct {
	SourceID    string `dynamodbav:"source_id"`
	Kind        string `dynamodbav:"kind"`
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Total       string `dynamodbav:"total"`
	RValue      string `dynamodbav:"r_value,omitempty"`
}

type estimateItem struct {
	ID               string         `dynamodbav:"id"`
	JobID            string         `dynamodbav:"job_id"`
	Revision         int            `dynamodbav:"revision"`
	SupersedesID     string         `dynamodbav:"supersedes_id,omitempty"`
	SalespersonID    string         `dynamodbav:"salesperson_id"`
	ServiceType      string         `dynamodbav:"service_type"`
	BuildingType     string         `dynamodbav:"building_type"`
	TierFlag         string         `dynamodbav:"tier_flag,omitempty"`
	LineItems        []lineItemItem `dynamodbav:"line_items"`
	MeasurementIDs   []string       `dynamodbav:"measurement_ids,omitempty"`
	MarkupPercentage string         `dynamodbav:"markup_percentage"`
	Subtotal         string         `dynamodbav:"subtotal"`
	CostBasis        string         `dynamodbav:"cost_basis"`
	TotalAmount      string         `dynamodbav:"total_amount"`
	MinimumJobValue  string         `dynamodbav:"minimum_job_value"`
	BelowMinimum     bool           `dynamodbav:"below_minimum"`
	RequiresApproval bool           `dynamodbav:"requires_approval"`
	ApprovalMessage  string         `dynamodbav:"approval_message,omitempty"`
	Status           string         `dynamodbav:"status"`
	ApprovedBy       string         `dynamodbav:"approved_by,omitempty"`
	ApprovedAt       string         `dynamodbav:"approved_at,omitempty"`
	CreatedAt        string         `dynamodbav:"created_at"`
	UpdatedAt        string         `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//   - GSI: status-index (PK: status)
//
// Every rewrite is a whole-item put conditioned on the status the caller read,
// so two writers racing on the same estimate cannot both succeed.
type EstimateDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	jobsTable        string
	commissionsTable string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
		jobsTable:        jobsTableName(),
		commissionsTable: commissionsTableName(),
	}
}

// CreateCurrent puts a new estimate and points its job at it in one
// transaction. A job that is gone or no longer pending/in_progress gets
// neither write and a zero Estimate is returned.
func (r *EstimateDynamoRepository) CreateCurrent(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{Update: r.pointJobAt(e)},
		},
	})
	if err != nil {
		if reasons := cancellationReasons(err); len(reasons) == 2 && reasons[0] != conditionalCheckFailed && reasons[1] == conditionalCheckFailed {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) pointJobAt(e entities.Estimate) *types.Update {
	return &types.Update{
		TableName: aws.String(r.jobsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: e.JobID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status IN (:pending, :in_progress)"),
		UpdateExpression:    aws.String("SET #current_estimate_id = :eid, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                  "id",
			"#status":              "status",
			"#current_estimate_id": "current_estimate_id",
			"#updated_at":          "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":     &types.AttributeValueMemberS{Value: string(entities.JobStatusPending)},
			":in_progress": &types.AttributeValueMemberS{Value: string(entities.JobStatusInProgress)},
			":eid":         &types.AttributeValueMemberS{Value: e.ID},
			":updated_at":  &types.AttributeValueMemberS{Value: formatTime(e.UpdatedAt)},
		},
	}
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Estimate, error) {
	return r.query(ctx, estimatesJobIDIndex, "job_id", jobID)
}

func (r *EstimateDynamoRepository) ListApproved(ctx context.Context) ([]entities.Estimate, error) {
	return r.query(ctx, estimatesStatusIndex, "status", string(entities.EstimateStatusApproved))
}

func (r *EstimateDynamoRepository) query(ctx context.Context, index, attr, value string) ([]entities.Estimate, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}
	items, err := unmarshalAll(raw, fromEstimateItem)
	if err != nil {
		return nil, err
	}
	sortByCreatedAt(items, func(e entities.Estimate) (time.Time, string) { return e.CreatedAt, e.ID })
	return items, nil
}

func (r *EstimateDynamoRepository) Replace(ctx context.Context, e entities.Estimate, expected entities.EstimateStatus) (entities.Estimate, error) {
	put, err := r.conditionalPut(e, expected)
	if err != nil {
		return entities.Estimate{}, err
	}
	return r.putIf(ctx, e, put)
}

// Transition stores e if the stored estimate is still in `from`. When c is set
// the commission is created in the same transaction. A commission that already
// exists for the key (an earlier revision was approved) is left untouched, the
// estimate is written alone and created is false.
func (r *EstimateDynamoRepository) Transition(ctx context.Context, e entities.Estimate, from entities.EstimateStatus, c *entities.Commission) (entities.Estimate, bool, error) {
	put, err := r.conditionalPut(e, from)
	if err != nil {
		return entities.Estimate{}, false, err
	}
	if c == nil {
		saved, err := r.putIf(ctx, e, put)
		return saved, false, err
	}

	commission, err := commissionPut(r.commissionsTable, *c)
	if err != nil {
		return entities.Estimate{}, false, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: put},
			{Put: commission},
		},
	})
	if err == nil {
		return e, true, nil
	}

	reasons := cancellationReasons(err)
	switch {
	case len(reasons) != 2:
		return entities.Estimate{}, false, err
	case reasons[0] == conditionalCheckFailed:
		return entities.Estimate{}, false, nil
	case reasons[1] == conditionalCheckFailed:
		saved, err := r.putIf(ctx, e, put)
		return saved, false, err
	default:
		return entities.Estimate{}, false, err
	}
}

func (r *EstimateDynamoRepository) conditionalPut(e entities.Estimate, status entities.EstimateStatus) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(status)},
		},
	}, nil
}

func (r *EstimateDynamoRepository) putIf(ctx context.Context, e entities.Estimate, put *types.Put) (entities.Estimate, error) {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 put.TableName,
		Item:                      put.Item,
		ConditionExpression:       put.ConditionExpression,
		ExpressionAttributeNames:  put.ExpressionAttributeNames,
		ExpressionAttributeValues: put.ExpressionAttributeValues,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	lines := make([]lineItemItem, 0, len(e.LineItems))
	for _, li := range e.LineItems {
		lines = append(lines, lineItemItem{
			SourceID:    li.SourceID,
			Kind:        string(li.Kind),
			Description: li.Description,
			Quantity:    decToString(li.Quantity),
			UnitPrice:   decToString(li.UnitPrice),
			Total:       decToString(li.Total),
			RValue:      li.RValue,
		})
	}
	return estimateItem{
		ID:               e.ID,
		JobID:            e.JobID,
		Revision:         e.Revision,
		SupersedesID:     e.SupersedesID,
		SalespersonID:    e.SalespersonID,
		ServiceType:      string(e.ServiceType),
		BuildingType:     string(e.BuildingType),
		TierFlag:         string(e.TierFlag),
		LineItems:        lines,
		MeasurementIDs:   e.MeasurementIDs,
		MarkupPercentage: decToString(e.MarkupPercentage),
		Subtotal:         decToString(e.Subtotal),
		CostBasis:        decToString(e.CostBasis),
		TotalAmount:      decToString(e.TotalAmount),
		MinimumJobValue:  decToString(e.MinimumJobValue),
		BelowMinimum:     e.BelowMinimum,
		RequiresApproval: e.RequiresApproval,
		ApprovalMessage:  e.ApprovalMessage,
		Status:           string(e.Status),
		ApprovedBy:       e.ApprovedBy,
		ApprovedAt:       formatTimePtr(e.ApprovedAt),
		CreatedAt:        formatTime(e.CreatedAt),
		UpdatedAt:        formatTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	lines := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		lines = append(lines, entities.LineItem{
			SourceID:    li.SourceID,
			Kind:        entities.LineItemKind(li.Kind),
			Description: li.Description,
			Quantity:    parseDec(li.Quantity),
			UnitPrice:   parseDec(li.UnitPrice),
			Total:       parseDec(li.Total),
			RValue:      li.RValue,
		})
	}
	return entities.Estimate{
		ID:               it.ID,
		JobID:            it.JobID,
		Revision:         it.Revision,
		SupersedesID:     it.SupersedesID,
		SalespersonID:    it.SalespersonID,
		ServiceType:      entities.ServiceType(it.ServiceType),
		BuildingType:     entities.BuildingType(it.BuildingType),
		TierFlag:         entities.TierFlag(it.TierFlag),
		LineItems:        lines,
		MeasurementIDs:   it.MeasurementIDs,
		MarkupPercentage: parseDec(it.MarkupPercentage),
		Subtotal:         parseDec(it.Subtotal),
		CostBasis:        parseDec(it.CostBasis),
		TotalAmount:      parseDec(it.TotalAmount),
		MinimumJobValue:  parseDec(it.MinimumJobValue),
		BelowMinimum:     it.BelowMinimum,
		RequiresApproval: it.RequiresApproval,
		ApprovalMessage:  it.ApprovalMessage,
		Status:           entities.EstimateStatus(it.Status),
		ApprovedBy:       it.ApprovedBy,
		ApprovedAt:       parseTimePtr(it.ApprovedAt),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
