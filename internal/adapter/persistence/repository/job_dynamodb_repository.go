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
	"github.com/shopspring/decimal"
)

const defaultJobsTableName = "jobs"

type jobItem struct {
	ID                string                `dynamodbav:"id"`
	CustomerName      string                `dynamodbav:"customer_name"`
	LeadSource        string                `dynamodbav:"lead_source"`
	SalespersonID     string                `dynamodbav:"salesperson_id"`
	ServiceType       string                `dynamodbav:"service_type"`
	BuildingType      string                `dynamodbav:"building_type"`
	Status            string                `dynamodbav:"status"`
	TotalSquareFeet   attributevalue.Number `dynamodbav:"total_square_feet"`
	MeasurementCount  int                   `dynamodbav:"measurement_count"`
	CurrentEstimateID string                `dynamodbav:"current_estimate_id,omitempty"`
	CompletedAt       string                `dynamodbav:"completed_at,omitempty"`
	CreatedAt         string                `dynamodbav:"created_at"`
	UpdatedAt         string                `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// total_square_feet is a number attribute so measurement writes can move it
// with ADD inside a transaction.
type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: jobsTableName(),
	}
}

func jobsTableName() string {
	return getenvDefault("JOBS_TABLE", defaultJobsTableName)
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) List(ctx context.Context) ([]entities.Job, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return unmarshalAll(raw, fromJobItem)
}

func (r *JobDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.JobStatus) (entities.Job, error) {
	return r.update(ctx, id, "#status = :from", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :to, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *JobDynamoRepository) Complete(ctx context.Context, id string, from entities.JobStatus, at time.Time) (entities.Job, error) {
	return r.update(ctx, id, "#status = :from AND attribute_not_exists(#completed_at)", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :won, #completed_at = :completed_at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":from":         &types.AttributeValueMemberS{Value: string(from)},
			":won":          &types.AttributeValueMemberS{Value: string(entities.JobStatusWon)},
			":completed_at": &types.AttributeValueMemberS{Value: formatTime(at)},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":       "status",
			"#completed_at": "completed_at",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

// update applies build on an existing job. cond is ANDed with the existence
// check; a failed condition returns a zero Job.
func (r *JobDynamoRepository) update(
	ctx context.Context,
	id string,
	cond string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Job, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	condition := "attribute_exists(#id)"
	if cond != "" {
		condition += " AND " + cond
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Job{}, nil
	}
	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:                j.ID,
		CustomerName:      j.CustomerName,
		LeadSource:        j.LeadSource,
		SalespersonID:     j.SalespersonID,
		ServiceType:       string(j.ServiceType),
		BuildingType:      string(j.BuildingType),
		Status:            string(j.Status),
		TotalSquareFeet:   attributevalue.Number(j.TotalSquareFeet.String()),
		MeasurementCount:  j.MeasurementCount,
		CurrentEstimateID: j.CurrentEstimateID,
		CompletedAt:       formatTimePtr(j.CompletedAt),
		CreatedAt:         formatTime(j.CreatedAt),
		UpdatedAt:         formatTime(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	sqft := decimal.Zero
	if it.TotalSquareFeet != "" {
		sqft = parseDec(string(it.TotalSquareFeet))
	}
	return entities.Job{
		ID:                it.ID,
		CustomerName:      it.CustomerName,
		LeadSource:        it.LeadSource,
		SalespersonID:     it.SalespersonID,
		ServiceType:       entities.ServiceType(it.ServiceType),
		BuildingType:      entities.BuildingType(it.BuildingType),
		Status:            entities.JobStatus(it.Status),
		TotalSquareFeet:   sqft,
		MeasurementCount:  it.MeasurementCount,
		CurrentEstimateID: it.CurrentEstimateID,
		CompletedAt:       parseTimePtr(it.CompletedAt),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
