package repository

import (
	"context"
	"fmt"
	"time"

	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultMeasurementsTableName = "measurements"
	measurementsJobIDIndex       = "job_id-index"
)

type measurementItem struct {
	ID               string `dynamodbav:"id"`
	JobID            string `dynamodbav:"job_id"`
	RoomName         string `dynamodbav:"room_name"`
	SurfaceType      string `dynamodbav:"surface_type"`
	AreaType         string `dynamodbav:"area_type"`
	HeightFt         string `dynamodbav:"height_ft"`
	WidthFt          string `dynamodbav:"width_ft"`
	SquareFeet       string `dynamodbav:"square_feet"`
	InsulationType   string `dynamodbav:"insulation_type,omitempty"`
	ThicknessInches  string `dynamodbav:"thickness_inches,omitempty"`
	ClosedCellInches string `dynamodbav:"closed_cell_inches,omitempty"`
	OpenCellInches   string `dynamodbav:"open_cell_inches,omitempty"`
	Notes            string `dynamodbav:"notes,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// MeasurementDynamoRepository persists measurements and keeps the owning job's
// total_square_feet and measurement_count in step.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
type MeasurementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	jobsTable string
}

var _ interfaces.IMeasurementRepository = (*MeasurementDynamoRepository)(nil)

func NewMeasurementDynamoRepository(ddb *dynamodb.Client) *MeasurementDynamoRepository {
	return &MeasurementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MEASUREMENTS_TABLE", defaultMeasurementsTableName),
		jobsTable: jobsTableName(),
	}
}

// CreateWithAggregate puts the measurement and adds its square feet to the job
// in one transaction, so concurrent inserts never lose an increment.
func (r *MeasurementDynamoRepository) CreateWithAggregate(ctx context.Context, m entities.Measurement) (entities.Measurement, error) {
	av, err := attributevalue.MarshalMap(toMeasurementItem(m))
	if err != nil {
		return entities.Measurement{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{Update: r.adjustJob(m.JobID, m.SquareFeet, 1)},
		},
	})
	if err != nil {
		if reasons := cancellationReasons(err); len(reasons) == 2 && reasons[1] == conditionalCheckFailed {
			return entities.Measurement{}, fmt.Errorf("job %s no longer exists: %w", m.JobID, err)
		}
		return entities.Measurement{}, err
	}
	return m, nil
}

// DeleteWithAggregate removes the measurement and subtracts its square feet.
// Deleting a measurement that is already gone is a no-op, so the job total is
// never decremented twice.
func (r *MeasurementDynamoRepository) DeleteWithAggregate(ctx context.Context, m entities.Measurement) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: m.ID},
					},
					ConditionExpression:      aws.String("attribute_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{Update: r.adjustJob(m.JobID, m.SquareFeet.Neg(), -1)},
		},
	})
	if err != nil {
		if reasons := cancellationReasons(err); len(reasons) > 0 && reasons[0] == conditionalCheckFailed {
			return nil
		}
		return err
	}
	return nil
}

func (r *MeasurementDynamoRepository) adjustJob(jobID string, sqft decimal.Decimal, count int) *types.Update {
	return &types.Update{
		TableName: aws.String(r.jobsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: jobID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #total_square_feet :sqft, #measurement_count :count SET #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#total_square_feet": "total_square_feet",
			"#measurement_count": "measurement_count",
			"#updated_at":        "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sqft":       &types.AttributeValueMemberN{Value: sqft.String()},
			":count":      &types.AttributeValueMemberN{Value: fmt.Sprint(count)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
	}
}

func (r *MeasurementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Measurement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Measurement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Measurement{}, nil
	}

	var it measurementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Measurement{}, err
	}
	return fromMeasurementItem(it), nil
}

func (r *MeasurementDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Measurement, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(measurementsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}
	items, err := unmarshalAll(raw, fromMeasurementItem)
	if err != nil {
		return nil, err
	}
	sortByCreatedAt(items, func(m entities.Measurement) (time.Time, string) { return m.CreatedAt, m.ID })
	return items, nil
}

func toMeasurementItem(m entities.Measurement) measurementItem {
	return measurementItem{
		ID:               m.ID,
		JobID:            m.JobID,
		RoomName:         m.RoomName,
		SurfaceType:      string(m.SurfaceType),
		AreaType:         string(m.AreaType),
		HeightFt:         decToString(m.HeightFt),
		WidthFt:          decToString(m.WidthFt),
		SquareFeet:       decToString(m.SquareFeet),
		InsulationType:   string(m.InsulationType),
		ThicknessInches:  optionalDec(m.ThicknessInches),
		ClosedCellInches: optionalDec(m.ClosedCellInches),
		OpenCellInches:   optionalDec(m.OpenCellInches),
		Notes:            m.Notes,
		CreatedAt:        formatTime(m.CreatedAt),
	}
}

func fromMeasurementItem(it measurementItem) entities.Measurement {
	m := entities.Measurement{
		ID:               it.ID,
		JobID:            it.JobID,
		RoomName:         it.RoomName,
		SurfaceType:      entities.SurfaceType(it.SurfaceType),
		AreaType:         entities.AreaType(it.AreaType),
		HeightFt:         parseDec(it.HeightFt),
		WidthFt:          parseDec(it.WidthFt),
		InsulationType:   entities.InsulationType(it.InsulationType),
		ThicknessInches:  parseDec(it.ThicknessInches),
		ClosedCellInches: parseDec(it.ClosedCellInches),
		OpenCellInches:   parseDec(it.OpenCellInches),
		Notes:            it.Notes,
		CreatedAt:        parseTime(it.CreatedAt),
	}
	m.Recompute()
	return m
}

func optionalDec(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}
