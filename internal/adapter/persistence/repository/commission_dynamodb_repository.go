package repository

import (
	"context"

	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCommissionsTableName = "commissions"
	commissionsPaidMonthIndex   = "paid_month-index"
)

type commissionItem struct {
	ID         string `dynamodbav:"id"`
	UserID     string `dynamodbav:"user_id"`
	JobID      string `dynamodbav:"job_id"`
	EstimateID string `dynamodbav:"estimate_id"`
	Phase      string `dynamodbav:"phase"`
	Rate       string `dynamodbav:"rate"`
	BaseAmount string `dynamodbav:"base_amount"`
	Amount     string `dynamodbav:"amount"`
	PaidMonth  string `dynamodbav:"paid_month"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// CommissionDynamoRepository persists commissions.
//
// Table requirements:
//   - PK: id (string, user_id#job_id#phase)
//   - GSI: paid_month-index (PK: paid_month)
type CommissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICommissionRepository = (*CommissionDynamoRepository)(nil)

func NewCommissionDynamoRepository(ddb *dynamodb.Client) *CommissionDynamoRepository {
	return &CommissionDynamoRepository{
		ddb:       ddb,
		tableName: commissionsTableName(),
	}
}

func commissionsTableName() string {
	return getenvDefault("COMMISSIONS_TABLE", defaultCommissionsTableName)
}

func (r *CommissionDynamoRepository) CreateIfAbsent(ctx context.Context, c entities.Commission) (bool, error) {
	put, err := commissionPut(r.tableName, c)
	if err != nil {
		return false, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                put.TableName,
		Item:                     put.Item,
		ConditionExpression:      put.ConditionExpression,
		ExpressionAttributeNames: put.ExpressionAttributeNames,
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// commissionPut builds the create-once write, shared with the approval
// transaction in the estimate repository.
func commissionPut(table string, c entities.Commission) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toCommissionItem(c))
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}, nil
}

func (r *CommissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Commission, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Commission{}, err
	}
	if len(out.Item) == 0 {
		return entities.Commission{}, nil
	}

	var it commissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Commission{}, err
	}
	return fromCommissionItem(it), nil
}

// List returns the commissions paid in month, or all of them when month is
// empty.
func (r *CommissionDynamoRepository) List(ctx context.Context, month string) ([]entities.Commission, error) {
	var (
		raw []map[string]types.AttributeValue
		err error
	)
	if month == "" {
		raw, err = scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	} else {
		raw, err = queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(commissionsPaidMonthIndex),
			KeyConditionExpression: aws.String("paid_month = :m"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":m": &types.AttributeValueMemberS{Value: month},
			},
		})
	}
	if err != nil {
		return nil, err
	}
	return unmarshalAll(raw, fromCommissionItem)
}

func toCommissionItem(c entities.Commission) commissionItem {
	return commissionItem{
		ID:         c.ID,
		UserID:     c.UserID,
		JobID:      c.JobID,
		EstimateID: c.EstimateID,
		Phase:      string(c.Phase),
		Rate:       decToString(c.Rate),
		BaseAmount: decToString(c.BaseAmount),
		Amount:     decToString(c.Amount),
		PaidMonth:  c.PaidMonth,
		CreatedAt:  formatTime(c.CreatedAt),
	}
}

func fromCommissionItem(it commissionItem) entities.Commission {
	return entities.Commission{
		ID:         it.ID,
		UserID:     it.UserID,
		JobID:      it.JobID,
		EstimateID: it.EstimateID,
		Phase:      entities.CommissionPhase(it.Phase),
		Rate:       parseDec(it.Rate),
		BaseAmount: parseDec(it.BaseAmount),
		Amount:     parseDec(it.Amount),
		PaidMonth:  it.PaidMonth,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
