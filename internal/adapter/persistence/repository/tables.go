package repository

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableDefinitions describes the tables and indexes the repositories expect,
// using the same env overrides for table names.
func TableDefinitions() []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		tableDef(jobsTableName()),
		tableDef(getenvDefault("MEASUREMENTS_TABLE", defaultMeasurementsTableName), measurementsJobIDIndex),
		tableDef(getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName), estimatesJobIDIndex, estimatesStatusIndex),
		tableDef(commissionsTableName(), commissionsPaidMonthIndex),
	}
}

// tableDef builds a pay-per-request table keyed by id. Index names follow the
// "<attribute>-index" convention.
func tableDef(name string, indexes ...string) *dynamodb.CreateTableInput {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}
	for _, idx := range indexes {
		attr := idx[:len(idx)-len("-index")]
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(attr),
			AttributeType: types.ScalarAttributeTypeS,
		})
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName: aws.String(idx),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	return in
}
