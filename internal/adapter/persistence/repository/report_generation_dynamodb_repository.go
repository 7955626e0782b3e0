package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/entities"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/usecase/interfaces"
	"github.com/shopspring/decimal"
)

const (
	defaultGenerationsTableName = "report_generations"
	generationsOrderIDIndex     = "order_id-index"
)

// DynamoAPI is the part of *dynamodb.Client the repository uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type reportGenerationItem struct {
	ID           string `dynamodbav:"id"`
	OrderID      int64  `dynamodbav:"order_id"`
	FileName     string `dynamodbav:"file_name"`
	SizeBytes    int64  `dynamodbav:"size_bytes"`
	CustomerName string `dynamodbav:"customer_name"`
	Status       string `dynamodbav:"status"`
	TotalCost    string `dynamodbav:"total_cost"`
	StorageKey   string `dynamodbav:"storage_key,omitempty"`
	GeneratedAt  string `dynamodbav:"generated_at"`
}

// ReportGenerationDynamoRepository persists ReportGeneration entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id, number)
type ReportGenerationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IReportGenerationRepository = (*ReportGenerationDynamoRepository)(nil)

// NewReportGenerationDynamoRepository uses tableName, falling back to the
// REPORT_GENERATIONS_TABLE env var and then to "report_generations".
func NewReportGenerationDynamoRepository(ddb DynamoAPI, tableName string) *ReportGenerationDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("REPORT_GENERATIONS_TABLE", defaultGenerationsTableName)
	}
	return &ReportGenerationDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *ReportGenerationDynamoRepository) Create(ctx context.Context, g entities.ReportGeneration) (entities.ReportGeneration, error) {
	av, err := attributevalue.MarshalMap(toReportGenerationItem(g))
	if err != nil {
		return entities.ReportGeneration{}, err
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
		return entities.ReportGeneration{}, err
	}
	return g, nil
}

func (r *ReportGenerationDynamoRepository) GetByID(ctx context.Context, id string) (entities.ReportGeneration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.ReportGeneration{}, err
	}
	if len(out.Item) == 0 {
		return entities.ReportGeneration{}, nil
	}

	var it reportGenerationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ReportGeneration{}, err
	}
	return fromReportGenerationItem(it), nil
}

// ListByOrderID queries the order_id GSI, following pagination until exhausted.
func (r *ReportGenerationDynamoRepository) ListByOrderID(ctx context.Context, orderID int64) ([]entities.ReportGeneration, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(generationsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberN{Value: strconv.FormatInt(orderID, 10)},
		},
	}

	var result []entities.ReportGeneration
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}

		var items []reportGenerationItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, fromReportGenerationItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return result, nil
}

func toReportGenerationItem(g entities.ReportGeneration) reportGenerationItem {
	return reportGenerationItem{
		ID:           g.ID,
		OrderID:      g.OrderID,
		FileName:     g.FileName,
		SizeBytes:    g.SizeBytes,
		CustomerName: g.CustomerName,
		Status:       g.Status,
		TotalCost:    g.TotalCost.String(),
		StorageKey:   g.StorageKey,
		GeneratedAt:  g.GeneratedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReportGenerationItem(it reportGenerationItem) entities.ReportGeneration {
	generatedAt, _ := time.Parse(time.RFC3339Nano, it.GeneratedAt)
	totalCost, _ := decimal.NewFromString(it.TotalCost)
	return entities.ReportGeneration{
		ID:           it.ID,
		OrderID:      it.OrderID,
		FileName:     it.FileName,
		SizeBytes:    it.SizeBytes,
		CustomerName: it.CustomerName,
		Status:       it.Status,
		TotalCost:    totalCost,
		StorageKey:   it.StorageKey,
		GeneratedAt:  generatedAt,
	}
}
