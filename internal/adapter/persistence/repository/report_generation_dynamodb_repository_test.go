package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps items in memory and serves Query results one item per page.
type fakeDynamo struct {
	items   map[string]map[string]types.AttributeValue
	order   []string
	queries []*dynamodb.QueryInput
	putErr  error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	if _, ok := f.items[id]; ok {
		return nil, &types.ConditionalCheckFailedException{}
	}
	f.items[id] = in.Item
	f.order = append(f.order, id)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	copied := *in
	f.queries = append(f.queries, &copied)

	want := in.ExpressionAttributeValues[":oid"].(*types.AttributeValueMemberN).Value
	start := ""
	if in.ExclusiveStartKey != nil {
		start = in.ExclusiveStartKey["id"].(*types.AttributeValueMemberS).Value
	}

	skipping := start != ""
	for _, id := range f.order {
		if skipping {
			if id == start {
				skipping = false
			}
			continue
		}
		item := f.items[id]
		if item["order_id"].(*types.AttributeValueMemberN).Value != want {
			continue
		}
		return &dynamodb.QueryOutput{
			Items:            []map[string]types.AttributeValue{item},
			LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		}, nil
	}
	return &dynamodb.QueryOutput{}, nil
}

func generation(id string, orderID int64, at time.Time) entities.ReportGeneration {
	return entities.ReportGeneration{
		ID:           id,
		OrderID:      orderID,
		FileName:     "service_order_1.pdf",
		SizeBytes:    2048,
		CustomerName: "Maria Oliveira",
		Status:       "Completed",
		TotalCost:    decimal.RequireFromString("1802.50"),
		StorageKey:   "service-orders/1/" + id + ".pdf",
		GeneratedAt:  at,
	}
}

func TestReportGenerationDynamoRepository(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 4, 5, 9, 30, 0, 0, time.UTC)

	t.Run("create and get", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewReportGenerationDynamoRepository(ddb, "generations")

		_, err := repo.Create(ctx, generation("g1", 1, at))
		require.NoError(t, err)

		item := ddb.items["g1"]
		assert.Equal(t, "1802.5", item["total_cost"].(*types.AttributeValueMemberS).Value)
		assert.Equal(t, "1", item["order_id"].(*types.AttributeValueMemberN).Value)

		got, err := repo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, "g1", got.ID)
		assert.True(t, got.TotalCost.Equal(decimal.RequireFromString("1802.50")))
		assert.True(t, got.GeneratedAt.Equal(at))
		assert.Equal(t, "service-orders/1/g1.pdf", got.StorageKey)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewReportGenerationDynamoRepository(ddb, "generations")

		_, err := repo.Create(ctx, generation("g1", 1, at))
		require.NoError(t, err)
		_, err = repo.Create(ctx, generation("g1", 1, at))

		var cfe *types.ConditionalCheckFailedException
		assert.True(t, errors.As(err, &cfe))
	})

	t.Run("put error", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.putErr = errors.New("throttled")
		repo := NewReportGenerationDynamoRepository(ddb, "generations")

		_, err := repo.Create(ctx, generation("g1", 1, at))
		assert.EqualError(t, err, "throttled")
	})

	t.Run("get missing returns zero value", func(t *testing.T) {
		repo := NewReportGenerationDynamoRepository(newFakeDynamo(), "generations")

		got, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("list follows pages", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewReportGenerationDynamoRepository(ddb, "generations")
		for _, g := range []entities.ReportGeneration{
			generation("a", 1, at),
			generation("b", 2, at),
			generation("c", 1, at.Add(time.Minute)),
		} {
			_, err := repo.Create(ctx, g)
			require.NoError(t, err)
		}

		got, err := repo.ListByOrderID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "c", got[1].ID)

		require.Len(t, ddb.queries, 3)
		assert.Equal(t, "order_id-index", aws.ToString(ddb.queries[0].IndexName))
		assert.Equal(t, "generations", aws.ToString(ddb.queries[0].TableName))
	})

	t.Run("table name falls back to env", func(t *testing.T) {
		t.Setenv("REPORT_GENERATIONS_TABLE", "from_env")
		repo := NewReportGenerationDynamoRepository(newFakeDynamo(), "")
		assert.Equal(t, "from_env", repo.tableName)
	})
}
