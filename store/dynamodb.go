package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoBackend keeps one item per slot in a table whose partition key is slot_key.
type DynamoBackend struct {
	client    *dynamodb.Client
	tableName string
}

type slotItem struct {
	SlotKey   string    `dynamodbav:"slot_key"`
	Payload   string    `dynamodbav:"payload"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

func NewDynamoBackend(ctx context.Context, region, tableName string) (*DynamoBackend, error) {
	if tableName == "" {
		return nil, fmt.Errorf("missing DynamoDB table name")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("DynamoDB client initialized (table: %s)", tableName)
	return &DynamoBackend{
		client:    dynamodb.NewFromConfig(cfg),
		tableName: tableName,
	}, nil
}

func (b *DynamoBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	result, err := b.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(b.tableName),
		Key: map[string]types.AttributeValue{
			"slot_key": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get slot item: %w", err)
	}
	if result.Item == nil {
		return nil, false, nil
	}

	var item slotItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal slot item: %w", err)
	}
	return []byte(item.Payload), true, nil
}

func (b *DynamoBackend) Put(ctx context.Context, key string, payload []byte) error {
	item, err := attributevalue.MarshalMap(slotItem{
		SlotKey:   key,
		Payload:   string(payload),
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal slot item: %w", err)
	}

	_, err = b.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(b.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put slot item: %w", err)
	}
	return nil
}

func (b *DynamoBackend) Close(context.Context) error {
	return nil
}
