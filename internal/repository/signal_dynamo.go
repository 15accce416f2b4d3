package repository

import (
	"context"
	"fmt"
	"time"

	"food_monitor/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DefaultSignalKey is the partition key of the signal item.
const DefaultSignalKey = "esp32:ledState"

// DynamoAPI is the subset of *dynamodb.Client used by SignalDynamo.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// SignalDynamo keeps the signal slot as one DynamoDB item.
type SignalDynamo struct {
	client    DynamoAPI
	tableName string
	key       string
}

func NewSignalDynamo(client DynamoAPI, tableName, key string) *SignalDynamo {
	if key == "" {
		key = DefaultSignalKey
	}
	return &SignalDynamo{client: client, tableName: tableName, key: key}
}

type signalItem struct {
	ID          string   `dynamodbav:"id"`
	Green       bool     `dynamodbav:"green"`
	Yellow      bool     `dynamodbav:"yellow"`
	Red         bool     `dynamodbav:"red"`
	Status      string   `dynamodbav:"status"`
	Category    *string  `dynamodbav:"category,omitempty"`
	Temperature *float64 `dynamodbav:"temperature,omitempty"`
	UpdatedAt   string   `dynamodbav:"updated_at"` // RFC3339Nano, UTC
}

// Save overwrites the item unconditionally.
func (r *SignalDynamo) Save(ctx context.Context, s models.SignalState) error {
	ts := s.LastUpdate
	if ts.IsZero() {
		ts = time.Now()
	}
	item, err := attributevalue.MarshalMap(signalItem{
		ID:          r.key,
		Green:       s.GreenOn,
		Yellow:      s.YellowOn,
		Red:         s.RedOn,
		Status:      string(s.Status),
		Category:    s.Category,
		Temperature: s.Temperature,
		UpdatedAt:   ts.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("marshal signal item: %w", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put signal item: %w", err)
	}
	return nil
}

// Load reads the item with a consistent read, or nil if it does not exist.
func (r *SignalDynamo) Load(ctx context.Context) (*models.SignalState, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: r.key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get signal item: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return nil, nil
	}

	var item signalItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("unmarshal signal item: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse signal updated_at %q: %w", item.UpdatedAt, err)
	}

	return &models.SignalState{
		GreenOn:     item.Green,
		YellowOn:    item.Yellow,
		RedOn:       item.Red,
		Status:      models.Status(item.Status),
		Category:    item.Category,
		Temperature: item.Temperature,
		LastUpdate:  updatedAt.UTC(),
	}, nil
}
