package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
	"github.com/reusedev/prompt-studio/internal/modules/store"
)

// API is the part of the DynamoDB client the store needs.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type Store struct {
	client       API
	promptsTable string
	labelsTable  string
}

func New(client API, promptsTable, labelsTable string) *Store {
	return &Store{client: client, promptsTable: promptsTable, labelsTable: labelsTable}
}

func NewFromConfig(cfg aws.Config, promptsTable, labelsTable string) *Store {
	return New(dynamodb.NewFromConfig(cfg), promptsTable, labelsTable)
}

func (s *Store) PutPrompt(ctx context.Context, record store.PromptRecord) error {
	return s.put(ctx, s.promptsTable, record, "")
}

func (s *Store) PutLabel(ctx context.Context, record store.LabelRecord) error {
	return s.put(ctx, s.labelsTable, record, "")
}

func (s *Store) InsertLabel(ctx context.Context, record store.LabelRecord) error {
	err := s.put(ctx, s.labelsTable, record, "attribute_not_exists(label_id)")
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return fmt.Errorf("label %s: %w", record.LabelID, store.ErrConflict)
	}
	return err
}

func (s *Store) put(ctx context.Context, table string, record any, condition string) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("marshal %s item: %w", table, err)
	}
	input := &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	}
	if condition != "" {
		input.ConditionExpression = aws.String(condition)
	}
	if _, err = s.client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("put item into %s: %w", table, err)
	}
	return nil
}

func (s *Store) ScanPrompts(ctx context.Context) ([]store.PromptRecord, error) {
	var ret []store.PromptRecord
	if err := s.scan(ctx, s.promptsTable, &ret); err != nil {
		return nil, err
	}
	store.SortPrompts(ret)
	return ret, nil
}

func (s *Store) ScanLabels(ctx context.Context) ([]store.LabelRecord, error) {
	var ret []store.LabelRecord
	if err := s.scan(ctx, s.labelsTable, &ret); err != nil {
		return nil, err
	}
	store.SortLabels(ret)
	return ret, nil
}

// scan walks every page of table and unmarshals the items into out, which
// must point to a slice.
func (s *Store) scan(ctx context.Context, table string, out any) error {
	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{TableName: aws.String(table)})
	pages := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		items = append(items, page.Items...)
		pages++
	}
	logs.Logger.Debug().Str("table", table).Int("pages", pages).Int("items", len(items)).Msg("scan")
	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("unmarshal %s items: %w", table, err)
	}
	return nil
}
