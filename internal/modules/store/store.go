package store

import (
	"context"
	"errors"
	"sort"
)

// ErrConflict is returned by InsertLabel when the label key is already taken.
var ErrConflict = errors.New("record already exists")

type PromptRecord struct {
	PromptID  string `json:"prompt_id" dynamodbav:"prompt_id" gorm:"column:prompt_id;primaryKey;type:char(64)"`
	Prompt    string `json:"prompt" dynamodbav:"prompt" gorm:"column:prompt;type:text"`
	Seed      int64  `json:"seed" dynamodbav:"seed" gorm:"column:seed;type:bigint"`
	Rating    string `json:"rating" dynamodbav:"rating" gorm:"column:rating;type:varchar(4)"`
	Labels    string `json:"labels" dynamodbav:"labels" gorm:"column:labels;type:text"`
	Timestamp string `json:"timestamp" dynamodbav:"timestamp" gorm:"column:timestamp;type:varchar(40)"`
}

type LabelRecord struct {
	LabelID   string `json:"label_id" dynamodbav:"label_id" gorm:"column:label_id;primaryKey;type:char(64)"`
	LabelName string `json:"label_name" dynamodbav:"label_name" gorm:"column:label_name;type:varchar(255)"`
}

// Store is the prompt table plus the label table. Writes are single-item,
// reads are full unfiltered scans.
type Store interface {
	// PutPrompt overwrites any record with the same PromptID.
	PutPrompt(ctx context.Context, record PromptRecord) error
	ScanPrompts(ctx context.Context) ([]PromptRecord, error)
	// PutLabel overwrites any record with the same LabelID.
	PutLabel(ctx context.Context, record LabelRecord) error
	// InsertLabel fails with ErrConflict when LabelID already exists.
	InsertLabel(ctx context.Context, record LabelRecord) error
	ScanLabels(ctx context.Context) ([]LabelRecord, error)
}

// Labels reads the whole label table as id -> display name.
func Labels(ctx context.Context, s Store) (map[string]string, error) {
	records, err := s.ScanLabels(ctx)
	if err != nil {
		return nil, err
	}
	ret := make(map[string]string, len(records))
	for _, r := range records {
		ret[r.LabelID] = r.LabelName
	}
	return ret, nil
}

// SortLabels orders labels by display name, then id.
func SortLabels(records []LabelRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].LabelName != records[j].LabelName {
			return records[i].LabelName < records[j].LabelName
		}
		return records[i].LabelID < records[j].LabelID
	})
}

// SortPrompts puts the newest record first.
func SortPrompts(records []PromptRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Timestamp != records[j].Timestamp {
			return records[i].Timestamp > records[j].Timestamp
		}
		return records[i].PromptID < records[j].PromptID
	})
}
