package memory

import (
	"context"
	"fmt"

	gocache "github.com/patrickmn/go-cache"
	"github.com/reusedev/prompt-studio/internal/modules/store"
)

// Store keeps both tables in process. Nothing expires; contents are lost on exit.
type Store struct {
	prompts *gocache.Cache
	labels  *gocache.Cache
}

func New() *Store {
	return &Store{
		prompts: gocache.New(gocache.NoExpiration, 0),
		labels:  gocache.New(gocache.NoExpiration, 0),
	}
}

func (s *Store) PutPrompt(_ context.Context, record store.PromptRecord) error {
	s.prompts.Set(record.PromptID, record, gocache.NoExpiration)
	return nil
}

func (s *Store) ScanPrompts(_ context.Context) ([]store.PromptRecord, error) {
	items := s.prompts.Items()
	ret := make([]store.PromptRecord, 0, len(items))
	for _, item := range items {
		ret = append(ret, item.Object.(store.PromptRecord))
	}
	store.SortPrompts(ret)
	return ret, nil
}

func (s *Store) PutLabel(_ context.Context, record store.LabelRecord) error {
	s.labels.Set(record.LabelID, record, gocache.NoExpiration)
	return nil
}

func (s *Store) InsertLabel(_ context.Context, record store.LabelRecord) error {
	if err := s.labels.Add(record.LabelID, record, gocache.NoExpiration); err != nil {
		return fmt.Errorf("label %s: %w", record.LabelID, store.ErrConflict)
	}
	return nil
}

func (s *Store) ScanLabels(_ context.Context) ([]store.LabelRecord, error) {
	items := s.labels.Items()
	ret := make([]store.LabelRecord, 0, len(items))
	for _, item := range items {
		ret = append(ret, item.Object.(store.LabelRecord))
	}
	store.SortLabels(ret)
	return ret, nil
}
