package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusedev/prompt-studio/config"
	"github.com/reusedev/prompt-studio/internal/modules/store"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db           *gorm.DB
	promptsTable string
	labelsTable  string
}

func DSN(c config.MySQL) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", c.Username, c.Password, c.Host, c.Port, c.Database)
}

// Open connects, sizes the pool and creates both tables when missing.
func Open(c config.MySQL, promptsTable, labelsTable string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(DSN(c)), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	s := New(db, promptsTable, labelsTable)
	if err = s.Migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func New(db *gorm.DB, promptsTable, labelsTable string) *Store {
	return &Store{db: db, promptsTable: promptsTable, labelsTable: labelsTable}
}

func (s *Store) Migrate() error {
	if err := s.db.Table(s.promptsTable).AutoMigrate(&store.PromptRecord{}); err != nil {
		return fmt.Errorf("migrate %s: %w", s.promptsTable, err)
	}
	if err := s.db.Table(s.labelsTable).AutoMigrate(&store.LabelRecord{}); err != nil {
		return fmt.Errorf("migrate %s: %w", s.labelsTable, err)
	}
	return nil
}

func (s *Store) PutPrompt(ctx context.Context, record store.PromptRecord) error {
	err := s.db.WithContext(ctx).Table(s.promptsTable).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("upsert prompt %s: %w", record.PromptID, err)
	}
	return nil
}

func (s *Store) ScanPrompts(ctx context.Context) ([]store.PromptRecord, error) {
	var ret []store.PromptRecord
	if err := s.db.WithContext(ctx).Table(s.promptsTable).Find(&ret).Error; err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.promptsTable, err)
	}
	store.SortPrompts(ret)
	return ret, nil
}

func (s *Store) PutLabel(ctx context.Context, record store.LabelRecord) error {
	err := s.db.WithContext(ctx).Table(s.labelsTable).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("upsert label %s: %w", record.LabelID, err)
	}
	return nil
}

func (s *Store) InsertLabel(ctx context.Context, record store.LabelRecord) error {
	err := s.db.WithContext(ctx).Table(s.labelsTable).Create(&record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("label %s: %w", record.LabelID, store.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("insert label %s: %w", record.LabelID, err)
	}
	return nil
}

func (s *Store) ScanLabels(ctx context.Context) ([]store.LabelRecord, error) {
	var ret []store.LabelRecord
	if err := s.db.WithContext(ctx).Table(s.labelsTable).Find(&ret).Error; err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.labelsTable, err)
	}
	store.SortLabels(ret)
	return ret, nil
}
