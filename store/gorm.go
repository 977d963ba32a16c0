package store

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"brf/services/logger"
)

// Record là một hàng key/value trong bảng records.
type Record struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value;type:jsonb"`
}

// GormStore lưu các bản ghi trong Postgres qua một bảng key/value duy nhất.
// The values stay opaque JSON blobs, same contract as the other backends.
type GormStore struct {
	db  *gorm.DB
	log logger.Logger
}

func NewGormStore(db *gorm.DB, log logger.Logger) (*GormStore, error) {
	if log == nil {
		log = logger.Nop{}
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db, log: log}, nil
}

func (s *GormStore) Read(ctx context.Context, key string, target interface{}) bool {
	var rec Record
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}
	if err != nil {
		s.log.Error("store: db get %q: %v", key, err)
		return false
	}
	if err := json.Unmarshal(rec.Value, target); err != nil {
		return false
	}
	return true
}

func (s *GormStore) Write(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error("store: marshal %q: %v", key, err)
		return
	}
	rec := Record{Key: key, Value: raw}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		s.log.Error("store: db set %q: %v", key, err)
	}
}

func (s *GormStore) Delete(ctx context.Context, key string) {
	if err := s.db.WithContext(ctx).Delete(&Record{}, "key = ?", key).Error; err != nil {
		s.log.Error("store: db del %q: %v", key, err)
	}
}
