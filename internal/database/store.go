package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// RequestFilter narrows a request log listing. Empty fields match everything.
type RequestFilter struct {
	FileID string
	PartID string
}

type RequestLogStore struct {
	db *gorm.DB
}

func NewRequestLogStore(db *gorm.DB) *RequestLogStore {
	return &RequestLogStore{db: db}
}

func (s *RequestLogStore) Record(ctx context.Context, entry *RequestLog) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to record request: %w", err)
	}
	return nil
}

// List returns one page of request logs, newest first, and the total match count.
func (s *RequestLogStore) List(ctx context.Context, filter RequestFilter, page, limit int) ([]RequestLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := s.db.WithContext(ctx).Model(&RequestLog{})
	if filter.FileID != "" {
		query = query.Where("file_id = ?", filter.FileID)
	}
	if filter.PartID != "" {
		query = query.Where("part_id = ?", filter.PartID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	var logs []RequestLog
	if err := query.Order("request_time DESC").Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list requests: %w", err)
	}
	return logs, total, nil
}

// Ping reports whether the database answers.
func (s *RequestLogStore) Ping(ctx context.Context) bool {
	var count int64
	return s.db.WithContext(ctx).Model(&RequestLog{}).Count(&count).Error == nil
}
