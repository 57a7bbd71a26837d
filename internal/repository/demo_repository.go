package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Raffi85/NetDash-Website/internal/model"
)

// DemoSessionRepository defines demo session persistence operations.
type DemoSessionRepository interface {
	Create(ctx context.Context, demo *model.DemoSession) error
	// FindValid returns the demo session for token only if it has not expired.
	FindValid(ctx context.Context, token string, now time.Time) (*model.DemoSession, error)
	RecordAccess(ctx context.Context, token string, featuresJSON string) error
}

type demoSessionRepository struct {
	db *gorm.DB
}

// NewDemoSessionRepository builds a GORM-backed repository.
func NewDemoSessionRepository(db *gorm.DB) DemoSessionRepository {
	return &demoSessionRepository{db: db}
}

func (r *demoSessionRepository) Create(ctx context.Context, demo *model.DemoSession) error {
	return r.db.WithContext(ctx).Create(demo).Error
}

func (r *demoSessionRepository) FindValid(ctx context.Context, token string, now time.Time) (*model.DemoSession, error) {
	var demo model.DemoSession
	if err := r.db.WithContext(ctx).
		Where("token = ? AND expiry_time > ?", token, now).
		First(&demo).Error; err != nil {
		return nil, err
	}
	return &demo, nil
}

func (r *demoSessionRepository) RecordAccess(ctx context.Context, token string, featuresJSON string) error {
	return r.db.WithContext(ctx).Model(&model.DemoSession{}).
		Where("token = ?", token).
		Update("features_accessed", featuresJSON).Error
}
