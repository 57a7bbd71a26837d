package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Raffi85/NetDash-Website/internal/model"
)

// EmailConfigRepository persists the single SMTP settings row.
type EmailConfigRepository interface {
	Get(ctx context.Context) (*model.EmailConfig, error)
	Save(ctx context.Context, cfg *model.EmailConfig) error
}

type emailConfigRepository struct {
	db *gorm.DB
}

// NewEmailConfigRepository builds a GORM-backed repository.
func NewEmailConfigRepository(db *gorm.DB) EmailConfigRepository {
	return &emailConfigRepository{db: db}
}

func (r *emailConfigRepository) Get(ctx context.Context) (*model.EmailConfig, error) {
	var cfg model.EmailConfig
	err := r.db.WithContext(ctx).Order("id").First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *emailConfigRepository) Save(ctx context.Context, cfg *model.EmailConfig) error {
	existing, err := r.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		cfg.ID = existing.ID
	}
	return r.db.WithContext(ctx).Save(cfg).Error
}
