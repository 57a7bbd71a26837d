package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Raffi85/NetDash-Website/internal/model"
)

// ContactRepository defines contact message persistence operations.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	List(ctx context.Context) ([]model.Contact, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository builds a GORM-backed repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) List(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Contact{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}
