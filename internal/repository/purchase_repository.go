package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Raffi85/NetDash-Website/internal/model"
)

// PurchaseRepository defines purchase persistence operations.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *model.Purchase) error
	FindByID(ctx context.Context, id uint) (*model.Purchase, error)
	ListDetailed(ctx context.Context) ([]model.PurchaseDetail, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository builds a GORM-backed repository.
func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *model.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) FindByID(ctx context.Context, id uint) (*model.Purchase, error) {
	var purchase model.Purchase
	if err := r.db.WithContext(ctx).First(&purchase, id).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) ListDetailed(ctx context.Context) ([]model.PurchaseDetail, error) {
	var details []model.PurchaseDetail
	err := r.db.WithContext(ctx).
		Table("purchases").
		Select("purchases.*, users.name AS user_name, users.email AS email, plans.name AS plan_name").
		Joins("JOIN users ON purchases.user_id = users.id").
		Joins("JOIN plans ON purchases.plan_id = plans.id").
		Order("purchases.purchase_date DESC").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *purchaseRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *purchaseRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}
