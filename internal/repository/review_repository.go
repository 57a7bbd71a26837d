package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Raffi85/NetDash-Website/internal/model"
)

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	List(ctx context.Context) ([]model.Review, error)
	ListPublic(ctx context.Context, limit int) ([]model.Review, error)
	SetApproval(ctx context.Context, id uint, approved bool) error
	Count(ctx context.Context) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository builds a GORM-backed repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) List(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ListPublic(ctx context.Context, limit int) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).
		Select("id", "name", "rating", "comment", "created_at").
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) SetApproval(ctx context.Context, id uint, approved bool) error {
	return r.db.WithContext(ctx).Model(&model.Review{}).
		Where("id = ?", id).
		Update("is_approved", approved).Error
}

func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Review{}).Count(&count).Error
	return count, err
}
