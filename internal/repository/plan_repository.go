package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Raffi85/NetDash-Website/internal/model"
)

// PlanRepository defines subscription plan persistence operations.
type PlanRepository interface {
	Create(ctx context.Context, plan *model.Plan) error
	Update(ctx context.Context, plan *model.Plan) error
	FindByID(ctx context.Context, id uint) (*model.Plan, error)
	List(ctx context.Context, activeOnly bool) ([]model.Plan, error)
}

type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository builds a GORM-backed repository.
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, plan *model.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) Update(ctx context.Context, plan *model.Plan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *planRepository) FindByID(ctx context.Context, id uint) (*model.Plan, error) {
	var plan model.Plan
	if err := r.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) List(ctx context.Context, activeOnly bool) ([]model.Plan, error) {
	var plans []model.Plan
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
