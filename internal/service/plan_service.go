package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Raffi85/NetDash-Website/internal/cache"
	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/model"
	"github.com/Raffi85/NetDash-Website/internal/repository"
)

const (
	planCacheTTL       = 5 * time.Minute
	planCacheKeyAll    = "plans:all"
	planCacheKeyActive = "plans:active"
)

// PlanView is a plan with its features decoded for the API.
type PlanView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Features  []string  `json:"features"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// PlanInput carries plan fields for create/update.
type PlanInput struct {
	Name     string
	Price    float64
	Features []string
	IsActive *bool
}

// PlanService exposes subscription plan operations. Platform admins see
// every plan; everyone else sees only active ones.
type PlanService interface {
	ListPlans(ctx context.Context, role string) ([]PlanView, error)
	CreatePlan(ctx context.Context, input PlanInput) (*model.Plan, error)
	UpdatePlan(ctx context.Context, id uint, input PlanInput) error
}

type planService struct {
	plans repository.PlanRepository
	cache *cache.Client
}

// NewPlanService builds a PlanService with repository and cache.
func NewPlanService(plans repository.PlanRepository, cache *cache.Client) PlanService {
	return &planService{plans: plans, cache: cache}
}

func (s *planService) ListPlans(ctx context.Context, role string) ([]PlanView, error) {
	activeOnly := role != model.RolePlatformAdmin
	key := planCacheKeyAll
	if activeOnly {
		key = planCacheKeyActive
	}

	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []PlanView
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	plans, err := s.plans.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	views := make([]PlanView, 0, len(plans))
	for _, p := range plans {
		views = append(views, toPlanView(p))
	}

	if payload, err := json.Marshal(views); err == nil {
		_ = s.cache.Set(ctx, key, payload, planCacheTTL)
	}
	return views, nil
}

func (s *planService) CreatePlan(ctx context.Context, input PlanInput) (*model.Plan, error) {
	features, err := json.Marshal(input.Features)
	if err != nil {
		return nil, fmt.Errorf("encode features: %w", err)
	}

	plan := &model.Plan{
		Name:     input.Name,
		Price:    input.Price,
		Features: string(features),
		IsActive: true,
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}

	s.invalidateCache(ctx)
	return plan, nil
}

func (s *planService) UpdatePlan(ctx context.Context, id uint, input PlanInput) error {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlanNotFound
		}
		return fmt.Errorf("find plan: %w", err)
	}

	if input.Name != "" {
		plan.Name = input.Name
	}
	if input.Price > 0 {
		plan.Price = input.Price
	}
	if input.Features != nil {
		features, err := json.Marshal(input.Features)
		if err != nil {
			return fmt.Errorf("encode features: %w", err)
		}
		plan.Features = string(features)
	}
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}

	if err := s.plans.Update(ctx, plan); err != nil {
		return fmt.Errorf("update plan: %w", err)
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *planService) invalidateCache(ctx context.Context) {
	_ = s.cache.Delete(ctx, planCacheKeyAll)
	_ = s.cache.Delete(ctx, planCacheKeyActive)
}

func toPlanView(p model.Plan) PlanView {
	view := PlanView{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Features:  []string{},
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
	if p.Features != "" {
		var features []string
		if err := json.Unmarshal([]byte(p.Features), &features); err == nil {
			view.Features = features
		}
	}
	return view
}
