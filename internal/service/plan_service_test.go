package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/model"
)

func TestPlanService_ListPlans(t *testing.T) {
	t.Run("platform admin sees every plan", func(t *testing.T) {
		mockRepo := new(MockPlanRepository)
		mockRepo.On("List", mock.Anything, false).Return([]model.Plan{
			{ID: 1, Name: "Starter", Features: `["Basic Analytics"]`, IsActive: true},
			{ID: 2, Name: "Legacy", IsActive: false},
		}, nil)

		svc := NewPlanService(mockRepo, nil)
		views, err := svc.ListPlans(context.Background(), model.RolePlatformAdmin)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, []string{"Basic Analytics"}, views[0].Features)
		// Missing or malformed features decode to an empty list, never nil.
		assert.NotNil(t, views[1].Features)
		assert.Empty(t, views[1].Features)
		mockRepo.AssertExpectations(t)
	})

	t.Run("other roles see only active plans", func(t *testing.T) {
		for _, role := range []string{model.RoleCompanyAdmin, model.RoleGuest, ""} {
			mockRepo := new(MockPlanRepository)
			mockRepo.On("List", mock.Anything, true).Return([]model.Plan{
				{ID: 1, Name: "Starter", IsActive: true},
			}, nil)

			svc := NewPlanService(mockRepo, nil)
			views, err := svc.ListPlans(context.Background(), role)

			require.NoError(t, err)
			assert.Len(t, views, 1)
			mockRepo.AssertExpectations(t)
		}
	})
}

func TestPlanService_CreatePlan(t *testing.T) {
	mockRepo := new(MockPlanRepository)
	var created *model.Plan
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Plan")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.Plan)
		}).Return(nil)

	svc := NewPlanService(mockRepo, nil)
	plan, err := svc.CreatePlan(context.Background(), PlanInput{
		Name:     "Enterprise",
		Price:    499,
		Features: []string{"Real-time Monitoring", "Threat Detection"},
	})

	require.NoError(t, err)
	assert.Equal(t, created, plan)
	assert.True(t, plan.IsActive)
	assert.JSONEq(t, `["Real-time Monitoring","Threat Detection"]`, plan.Features)
}

func TestPlanService_UpdatePlan(t *testing.T) {
	t.Run("partial update keeps unset fields", func(t *testing.T) {
		mockRepo := new(MockPlanRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Plan{
			ID:       1,
			Name:     "Starter",
			Price:    49,
			IsActive: true,
		}, nil)

		var updated *model.Plan
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Plan")).
			Run(func(args mock.Arguments) {
				updated = args.Get(1).(*model.Plan)
			}).Return(nil)

		inactive := false
		svc := NewPlanService(mockRepo, nil)
		err := svc.UpdatePlan(context.Background(), 1, PlanInput{IsActive: &inactive})

		require.NoError(t, err)
		assert.Equal(t, "Starter", updated.Name)
		assert.Equal(t, float64(49), updated.Price)
		assert.False(t, updated.IsActive)
	})

	t.Run("missing plan", func(t *testing.T) {
		mockRepo := new(MockPlanRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewPlanService(mockRepo, nil)
		err := svc.UpdatePlan(context.Background(), 9, PlanInput{Name: "X"})

		assert.ErrorIs(t, err, apperrors.ErrPlanNotFound)
	})
}
