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

func TestPurchaseService_CreatePurchase(t *testing.T) {
	t.Run("records a pending purchase", func(t *testing.T) {
		mockRepo := new(MockPurchaseRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Purchase")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*model.Purchase).ID = 42
			}).Return(nil)

		dispatcher := newStubDispatcher()
		svc := NewPurchaseService(mockRepo, new(MockUserRepository), new(MockPlanRepository), dispatcher)

		purchase, err := svc.CreatePurchase(context.Background(), 1, "user@example.com", 3, 99.99)

		require.NoError(t, err)
		assert.Equal(t, model.PurchaseStatusPending, purchase.Status)
		assert.Equal(t, uint(42), purchase.ID)
		assert.Equal(t, []uint{42}, dispatcher.notifications)
	})

	t.Run("email failure does not affect the committed purchase", func(t *testing.T) {
		mockRepo := new(MockPurchaseRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Purchase")).Return(nil)

		dispatcher := newStubDispatcher()
		dispatcher.failNotifications = true
		svc := NewPurchaseService(mockRepo, new(MockUserRepository), new(MockPlanRepository), dispatcher)

		purchase, err := svc.CreatePurchase(context.Background(), 1, "user@example.com", 3, 99.99)

		assert.NoError(t, err)
		assert.NotNil(t, purchase)
	})
}

func TestPurchaseService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		status        string
		setupMock     func(*MockPurchaseRepository)
		expectedError error
	}{
		{
			name:   "valid transition",
			status: model.PurchaseStatusFailed,
			setupMock: func(m *MockPurchaseRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(&model.Purchase{ID: 42, Status: model.PurchaseStatusPending}, nil)
				m.On("UpdateStatus", mock.Anything, uint(42), model.PurchaseStatusFailed).Return(nil)
			},
		},
		{
			name:          "unknown status is rejected before any lookup",
			status:        "shipped",
			setupMock:     func(m *MockPurchaseRepository) {},
			expectedError: apperrors.ErrInvalidStatus,
		},
		{
			name:   "missing purchase",
			status: model.PurchaseStatusFailed,
			setupMock: func(m *MockPurchaseRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrPurchaseNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPurchaseRepository)
			tt.setupMock(mockRepo)

			svc := NewPurchaseService(mockRepo, new(MockUserRepository), new(MockPlanRepository), newStubDispatcher())
			err := svc.UpdateStatus(context.Background(), 42, tt.status)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPurchaseService_CompletionConfirmation(t *testing.T) {
	newFixtures := func() (*MockPurchaseRepository, *MockUserRepository, *MockPlanRepository) {
		return new(MockPurchaseRepository), new(MockUserRepository), new(MockPlanRepository)
	}

	t.Run("completing a purchase emails the buyer", func(t *testing.T) {
		purchases, users, plans := newFixtures()
		purchases.On("FindByID", mock.Anything, uint(42)).
			Return(&model.Purchase{ID: 42, UserID: 7, PlanID: 3, Status: model.PurchaseStatusPending}, nil)
		purchases.On("UpdateStatus", mock.Anything, uint(42), model.PurchaseStatusCompleted).Return(nil)
		users.On("FindByID", mock.Anything, uint(7)).
			Return(&model.User{ID: 7, Email: "buyer@example.com", Name: "Buyer"}, nil)
		plans.On("FindByID", mock.Anything, uint(3)).
			Return(&model.Plan{ID: 3, Name: "Enterprise"}, nil)

		dispatcher := newStubDispatcher()
		svc := NewPurchaseService(purchases, users, plans, dispatcher)

		require.NoError(t, svc.UpdateStatus(context.Background(), 42, model.PurchaseStatusCompleted))
		assert.Equal(t, []string{"Enterprise"}, dispatcher.confirmations)
	})

	t.Run("already completed purchase is not re-confirmed", func(t *testing.T) {
		purchases, users, plans := newFixtures()
		purchases.On("FindByID", mock.Anything, uint(42)).
			Return(&model.Purchase{ID: 42, UserID: 7, PlanID: 3, Status: model.PurchaseStatusCompleted}, nil)
		purchases.On("UpdateStatus", mock.Anything, uint(42), model.PurchaseStatusCompleted).Return(nil)

		dispatcher := newStubDispatcher()
		svc := NewPurchaseService(purchases, users, plans, dispatcher)

		require.NoError(t, svc.UpdateStatus(context.Background(), 42, model.PurchaseStatusCompleted))
		assert.Empty(t, dispatcher.confirmations)
	})

	t.Run("non-completed transition does not email", func(t *testing.T) {
		purchases, users, plans := newFixtures()
		purchases.On("FindByID", mock.Anything, uint(42)).
			Return(&model.Purchase{ID: 42, UserID: 7, PlanID: 3, Status: model.PurchaseStatusPending}, nil)
		purchases.On("UpdateStatus", mock.Anything, uint(42), model.PurchaseStatusRefunded).Return(nil)

		dispatcher := newStubDispatcher()
		svc := NewPurchaseService(purchases, users, plans, dispatcher)

		require.NoError(t, svc.UpdateStatus(context.Background(), 42, model.PurchaseStatusRefunded))
		assert.Empty(t, dispatcher.confirmations)
	})

	t.Run("confirmation send failure does not fail the transition", func(t *testing.T) {
		purchases, users, plans := newFixtures()
		purchases.On("FindByID", mock.Anything, uint(42)).
			Return(&model.Purchase{ID: 42, UserID: 7, PlanID: 3, Status: model.PurchaseStatusPending}, nil)
		purchases.On("UpdateStatus", mock.Anything, uint(42), model.PurchaseStatusCompleted).Return(nil)
		users.On("FindByID", mock.Anything, uint(7)).
			Return(&model.User{ID: 7, Email: "buyer@example.com", Name: "Buyer"}, nil)
		plans.On("FindByID", mock.Anything, uint(3)).
			Return(&model.Plan{ID: 3, Name: "Enterprise"}, nil)

		dispatcher := newStubDispatcher()
		dispatcher.failConfirmations = true
		svc := NewPurchaseService(purchases, users, plans, dispatcher)

		assert.NoError(t, svc.UpdateStatus(context.Background(), 42, model.PurchaseStatusCompleted))
	})

	t.Run("buyer lookup failure is tolerated", func(t *testing.T) {
		purchases, users, plans := newFixtures()
		purchases.On("FindByID", mock.Anything, uint(42)).
			Return(&model.Purchase{ID: 42, UserID: 7, PlanID: 3, Status: model.PurchaseStatusPending}, nil)
		purchases.On("UpdateStatus", mock.Anything, uint(42), model.PurchaseStatusCompleted).Return(nil)
		users.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

		dispatcher := newStubDispatcher()
		svc := NewPurchaseService(purchases, users, plans, dispatcher)

		assert.NoError(t, svc.UpdateStatus(context.Background(), 42, model.PurchaseStatusCompleted))
		assert.Empty(t, dispatcher.confirmations)
	})
}
