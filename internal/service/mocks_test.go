package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Raffi85/NetDash-Website/internal/model"
	"github.com/Raffi85/NetDash-Website/internal/session"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, search string) ([]model.User, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uint, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, id uint, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateSuspension(ctx context.Context, id uint, suspended bool) error {
	args := m.Called(ctx, id, suspended)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockResetTokenRepository is a mock implementation of ResetTokenRepository.
type MockResetTokenRepository struct {
	mock.Mock
}

func (m *MockResetTokenRepository) Create(ctx context.Context, token *model.PasswordResetToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockResetTokenRepository) FindByToken(ctx context.Context, token string) (*model.PasswordResetToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PasswordResetToken), args.Error(1)
}

func (m *MockResetTokenRepository) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockResetTokenRepository) Consume(ctx context.Context, token string, now time.Time) (bool, error) {
	args := m.Called(ctx, token, now)
	return args.Bool(0), args.Error(1)
}

// MockPlanRepository is a mock implementation of PlanRepository.
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Create(ctx context.Context, plan *model.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) Update(ctx context.Context, plan *model.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) FindByID(ctx context.Context, id uint) (*model.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Plan), args.Error(1)
}

func (m *MockPlanRepository) List(ctx context.Context, activeOnly bool) ([]model.Plan, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Plan), args.Error(1)
}

// MockPurchaseRepository is a mock implementation of PurchaseRepository.
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) Create(ctx context.Context, purchase *model.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id uint) (*model.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListDetailed(ctx context.Context) ([]model.PurchaseDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PurchaseDetail), args.Error(1)
}

func (m *MockPurchaseRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockPurchaseRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockSessionManager is a mock implementation of session.Manager.
type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Create(ctx context.Context, claims session.Claims, ttl time.Duration) (string, error) {
	args := m.Called(ctx, claims, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockSessionManager) Get(ctx context.Context, sessionID string) (*session.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionManager) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// stubDispatcher records outbound mail without sending anything.
type stubDispatcher struct {
	mu                sync.Mutex
	welcomes          []string
	resetURLs         map[string]string
	notifications     []uint
	failNotifications bool
	confirmations     []string
	failConfirmations bool
}

func newStubDispatcher() *stubDispatcher {
	return &stubDispatcher{resetURLs: make(map[string]string)}
}

func (d *stubDispatcher) SendWelcome(email, name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.welcomes = append(d.welcomes, email)
	return true
}

func (d *stubDispatcher) SendPasswordReset(email, name, resetURL string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resetURLs[email] = resetURL
	return true
}

func (d *stubDispatcher) SendPurchaseNotification(email string, purchaseID uint) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notifications = append(d.notifications, purchaseID)
	return !d.failNotifications
}

func (d *stubDispatcher) SendPurchaseConfirmation(email, name, planName string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.confirmations = append(d.confirmations, planName)
	return !d.failConfirmations
}

func (d *stubDispatcher) resetURLFor(email string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.resetURLs[email]
}
