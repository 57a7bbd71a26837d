package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/model"
)

// fakeDemoRepo is an in-memory DemoSessionRepository keyed by token.
type fakeDemoRepo struct {
	mu    sync.Mutex
	demos map[string]*model.DemoSession
}

func newFakeDemoRepo() *fakeDemoRepo {
	return &fakeDemoRepo{demos: make(map[string]*model.DemoSession)}
}

func (r *fakeDemoRepo) Create(ctx context.Context, demo *model.DemoSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.demos[demo.Token] = demo
	return nil
}

func (r *fakeDemoRepo) FindValid(ctx context.Context, token string, now time.Time) (*model.DemoSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	demo, ok := r.demos[token]
	if !ok || !demo.ExpiryTime.After(now) {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *demo
	return &copied, nil
}

func (r *fakeDemoRepo) RecordAccess(ctx context.Context, token string, featuresJSON string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if demo, ok := r.demos[token]; ok {
		demo.FeaturesAccessed = featuresJSON
	}
	return nil
}

func TestDemoService_StartDemo(t *testing.T) {
	repo := newFakeDemoRepo()
	svc := NewDemoService(repo)

	demo, err := svc.StartDemo(context.Background(), "visitor@example.com")

	require.NoError(t, err)
	assert.NotEmpty(t, demo.Token)
	assert.Equal(t, "visitor@example.com", demo.Email)
	assert.Equal(t, "{}", demo.FeaturesAccessed)
	assert.WithinDuration(t, time.Now().Add(time.Hour), demo.ExpiryTime, time.Minute)

	// Tokens are unique across sessions.
	second, err := svc.StartDemo(context.Background(), "")
	require.NoError(t, err)
	assert.NotEqual(t, demo.Token, second.Token)
}

func TestDemoService_AccessDemo(t *testing.T) {
	t.Run("valid token grants the feature set and records the access", func(t *testing.T) {
		repo := newFakeDemoRepo()
		svc := NewDemoService(repo)

		demo, err := svc.StartDemo(context.Background(), "")
		require.NoError(t, err)

		access, err := svc.AccessDemo(context.Background(), demo.Token)
		require.NoError(t, err)
		assert.Equal(t, demoFeatures, access.Features)
		assert.Equal(t, demo.ExpiryTime.Unix(), access.RemainingUntil.Unix())
		assert.Contains(t, repo.demos[demo.Token].FeaturesAccessed, "accessed_at")
	})

	t.Run("unknown token", func(t *testing.T) {
		svc := NewDemoService(newFakeDemoRepo())

		_, err := svc.AccessDemo(context.Background(), "no-such-token")
		assert.ErrorIs(t, err, apperrors.ErrDemoNotFound)
	})

	t.Run("expired token is indistinguishable from an unknown one", func(t *testing.T) {
		repo := newFakeDemoRepo()
		require.NoError(t, repo.Create(context.Background(), &model.DemoSession{
			Token:      "old",
			ExpiryTime: time.Now().Add(-time.Minute),
		}))

		svc := NewDemoService(repo)
		_, errExpired := svc.AccessDemo(context.Background(), "old")
		_, errUnknown := svc.AccessDemo(context.Background(), "never-existed")

		assert.ErrorIs(t, errExpired, apperrors.ErrDemoNotFound)
		assert.Equal(t, errUnknown, errExpired)
	})
}
