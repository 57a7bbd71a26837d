package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/model"
	"github.com/Raffi85/NetDash-Website/internal/repository"
)

const demoSessionTTL = time.Hour

// demoFeatures is the feature set exposed to demo visitors.
var demoFeatures = []string{"Real-time Monitoring", "Basic Analytics", "Threat Detection"}

// DemoAccess describes the state of a valid demo session.
type DemoAccess struct {
	RemainingUntil time.Time `json:"remaining_time"`
	Features       []string  `json:"features"`
}

// DemoService manages time-boxed unauthenticated demo sessions.
type DemoService interface {
	StartDemo(ctx context.Context, email string) (*model.DemoSession, error)
	// AccessDemo resolves a demo token, records the accessed features and
	// returns the granted feature set. Unknown and expired tokens are
	// indistinguishable.
	AccessDemo(ctx context.Context, token string) (*DemoAccess, error)
}

type demoService struct {
	demos repository.DemoSessionRepository
	now   func() time.Time
}

// NewDemoService builds a DemoService.
func NewDemoService(demos repository.DemoSessionRepository) DemoService {
	return &demoService{demos: demos, now: time.Now}
}

func (s *demoService) StartDemo(ctx context.Context, email string) (*model.DemoSession, error) {
	token, err := randomToken()
	if err != nil {
		return nil, err
	}

	demo := &model.DemoSession{
		Token:            token,
		Email:            email,
		ExpiryTime:       s.now().Add(demoSessionTTL),
		FeaturesAccessed: "{}",
	}
	if err := s.demos.Create(ctx, demo); err != nil {
		return nil, fmt.Errorf("create demo session: %w", err)
	}
	return demo, nil
}

func (s *demoService) AccessDemo(ctx context.Context, token string) (*DemoAccess, error) {
	demo, err := s.demos.FindValid(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDemoNotFound
		}
		return nil, fmt.Errorf("find demo session: %w", err)
	}

	accessed, err := json.Marshal(map[string]interface{}{
		"features":    demoFeatures,
		"accessed_at": s.now().Format(time.RFC3339),
	})
	if err == nil {
		if err := s.demos.RecordAccess(ctx, token, string(accessed)); err != nil {
			slog.Warn("record demo access", "error", err)
		}
	}

	return &DemoAccess{
		RemainingUntil: demo.ExpiryTime,
		Features:       demoFeatures,
	}, nil
}
