package service

import (
	"context"
	"fmt"

	"github.com/Raffi85/NetDash-Website/internal/model"
	"github.com/Raffi85/NetDash-Website/internal/repository"
)

// Analytics holds the dashboard counters. Active subscriptions count both
// pending and completed purchases.
type Analytics struct {
	TotalUsers             int64 `json:"total_users"`
	ActiveSubscriptions    int64 `json:"active_subscriptions"`
	CompletedSubscriptions int64 `json:"completed_subscriptions"`
	PendingSubscriptions   int64 `json:"pending_subscriptions"`
	TotalReviews           int64 `json:"total_reviews"`
	PendingContacts        int64 `json:"pending_contacts"`
}

// AnalyticsService computes the admin dashboard counters.
type AnalyticsService interface {
	GetAnalytics(ctx context.Context) (*Analytics, error)
}

type analyticsService struct {
	users     repository.UserRepository
	purchases repository.PurchaseRepository
	reviews   repository.ReviewRepository
	contacts  repository.ContactRepository
}

// NewAnalyticsService builds an AnalyticsService.
func NewAnalyticsService(
	users repository.UserRepository,
	purchases repository.PurchaseRepository,
	reviews repository.ReviewRepository,
	contacts repository.ContactRepository,
) AnalyticsService {
	return &analyticsService{users: users, purchases: purchases, reviews: reviews, contacts: contacts}
}

func (s *analyticsService) GetAnalytics(ctx context.Context) (*Analytics, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	completed, err := s.purchases.CountByStatus(ctx, model.PurchaseStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("count completed purchases: %w", err)
	}

	pending, err := s.purchases.CountByStatus(ctx, model.PurchaseStatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending purchases: %w", err)
	}

	totalReviews, err := s.reviews.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	pendingContacts, err := s.contacts.CountByStatus(ctx, model.ContactStatusNew)
	if err != nil {
		return nil, fmt.Errorf("count contacts: %w", err)
	}

	return &Analytics{
		TotalUsers:             totalUsers,
		ActiveSubscriptions:    completed + pending,
		CompletedSubscriptions: completed,
		PendingSubscriptions:   pending,
		TotalReviews:           totalReviews,
		PendingContacts:        pendingContacts,
	}, nil
}
