package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/model"
	"github.com/Raffi85/NetDash-Website/internal/repository"
)

const publicReviewLimit = 10

// ReviewService exposes review operations.
type ReviewService interface {
	// CreateReview submits a review on behalf of the authenticated user.
	// Platform admins cannot post reviews.
	CreateReview(ctx context.Context, userID uint, rating int, comment string) error
	ListReviews(ctx context.Context) ([]model.Review, error)
	ListPublicReviews(ctx context.Context) ([]model.Review, error)
	SetApproval(ctx context.Context, id uint, approved bool) error
}

type reviewService struct {
	reviews repository.ReviewRepository
	users   repository.UserRepository
}

// NewReviewService builds a ReviewService.
func NewReviewService(reviews repository.ReviewRepository, users repository.UserRepository) ReviewService {
	return &reviewService{reviews: reviews, users: users}
}

func (s *reviewService) CreateReview(ctx context.Context, userID uint, rating int, comment string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if user.Role != model.RoleCompanyAdmin && user.Role != model.RoleGuest {
		return apperrors.ErrForbidden
	}

	review := &model.Review{
		UserID:  &user.ID,
		Name:    user.Name,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (s *reviewService) ListReviews(ctx context.Context) ([]model.Review, error) {
	return s.reviews.List(ctx)
}

func (s *reviewService) ListPublicReviews(ctx context.Context) ([]model.Review, error) {
	return s.reviews.ListPublic(ctx, publicReviewLimit)
}

func (s *reviewService) SetApproval(ctx context.Context, id uint, approved bool) error {
	return s.reviews.SetApproval(ctx, id, approved)
}
