package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/model"
	"github.com/Raffi85/NetDash-Website/internal/repository"
	"github.com/Raffi85/NetDash-Website/internal/session"
)

// ProfileUpdate carries optional profile fields; nil means unchanged.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Name      *string
}

// UserService exposes profile operations and admin user management.
type UserService interface {
	GetProfile(ctx context.Context, userID uint) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) error
	// DeleteAccount removes the user record and destroys the caller's
	// session in the same operation, so the deleted account cannot keep an
	// authenticated session alive.
	DeleteAccount(ctx context.Context, userID uint, sessionID string) error
	ListUsers(ctx context.Context, search string) ([]model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	SetSuspension(ctx context.Context, id uint, suspended bool) error
}

type userService struct {
	users    repository.UserRepository
	sessions session.Manager
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository, sessions session.Manager) UserService {
	return &userService{users: users, sessions: sessions}
}

func (s *userService) GetProfile(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) error {
	fields := map[string]interface{}{}
	if update.FirstName != nil {
		fields["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		fields["last_name"] = *update.LastName
	}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if len(fields) == 0 {
		return nil
	}
	return s.users.UpdateProfile(ctx, userID, fields)
}

func (s *userService) DeleteAccount(ctx context.Context, userID uint, sessionID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if sessionID != "" {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}
	return nil
}

func (s *userService) ListUsers(ctx context.Context, search string) ([]model.User, error) {
	return s.users.List(ctx, search)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) SetSuspension(ctx context.Context, id uint, suspended bool) error {
	return s.users.UpdateSuspension(ctx, id, suspended)
}
