package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/mail"
	"github.com/Raffi85/NetDash-Website/internal/model"
	"github.com/Raffi85/NetDash-Website/internal/repository"
)

const (
	resetTokenTTL     = time.Hour
	minPasswordLength = 8
)

// ResetService implements the password reset token lifecycle. A token is
// issued for a registered email, can be redeemed exactly once before its
// expiry, and is destroyed on redemption or on first sight after expiry.
type ResetService interface {
	// RequestReset issues a reset token when email belongs to a user. The
	// outcome is indistinguishable to the caller either way.
	RequestReset(ctx context.Context, email string) error
	// ConsumeReset redeems a token and sets the new password. A short
	// password leaves the token intact for a retry.
	ConsumeReset(ctx context.Context, token, newPassword string) error
}

type resetService struct {
	users   repository.UserRepository
	tokens  repository.ResetTokenRepository
	mailer  mail.Dispatcher
	baseURL string
	now     func() time.Time
}

// NewResetService creates a new password reset service. baseURL is the
// public origin used to build reset links.
func NewResetService(users repository.UserRepository, tokens repository.ResetTokenRepository, mailer mail.Dispatcher, baseURL string) ResetService {
	return &resetService{
		users:   users,
		tokens:  tokens,
		mailer:  mailer,
		baseURL: baseURL,
		now:     time.Now,
	}
}

func (s *resetService) RequestReset(ctx context.Context, email string) error {
	// The token is generated before the lookup result is consulted so the
	// registered and unregistered paths do comparable work.
	token, err := randomToken()
	if err != nil {
		return err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Do not reveal that the email is unknown.
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	row := &model.PasswordResetToken{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: s.now().Add(resetTokenTTL),
	}
	if err := s.tokens.Create(ctx, row); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password.html?token=%s", s.baseURL, token)
	// Dispatched off the request path so the registered and unregistered
	// outcomes return in comparable time.
	go func() {
		if !s.mailer.SendPasswordReset(user.Email, user.Name, resetURL) {
			slog.Warn("password reset email not sent", "email", user.Email)
		}
	}()
	return nil
}

func (s *resetService) ConsumeReset(ctx context.Context, token, newPassword string) error {
	row, err := s.tokens.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("find reset token: %w", err)
	}

	now := s.now()
	if now.After(row.ExpiresAt) {
		// Expiry is terminal: drop the token so later attempts fail the
		// same way whether or not any sweep ran in between.
		if err := s.tokens.Delete(ctx, token); err != nil {
			slog.Error("delete expired reset token", "error", err)
		}
		return apperrors.ErrInvalidOrExpiredToken
	}

	if len(newPassword) < minPasswordLength {
		// Token stays unconsumed; the caller may retry with a valid password.
		return apperrors.ErrWeakPassword
	}

	claimed, err := s.tokens.Consume(ctx, token, now)
	if err != nil {
		return fmt.Errorf("consume reset token: %w", err)
	}
	if !claimed {
		// Another redemption won the race, or the token expired between the
		// read and the claim.
		return apperrors.ErrInvalidOrExpiredToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePasswordHash(ctx, row.UserID, string(hashed)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
