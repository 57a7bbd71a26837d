package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/mail"
	"github.com/Raffi85/NetDash-Website/internal/model"
	"github.com/Raffi85/NetDash-Website/internal/repository"
	"github.com/Raffi85/NetDash-Website/internal/session"
)

const bcryptCost = 10

// dummyHash is compared against when the email is unknown so that the
// missing-user and wrong-password paths take comparable time.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("netdash-timing-pad"), bcryptCost)

// RegisterInput carries validated registration fields.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// AuthService handles account registration and the session lifecycle.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	// Login verifies credentials and establishes a session, returning the
	// user and the new opaque session identifier.
	Login(ctx context.Context, email, password string, remember bool) (*model.User, string, error)
	// Logout destroys the session. Unknown identifiers are not an error.
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	users    repository.UserRepository
	sessions session.Manager
	mailer   mail.Dispatcher
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, sessions session.Manager, mailer mail.Dispatcher) AuthService {
	return &authService{users: users, sessions: sessions, mailer: mailer}
}

// Register creates a new user with a hashed password. The display name is
// derived from the first/last names, falling back to the email local part.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	name := strings.TrimSpace(input.FirstName + " " + input.LastName)
	if name == "" {
		name = strings.SplitN(input.Email, "@", 2)[0]
	}

	role := input.Role
	if !model.ValidRole(role) {
		role = model.RoleGuest
	}

	user := &model.User{
		Email:        input.Email,
		PasswordHash: string(hashed),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Name:         name,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the pre-check; the unique
		// index is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if !s.mailer.SendWelcome(user.Email, user.Name) {
		slog.Warn("welcome email not sent", "email", user.Email)
	}

	return user, nil
}

// Login authenticates a user and establishes a session.
//
// An unknown email and a wrong password both produce ErrInvalidCredentials;
// the suspension check runs only after the password verified, so a wrong
// password on a suspended account still reports invalid credentials.
func (s *authService) Login(ctx context.Context, email, password string, remember bool) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if user.IsSuspended {
		return nil, "", apperrors.ErrAccountSuspended
	}

	ttl := session.DefaultTTL
	if remember {
		ttl = session.RememberMeTTL
	}

	sessionID, err := s.sessions.Create(ctx, session.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}, ttl)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	return user, sessionID, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}
