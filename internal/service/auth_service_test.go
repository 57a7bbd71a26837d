package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/model"
	"github.com/Raffi85/NetDash-Website/internal/session"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		input         RegisterInput
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedName  string
		expectedRole  string
	}{
		{
			name: "successful registration",
			input: RegisterInput{
				Email:     "new@example.com",
				Password:  "password123",
				FirstName: "Ada",
				LastName:  "Lovelace",
				Role:      model.RoleCompanyAdmin,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedName: "Ada Lovelace",
			expectedRole: model.RoleCompanyAdmin,
		},
		{
			name: "email already registered",
			input: RegisterInput{
				Email:    "existing@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailExists,
		},
		{
			name: "duplicate slipping past the pre-check surfaces as email exists",
			input: RegisterInput{
				Email:    "race@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "race@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrEmailExists,
		},
		{
			name: "name falls back to email local part",
			input: RegisterInput{
				Email:    "fallback@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "fallback@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedName: "fallback",
			expectedRole: model.RoleGuest,
		},
		{
			name: "unknown role collapses to guest",
			input: RegisterInput{
				Email:    "sneaky@example.com",
				Password: "password123",
				Role:     "superuser",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "sneaky@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedName: "sneaky",
			expectedRole: model.RoleGuest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, new(MockSessionManager), newStubDispatcher())
			user, err := svc.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input.Email, user.Email)
				assert.Equal(t, tt.expectedName, user.Name)
				assert.Equal(t, tt.expectedRole, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.input.Password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)

	tests := []struct {
		name          string
		email         string
		password      string
		remember      bool
		setupMock     func(*MockUserRepository, *MockSessionManager)
		expectedError error
	}{
		{
			name:     "successful login uses the default session lifetime",
			email:    "user@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessionManager) {
				mRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(&model.User{
					ID:           1,
					Email:        "user@example.com",
					PasswordHash: string(hashed),
					Role:         model.RoleGuest,
				}, nil)
				mSess.On("Create", mock.Anything, mock.AnythingOfType("session.Claims"), session.DefaultTTL).Return("sess-1", nil)
			},
		},
		{
			name:     "remember me extends the session lifetime",
			email:    "user@example.com",
			password: "password123",
			remember: true,
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessionManager) {
				mRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(&model.User{
					ID:           1,
					Email:        "user@example.com",
					PasswordHash: string(hashed),
					Role:         model.RoleGuest,
				}, nil)
				mSess.On("Create", mock.Anything, mock.AnythingOfType("session.Claims"), session.RememberMeTTL).Return("sess-2", nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessionManager) {
				mRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "user@example.com",
			password: "wrong-password",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessionManager) {
				mRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(&model.User{
					ID:           1,
					Email:        "user@example.com",
					PasswordHash: string(hashed),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "suspended account with correct password",
			email:    "banned@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessionManager) {
				mRepo.On("FindByEmail", mock.Anything, "banned@example.com").Return(&model.User{
					ID:           2,
					Email:        "banned@example.com",
					PasswordHash: string(hashed),
					IsSuspended:  true,
				}, nil)
			},
			expectedError: apperrors.ErrAccountSuspended,
		},
		{
			name:     "suspended account with wrong password reports invalid credentials",
			email:    "banned@example.com",
			password: "wrong-password",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessionManager) {
				mRepo.On("FindByEmail", mock.Anything, "banned@example.com").Return(&model.User{
					ID:           2,
					Email:        "banned@example.com",
					PasswordHash: string(hashed),
					IsSuspended:  true,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockSessions := new(MockSessionManager)
			tt.setupMock(mockRepo, mockSessions)

			svc := NewAuthService(mockRepo, mockSessions, newStubDispatcher())
			user, sessionID, err := svc.Login(context.Background(), tt.email, tt.password, tt.remember)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, sessionID)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, sessionID)
			}

			mockRepo.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginErrorParity(t *testing.T) {
	// Unknown email and wrong password must be indistinguishable to the
	// caller.
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(&model.User{
		ID:           1,
		Email:        "user@example.com",
		PasswordHash: string(hashed),
	}, nil)

	svc := NewAuthService(mockRepo, new(MockSessionManager), newStubDispatcher())

	_, _, errUnknown := svc.Login(context.Background(), "nobody@example.com", "password123", false)
	_, _, errWrong := svc.Login(context.Background(), "user@example.com", "wrong-password", false)

	assert.Equal(t, errUnknown, errWrong)
}

func TestAuthService_Logout(t *testing.T) {
	mockSessions := new(MockSessionManager)
	mockSessions.On("Delete", mock.Anything, "sess-1").Return(nil)

	svc := NewAuthService(new(MockUserRepository), mockSessions, newStubDispatcher())

	assert.NoError(t, svc.Logout(context.Background(), "sess-1"))

	// Logging out without a session is a no-op, not an error.
	assert.NoError(t, svc.Logout(context.Background(), ""))

	mockSessions.AssertExpectations(t)
}
