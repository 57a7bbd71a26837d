package service

import (
	"context"
	"fmt"

	"github.com/Raffi85/NetDash-Website/internal/mail"
	"github.com/Raffi85/NetDash-Website/internal/model"
	"github.com/Raffi85/NetDash-Website/internal/repository"
)

// SettingsService manages runtime-editable platform settings. Currently
// that is only the outbound SMTP configuration.
type SettingsService interface {
	// UpdateEmailConfig persists new SMTP settings and applies them to the
	// live dispatcher.
	UpdateEmailConfig(ctx context.Context, server string, port int, username, password string) error
}

type settingsService struct {
	configs    repository.EmailConfigRepository
	dispatcher *mail.SMTPDispatcher
}

// NewSettingsService builds a SettingsService.
func NewSettingsService(configs repository.EmailConfigRepository, dispatcher *mail.SMTPDispatcher) SettingsService {
	return &settingsService{configs: configs, dispatcher: dispatcher}
}

func (s *settingsService) UpdateEmailConfig(ctx context.Context, server string, port int, username, password string) error {
	if server == "" {
		server = "smtp.gmail.com"
	}
	if port == 0 {
		port = 587
	}

	cfg := &model.EmailConfig{
		SMTPServer:   server,
		SMTPPort:     port,
		SMTPUsername: username,
		SMTPPassword: password,
	}
	if err := s.configs.Save(ctx, cfg); err != nil {
		return fmt.Errorf("save email config: %w", err)
	}

	s.dispatcher.UpdateSettings(mail.Settings{
		Server:   server,
		Port:     port,
		Username: username,
		Password: password,
	})
	return nil
}
