// Package mail implements the outbound email dispatcher. Failures never
// cross the dispatcher boundary: every send reports a boolean and logs the
// cause, so a failed email cannot alter the outcome of the business
// operation that triggered it.
package mail

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"sync"
)

// Dispatcher sends the transactional emails the platform produces.
type Dispatcher interface {
	SendWelcome(email, name string) bool
	SendPasswordReset(email, name, resetURL string) bool
	SendPurchaseNotification(email string, purchaseID uint) bool
	SendPurchaseConfirmation(email, name, planName string) bool
}

// Settings holds the SMTP connection parameters. They are updatable at
// runtime from the admin email-config endpoint.
type Settings struct {
	Server   string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPDispatcher sends mail over SMTP. When no credentials are configured
// it logs a warning and reports failure, like the rest of the send path.
type SMTPDispatcher struct {
	mu       sync.RWMutex
	settings Settings
}

// NewSMTPDispatcher creates a dispatcher with the given initial settings.
func NewSMTPDispatcher(settings Settings) *SMTPDispatcher {
	return &SMTPDispatcher{settings: settings}
}

// UpdateSettings replaces the SMTP settings for subsequent sends.
func (d *SMTPDispatcher) UpdateSettings(settings Settings) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if settings.From == "" {
		settings.From = d.settings.From
	}
	d.settings = settings
}

func (d *SMTPDispatcher) currentSettings() Settings {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.settings
}

// SendWelcome sends the post-registration welcome email.
func (d *SMTPDispatcher) SendWelcome(email, name string) bool {
	body := fmt.Sprintf(`<html><body>
<h2>Welcome to NetDash, %s!</h2>
<p>Thank you for joining our cybersecurity platform.</p>
<p>You can now access all features available in your plan.</p>
<p>Best regards,<br>The NetDash Team</p>
</body></html>`, name)
	return d.send(email, "Welcome to NetDash!", body)
}

// SendPasswordReset sends the reset link for a pending password reset.
func (d *SMTPDispatcher) SendPasswordReset(email, name, resetURL string) bool {
	body := fmt.Sprintf(`<html><body>
<h2>Password Reset Request</h2>
<p>Hello %s,</p>
<p>We received a request to reset your password for your NetDash account.</p>
<p>To reset your password, please click the link below:</p>
<p><a href="%s">%s</a></p>
<p>This link will expire in 1 hour.</p>
<p>If you didn't request this password reset, you can ignore this email.</p>
<p>Best regards,<br>The NetDash Team</p>
</body></html>`, name, resetURL, resetURL)
	return d.send(email, "NetDash Password Reset", body)
}

// SendPurchaseNotification acknowledges a newly initiated purchase.
func (d *SMTPDispatcher) SendPurchaseNotification(email string, purchaseID uint) bool {
	body := fmt.Sprintf(`<html><body>
<h2>Thank you for your purchase!</h2>
<p>Your purchase ID is: <strong>%d</strong></p>
<p>We'll process your order shortly and send you access details.</p>
<p>Best regards,<br>The NetDash Team</p>
</body></html>`, purchaseID)
	return d.send(email, "Purchase Confirmation - NetDash", body)
}

// SendPurchaseConfirmation confirms an activated plan purchase.
func (d *SMTPDispatcher) SendPurchaseConfirmation(email, name, planName string) bool {
	body := fmt.Sprintf(`<html><body>
<h2>Purchase Confirmed!</h2>
<p>Dear %s,</p>
<p>Your purchase of the <strong>%s</strong> plan has been confirmed and activated.</p>
<p>You now have access to all features included in your plan.</p>
<p>Best regards,<br>The NetDash Team</p>
</body></html>`, name, planName)
	return d.send(email, "Purchase Confirmed - NetDash", body)
}

func (d *SMTPDispatcher) send(to, subject, htmlBody string) bool {
	s := d.currentSettings()
	if s.Username == "" || s.Password == "" {
		slog.Warn("smtp not configured, email not sent", "to", to, "subject", subject)
		return false
	}

	from := s.From
	if from == "" {
		from = s.Username
	}

	message := fmt.Sprintf("From: %s\r\n", from)
	message += fmt.Sprintf("To: %s\r\n", to)
	message += fmt.Sprintf("Subject: %s\r\n", subject)
	message += "MIME-Version: 1.0\r\n"
	message += "Content-Type: text/html; charset=UTF-8\r\n"
	message += "\r\n"
	message += htmlBody

	auth := smtp.PlainAuth("", s.Username, s.Password, s.Server)
	addr := fmt.Sprintf("%s:%d", s.Server, s.Port)
	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(message)); err != nil {
		slog.Error("email send failed", "to", to, "subject", subject, "error", err)
		return false
	}

	slog.Info("email sent", "to", to, "subject", subject)
	return true
}
