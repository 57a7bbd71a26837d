package model

import "time"

// EmailConfig stores the outbound SMTP settings editable from the admin
// dashboard. A single row is kept; updates overwrite it.
type EmailConfig struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	SMTPServer   string    `json:"smtp_server" gorm:"size:255;default:'smtp.gmail.com'"`
	SMTPPort     int       `json:"smtp_port" gorm:"default:587"`
	SMTPUsername string    `json:"smtp_username" gorm:"size:255"`
	SMTPPassword string    `json:"-" gorm:"size:255"`
	UpdatedAt    time.Time `json:"updated_at"`
}
