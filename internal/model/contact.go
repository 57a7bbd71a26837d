package model

import "time"

// Contact message statuses.
const (
	ContactStatusNew       = "new"
	ContactStatusResponded = "responded"
	ContactStatusClosed    = "closed"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"size:50;default:'new';index"`
	CreatedAt time.Time `json:"created_at"`
}
