package model

import "time"

// DemoSession grants time-boxed unauthenticated access to a limited
// feature set, identified by its own opaque token.
type DemoSession struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Token            string    `json:"token" gorm:"uniqueIndex;size:255;not null"`
	Email            string    `json:"email" gorm:"size:255"`
	ExpiryTime       time.Time `json:"expiry_time" gorm:"not null"`
	FeaturesAccessed string    `json:"features_accessed" gorm:"type:json"`
	CreatedAt        time.Time `json:"created_at"`
}
