package model

import "time"

// PasswordResetToken is a single-use capability permitting one password
// change without prior authentication. Rows are deleted when consumed or
// when found expired, so a token can never be redeemed twice.
type PasswordResetToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Token     string    `json:"-" gorm:"uniqueIndex;size:255;not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
