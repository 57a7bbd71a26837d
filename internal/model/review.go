package model

import "time"

// Review is a customer review. Reviews are hidden from the public listing
// until approved by a platform admin.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     *uint     `json:"user_id" gorm:"index"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	Rating     int       `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment" gorm:"type:text"`
	IsApproved bool      `json:"is_approved" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
}
