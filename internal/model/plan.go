package model

import "time"

// Plan represents a subscription plan offered on the pricing page.
// Features holds a JSON-encoded list of feature descriptions.
type Plan struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Features  string    `json:"-" gorm:"type:json"`
	IsActive  bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at"`
}
