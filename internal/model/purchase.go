package model

import "time"

// Purchase statuses.
const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
	PurchaseStatusFailed    = "failed"
	PurchaseStatusRefunded  = "refunded"
)

// ValidPurchaseStatus reports whether status is a recognized purchase status.
func ValidPurchaseStatus(status string) bool {
	switch status {
	case PurchaseStatusPending, PurchaseStatusCompleted, PurchaseStatusFailed, PurchaseStatusRefunded:
		return true
	}
	return false
}

// Purchase records a plan purchase by a user.
type Purchase struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	PlanID       uint      `json:"plan_id" gorm:"not null;index"`
	Amount       float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status       string    `json:"status" gorm:"size:50;default:'pending';index"`
	PurchaseDate time.Time `json:"purchase_date" gorm:"autoCreateTime"`
}

// PurchaseDetail is a purchase joined with the buyer and plan names,
// as shown on the admin dashboard.
type PurchaseDetail struct {
	Purchase
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	PlanName string `json:"plan_name"`
}
