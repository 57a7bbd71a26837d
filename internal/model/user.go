package model

import "time"

// Roles recognized by the platform. RoleGuest is the registration default.
const (
	RolePlatformAdmin = "platform_admin"
	RoleCompanyAdmin  = "company_admin"
	RoleGuest         = "guest"
)

// ValidRole reports whether role is one of the recognized roles.
func ValidRole(role string) bool {
	switch role {
	case RolePlatformAdmin, RoleCompanyAdmin, RoleGuest:
		return true
	}
	return false
}

// User represents a registered account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName    string    `json:"first_name" gorm:"size:100"`
	LastName     string    `json:"last_name" gorm:"size:100"`
	Name         string    `json:"name" gorm:"size:255"`
	Role         string    `json:"role" gorm:"size:50;default:'guest';index"`
	IsSuspended  bool      `json:"is_suspended" gorm:"default:false;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
