package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Roles ===================== */

const (
	RoleAdmin       = "admin"
	RoleSchoolAdmin = "school_admin"
	RoleTrustee     = "trustee"
)

// UserModel represents the users table
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"type:varchar(20);not null;default:'school_admin'" json:"role"`
	SchoolID *string   `gorm:"size:64;index" json:"school_id,omitempty"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSchoolAdmin, RoleTrustee:
		return true
	default:
		return false
	}
}
