package dto

import (
	"schoolpay_backend/internals/features/users/model"
)

/* ===================== Requests ===================== */

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"omitempty,oneof=admin school_admin trustee"`
	SchoolID *string `json:"school_id" validate:"omitempty,max=64"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* ===================== Responses ===================== */

type UserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	SchoolID *string `json:"school_id,omitempty"`
	IsActive bool    `json:"is_active"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func FromUserModel(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		SchoolID: u.SchoolID,
		IsActive: u.IsActive,
	}
}
