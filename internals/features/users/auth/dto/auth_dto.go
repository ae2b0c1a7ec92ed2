package dto

import (
	"time"

	"gymdesk_backend/internals/features/users/auth/model"
)

/* ========== REQUEST DTOs ========== */

type RegisterRequest struct {
	UserOrgID    uint   `json:"user_org_id" validate:"required,min=1"`
	UserFullName string `json:"user_full_name" validate:"required,min=2,max=120"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
	UserPersona  string `json:"user_persona" validate:"omitempty,oneof=User Staff Coach"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type ForgotPasswordRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	ResetToken      string `json:"reset_token" validate:"required"`
	UserNewPassword string `json:"user_new_password" validate:"required,min=8"`
}

type ChangePasswordRequest struct {
	UserCurrentPassword string `json:"user_current_password" validate:"required"`
	UserNewPassword     string `json:"user_new_password" validate:"required,min=8"`
}

/* ========== RESPONSE DTOs ========== */

type UserResponse struct {
	UserID       uint      `json:"user_id"`
	UserOrgID    uint      `json:"user_org_id"`
	UserFullName string    `json:"user_full_name"`
	UserEmail    string    `json:"user_email"`
	UserPersona  string    `json:"user_persona"`
	UserIsActive bool      `json:"user_is_active"`
	UserCreated  time.Time `json:"user_created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func NewUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:       m.UserID,
		UserOrgID:    m.UserOrgID,
		UserFullName: m.UserFullName,
		UserEmail:    m.UserEmail,
		UserPersona:  m.UserPersona,
		UserIsActive: m.UserIsActive,
		UserCreated:  m.UserCreatedAt,
	}
}
