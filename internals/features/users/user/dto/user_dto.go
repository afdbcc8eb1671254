package dto

import (
	"time"

	"github.com/google/uuid"

	uModel "yuvasabha_backend/internals/features/users/user/model"
)

/* ===================== REQUESTS ===================== */

type RegisterUserRequest struct {
	UserUserName string     `json:"user_user_name" validate:"required,min=3,max=50"`
	UserName     string     `json:"user_name" validate:"required,min=2,max=100"`
	UserEmail    string     `json:"user_email" validate:"required,email"`
	UserPassword string     `json:"user_password" validate:"required,min=8"`
	UserRoleID   *uuid.UUID `json:"user_role_id" validate:"omitempty"`
}

type LoginRequest struct {
	UserUserName string `json:"user_user_name" validate:"required"`
	UserPassword string `json:"user_password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type UpdatePasswordRequest struct {
	UserUserName    string `json:"user_user_name" validate:"required"`
	UserNewPassword string `json:"user_new_password" validate:"required,min=8"`
}

type AccessibleMandalsRequest struct {
	UserID    uuid.UUID   `json:"user_id" validate:"required"`
	MandalIDs []uuid.UUID `json:"mandal_ids" validate:"required,min=1"`
}

type AccessibleMandalsQuery struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserUserName string     `json:"user_user_name"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	UserRoleID   *uuid.UUID `json:"user_role_id,omitempty"`
	UserIsActive bool       `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func NewUserResponse(m *uModel.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		UserID:        m.UserID,
		UserUserName:  m.UserUserName,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRoleID:    m.UserRoleID,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}

type LoginResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
}
