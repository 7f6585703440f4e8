package dto

import (
	"time"

	"github.com/dailydiet/daily-diet-api/internal/models"
	"github.com/google/uuid"
)

// Pointer fields distinguish "absent" from "zero value" so validation can
// report exactly which properties the body is missing.
type CreateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		SessionID: user.SessionID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
