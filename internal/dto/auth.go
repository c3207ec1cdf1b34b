package dto

import (
	"time"

	"github.com/prospectr-app/prospectr/internal/core/domain"
)

// RegisterRequest defines the data needed to create a user.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	SFID     string `json:"sfid"`
}

// RegisterResponse returns the new user's identity and satellite API token.
// The token is shown once at registration time.
type RegisterResponse struct {
	UserID   string `json:"userID"`
	Email    string `json:"email"`
	APIToken string `json:"apiToken"`
}

// LoginRequest defines the credentials for a human login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns a signed JWT for the session.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	SFID   string `json:"sfid"`
	Status string `json:"status"`
}

// ToUserResponse converts a domain.User to UserResponse.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID: u.UserID,
		Email:  u.Email,
		Name:   u.Name,
		SFID:   u.SFID,
		Status: string(u.Status),
	}
}
