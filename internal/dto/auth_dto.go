package dto

import (
	"time"

	"moviehub/internal/models"
)

// Data Transfer Objects for authentication requests and responses

// SignupRequest: payload for account creation
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest: payload for obtaining a token pair
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest: payload for minting a new access token
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// VerifyRequest: payload for checking an access token
type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

// RevokeRequest: payload for revoking a refresh token
type RevokeRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// UserResponse: public view of a user account
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SignupResponse: account plus the freshly issued token pair
type SignupResponse struct {
	User    UserResponse `json:"user"`
	Refresh string       `json:"refresh"`
	Access  string       `json:"access"`
}

// TokenPairResponse: issued on successful login
type TokenPairResponse struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

// AccessTokenResponse: issued on refresh
type AccessTokenResponse struct {
	Access string `json:"access"`
}

func FromUserModel(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
