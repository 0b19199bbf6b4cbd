package dto

import "github.com/boxstory/yk/internal/model"

// ── auth ──

// LoginRequest login payload
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest self-registration payload. Admin accounts are not self-service.
type RegisterRequest struct {
	Name       string `json:"name"        binding:"required,min=2,max=100"`
	Email      string `json:"email"       binding:"required,email,max=255"`
	Password   string `json:"password"    binding:"required,min=8,max=72"`
	Role       string `json:"role"        binding:"required,oneof=landlord realtor workman"`
	IsBusiness bool   `json:"is_business"`
}

// RefreshTokenRequest refresh payload
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse token pair
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // seconds
	User         UserResponse `json:"user"`
}

// UserResponse public user view
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsBusiness bool   `json:"is_business"`
	CreatedAt  string `json:"created_at"`
}

// NewUserResponse maps a user model.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:         u.UserID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		IsBusiness: u.IsBusiness,
		CreatedAt:  u.CreatedAt.Format(timeLayout),
	}
}
