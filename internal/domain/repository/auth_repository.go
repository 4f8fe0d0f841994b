package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// LoginResult is the backend answer to a successful login.
type LoginResult struct {
	AccessToken string       `json:"access_token"`
	User        *entity.User `json:"user"`
}

// RegisterPayload is the body of a registration request.
type RegisterPayload struct {
	FullName string      `json:"fullName"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Phone    string      `json:"phone"`
	Role     entity.Role `json:"role"`
}

// AuthRepository defines the remote authentication and profile operations.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, payload *RegisterPayload) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, form *ProfileForm) (*entity.User, error)
}
