// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	FullName string      `validate:"required"`
	Email    string      `validate:"required,email"`
	Password string      `validate:"required"`
	Phone    string      `validate:"required"`
	Role     entity.Role `validate:"required,role"`
}

// UpdateProfileInput carries the editable profile fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	FullName *string `validate:"omitempty,min=1"`
	Phone    *string
	Avatar   entity.FileRef
}

// AuthUsecase defines the account and session operations.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*entity.User, error)
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)
	CurrentSession() entity.Session
}
