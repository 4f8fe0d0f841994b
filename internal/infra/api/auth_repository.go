package api

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type authRepository struct {
	client *Client
}

// NewAuthRepository creates the HTTP AuthRepository.
func NewAuthRepository(client *Client) repository.AuthRepository {
	return &authRepository{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *authRepository) Login(ctx context.Context, email, password string) (*repository.LoginResult, error) {
	var result repository.LoginResult
	if err := r.client.DoJSON(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *authRepository) Register(ctx context.Context, payload *repository.RegisterPayload) (*entity.User, error) {
	var user entity.User
	if err := r.client.DoJSON(ctx, http.MethodPost, "/auth/register", payload, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *authRepository) UpdateProfile(ctx context.Context, userID string, form *repository.ProfileForm) (*entity.User, error) {
	var user entity.User
	if err := r.client.DoMultipart(ctx, http.MethodPatch, "/users/"+url.PathEscape(userID), ProfileFormData(form), &user); err != nil {
		return nil, err
	}

	return &user, nil
}
