// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/query"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// SessionManager is the part of the session store the account flows drive.
type SessionManager interface {
	Login(ctx context.Context, user *entity.User, token string) error
	Logout(ctx context.Context)
	ReplaceUser(ctx context.Context, user *entity.User) error
	Snapshot() entity.Session
}

// authService implements the AuthUsecase interface.
type authService struct {
	repo     repository.AuthRepository
	session  SessionManager
	cache    *query.Client
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	repo repository.AuthRepository,
	session SessionManager,
	cache *query.Client,
	validate *validator.Validate,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		repo:     repo,
		session:  session,
		cache:    cache,
		validate: validate,
		logger:   logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Login authenticates with the backend and opens the session.
// On failure the session is left untouched.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*entity.User, error) {
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	result, err := srv.repo.Login(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login")
	}
	if result == nil || result.User == nil || result.AccessToken == "" {
		return nil, domainerrors.ErrUnexpectedShape.WithDetails("login response without user or token")
	}

	if err := srv.session.Login(ctx, result.User, result.AccessToken); err != nil {
		return nil, errors.Wrap(err, "failed to open session")
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", result.User.ID), slog.String("role", result.User.Role.String()))

	return result.User, nil
}

// Register creates an account. It does not log the new user in.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	user, err := srv.repo.Register(ctx, &repository.RegisterPayload{
		FullName: input.FullName,
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
		Role:     input.Role,
	})
	if err != nil {
		return nil, errors.Wrap(err, "register")
	}

	srv.log(ctx).Info("User registered", slog.String("email", input.Email))

	return user, nil
}

// Logout closes the session and forgets every cached read.
func (srv *authService) Logout(ctx context.Context) {
	srv.session.Logout(ctx)
	srv.cache.Clear()

	srv.log(ctx).Info("User logged out")
}

// UpdateProfile sends the profile form and replaces the session user with the server's answer.
func (srv *authService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	snap := srv.session.Snapshot()
	if !snap.IsAuthenticated || snap.User == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	user, err := srv.repo.UpdateProfile(ctx, snap.User.ID, &repository.ProfileForm{
		FullName: input.FullName,
		Phone:    input.Phone,
		Avatar:   input.Avatar,
	})
	if err != nil {
		return nil, errors.Wrap(err, "update profile")
	}
	if user == nil {
		return nil, domainerrors.ErrUnexpectedShape.WithDetails("profile response without user")
	}

	if err := srv.session.ReplaceUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to refresh session user")
	}
	invalidate(srv.cache, MutationUpdateProfile)

	return user, nil
}

// CurrentSession returns a snapshot of the session.
func (srv *authService) CurrentSession() entity.Session {
	return srv.session.Snapshot()
}
