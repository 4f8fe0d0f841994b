package impl

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/query"
	"storefront/internal/infra/storage"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/session"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service usecase.AuthUsecase
	repo    *mockRepo.MockAuthRepository
	session *session.Store
	cache   *query.Client
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	repo := mockRepo.NewMockAuthRepository(t)
	store := session.NewStore(storage.NewMemoryStorage(), discardLogger())
	cache := newTestCache()

	return authServiceFixtures{
		service: NewAuthService(repo, store, cache, newTestValidator(t), discardLogger()),
		repo:    repo,
		session: store,
		cache:   cache,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: entity.RoleClient}

	fx.repo.EXPECT().Login(ctx, "ana@example.com", "secret").
		Return(&repository.LoginResult{AccessToken: "tok", User: user}, nil)

	got, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, user, got)
	snap := fx.service.CurrentSession()
	assert.True(t, snap.IsAuthenticated)
	assert.Equal(t, "tok", snap.Token)
	assert.Equal(t, entity.RoleClient, snap.Role())
}

func TestAuthService_Login_Rejected(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	apiErr := domainerrors.NewAPIError(http.MethodPost, "/auth/login", http.StatusUnauthorized,
		domainerrors.NewErrorBody(http.StatusUnauthorized, "Unauthorized", "Credenciales inválidas"))

	fx.repo.EXPECT().Login(ctx, "ana@example.com", "bad").Return(nil, apiErr)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "bad"})

	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, domainerrors.StatusCode(err))
	assert.Equal(t, "Credenciales inválidas", domainerrors.UserMessage(err, "fallback"))
	assert.False(t, fx.service.CurrentSession().IsAuthenticated)
}

func TestAuthService_Login_ValidationShortCircuits(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: "not-an-email", Password: ""})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "email must be a valid email")
	assert.Contains(t, err.Error(), "password is required")
}

func TestAuthService_Login_IncompleteResponse(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.repo.EXPECT().Login(ctx, "ana@example.com", "secret").
		Return(&repository.LoginResult{AccessToken: "tok"}, nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "secret"})

	require.ErrorIs(t, err, domainerrors.ErrUnexpectedShape)
	assert.False(t, fx.service.CurrentSession().IsAuthenticated)
}

func TestAuthService_Register(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := usecase.RegisterInput{
		FullName: "Ana Pérez",
		Email:    "ana@example.com",
		Password: "secret",
		Phone:    "555",
		Role:     entity.RoleShopper,
	}

	fx.repo.EXPECT().Register(ctx, &repository.RegisterPayload{
		FullName: "Ana Pérez",
		Email:    "ana@example.com",
		Password: "secret",
		Phone:    "555",
		Role:     entity.RoleShopper,
	}).Return(&entity.User{ID: "u2", Role: entity.RoleShopper}, nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "u2", user.ID)
	assert.False(t, fx.service.CurrentSession().IsAuthenticated)
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		FullName: "Ana",
		Email:    "ana@example.com",
		Password: "secret",
		Phone:    "555",
		Role:     entity.Role("ADMIN"),
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "role must be CLIENT or SHOPPER")
}

func TestAuthService_Logout_ClearsCache(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	require.NoError(t, fx.session.Login(ctx, &entity.User{ID: "u1", Role: entity.RoleClient}, "tok"))
	fx.cache.SetQueryData(KeyShops(), []entity.Shop{{ID: "s1"}})

	fx.service.Logout(ctx)

	assert.False(t, fx.service.CurrentSession().IsAuthenticated)
	_, ok := fx.cache.GetQueryData(KeyShops())
	assert.False(t, ok)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	t.Run("replaces the session user with the server response", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		require.NoError(t, fx.session.Login(ctx, &entity.User{ID: "u1", Name: "Ana", Role: entity.RoleClient}, "tok"))
		updated := &entity.User{ID: "u1", Name: "Ana María", Phone: "777", Role: entity.RoleClient}

		fx.repo.EXPECT().UpdateProfile(ctx, "u1", mock.MatchedBy(func(form *repository.ProfileForm) bool {
			return form.FullName != nil && *form.FullName == "Ana María" && form.Phone == nil
		})).Return(updated, nil)

		got, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{FullName: ptr("Ana María")})

		require.NoError(t, err)
		assert.Equal(t, updated, got)
		snap := fx.service.CurrentSession()
		assert.Equal(t, "Ana María", snap.User.Name)
		assert.Equal(t, "777", snap.User.Phone)
		assert.Equal(t, "tok", snap.Token)
	})

	t.Run("requires a session", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.UpdateProfile(context.Background(), usecase.UpdateProfileInput{FullName: ptr("x")})

		require.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	})
}
