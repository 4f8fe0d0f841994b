package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/storage"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/session"
	"storefront/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type appFixtures struct {
	app      *App
	auth     *mockUsecase.MockAuthUsecase
	market   *mockUsecase.MockMarketUsecase
	orders   *mockUsecase.MockOrderUsecase
	list     *mockUsecase.MockShoppingListUsecase
	location *mockService.MockLocationProvider
	session  *session.Store
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
}

type rewriteMedia struct{}

func (rewriteMedia) ResolveMediaURL(raw string) string {
	return strings.Replace(raw, "http://localhost:3000", "https://api.example.com", 1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestApp(t *testing.T) appFixtures {
	t.Helper()

	store := session.NewStore(storage.NewMemoryStorage(), discardLogger())
	nav := NewNavigator()

	f := appFixtures{
		auth:     mockUsecase.NewMockAuthUsecase(t),
		market:   mockUsecase.NewMockMarketUsecase(t),
		orders:   mockUsecase.NewMockOrderUsecase(t),
		list:     mockUsecase.NewMockShoppingListUsecase(t),
		location: mockService.NewMockLocationProvider(t),
		session:  store,
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
	}
	f.app = NewApp(AppParams{
		Auth:         f.auth,
		Market:       f.market,
		Orders:       f.orders,
		ShoppingList: f.list,
		Session:      store,
		Gate:         session.NewGate(store, nav, discardLogger()),
		Navigator:    nav,
		Location:     f.location,
		Media:        rewriteMedia{},
		Logger:       discardLogger(),
	})
	f.app.SetOutput(f.stdout, f.stderr)

	return f
}

func (f appFixtures) signIn(t *testing.T) *entity.User {
	t.Helper()

	user := &entity.User{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: entity.RoleClient}
	require.NoError(t, f.session.Login(context.Background(), user, "tok"))

	return user
}

func TestApp_Run_Usage(t *testing.T) {
	f := createTestApp(t)

	assert.Equal(t, ExitUsage, f.app.Run(context.Background(), nil))
	assert.Contains(t, f.stderr.String(), "Usage: storefront <command>")
	assert.Contains(t, f.stderr.String(), "order-create")
}

func TestApp_Run_UnknownCommand(t *testing.T) {
	f := createTestApp(t)

	assert.Equal(t, ExitUsage, f.app.Run(context.Background(), []string{"fly"}))
	assert.Contains(t, f.stderr.String(), `unknown command "fly"`)
}

func TestApp_Run_AnonymousIsSentToLogin(t *testing.T) {
	f := createTestApp(t)

	code := f.app.Run(context.Background(), []string{"orders"})

	assert.Equal(t, ExitError, code)
	assert.Contains(t, f.stderr.String(), "not signed in")
	assert.Empty(t, f.stdout.String())
}

func TestApp_Run_SignedInCannotLogin(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)

	code := f.app.Run(context.Background(), []string{"login", "-email", "a@b.c", "-password", "x"})

	assert.Equal(t, ExitError, code)
	assert.Contains(t, f.stderr.String(), "already signed in")
}

func TestApp_Run_HydratesPersistedSession(t *testing.T) {
	mem := storage.NewMemoryStorage()
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, session.KeyToken, "tok"))
	require.NoError(t, mem.Set(ctx, session.KeyUser, `{"id":"u1","name":"Ana","email":"ana@example.com","role":"CLIENT"}`))

	f := createTestApp(t)
	store := session.NewStore(mem, discardLogger())
	f.app.session = store
	f.app.gate = session.NewGate(store, f.app.nav, discardLogger())
	f.orders.EXPECT().ClientOrders(mock.Anything).Return(nil, nil)

	code := f.app.Run(ctx, []string{"orders"})

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, f.stdout.String(), "No orders yet.")
}

func TestApp_Login(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "success",
			wantCode:   ExitOK,
			wantStdout: "Signed in as Ana (CLIENT)\n",
		},
		{
			name: "server message is shown",
			err: domainerrors.NewAPIError(http.MethodPost, "/auth/login", http.StatusUnauthorized,
				domainerrors.NewErrorBody(http.StatusUnauthorized, "Unauthorized", "Invalid credentials")),
			wantCode:   ExitError,
			wantStderr: "Could not sign in: Invalid credentials\n",
		},
		{
			name:       "transport failure falls back to the generic message",
			err:        &domainerrors.TransportError{Err: context.DeadlineExceeded},
			wantCode:   ExitError,
			wantStderr: "Could not sign in: " + genericFailure + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestApp(t)
			input := usecase.LoginInput{Email: "ana@example.com", Password: "secret"}

			if tt.err != nil {
				f.auth.EXPECT().Login(mock.Anything, input).Return(nil, tt.err)
			} else {
				f.auth.EXPECT().Login(mock.Anything, input).
					Return(&entity.User{ID: "u1", Name: "Ana", Role: entity.RoleClient}, nil)
			}

			code := f.app.Run(context.Background(), []string{"login", "-email", "ana@example.com", "-password", "secret"})

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStdout, f.stdout.String())
			assert.Equal(t, tt.wantStderr, f.stderr.String())
		})
	}
}

func TestApp_Register_UppercasesRole(t *testing.T) {
	f := createTestApp(t)
	f.auth.EXPECT().Register(mock.Anything, usecase.RegisterInput{
		FullName: "Bo",
		Email:    "bo@example.com",
		Password: "pw",
		Phone:    "555",
		Role:     entity.RoleShopper,
	}).Return(&entity.User{ID: "u2", Email: "bo@example.com", Role: entity.RoleShopper}, nil)

	code := f.app.Run(context.Background(), []string{
		"register", "-name", "Bo", "-email", "bo@example.com", "-password", "pw", "-phone", "555", "-role", "shopper",
	})

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, f.stdout.String(), "Account created for bo@example.com")
}

func TestApp_WhoAmI_RewritesAvatar(t *testing.T) {
	f := createTestApp(t)
	user := f.signIn(t)
	user.AvatarURL = "http://localhost:3000/uploads/a.png"
	f.auth.EXPECT().CurrentSession().Return(entity.Session{User: user, IsAuthenticated: true, IsHydrated: true})

	code := f.app.Run(context.Background(), []string{"whoami"})

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, f.stdout.String(), "ana@example.com")
	assert.Contains(t, f.stdout.String(), "https://api.example.com/uploads/a.png")
}

func TestApp_Profile_SendsOnlyGivenFields(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	f.auth.EXPECT().UpdateProfile(mock.Anything, mock.MatchedBy(func(in usecase.UpdateProfileInput) bool {
		return in.FullName == nil && in.Phone != nil && *in.Phone == "777" && in.Avatar == "/tmp/me.png"
	})).Return(&entity.User{ID: "u1", Name: "Ana", Phone: "777"}, nil)

	code := f.app.Run(context.Background(), []string{"profile", "-phone", "777", "-avatar", "/tmp/me.png"})

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, f.stdout.String(), "Profile updated.")
}

func TestApp_Logout(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	f.auth.EXPECT().Logout(mock.MatchedBy(func(ctx context.Context) bool {
		return deliverycontext.RequestIDFrom(ctx) != ""
	})).Return()

	assert.Equal(t, ExitOK, f.app.Run(context.Background(), []string{"logout"}))
	assert.Equal(t, "Signed out.\n", f.stdout.String())
}

func TestApp_Shops(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	f.market.EXPECT().Shops(mock.Anything).Return([]entity.Shop{
		{ID: "s1", Name: "Bakery", Slug: "bakery"},
		{ID: "s2", Name: "Closed Deli", Slug: "deli", IsActive: ptr(false)},
	}, nil)

	code := f.app.Run(context.Background(), []string{"shops"})

	require.Equal(t, ExitOK, code)
	out := f.stdout.String()
	assert.Contains(t, out, "bakery")
	assert.Contains(t, out, "closed")
}

func TestApp_ShopsNear(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	f.market.EXPECT().ShopsNear(mock.Anything, orb.Point{-46.6, -23.5}, 5.0).
		Return([]usecase.NearbyShop{{Shop: entity.Shop{Name: "Bakery", Slug: "bakery"}, DistanceKm: 1.234}}, nil)

	code := f.app.Run(context.Background(), []string{"shops", "-near", "-23.5,-46.6", "-radius", "5"})

	require.Equal(t, ExitOK, code)
	assert.Contains(t, f.stdout.String(), "1.23 km")
}

func TestApp_ShopsHere_UsesCurrentLocation(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	here := orb.Point{-46.6, -23.5}
	f.location.EXPECT().CurrentLocation(mock.Anything).Return(here, nil)
	f.market.EXPECT().ShopsNear(mock.Anything, here, 0.0).Return(nil, nil)

	code := f.app.Run(context.Background(), []string{"shops", "-here"})

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "No shops nearby.\n", f.stdout.String())
}

func TestApp_ShopsNear_InvalidOrigin(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)

	code := f.app.Run(context.Background(), []string{"shops", "-near", "north"})

	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, f.stderr.String(), "expected lat,lng")
}

func TestApp_Store_RequiresSlug(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)

	code := f.app.Run(context.Background(), []string{"store"})

	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, f.stderr.String(), "usage: storefront store <slug>")
}

func TestApp_Store_PrintsCatalog(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	f.market.EXPECT().StoreProfile(mock.Anything, "bakery").Return(&entity.StoreDetail{
		Shop:     entity.Shop{ID: "s1", Name: "Bakery", Slug: "bakery", Latitude: ptr(-23.5), Longitude: ptr(-46.6)},
		Products: []entity.Product{{ID: "p1", Name: "Bread", Price: 4.5}},
	}, nil)

	code := f.app.Run(context.Background(), []string{"store", "bakery"})

	require.Equal(t, ExitOK, code)
	out := f.stdout.String()
	assert.Contains(t, out, "-23.5,-46.6")
	assert.Contains(t, out, "Bread")
	assert.Contains(t, out, "4.50")
}

func TestApp_MyStore_None(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	f.market.EXPECT().MyStore(mock.Anything).Return(nil, nil)

	code := f.app.Run(context.Background(), []string{"my-store"})

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, f.stdout.String(), "You do not have a store yet.")
}

func TestApp_Products_ByStore(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	f.market.EXPECT().StoreProducts(mock.Anything, "s1").Return([]entity.Product{{ID: "p1", Name: "Bread", Price: 4.5}}, nil)

	code := f.app.Run(context.Background(), []string{"products", "-store", "s1"})

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, f.stdout.String(), "Bread")
}

func TestApp_StoreCreate(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	f.market.EXPECT().CreateStore(mock.Anything, usecase.CreateStoreInput{
		Name:      "Bakery",
		Latitude:  ptr(-23.5),
		Longitude: ptr(-46.6),
		Logo:      "logo.png",
		Avatar:    "avatar.png",
	}).Return(&entity.Shop{ID: "s1", Name: "Bakery", Slug: "bakery-42"}, nil)

	code := f.app.Run(context.Background(), []string{
		"store-create", "-name", "Bakery", "-lat", "-23.5", "-lng", "-46.6", "-logo", "logo.png", "-avatar", "avatar.png",
	})

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, f.stdout.String(), "bakery-42")
}

func TestApp_StoreToggle_DefaultsToOwnStore(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	own := &entity.Shop{ID: "s1", Name: "Bakery"}
	f.market.EXPECT().MyStore(mock.Anything).Return(own, nil)
	f.market.EXPECT().ToggleStoreActive(mock.Anything, own).
		Return(&entity.Shop{ID: "s1", Name: "Bakery", IsActive: ptr(false)}, nil)

	code := f.app.Run(context.Background(), []string{"store-toggle"})

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Bakery is now closed.\n", f.stdout.String())
}

func TestApp_StoreToggle_WithoutStore(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	f.market.EXPECT().MyStore(mock.Anything).Return(nil, nil)

	code := f.app.Run(context.Background(), []string{"store-toggle"})

	assert.Equal(t, ExitError, code)
	assert.Equal(t, "Could not change the store status: store could not be identified\n", f.stderr.String())
}

func TestApp_StoreUpdate_KeepsNameWhenNotGiven(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	f.market.EXPECT().Store(mock.Anything, "s1").Return(&entity.Shop{ID: "s1", Name: "Bakery"}, nil)
	f.market.EXPECT().UpdateStore(mock.Anything, "s1", usecase.UpdateStoreInput{Name: "Bakery", Logo: "new.png"}).
		Return(&entity.Shop{ID: "s1", Name: "Bakery"}, nil)

	code := f.app.Run(context.Background(), []string{"store-update", "-id", "s1", "-logo", "new.png"})

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, f.stdout.String(), "Store updated.")
}

func TestApp_ProductUpdate_OverlaysGivenFlags(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	f.market.EXPECT().Product(mock.Anything, "p1").Return(&entity.Product{
		ID: "p1", Name: "Bread", Price: 4.5, Brand: "Acme", Description: "Fresh",
	}, nil)
	f.market.EXPECT().UpdateProduct(mock.Anything, "p1", usecase.UpdateProductInput{
		Name:        "Bread",
		Price:       5,
		Brand:       "Acme",
		Description: "Fresh",
		IsAvailable: ptr(false),
	}).Return(&entity.Product{ID: "p1", Name: "Bread"}, nil)

	code := f.app.Run(context.Background(), []string{"product-update", "p1", "-price", "5", "-available=false"})

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Product Bread updated.\n", f.stdout.String())
}

func TestApp_ProductDelete_Failure(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	f.market.EXPECT().DeleteProduct(mock.Anything, "p1").Return(
		domainerrors.NewAPIError(http.MethodDelete, "/products/p1", http.StatusForbidden,
			domainerrors.NewErrorBody(http.StatusForbidden, "Forbidden", "You do not own this product")))

	code := f.app.Run(context.Background(), []string{"product-delete", "p1"})

	assert.Equal(t, ExitError, code)
	assert.Equal(t, "Could not delete the product: You do not own this product\n", f.stderr.String())
}

func TestApp_OrderCreate(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	f.orders.EXPECT().CreateOrder(mock.Anything, usecase.CreateOrderInput{
		StoreID: "s1",
		Items: []usecase.OrderLine{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
		DeliveryLocation: &entity.DeliveryLocation{Latitude: -23.5, Longitude: -46.6, AddressLine: "Rua A, 1"},
	}).Return(&entity.Order{ID: "o1", StoreName: "Bakery", TotalAmount: 12.5, Status: entity.OrderPending}, nil)

	code := f.app.Run(context.Background(), []string{
		"order-create", "-store", "s1", "-item", "p1:2", "-item", "p2",
		"-lat", "-23.5", "-lng", "-46.6", "-address", "Rua A, 1",
	})

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Order o1 placed with Bakery: 12.50 (PENDING)\n", f.stdout.String())
}

func TestApp_Orders(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	f.orders.EXPECT().ClientOrders(mock.Anything).Return([]entity.Order{
		{ID: "o1", StoreName: "Bakery", Status: entity.OrderCompleted, TotalAmount: 7001.5, Items: []entity.OrderItem{{ID: "i1"}}},
	}, nil)

	code := f.app.Run(context.Background(), []string{"orders"})

	require.Equal(t, ExitOK, code)
	assert.Contains(t, f.stdout.String(), "7,001.50")
	assert.Contains(t, f.stdout.String(), "COMPLETED")
}

func TestApp_List(t *testing.T) {
	existing := []entity.ListItem{{ID: "i1", Text: "Milk"}}

	t.Run("add appends and saves", func(t *testing.T) {
		f := createTestApp(t)
		f.signIn(t)
		f.list.EXPECT().Items(mock.Anything).Return(existing, nil)
		f.list.EXPECT().Save(mock.Anything, mock.MatchedBy(func(items []entity.ListItem) bool {
			return len(items) == 2 && items[0].ID == "i1" && items[1].Text == "Eggs" && items[1].ID != ""
		})).Return(nil)

		code := f.app.Run(context.Background(), []string{"list", "-add", "Eggs"})

		assert.Equal(t, ExitOK, code)
		assert.Contains(t, f.stdout.String(), "Eggs")
		assert.Len(t, existing, 1)
	})

	t.Run("done toggles the item", func(t *testing.T) {
		f := createTestApp(t)
		f.signIn(t)
		f.list.EXPECT().Items(mock.Anything).Return(existing, nil)
		f.list.EXPECT().Save(mock.Anything, []entity.ListItem{{ID: "i1", Text: "Milk", Completed: true}}).Return(nil)

		code := f.app.Run(context.Background(), []string{"list", "-done", "i1"})

		assert.Equal(t, ExitOK, code)
		assert.Contains(t, f.stdout.String(), "[x]")
		assert.False(t, existing[0].Completed)
	})

	t.Run("unknown id does not save", func(t *testing.T) {
		f := createTestApp(t)
		f.signIn(t)
		f.list.EXPECT().Items(mock.Anything).Return(existing, nil)

		code := f.app.Run(context.Background(), []string{"list", "-remove", "nope"})

		assert.Equal(t, ExitUsage, code)
	})

	t.Run("plain read", func(t *testing.T) {
		f := createTestApp(t)
		f.signIn(t)
		f.list.EXPECT().Items(mock.Anything).Return(nil, nil)

		code := f.app.Run(context.Background(), []string{"list"})

		assert.Equal(t, ExitOK, code)
		assert.Equal(t, "Your shopping list is empty.\n", f.stdout.String())
	})
}

func TestApp_StoreQR_WritesPNG(t *testing.T) {
	f := createTestApp(t)
	f.signIn(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	f.market.EXPECT().StoreQR(mock.Anything, "bakery").Return(png, nil)
	out := filepath.Join(t.TempDir(), "qr.png")

	code := f.app.Run(context.Background(), []string{"store-qr", "bakery", "-out", out})

	require.Equal(t, ExitOK, code)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func ptr[T any](v T) *T { return &v }
