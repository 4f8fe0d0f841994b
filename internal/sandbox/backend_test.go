package sandbox

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	tokens, err := auth.NewJWTService(&config.Config{Sandbox: &config.SandboxConfig{
		SecretKey: "test_secret",
		TokenTTL:  time.Hour,
	}})
	require.NoError(t, err)

	return NewBackend(auth.NewBcryptHasher(bcrypt.MinCost), tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func registerUser(t *testing.T, b *Backend, email string) *entity.User {
	t.Helper()
	user, err := b.Register(context.Background(), &repository.RegisterPayload{
		FullName: "Ana",
		Email:    email,
		Password: "secreto",
		Phone:    "555",
		Role:     entity.RoleClient,
	})
	require.NoError(t, err)

	return user
}

func createStore(t *testing.T, b *Backend, ownerID, slug string) *entity.Shop {
	t.Helper()
	shop, err := b.CreateStore(ownerID, StoreFields{Name: ptr("Kiosco " + slug), Slug: ptr(slug)})
	require.NoError(t, err)

	return shop
}

func TestBackend_RegisterAndLogin(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	user := registerUser(t, b, "Ana@Example.com")
	assert.Equal(t, "ana@example.com", user.Email)

	_, err := b.Register(ctx, &repository.RegisterPayload{Email: "ana@example.com", Password: "x", Role: entity.RoleClient})
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	result, err := b.Login(ctx, "ana@example.com", "secreto")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, user.ID, result.User.ID)

	_, err = b.Login(ctx, "ana@example.com", "wrong")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = b.Login(ctx, "nobody@example.com", "secreto")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestBackend_UpdateProfile(t *testing.T) {
	b := newTestBackend(t)
	ana := registerUser(t, b, "ana@example.com")
	bob := registerUser(t, b, "bob@example.com")

	user, err := b.UpdateProfile(ana.ID, ana.ID, ProfileFields{FullName: ptr("Ana María")})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", user.Name)
	assert.Equal(t, "555", user.Phone)

	_, err = b.UpdateProfile(bob.ID, ana.ID, ProfileFields{Phone: ptr("1")})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBackend_Stores(t *testing.T) {
	b := newTestBackend(t)
	ana := registerUser(t, b, "ana@example.com")
	bob := registerUser(t, b, "bob@example.com")

	_, err := b.MyStore(ana.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	shop := createStore(t, b, ana.ID, "kiosco-1")
	assert.True(t, shop.IsVisible())

	_, err = b.CreateStore(bob.ID, StoreFields{Name: ptr("Otro"), Slug: ptr("kiosco-1")})
	require.ErrorIs(t, err, domainerrors.ErrSlugTaken)

	mine, err := b.MyStore(ana.ID)
	require.NoError(t, err)
	assert.Equal(t, shop.ID, mine.ID)

	_, err = b.UpdateStore(bob.ID, shop.ID, StoreFields{IsActive: ptr(false)})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	updated, err := b.UpdateStore(ana.ID, shop.ID, StoreFields{IsActive: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsVisible())
	assert.Equal(t, "Kiosco kiosco-1", updated.Name)
	assert.Empty(t, b.ListStores())

	require.NoError(t, b.DeleteStore(ana.ID, shop.ID))
	_, err = b.StoreBySlug("kiosco-1")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBackend_ProductsAndOrders(t *testing.T) {
	b := newTestBackend(t)
	owner := registerUser(t, b, "owner@example.com")
	client := registerUser(t, b, "client@example.com")
	shop := createStore(t, b, owner.ID, "almacen")

	_, err := b.CreateProduct(client.ID, shop.ID, ProductFields{Name: ptr("Pan"), Price: ptr(1.0)})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = b.CreateProduct(owner.ID, shop.ID, ProductFields{Name: ptr("Pan")})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	yerba, err := b.CreateProduct(owner.ID, shop.ID, ProductFields{Name: ptr("Yerba"), Price: ptr(1500.5)})
	require.NoError(t, err)
	pan, err := b.CreateProduct(owner.ID, shop.ID, ProductFields{Name: ptr("Pan"), Price: ptr(0.1)})
	require.NoError(t, err)

	detail, err := b.StoreBySlug("almacen")
	require.NoError(t, err)
	require.Len(t, detail.Products, 2)
	assert.Equal(t, "Pan", detail.Products[0].Name)

	order, err := b.CreateOrder(client.ID, &repository.CreateOrderPayload{
		StoreID: shop.ID,
		Items: []repository.CreateOrderItem{
			{ProductID: yerba.ID, Quantity: 2},
			{ProductID: pan.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.InDelta(t, 3001.3, order.TotalAmount.Float64(), 0.0001)
	assert.Len(t, b.ClientOrders(client.ID), 1)
	assert.Empty(t, b.ClientOrders(owner.ID))

	_, err = b.UpdateProduct(owner.ID, pan.ID, ProductFields{IsAvailable: ptr(false)})
	require.NoError(t, err)
	assert.Len(t, b.ListProducts(), 1)

	_, err = b.CreateOrder(client.ID, &repository.CreateOrderPayload{
		StoreID: shop.ID,
		Items:   []repository.CreateOrderItem{{ProductID: pan.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	require.NoError(t, b.DeleteProduct(owner.ID, yerba.ID))
	_, err = b.Product(yerba.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBackend_ShoppingList(t *testing.T) {
	b := newTestBackend(t)
	items := []entity.ListItem{{ID: "1", Text: "Leche"}}

	assert.Empty(t, b.ShoppingList("u1"))
	b.SaveShoppingList("u1", items)
	items[0].Text = "changed"

	got := b.ShoppingList("u1")
	require.Len(t, got, 1)
	assert.Equal(t, "Leche", got[0].Text)
}

func TestUploads(t *testing.T) {
	ctx := context.Background()
	uploads, err := OpenUploads(t.TempDir(), "http://localhost:3000/")
	require.NoError(t, err)
	defer uploads.Close()

	url, err := uploads.Save(ctx, "Logo.PNG", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Regexp(t, `^http://localhost:3000/uploads/[0-9a-f-]+\.png$`, url)

	key := url[len("http://localhost:3000"+UploadsPath):]
	data, contentType, err := uploads.Open(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.Equal(t, "image/png", contentType)

	_, _, err = uploads.Open(ctx, "missing.png")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
