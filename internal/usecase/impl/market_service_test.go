package impl

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/query"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type marketServiceFixtures struct {
	service usecase.MarketUsecase
	repo    *mockRepo.MockMarketRepository
	qr      *mockService.MockQRCodeService
	cache   *query.Client
}

func createTestMarketService(t *testing.T) marketServiceFixtures {
	repo := mockRepo.NewMockMarketRepository(t)
	qr := mockService.NewMockQRCodeService(t)
	cache := newTestCache()
	cfg := &config.Config{Market: config.MarketConfig{DefaultCommissionRate: 10}}

	srv := NewMarketService(repo, cache, qr, newTestValidator(t), cfg, discardLogger())
	srv.(*marketService).slugSuffix = func() int { return 42 }

	return marketServiceFixtures{service: srv, repo: repo, qr: qr, cache: cache}
}

func TestMarketService_Shops_Cached(t *testing.T) {
	defer goleak.VerifyNone(t)

	fx := createTestMarketService(t)
	ctx := context.Background()
	shops := []entity.Shop{{ID: "s1", Name: "Verdulería", Slug: "verduleria-1"}}

	fx.repo.EXPECT().ListShops(mock.Anything).Return(shops, nil).Once()

	got, err := fx.service.Shops(ctx)
	require.NoError(t, err)
	assert.Equal(t, shops, got)

	got, err = fx.service.Shops(ctx)
	require.NoError(t, err)
	assert.Equal(t, shops, got)

	fx.cache.Wait()
}

func TestMarketService_MyStore_NoRetry(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := mockRepo.NewMockMarketRepository(t)
	cache := query.NewClient(query.Config{Retry: 3}, nil, discardLogger())
	srv := NewMarketService(repo, cache, mockService.NewMockQRCodeService(t), newTestValidator(t), &config.Config{}, discardLogger())

	var calls atomic.Int32
	repo.EXPECT().GetMyStore(mock.Anything).RunAndReturn(func(context.Context) (*entity.Shop, error) {
		calls.Add(1)

		return nil, domainerrors.NewAPIError(http.MethodGet, "/stores/me", http.StatusInternalServerError, nil)
	})

	_, err := srv.MyStore(context.Background())

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
	cache.Wait()
}

func TestMarketService_MyStore_NoneYet(t *testing.T) {
	fx := createTestMarketService(t)

	fx.repo.EXPECT().GetMyStore(mock.Anything).Return(nil, nil).Once()

	shop, err := fx.service.MyStore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, shop)

	state := fx.cache.State(KeyMyStore())
	assert.Equal(t, query.StatusSuccess, state.Status)
	fx.cache.Wait()
}

func TestMarketService_DisabledQueries(t *testing.T) {
	fx := createTestMarketService(t)
	ctx := context.Background()

	products, err := fx.service.StoreProducts(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, products)

	detail, err := fx.service.StoreProfile(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, detail)

	product, err := fx.service.Product(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestMarketService_ShopsNear(t *testing.T) {
	fx := createTestMarketService(t)
	shops := []entity.Shop{
		{ID: "far", Latitude: ptr(-34.9), Longitude: ptr(-57.95)},
		{ID: "near", Latitude: ptr(-34.61), Longitude: ptr(-58.38)},
		{ID: "hidden", Latitude: ptr(-34.6), Longitude: ptr(-58.38), IsActive: ptr(false)},
		{ID: "nowhere"},
	}
	fx.repo.EXPECT().ListShops(mock.Anything).Return(shops, nil).Once()

	origin := orb.Point{-58.3816, -34.6037}

	all, err := fx.service.ShopsNear(context.Background(), origin, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "near", all[0].ID)
	assert.Equal(t, "far", all[1].ID)
	assert.Less(t, all[0].DistanceKm, 2.0)

	within, err := fx.service.ShopsNear(context.Background(), origin, 10)
	require.NoError(t, err)
	require.Len(t, within, 1)
	assert.Equal(t, "near", within[0].ID)
	fx.cache.Wait()
}

func TestMarketService_Store_SearchesOwnThenPublic(t *testing.T) {
	fx := createTestMarketService(t)
	ctx := context.Background()

	fx.repo.EXPECT().ListMyStores(mock.Anything).Return([]entity.Shop{{ID: "mine"}}, nil)
	fx.repo.EXPECT().ListShops(mock.Anything).Return([]entity.Shop{{ID: "public", Name: "Kiosco"}}, nil)

	shop, err := fx.service.Store(ctx, "public")
	require.NoError(t, err)
	assert.Equal(t, "Kiosco", shop.Name)

	_, err = fx.service.Store(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = fx.service.Store(ctx, "")
	require.ErrorIs(t, err, domainerrors.ErrStoreNotIdentified)
	fx.cache.Wait()
}

func TestMarketService_CreateStore(t *testing.T) {
	t.Run("derives slug and commission and invalidates listings", func(t *testing.T) {
		fx := createTestMarketService(t)
		ctx := context.Background()
		fx.cache.SetQueryData(KeyShops(), []entity.Shop{})
		fx.cache.SetQueryData(KeyMyStore(), (*entity.Shop)(nil))
		fx.cache.SetQueryData(KeyProducts(), []entity.Product{})

		fx.repo.EXPECT().CreateStore(ctx, mock.MatchedBy(func(form *repository.StoreForm) bool {
			return *form.Name == "Almacén Don José" &&
				*form.Slug == "almacen-don-jose-42" &&
				*form.CommissionRate == 10 &&
				form.Logo == "file:///tmp/logo.png" &&
				form.IsActive == nil
		})).Return(&entity.Shop{ID: "s9", Slug: "almacen-don-jose-42"}, nil)

		shop, err := fx.service.CreateStore(ctx, usecase.CreateStoreInput{
			Name:      "  Almacén Don José ",
			Latitude:  ptr(-34.6),
			Longitude: ptr(-58.4),
			Logo:      "file:///tmp/logo.png",
			Avatar:    "file:///tmp/avatar.png",
		})

		require.NoError(t, err)
		assert.Equal(t, "s9", shop.ID)
		assert.True(t, fx.cache.State(KeyShops()).Stale)
		assert.True(t, fx.cache.State(KeyMyStore()).Stale)
		assert.False(t, fx.cache.State(KeyProducts()).Stale)
	})

	t.Run("requires location and images", func(t *testing.T) {
		fx := createTestMarketService(t)

		_, err := fx.service.CreateStore(context.Background(), usecase.CreateStoreInput{Name: "Kiosco"})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		for _, field := range []string{"latitude", "longitude", "logo", "avatar"} {
			assert.Contains(t, err.Error(), field+" is required")
		}
	})

	t.Run("rejects out of range coordinates", func(t *testing.T) {
		fx := createTestMarketService(t)

		_, err := fx.service.CreateStore(context.Background(), usecase.CreateStoreInput{
			Name:      "Kiosco",
			Latitude:  ptr(120.0),
			Longitude: ptr(-58.4),
			Logo:      "a.png",
			Avatar:    "b.png",
		})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Contains(t, err.Error(), "latitude is out of range")
	})
}

func TestMarketService_UpdateStore_WritesThrough(t *testing.T) {
	fx := createTestMarketService(t)
	ctx := context.Background()
	fx.cache.SetQueryData(KeyStoreProfile("kiosco-7"), &entity.StoreDetail{})
	fx.cache.SetQueryData(KeyMyStoresList(), []entity.Shop{})

	updated := &entity.Shop{ID: "s1", Name: "Kiosco Nuevo", Slug: "kiosco-7"}
	fx.repo.EXPECT().UpdateStore(ctx, "s1", mock.MatchedBy(func(form *repository.StoreForm) bool {
		return *form.Name == "Kiosco Nuevo" && form.Slug == nil && form.Logo == ""
	})).Return(updated, nil)

	shop, err := fx.service.UpdateStore(ctx, "s1", usecase.UpdateStoreInput{Name: "Kiosco Nuevo"})

	require.NoError(t, err)
	assert.Equal(t, updated, shop)
	cached, ok := fx.cache.GetQueryData(KeyStore("s1"))
	require.True(t, ok)
	assert.Equal(t, updated, cached)
	assert.True(t, fx.cache.State(KeyStoreProfile("kiosco-7")).Stale)
	assert.True(t, fx.cache.State(KeyMyStoresList()).Stale)
}

func TestMarketService_ToggleStoreActive(t *testing.T) {
	cases := []struct {
		name     string
		isActive *bool
		want     bool
	}{
		{name: "missing flag counts as active", isActive: nil, want: false},
		{name: "active becomes inactive", isActive: ptr(true), want: false},
		{name: "inactive becomes active", isActive: ptr(false), want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestMarketService(t)
			ctx := context.Background()

			fx.repo.EXPECT().UpdateStore(ctx, "s1", mock.MatchedBy(func(form *repository.StoreForm) bool {
				return form.IsActive != nil && *form.IsActive == tc.want && form.Name == nil
			})).Return(&entity.Shop{ID: "s1", IsActive: ptr(tc.want)}, nil)

			shop, err := fx.service.ToggleStoreActive(ctx, &entity.Shop{ID: "s1", IsActive: tc.isActive})

			require.NoError(t, err)
			assert.Equal(t, tc.want, shop.IsVisible())
		})
	}
}

func TestMarketService_DeleteStore(t *testing.T) {
	fx := createTestMarketService(t)
	ctx := context.Background()
	fx.cache.SetQueryData(KeyMyStore(), &entity.Shop{ID: "s1"})

	fx.repo.EXPECT().DeleteStore(ctx, "s1").Return(nil)

	require.NoError(t, fx.service.DeleteStore(ctx, "s1"))
	assert.True(t, fx.cache.State(KeyMyStore()).Stale)
	require.ErrorIs(t, fx.service.DeleteStore(ctx, ""), domainerrors.ErrStoreNotIdentified)
}

func TestMarketService_CreateProduct(t *testing.T) {
	input := usecase.CreateProductInput{
		Name:  "Yerba",
		Price: 1500.5,
		Brand: "Playadito",
		Image: "file:///tmp/yerba.jpg",
	}

	t.Run("falls back to own store", func(t *testing.T) {
		fx := createTestMarketService(t)
		ctx := context.Background()
		fx.cache.SetQueryData(KeyStoreProducts("s1"), []entity.Product{})
		fx.cache.SetQueryData(KeyStoreProfile("kiosco"), &entity.StoreDetail{})

		fx.repo.EXPECT().GetMyStore(mock.Anything).Return(&entity.Shop{ID: "s1"}, nil)
		fx.repo.EXPECT().CreateProduct(ctx, "s1", mock.MatchedBy(func(form *repository.ProductForm) bool {
			return *form.Name == "Yerba" && *form.Price == 1500.5 && form.IsAvailable == nil
		})).Return(&entity.Product{ID: "p1", StoreID: "s1"}, nil)

		product, err := fx.service.CreateProduct(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "p1", product.ID)
		assert.True(t, fx.cache.State(KeyStoreProducts("s1")).Stale)
		assert.True(t, fx.cache.State(KeyStoreProfile("kiosco")).Stale)
		fx.cache.Wait()
	})

	t.Run("no store to attach to", func(t *testing.T) {
		fx := createTestMarketService(t)

		fx.repo.EXPECT().GetMyStore(mock.Anything).Return(nil, nil)

		_, err := fx.service.CreateProduct(context.Background(), input)

		require.ErrorIs(t, err, domainerrors.ErrStoreNotIdentified)
		fx.cache.Wait()
	})

	t.Run("price must be positive", func(t *testing.T) {
		fx := createTestMarketService(t)
		bad := input
		bad.StoreID = "s1"
		bad.Price = 0

		_, err := fx.service.CreateProduct(context.Background(), bad)

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Contains(t, err.Error(), "price must be greater than 0")
	})
}

func TestMarketService_UpdateAndDeleteProduct(t *testing.T) {
	fx := createTestMarketService(t)
	ctx := context.Background()
	fx.cache.SetQueryData(KeyProduct("p1"), &entity.Product{ID: "p1"})

	fx.repo.EXPECT().UpdateProduct(ctx, "p1", mock.MatchedBy(func(form *repository.ProductForm) bool {
		return form.IsAvailable != nil && !*form.IsAvailable && form.Image == ""
	})).Return(&entity.Product{ID: "p1", IsAvailable: ptr(false)}, nil)

	product, err := fx.service.UpdateProduct(ctx, "p1", usecase.UpdateProductInput{
		Name:        "Yerba",
		Price:       10,
		IsAvailable: ptr(false),
	})
	require.NoError(t, err)
	assert.False(t, product.IsVisible())
	assert.True(t, fx.cache.State(KeyProduct("p1")).Stale)

	fx.repo.EXPECT().DeleteProduct(ctx, "p1").Return(errors.New("boom"))
	err = fx.service.DeleteProduct(ctx, "p1")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "delete product"))
}

func TestMarketService_StoreQR(t *testing.T) {
	fx := createTestMarketService(t)

	fx.qr.EXPECT().GenerateStoreQR("kiosco-7").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.StoreQR(context.Background(), "kiosco-7")

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
