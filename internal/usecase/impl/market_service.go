package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/query"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

const slugSuffixRange = 1000

// marketService implements the MarketUsecase interface.
type marketService struct {
	repo     repository.MarketRepository
	cache    *query.Client
	qr       service.QRCodeService
	validate *validator.Validate
	logger   *slog.Logger

	defaultCommissionRate float64
	slugSuffix            func() int
}

// NewMarketService is the constructor for marketService.
func NewMarketService(
	repo repository.MarketRepository,
	cache *query.Client,
	qr service.QRCodeService,
	validate *validator.Validate,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MarketUsecase {
	return &marketService{
		repo:                  repo,
		cache:                 cache,
		qr:                    qr,
		validate:              validate,
		logger:                logger,
		defaultCommissionRate: cfg.Market.DefaultCommissionRate,
		slugSuffix:            func() int { return rand.IntN(slugSuffixRange) },
	}
}

func (srv *marketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// --- Reads ---

func (srv *marketService) Shops(ctx context.Context) ([]entity.Shop, error) {
	return query.Fetch(ctx, srv.cache, KeyShops(), srv.repo.ListShops)
}

// ShopsNear returns visible shops within radiusKm of origin, nearest first.
// Shops without coordinates are skipped. A radius of zero or less means no limit.
func (srv *marketService) ShopsNear(ctx context.Context, origin orb.Point, radiusKm float64) ([]usecase.NearbyShop, error) {
	shops, err := srv.Shops(ctx)
	if err != nil {
		return nil, err
	}

	nearby := make([]usecase.NearbyShop, 0, len(shops))
	for _, shop := range shops {
		if !shop.IsVisible() {
			continue
		}
		loc, ok := shop.Location()
		if !ok {
			continue
		}

		km := geo.Distance(origin, loc) / 1000
		if radiusKm > 0 && km > radiusKm {
			continue
		}
		nearby = append(nearby, usecase.NearbyShop{Shop: shop, DistanceKm: km})
	}

	slices.SortStableFunc(nearby, func(a, b usecase.NearbyShop) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		default:
			return 0
		}
	})

	return nearby, nil
}

func (srv *marketService) Products(ctx context.Context) ([]entity.Product, error) {
	return query.Fetch(ctx, srv.cache, KeyProducts(), srv.repo.ListProducts)
}

// StoreProducts lists one store's products. An empty store id yields nothing and sends nothing.
func (srv *marketService) StoreProducts(ctx context.Context, storeID string) ([]entity.Product, error) {
	if storeID == "" {
		return []entity.Product{}, nil
	}

	return query.Fetch(ctx, srv.cache, KeyStoreProducts(storeID), func(ctx context.Context) ([]entity.Product, error) {
		return srv.repo.ListStoreProducts(ctx, storeID)
	})
}

// MyStore returns the user's store, nil when there is none. It is never retried.
func (srv *marketService) MyStore(ctx context.Context) (*entity.Shop, error) {
	return query.Fetch(ctx, srv.cache, KeyMyStore(), srv.repo.GetMyStore, query.WithRetry(0))
}

func (srv *marketService) MyStores(ctx context.Context) ([]entity.Shop, error) {
	return query.Fetch(ctx, srv.cache, KeyMyStoresList(), srv.repo.ListMyStores)
}

// Store returns a store by id. The entry is filled by store updates; on a miss
// the user's own stores and then the public listing are searched.
func (srv *marketService) Store(ctx context.Context, storeID string) (*entity.Shop, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreNotIdentified
	}

	return query.Fetch(ctx, srv.cache, KeyStore(storeID), func(ctx context.Context) (*entity.Shop, error) {
		mine, err := srv.repo.ListMyStores(ctx)
		if err != nil {
			return nil, err
		}
		if shop := findShop(mine, storeID); shop != nil {
			return shop, nil
		}

		all, err := srv.repo.ListShops(ctx)
		if err != nil {
			return nil, err
		}
		if shop := findShop(all, storeID); shop != nil {
			return shop, nil
		}

		return nil, domainerrors.ErrNotFound.WithDetails("store " + storeID)
	})
}

func findShop(shops []entity.Shop, id string) *entity.Shop {
	for i := range shops {
		if shops[i].ID == id {
			shop := shops[i]

			return &shop
		}
	}

	return nil
}

// StoreProfile returns the public page of a store. An empty slug yields nil.
func (srv *marketService) StoreProfile(ctx context.Context, slug string) (*entity.StoreDetail, error) {
	if slug == "" {
		return nil, nil
	}

	return query.Fetch(ctx, srv.cache, KeyStoreProfile(slug), func(ctx context.Context) (*entity.StoreDetail, error) {
		return srv.repo.GetStoreBySlug(ctx, slug)
	})
}

// Product returns one product. An empty id yields nil.
func (srv *marketService) Product(ctx context.Context, productID string) (*entity.Product, error) {
	if productID == "" {
		return nil, nil
	}

	return query.Fetch(ctx, srv.cache, KeyProduct(productID), func(ctx context.Context) (*entity.Product, error) {
		return srv.repo.GetProduct(ctx, productID)
	})
}

// --- Store mutations ---

// CreateStore validates the form, derives the slug and default commission, and creates the store.
func (srv *marketService) CreateStore(ctx context.Context, input usecase.CreateStoreInput) (*entity.Shop, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	slug := GenerateSlug(input.Name, srv.slugSuffix())
	commission := srv.defaultCommissionRate

	shop, err := srv.repo.CreateStore(ctx, &repository.StoreForm{
		Name:           &input.Name,
		Slug:           &slug,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		CommissionRate: &commission,
		Logo:           input.Logo,
		Avatar:         input.Avatar,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create store")
	}

	invalidate(srv.cache, MutationCreateStore)
	srv.log(ctx).Info("Store created", slog.String("storeID", shop.ID), slog.String("slug", shop.Slug))

	return shop, nil
}

func (srv *marketService) UpdateStore(ctx context.Context, storeID string, input usecase.UpdateStoreInput) (*entity.Shop, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreNotIdentified
	}
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	return srv.applyStoreUpdate(ctx, storeID, &repository.StoreForm{
		Name:      &input.Name,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Logo:      input.Logo,
		Avatar:    input.Avatar,
	})
}

// ToggleStoreActive flips the store visibility. A store without the flag counts as active.
func (srv *marketService) ToggleStoreActive(ctx context.Context, shop *entity.Shop) (*entity.Shop, error) {
	if shop == nil || shop.ID == "" {
		return nil, domainerrors.ErrStoreNotIdentified
	}

	next := !shop.IsVisible()

	return srv.applyStoreUpdate(ctx, shop.ID, &repository.StoreForm{IsActive: &next})
}

// applyStoreUpdate writes the response through to the store entry and invalidates listings.
func (srv *marketService) applyStoreUpdate(ctx context.Context, storeID string, form *repository.StoreForm) (*entity.Shop, error) {
	shop, err := srv.repo.UpdateStore(ctx, storeID, form)
	if err != nil {
		return nil, errors.Wrap(err, "update store")
	}

	id := shop.ID
	if id == "" {
		id = storeID
	}
	srv.cache.SetQueryData(KeyStore(id), shop)

	var extra []query.Key
	if shop.Slug != "" {
		extra = append(extra, KeyStoreProfile(shop.Slug))
	}
	invalidate(srv.cache, MutationUpdateStore, extra...)

	srv.log(ctx).Info("Store updated", slog.String("storeID", id))

	return shop, nil
}

func (srv *marketService) DeleteStore(ctx context.Context, storeID string) error {
	if storeID == "" {
		return domainerrors.ErrStoreNotIdentified
	}

	if err := srv.repo.DeleteStore(ctx, storeID); err != nil {
		return errors.Wrap(err, "delete store")
	}

	invalidate(srv.cache, MutationDeleteStore)
	srv.log(ctx).Info("Store deleted", slog.String("storeID", storeID))

	return nil
}

// --- Product mutations ---

// CreateProduct adds a product to input.StoreID, or to the user's own store when it is empty.
func (srv *marketService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	storeID := input.StoreID
	if storeID == "" {
		mine, err := srv.MyStore(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "resolve own store")
		}
		if mine == nil || mine.ID == "" {
			return nil, domainerrors.ErrStoreNotIdentified
		}
		storeID = mine.ID
	}

	product, err := srv.repo.CreateProduct(ctx, storeID, &repository.ProductForm{
		Name:        &input.Name,
		Brand:       &input.Brand,
		Barcode:     &input.Barcode,
		Description: &input.Description,
		Price:       &input.Price,
		Image:       input.Image,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create product")
	}

	invalidate(srv.cache, MutationCreateProduct)
	srv.log(ctx).Info("Product created", slog.String("storeID", storeID), slog.String("productID", product.ID))

	return product, nil
}

func (srv *marketService) UpdateProduct(ctx context.Context, productID string, input usecase.UpdateProductInput) (*entity.Product, error) {
	if productID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("productID is required")
	}
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	product, err := srv.repo.UpdateProduct(ctx, productID, &repository.ProductForm{
		Name:        &input.Name,
		Brand:       &input.Brand,
		Barcode:     &input.Barcode,
		Description: &input.Description,
		Price:       &input.Price,
		IsAvailable: input.IsAvailable,
		Image:       input.Image,
	})
	if err != nil {
		return nil, errors.Wrap(err, "update product")
	}

	invalidate(srv.cache, MutationUpdateProduct)

	return product, nil
}

func (srv *marketService) DeleteProduct(ctx context.Context, productID string) error {
	if productID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("productID is required")
	}

	if err := srv.repo.DeleteProduct(ctx, productID); err != nil {
		return errors.Wrap(err, "delete product")
	}

	invalidate(srv.cache, MutationDeleteProduct)

	return nil
}

// StoreQR renders the share code of a store page.
func (srv *marketService) StoreQR(_ context.Context, slug string) ([]byte, error) {
	png, err := srv.qr.GenerateStoreQR(slug)
	if err != nil {
		return nil, errors.Wrap(err, "store qr")
	}

	return png, nil
}
