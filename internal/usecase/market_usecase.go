package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/paulmach/orb"
)

// CreateStoreInput defines a new store. Location and both images are mandatory.
type CreateStoreInput struct {
	Name      string         `validate:"required"`
	Latitude  *float64       `validate:"required,latitude"`
	Longitude *float64       `validate:"required,longitude"`
	Logo      entity.FileRef `validate:"required"`
	Avatar    entity.FileRef `validate:"required"`
}

// UpdateStoreInput edits a store. Unset location and images are left unchanged.
type UpdateStoreInput struct {
	Name      string   `validate:"required"`
	Latitude  *float64 `validate:"omitempty,latitude"`
	Longitude *float64 `validate:"omitempty,longitude"`
	Logo      entity.FileRef
	Avatar    entity.FileRef
}

// CreateProductInput defines a new product. StoreID falls back to the user's own store.
type CreateProductInput struct {
	StoreID     string
	Name        string  `validate:"required"`
	Price       float64 `validate:"gt=0"`
	Brand       string
	Barcode     string
	Description string
	Image       entity.FileRef `validate:"required"`
}

// UpdateProductInput edits a product. An empty Image keeps the current one.
type UpdateProductInput struct {
	Name        string  `validate:"required"`
	Price       float64 `validate:"gt=0"`
	Brand       string
	Barcode     string
	Description string
	IsAvailable *bool
	Image       entity.FileRef
}

// NearbyShop is a visible shop with its distance from the search origin.
type NearbyShop struct {
	entity.Shop
	DistanceKm float64
}

// MarketUsecase defines the cached catalog reads and the store and product mutations.
type MarketUsecase interface {
	Shops(ctx context.Context) ([]entity.Shop, error)
	ShopsNear(ctx context.Context, origin orb.Point, radiusKm float64) ([]NearbyShop, error)
	Products(ctx context.Context) ([]entity.Product, error)
	StoreProducts(ctx context.Context, storeID string) ([]entity.Product, error)
	MyStore(ctx context.Context) (*entity.Shop, error)
	MyStores(ctx context.Context) ([]entity.Shop, error)
	Store(ctx context.Context, storeID string) (*entity.Shop, error)
	StoreProfile(ctx context.Context, slug string) (*entity.StoreDetail, error)
	Product(ctx context.Context, productID string) (*entity.Product, error)

	CreateStore(ctx context.Context, input CreateStoreInput) (*entity.Shop, error)
	UpdateStore(ctx context.Context, storeID string, input UpdateStoreInput) (*entity.Shop, error)
	ToggleStoreActive(ctx context.Context, shop *entity.Shop) (*entity.Shop, error)
	DeleteStore(ctx context.Context, storeID string) error

	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, productID string, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID string) error

	// StoreQR renders the share QR code of a store page as PNG.
	StoreQR(ctx context.Context, slug string) ([]byte, error)
}
