package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// MarketRepository defines the remote store and product catalog operations.
type MarketRepository interface {
	ListShops(ctx context.Context) ([]entity.Shop, error)

	// GetMyStore returns nil without error when the user has no store yet.
	GetMyStore(ctx context.Context) (*entity.Shop, error)

	// ListMyStores returns an empty slice without error when the user has no store yet.
	ListMyStores(ctx context.Context) ([]entity.Shop, error)

	GetStoreBySlug(ctx context.Context, slug string) (*entity.StoreDetail, error)
	CreateStore(ctx context.Context, form *StoreForm) (*entity.Shop, error)
	UpdateStore(ctx context.Context, storeID string, form *StoreForm) (*entity.Shop, error)
	DeleteStore(ctx context.Context, storeID string) error

	ListProducts(ctx context.Context) ([]entity.Product, error)
	ListStoreProducts(ctx context.Context, storeID string) ([]entity.Product, error)
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
	CreateProduct(ctx context.Context, storeID string, form *ProductForm) (*entity.Product, error)
	UpdateProduct(ctx context.Context, productID string, form *ProductForm) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}
