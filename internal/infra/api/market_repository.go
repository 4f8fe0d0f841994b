package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

const pathMyStore = "/stores/me"

type marketRepository struct {
	client *Client
}

// NewMarketRepository creates the HTTP MarketRepository.
func NewMarketRepository(client *Client) repository.MarketRepository {
	return &marketRepository{client: client}
}

func (r *marketRepository) ListShops(ctx context.Context) ([]entity.Shop, error) {
	var shops []entity.Shop
	if err := r.client.DoJSON(ctx, http.MethodGet, "/stores", nil, &shops); err != nil {
		return nil, err
	}

	return orEmpty(shops), nil
}

func (r *marketRepository) GetMyStore(ctx context.Context) (*entity.Shop, error) {
	var raw json.RawMessage
	err := r.client.DoJSON(ctx, http.MethodGet, pathMyStore, nil, &raw)
	if domainerrors.StatusCode(err) == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return decodeMyStore(raw)
}

func (r *marketRepository) ListMyStores(ctx context.Context) ([]entity.Shop, error) {
	shop, err := r.GetMyStore(ctx)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return []entity.Shop{}, nil
	}

	return []entity.Shop{*shop}, nil
}

// decodeMyStore accepts only a single store object; null or an empty body mean no store.
func decodeMyStore(raw json.RawMessage) (*entity.Shop, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '{' {
		return nil, errors.Wrap(domainerrors.ErrUnexpectedShape.WithDetails("expected a single store object"), pathMyStore)
	}

	var shop entity.Shop
	if err := json.Unmarshal(trimmed, &shop); err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnexpectedShape.WithDetails(err.Error()), pathMyStore)
	}

	return &shop, nil
}

func (r *marketRepository) GetStoreBySlug(ctx context.Context, slug string) (*entity.StoreDetail, error) {
	var detail entity.StoreDetail
	if err := r.client.DoJSON(ctx, http.MethodGet, "/stores/"+url.PathEscape(slug), nil, &detail); err != nil {
		return nil, err
	}
	detail.Products = orEmpty(detail.Products)

	return &detail, nil
}

func (r *marketRepository) CreateStore(ctx context.Context, form *repository.StoreForm) (*entity.Shop, error) {
	var shop entity.Shop
	if err := r.client.DoMultipart(ctx, http.MethodPost, "/stores", StoreFormData(form), &shop); err != nil {
		return nil, err
	}

	return &shop, nil
}

func (r *marketRepository) UpdateStore(ctx context.Context, storeID string, form *repository.StoreForm) (*entity.Shop, error) {
	var shop entity.Shop
	if err := r.client.DoMultipart(ctx, http.MethodPatch, "/stores/"+url.PathEscape(storeID), StoreFormData(form), &shop); err != nil {
		return nil, err
	}

	return &shop, nil
}

func (r *marketRepository) DeleteStore(ctx context.Context, storeID string) error {
	return r.client.DoJSON(ctx, http.MethodDelete, "/stores/"+url.PathEscape(storeID), nil, nil)
}

func (r *marketRepository) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.client.DoJSON(ctx, http.MethodGet, "/products/global", nil, &products); err != nil {
		return nil, err
	}

	return orEmpty(products), nil
}

func (r *marketRepository) ListStoreProducts(ctx context.Context, storeID string) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.client.DoJSON(ctx, http.MethodGet, "/products/store/"+url.PathEscape(storeID), nil, &products); err != nil {
		return nil, err
	}

	return orEmpty(products), nil
}

func (r *marketRepository) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	var product entity.Product
	if err := r.client.DoJSON(ctx, http.MethodGet, "/products/"+url.PathEscape(productID), nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *marketRepository) CreateProduct(ctx context.Context, storeID string, form *repository.ProductForm) (*entity.Product, error) {
	var product entity.Product
	path := "/products/store/" + url.PathEscape(storeID)
	if err := r.client.DoMultipart(ctx, http.MethodPost, path, ProductFormData(form), &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *marketRepository) UpdateProduct(ctx context.Context, productID string, form *repository.ProductForm) (*entity.Product, error) {
	var product entity.Product
	path := "/products/" + url.PathEscape(productID)
	if err := r.client.DoMultipart(ctx, http.MethodPatch, path, ProductFormData(form), &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *marketRepository) DeleteProduct(ctx context.Context, productID string) error {
	return r.client.DoJSON(ctx, http.MethodDelete, "/products/"+url.PathEscape(productID), nil, nil)
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
