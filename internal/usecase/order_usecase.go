package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderLine is one requested product of a new order.
type OrderLine struct {
	ProductID string `validate:"required"`
	Quantity  int    `validate:"gt=0"`
}

// CreateOrderInput defines a new order.
type CreateOrderInput struct {
	StoreID          string      `validate:"required"`
	Items            []OrderLine `validate:"required,min=1,dive"`
	DeliveryLocation *entity.DeliveryLocation
}

// OrderUsecase defines the client order operations.
type OrderUsecase interface {
	ClientOrders(ctx context.Context) ([]entity.Order, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error)
}

// ShoppingListUsecase reads and replaces the remote shopping list.
type ShoppingListUsecase interface {
	Items(ctx context.Context) ([]entity.ListItem, error)
	Save(ctx context.Context, items []entity.ListItem) error
}
