package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateOrderItem is one requested line of a new order.
type CreateOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderPayload is the body of an order creation request.
type CreateOrderPayload struct {
	StoreID          string                   `json:"storeId"`
	Items            []CreateOrderItem        `json:"items"`
	DeliveryLocation *entity.DeliveryLocation `json:"deliveryLocation,omitempty"`
}

// OrderRepository defines the remote order operations.
type OrderRepository interface {
	ListClientOrders(ctx context.Context) ([]entity.Order, error)
	CreateOrder(ctx context.Context, payload *CreateOrderPayload) (*entity.Order, error)
}
