package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type orderRepository struct {
	client *Client
}

// NewOrderRepository creates the HTTP OrderRepository.
func NewOrderRepository(client *Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) ListClientOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := r.client.DoJSON(ctx, http.MethodGet, "/orders/client/me", nil, &orders); err != nil {
		return nil, err
	}

	return orEmpty(orders), nil
}

func (r *orderRepository) CreateOrder(ctx context.Context, payload *repository.CreateOrderPayload) (*entity.Order, error) {
	var order entity.Order
	if err := r.client.DoJSON(ctx, http.MethodPost, "/orders", payload, &order); err != nil {
		return nil, err
	}

	return &order, nil
}
