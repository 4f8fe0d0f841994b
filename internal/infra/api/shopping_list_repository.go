package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type shoppingListRepository struct {
	client *Client
}

// NewShoppingListRepository creates the HTTP ShoppingListRepository.
func NewShoppingListRepository(client *Client) repository.ShoppingListRepository {
	return &shoppingListRepository{client: client}
}

type shoppingListBody struct {
	Items []entity.ListItem `json:"items"`
}

func (r *shoppingListRepository) Get(ctx context.Context) ([]entity.ListItem, error) {
	var body shoppingListBody
	if err := r.client.DoJSON(ctx, http.MethodGet, "/shopping-list", nil, &body); err != nil {
		return nil, err
	}

	return orEmpty(body.Items), nil
}

func (r *shoppingListRepository) Save(ctx context.Context, items []entity.ListItem) error {
	return r.client.DoJSON(ctx, http.MethodPut, "/shopping-list", shoppingListBody{Items: orEmpty(items)}, nil)
}
