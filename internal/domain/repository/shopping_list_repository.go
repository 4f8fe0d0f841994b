package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ShoppingListRepository reads and replaces the remote shopping list.
type ShoppingListRepository interface {
	Get(ctx context.Context) ([]entity.ListItem, error)
	Save(ctx context.Context, items []entity.ListItem) error
}
