package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/query"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	repo     repository.OrderRepository
	cache    *query.Client
	validate *validator.Validate
	logger   *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	repo repository.OrderRepository,
	cache *query.Client,
	validate *validator.Validate,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		repo:     repo,
		cache:    cache,
		validate: validate,
		logger:   logger,
	}
}

func (srv *orderService) ClientOrders(ctx context.Context) ([]entity.Order, error) {
	return query.Fetch(ctx, srv.cache, KeyClientOrders(), srv.repo.ListClientOrders)
}

func (srv *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	items := make([]repository.CreateOrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		items = append(items, repository.CreateOrderItem{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	order, err := srv.repo.CreateOrder(ctx, &repository.CreateOrderPayload{
		StoreID:          input.StoreID,
		Items:            items,
		DeliveryLocation: input.DeliveryLocation,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create order")
	}

	invalidate(srv.cache, MutationCreateOrder)
	deliverycontext.LoggerFrom(ctx, srv.logger).Info("Order created",
		slog.String("orderID", order.ID),
		slog.String("storeID", input.StoreID),
	)

	return order, nil
}

// shoppingListService implements the ShoppingListUsecase interface.
type shoppingListService struct {
	repo  repository.ShoppingListRepository
	cache *query.Client
}

// NewShoppingListService is the constructor for shoppingListService.
func NewShoppingListService(repo repository.ShoppingListRepository, cache *query.Client) usecase.ShoppingListUsecase {
	return &shoppingListService{repo: repo, cache: cache}
}

func (srv *shoppingListService) Items(ctx context.Context) ([]entity.ListItem, error) {
	return query.Fetch(ctx, srv.cache, KeyShoppingList(), srv.repo.Get)
}

func (srv *shoppingListService) Save(ctx context.Context, items []entity.ListItem) error {
	if err := srv.repo.Save(ctx, items); err != nil {
		return errors.Wrap(err, "save shopping list")
	}

	invalidate(srv.cache, MutationSaveShoppingList)

	return nil
}
