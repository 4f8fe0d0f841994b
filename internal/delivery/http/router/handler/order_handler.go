package handler

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/sandbox"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler serves client orders and the shopping list.
type OrderHandler struct {
	backend *sandbox.Backend
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(backend *sandbox.Backend) *OrderHandler {
	return &OrderHandler{backend: backend}
}

type orderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

type orderRequest struct {
	StoreID          string                   `json:"storeId" validate:"required"`
	Items            []orderItemRequest       `json:"items" validate:"required,min=1,dive"`
	DeliveryLocation *entity.DeliveryLocation `json:"deliveryLocation"`
}

type shoppingListRequest struct {
	Items []entity.ListItem `json:"items"`
}

func (h *OrderHandler) ClientOrders(c echo.Context) error {
	return response.OK(c, h.backend.ClientOrders(middleware.UserID(c)))
}

func (h *OrderHandler) Create(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]repository.CreateOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, repository.CreateOrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	order, err := h.backend.CreateOrder(middleware.UserID(c), &repository.CreateOrderPayload{
		StoreID:          req.StoreID,
		Items:            items,
		DeliveryLocation: req.DeliveryLocation,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) ShoppingList(c echo.Context) error {
	return response.OK(c, shoppingListRequest{Items: h.backend.ShoppingList(middleware.UserID(c))})
}

func (h *OrderHandler) SaveShoppingList(c echo.Context) error {
	var req shoppingListRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid shopping list")
	}

	h.backend.SaveShoppingList(middleware.UserID(c), req.Items)

	return response.OK(c, shoppingListRequest{Items: h.backend.ShoppingList(middleware.UserID(c))})
}
