package entity

// OrderStatus is the lifecycle state of an order as reported by the backend.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderAccepted   OrderStatus = "ACCEPTED"
	OrderShopping   OrderStatus = "SHOPPING"
	OrderDelivering OrderStatus = "DELIVERING"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// IsFinal reports whether no further transitions are expected.
func (s OrderStatus) IsFinal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// Order is a client purchase placed with a store.
type Order struct {
	ID               string            `json:"id"`
	ClientID         string            `json:"clientId"`
	StoreID          string            `json:"storeId"`
	StoreName        string            `json:"storeName"`
	ShopperID        string            `json:"shopperId,omitempty"`
	Status           OrderStatus       `json:"status"`
	Items            []OrderItem       `json:"items"`
	TotalAmount      Price             `json:"totalAmount"`
	DeliveryFee      Price             `json:"deliveryFee"`
	CreatedAt        string            `json:"createdAt"`
	DeliveryLocation *DeliveryLocation `json:"deliveryLocation,omitempty"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID              string `json:"id"`
	ProductID       string `json:"productId"`
	ProductName     string `json:"productName"`
	ProductImage    string `json:"productImage,omitempty"`
	Quantity        int    `json:"quantity"`
	PriceAtPurchase Price  `json:"priceAtPurchase"`
}

// DeliveryLocation is where an order should be delivered.
type DeliveryLocation struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	AddressLine string  `json:"addressLine"`
}
