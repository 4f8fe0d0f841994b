// Package sandbox emulates the storefront backend in memory for local development and end-to-end tests.
package sandbox

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type account struct {
	user         entity.User
	passwordHash string
}

type store struct {
	shop    entity.Shop
	ownerID string
	created time.Time
}

// StoreFields are the store attributes a create or update may carry. Nil fields are left unchanged.
type StoreFields struct {
	Name           *string
	Slug           *string
	Latitude       *float64
	Longitude      *float64
	CommissionRate *float64
	IsActive       *bool
	LogoURL        *string
	AvatarURL      *string
}

// ProductFields are the product attributes a create or update may carry. Nil fields are left unchanged.
type ProductFields struct {
	Name        *string
	Brand       *string
	Barcode     *string
	Description *string
	Price       *float64
	IsAvailable *bool
	ImageURL    *string
}

// ProfileFields are the editable user attributes.
type ProfileFields struct {
	FullName  *string
	Phone     *string
	AvatarURL *string
}

// Backend holds the emulated server state. It is safe for concurrent use.
type Backend struct {
	mu sync.RWMutex

	accounts map[string]*account // by user id
	emails   map[string]string   // lower-cased email -> user id
	stores   map[string]*store
	products map[string]*entity.Product
	orders   []entity.Order
	lists    map[string][]entity.ListItem

	hasher service.PasswordHasher
	tokens service.TokenService
	logger *slog.Logger
	now    func() time.Time
}

// NewBackend creates an empty backend.
func NewBackend(hasher service.PasswordHasher, tokens service.TokenService, logger *slog.Logger) *Backend {
	return &Backend{
		accounts: map[string]*account{},
		emails:   map[string]string{},
		stores:   map[string]*store{},
		products: map[string]*entity.Product{},
		lists:    map[string][]entity.ListItem{},
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

// --- Accounts ---

func (b *Backend) Register(ctx context.Context, payload *repository.RegisterPayload) (*entity.User, error) {
	hash, err := b.hasher.Hash(payload.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, taken := b.emails[email]; taken {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	acc := &account{
		user: entity.User{
			ID:    uuid.NewString(),
			Name:  payload.FullName,
			Email: email,
			Role:  payload.Role,
			Phone: payload.Phone,
		},
		passwordHash: hash,
	}
	b.accounts[acc.user.ID] = acc
	b.emails[email] = acc.user.ID

	b.logger.InfoContext(ctx, "Account registered", slog.String("userID", acc.user.ID), slog.String("role", string(acc.user.Role)))
	user := acc.user

	return &user, nil
}

func (b *Backend) Login(ctx context.Context, email, password string) (*repository.LoginResult, error) {
	b.mu.RLock()
	acc, ok := b.accounts[b.emails[strings.ToLower(strings.TrimSpace(email))]]
	var user entity.User
	var hash string
	if ok {
		user, hash = acc.user, acc.passwordHash
	}
	b.mu.RUnlock()

	if !ok || !b.hasher.Check(password, hash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := b.tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, errors.Wrap(err, "issue token")
	}

	b.logger.InfoContext(ctx, "Account logged in", slog.String("userID", user.ID))

	return &repository.LoginResult{AccessToken: token, User: &user}, nil
}

// User returns the account of userID.
func (b *Backend) User(userID string) (*entity.User, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	acc, ok := b.accounts[userID]
	if !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("user " + userID)
	}
	user := acc.user

	return &user, nil
}

// UpdateProfile edits the account of targetID on behalf of callerID.
func (b *Backend) UpdateProfile(callerID, targetID string, fields ProfileFields) (*entity.User, error) {
	if callerID != targetID {
		return nil, domainerrors.ErrForbidden.WithDetails("cannot edit another user")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acc, ok := b.accounts[targetID]
	if !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("user " + targetID)
	}
	if fields.FullName != nil {
		acc.user.Name = *fields.FullName
	}
	if fields.Phone != nil {
		acc.user.Phone = *fields.Phone
	}
	if fields.AvatarURL != nil {
		acc.user.AvatarURL = *fields.AvatarURL
	}
	user := acc.user

	return &user, nil
}

// --- Stores ---

// ListStores returns the active stores, oldest first.
func (b *Backend) ListStores() []entity.Shop {
	b.mu.RLock()
	defer b.mu.RUnlock()

	shops := make([]entity.Shop, 0, len(b.stores))
	for _, s := range b.sortedStoresLocked() {
		if s.shop.IsVisible() {
			shops = append(shops, s.shop)
		}
	}

	return shops
}

// MyStore returns the first store owned by userID.
func (b *Backend) MyStore(userID string) (*entity.Shop, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, s := range b.sortedStoresLocked() {
		if s.ownerID == userID {
			shop := s.shop

			return &shop, nil
		}
	}

	return nil, domainerrors.ErrNotFound.WithDetails("user has no store")
}

// StoreBySlug returns a store page with its products.
func (b *Backend) StoreBySlug(slug string) (*entity.StoreDetail, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, s := range b.stores {
		if s.shop.Slug == slug {
			return &entity.StoreDetail{Shop: s.shop, Products: b.storeProductsLocked(s.shop.ID)}, nil
		}
	}

	return nil, domainerrors.ErrNotFound.WithDetails("store " + slug)
}

func (b *Backend) CreateStore(ownerID string, fields StoreFields) (*entity.Shop, error) {
	if fields.Name == nil || strings.TrimSpace(*fields.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name should not be empty")
	}
	if fields.Slug == nil || *fields.Slug == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("slug should not be empty")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.slugTakenLocked(*fields.Slug, "") {
		return nil, domainerrors.ErrSlugTaken.WithDetails(*fields.Slug)
	}

	s := &store{
		shop:    entity.Shop{ID: uuid.NewString(), IsActive: ptr(true)},
		ownerID: ownerID,
		created: b.now(),
	}
	applyStoreFields(&s.shop, fields)
	b.stores[s.shop.ID] = s
	shop := s.shop

	return &shop, nil
}

func (b *Backend) UpdateStore(callerID, storeID string, fields StoreFields) (*entity.Shop, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := b.ownedStoreLocked(callerID, storeID)
	if err != nil {
		return nil, err
	}
	if fields.Name != nil && strings.TrimSpace(*fields.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name should not be empty")
	}
	if fields.Slug != nil && b.slugTakenLocked(*fields.Slug, storeID) {
		return nil, domainerrors.ErrSlugTaken.WithDetails(*fields.Slug)
	}

	applyStoreFields(&s.shop, fields)
	shop := s.shop

	return &shop, nil
}

// DeleteStore removes a store together with its products.
func (b *Backend) DeleteStore(callerID, storeID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.ownedStoreLocked(callerID, storeID); err != nil {
		return err
	}
	delete(b.stores, storeID)
	for id, p := range b.products {
		if p.StoreID == storeID {
			delete(b.products, id)
		}
	}

	return nil
}

func applyStoreFields(shop *entity.Shop, f StoreFields) {
	if f.Name != nil {
		shop.Name = strings.TrimSpace(*f.Name)
	}
	if f.Slug != nil {
		shop.Slug = *f.Slug
	}
	if f.Latitude != nil {
		shop.Latitude = ptr(*f.Latitude)
	}
	if f.Longitude != nil {
		shop.Longitude = ptr(*f.Longitude)
	}
	if f.CommissionRate != nil {
		shop.CommissionRate = ptr(*f.CommissionRate)
	}
	if f.IsActive != nil {
		shop.IsActive = ptr(*f.IsActive)
	}
	if f.LogoURL != nil {
		shop.LogoURL = *f.LogoURL
	}
	if f.AvatarURL != nil {
		shop.AvatarURL = *f.AvatarURL
	}
}

func (b *Backend) ownedStoreLocked(callerID, storeID string) (*store, error) {
	s, ok := b.stores[storeID]
	if !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("store " + storeID)
	}
	if s.ownerID != callerID {
		return nil, domainerrors.ErrForbidden.WithDetails("store belongs to another user")
	}

	return s, nil
}

func (b *Backend) slugTakenLocked(slug, exceptID string) bool {
	for id, s := range b.stores {
		if id != exceptID && s.shop.Slug == slug {
			return true
		}
	}

	return false
}

func (b *Backend) sortedStoresLocked() []*store {
	stores := make([]*store, 0, len(b.stores))
	for _, s := range b.stores {
		stores = append(stores, s)
	}
	slices.SortFunc(stores, func(x, y *store) int {
		if c := x.created.Compare(y.created); c != 0 {
			return c
		}

		return cmp.Compare(x.shop.ID, y.shop.ID)
	})

	return stores
}

// --- Products ---

// ListProducts returns every available product of an active store.
func (b *Backend) ListProducts() []entity.Product {
	b.mu.RLock()
	defer b.mu.RUnlock()

	products := make([]entity.Product, 0, len(b.products))
	for _, p := range b.products {
		s, ok := b.stores[p.StoreID]
		if !ok || !s.shop.IsVisible() || !p.IsVisible() {
			continue
		}
		products = append(products, *p)
	}
	sortProducts(products)

	return products
}

func (b *Backend) StoreProducts(storeID string) ([]entity.Product, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, ok := b.stores[storeID]; !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("store " + storeID)
	}

	return b.storeProductsLocked(storeID), nil
}

func (b *Backend) Product(productID string) (*entity.Product, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	p, ok := b.products[productID]
	if !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("product " + productID)
	}
	product := *p

	return &product, nil
}

func (b *Backend) CreateProduct(callerID, storeID string, fields ProductFields) (*entity.Product, error) {
	if fields.Name == nil || strings.TrimSpace(*fields.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name should not be empty")
	}
	if fields.Price == nil || *fields.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be a positive number")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.ownedStoreLocked(callerID, storeID); err != nil {
		return nil, err
	}

	p := &entity.Product{ID: uuid.NewString(), StoreID: storeID, IsAvailable: ptr(true)}
	applyProductFields(p, fields)
	b.products[p.ID] = p
	product := *p

	return &product, nil
}

func (b *Backend) UpdateProduct(callerID, productID string, fields ProductFields) (*entity.Product, error) {
	if fields.Price != nil && *fields.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be a positive number")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.ownedProductLocked(callerID, productID)
	if err != nil {
		return nil, err
	}
	applyProductFields(p, fields)
	product := *p

	return &product, nil
}

func (b *Backend) DeleteProduct(callerID, productID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.ownedProductLocked(callerID, productID); err != nil {
		return err
	}
	delete(b.products, productID)

	return nil
}

func applyProductFields(p *entity.Product, f ProductFields) {
	if f.Name != nil {
		p.Name = strings.TrimSpace(*f.Name)
	}
	if f.Brand != nil {
		p.Brand = *f.Brand
	}
	if f.Barcode != nil {
		p.Barcode = *f.Barcode
	}
	if f.Description != nil {
		p.Description = *f.Description
	}
	if f.Price != nil {
		p.Price = entity.Price(*f.Price)
	}
	if f.IsAvailable != nil {
		p.IsAvailable = ptr(*f.IsAvailable)
	}
	if f.ImageURL != nil {
		p.ImageURL = *f.ImageURL
	}
}

func (b *Backend) ownedProductLocked(callerID, productID string) (*entity.Product, error) {
	p, ok := b.products[productID]
	if !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("product " + productID)
	}
	if _, err := b.ownedStoreLocked(callerID, p.StoreID); err != nil {
		return nil, err
	}

	return p, nil
}

func (b *Backend) storeProductsLocked(storeID string) []entity.Product {
	products := []entity.Product{}
	for _, p := range b.products {
		if p.StoreID == storeID {
			products = append(products, *p)
		}
	}
	sortProducts(products)

	return products
}

func sortProducts(products []entity.Product) {
	slices.SortFunc(products, func(x, y entity.Product) int {
		if c := cmp.Compare(x.Name, y.Name); c != 0 {
			return c
		}

		return cmp.Compare(x.ID, y.ID)
	})
}

// --- Orders ---

// CreateOrder prices the requested lines at current product prices.
func (b *Backend) CreateOrder(clientID string, payload *repository.CreateOrderPayload) (*entity.Order, error) {
	if len(payload.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("items should not be empty")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.stores[payload.StoreID]
	if !ok || !s.shop.IsVisible() {
		return nil, domainerrors.ErrNotFound.WithDetails("store " + payload.StoreID)
	}

	order := entity.Order{
		ID:               uuid.NewString(),
		ClientID:         clientID,
		StoreID:          s.shop.ID,
		StoreName:        s.shop.Name,
		Status:           entity.OrderPending,
		CreatedAt:        b.now().UTC().Format(time.RFC3339),
		DeliveryLocation: payload.DeliveryLocation,
	}

	var totalCents int64
	for _, line := range payload.Items {
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be a positive number")
		}
		p, ok := b.products[line.ProductID]
		if !ok || p.StoreID != s.shop.ID {
			return nil, domainerrors.ErrNotFound.WithDetails("product " + line.ProductID)
		}
		if !p.IsVisible() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(p.Name + " is not available")
		}

		order.Items = append(order.Items, entity.OrderItem{
			ID:              uuid.NewString(),
			ProductID:       p.ID,
			ProductName:     p.Name,
			ProductImage:    p.ImageURL,
			Quantity:        line.Quantity,
			PriceAtPurchase: p.Price,
		})
		totalCents += p.Price.Cents() * int64(line.Quantity)
	}
	order.TotalAmount = entity.Price(float64(totalCents) / 100)

	b.orders = append(b.orders, order)

	return &order, nil
}

// ClientOrders returns the orders placed by clientID, newest first.
func (b *Backend) ClientOrders(clientID string) []entity.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()

	orders := []entity.Order{}
	for i := len(b.orders) - 1; i >= 0; i-- {
		if b.orders[i].ClientID == clientID {
			orders = append(orders, b.orders[i])
		}
	}

	return orders
}

// --- Shopping list ---

func (b *Backend) ShoppingList(userID string) []entity.ListItem {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]entity.ListItem{}, b.lists[userID]...)
}

func (b *Backend) SaveShoppingList(userID string, items []entity.ListItem) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lists[userID] = append([]entity.ListItem{}, items...)
}

func ptr[T any](v T) *T { return &v }
