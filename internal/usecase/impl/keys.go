package impl

import "storefront/internal/infra/query"

// Cache keys. Keys sharing a first element form a family that can be invalidated by prefix.
const (
	scopeShops        = "shops"
	scopeProducts     = "products"
	scopeMyStoresList = "my-stores-list"
	scopeStore        = "store"
	scopeStoreProfile = "store-profile"
	scopeMyStore      = "my-store"
	scopeProduct      = "product"
	scopeClientOrders = "client-orders"
	scopeShoppingList = "shopping-list"
)

func KeyShops() query.Key { return query.NewKey(scopeShops) }

func KeyProducts() query.Key { return query.NewKey(scopeProducts) }

func KeyStoreProducts(storeID string) query.Key { return query.NewKey(scopeProducts, storeID) }

func KeyMyStoresList() query.Key { return query.NewKey(scopeMyStoresList) }

func KeyStore(storeID string) query.Key { return query.NewKey(scopeStore, storeID) }

func KeyStoreProfile(slug string) query.Key { return query.NewKey(scopeStoreProfile, slug) }

func KeyMyStore() query.Key { return query.NewKey(scopeMyStore) }

func KeyProduct(productID string) query.Key { return query.NewKey(scopeProduct, productID) }

func KeyClientOrders() query.Key { return query.NewKey(scopeClientOrders) }

func KeyShoppingList() query.Key { return query.NewKey(scopeShoppingList) }
