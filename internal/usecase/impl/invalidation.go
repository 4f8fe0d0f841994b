package impl

import (
	"storefront/internal/infra/query"
)

// Mutation names a write whose success makes cached reads outdated.
type Mutation string

const (
	MutationCreateProduct    Mutation = "create-product"
	MutationUpdateProduct    Mutation = "update-product"
	MutationDeleteProduct    Mutation = "delete-product"
	MutationCreateStore      Mutation = "create-store"
	MutationUpdateStore      Mutation = "update-store"
	MutationDeleteStore      Mutation = "delete-store"
	MutationCreateOrder      Mutation = "create-order"
	MutationSaveShoppingList Mutation = "save-shopping-list"
	MutationUpdateProfile    Mutation = "update-profile"
)

// Invalidations lists the key prefixes each mutation makes stale.
// Keys derived from the response, like the updated store's profile, are added by the caller.
//
//nolint:gochecknoglobals
var Invalidations = map[Mutation][]query.Key{
	MutationCreateProduct: {
		query.NewKey(scopeProducts),
		query.NewKey(scopeStoreProfile),
	},
	MutationUpdateProduct: {
		query.NewKey(scopeProducts),
		query.NewKey(scopeStoreProfile),
		query.NewKey(scopeProduct),
	},
	MutationDeleteProduct: {
		query.NewKey(scopeProducts),
		query.NewKey(scopeStoreProfile),
		query.NewKey(scopeProduct),
	},
	MutationCreateStore: {
		query.NewKey(scopeMyStoresList),
		query.NewKey(scopeMyStore),
		query.NewKey(scopeShops),
	},
	MutationUpdateStore: {
		query.NewKey(scopeMyStoresList),
		query.NewKey(scopeShops),
	},
	MutationDeleteStore: {
		query.NewKey(scopeMyStoresList),
		query.NewKey(scopeShops),
		query.NewKey(scopeMyStore),
	},
	MutationCreateOrder: {
		query.NewKey(scopeClientOrders),
	},
	MutationSaveShoppingList: {
		query.NewKey(scopeShoppingList),
	},
	MutationUpdateProfile: nil,
}

// invalidate applies the table entry of m plus any response-derived keys.
func invalidate(cache *query.Client, m Mutation, extra ...query.Key) {
	for _, prefix := range Invalidations[m] {
		cache.Invalidate(prefix)
	}
	for _, key := range extra {
		cache.Invalidate(key)
	}
}
