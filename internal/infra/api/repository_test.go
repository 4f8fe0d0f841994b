package api

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func respond(body string, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestMarketRepository_MyStore(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		status    int
		wantShop  bool
		wantCount int
		wantErr   error
	}{
		{name: "single object", body: `{"id":"s1","name":"Loja","slug":"loja-1"}`, status: 200, wantShop: true, wantCount: 1},
		{name: "not found", body: `{"statusCode":404,"message":"Store not found"}`, status: 404},
		{name: "null body", body: `null`, status: 200},
		{name: "array is rejected", body: `[{"id":"s1"}]`, status: 200, wantErr: domainerrors.ErrUnexpectedShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestClient(t, respond(tt.body, tt.status), "tok")
			repo := NewMarketRepository(env.client)

			shop, err := repo.GetMyStore(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantShop, shop != nil)
			}

			shops, err := repo.ListMyStores(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, shops)
			assert.Len(t, shops, tt.wantCount)
		})
	}
}

func TestMarketRepository_MyStoreServerError(t *testing.T) {
	env := newTestClient(t, respond(`{"message":"boom"}`, 500), "tok")
	repo := NewMarketRepository(env.client)

	_, err := repo.GetMyStore(context.Background())
	assert.Equal(t, 500, domainerrors.StatusCode(err))

	_, err = repo.ListMyStores(context.Background())
	assert.Equal(t, 500, domainerrors.StatusCode(err))
}

func TestMarketRepository_Reads(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/stores", respond(`[{"id":"s1","name":"A","slug":"a","latitude":-23.5,"longitude":-46.6}]`, 200))
	mux.HandleFunc("GET /api/v1/stores/{slug}", func(w http.ResponseWriter, r *http.Request) {
		respond(`{"id":"s1","name":"A","slug":"`+r.PathValue("slug")+`","products":[{"id":"p2","name":"B","price":"3.50"},{"id":"p1","name":"A","price":2}]}`, 200)(w, r)
	})
	mux.HandleFunc("GET /api/v1/products/global", respond(`null`, 200))
	mux.HandleFunc("GET /api/v1/products/store/{id}", respond(`[{"id":"p1","name":"A","price":10,"storeId":"s1"}]`, 200))
	mux.HandleFunc("GET /api/v1/products/{id}", respond(`{"id":"p1","name":"A","price":"10.00"}`, 200))

	env := newTestClient(t, mux, "")
	repo := NewMarketRepository(env.client)
	ctx := context.Background()

	shops, err := repo.ListShops(ctx)
	require.NoError(t, err)
	require.Len(t, shops, 1)
	loc, ok := shops[0].Location()
	require.True(t, ok)
	assert.InDelta(t, -46.6, loc.Lon(), 1e-9)

	detail, err := repo.GetStoreBySlug(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", detail.Slug)
	require.Len(t, detail.Products, 2)
	assert.Equal(t, "p2", detail.Products[0].ID, "catalog order is preserved")
	assert.InDelta(t, 3.5, detail.Products[0].Price.Float64(), 1e-9)

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	storeProducts, err := repo.ListStoreProducts(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, storeProducts, 1)

	product, err := repo.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, product.Price.Float64(), 1e-9)
}

type capturedPart struct {
	contentType string
	filename    string
	value       string
}

func parseMultipart(t *testing.T, r *http.Request) map[string]capturedPart {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	parts := map[string]capturedPart{}
	reader := multipart.NewReader(r.Body, params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		parts[part.FormName()] = capturedPart{
			contentType: part.Header.Get("Content-Type"),
			filename:    part.FileName(),
			value:       string(data),
		}
	}

	return parts
}

func TestMarketRepository_CreateStoreMultipart(t *testing.T) {
	var parts map[string]capturedPart
	var method, path, auth string
	env := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path, auth = r.Method, r.URL.Path, r.Header.Get("Authorization")
		parts = parseMultipart(t, r)
		respond(`{"id":"s9","name":"Mercado","slug":"mercado-12"}`, 201)(w, r)
	}), "tok")

	logo, err := env.resolver.Stage(context.Background(), "logo.png", []byte("PNG"))
	require.NoError(t, err)
	avatar, err := env.resolver.Stage(context.Background(), "avatar.jpg", []byte("JPG"))
	require.NoError(t, err)

	repo := NewMarketRepository(env.client)
	shop, err := repo.CreateStore(context.Background(), &repository.StoreForm{
		Name:           ptr("Mercado"),
		Slug:           ptr("mercado-12"),
		Latitude:       ptr(-23.55),
		Longitude:      ptr(-46.63),
		CommissionRate: ptr(10.0),
		Logo:           logo,
		Avatar:         avatar,
	})
	require.NoError(t, err)
	assert.Equal(t, "s9", shop.ID)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/api/v1/stores", path)
	assert.Equal(t, "Bearer tok", auth)

	assert.Equal(t, "Mercado", parts["name"].value)
	assert.Equal(t, "-23.55", parts["latitude"].value)
	assert.Equal(t, "10", parts["commissionRate"].value)
	assert.NotContains(t, parts, "isActive")
	assert.Equal(t, "image/png", parts["logo"].contentType)
	assert.Equal(t, "logo.png", parts["logo"].filename)
	assert.Equal(t, "PNG", parts["logo"].value)
	assert.Equal(t, "image/jpeg", parts["avatar"].contentType)

	for name, part := range parts {
		assert.NotEqual(t, "undefined", part.value, name)
	}
}

func TestMarketRepository_UpdateProductOmitsUnsetFields(t *testing.T) {
	var parts map[string]capturedPart
	var method, path string
	env := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		parts = parseMultipart(t, r)
		respond(`{"id":"p1","name":"Arroz","price":"12.9"}`, 200)(w, r)
	}), "tok")

	repo := NewMarketRepository(env.client)
	product, err := repo.UpdateProduct(context.Background(), "p1", &repository.ProductForm{
		Price:       ptr(12.9),
		IsAvailable: ptr(false),
	})
	require.NoError(t, err)
	assert.InDelta(t, 12.9, product.Price.Float64(), 1e-9)

	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "/api/v1/products/p1", path)
	assert.Len(t, parts, 2)
	assert.Equal(t, "12.9", parts["price"].value)
	assert.Equal(t, "false", parts["isAvailable"].value)
}

func TestMarketRepository_UnreadableFile(t *testing.T) {
	called := false
	env := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}), "tok")

	repo := NewMarketRepository(env.client)
	_, err := repo.CreateProduct(context.Background(), "s1", &repository.ProductForm{
		Name:  ptr("X"),
		Price: ptr(1.0),
		Image: entity.FileRef("/definitely/not/here.png"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrFileUnreadable)
	assert.False(t, called, "nothing is sent when a file cannot be read")
}

func TestMarketRepository_Deletes(t *testing.T) {
	var seen []string
	env := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}), "tok")

	repo := NewMarketRepository(env.client)
	require.NoError(t, repo.DeleteStore(context.Background(), "s1"))
	require.NoError(t, repo.DeleteProduct(context.Background(), "p1"))

	assert.Equal(t, []string{"DELETE /api/v1/stores/s1", "DELETE /api/v1/products/p1"}, seen)
}

func TestAuthRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret" {
			respond(`{"statusCode":401,"message":"Credenciais inválidas"}`, 401)(w, r)

			return
		}
		respond(`{"access_token":"jwt","user":{"id":"u1","name":"Ana","email":"ana@x.com","role":"CLIENT"}}`, 200)(w, r)
	})
	mux.HandleFunc("POST /api/v1/auth/register", respond(`{"id":"u2","name":"Bia","email":"bia@x.com","role":"SHOPPER"}`, 201))
	mux.HandleFunc("PATCH /api/v1/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		parts := parseMultipart(t, r)
		respond(`{"id":"`+r.PathValue("id")+`","name":"`+parts["fullName"].value+`","role":"CLIENT"}`, 200)(w, r)
	})

	env := newTestClient(t, mux, "jwt")
	repo := NewAuthRepository(env.client)
	ctx := context.Background()

	result, err := repo.Login(ctx, "ana@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt", result.AccessToken)
	assert.Equal(t, entity.RoleClient, result.User.Role)

	_, err = repo.Login(ctx, "ana@x.com", "wrong")
	assert.Equal(t, "Credenciais inválidas", domainerrors.UserMessage(err, "Erro"))

	user, err := repo.Register(ctx, &repository.RegisterPayload{FullName: "Bia", Email: "bia@x.com", Password: "p", Phone: "1", Role: entity.RoleShopper})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleShopper, user.Role)

	updated, err := repo.UpdateProfile(ctx, "u1", &repository.ProfileForm{FullName: ptr("Ana Maria")})
	require.NoError(t, err)
	assert.Equal(t, "u1", updated.ID)
	assert.Equal(t, "Ana Maria", updated.Name)
}

func TestOrderRepository(t *testing.T) {
	var created map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/orders/client/me", respond(`[{"id":"o1","status":"PENDING","totalAmount":"25.00","items":[]}]`, 200))
	mux.HandleFunc("POST /api/v1/orders", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&created)
		respond(`{"id":"o2","status":"PENDING","storeId":"s1"}`, 201)(w, r)
	})

	env := newTestClient(t, mux, "tok")
	repo := NewOrderRepository(env.client)
	ctx := context.Background()

	orders, err := repo.ListClientOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.OrderPending, orders[0].Status)
	assert.InDelta(t, 25.0, orders[0].TotalAmount.Float64(), 1e-9)

	order, err := repo.CreateOrder(ctx, &repository.CreateOrderPayload{
		StoreID: "s1",
		Items:   []repository.CreateOrderItem{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "o2", order.ID)
	assert.Equal(t, "s1", created["storeId"])
	assert.NotContains(t, created, "deliveryLocation")
}

func TestShoppingListRepository(t *testing.T) {
	var saved string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/shopping-list", respond(`{}`, 200))
	mux.HandleFunc("PUT /api/v1/shopping-list", func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		saved = strings.TrimSpace(string(data))
		w.WriteHeader(http.StatusOK)
	})

	env := newTestClient(t, mux, "tok")
	repo := NewShoppingListRepository(env.client)
	ctx := context.Background()

	items, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	require.NoError(t, repo.Save(ctx, nil))
	assert.JSONEq(t, `{"items":[]}`, saved)
}
