package entity

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Price
		wantErr bool
	}{
		{name: "number", in: `12.5`, want: 12.5},
		{name: "numeric string", in: `"19.90"`, want: 19.9},
		{name: "empty string", in: `""`, want: 0},
		{name: "null", in: `null`, want: 0},
		{name: "garbage", in: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Price
			err := json.Unmarshal([]byte(tt.in), &p)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Float64(), p.Float64(), 1e-9)
		})
	}
}

func TestPrice_Cents(t *testing.T) {
	assert.Equal(t, int64(1990), Price(19.9).Cents())
	assert.Equal(t, int64(1000), Price(10).Cents())
	assert.Equal(t, int64(0), Price(0).Cents())
}

func TestProduct_DecodesStringPrice(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","name":"Milk","price":"4.99"}`), &p))

	assert.Equal(t, "p1", p.ID)
	assert.InDelta(t, 4.99, p.Price.Float64(), 1e-9)
	assert.True(t, p.IsVisible())
}

func TestVisibility_OnlyExplicitFalseHides(t *testing.T) {
	yes, no := true, false

	assert.True(t, (&Product{}).IsVisible())
	assert.True(t, (&Product{IsAvailable: &yes}).IsVisible())
	assert.False(t, (&Product{IsAvailable: &no}).IsVisible())

	assert.True(t, (&Shop{}).IsVisible())
	assert.False(t, (&Shop{IsActive: &no}).IsVisible())
}

func TestShop_Location(t *testing.T) {
	lat, lng := -23.55, -46.63

	_, ok := (&Shop{}).Location()
	assert.False(t, ok)

	point, ok := (&Shop{Latitude: &lat, Longitude: &lng}).Location()
	require.True(t, ok)
	assert.Equal(t, orb.Point{lng, lat}, point)
}

func TestStoreDetail_DecodesEmbeddedShop(t *testing.T) {
	var detail StoreDetail
	body := `{"id":"s1","name":"Mercado","slug":"mercado-1","products":[{"id":"p1","name":"Milk","price":3}]}`
	require.NoError(t, json.Unmarshal([]byte(body), &detail))

	assert.Equal(t, "mercado-1", detail.Slug)
	require.Len(t, detail.Products, 1)
	assert.Equal(t, "Milk", detail.Products[0].Name)
}

func TestRole(t *testing.T) {
	assert.True(t, RoleClient.IsValid())
	assert.True(t, RoleShopper.IsValid())
	assert.False(t, Role("ADMIN").IsValid())

	assert.Equal(t, RouteShopperDashboard, RoleShopper.HomeRoute())
	assert.Equal(t, RouteClientHome, RoleClient.HomeRoute())
	assert.Equal(t, RouteClientHome, Role("").HomeRoute())
}

func TestRegisterRoleValidation(t *testing.T) {
	type body struct {
		Role Role `validate:"required,role"`
	}

	v := validator.New()
	require.NoError(t, RegisterRoleValidation(v))

	require.NoError(t, v.Struct(body{Role: RoleShopper}))
	require.Error(t, v.Struct(body{Role: "ADMIN"}))
}

func TestSession_Role(t *testing.T) {
	assert.Equal(t, Role(""), Session{}.Role())
	assert.Equal(t, RoleShopper, Session{User: &User{Role: RoleShopper}}.Role())
}

func TestOrderStatus_IsFinal(t *testing.T) {
	assert.True(t, OrderCompleted.IsFinal())
	assert.True(t, OrderCancelled.IsFinal())
	assert.False(t, OrderDelivering.IsFinal())
}
