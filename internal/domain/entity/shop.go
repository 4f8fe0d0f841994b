package entity

import "github.com/paulmach/orb"

// Shop is a store as listed publicly. Slug is the externally addressable identifier.
type Shop struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	LogoURL        string   `json:"logoUrl,omitempty"`
	AvatarURL      string   `json:"avatarUrl,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	CommissionRate *float64 `json:"commissionRate,omitempty"`
	IsActive       *bool    `json:"isActive,omitempty"`
}

// IsVisible reports whether the shop is active. Only an explicit false hides it.
func (s *Shop) IsVisible() bool {
	return s.IsActive == nil || *s.IsActive
}

// Location returns the shop coordinates as an orb point (lng, lat).
func (s *Shop) Location() (orb.Point, bool) {
	if s.Latitude == nil || s.Longitude == nil {
		return orb.Point{}, false
	}

	return orb.Point{*s.Longitude, *s.Latitude}, true
}

// StoreDetail is a shop together with its ordered product catalog.
type StoreDetail struct {
	Shop
	Products []Product `json:"products"`
}
