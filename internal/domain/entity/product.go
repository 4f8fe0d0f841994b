package entity

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// Product is a catalog entry of a store.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       Price  `json:"price"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Barcode     string `json:"barcode,omitempty"`
	StoreID     string `json:"storeId,omitempty"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// IsVisible reports whether the product can be purchased. Only an explicit false hides it.
func (p *Product) IsVisible() bool {
	return p.IsAvailable == nil || *p.IsAvailable
}

// Price is a monetary amount. The backend serializes decimals either as numbers or as strings.
type Price float64

// Float64 returns the price as a float64.
func (p Price) Float64() float64 {
	return float64(p)
}

// Cents returns the price rounded to whole cents.
func (p Price) Cents() int64 {
	f := float64(p) * 100
	if f < 0 {
		return int64(f - 0.5)
	}

	return int64(f + 0.5)
}

// MarshalJSON encodes the price as a JSON number.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(p), 'f', -1, 64)), nil
}

// UnmarshalJSON accepts a JSON number, a numeric string or null.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = 0

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		if s == "" {
			*p = 0

			return nil
		}
		data = []byte(s)
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return errors.Wrapf(err, "invalid price %q", string(data))
	}
	*p = Price(f)

	return nil
}
