package cli

import (
	"strconv"
	"strings"

	"storefront/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// optionalFloat is a float flag that remembers whether it was given.
type optionalFloat struct {
	value *float64
}

func (f *optionalFloat) String() string {
	if f.value == nil {
		return ""
	}

	return strconv.FormatFloat(*f.value, 'f', -1, 64)
}

func (f *optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Errorf("invalid number %q", s)
	}
	f.value = &v

	return nil
}

// optionalBool is a bool flag that remembers whether it was given.
type optionalBool struct {
	value *bool
}

func (f *optionalBool) String() string {
	if f.value == nil {
		return ""
	}

	return strconv.FormatBool(*f.value)
}

func (f *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return errors.Errorf("invalid boolean %q", s)
	}
	f.value = &v

	return nil
}

func (f *optionalBool) IsBoolFlag() bool { return true }

// orderLines collects repeated -item productID[:quantity] flags.
type orderLines []usecase.OrderLine

func (o *orderLines) String() string {
	parts := make([]string, 0, len(*o))
	for _, line := range *o {
		parts = append(parts, line.ProductID+":"+strconv.Itoa(line.Quantity))
	}

	return strings.Join(parts, ",")
}

func (o *orderLines) Set(s string) error {
	id, qty, hasQty := strings.Cut(s, ":")
	if strings.TrimSpace(id) == "" {
		return errors.Errorf("invalid item %q", s)
	}

	quantity := 1
	if hasQty {
		n, err := strconv.Atoi(qty)
		if err != nil {
			return errors.Errorf("invalid quantity in %q", s)
		}
		quantity = n
	}

	*o = append(*o, usecase.OrderLine{ProductID: strings.TrimSpace(id), Quantity: quantity})

	return nil
}

// parseLatLng reads "lat,lng" into an orb point (lng, lat).
func parseLatLng(s string) (orb.Point, error) {
	latText, lngText, ok := strings.Cut(s, ",")
	if !ok {
		return orb.Point{}, errors.Errorf("expected lat,lng but got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	if err != nil {
		return orb.Point{}, errors.Errorf("invalid latitude %q", latText)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngText), 64)
	if err != nil {
		return orb.Point{}, errors.Errorf("invalid longitude %q", lngText)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return orb.Point{}, errors.Errorf("coordinates out of range: %q", s)
	}

	return orb.Point{lng, lat}, nil
}
