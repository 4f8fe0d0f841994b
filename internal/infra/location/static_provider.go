// Package location provides the device position to nearby searches.
package location

import (
	"context"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/paulmach/orb"
)

type staticProvider struct {
	point orb.Point
	known bool
}

// NewStaticProvider returns a provider reporting the configured position.
func NewStaticProvider(cfg *config.Config) service.LocationProvider {
	if cfg.Location == nil {
		return &staticProvider{}
	}

	return &staticProvider{
		point: orb.Point{cfg.Location.Longitude, cfg.Location.Latitude},
		known: true,
	}
}

func (p *staticProvider) CurrentLocation(ctx context.Context) (orb.Point, error) {
	if err := ctx.Err(); err != nil {
		return orb.Point{}, err
	}
	if !p.known {
		return orb.Point{}, domainerrors.ErrLocationUnavailable
	}

	return p.point, nil
}
