package service

import (
	"context"

	"github.com/paulmach/orb"
)

// LocationProvider returns the device position as an orb point (lng, lat).
type LocationProvider interface {
	CurrentLocation(ctx context.Context) (orb.Point, error)
}
