// Package delivery contains the inbound adapters of the sandbox backend.
package delivery

import "context"

// Delivery is a long-running inbound server.
type Delivery interface {
	Serve(ctx context.Context) error
}
