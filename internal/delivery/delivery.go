// Package delivery defines the contract every transport frontend satisfies.
package delivery

import "context"

// Delivery is a serving surface such as an HTTP server. Serve blocks until
// the surface stops; shutdown is driven by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
