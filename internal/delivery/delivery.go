// Package delivery defines the contract every transport entry point of the
// service implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) started by the
// composition root. Serve blocks until the listener stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
