// Package delivery defines the contract every transport entry point
// (HTTP server, background worker) must satisfy.
package delivery

import "context"

// Delivery is a long-running transport endpoint started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
