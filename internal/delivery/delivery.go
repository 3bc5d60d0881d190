// Package delivery holds the inbound surfaces of the console.
package delivery

import "context"

// Delivery is a long-running inbound surface started with the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
