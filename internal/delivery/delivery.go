// Package delivery defines the transport-level servers started by the process.
package delivery

import "context"

// Delivery is a long-running server started by startServer and stopped through fx hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
