package api

import (
	"context"
	"time"
)

// RemoteCallTimeout is the default timeout for calls to the backend store
// and the voice provider
const RemoteCallTimeout = 10 * time.Second

// WithRemoteCallTimeout creates a context bounded by the remote call timeout
func WithRemoteCallTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, RemoteCallTimeout)
}
