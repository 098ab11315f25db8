package registry

import "context"

// Registry keeps this instance visible to the rest of the platform.
// All registry traffic is best-effort: failures never reach the chat
// path.
type Registry interface {
	Start(ctx context.Context)
	Stop()
}
