// Package workers provides the agent's background workers.
//
// Workers run on their own goroutines and are driven by a context: they are
// idle until Start is called and exit when the context is cancelled or Stop
// is invoked.
package workers

import (
	"context"
	"time"
)

// SyncWorker keeps the agent's local state cache aligned with the server by
// running full synchronizations on a fixed interval.
type SyncWorker interface {
	// Start launches the background loop. Calling Start on a running worker
	// restarts it with the new interval.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background loop and blocks until it has exited.
	// Safe to call on a worker that was never started.
	Stop()
}
