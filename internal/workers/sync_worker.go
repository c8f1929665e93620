package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-zkeb/internal/logger"
	"github.com/MKhiriev/go-zkeb/internal/service"
)

const defaultSyncInterval = 5 * time.Minute

type syncWorker struct {
	backupService service.AgentBackupService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSyncWorker creates a SyncWorker that calls backupService.FullSync on a
// ticker. The worker is idle until Start is called.
func NewSyncWorker(backupService service.AgentBackupService, logger *logger.Logger) SyncWorker {
	return &syncWorker{backupService: backupService, logger: logger}
}

// Start implements SyncWorker. It stops any previously running loop, then
// launches a background goroutine that calls FullSync every interval. If
// interval is zero or negative it defaults to 5 minutes. The goroutine exits
// when ctx is cancelled or Stop is called.
func (w *syncWorker) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	w.Stop()

	w.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				if err := w.backupService.FullSync(workerCtx); err != nil {
					w.logger.Err(err).Msg("background sync failed")
				}
			}
		}
	}()
}

// Stop implements SyncWorker. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// worker is not running (no-op in that case).
func (w *syncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
