// internal/app/system/workers/presencesweep.go
package workers

import (
	"context"
	"sync"
	"time"

	presencestore "github.com/dalemusser/ridehub/internal/app/store/presence"
	"go.uber.org/zap"
)

// PresenceSweep is a background worker that deletes presence entries whose
// last update is older than the staleness window.
//
// The sweeper is opt-in: with it disabled (the default), entries are never
// deleted and staleness stays implicit, matching the behavior pollers have
// always seen.
type PresenceSweep struct {
	presence *presencestore.Store
	log      *zap.Logger
	interval time.Duration
	staleAfter time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewPresenceSweep creates a presence sweeper.
//
// Parameters:
//   - presence: the presence store
//   - logger: zap logger
//   - interval: how often to sweep (e.g. 1 minute)
//   - staleAfter: how old an entry must be before it is deleted
func NewPresenceSweep(presence *presencestore.Store, logger *zap.Logger, interval, staleAfter time.Duration) *PresenceSweep {
	return &PresenceSweep{
		presence:   presence,
		log:        logger,
		interval:   interval,
		staleAfter: staleAfter,
		stopCh:     make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (w *PresenceSweep) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("presence sweep worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("stale_after", w.staleAfter))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *PresenceSweep) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("presence sweep worker stopped")
}

func (w *PresenceSweep) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *PresenceSweep) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := w.presence.DeleteStale(ctx, w.staleAfter)
	if err != nil {
		w.log.Error("failed to delete stale presence entries", zap.Error(err))
		return
	}
	if count > 0 {
		w.log.Info("deleted stale presence entries", zap.Int64("count", count))
	}
}
