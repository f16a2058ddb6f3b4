package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
	"github.com/bazarhub/marketplace-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	insertTimeout  = 10 * time.Second
)

// AuditWriter persists audit entries off the moderation request path. Entries
// are routed to a fixed set of workers by consistent hashing on the target
// user, so the trail for any one account stays in order.
type AuditWriter struct {
	workers []chan *domain.AuditLog
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewAuditWriter creates an AuditWriter with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditWriter(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditWriter {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	w := &AuditWriter{
		workers: make([]chan *domain.AuditLog, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range w.workers {
		w.workers[i] = make(chan *domain.AuditLog, channelBuffer)
	}
	return w
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (w *AuditWriter) Start(ctx context.Context) {
	for i, ch := range w.workers {
		go w.runWorker(ctx, i, ch)
	}
}

// Record enqueues an entry for persistence. Non-blocking up to channelBuffer
// capacity.
func (w *AuditWriter) Record(entry *domain.AuditLog) {
	w.workers[w.shardIndex(entry.TargetUser)] <- entry
}

// shardIndex maps a target user deterministically to a worker index.
func (w *AuditWriter) shardIndex(targetUser string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(targetUser))
	return int(h.Sum32()) % len(w.workers)
}

func (w *AuditWriter) runWorker(ctx context.Context, id int, ch <-chan *domain.AuditLog) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			insertCtx, cancel := context.WithTimeout(ctx, insertTimeout)
			err := w.repo.Insert(insertCtx, entry)
			cancel()
			if err != nil {
				w.log.Error().Err(err).
					Str("action", entry.Action).
					Str("target_user", entry.TargetUser).
					Int("worker_id", id).
					Msg("audit entry insert failed")
			}
		}
	}
}
