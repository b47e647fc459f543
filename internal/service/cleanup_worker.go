package service

import (
	"context"
	"log"
	"sync"
	"time"

	"shipmark/internal/port"
)

// CleanupConfig holds settings for the artifact cleanup worker.
type CleanupConfig struct {
	Bucket       string
	Delay        time.Duration
	PollInterval time.Duration
}

type cleanupEntry struct {
	key   string
	dueAt time.Time
}

// CleanupWorker deletes generated output documents a fixed delay after they
// were produced. Deletion is best-effort: a failed delete is logged and
// dropped, never retried past the next poll.
type CleanupWorker struct {
	storage port.ObjectStorage
	cfg     CleanupConfig

	mu      sync.Mutex
	pending []cleanupEntry
}

// NewCleanupWorker creates a new CleanupWorker.
func NewCleanupWorker(storage port.ObjectStorage, cfg CleanupConfig) *CleanupWorker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 30 * time.Second
	}
	return &CleanupWorker{storage: storage, cfg: cfg}
}

// Schedule queues an object key for deletion after the configured delay.
func (w *CleanupWorker) Schedule(key string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = append(w.pending, cleanupEntry{key: key, dueAt: time.Now().Add(w.cfg.Delay)})
	log.Printf("cleanupWorker: scheduled %s for deletion in %s", key, w.cfg.Delay)
}

// Start runs the polling loop until ctx is canceled. Pending entries are
// abandoned on shutdown; generated documents are ephemeral either way.
func (w *CleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	log.Printf("cleanupWorker: started (delay=%s, poll=%s)", w.cfg.Delay, w.cfg.PollInterval)

	for {
		select {
		case <-ctx.Done():
			log.Printf("cleanupWorker: shutdown, %d entries abandoned", w.pendingCount())
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *CleanupWorker) sweep() {
	now := time.Now()

	w.mu.Lock()
	var due, rest []cleanupEntry
	for _, e := range w.pending {
		if e.dueAt.Before(now) {
			due = append(due, e)
		} else {
			rest = append(rest, e)
		}
	}
	w.pending = rest
	w.mu.Unlock()

	for _, e := range due {
		deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := w.storage.Delete(deleteCtx, w.cfg.Bucket, e.key)
		cancel()
		if err != nil {
			log.Printf("cleanupWorker: delete failed for %s: %v", e.key, err)
			continue
		}
		log.Printf("cleanupWorker: deleted %s", e.key)
	}
}

func (w *CleanupWorker) pendingCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}
