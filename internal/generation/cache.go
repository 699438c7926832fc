package generation

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/typemitr/typemitr/pkg/lifecycle"
)

const sweepInterval = time.Minute

// Draft is the display projection of a just-generated document, cached per
// session so a client can re-fetch its most recent result without touching
// the durable store.
type Draft struct {
	DocumentID    int64     `json:"document_id"`
	DocumentType  string    `json:"document_type"`
	SenderName    string    `json:"sender_name"`
	RecipientName string    `json:"recipient_name"`
	Content       string    `json:"content"`
	GeneratedAt   time.Time `json:"generated_at"`
}

type draftEntry struct {
	draft     Draft
	expiresAt time.Time
}

// DraftCache is an in-memory TTL cache of the latest draft per session.
// Entries expire after the configured TTL; a janitor goroutine tied to the
// lifecycle coordinator sweeps expired entries.
type DraftCache struct {
	mu     sync.RWMutex
	ttl    time.Duration
	drafts map[uuid.UUID]draftEntry
	logger *slog.Logger
}

// NewDraftCache creates a DraftCache with the given entry TTL.
func NewDraftCache(ttl time.Duration, logger *slog.Logger) *DraftCache {
	return &DraftCache{
		ttl:    ttl,
		drafts: make(map[uuid.UUID]draftEntry),
		logger: logger.With("system", "draft-cache"),
	}
}

// Start registers the sweep goroutine with the lifecycle coordinator. It
// runs until the coordinator's context is cancelled.
func (c *DraftCache) Start(lc *lifecycle.Coordinator) error {
	lc.OnShutdown(func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-lc.Context().Done():
				return
			case now := <-ticker.C:
				if removed := c.sweep(now); removed > 0 {
					c.logger.Debug("swept expired drafts", "count", removed)
				}
			}
		}
	})

	return nil
}

// Put stores the draft for a session, replacing any previous entry.
func (c *DraftCache) Put(session uuid.UUID, draft Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.drafts[session] = draftEntry{
		draft:     draft,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Get returns the unexpired draft for a session.
func (c *DraftCache) Get(session uuid.UUID) (Draft, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.drafts[session]
	if !ok || time.Now().After(entry.expiresAt) {
		return Draft{}, false
	}
	return entry.draft, true
}

// Len returns the number of entries currently held, including any expired
// entries not yet swept.
func (c *DraftCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.drafts)
}

func (c *DraftCache) sweep(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for session, entry := range c.drafts {
		if now.After(entry.expiresAt) {
			delete(c.drafts, session)
			removed++
		}
	}
	return removed
}
