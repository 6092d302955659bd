package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/registro-api/internal/application/mutation"
)

var _ mutation.ViewCache = (*MemoryViewCache)(nil)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryViewCache caché de vistas en memoria para desarrollo y tests
// (sin Redis configurado). Seguro para uso concurrente.
type MemoryViewCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryViewCache construye el caché en memoria.
func NewMemoryViewCache() *MemoryViewCache {
	return &MemoryViewCache{entries: make(map[string]memoryEntry), now: time.Now}
}

// Get retorna el payload cacheado de la vista, si existe y no expiró.
func (c *MemoryViewCache) Get(_ context.Context, view string) ([]byte, bool) {
	c.mu.RLock()
	entry, ok := c.entries[view]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.payload, true
}

// Set guarda el payload de la vista con el TTL dado.
func (c *MemoryViewCache) Set(_ context.Context, view string, payload []byte, ttl time.Duration) {
	c.mu.Lock()
	c.entries[view] = memoryEntry{payload: payload, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

// Invalidate elimina la vista del caché.
func (c *MemoryViewCache) Invalidate(_ context.Context, view string) error {
	c.mu.Lock()
	delete(c.entries, view)
	c.mu.Unlock()
	return nil
}
