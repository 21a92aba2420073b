package memhost

import (
	"context"
	"sync"

	"github.com/contentkit/taxokit/internal/taxonomy"
)

// Registration is one recorded host registration call.
type Registration struct {
	Key       string        `json:"key"`
	PostTypes []string      `json:"post_types"`
	Args      taxonomy.Args `json:"args"`
}

// Host records taxonomy registrations in memory. Re-registering a key
// overwrites the previous record, mirroring hosts that treat repeated
// registration as reconfiguration.
type Host struct {
	mu            sync.RWMutex
	registrations map[string]Registration
	order         []string
}

// New creates an empty in-memory host.
func New() *Host {
	return &Host{registrations: make(map[string]Registration)}
}

// RegisterTaxonomy implements taxonomy.Host.
func (h *Host) RegisterTaxonomy(ctx context.Context, key string, postTypes []string, args taxonomy.Args) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.registrations[key]; !exists {
		h.order = append(h.order, key)
	}
	h.registrations[key] = Registration{Key: key, PostTypes: postTypes, Args: args}
	return nil
}

// Taxonomy returns the recorded registration for a key.
func (h *Host) Taxonomy(key string) (Registration, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	reg, ok := h.registrations[key]
	return reg, ok
}

// Taxonomies returns all recorded registrations in registration order.
func (h *Host) Taxonomies() []Registration {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Registration, 0, len(h.order))
	for _, key := range h.order {
		out = append(out, h.registrations[key])
	}
	return out
}

// Len returns the number of distinct registered taxonomies.
func (h *Host) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.registrations)
}
