package store

import (
	"context"
	"sync"
	"time"

	"comply/internal/compliance"
	id "comply/pkg/domain"
	"comply/pkg/platform/sentinel"
)

type cachedOverview struct {
	overview  compliance.Overview
	expiresAt time.Time
}

// InMemoryCache is the process-local overview cache used when Redis is not
// configured.
type InMemoryCache struct {
	mu          sync.Mutex
	ttl         time.Duration
	now         func() time.Time
	entries     map[id.OrganizationID]cachedOverview
	generations map[id.OrganizationID]int64
}

func NewInMemoryCache(ttl time.Duration) *InMemoryCache {
	return &InMemoryCache{
		ttl:         ttl,
		now:         time.Now,
		entries:     make(map[id.OrganizationID]cachedOverview),
		generations: make(map[id.OrganizationID]int64),
	}
}

func (c *InMemoryCache) Get(_ context.Context, orgID id.OrganizationID) (*compliance.Overview, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[orgID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if !c.now().Before(entry.expiresAt) {
		delete(c.entries, orgID)
		return nil, sentinel.ErrNotFound
	}
	overview := entry.overview
	return &overview, nil
}

func (c *InMemoryCache) Generation(_ context.Context, orgID id.OrganizationID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[orgID], nil
}

func (c *InMemoryCache) Set(_ context.Context, orgID id.OrganizationID, generation int64, overview *compliance.Overview) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[orgID] != generation {
		return false, nil
	}
	c.entries[orgID] = cachedOverview{overview: *overview, expiresAt: c.now().Add(c.ttl)}
	return true, nil
}

func (c *InMemoryCache) Invalidate(_ context.Context, orgID id.OrganizationID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, orgID)
	c.generations[orgID]++
	return nil
}
