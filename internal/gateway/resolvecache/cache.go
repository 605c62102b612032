// Package resolvecache caches token-to-user resolutions at the gateway so
// hot tokens do not hit the identity node on every request.
package resolvecache

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskmesh/internal/gateway/models"
)

// Resolver resolves a bearer token to its user. Satisfied by
// identityclient.Client's ResolveToken.
type Resolver func(ctx context.Context, token string) (*models.PublicUser, error)

type entry struct {
	user    models.PublicUser
	written time.Time
}

// Cache is a TTL map keyed by the raw token string. Entries are evicted
// lazily on lookup; only successful resolutions are stored, so a rejected
// token is re-checked upstream every time it is presented.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	resolve Resolver

	// seam for tests
	now func() time.Time
}

// New builds a Cache with the given TTL over the given resolver.
func New(ttl time.Duration, resolve Resolver) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		resolve: resolve,
		now:     time.Now,
	}
}

// GetOrResolve returns the cached user for token, resolving upstream on a
// miss or after expiry. The returned value is a copy; callers may mutate it.
func (c *Cache) GetOrResolve(ctx context.Context, token string) (*models.PublicUser, error) {
	c.mu.RLock()
	e, ok := c.entries[token]
	c.mu.RUnlock()

	if ok && c.now().Sub(e.written) < c.ttl {
		user := e.user
		return &user, nil
	}

	user, err := c.resolve(ctx, token)
	if err != nil {
		if ok {
			c.mu.Lock()
			delete(c.entries, token)
			c.mu.Unlock()
		}
		return nil, err
	}

	c.mu.Lock()
	c.entries[token] = entry{user: *user, written: c.now()}
	c.mu.Unlock()

	result := *user
	return &result, nil
}

// Invalidate drops the cached resolution for token, if any.
func (c *Cache) Invalidate(token string) {
	c.mu.Lock()
	delete(c.entries, token)
	c.mu.Unlock()
}

// Len reports the number of cached entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
