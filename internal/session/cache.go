// Package session caches per-drive-session bus keys negotiated during the
// CSS authentication handshake, so a batch run against many titles on the
// same disc doesn't repeat handshake bookkeeping for each one.
package session

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dvdvault/cssvault/internal/css"
)

// Cache holds bus keys keyed by an opaque session identifier, each valid
// for a fixed TTL after being set.
type Cache struct {
	cacheInstance *gocache.Cache
	ttl           time.Duration
}

// NewCache returns a Cache whose entries expire ttl after being Put and are
// swept from memory on a fixed janitor interval.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		cacheInstance: gocache.New(ttl, ttl),
		ttl:           ttl,
	}
}

// Put inserts or refreshes the bus key for sessionID, valid for the cache's
// configured TTL from this call.
func (c *Cache) Put(sessionID string, key [5]byte) {
	c.cacheInstance.Set(sessionID, key, c.ttl)
}

// Get returns the bus key for sessionID and whether it was present and
// unexpired. An expired entry and a never-set one are indistinguishable to
// the caller; both report ok == false.
func (c *Cache) Get(sessionID string) (key [5]byte, ok bool) {
	v, found := c.cacheInstance.Get(sessionID)
	if !found {
		return [5]byte{}, false
	}
	return v.([5]byte), true
}

// GetBusKeyRecord looks up sessionID and, if present, decodes response with
// the cached key in one step.
func (c *Cache) GetBusKeyRecord(sessionID string, response [2052]byte) (css.DiscKeyRecord, bool) {
	key, ok := c.Get(sessionID)
	if !ok {
		return css.DiscKeyRecord{}, false
	}
	return css.DecodeDiscKey(response, key), true
}
