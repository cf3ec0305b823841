// Package cache holds the response cache for the post list endpoint.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"postboard/models"
)

// PostCache keeps a per-user snapshot of the post list. Entries expire after
// a fixed TTL and the least recently used entry is evicted once the cache
// holds size distinct users. Safe for concurrent use.
type PostCache struct {
	lru *expirable.LRU[uint, []models.Post]
}

// NewPostCache creates a cache bounded to size users with the given TTL.
func NewPostCache(size int, ttl time.Duration) *PostCache {
	return &PostCache{
		lru: expirable.NewLRU[uint, []models.Post](size, nil, ttl),
	}
}

// Get returns the cached snapshot for userID, if present and not expired.
func (c *PostCache) Get(userID uint) ([]models.Post, bool) {
	return c.lru.Get(userID)
}

// Put stores a snapshot for userID with a fresh expiry.
func (c *PostCache) Put(userID uint, posts []models.Post) {
	c.lru.Add(userID, posts)
}

// Invalidate drops the snapshot for userID. Called after writes so a
// subsequent list never serves a stale entry.
func (c *PostCache) Invalidate(userID uint) {
	c.lru.Remove(userID)
}

// Len reports the number of live entries.
func (c *PostCache) Len() int {
	return c.lru.Len()
}
