// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"
)

// verificationCache remembers positive verifications until they expire.
// Keys are digests; raw credentials are never stored.
type verificationCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]time.Time
	now     func() time.Time
}

func newVerificationCache(ttl time.Duration) *verificationCache {
	return &verificationCache{
		ttl:     ttl,
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (c *verificationCache) get(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt, ok := c.entries[key]
	if !ok {
		return false
	}
	if !c.now().Before(expiresAt) {
		delete(c.entries, key)
		return false
	}
	return true
}

func (c *verificationCache) put(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = c.now().Add(c.ttl)
}

// purge removes expired entries and returns the number removed.
func (c *verificationCache) purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, expiresAt := range c.entries {
		if !now.Before(expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *verificationCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
