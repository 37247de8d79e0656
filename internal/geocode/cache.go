// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package geocode

import (
	"context"
	"sync"
)

// CachedGeocoder memoizes successful lookups of the wrapped Geocoder for its own lifetime.
// Entries are keyed by the exact location string and are never evicted. Failed and empty
// lookups are not cached.
type CachedGeocoder struct {
	coder Geocoder

	mu    sync.RWMutex
	cache map[string]Coordinate
}

func NewCachedGeocoder(coder Geocoder) *CachedGeocoder {
	return &CachedGeocoder{
		coder: coder,
		cache: make(map[string]Coordinate),
	}
}

func (c *CachedGeocoder) Name() string {
	return "geocoder cache using " + c.coder.Name()
}

// Search returns the cached coordinate for location, or looks it up with the wrapped
// Geocoder and stores the result.
func (c *CachedGeocoder) Search(ctx context.Context, location string) (Coordinate, error) {
	c.mu.RLock()
	coords, ok := c.cache[location]
	c.mu.RUnlock()
	if ok {
		coords.CacheHit = true
		return coords, nil
	}

	coords, err := c.coder.Search(ctx, location)
	if err != nil {
		return coords, err
	}
	coords.CacheHit = false

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[location] = coords

	return coords, nil
}

// Len returns the number of cached locations.
func (c *CachedGeocoder) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
