// Package cache is a small in-process key/value store with per-entry TTL and
// tag based invalidation, backed by an expirable LRU.
package cache

import (
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type entry struct {
	value     []byte
	tags      []string
	expiresAt time.Time
}

// Tagged is safe for concurrent use.
type Tagged struct {
	lru    *expirable.LRU[string, entry]
	maxTTL time.Duration
	now    func() time.Time
}

type Option func(*Tagged)

// WithClock replaces time.Now for entry expiry checks.
func WithClock(now func() time.Time) Option {
	return func(t *Tagged) {
		t.now = now
	}
}

// NewTagged keeps at most size entries. maxTTL bounds every entry and is used
// when Save is called without a TTL.
func NewTagged(size int, maxTTL time.Duration, opts ...Option) *Tagged {
	t := &Tagged{
		lru:    expirable.NewLRU[string, entry](size, nil, maxTTL),
		maxTTL: maxTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tagged) Load(key string) ([]byte, bool) {
	e, ok := t.lru.Get(key)
	if !ok || !t.now().Before(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

func (t *Tagged) Save(key string, value []byte, tags []string, ttl time.Duration) {
	if ttl <= 0 || ttl > t.maxTTL {
		ttl = t.maxTTL
	}
	t.lru.Add(key, entry{
		value:     slices.Clone(value),
		tags:      slices.Clone(tags),
		expiresAt: t.now().Add(ttl),
	})
}

// CleanByTag removes every entry saved with tag and returns how many were removed.
func (t *Tagged) CleanByTag(tag string) int {
	removed := 0
	for _, key := range t.lru.Keys() {
		e, ok := t.lru.Peek(key)
		if !ok || !slices.Contains(e.tags, tag) {
			continue
		}
		if t.lru.Remove(key) {
			removed++
		}
	}
	return removed
}

func (t *Tagged) Len() int {
	return t.lru.Len()
}
