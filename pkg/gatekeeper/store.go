// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package gatekeeper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CounterStore counts requests in fixed windows. Incr bumps the
// counter for key, starting a fresh window when none is running, and
// reports the count plus the moment the window resets.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)
}

type memoryWindow struct {
	count   int64
	resetAt time.Time
}

// MemoryCounterStore keeps windows in process memory. Suitable for
// single-instance deployments only.
type MemoryCounterStore struct {
	mu        sync.Mutex
	windows   map[string]*memoryWindow
	nextSweep time.Time
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{
		windows:   make(map[string]*memoryWindow),
		nextSweep: time.Now().Add(sweepInterval),
	}
}

const sweepInterval = time.Minute

func (s *MemoryCounterStore) Incr(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if now.After(s.nextSweep) {
		s.sweep(now)
	}

	w, ok := s.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &memoryWindow{resetAt: now.Add(window)}
		s.windows[key] = w
	}
	w.count++

	return w.count, w.resetAt, nil
}

// sweep drops expired windows. Caller holds the lock.
func (s *MemoryCounterStore) sweep(now time.Time) {
	for key, w := range s.windows {
		if now.After(w.resetAt) {
			delete(s.windows, key)
		}
	}
	s.nextSweep = now.Add(sweepInterval)
}

// RedisCounterStore shares windows across instances. The window TTL is
// set only when the key is first created, so the window stays fixed.
type RedisCounterStore struct {
	client redis.UniversalClient
}

func NewRedisCounterStore(client redis.UniversalClient) *RedisCounterStore {
	return &RedisCounterStore{client: client}
}

func (s *RedisCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to bump rate counter: %w", err)
	}

	remaining := ttl.Val()
	if remaining < 0 {
		remaining = window
	}

	return incr.Val(), time.Now().Add(remaining), nil
}

var (
	_ CounterStore = (*MemoryCounterStore)(nil)
	_ CounterStore = (*RedisCounterStore)(nil)
)
