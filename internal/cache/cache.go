package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// Memoizer returns the cached value for key, computing it at most once per
// key while a computation is in flight or a value is live.
type Memoizer interface {
	GetOrCompute(ctx context.Context, key string, compute func(context.Context) (interface{}, error)) (interface{}, error)
}

// Recorder receives hit/miss/shared events, typically a metrics collector.
type Recorder interface {
	CacheEvent(store, event string)
}

type CacheStats struct {
	Hits       int64     `json:"hits"`
	Misses     int64     `json:"misses"`
	Shared     int64     `json:"shared"`
	Failures   int64     `json:"failures"`
	Size       int       `json:"size"`
	LastAccess time.Time `json:"last_access"`
}

// Store is a TTL-bounded memoizer. Failed computations are never stored.
type Store struct {
	name     string
	cache    *cache.Cache
	group    singleflight.Group
	mu       sync.RWMutex
	stats    CacheStats
	maxSize  int
	recorder Recorder
}

type Option func(*Store)

func WithRecorder(r Recorder) Option {
	return func(s *Store) { s.recorder = r }
}

func WithName(name string) Option {
	return func(s *Store) { s.name = name }
}

func NewStore(maxSize int, ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		name:    "files",
		cache:   cache.New(ttl, ttl*2),
		maxSize: maxSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) GetOrCompute(ctx context.Context, key string, compute func(context.Context) (interface{}, error)) (interface{}, error) {
	if value, found := s.get(key); found {
		return value, nil
	}

	// The computation outlives any single caller so that a cancelled peer
	// does not fail everyone sharing the flight.
	flightCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (interface{}, error) {
		if value, found := s.cache.Get(key); found {
			return value, nil
		}
		value, err := compute(flightCtx)
		if err != nil {
			s.record("failure")
			return nil, err
		}
		s.set(key, value)
		return value, nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			s.record("shared")
		}
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Delete(key)
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Flush()
	s.stats = CacheStats{}
}

func (s *Store) Stats() CacheStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := s.stats
	stats.Size = s.cache.ItemCount()
	return stats
}

func (s *Store) get(key string) (interface{}, bool) {
	value, found := s.cache.Get(key)

	s.mu.Lock()
	s.stats.LastAccess = time.Now()
	if found {
		s.stats.Hits++
	} else {
		s.stats.Misses++
	}
	s.mu.Unlock()

	if found {
		s.notify("hit")
	} else {
		s.notify("miss")
	}
	return value, found
}

func (s *Store) set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSize > 0 && s.cache.ItemCount() >= s.maxSize {
		s.removeOldest()
	}
	s.cache.Set(key, value, cache.DefaultExpiration)
}

func (s *Store) record(event string) {
	s.mu.Lock()
	switch event {
	case "shared":
		s.stats.Shared++
	case "failure":
		s.stats.Failures++
	}
	s.mu.Unlock()
	s.notify(event)
}

func (s *Store) notify(event string) {
	if s.recorder != nil {
		s.recorder.CacheEvent(s.name, event)
	}
}

// removeOldest drops the entry closest to expiry. Callers hold s.mu.
func (s *Store) removeOldest() {
	items := s.cache.Items()
	if len(items) == 0 {
		return
	}

	var oldestKey string
	var oldestExpiry int64

	for key, item := range items {
		if oldestKey == "" || item.Expiration < oldestExpiry {
			oldestKey = key
			oldestExpiry = item.Expiration
		}
	}

	if oldestKey != "" {
		s.cache.Delete(oldestKey)
	}
}

// Fetch is the typed form of GetOrCompute.
func Fetch[T any](ctx context.Context, m Memoizer, key string, compute func(context.Context) (T, error)) (T, error) {
	var zero T
	value, err := m.GetOrCompute(ctx, key, func(ctx context.Context) (interface{}, error) {
		return compute(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("cache: key %q holds %T", key, value)
	}
	return typed, nil
}

// Key joins a kind and its identifying parts, e.g. CivilFileDetail-40-1234.
func Key(kind string, parts ...string) string {
	return kind + "-" + strings.Join(parts, "-")
}
