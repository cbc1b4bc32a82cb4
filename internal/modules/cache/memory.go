package cache

import (
	"context"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"
	"strings"
	"time"
)

type Manager[T any] struct {
	cache *cache.Cache[T]
}

func NewManager[T any](defaultExpiration time.Duration) *Manager[T] {
	client := gocache.New(defaultExpiration, defaultExpiration)
	return &Manager[T]{
		cache: cache.New[T](go_cache.NewGoCache(client)),
	}
}

func (m *Manager[T]) SetWithExpiration(key string, value T, expir time.Duration) error {
	timeout, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	return m.cache.Set(timeout, key, value, store.WithExpiration(expir))
}

const notFoundMessage = "value not found"

// GetValue returns the zero value and a nil error for a missing key.
func (m *Manager[T]) GetValue(key string) (value T, err error) {
	value, _, err = m.Lookup(key)
	return
}

func (m *Manager[T]) Lookup(key string) (value T, found bool, err error) {
	timeout, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	value, err = m.cache.Get(timeout, key)
	if err != nil {
		if strings.Contains(err.Error(), notFoundMessage) {
			err = nil
		}
		return
	}
	found = true
	return
}

func (m *Manager[T]) Delete(key string) error {
	timeout, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	return m.cache.Delete(timeout, key)
}
