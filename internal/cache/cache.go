package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

type Manager struct {
	cache *cache.Cache
	mu    sync.RWMutex
}

func NewManager(defaultTTL time.Duration) *Manager {
	return &Manager{
		cache: cache.New(defaultTTL, 10*time.Minute),
	}
}

func (m *Manager) Get(key string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cache.Get(key)
}

// Set stores value under key; a zero ttl uses the manager's default
func (m *Manager) Set(key string, value interface{}, ttl time.Duration) {
	if ttl == 0 {
		ttl = cache.DefaultExpiration
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache.Set(key, value, ttl)
}

func (m *Manager) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache.Delete(key)
}

// DeletePrefix removes every key starting with prefix and returns the keys removed
func (m *Manager) DeletePrefix(prefix string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed []string
	for key := range m.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			m.cache.Delete(key)
			removed = append(removed, key)
		}
	}
	return removed
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cache.ItemCount()
}

func (m *Manager) Flush() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache.Flush()
}
