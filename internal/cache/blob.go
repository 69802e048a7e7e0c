package cache

import (
	"context"
	"time"
)

// BlobStore caches opaque byte payloads such as synthesized audio
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// MemoryBlobStore keeps blobs in a process-local Manager
type MemoryBlobStore struct {
	manager *Manager
}

func NewMemoryBlobStore(m *Manager) *MemoryBlobStore {
	return &MemoryBlobStore{manager: m}
}

func (s *MemoryBlobStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.manager.Get(key)
	if !ok {
		return nil, false, nil
	}
	data, ok := v.([]byte)
	return data, ok, nil
}

func (s *MemoryBlobStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.manager.Set(key, value, ttl)
	return nil
}

func (s *MemoryBlobStore) Delete(_ context.Context, key string) error {
	s.manager.Delete(key)
	return nil
}
