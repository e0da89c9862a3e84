package kv

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// ErrKeyNotFound is returned by Get for keys that were never set.
var ErrKeyNotFound = errors.New("key not found")

// Store is a whole-value key-value store. Values are opaque JSON documents;
// there is no field-level patching, so every update is a read-modify-write
// performed by the caller.
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps values in process memory. Used for local development
// and tests when no durable backend is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]json.RawMessage),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append(json.RawMessage(nil), value...), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append(json.RawMessage(nil), value...)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]json.RawMessage)
	return nil
}
