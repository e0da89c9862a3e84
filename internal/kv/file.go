package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the whole store as a single JSON document on disk,
// the durable analogue of a browser-local object store. Every Set rewrites
// the file through a rename so a crash mid-write cannot truncate it.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]json.RawMessage
}

func NewFileStore(path string) (*FileStore, error) {
	store := &FileStore{
		path:   path,
		values: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if len(raw) == 0 {
		return store, nil
	}
	if err := json.Unmarshal(raw, &store.values); err != nil {
		return nil, fmt.Errorf("decode store file: %w", err)
	}
	return store, nil
}

func (s *FileStore) Get(_ context.Context, key string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append(json.RawMessage(nil), value...), nil
}

func (s *FileStore) Set(_ context.Context, key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append(json.RawMessage(nil), value...)
	return s.flushLocked()
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]json.RawMessage)
	return s.flushLocked()
}

func (s *FileStore) flushLocked() error {
	encoded, err := json.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}
	if err := os.WriteFile(tmpPath, encoded, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
