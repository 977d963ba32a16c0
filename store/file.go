package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"brf/services/logger"
)

// FileStore ghi mỗi key thành một file JSON trong thư mục dir.
// This is the durable localStorage analog for the demo backend.
type FileStore struct {
	dir string
	log logger.Logger

	mu sync.Mutex
}

func NewFileStore(dir string, log logger.Logger) *FileStore {
	if log == nil {
		log = logger.Nop{}
	}
	return &FileStore{dir: dir, log: log}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Read(_ context.Context, key string, target interface{}) bool {
	s.mu.Lock()
	raw, err := os.ReadFile(s.path(key))
	s.mu.Unlock()
	if err != nil {
		return false
	}
	// Malformed content counts as absence, never an error.
	if !json.Valid(raw) {
		s.log.Debug("store: dropping malformed record %q", key)
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return false
	}
	return true
}

func (s *FileStore) Write(_ context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error("store: marshal %q: %v", key, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Error("store: mkdir %s: %v", s.dir, err)
		return
	}
	if err := os.WriteFile(s.path(key), raw, 0o644); err != nil {
		s.log.Error("store: write %q: %v", key, err)
	}
}

func (s *FileStore) Delete(_ context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.log.Error("store: delete %q: %v", key, err)
	}
}
