package storage

import (
	"context"
	"errors"
	"sync"
)

// MemoryStore is an in-memory BlobStore used in tests. It records every put
// and delete so tests can assert on the exact sequence of side effects.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	deletes []string

	// FailPuts makes every Put return an error, for upload-failure paths.
	FailPuts bool
	// FailDeletes makes every Delete return an error while still recording
	// the attempt.
	FailDeletes bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (s *MemoryStore) Put(ctx context.Context, data []byte, hint, filename string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailPuts {
		return "", errors.New("memory store: put failed")
	}
	key := ObjectPath(hint, filename)
	s.objects[key] = data
	return key, nil
}

func (s *MemoryStore) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, path)
	if s.FailDeletes {
		return errors.New("memory store: delete failed")
	}
	delete(s.objects, path)
	return nil
}

func (s *MemoryStore) Exists(ctx context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[path]
	return ok, nil
}

// Deletes returns the paths passed to Delete, in call order.
func (s *MemoryStore) Deletes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.deletes))
	copy(out, s.deletes)
	return out
}

// Seed stores data at an exact path, bypassing path generation.
func (s *MemoryStore) Seed(path string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = data
}

// Len returns the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
