package store

import (
	"context"
	"sync"
)

// Store serializes access to the shared document. All typed stores go
// through the same mutex, so a mutation never observes a half-written
// document. Between independent clients the policy stays last-write-wins.
type Store struct {
	mu      sync.Mutex
	backend Backend
}

// New constructs a Store over the given backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// read loads the current document. Callers must hold s.mu.
func (s *Store) read(ctx context.Context) (Document, error) {
	return s.backend.Load(ctx)
}

// write persists the document in full. Callers must hold s.mu.
func (s *Store) write(ctx context.Context, doc Document) error {
	return s.backend.Save(ctx, doc)
}

// Snapshot returns a copy of the whole document.
func (s *Store) Snapshot(ctx context.Context) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read(ctx)
	if err != nil {
		return Document{}, err
	}
	return doc.clone(), nil
}

func nextID[T any](items []T, id func(T) int64) int64 {
	var max int64
	for _, item := range items {
		if v := id(item); v > max {
			max = v
		}
	}
	return max + 1
}
