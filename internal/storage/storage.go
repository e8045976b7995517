package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ObjectStorage defines common object operations across backends.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
	Bucket() string
}

// Storage wraps an ObjectStorage backend with a stable API for media
// uploads (cover images and author avatars).
type Storage struct {
	backend ObjectStorage
}

// NewStorage constructs a Storage wrapper for the provided backend.
func NewStorage(backend ObjectStorage) *Storage {
	return &Storage{backend: backend}
}

// EnsureBucket ensures the configured bucket exists.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	return s.backend.EnsureBucket(ctx)
}

// Put uploads an object and returns its public URL.
func (s *Storage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if err := s.backend.Put(ctx, key, r, size, contentType); err != nil {
		return "", err
	}
	return s.backend.URL(key), nil
}

// Delete removes an object from the configured bucket.
func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, key)
}

// URL returns the public URL for an object key.
func (s *Storage) URL(key string) string {
	return s.backend.URL(key)
}

// Bucket returns the configured bucket name.
func (s *Storage) Bucket() string {
	return s.backend.Bucket()
}

// NewKey derives a fresh object key, keeping the original file extension
// so browsers infer the media type from the URL.
func NewKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return "media/" + uuid.NewString() + ext
}
