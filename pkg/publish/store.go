package publish

import (
	"context"
	"path"
	"strings"
	"sync"

	"github.com/vango-dev/tagkit/internal/errors"
)

// ContentTypeHTML is the content type of published documents.
const ContentTypeHTML = "text/html; charset=utf-8"

// Store is the interface for publish destinations.
type Store interface {
	// Put writes data under key, replacing any existing object.
	Put(ctx context.Context, key, contentType string, data []byte) error
}

// Object is a stored document.
type Object struct {
	Key         string
	ContentType string
	Data        []byte
}

// MemoryStore keeps objects in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]Object
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]Object)}
}

// Put implements Store.
func (s *MemoryStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	s.objects[key] = Object{Key: key, ContentType: contentType, Data: buf}
	s.mu.Unlock()
	return nil
}

// Get returns the object stored under key.
func (s *MemoryStore) Get(key string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	return obj, ok
}

// Len returns the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// cleanKey normalises key to a relative slash path and rejects keys that
// are empty or escape the store root.
func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))[1:]
	if cleaned == "" || strings.HasSuffix(key, "/") {
		return "", errors.Newf(errors.CodeStoreFailure, "Invalid object key %q.", key).
			WithSuggestion("Use a relative path such as docs/index.html.")
	}
	if cleaned != strings.TrimPrefix(strings.ReplaceAll(key, "\\", "/"), "/") {
		return "", errors.Newf(errors.CodeStoreFailure, "Object key %q is not a clean path.", key).
			WithSuggestion("Remove \"..\", \".\" and repeated slashes from the key.")
	}
	return cleaned, nil
}
