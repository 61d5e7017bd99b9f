// Package storage provides the page-local key-value store that holds the
// persisted theme preference. It is the only durable state in the
// application: one string key, surviving across runs.
package storage

import "errors"

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Store is a string key-value persistence capability. Callers treat any
// error as "storage unavailable" and silently fall back to defaults; no
// Store error is ever surfaced to the user.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(key string) (string, error)

	// Set writes the value for key, overwriting any previous value.
	Set(key, value string) error

	// Close releases underlying resources.
	Close() error
}

// MemoryStore is a map-backed Store for tests and ephemeral runs.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// FailingStore simulates unavailable storage: every call errors. Used to
// verify that persistence failures are swallowed silently.
type FailingStore struct{}

var errUnavailable = errors.New("storage: unavailable")

func (FailingStore) Get(string) (string, error) { return "", errUnavailable }

func (FailingStore) Set(string, string) error { return errUnavailable }

func (FailingStore) Close() error { return nil }
