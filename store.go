package tracker

import (
	"errors"
	"fmt"
)

// ErrQuotaExceeded reports that the backing store refused a write for lack
// of space. Callers should surface it and keep the in-memory state intact.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// ErrKeyNotFound reports a Get on a key that was never set.
var ErrKeyNotFound = errors.New("key not found")

// Store is the flat key-value persistence surface the ledger serializes
// into. Values are opaque byte payloads; the ledger owns their encoding.
type Store interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)
	// Set writes the value for key, returning ErrQuotaExceeded when the
	// backend is full.
	Set(key string, value []byte) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(key string) error
}

// MemStore is an in-memory Store, handy for tests and for running without
// persistence. An optional quota caps the total stored bytes.
type MemStore struct {
	data  map[string][]byte
	quota int // total bytes across all values, 0 means unlimited
}

// NewMemStore creates an empty in-memory store without a quota.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

// NewMemStoreQuota creates an in-memory store capped at quota total bytes.
func NewMemStoreQuota(quota int) *MemStore {
	return &MemStore{data: make(map[string][]byte), quota: quota}
}

func (s *MemStore) Get(key string) ([]byte, error) {
	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemStore) Set(key string, value []byte) error {
	if s.quota > 0 {
		total := len(value)
		for k, v := range s.data {
			if k != key {
				total += len(v)
			}
		}
		if total > s.quota {
			return fmt.Errorf("%w: writing %q", ErrQuotaExceeded, key)
		}
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *MemStore) Delete(key string) error {
	delete(s.data, key)
	return nil
}
