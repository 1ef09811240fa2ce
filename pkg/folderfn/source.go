// SPDX-License-Identifier: MPL-2.0

package folderfn

import (
	"os"
	"sync"

	"golang.org/x/exp/maps"
)

type (
	// Source is a read-only key/value store of configuration strings. A
	// lookup either produces the value stored under the exact key or
	// reports absence. Values are returned as stored; treating an empty
	// string as absent is the resolver's concern, not the source's.
	Source interface {
		Lookup(key string) (string, bool)
	}

	// EnvSource reads the process environment. The zero value is ready
	// to use.
	EnvSource struct{}

	// Settings is an in-process key/value override store, the
	// higher-priority counterpart to EnvSource in the default resolver.
	// It is safe for concurrent use.
	Settings struct {
		mu     sync.RWMutex
		values map[string]string
	}
)

// Lookup reads key from the process environment.
func (EnvSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// NewSettings creates an empty settings store.
func NewSettings() *Settings {
	return &Settings{values: make(map[string]string)}
}

// Set stores value under key, replacing any previous value. Keys are
// case-sensitive: "Data" and "DATA" are distinct entries.
func (s *Settings) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Unset removes key from the store. Removing an absent key is a no-op.
func (s *Settings) Unset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Lookup implements Source.
func (s *Settings) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the currently stored keys, in no particular order.
func (s *Settings) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Keys(s.values)
}
