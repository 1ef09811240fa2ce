// SPDX-License-Identifier: MPL-2.0

package config

import "folderfun/pkg/folderfn"

// Store exposes the loaded [settings] table plus in-process overrides as a
// folderfn.Source. Overrides set after loading shadow file values; both are
// consulted before the environment by the resolver the CLI builds.
type Store struct {
	overrides *folderfn.Settings
	file      map[string]string
}

// NewStore creates a Store over the settings table of cfg.
func NewStore(cfg *Config) *Store {
	file := cfg.Settings
	if file == nil {
		file = map[string]string{}
	}
	return &Store{
		overrides: folderfn.NewSettings(),
		file:      file,
	}
}

// Set installs a process-local override shadowing the file value for key.
func (s *Store) Set(key, value string) {
	s.overrides.Set(key, value)
}

// Lookup implements folderfn.Source: overrides first, then the file table.
// Keys are matched exactly; casing variants are the resolver's concern.
func (s *Store) Lookup(key string) (string, bool) {
	if v, ok := s.overrides.Lookup(key); ok {
		return v, ok
	}
	v, ok := s.file[key]
	return v, ok
}

// NewResolver builds the conventional resolver over this store and the
// process environment, in that priority order.
func (s *Store) NewResolver() *folderfn.Resolver {
	return folderfn.NewResolver(s, folderfn.EnvSource{})
}
