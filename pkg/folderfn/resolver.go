// SPDX-License-Identifier: MPL-2.0

package folderfn

import "strings"

// Resolver decides a folder root for a symbolic name by querying an ordered
// list of configuration sources. It is a pure query layer with no state of
// its own and is usable on its own for arbitrary configuration names, not
// just folder roots.
type Resolver struct {
	sources []Source
}

// NewResolver creates a resolver over sources in priority order. The
// conventional order is a settings store first, the environment second.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// Resolve returns the first nonempty value found for name. For each source
// in priority order it tries the name exactly as given, then the
// ALL-UPPERCASE variant, then the all-lowercase variant, stopping at the
// first hit. A source holding an empty string for a key is treated the same
// as one not holding the key at all; resolution continues. The winning
// value is returned as stored, with no trimming or normalization.
//
// When every source/casing combination misses, Resolve returns an
// *UnresolvedError listing the keys that were tried.
func (r *Resolver) Resolve(name string) (string, error) {
	keys := CandidateKeys(name)
	for _, src := range r.sources {
		for _, key := range keys {
			if v, ok := src.Lookup(key); ok && v != "" {
				return v, nil
			}
		}
	}
	return "", &UnresolvedError{Name: name, Keys: keys}
}

// CandidateKeys returns the casing variants tried for name, in order:
// exact, ALL-UPPERCASE, all-lowercase. Variants that duplicate an earlier
// entry are omitted, so an already-uppercase name yields two keys.
func CandidateKeys(name string) []string {
	keys := []string{name}
	for _, variant := range []string{strings.ToUpper(name), strings.ToLower(name)} {
		seen := false
		for _, k := range keys {
			if k == variant {
				seen = true
				break
			}
		}
		if !seen {
			keys = append(keys, variant)
		}
	}
	return keys
}
