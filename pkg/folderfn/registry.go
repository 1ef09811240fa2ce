// SPDX-License-Identifier: MPL-2.0

package folderfn

import (
	"sync"

	"folderfun/pkg/fspath"
)

// AccessorPrefix is the fixed marker prepended to a folder function's name
// to form its accessor name. Callers rely on this to predict an accessor's
// identifier from the name they chose at definition time: defining "In"
// yields the accessor "ffIn".
const AccessorPrefix = "ff"

// AccessorName derives the registry key for a folder function name. The
// name's casing is preserved as given.
func AccessorName(name string) string {
	return AccessorPrefix + name
}

type (
	// FolderFunc is a named path builder. Its base directory is fixed at
	// definition time; Path joins a relative fragment onto it. FolderFunc
	// values are immutable once created, so they may be shared freely.
	FolderFunc struct {
		name     string
		accessor string
		root     string
		postpend string
		base     string
	}

	// Entry is one row of a registry listing.
	Entry struct {
		// Accessor is the derived accessor name ("ff" + name).
		Accessor string
		// Base is the folder function's effective base directory.
		Base string
	}

	// Registry owns the mutable mapping from accessor names to folder
	// functions. Define inserts or replaces entries; Invoke, List, Exists
	// and Func read them. All methods are safe for concurrent use.
	Registry struct {
		resolver *Resolver

		mu    sync.RWMutex
		funcs map[string]*FolderFunc
		order []string // accessor names in first-definition order
	}

	defineOptions struct {
		root     string
		variable string
		postpend string
	}

	// DefineOption customizes a single Define call.
	DefineOption func(*defineOptions)
)

// WithRoot supplies the base path directly, bypassing resolution entirely.
// An empty value is ignored.
func WithRoot(root string) DefineOption {
	return func(o *defineOptions) { o.root = root }
}

// WithVar names the configuration variable to resolve the root from, when
// it differs from the folder function's own name.
func WithVar(variable string) DefineOption {
	return func(o *defineOptions) { o.variable = variable }
}

// WithPostpend appends a fixed subfolder to the root at definition time.
// All later invocations build paths under root/postpend.
func WithPostpend(postpend string) DefineOption {
	return func(o *defineOptions) { o.postpend = postpend }
}

// NewRegistry creates an empty registry that resolves roots through
// resolver when Define is called without an explicit root.
func NewRegistry(resolver *Resolver) *Registry {
	return &Registry{
		resolver: resolver,
		funcs:    make(map[string]*FolderFunc),
	}
}

// Define creates a folder function named name and stores it under its
// derived accessor name, replacing any previous definition silently.
// The root is determined in priority order:
//
//  1. WithRoot, used verbatim with no resolution;
//  2. WithVar, resolved through the registry's resolver;
//  3. the name itself, resolved likewise.
//
// The effective base is root joined with the WithPostpend value (if any),
// computed once here and never recomputed. When resolution fails, Define
// returns an *UnresolvedError and leaves the registry unchanged.
func (r *Registry) Define(name string, opts ...DefineOption) (*FolderFunc, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	var o defineOptions
	for _, opt := range opts {
		opt(&o)
	}

	root := o.root
	if root == "" {
		variable := o.variable
		if variable == "" {
			variable = name
		}
		resolved, err := r.resolver.Resolve(variable)
		if err != nil {
			return nil, err
		}
		root = resolved
	}

	ff := &FolderFunc{
		name:     name,
		accessor: AccessorName(name),
		root:     root,
		postpend: o.postpend,
		base:     fspath.Join(root, o.postpend),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.funcs[ff.accessor]; !exists {
		r.order = append(r.order, ff.accessor)
	}
	r.funcs[ff.accessor] = ff

	return ff, nil
}

// Resolver returns the resolver consulted by Define when no explicit root
// is supplied.
func (r *Registry) Resolver() *Resolver {
	return r.resolver
}

// Func returns the folder function stored under accessor, if any.
func (r *Registry) Func(accessor string) (*FolderFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ff, ok := r.funcs[accessor]
	return ff, ok
}

// Invoke builds a path through the folder function stored under accessor.
// An empty fragment returns the effective base unchanged. No check is made
// that the produced path exists; this is pure string composition. When no
// folder function is registered under accessor, Invoke returns an
// *NotDefinedError.
func (r *Registry) Invoke(accessor, fragment string) (string, error) {
	ff, ok := r.Func(accessor)
	if !ok {
		return "", &NotDefinedError{Accessor: accessor}
	}
	return ff.Path(fragment), nil
}

// Exists reports whether a folder function is registered under accessor.
func (r *Registry) Exists(accessor string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.funcs[accessor]
	return ok
}

// List returns a snapshot of the registry in definition order. Redefining
// a name keeps its original position. The snapshot is detached from the
// registry; later definitions do not show up in it.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]Entry, 0, len(r.order))
	for _, accessor := range r.order {
		entries = append(entries, Entry{Accessor: accessor, Base: r.funcs[accessor].base})
	}
	return entries
}

// Len returns the number of registered folder functions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.funcs)
}

// Name returns the symbolic name the folder function was defined under.
func (f *FolderFunc) Name() string { return f.name }

// Accessor returns the derived accessor name ("ff" + name).
func (f *FolderFunc) Accessor() string { return f.accessor }

// Root returns the resolved or explicitly supplied base path.
func (f *FolderFunc) Root() string { return f.root }

// Postpend returns the fixed subfolder appended at definition time, or "".
func (f *FolderFunc) Postpend() string { return f.postpend }

// Base returns the effective base directory (root joined with postpend).
func (f *FolderFunc) Base() string { return f.base }

// Path joins fragment onto the effective base with exactly one separator.
// An empty fragment returns the base unchanged, which is useful for
// obtaining the bare directory.
func (f *FolderFunc) Path(fragment string) string {
	if fragment == "" {
		return f.base
	}
	return fspath.Join(f.base, fragment)
}
