// SPDX-License-Identifier: MPL-2.0

package folderfn

import "sync"

// The default registry is the process-wide namespace of folder functions.
// It is built lazily on first use from an empty settings store and the
// process environment, in that priority order.
var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
	defaultSettings *Settings
)

// Default returns the process-wide registry, creating it on first use.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultLocked()
}

// DefaultSettings returns the settings store consulted by the default
// registry before the environment. Set and Unset on it take effect on the
// next Define call; already-defined folder functions are not recomputed.
func DefaultSettings() *Settings {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLocked()
	return defaultSettings
}

// Reset discards the default registry and its settings store. Call from
// test cleanup to restore a pristine process-wide state.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = nil
	defaultSettings = nil
}

func defaultLocked() *Registry {
	if defaultRegistry == nil {
		defaultSettings = NewSettings()
		defaultRegistry = NewRegistry(NewResolver(defaultSettings, EnvSource{}))
	}
	return defaultRegistry
}

// Define defines a folder function in the process-wide registry. See
// Registry.Define.
func Define(name string, opts ...DefineOption) (*FolderFunc, error) {
	return Default().Define(name, opts...)
}

// Path invokes a folder function in the process-wide registry by its
// accessor name. See Registry.Invoke.
func Path(accessor, fragment string) (string, error) {
	return Default().Invoke(accessor, fragment)
}

// Exists reports whether the process-wide registry holds accessor.
func Exists(accessor string) bool {
	return Default().Exists(accessor)
}

// List snapshots the process-wide registry in definition order.
func List() []Entry {
	return Default().List()
}

// Resolve runs the process-wide registry's resolver directly for an
// arbitrary configuration name.
func Resolve(name string) (string, error) {
	return Default().resolver.Resolve(name)
}
