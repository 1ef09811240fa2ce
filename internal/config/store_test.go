// SPDX-License-Identifier: MPL-2.0

package config

import (
	"testing"

	"folderfun/internal/testutil"
)

func TestStoreLookupPrecedence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings["DATA"] = "/from/file"

	store := NewStore(cfg)

	if v, ok := store.Lookup("DATA"); !ok || v != "/from/file" {
		t.Errorf("Lookup(DATA) = %q, %v; want file value", v, ok)
	}

	store.Set("DATA", "/from/override")
	if v, _ := store.Lookup("DATA"); v != "/from/override" {
		t.Errorf("Lookup(DATA) = %q, want override to shadow file value", v)
	}

	if _, ok := store.Lookup("MISSING"); ok {
		t.Error("Lookup(MISSING) reported a hit")
	}
}

func TestStoreLookupIsCaseExact(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings["Data"] = "/mixed"

	store := NewStore(cfg)

	if _, ok := store.Lookup("DATA"); ok {
		t.Error("Lookup(DATA) matched the Data key; store lookups must be case-exact")
	}
	if v, ok := store.Lookup("Data"); !ok || v != "/mixed" {
		t.Errorf("Lookup(Data) = %q, %v", v, ok)
	}
}

func TestStoreResolverPrefersStoreOverEnvironment(t *testing.T) {
	t.Cleanup(testutil.MustSetenv(t, "OUT", "/from/env"))

	cfg := DefaultConfig()
	cfg.Settings["OUT"] = "/from/settings"

	r := NewStore(cfg).NewResolver()
	got, err := r.Resolve("Out")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != "/from/settings" {
		t.Errorf("Resolve = %q, want settings store to win", got)
	}
}

func TestStoreResolverFallsBackToEnvironment(t *testing.T) {
	t.Cleanup(testutil.MustSetenv(t, "SCRATCH", "/from/env"))

	r := NewStore(DefaultConfig()).NewResolver()
	got, err := r.Resolve("Scratch")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != "/from/env" {
		t.Errorf("Resolve = %q, want environment fallback", got)
	}
}

func TestFolderEntryOptions(t *testing.T) {
	entry := FolderEntry{Var: "DATA", Postpend: "proj1"}
	if got := len(entry.Options()); got != 2 {
		t.Errorf("Options() produced %d options, want 2", got)
	}
	if got := len((FolderEntry{}).Options()); got != 0 {
		t.Errorf("Options() on empty entry produced %d options, want 0", got)
	}
}
