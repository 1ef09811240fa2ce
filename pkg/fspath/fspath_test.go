// SPDX-License-Identifier: MPL-2.0

package fspath

import "testing"

func TestJoinNormalizesBoundarySeparators(t *testing.T) {
	// All four separator placements must collapse to the same result.
	cases := []struct {
		base     string
		fragment string
	}{
		{"/a", "b"},
		{"/a/", "b"},
		{"/a", "/b"},
		{"/a/", "/b"},
	}

	for _, tc := range cases {
		if got := Join(tc.base, tc.fragment); got != "/a/b" {
			t.Errorf("Join(%q, %q) = %q, want %q", tc.base, tc.fragment, got, "/a/b")
		}
	}
}

func TestJoinPreservesInteriorContent(t *testing.T) {
	cases := []struct {
		name  string
		parts []string
		want  string
	}{
		{"interior double separator kept", []string{"a//b", "c"}, "a//b/c"},
		{"dot segments kept", []string{"/data/./raw", "x"}, "/data/./raw/x"},
		{"trailing separator of last part kept", []string{"/data", "sub/"}, "/data/sub/"},
		{"three parts", []string{"/srv/", "/data/", "proj1"}, "/srv/data/proj1"},
		{"bare root", []string{"/", "b"}, "/b"},
		{"relative base", []string{"data", "b"}, "data/b"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Join(tc.parts...); got != tc.want {
				t.Errorf("Join(%v) = %q, want %q", tc.parts, got, tc.want)
			}
		})
	}
}

func TestJoinSkipsEmptyParts(t *testing.T) {
	if got := Join("/data/raw/", ""); got != "/data/raw/" {
		t.Errorf("Join with empty fragment = %q, want base unchanged", got)
	}
	if got := Join("", "x"); got != "x" {
		t.Errorf("Join with empty base = %q, want %q", got, "x")
	}
	if got := Join(); got != "" {
		t.Errorf("Join() = %q, want empty string", got)
	}
}

func TestHasSeparatorSuffix(t *testing.T) {
	if !HasSeparatorSuffix("/a/") {
		t.Error("expected /a/ to have separator suffix")
	}
	if HasSeparatorSuffix("/a") {
		t.Error("expected /a to not have separator suffix")
	}
}
