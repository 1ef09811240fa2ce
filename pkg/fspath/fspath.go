// SPDX-License-Identifier: MPL-2.0

// Package fspath provides the path-splicing primitives shared by the
// folderfn library and the CLI. Unlike path/filepath, Join here performs no
// cleaning beyond the boundary between parts: interior separators, dots, and
// trailing separators of the final part are preserved exactly as given.
package fspath

import "strings"

// Separator is the separator inserted between joined parts. Produced paths
// always use forward slashes; translating them for a particular platform is
// the caller's concern.
const Separator = "/"

// Join splices parts together with exactly one separator at each boundary,
// regardless of whether the left part already ends with one or the right
// part starts with one. Empty parts are skipped, so Join(base) and
// Join(base, "") both return base unchanged.
//
//	Join("/a/", "b")   => "/a/b"
//	Join("/a", "/b")   => "/a/b"
//	Join("/a/", "/b")  => "/a/b"
//	Join("a//b", "c")  => "a//b/c"
func Join(parts ...string) string {
	joined := ""
	first := true
	for _, part := range parts {
		if part == "" {
			continue
		}
		if first {
			joined = part
			first = false
			continue
		}
		joined = strings.TrimRight(joined, Separator) + Separator + strings.TrimLeft(part, Separator)
	}
	return joined
}

// HasSeparatorSuffix reports whether p ends with the separator. Used by
// callers that want to display paths consistently without rewriting them.
func HasSeparatorSuffix(p string) bool {
	return strings.HasSuffix(p, Separator)
}
