// SPDX-License-Identifier: MPL-2.0

// Package folderfn lets calling code obtain filesystem paths to named
// logical folders without hard-coding absolute paths. A folder function is
// a named path builder created once via Define and invoked any number of
// times with a relative fragment:
//
//	reg := folderfn.NewRegistry(folderfn.NewResolver(settings, folderfn.EnvSource{}))
//	ff, err := reg.Define("In", folderfn.WithRoot("/data/raw"))
//	...
//	ff.Path("sample.txt") // "/data/raw/sample.txt"
//
// When no explicit root is given, Define resolves one by querying the
// registry's configuration sources in priority order, trying the key as
// given, then ALL-UPPERCASE, then all-lowercase, per source. Each defined
// function is stored under a derived accessor name ("ff" + the name), so
// call sites that only know the accessor string can look it up:
//
//	reg.Invoke("ffIn", "sample.txt")
//
// The package also holds a process-wide default registry backed by an
// in-process settings store and the environment; see Default and Reset.
package folderfn
