// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for folderfun.
//
// This package implements the Cobra command hierarchy for the folderfun
// CLI: resolving configuration names, building folder paths, listing the
// folder functions declared by the configuration, and managing the config
// file itself.
package cmd
