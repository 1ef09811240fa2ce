// SPDX-License-Identifier: MPL-2.0

// Package issue provides the user-facing error surface for the folderfun
// CLI: ActionableError carries operation/resource context and fix
// suggestions through the error chain, and the issue catalog holds
// markdown help pages rendered with glamour for the recurring failure
// modes (unresolved names, missing config).
package issue
