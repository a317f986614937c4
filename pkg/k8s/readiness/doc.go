// Package readiness provides polling utilities for Kubernetes object state.
//
// Waits are bounded: callers decide whether a timeout is fatal. The offboarding
// flow treats a deletion that outlives its timeout as a warning and moves on.
//
// Key features:
//   - Deletion polling (WaitForDeletion)
package readiness
