// Package subscription filters Argo CD notification subscription blocks.
//
// The subscriptions value of the notifications ConfigMap is a YAML list stored
// as a single string. This package treats it as an ordered list of text
// blocks, each introduced by a marker line, and removes the blocks that
// mention a deployment identifier while leaving every other byte untouched.
//
// Key features:
//   - Block parsing that preserves the input byte-for-byte (Parse, List.String)
//   - Whole-block removal by substring match (List.Without, Filter)
//   - A YAML sanity check for the rewritten value (Validate)
package subscription
