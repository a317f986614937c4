// Package cmd provides the command-line interface for offboard.
//
// This package contains the root command and its subcommands:
//   - run: remove a deployment's GitOps footprint from the cluster
//   - plan: list the operations run would perform
//   - filter: drop a deployment's blocks from a subscriptions list
//   - config: scaffold, inspect and describe offboarding configs
package cmd
