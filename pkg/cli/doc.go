// Package cli provides the command tree and its helpers.
//
//   - cli/cmd: root command and subcommands
//   - cli/flags: persistent flags and timing detection
//   - cli/ui: confirmation prompt and error normalization
package cli
