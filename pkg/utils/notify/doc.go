// Package notify writes formatted, coloured messages for CLI users.
//
// Message types: success (✔), error (✗), warning (⚠), info (ℹ), activity (►),
// and titles with a custom emoji. Wrap command output with
// [NewStageSeparatingWriter] to get a blank line before every title.
package notify
