// Package errorhandler runs cobra commands and turns their stderr chatter into
// a single error value.
package errorhandler

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

// Normalizer turns captured cobra error output into a message.
type Normalizer interface {
	Normalize(raw string) string
}

// Option configures an Executor.
type Option func(*Executor)

// WithNormalizer replaces the DefaultNormalizer.
func WithNormalizer(normalizer Normalizer) Option {
	return func(e *Executor) {
		if normalizer != nil {
			e.normalizer = normalizer
		}
	}
}

// Executor runs a command while capturing cobra's error stream.
type Executor struct {
	normalizer Normalizer
}

// NewExecutor constructs an Executor.
func NewExecutor(opts ...Option) *Executor {
	executor := &Executor{normalizer: DefaultNormalizer{}}

	for _, opt := range opts {
		opt(executor)
	}

	return executor
}

// Execute runs cmd. It returns nil on success, or a *CommandError holding the
// normalized stderr output and the original error.
func (e *Executor) Execute(cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	var errBuf bytes.Buffer

	originalErrWriter := cmd.ErrOrStderr()

	cmd.SetErr(&errBuf)
	defer cmd.SetErr(originalErrWriter)

	err := cmd.Execute()
	if err == nil {
		return nil
	}

	message := e.normalizer.Normalize(errBuf.String())

	if message == "" && errors.Is(err, context.Canceled) {
		message = "interrupted"
	}

	return &CommandError{
		message: message,
		cause:   err,
	}
}

// CommandError is a command failure with its normalized stderr output.
type CommandError struct {
	message string
	cause   error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.cause == nil:
		return e.message
	case e.message != "":
		if strings.Contains(e.message, e.cause.Error()) {
			return e.message
		}

		return e.message + ": " + e.cause.Error()
	default:
		return e.cause.Error()
	}
}

// Unwrap exposes the underlying cause for errors.Is/errors.As consumers.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// DefaultNormalizer trims the output and drops cobra's "Error: " prefix.
type DefaultNormalizer struct{}

// Normalize trims whitespace, removes a leading "Error:" prefix and keeps usage hints
// on the following lines.
func (DefaultNormalizer) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	first, rest, found := strings.Cut(trimmed, "\n")
	first = strings.TrimPrefix(strings.TrimSpace(first), "Error: ")

	if !found {
		return first
	}

	return first + "\n" + rest
}
