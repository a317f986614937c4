package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/devantler-tech/offboard/pkg/subscription"
	"github.com/devantler-tech/offboard/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// ErrTargetRequired is returned when filter runs without --target.
var ErrTargetRequired = errors.New("--target is required")

// stdinPath selects standard input for --file.
const stdinPath = "-"

type filterOptions struct {
	target   string
	marker   string
	file     string
	validate bool
}

// NewFilterCmd creates and returns the filter command.
func NewFilterCmd() *cobra.Command {
	var opts filterOptions

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Remove a deployment's blocks from a subscriptions list",
		Long: `Read a notification subscriptions list and print it without the blocks that
mention the target. A block starts at a marker line ("- recipients:" by
default) and runs to the next one. Everything else is printed byte for byte.

A summary is written to stderr.`,
		Example: `  kubectl get cm argocd-notifications-cm -n argocd -o jsonpath='{.data.subscriptions}' \
    | offboard filter --target shop`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFilter(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "Substring identifying the blocks to remove")
	cmd.Flags().StringVar(&opts.marker, "marker", subscription.DefaultMarker, "Line prefix that opens a block")
	cmd.Flags().StringVarP(&opts.file, "file", "f", stdinPath, `File to read, or "-" for stdin`)
	cmd.Flags().BoolVar(&opts.validate, "validate", true, "Warn when the output is not a YAML sequence")

	return cmd
}

func runFilter(cmd *cobra.Command, opts filterOptions) error {
	if opts.target == "" {
		return ErrTargetRequired
	}

	input, err := readInput(cmd, opts.file)
	if err != nil {
		return err
	}

	output, result := subscription.Filter(string(input), opts.marker, opts.target)

	_, err = io.WriteString(cmd.OutOrStdout(), output)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	notify.Infof(cmd.OutOrStderr(), "removed %d of %d blocks matching %q", result.Removed, result.Total, opts.target)

	if opts.validate && output != "" {
		validateErr := subscription.Validate(output)
		if validateErr != nil {
			notify.Warningf(cmd.OutOrStderr(), "filtered list does not parse: %v", validateErr)
		}
	}

	return nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == stdinPath || path == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from --file
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return data, nil
}
