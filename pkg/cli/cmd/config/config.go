// Package config provides the config command group: init, view and schema.
package config

import (
	"github.com/devantler-tech/offboard/pkg/cli/flags"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates and returns the config command group.
func NewConfigCmd(globals *flags.Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage offboarding configs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The err can safely be ignored, as it can never fail at runtime.
			_ = cmd.Help()

			return nil
		},
		SilenceUsage: true,
	}

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewViewCmd(globals))
	cmd.AddCommand(NewSchemaCmd())

	return cmd
}
