package config

import (
	"fmt"

	"github.com/devantler-tech/offboard/pkg/apis/offboard/v1alpha1"
	"github.com/spf13/cobra"
)

// NewSchemaCmd creates and returns the config schema command.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the offboarding config",
		Long: `Print the JSON schema of the offboarding config. Point an editor's YAML
language server at it for completion and validation:

  # yaml-language-server: $schema=` + v1alpha1.SchemaID,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := v1alpha1.Schema()
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			if err != nil {
				return fmt.Errorf("failed to write schema: %w", err)
			}

			return nil
		},
	}
}
