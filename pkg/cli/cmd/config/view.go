package config

import (
	"fmt"

	"github.com/devantler-tech/offboard/pkg/cli/flags"
	configmanagerinterface "github.com/devantler-tech/offboard/pkg/io/config-manager"
	configmanager "github.com/devantler-tech/offboard/pkg/io/config-manager/offboard"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// NewViewCmd creates and returns the config view command.
func NewViewCmd(globals *flags.Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print the merged config a run would use",
		Long: `Print the config after merging the config file, OFFBOARD_* environment
variables and flags, with defaults filled in. The result is not validated.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	manager := configmanager.NewCommandConfigManager(cmd, "", configmanager.DefaultFieldSelectors())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		manager.SetConfigFile(globals.ConfigFile)

		cfg, err := manager.Load(configmanagerinterface.LoadOptions{Silent: true, SkipValidation: true})
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}

		_, err = cmd.OutOrStdout().Write(data)
		if err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		return nil
	}

	return cmd
}
