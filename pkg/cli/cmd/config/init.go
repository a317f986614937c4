package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/devantler-tech/offboard/pkg/apis/offboard/v1alpha1"
	"github.com/devantler-tech/offboard/pkg/utils/notify"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// ErrConfigExists is returned when init would overwrite a config without --force.
var ErrConfigExists = errors.New("config file already exists")

// ErrApplicationRequired is returned when init runs without --application.
var ErrApplicationRequired = errors.New("--application is required")

const configFileMode = 0o600

type initOptions struct {
	application string
	environment string
	output      string
	force       bool
}

// NewInitCmd creates and returns the config init command.
func NewInitCmd() *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an offboarding config with every default filled in",
		Long: `Write an offboarding config for an application. Every name derived from the
application is written out so it can be reviewed and edited before a run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.application, "application", "a", "", "Deployment identifier to offboard")
	cmd.Flags().StringVarP(&opts.environment, "environment", "e", "", "Environment of the deployment")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "offboard.yaml", `File to write, or "-" for stdout`)
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing file")

	return cmd
}

// Scaffold returns a defaulted config for application in environment.
func Scaffold(application, environment string) *v1alpha1.Offboarding {
	cfg := v1alpha1.NewOffboarding()
	cfg.Spec.Application = application
	cfg.Spec.Environment = environment
	cfg.SetDefaults()

	return cfg
}

func runInit(cmd *cobra.Command, opts initOptions) error {
	if opts.application == "" {
		return ErrApplicationRequired
	}

	cfg := Scaffold(opts.application, opts.environment)

	err := cfg.Validate()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if opts.output == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		if err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		return nil
	}

	if !opts.force {
		_, statErr := os.Stat(opts.output)
		if statErr == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, opts.output)
		}
	}

	err = os.WriteFile(opts.output, data, configFileMode)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}

	notify.Successf(cmd.OutOrStdout(), "created '%s'", opts.output)

	return nil
}
