package cmd

import (
	"fmt"

	configcmd "github.com/devantler-tech/offboard/pkg/cli/cmd/config"
	"github.com/devantler-tech/offboard/pkg/cli/flags"
	"github.com/devantler-tech/offboard/pkg/cli/ui/errorhandler"
	runtime "github.com/devantler-tech/offboard/pkg/di"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return NewRootCmdWithRuntime(runtime.NewRuntime(), version, commit, date)
}

// NewRootCmdWithRuntime creates the root command on top of runtimeContainer.
func NewRootCmdWithRuntime(runtimeContainer *runtime.Runtime, version, commit, date string) *cobra.Command {
	globals := flags.NewGlobals()

	cmd := &cobra.Command{
		Use:   "offboard",
		Short: "Remove a deployment's GitOps footprint from an Argo CD cluster",
		Long: `offboard deletes the Argo CD Applications, Secrets and notification entries
that onboarding created for a deployment, then restarts the notifications
controller so it drops the removed subscriptions.`,
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	globals.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewRunCmd(runtimeContainer, globals))
	cmd.AddCommand(NewPlanCmd(runtimeContainer, globals))
	cmd.AddCommand(NewFilterCmd())
	cmd.AddCommand(configcmd.NewConfigCmd(globals))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func handleRootRunE(cmd *cobra.Command, _ []string) error {
	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}
