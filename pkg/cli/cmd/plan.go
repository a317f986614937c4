package cmd

import (
	"github.com/devantler-tech/offboard/pkg/cli/flags"
	runtime "github.com/devantler-tech/offboard/pkg/di"
	configmanager "github.com/devantler-tech/offboard/pkg/io/config-manager/offboard"
	"github.com/devantler-tech/offboard/pkg/timer"
	"github.com/spf13/cobra"
)

// NewPlanCmd creates and returns the plan command, a dry run without a prompt.
func NewPlanCmd(runtimeContainer *runtime.Runtime, globals *flags.Globals) *cobra.Command {
	opts := runOptions{yes: true, dryRun: true}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "List the operations run would perform",
		Long: `List the operations run would perform, in order, without connecting to the
cluster. Equivalent to "offboard run --dry-run".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	manager := configmanager.NewCommandConfigManager(cmd, "", configmanager.DefaultFieldSelectors())

	cmd.RunE = runtime.RunEWithRuntime(
		runtimeContainer,
		runtime.WithTimer(func(cmd *cobra.Command, injector runtime.Injector, tmr timer.Timer) error {
			return runOffboard(cmd, injector, tmr, globals, manager, opts)
		}),
	)

	addOutputFlag(cmd, &opts.output)

	return cmd
}
