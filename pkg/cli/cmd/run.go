package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/devantler-tech/offboard/pkg/cli/flags"
	"github.com/devantler-tech/offboard/pkg/cli/ui/confirm"
	"github.com/devantler-tech/offboard/pkg/client/argocd"
	runtime "github.com/devantler-tech/offboard/pkg/di"
	configmanagerinterface "github.com/devantler-tech/offboard/pkg/io/config-manager"
	configmanager "github.com/devantler-tech/offboard/pkg/io/config-manager/offboard"
	"github.com/devantler-tech/offboard/pkg/svc/offboarder"
	"github.com/devantler-tech/offboard/pkg/timer"
	"github.com/devantler-tech/offboard/pkg/utils/log"
	"github.com/devantler-tech/offboard/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// ErrInvalidOutput is returned for an unsupported --output value.
var ErrInvalidOutput = errors.New("invalid output format")

const runLongDesc = `Remove a deployment's GitOps footprint from the cluster.

The run performs, in order:
  1. Delete the parent Application and wait for it to disappear
  2. Pause for the settle delay
  3. Delete the child Application
  4. Delete the deployment's Secrets
  5. Prune its service keys and subscriptions from the notifications ConfigMap
  6. Prune its keys from the notifications Secret (the shared key is kept)
  7. Restart the notifications controller
  8. Delete leftover Applications and Secrets matching the label selector

Objects that are already gone count as success, so a run can be repeated.
By default the run stops at the first unexpected error; --best-effort keeps
going and reports every failure at the end.

The config is resolved in the following priority order:
  1. From flags
  2. From OFFBOARD_* environment variables
  3. From --config, ./offboard.yaml or $HOME/.config/offboard/offboard.yaml
  4. Defaults derived from the application name`

// runOptions are the flags of run and plan.
type runOptions struct {
	yes        bool
	dryRun     bool
	bestEffort bool
	output     string
}

// NewRunCmd creates and returns the run command.
func NewRunCmd(runtimeContainer *runtime.Runtime, globals *flags.Globals) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:           "run",
		Short:         "Offboard a deployment",
		Long:          runLongDesc,
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

	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "List the operations without changing the cluster")
	cmd.Flags().BoolVar(&opts.bestEffort, "best-effort", false, "Continue after unexpected errors")
	addOutputFlag(cmd, &opts.output)

	return cmd
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(
		output,
		"output",
		"o",
		string(offboarder.FormatTable),
		fmt.Sprintf("Report format (%s)", strings.Join(offboarder.Formats(), ", ")),
	)
}

func parseFormat(output string) (offboarder.Format, error) {
	if !slices.Contains(offboarder.Formats(), output) {
		return "", fmt.Errorf(
			"%w: %q (valid options: %s)",
			ErrInvalidOutput,
			output,
			strings.Join(offboarder.Formats(), ", "),
		)
	}

	return offboarder.Format(output), nil
}

// runOffboard loads the config, confirms with the user and performs the run.
// A dry run never creates cluster clients.
func runOffboard(
	cmd *cobra.Command,
	injector runtime.Injector,
	tmr timer.Timer,
	globals *flags.Globals,
	manager *configmanager.ConfigManager,
	opts runOptions,
) error {
	format, err := parseFormat(opts.output)
	if err != nil {
		return err
	}

	out := notify.NewStageSeparatingWriter(cmd.OutOrStdout())
	timing := flags.MaybeTimer(cmd, tmr)

	tmr.Start()

	manager.Writer = out
	manager.SetConfigFile(globals.ConfigFile)

	cfg, err := manager.Load(configmanagerinterface.LoadOptions{Timer: timing})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.New(cmd.OutOrStderr(), globals.ResolveLogLevel())
	if err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	var argoManager argocd.Manager

	if !opts.dryRun {
		factory, err := runtime.ResolveClientsFactory(injector)
		if err != nil {
			return err
		}

		clients, err := factory.Create(globals.Kube)
		if err != nil {
			return fmt.Errorf("failed to create cluster clients: %w", err)
		}

		argoManager = argocd.NewManager(
			clients.Clientset,
			clients.Dynamic,
			cfg.Spec.ArgoCD.Namespace,
			argocd.WithLogger(logger),
		)
	}

	off, err := offboarder.New(argoManager, cfg, offboarder.Options{
		DryRun:     opts.dryRun,
		BestEffort: opts.bestEffort,
		Writer:     out,
		Logger:     logger,
		Timer:      timing,
	})
	if err != nil {
		return fmt.Errorf("failed to create offboarder: %w", err)
	}

	if !opts.dryRun && !confirm.ShouldSkipPrompt(opts.yes) {
		confirm.ShowPreview(out, off.Plan())

		if !confirm.PromptForConfirmation(out) {
			return confirm.ErrOffboardingCancelled
		}
	}

	tmr.NewStage()

	report, runErr := off.Run(cmd.Context())

	renderErr := report.Render(cmd.OutOrStdout(), format)
	if renderErr != nil {
		renderErr = fmt.Errorf("failed to render report: %w", renderErr)
	}

	return errors.Join(runErr, renderErr)
}
