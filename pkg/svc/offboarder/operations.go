package offboarder

import (
	"context"
	"fmt"
	"strings"

	"github.com/devantler-tech/offboard/pkg/client/argocd"
	"github.com/devantler-tech/offboard/pkg/utils/notify"
)

// operations lists every call of a run in execution order.
func (o *Offboarder) operations() []operation {
	spec := o.config.Spec
	propagation := spec.ArgoCD.Cascade.PropagationPolicy()

	ops := []operation{
		{
			phase:       1,
			step:        StepDeleteParent,
			target:      spec.ArgoCD.ParentApplication,
			description: fmt.Sprintf("delete Application with %s propagation", propagation),
			run: func(ctx context.Context) (argocd.Outcome, string, error) {
				outcome, err := o.manager.DeleteApplication(ctx, spec.ArgoCD.ParentApplication, propagation)

				return outcome, "", err //nolint:wrapcheck // wrapped by the manager
			},
		},
		{
			phase:  1,
			step:   StepWaitParent,
			target: spec.ArgoCD.ParentApplication,
			description: fmt.Sprintf("wait up to %s for the Application to disappear",
				spec.Timing.DeletionTimeout.Duration),
			run: func(ctx context.Context) (argocd.Outcome, string, error) {
				outcome, err := o.manager.WaitForApplicationDeletion(ctx, spec.ArgoCD.ParentApplication,
					spec.Timing.DeletionTimeout.Duration, spec.Timing.PollInterval.Duration)
				if outcome == argocd.OutcomeTimedOut {
					return outcome, fmt.Sprintf("still present after %s", spec.Timing.DeletionTimeout.Duration), err
				}

				return outcome, "", err //nolint:wrapcheck // wrapped by the manager
			},
		},
		{
			phase:       2,
			step:        StepSettle,
			target:      spec.Timing.SettleDelay.Duration.String(),
			description: "pause before touching the remaining objects",
			run: func(ctx context.Context) (argocd.Outcome, string, error) {
				if spec.Timing.SettleDelay.Duration <= 0 {
					return argocd.OutcomeSkipped, "no settle delay configured", nil
				}

				err := o.opts.Sleep(ctx, spec.Timing.SettleDelay.Duration)
				if err != nil {
					return argocd.OutcomeFailed, "", err
				}

				return argocd.OutcomeWaited, "", nil
			},
		},
	}

	if spec.ArgoCD.ChildApplication != "" && spec.ArgoCD.ChildApplication != spec.ArgoCD.ParentApplication {
		ops = append(ops, operation{
			phase:       3,
			step:        StepDeleteChild,
			target:      spec.ArgoCD.ChildApplication,
			description: "delete the child Application if it survived the parent",
			run: func(ctx context.Context) (argocd.Outcome, string, error) {
				exists, err := o.manager.ApplicationExists(ctx, spec.ArgoCD.ChildApplication)
				if err != nil {
					return argocd.OutcomeFailed, "", err //nolint:wrapcheck // wrapped by the manager
				}

				if !exists {
					return argocd.OutcomeNotFound, "removed with the parent", nil
				}

				outcome, err := o.manager.DeleteApplication(ctx, spec.ArgoCD.ChildApplication, propagation)

				return outcome, "", err //nolint:wrapcheck // wrapped by the manager
			},
		})
	}

	for _, name := range spec.Secrets {
		ops = append(ops, operation{
			phase:       4,
			step:        StepDeleteSecret,
			target:      name,
			description: "delete Secret",
			run: func(ctx context.Context) (argocd.Outcome, string, error) {
				outcome, err := o.manager.DeleteSecret(ctx, name)

				return outcome, "", err //nolint:wrapcheck // wrapped by the manager
			},
		})
	}

	return append(ops, o.notificationOperations()...)
}

func (o *Offboarder) notificationOperations() []operation {
	spec := o.config.Spec
	notifications := spec.Notifications
	propagation := spec.ArgoCD.Cascade.PropagationPolicy()

	return []operation{
		{
			phase:  5,
			step:   StepPruneConfigMap,
			target: notifications.ConfigMap,
			description: fmt.Sprintf("remove keys [%s] and %q subscriptions matching %q",
				joinNames(notifications.ServiceKeys), notifications.SubscriptionsKey, notifications.SubscriptionTarget),
			run: func(ctx context.Context) (argocd.Outcome, string, error) {
				outcome, summary, err := o.manager.PruneNotificationsConfig(ctx, argocd.ConfigPruneOptions{
					Name:             notifications.ConfigMap,
					ServiceKeys:      notifications.ServiceKeys,
					SubscriptionsKey: notifications.SubscriptionsKey,
					Marker:           notifications.SubscriptionMarker,
					Target:           notifications.SubscriptionTarget,
				})
				o.warn(summary.Warnings)

				return outcome, describeConfigPrune(summary), err //nolint:wrapcheck // wrapped by the manager
			},
		},
		{
			phase:  6,
			step:   StepPruneSecret,
			target: notifications.Secret,
			description: fmt.Sprintf("remove keys [%s], keep %q",
				joinNames(notifications.SecretKeys), notifications.SharedSecretKey),
			run: func(ctx context.Context) (argocd.Outcome, string, error) {
				outcome, summary, err := o.manager.PruneNotificationsSecret(ctx, argocd.SecretPruneOptions{
					Name:      notifications.Secret,
					Keys:      notifications.SecretKeys,
					SharedKey: notifications.SharedSecretKey,
				})

				return outcome, describeSecretPrune(summary), err //nolint:wrapcheck // wrapped by the manager
			},
		},
		{
			phase:       7,
			step:        StepRestartController,
			target:      notifications.Controller,
			description: "rollout restart the Deployment",
			run: func(ctx context.Context) (argocd.Outcome, string, error) {
				outcome, err := o.manager.RestartController(ctx, notifications.Controller)

				return outcome, "", err //nolint:wrapcheck // wrapped by the manager
			},
		},
		{
			phase:       8,
			step:        StepDeleteSelectedApplications,
			target:      spec.LabelSelector,
			description: "delete every Application matching the selector",
			run: func(ctx context.Context) (argocd.Outcome, string, error) {
				names, err := o.manager.DeleteApplicationsBySelector(ctx, spec.LabelSelector, propagation)

				return selectionOutcome(names), describeSelection(names), err //nolint:wrapcheck // wrapped by the manager
			},
		},
		{
			phase:       8,
			step:        StepDeleteSelectedSecrets,
			target:      spec.LabelSelector,
			description: "delete every Secret matching the selector",
			run: func(ctx context.Context) (argocd.Outcome, string, error) {
				names, err := o.manager.DeleteSecretsBySelector(ctx, spec.LabelSelector)

				return selectionOutcome(names), describeSelection(names), err //nolint:wrapcheck // wrapped by the manager
			},
		},
	}
}

func (o *Offboarder) warn(warnings []string) {
	for _, warning := range warnings {
		notify.Warningf(o.opts.Writer, "%s", warning)
	}
}

func selectionOutcome(names []string) argocd.Outcome {
	if len(names) == 0 {
		return argocd.OutcomeNotFound
	}

	return argocd.OutcomeDeleted
}

func describeSelection(names []string) string {
	if len(names) == 0 {
		return ""
	}

	return "deleted " + joinNames(names)
}

func describeConfigPrune(summary argocd.PruneSummary) string {
	if !summary.Changed() {
		return ""
	}

	var parts []string

	if len(summary.RemovedKeys) > 0 {
		parts = append(parts, "removed keys "+joinNames(summary.RemovedKeys))
	}

	if summary.SubscriptionsTotal > 0 {
		parts = append(parts, fmt.Sprintf("removed %d of %d subscriptions",
			summary.SubscriptionsRemoved, summary.SubscriptionsTotal))
	}

	return strings.Join(parts, "; ")
}

func describeSecretPrune(summary argocd.PruneSummary) string {
	var parts []string

	if len(summary.RemovedKeys) > 0 {
		parts = append(parts, "removed keys "+joinNames(summary.RemovedKeys))
	}

	if len(summary.ProtectedKeys) > 0 {
		parts = append(parts, "kept shared key "+joinNames(summary.ProtectedKeys))
	}

	return strings.Join(parts, "; ")
}
