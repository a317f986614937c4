package configmanager

import (
	"github.com/devantler-tech/offboard/pkg/apis/offboard/v1alpha1"
)

// FieldSelector binds one config field to a command-line flag.
type FieldSelector[T any] struct {
	Selector    func(*T) any // Returns a pointer to the field
	Flag        string       // Flag name
	Description string       // Human-readable description for the flag
}

// DefaultFieldSelectors returns the flags every offboarding command accepts.
func DefaultFieldSelectors() []FieldSelector[v1alpha1.Offboarding] {
	return []FieldSelector[v1alpha1.Offboarding]{
		{
			Selector:    func(o *v1alpha1.Offboarding) any { return &o.Spec.Application },
			Flag:        "application",
			Description: "Deployment identifier to offboard",
		},
		{
			Selector:    func(o *v1alpha1.Offboarding) any { return &o.Spec.Environment },
			Flag:        "environment",
			Description: "Environment of the deployment (used in the child Application name)",
		},
		{
			Selector:    func(o *v1alpha1.Offboarding) any { return &o.Spec.ArgoCD.Namespace },
			Flag:        "argocd-namespace",
			Description: "Namespace Argo CD runs in",
		},
		{
			Selector:    func(o *v1alpha1.Offboarding) any { return &o.Spec.ArgoCD.Cascade },
			Flag:        "cascade",
			Description: "Deletion propagation for Applications",
		},
		{
			Selector:    func(o *v1alpha1.Offboarding) any { return &o.Spec.Secrets },
			Flag:        "secrets",
			Description: "Secrets to delete from the Argo CD namespace",
		},
		{
			Selector:    func(o *v1alpha1.Offboarding) any { return &o.Spec.LabelSelector },
			Flag:        "label-selector",
			Description: "Selector for leftover Applications and Secrets",
		},
		{
			Selector:    func(o *v1alpha1.Offboarding) any { return &o.Spec.Notifications.SubscriptionTarget },
			Flag:        "subscription-target",
			Description: "Substring identifying the deployment's notification subscriptions",
		},
		{
			Selector:    func(o *v1alpha1.Offboarding) any { return &o.Spec.Timing.DeletionTimeout },
			Flag:        "deletion-timeout",
			Description: "How long to wait for the parent Application to disappear",
		},
		{
			Selector:    func(o *v1alpha1.Offboarding) any { return &o.Spec.Timing.SettleDelay },
			Flag:        "settle-delay",
			Description: "Pause after the parent Application is gone",
		},
	}
}
