package v1alpha1

import (
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Default values shared by every Argo CD installation.
const (
	DefaultNamespace          = "argocd"
	DefaultCascade            = CascadeForeground
	DefaultConfigMap          = "argocd-notifications-cm"
	DefaultSecret             = "argocd-notifications-secret" //nolint:gosec // object name, not a credential
	DefaultController         = "argocd-notifications-controller"
	DefaultSubscriptionsKey   = "subscriptions"
	DefaultSubscriptionMarker = "- recipients:"
	DefaultSharedSecretKey    = "slack-token" //nolint:gosec // data key name, not a credential
	DefaultPartOfLabel        = "app.kubernetes.io/part-of"

	DefaultDeletionTimeout = 2 * time.Minute
	DefaultPollInterval    = 2 * time.Second
	DefaultSettleDelay     = 10 * time.Second
)

// NewOffboarding creates an Offboarding with TypeMeta and default timing set.
// Timing is filled here rather than in SetDefaults so a decoded zero settle
// delay survives.
func NewOffboarding() *Offboarding {
	return &Offboarding{
		TypeMeta: metav1.TypeMeta{
			Kind:       Kind,
			APIVersion: APIVersion,
		},
		Spec: Spec{
			Timing: DefaultTiming(),
		},
	}
}

// DefaultTiming returns the default waits of an offboarding run.
func DefaultTiming() Timing {
	return Timing{
		DeletionTimeout: metav1.Duration{Duration: DefaultDeletionTimeout},
		PollInterval:    metav1.Duration{Duration: DefaultPollInterval},
		SettleDelay:     metav1.Duration{Duration: DefaultSettleDelay},
	}
}

// SetDefaults fills every empty field. Names derived from the application
// are only filled when spec.application is set.
func (o *Offboarding) SetDefaults() {
	if o.APIVersion == "" {
		o.APIVersion = APIVersion
	}

	if o.Kind == "" {
		o.Kind = Kind
	}

	o.Spec.ArgoCD.setDefaults(o.Spec.Application, o.Spec.Environment)
	o.Spec.Notifications.setDefaults(o.Spec.Application)
	o.Spec.Timing.setDefaults()

	if o.Spec.Application == "" {
		return
	}

	if len(o.Spec.Secrets) == 0 {
		o.Spec.Secrets = []string{o.Spec.Application + "-repo-creds"}
	}

	if o.Spec.LabelSelector == "" {
		o.Spec.LabelSelector = DefaultPartOfLabel + "=" + o.Spec.Application
	}
}

func (a *ArgoCD) setDefaults(application, environment string) {
	if a.Namespace == "" {
		a.Namespace = DefaultNamespace
	}

	if a.Cascade == "" {
		a.Cascade = DefaultCascade
	}

	if application == "" {
		return
	}

	if a.ParentApplication == "" {
		a.ParentApplication = application + "-apps"
	}

	if a.ChildApplication == "" {
		a.ChildApplication = application
		if environment != "" {
			a.ChildApplication = application + "-" + environment
		}
	}
}

func (n *Notifications) setDefaults(application string) {
	if n.ConfigMap == "" {
		n.ConfigMap = DefaultConfigMap
	}

	if n.Secret == "" {
		n.Secret = DefaultSecret
	}

	if n.Controller == "" {
		n.Controller = DefaultController
	}

	if n.SubscriptionsKey == "" {
		n.SubscriptionsKey = DefaultSubscriptionsKey
	}

	if n.SubscriptionMarker == "" {
		n.SubscriptionMarker = DefaultSubscriptionMarker
	}

	if n.SharedSecretKey == "" {
		n.SharedSecretKey = DefaultSharedSecretKey
	}

	if application == "" {
		return
	}

	if n.SubscriptionTarget == "" {
		n.SubscriptionTarget = application
	}

	if len(n.ServiceKeys) == 0 {
		n.ServiceKeys = []string{"service.webhook." + application}
	}

	if len(n.SecretKeys) == 0 {
		n.SecretKeys = []string{application + "-token"}
	}
}

// setDefaults replaces zero waits that cannot mean anything. A zero settle
// delay is kept: it skips the pause.
func (t *Timing) setDefaults() {
	if t.DeletionTimeout.Duration == 0 {
		t.DeletionTimeout = metav1.Duration{Duration: DefaultDeletionTimeout}
	}

	if t.PollInterval.Duration == 0 {
		t.PollInterval = metav1.Duration{Duration: DefaultPollInterval}
	}
}
