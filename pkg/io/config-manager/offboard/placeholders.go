package configmanager

import (
	"slices"
	"strings"

	"github.com/devantler-tech/offboard/pkg/apis/offboard/v1alpha1"
	"github.com/devantler-tech/offboard/pkg/utils/envvar"
	"github.com/devantler-tech/offboard/pkg/utils/notify"
)

// placeholderFields returns every string field that may hold ${VAR} placeholders.
func placeholderFields(cfg *v1alpha1.Offboarding) ([]*string, []*[]string) {
	spec := &cfg.Spec

	strs := []*string{
		&spec.Application,
		&spec.Environment,
		&spec.Repository,
		&spec.ArgoCD.Namespace,
		&spec.ArgoCD.ParentApplication,
		&spec.ArgoCD.ChildApplication,
		&spec.Notifications.ConfigMap,
		&spec.Notifications.Secret,
		&spec.Notifications.Controller,
		&spec.Notifications.SubscriptionsKey,
		&spec.Notifications.SubscriptionTarget,
		&spec.Notifications.SharedSecretKey,
		&spec.LabelSelector,
	}

	lists := []*[]string{
		&spec.Secrets,
		&spec.Notifications.ServiceKeys,
		&spec.Notifications.SecretKeys,
	}

	return strs, lists
}

// expandPlaceholders replaces ${VAR} and ${VAR:-default} in the decoded config and
// warns about variables that are unset and have no default.
func (m *ConfigManager) expandPlaceholders(silent bool) {
	strs, lists := placeholderFields(m.Config)

	var missing []string

	for _, field := range strs {
		missing = append(missing, envvar.Missing(*field)...)
		*field = envvar.Expand(*field)
	}

	for _, field := range lists {
		for _, value := range *field {
			missing = append(missing, envvar.Missing(value)...)
		}

		envvar.ExpandAll(*field)
	}

	slices.Sort(missing)

	if len(missing) > 0 && !silent {
		notify.Warningf(m.Writer, "unset environment variables expanded to empty: %s",
			strings.Join(slices.Compact(missing), ", "))
	}
}
