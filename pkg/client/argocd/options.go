package argocd

import (
	"github.com/devantler-tech/offboard/pkg/utils/parallel"
	"github.com/sirupsen/logrus"
)

// Option configures a ManagerImpl.
type Option func(*ManagerImpl)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(m *ManagerImpl) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithConcurrency bounds the number of concurrent deletions of selected objects.
func WithConcurrency(limit int64) Option {
	return func(m *ManagerImpl) {
		m.executor = parallel.NewExecutor(limit)
	}
}

// ConfigPruneOptions selects what to remove from the notifications ConfigMap.
type ConfigPruneOptions struct {
	// Name of the ConfigMap.
	Name string
	// ServiceKeys are data keys owned by the deployment, removed when present.
	ServiceKeys []string
	// SubscriptionsKey is the data key holding the subscription list.
	SubscriptionsKey string
	// Marker opens a subscription block. Empty selects the default marker.
	Marker string
	// Target identifies the deployment's subscription blocks. Empty removes none.
	Target string
}

// SecretPruneOptions selects what to remove from the notifications Secret.
type SecretPruneOptions struct {
	// Name of the Secret.
	Name string
	// Keys are data keys owned by the deployment, removed when present.
	Keys []string
	// SharedKey is never removed, even when listed in Keys.
	SharedKey string
}

// Protects reports whether key is the shared credential.
func (o SecretPruneOptions) Protects(key string) bool {
	return key != "" && key == o.SharedKey
}

// PruneSummary describes what a prune removed.
type PruneSummary struct {
	// RemovedKeys are the data keys removed, in request order.
	RemovedKeys []string
	// SubscriptionsTotal is the number of subscription blocks found.
	SubscriptionsTotal int
	// SubscriptionsRemoved is the number of subscription blocks removed.
	SubscriptionsRemoved int
	// ProtectedKeys are requested keys that were kept because they are shared.
	ProtectedKeys []string
	// Warnings are non-fatal problems noticed while pruning.
	Warnings []string
}

// Changed reports whether the prune removed anything.
func (s PruneSummary) Changed() bool {
	return len(s.RemovedKeys) > 0 || s.SubscriptionsRemoved > 0
}
