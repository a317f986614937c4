package argocd

import (
	"context"
	"fmt"

	"github.com/devantler-tech/offboard/pkg/k8s"
	"github.com/devantler-tech/offboard/pkg/subscription"
	"github.com/sirupsen/logrus"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
)

// PruneNotificationsConfig removes the deployment's service keys and subscription blocks
// from the notifications ConfigMap in a single JSON patch.
//
// A missing ConfigMap yields OutcomeNotFound; nothing to remove yields OutcomeAlreadyRemoved.
func (m *ManagerImpl) PruneNotificationsConfig(
	ctx context.Context,
	opts ConfigPruneOptions,
) (Outcome, PruneSummary, error) {
	var summary PruneSummary

	configMaps := m.clientset.CoreV1().ConfigMaps(m.namespace)

	configMap, err := configMaps.Get(ctx, opts.Name, metav1.GetOptions{})

	found, err := k8s.Presence(err)
	if err != nil {
		return OutcomeFailed, summary, fmt.Errorf("get configmap %s/%s: %w", m.namespace, opts.Name, err)
	}

	if !found {
		return OutcomeNotFound, summary, nil
	}

	ops := make([]patchOperation, 0, len(opts.ServiceKeys)+1)

	for _, key := range opts.ServiceKeys {
		if key == opts.SubscriptionsKey {
			continue
		}

		if _, ok := configMap.Data[key]; ok {
			ops = append(ops, removeOp(key))
			summary.RemovedKeys = append(summary.RemovedKeys, key)
		}
	}

	if current, ok := configMap.Data[opts.SubscriptionsKey]; ok && opts.SubscriptionsKey != "" {
		filtered, result := subscription.Filter(current, opts.Marker, opts.Target)
		summary.SubscriptionsTotal = result.Total
		summary.SubscriptionsRemoved = result.Removed

		if result.Changed() {
			ops = append(ops, replaceOp(opts.SubscriptionsKey, filtered))

			if validateErr := subscription.Validate(filtered); validateErr != nil {
				summary.Warnings = append(summary.Warnings,
					fmt.Sprintf("filtered %s no longer parses as a YAML list: %v", opts.SubscriptionsKey, validateErr))
			}
		}
	}

	if len(ops) == 0 {
		return OutcomeAlreadyRemoved, summary, nil
	}

	patch, err := encodePatch(ops)
	if err != nil {
		return OutcomeFailed, summary, err
	}

	m.logger.WithFields(logrus.Fields{
		"configmap": opts.Name,
		"patch":     string(patch),
	}).Debug("patching notifications ConfigMap")

	_, err = configMaps.Patch(ctx, opts.Name, types.JSONPatchType, patch, metav1.PatchOptions{})
	if err != nil {
		return OutcomeFailed, summary, fmt.Errorf("patch configmap %s/%s: %w", m.namespace, opts.Name, err)
	}

	return OutcomePatched, summary, nil
}

// PruneNotificationsSecret removes the deployment's keys from the notifications Secret.
// The shared key is never removed; it is reported in PruneSummary.ProtectedKeys instead.
func (m *ManagerImpl) PruneNotificationsSecret(
	ctx context.Context,
	opts SecretPruneOptions,
) (Outcome, PruneSummary, error) {
	var summary PruneSummary

	secrets := m.clientset.CoreV1().Secrets(m.namespace)

	secret, err := secrets.Get(ctx, opts.Name, metav1.GetOptions{})

	found, err := k8s.Presence(err)
	if err != nil {
		return OutcomeFailed, summary, fmt.Errorf("get secret %s/%s: %w", m.namespace, opts.Name, err)
	}

	if !found {
		return OutcomeNotFound, summary, nil
	}

	ops := make([]patchOperation, 0, len(opts.Keys))

	for _, key := range opts.Keys {
		if opts.Protects(key) {
			summary.ProtectedKeys = append(summary.ProtectedKeys, key)

			continue
		}

		if _, ok := secret.Data[key]; ok {
			ops = append(ops, removeOp(key))
			summary.RemovedKeys = append(summary.RemovedKeys, key)
		}
	}

	if len(ops) == 0 {
		return OutcomeAlreadyRemoved, summary, nil
	}

	patch, err := encodePatch(ops)
	if err != nil {
		return OutcomeFailed, summary, err
	}

	m.logger.WithFields(logrus.Fields{
		"secret":  opts.Name,
		"removed": summary.RemovedKeys,
	}).Debug("patching notifications Secret")

	_, err = secrets.Patch(ctx, opts.Name, types.JSONPatchType, patch, metav1.PatchOptions{})
	if err != nil {
		return OutcomeFailed, summary, fmt.Errorf("patch secret %s/%s: %w", m.namespace, opts.Name, err)
	}

	return OutcomePatched, summary, nil
}
