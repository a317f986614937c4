package argocd

import (
	"context"

	"github.com/devantler-tech/offboard/pkg/k8s/rollout"
)

// RestartController rolls the named Deployment in the Argo CD namespace so it reloads
// the notifications configuration.
func (m *ManagerImpl) RestartController(ctx context.Context, name string) (Outcome, error) {
	m.logger.WithField("deployment", name).Debug("restarting controller")

	restarted, err := rollout.RestartDeployment(ctx, m.clientset, m.namespace, name)
	if err != nil {
		return OutcomeFailed, err //nolint:wrapcheck // already wrapped with the deployment name
	}

	if !restarted {
		return OutcomeNotFound, nil
	}

	return OutcomeRestarted, nil
}
