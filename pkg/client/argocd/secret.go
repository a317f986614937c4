package argocd

import (
	"context"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DeleteSecret deletes the named Secret from the Argo CD namespace.
func (m *ManagerImpl) DeleteSecret(ctx context.Context, name string) (Outcome, error) {
	m.logger.WithField("secret", name).Debug("deleting Secret")

	err := m.clientset.CoreV1().Secrets(m.namespace).Delete(ctx, name, metav1.DeleteOptions{})
	if apierrors.IsNotFound(err) {
		return OutcomeNotFound, nil
	}

	if err != nil {
		return OutcomeFailed, fmt.Errorf("delete secret %s/%s: %w", m.namespace, name, err)
	}

	return OutcomeDeleted, nil
}

// DeleteSecretsBySelector deletes every Secret in the Argo CD namespace matching selector
// and returns the names deleted, sorted.
func (m *ManagerImpl) DeleteSecretsBySelector(ctx context.Context, selector string) ([]string, error) {
	list, err := m.clientset.CoreV1().Secrets(m.namespace).List(ctx, metav1.ListOptions{LabelSelector: selector})
	if err != nil {
		return nil, fmt.Errorf("list secrets %q: %w", selector, err)
	}

	names := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		names = append(names, item.Name)
	}

	return m.deleteEach(ctx, names, m.DeleteSecret)
}
