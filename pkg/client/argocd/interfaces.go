package argocd

import (
	"context"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Manager removes a deployment's Argo CD objects.
//
// Implementations are expected to be idempotent: repeating an operation after it
// succeeded reports not-found or already-removed.
type Manager interface {
	ApplicationExists(ctx context.Context, name string) (bool, error)
	DeleteApplication(ctx context.Context, name string, propagation metav1.DeletionPropagation) (Outcome, error)
	WaitForApplicationDeletion(ctx context.Context, name string, timeout, interval time.Duration) (Outcome, error)
	DeleteApplicationsBySelector(
		ctx context.Context,
		selector string,
		propagation metav1.DeletionPropagation,
	) ([]string, error)
	DeleteSecret(ctx context.Context, name string) (Outcome, error)
	DeleteSecretsBySelector(ctx context.Context, selector string) ([]string, error)
	PruneNotificationsConfig(ctx context.Context, opts ConfigPruneOptions) (Outcome, PruneSummary, error)
	PruneNotificationsSecret(ctx context.Context, opts SecretPruneOptions) (Outcome, PruneSummary, error)
	RestartController(ctx context.Context, name string) (Outcome, error)
}
