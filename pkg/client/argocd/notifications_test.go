package argocd_test

import (
	"context"
	"testing"

	"github.com/devantler-tech/offboard/pkg/client/argocd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	k8stesting "k8s.io/client-go/testing"
)

const (
	blockTeamA = "- recipients:\n  - slack:team-a\n  triggers:\n  - on-sync-failed\n"
	blockShop  = "- recipients:\n  - slack:shop\n  triggers:\n  - on-health-degraded\n"
	blockTeamB = "- recipients:\n  - slack:team-b\n  triggers:\n  - on-sync-succeeded\n"
)

func notificationsConfigMap(data map[string]string) *corev1.ConfigMap {
	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "argocd-notifications-cm", Namespace: namespace},
		Data:       data,
	}
}

func configPruneOptions() argocd.ConfigPruneOptions {
	return argocd.ConfigPruneOptions{
		Name:             "argocd-notifications-cm",
		ServiceKeys:      []string{"service.webhook.shop", "service.slack.shop"},
		SubscriptionsKey: "subscriptions",
		Target:           "shop",
	}
}

func secretPruneOptions() argocd.SecretPruneOptions {
	return argocd.SecretPruneOptions{
		Name:      "argocd-notifications-secret",
		Keys:      []string{"shop-token", "slack-token"},
		SharedKey: "slack-token",
	}
}

func (tm testManager) configMapData(t *testing.T) map[string]string {
	t.Helper()

	cm, err := tm.clientset.CoreV1().ConfigMaps(namespace).
		Get(context.Background(), "argocd-notifications-cm", metav1.GetOptions{})
	require.NoError(t, err)

	return cm.Data
}

func TestPruneNotificationsConfig(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t, nil, notificationsConfigMap(map[string]string{
		"service.webhook.shop":  "url: https://hooks.example.com/shop",
		"service.webhook.other": "url: https://hooks.example.com/other",
		"subscriptions":         blockTeamA + blockShop + blockTeamB,
	}))

	outcome, summary, err := tm.mgr.PruneNotificationsConfig(context.Background(), configPruneOptions())
	require.NoError(t, err)
	assert.Equal(t, argocd.OutcomePatched, outcome)
	assert.Equal(t, []string{"service.webhook.shop"}, summary.RemovedKeys)
	assert.Equal(t, 3, summary.SubscriptionsTotal)
	assert.Equal(t, 1, summary.SubscriptionsRemoved)
	assert.Empty(t, summary.Warnings)
	assert.True(t, summary.Changed())

	assert.Equal(t, map[string]string{
		"service.webhook.other": "url: https://hooks.example.com/other",
		"subscriptions":         blockTeamA + blockTeamB,
	}, tm.configMapData(t))
}

func TestPruneNotificationsConfigIsIdempotent(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t, nil, notificationsConfigMap(map[string]string{
		"service.webhook.shop": "url: https://hooks.example.com/shop",
		"subscriptions":        blockShop + blockTeamB,
	}))

	_, _, err := tm.mgr.PruneNotificationsConfig(context.Background(), configPruneOptions())
	require.NoError(t, err)

	outcome, summary, err := tm.mgr.PruneNotificationsConfig(context.Background(), configPruneOptions())
	require.NoError(t, err)
	assert.Equal(t, argocd.OutcomeAlreadyRemoved, outcome)
	assert.False(t, summary.Changed())
	assert.Equal(t, map[string]string{"subscriptions": blockTeamB}, tm.configMapData(t))
}

func TestPruneNotificationsConfigRemovesLastSubscription(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t, nil, notificationsConfigMap(map[string]string{
		"subscriptions": blockShop,
	}))

	outcome, summary, err := tm.mgr.PruneNotificationsConfig(context.Background(), configPruneOptions())
	require.NoError(t, err)
	assert.Equal(t, argocd.OutcomePatched, outcome)
	assert.Equal(t, 1, summary.SubscriptionsRemoved)
	assert.Equal(t, map[string]string{"subscriptions": ""}, tm.configMapData(t))
}

func TestPruneNotificationsConfigWithoutSubscriptions(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t, nil, notificationsConfigMap(map[string]string{
		"service.webhook.shop": "url: https://hooks.example.com/shop",
	}))

	outcome, summary, err := tm.mgr.PruneNotificationsConfig(context.Background(), configPruneOptions())
	require.NoError(t, err)
	assert.Equal(t, argocd.OutcomePatched, outcome)
	assert.Zero(t, summary.SubscriptionsTotal)
	assert.Empty(t, tm.configMapData(t))
}

func TestPruneNotificationsConfigNotFound(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t, nil)

	outcome, _, err := tm.mgr.PruneNotificationsConfig(context.Background(), configPruneOptions())
	require.NoError(t, err)
	assert.Equal(t, argocd.OutcomeNotFound, outcome)
}

func TestPruneNotificationsConfigWarnsOnBrokenList(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t, nil, notificationsConfigMap(map[string]string{
		"subscriptions": "defaults: true\n" + blockShop,
	}))

	outcome, summary, err := tm.mgr.PruneNotificationsConfig(context.Background(), configPruneOptions())
	require.NoError(t, err)
	assert.Equal(t, argocd.OutcomePatched, outcome)
	require.Len(t, summary.Warnings, 1)
	assert.Contains(t, summary.Warnings[0], "subscriptions")
	assert.Equal(t, map[string]string{"subscriptions": "defaults: true\n"}, tm.configMapData(t))
}

func TestPruneNotificationsConfigPatchFailure(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t, nil, notificationsConfigMap(map[string]string{
		"service.webhook.shop": "url: https://hooks.example.com/shop",
	}))
	tm.clientset.PrependReactor("patch", "configmaps", func(k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, errAPI
	})

	outcome, _, err := tm.mgr.PruneNotificationsConfig(context.Background(), configPruneOptions())
	require.ErrorIs(t, err, errAPI)
	assert.Equal(t, argocd.OutcomeFailed, outcome)
}

func TestPruneNotificationsSecretKeepsSharedKey(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t, nil, secret("argocd-notifications-secret", nil, map[string]string{
		"shop-token":  "s3cr3t",
		"other-token": "0th3r",
		"slack-token": "xoxb",
	}))

	outcome, summary, err := tm.mgr.PruneNotificationsSecret(context.Background(), secretPruneOptions())
	require.NoError(t, err)
	assert.Equal(t, argocd.OutcomePatched, outcome)
	assert.Equal(t, []string{"shop-token"}, summary.RemovedKeys)
	assert.Equal(t, []string{"slack-token"}, summary.ProtectedKeys)

	got, err := tm.clientset.CoreV1().Secrets(namespace).
		Get(context.Background(), "argocd-notifications-secret", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{
		"other-token": []byte("0th3r"),
		"slack-token": []byte("xoxb"),
	}, got.Data)
}

func TestPruneNotificationsSecretAlreadyRemoved(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t, nil, secret("argocd-notifications-secret", nil, map[string]string{
		"slack-token": "xoxb",
	}))

	outcome, summary, err := tm.mgr.PruneNotificationsSecret(context.Background(), secretPruneOptions())
	require.NoError(t, err)
	assert.Equal(t, argocd.OutcomeAlreadyRemoved, outcome)
	assert.Empty(t, summary.RemovedKeys)
}

func TestPruneNotificationsSecretNotFound(t *testing.T) {
	t.Parallel()

	tm := newTestManager(t, nil)

	outcome, _, err := tm.mgr.PruneNotificationsSecret(context.Background(), secretPruneOptions())
	require.NoError(t, err)
	assert.Equal(t, argocd.OutcomeNotFound, outcome)
}

func TestSecretPruneOptionsProtects(t *testing.T) {
	t.Parallel()

	opts := argocd.SecretPruneOptions{SharedKey: "slack-token"}

	assert.True(t, opts.Protects("slack-token"))
	assert.False(t, opts.Protects("shop-token"))
	assert.False(t, argocd.SecretPruneOptions{}.Protects(""))
}
