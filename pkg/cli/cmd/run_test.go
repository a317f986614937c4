package cmd_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/devantler-tech/offboard/pkg/cli/cmd"
	"github.com/devantler-tech/offboard/pkg/cli/ui/confirm"
	"github.com/devantler-tech/offboard/pkg/client/argocd"
	"github.com/devantler-tech/offboard/pkg/di"
	"github.com/devantler-tech/offboard/pkg/k8s"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	dynamicfake "k8s.io/client-go/dynamic/fake"
	k8sfake "k8s.io/client-go/kubernetes/fake"
)

const namespace = "argocd"

var errNoCluster = errors.New("no cluster in tests")

// failingClientsFactory fails every client creation.
type failingClientsFactory struct{}

func (failingClientsFactory) Create(genericclioptions.RESTClientGetter) (*k8s.Clients, error) {
	return nil, errNoCluster
}

func application(name string, labels map[string]string) *unstructured.Unstructured {
	app := &unstructured.Unstructured{Object: map[string]any{
		"apiVersion": "argoproj.io/v1alpha1",
		"kind":       "Application",
		"metadata":   map[string]any{"name": name, "namespace": namespace},
	}}
	app.SetLabels(labels)

	return app
}

func newClients() *k8s.Clients {
	clientset := k8sfake.NewClientset(
		&corev1.Secret{ObjectMeta: metav1.ObjectMeta{Name: "shop-repo-creds", Namespace: namespace}},
		&corev1.Secret{
			ObjectMeta: metav1.ObjectMeta{Name: "argocd-notifications-secret", Namespace: namespace},
			Data: map[string][]byte{
				"shop-token":  []byte("s3cr3t"),
				"slack-token": []byte("xoxb"),
			},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "argocd-notifications-cm", Namespace: namespace},
			Data: map[string]string{
				"service.webhook.shop": "url: https://hooks.example.com/shop",
				"subscriptions":        blockTeamA + blockShop,
			},
		},
		&appsv1.Deployment{
			ObjectMeta: metav1.ObjectMeta{Name: "argocd-notifications-controller", Namespace: namespace},
		},
	)

	dyn := dynamicfake.NewSimpleDynamicClientWithCustomListKinds(
		runtime.NewScheme(),
		map[schema.GroupVersionResource]string{argocd.ApplicationGVR(): "ApplicationList"},
		application("shop-apps", nil),
		application("shop-prod", nil),
		application("shop-preview", map[string]string{"app.kubernetes.io/part-of": "shop"}),
	)

	return &k8s.Clients{Clientset: clientset, Dynamic: dyn}
}

func execute(factory k8s.ClientsFactory, out *bytes.Buffer, args ...string) error {
	runtimeContainer := di.New(di.ProvideTimer, di.ProvideClientsFactory(factory))

	root := cmd.NewRootCmdWithRuntime(runtimeContainer, "", "", "")
	root.SetOut(out)
	root.SetArgs(args)

	return cmd.Execute(root)
}

func TestRunCmd_OffboardsApplication(t *testing.T) {
	t.Parallel()

	clients := newClients()

	var out bytes.Buffer

	err := execute(k8s.StaticClientsFactory{Clients: clients}, &out,
		"run", "--config", writeConfig(t, shopConfig), "--yes", "--settle-delay", "0s", "-o", "yaml")

	require.NoError(t, err)

	ctx := context.Background()

	for _, name := range []string{"shop-apps", "shop-prod", "shop-preview"} {
		_, err := clients.Dynamic.Resource(argocd.ApplicationGVR()).Namespace(namespace).Get(ctx, name, metav1.GetOptions{})
		assert.True(t, apierrors.IsNotFound(err), name)
	}

	_, err = clients.Clientset.CoreV1().Secrets(namespace).Get(ctx, "shop-repo-creds", metav1.GetOptions{})
	assert.True(t, apierrors.IsNotFound(err))

	secret, err := clients.Clientset.CoreV1().Secrets(namespace).Get(ctx, "argocd-notifications-secret", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"slack-token": []byte("xoxb")}, secret.Data)

	configMap, err := clients.Clientset.CoreV1().ConfigMaps(namespace).Get(ctx, "argocd-notifications-cm", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"subscriptions": blockTeamA}, configMap.Data)

	output := out.String()
	assert.Contains(t, output, "Offboard shop...")
	assert.Contains(t, output, "application: shop")
	assert.Contains(t, output, "step: delete-parent-application")
	assert.Contains(t, output, "outcome: restarted")
	assert.Contains(t, output, "detail: no settle delay configured")
	assert.NotContains(t, output, "outcome: failed")
}

func TestRunCmd_DryRunDoesNotConnect(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := execute(failingClientsFactory{}, &out,
		"run", "--config", writeConfig(t, shopConfig), "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "delete-parent-application")
	assert.Contains(t, out.String(), "skipped")
}

func TestRunCmd_ClientFailure(t *testing.T) {
	t.Parallel()

	err := execute(failingClientsFactory{}, &bytes.Buffer{},
		"run", "--config", writeConfig(t, shopConfig), "--yes")

	require.ErrorIs(t, err, errNoCluster)
}

func TestRunCmd_InvalidOutput(t *testing.T) {
	t.Parallel()

	err := execute(failingClientsFactory{}, &bytes.Buffer{},
		"run", "--config", writeConfig(t, shopConfig), "-o", "json")

	require.ErrorIs(t, err, cmd.ErrInvalidOutput)
}

func TestRunCmd_InvalidConfig(t *testing.T) {
	t.Parallel()

	err := execute(failingClientsFactory{}, &bytes.Buffer{},
		"run", "--config", writeConfig(t, shopConfig), "--cascade", "sideways", "--yes")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}

//nolint:paralleltest // overrides the shared TTY checker and stdin reader
func TestRunCmd_DeclinedPromptChangesNothing(t *testing.T) {
	restoreTTY := confirm.SetTTYCheckerForTests(func() bool { return true })
	defer restoreTTY()

	restoreStdin := confirm.SetStdinReaderForTests(strings.NewReader("no\n"))
	defer restoreStdin()

	clients := newClients()

	var out bytes.Buffer

	err := execute(k8s.StaticClientsFactory{Clients: clients}, &out,
		"run", "--config", writeConfig(t, shopConfig))

	require.ErrorIs(t, err, confirm.ErrOffboardingCancelled)
	assert.Contains(t, out.String(), "offboarding shop in namespace argocd will perform:")

	_, err = clients.Dynamic.Resource(argocd.ApplicationGVR()).Namespace(namespace).
		Get(context.Background(), "shop-apps", metav1.GetOptions{})
	require.NoError(t, err)
}

func TestPlanCmd_ListsOperations(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := execute(failingClientsFactory{}, &out,
		"plan", "--config", writeConfig(t, shopConfig), "--secrets", "shop-repo-creds,shop-oci", "-o", "yaml")

	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "dryRun: true")
	assert.Contains(t, output, "target: shop-apps")
	assert.Contains(t, output, "target: shop-prod")
	assert.Contains(t, output, "target: shop-repo-creds")
	assert.Contains(t, output, "target: shop-oci")
	assert.NotContains(t, output, "outcome: deleted")
}
