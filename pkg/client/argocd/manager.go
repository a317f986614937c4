package argocd

import (
	"fmt"

	"github.com/devantler-tech/offboard/pkg/k8s"
	"github.com/devantler-tech/offboard/pkg/utils/log"
	"github.com/devantler-tech/offboard/pkg/utils/parallel"
	"github.com/sirupsen/logrus"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
)

// DefaultNamespace is the namespace Argo CD is installed in by default.
const DefaultNamespace = "argocd"

// ManagerImpl implements Manager against one Argo CD namespace.
type ManagerImpl struct {
	clientset kubernetes.Interface
	dynamic   dynamic.Interface
	namespace string
	logger    logrus.FieldLogger
	executor  *parallel.Executor
}

var _ Manager = (*ManagerImpl)(nil)

// NewManager creates a manager using provided Kubernetes clients.
//
// This is the primary constructor for unit tests. An empty namespace selects DefaultNamespace.
func NewManager(
	clientset kubernetes.Interface,
	dyn dynamic.Interface,
	namespace string,
	opts ...Option,
) *ManagerImpl {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	manager := &ManagerImpl{
		clientset: clientset,
		dynamic:   dyn,
		namespace: namespace,
		logger:    log.Discard(),
		executor:  parallel.NewExecutor(parallel.DefaultMaxConcurrency),
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

// NewManagerFromKubeconfig creates a manager by building Kubernetes clients from kubeconfig.
func NewManagerFromKubeconfig(
	kubeconfig string,
	context string,
	namespace string,
	opts ...Option,
) (*ManagerImpl, error) {
	clients, err := k8s.NewClientsFromKubeconfig(kubeconfig, context)
	if err != nil {
		return nil, fmt.Errorf("create argocd manager: %w", err)
	}

	return NewManager(clients.Clientset, clients.Dynamic, namespace, opts...), nil
}

// Namespace returns the Argo CD namespace the manager operates in.
func (m *ManagerImpl) Namespace() string {
	return m.namespace
}
