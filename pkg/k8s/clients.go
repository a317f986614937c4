package k8s

import (
	"fmt"

	"k8s.io/cli-runtime/pkg/genericclioptions"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
)

// Clients bundles the typed and dynamic clients used against one cluster.
type Clients struct {
	Clientset kubernetes.Interface
	Dynamic   dynamic.Interface
}

// NewClients creates both clients from a REST config.
func NewClients(restConfig *rest.Config) (*Clients, error) {
	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	dynamicClient, err := dynamic.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic client: %w", err)
	}

	return &Clients{Clientset: clientset, Dynamic: dynamicClient}, nil
}

// NewClientsFromKubeconfig creates both clients from a kubeconfig path and optional context.
func NewClientsFromKubeconfig(kubeconfig, context string) (*Clients, error) {
	restConfig, err := BuildRESTConfig(kubeconfig, context)
	if err != nil {
		return nil, fmt.Errorf("failed to build rest config: %w", err)
	}

	return NewClients(restConfig)
}

// NewClientsFromGetter creates both clients from cli-runtime flags.
// Standard loading rules apply: --kubeconfig, then KUBECONFIG, then ~/.kube/config.
func NewClientsFromGetter(getter genericclioptions.RESTClientGetter) (*Clients, error) {
	restConfig, err := getter.ToRESTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	return NewClients(restConfig)
}

// ClientsFactory creates cluster clients. Commands resolve it from the DI container so
// tests can swap in fake clientsets.
type ClientsFactory interface {
	Create(getter genericclioptions.RESTClientGetter) (*Clients, error)
}

// DefaultClientsFactory builds real clients through NewClientsFromGetter.
type DefaultClientsFactory struct{}

// Create implements ClientsFactory.
func (DefaultClientsFactory) Create(getter genericclioptions.RESTClientGetter) (*Clients, error) {
	return NewClientsFromGetter(getter)
}

// StaticClientsFactory always returns the same Clients.
type StaticClientsFactory struct {
	Clients *Clients
}

// Create implements ClientsFactory.
func (f StaticClientsFactory) Create(genericclioptions.RESTClientGetter) (*Clients, error) {
	return f.Clients, nil
}
