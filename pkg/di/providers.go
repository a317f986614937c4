package di

import (
	"github.com/devantler-tech/offboard/pkg/k8s"
	"github.com/devantler-tech/offboard/pkg/timer"
	"github.com/samber/do/v2"
)

// Dependency providers.

// NewRuntime constructs the shared runtime used by the root command.
// It registers the default timer and Kubernetes clients factory.
func NewRuntime() *Runtime {
	return New(
		ProvideTimer,
		ProvideClientsFactory(k8s.DefaultClientsFactory{}),
	)
}

// ProvideTimer registers a fresh stage timer.
func ProvideTimer(i Injector) error {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}

// ProvideClientsFactory returns a module registering factory as the clients factory.
func ProvideClientsFactory(factory k8s.ClientsFactory) Module {
	return func(i Injector) error {
		do.Provide(i, func(Injector) (k8s.ClientsFactory, error) {
			return factory, nil
		})

		return nil
	}
}
