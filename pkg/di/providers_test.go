package di_test

import (
	"testing"

	"github.com/devantler-tech/offboard/pkg/di"
	"github.com/devantler-tech/offboard/pkg/k8s"
	"github.com/devantler-tech/offboard/pkg/timer"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRuntime_ProvidesDefaults(t *testing.T) {
	t.Parallel()

	err := di.NewRuntime().Invoke(func(injector di.Injector) error {
		tmr, err := di.ResolveTimer(injector)
		require.NoError(t, err)
		require.NotNil(t, tmr)

		factory, err := di.ResolveClientsFactory(injector)
		require.NoError(t, err)
		assert.IsType(t, k8s.DefaultClientsFactory{}, factory)

		return nil
	})

	require.NoError(t, err)
}

func TestProvideClientsFactory_Overrides(t *testing.T) {
	t.Parallel()

	clients := &k8s.Clients{}
	runtime := di.New(di.ProvideClientsFactory(k8s.StaticClientsFactory{Clients: clients}))

	err := runtime.Invoke(func(injector di.Injector) error {
		factory, err := di.ResolveClientsFactory(injector)
		require.NoError(t, err)

		got, err := factory.Create(nil)
		require.NoError(t, err)
		assert.Same(t, clients, got)

		return nil
	})

	require.NoError(t, err)
}

func TestResolvers_ErrorWhenMissing(t *testing.T) {
	t.Parallel()

	injector := do.New()

	_, err := di.ResolveTimer(injector)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve timer dependency")

	_, err = di.ResolveClientsFactory(injector)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve clients factory dependency")
}

func TestWithTimer(t *testing.T) {
	t.Parallel()

	injector := do.New()
	do.Provide(injector, func(do.Injector) (timer.Timer, error) { return timer.New(), nil })

	called := false
	handler := di.WithTimer(func(_ *cobra.Command, _ di.Injector, tmr timer.Timer) error {
		called = true

		assert.NotNil(t, tmr)

		return nil
	})

	require.NoError(t, handler(&cobra.Command{}, injector))
	assert.True(t, called)
}

func TestWithTimer_ResolveError(t *testing.T) {
	t.Parallel()

	handler := di.WithTimer(func(*cobra.Command, di.Injector, timer.Timer) error {
		t.Fatal("handler should not run")

		return nil
	})

	require.Error(t, handler(&cobra.Command{}, do.New()))
}
