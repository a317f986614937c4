package argocd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/devantler-tech/offboard/pkg/k8s"
	"github.com/devantler-tech/offboard/pkg/k8s/readiness"
	"github.com/devantler-tech/offboard/pkg/utils/parallel"
	"github.com/sirupsen/logrus"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/dynamic"
)

// ResourcesFinalizer makes Argo CD delete an Application's managed resources before the
// Application itself.
const ResourcesFinalizer = "resources-finalizer.argocd.argoproj.io"

// ApplicationGVR identifies Argo CD Applications.
func ApplicationGVR() schema.GroupVersionResource {
	return schema.GroupVersionResource{
		Group:    "argoproj.io",
		Version:  "v1alpha1",
		Resource: "applications",
	}
}

func (m *ManagerImpl) applications() dynamic.ResourceInterface {
	return m.dynamic.Resource(ApplicationGVR()).Namespace(m.namespace)
}

// ApplicationExists reports whether the named Application exists.
func (m *ManagerImpl) ApplicationExists(ctx context.Context, name string) (bool, error) {
	_, err := m.applications().Get(ctx, name, metav1.GetOptions{})

	found, err := k8s.Presence(err)
	if err != nil {
		return false, fmt.Errorf("get Argo CD Application %s: %w", name, err)
	}

	return found, nil
}

// DeleteApplication deletes the named Application.
//
// Unless propagation is Orphan, the Argo CD resources finalizer is added first so the
// deletion cascades to managed resources; with Orphan it is removed. An Application
// that is already terminating counts as deleted.
func (m *ManagerImpl) DeleteApplication(
	ctx context.Context,
	name string,
	propagation metav1.DeletionPropagation,
) (Outcome, error) {
	app, err := m.applications().Get(ctx, name, metav1.GetOptions{})

	found, err := k8s.Presence(err)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("get Argo CD Application %s: %w", name, err)
	}

	if !found {
		m.logger.WithField("application", name).Debug("Argo CD Application not found")

		return OutcomeNotFound, nil
	}

	cascade := propagation != metav1.DeletePropagationOrphan

	if app.GetDeletionTimestamp() != nil {
		return m.settleTerminating(ctx, app, cascade)
	}

	err = m.setResourcesFinalizer(ctx, app, cascade)
	if apierrors.IsNotFound(err) {
		return OutcomeNotFound, nil
	}

	if err != nil {
		return OutcomeFailed, err
	}

	m.logger.WithFields(logrus.Fields{
		"application": name,
		"propagation": propagation,
	}).Debug("deleting Argo CD Application")

	err = m.applications().Delete(ctx, name, metav1.DeleteOptions{PropagationPolicy: &propagation})
	if apierrors.IsNotFound(err) {
		return OutcomeNotFound, nil
	}

	if err != nil {
		return OutcomeFailed, fmt.Errorf("delete Argo CD Application %s: %w", name, err)
	}

	return OutcomeDeleted, nil
}

// settleTerminating handles an Application that is already being deleted. The API
// server refuses new finalizers on it, so only an orphaning delete patches it.
func (m *ManagerImpl) settleTerminating(
	ctx context.Context,
	app *unstructured.Unstructured,
	cascade bool,
) (Outcome, error) {
	m.logger.WithField("application", app.GetName()).Debug("Argo CD Application already terminating")

	if !cascade {
		err := m.setResourcesFinalizer(ctx, app, false)
		if apierrors.IsNotFound(err) {
			return OutcomeNotFound, nil
		}

		if err != nil {
			return OutcomeFailed, err
		}
	}

	return OutcomeDeleted, nil
}

// WaitForApplicationDeletion polls until the named Application is gone.
// Running out of time is reported as OutcomeTimedOut, not as an error.
func (m *ManagerImpl) WaitForApplicationDeletion(
	ctx context.Context,
	name string,
	timeout time.Duration,
	interval time.Duration,
) (Outcome, error) {
	err := readiness.WaitForDeletion(ctx, timeout, interval, func(ctx context.Context) error {
		_, getErr := m.applications().Get(ctx, name, metav1.GetOptions{})

		return getErr
	})

	switch {
	case err == nil:
		return OutcomeDeleted, nil
	case errors.Is(err, readiness.ErrTimeoutExceeded):
		m.logger.WithError(err).WithField("application", name).Debug("Argo CD Application still present")

		return OutcomeTimedOut, nil
	default:
		return OutcomeFailed, fmt.Errorf("wait for Argo CD Application %s deletion: %w", name, err)
	}
}

// DeleteApplicationsBySelector deletes every Application matching selector and returns
// the names deleted, sorted. Applications that vanish in between are skipped.
func (m *ManagerImpl) DeleteApplicationsBySelector(
	ctx context.Context,
	selector string,
	propagation metav1.DeletionPropagation,
) ([]string, error) {
	list, err := m.applications().List(ctx, metav1.ListOptions{LabelSelector: selector})
	if err != nil {
		return nil, fmt.Errorf("list Argo CD Applications %q: %w", selector, err)
	}

	names := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		names = append(names, item.GetName())
	}

	return m.deleteEach(ctx, names, func(ctx context.Context, name string) (Outcome, error) {
		return m.DeleteApplication(ctx, name, propagation)
	})
}

func (m *ManagerImpl) setResourcesFinalizer(
	ctx context.Context,
	app *unstructured.Unstructured,
	present bool,
) error {
	finalizers := app.GetFinalizers()
	has := slices.Contains(finalizers, ResourcesFinalizer)

	switch {
	case present && !has:
		finalizers = append(finalizers, ResourcesFinalizer)
	case !present && has:
		finalizers = slices.DeleteFunc(finalizers, func(f string) bool { return f == ResourcesFinalizer })
	default:
		return nil
	}

	patch, err := json.Marshal(map[string]any{
		"metadata": map[string]any{"finalizers": finalizers},
	})
	if err != nil {
		return fmt.Errorf("encode finalizer patch: %w", err)
	}

	_, err = m.applications().Patch(ctx, app.GetName(), types.MergePatchType, patch, metav1.PatchOptions{})
	if err != nil {
		return fmt.Errorf("patch finalizers of Argo CD Application %s: %w", app.GetName(), err)
	}

	return nil
}

// deleteEach runs del for every name through the executor and returns the names whose
// outcome was OutcomeDeleted, sorted. Names deleted before a failure are still returned.
func (m *ManagerImpl) deleteEach(
	ctx context.Context,
	names []string,
	del func(ctx context.Context, name string) (Outcome, error),
) ([]string, error) {
	deleted := parallel.NewResults[string]()
	tasks := make([]parallel.Task, 0, len(names))

	for _, name := range names {
		tasks = append(tasks, func(ctx context.Context) error {
			outcome, err := del(ctx, name)
			if err != nil {
				return err
			}

			if outcome == OutcomeDeleted {
				deleted.Add(name)
			}

			return nil
		})
	}

	err := m.executor.Execute(ctx, tasks...)

	result := deleted.Values()
	sort.Strings(result)

	return result, err
}
