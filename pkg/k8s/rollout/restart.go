// Package rollout restarts workloads the same way `kubectl rollout restart` does.
package rollout

import (
	"context"
	"errors"
	"fmt"

	"github.com/devantler-tech/offboard/pkg/k8s"
	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/strategicpatch"
	"k8s.io/client-go/kubernetes"
	"k8s.io/kubectl/pkg/polymorphichelpers"
	"k8s.io/kubectl/pkg/scheme"
)

// RestartedAtAnnotation is the pod template annotation stamped on restart.
const RestartedAtAnnotation = "kubectl.kubernetes.io/restartedAt"

// ErrEmptyPatch is returned when a restart would not change the Deployment.
var ErrEmptyPatch = errors.New("restart produced an empty patch")

// RestartDeployment triggers a rolling restart of the named Deployment.
//
// It returns false without error when the Deployment does not exist.
// Paused Deployments are rejected by the restarter, as with kubectl.
func RestartDeployment(
	ctx context.Context,
	clientset kubernetes.Interface,
	namespace string,
	name string,
) (bool, error) {
	deployments := clientset.AppsV1().Deployments(namespace)

	deployment, err := deployments.Get(ctx, name, metav1.GetOptions{})

	found, err := k8s.Presence(err)
	if err != nil {
		return false, fmt.Errorf("get deployment %s/%s: %w", namespace, name, err)
	}

	if !found {
		return false, nil
	}

	patch, err := restartPatch(deployment)
	if err != nil {
		return false, fmt.Errorf("restart deployment %s/%s: %w", namespace, name, err)
	}

	_, err = deployments.Patch(ctx, name, types.StrategicMergePatchType, patch, metav1.PatchOptions{})
	if err != nil {
		return false, fmt.Errorf("patch deployment %s/%s: %w", namespace, name, err)
	}

	return true, nil
}

// restartPatch returns the strategic merge patch that stamps the restart annotation.
func restartPatch(deployment *appsv1.Deployment) ([]byte, error) {
	original, err := runtime.Encode(scheme.DefaultJSONEncoder(), deployment)
	if err != nil {
		return nil, fmt.Errorf("encode deployment: %w", err)
	}

	// The restarter mutates its argument.
	modified, err := polymorphichelpers.ObjectRestarterFn(deployment.DeepCopy())
	if err != nil {
		return nil, fmt.Errorf("stamp restart annotation: %w", err)
	}

	patch, err := strategicpatch.CreateTwoWayMergePatch(original, modified, appsv1.Deployment{})
	if err != nil {
		return nil, fmt.Errorf("create restart patch: %w", err)
	}

	if string(patch) == "{}" {
		return nil, ErrEmptyPatch
	}

	return patch, nil
}
