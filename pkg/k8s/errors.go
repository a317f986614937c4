package k8s

import (
	"errors"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// ErrKubeconfigPathEmpty is returned when kubeconfig path is empty.
var ErrKubeconfigPathEmpty = errors.New("kubeconfig path is empty")

// Presence turns the error of a Get call into an existence answer.
// A NotFound error means the object is absent; any other error is returned as is.
func Presence(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case apierrors.IsNotFound(err):
		return false, nil
	default:
		return false, err
	}
}
