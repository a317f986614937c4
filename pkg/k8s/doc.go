// Package k8s provides Kubernetes client configuration and small API helpers.
//
// Key features:
//   - REST config building from kubeconfig files or cli-runtime flags (BuildRESTConfig)
//   - Typed and dynamic client construction in one step (NewClients, NewClientsFromGetter)
//   - Not-found aware presence checks (Presence)
//
// For deletion polling, see the [readiness] sub-package. For rollout restarts,
// see the [rollout] sub-package.
package k8s
