// Package argocd removes one deployment's objects from an Argo CD installation.
//
// It works against the Kubernetes API only: Applications through the dynamic
// client, Secrets and the notifications ConfigMap through the typed clientset.
// Missing objects are reported as outcomes, not errors.
package argocd
