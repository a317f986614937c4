// Package client provides clients for the systems offboard talks to.
//
//   - argocd: Argo CD Applications, Secrets and notifications config in one namespace
package client
