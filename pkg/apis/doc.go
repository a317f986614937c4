// Package apis provides API type definitions for offboard configs.
//
//   - offboard: the Offboarding config, versioned Kubernetes-style
package apis
