// Package v1alpha1 defines the Offboarding configuration read from offboard.yaml.
//
// Identifying values (application, environment, repository) are written once
// by the onboarding flow; every other field has a default derived from them.
package v1alpha1
