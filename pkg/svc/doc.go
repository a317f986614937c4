// Package svc provides the service layer between the CLI commands and the clients.
//
// Subpackages:
//   - offboarder: the ordered offboarding run and its report
package svc
