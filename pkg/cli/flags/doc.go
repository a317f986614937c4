// Package flags holds the flags shared by every offboard command.
//
// Globals carries the persistent root flags: config file, log level, timing and
// the kubeconfig connection flags. IsTimingEnabled and MaybeTimer gate timing
// output on the --timing flag.
package flags
