// Package utils provides utility packages for common operations.
//
//   - envvar: ${VAR} placeholder expansion in config values
//   - log: logrus setup for debug tracing
//   - notify: Formatted message display with symbols, colors, and timing
//   - parallel: bounded concurrent task execution
package utils
