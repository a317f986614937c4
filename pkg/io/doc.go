// Package io provides configuration input for offboard.
//
// Subpackages:
//   - config-manager: the loading contract and the viper-backed Offboarding manager
package io
