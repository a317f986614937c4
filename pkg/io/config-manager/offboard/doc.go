// Package configmanager loads Offboarding configs with viper.
//
// Precedence is defaults < config file < environment (OFFBOARD_*) < flags.
// String values from the file and environment may reference ${VAR} or
// ${VAR:-default}; they are expanded before flags are applied.
// Names derived from spec.application are filled after all sources are merged,
// so overriding the application through a flag also moves every derived name.
package configmanager
