// Package envvar expands ${VAR} placeholders in config values.
package envvar

import (
	"os"
	"regexp"
	"slices"
	"strings"
)

// pattern matches ${VAR_NAME} and ${VAR_NAME:-default}.
// Groups: 1 = variable name, 2 = optional default value.
var pattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

const defaultSyntaxMarker = ":-"

// Expand replaces ${VAR_NAME} and ${VAR_NAME:-default} placeholders with environment values.
// An unset variable takes its default, or "" without one.
func Expand(value string) string {
	if value == "" {
		return value
	}

	return pattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := pattern.FindStringSubmatch(match)

		envValue, exists := os.LookupEnv(groups[1])
		if exists {
			return envValue
		}

		return groups[2]
	})
}

// ExpandAll expands every value in place.
func ExpandAll(values []string) {
	for i := range values {
		values[i] = Expand(values[i])
	}
}

// Missing lists, sorted and once each, the variables referenced by value that are
// unset and have no default.
func Missing(value string) []string {
	var missing []string

	for _, groups := range pattern.FindAllStringSubmatch(value, -1) {
		if strings.Contains(groups[0], defaultSyntaxMarker) {
			continue
		}

		if _, exists := os.LookupEnv(groups[1]); !exists {
			missing = append(missing, groups[1])
		}
	}

	slices.Sort(missing)

	return slices.Compact(missing)
}
