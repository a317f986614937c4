package envvar_test

import (
	"testing"

	"github.com/devantler-tech/offboard/pkg/utils/envvar"
	"github.com/stretchr/testify/assert"
)

//nolint:paralleltest // uses t.Setenv
func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		envVars  map[string]string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			envVars:  nil,
			expected: "",
		},
		{
			name:     "no placeholders",
			input:    "hello world",
			envVars:  nil,
			expected: "hello world",
		},
		{
			name:  "single placeholder with value",
			input: "hello ${NAME}",
			envVars: map[string]string{
				"NAME": "world",
			},
			expected: "hello world",
		},
		{
			name:     "single placeholder without value",
			input:    "hello ${MISSING}",
			envVars:  nil,
			expected: "hello ",
		},
		{
			name:  "multiple placeholders",
			input: "${GREETING} ${NAME}!",
			envVars: map[string]string{
				"GREETING": "Hello",
				"NAME":     "World",
			},
			expected: "Hello World!",
		},
		{
			name:  "placeholder with underscores",
			input: "${MY_VAR_NAME}",
			envVars: map[string]string{
				"MY_VAR_NAME": "value",
			},
			expected: "value",
		},
		{
			name:  "placeholder with numbers",
			input: "${VAR123}",
			envVars: map[string]string{
				"VAR123": "numeric",
			},
			expected: "numeric",
		},
		{
			name:     "invalid placeholder format - no braces",
			input:    "$VAR",
			envVars:  map[string]string{"VAR": "value"},
			expected: "$VAR",
		},
		{
			name:     "default used when unset",
			input:    "${OFFBOARD_TEST_UNSET:-argocd}",
			envVars:  nil,
			expected: "argocd",
		},
		{
			name:     "empty default",
			input:    "a${OFFBOARD_TEST_UNSET:-}b",
			envVars:  nil,
			expected: "ab",
		},
		{
			name:  "value wins over default",
			input: "${NS:-argocd}",
			envVars: map[string]string{
				"NS": "gitops",
			},
			expected: "gitops",
		},
		{
			name:  "mixed content",
			input: "prefix-${VAR}-suffix",
			envVars: map[string]string{
				"VAR": "middle",
			},
			expected: "prefix-middle-suffix",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Set environment variables for this test
			for key, value := range tc.envVars {
				t.Setenv(key, value)
			}

			result := envvar.Expand(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

//nolint:paralleltest // uses t.Setenv
func TestExpandAll(t *testing.T) {
	t.Setenv("APP", "shop")

	values := []string{"${APP}-repo-creds", "static"}
	envvar.ExpandAll(values)

	assert.Equal(t, []string{"shop-repo-creds", "static"}, values)
}

//nolint:paralleltest // uses t.Setenv
func TestMissing(t *testing.T) {
	t.Setenv("SET_VAR", "x")

	missing := envvar.Missing("${B_UNSET_VAR}-${SET_VAR}-${A_UNSET_VAR}-${B_UNSET_VAR}-${WITH_DEFAULT:-d}")

	assert.Equal(t, []string{"A_UNSET_VAR", "B_UNSET_VAR"}, missing)
	assert.Empty(t, envvar.Missing("no placeholders"))
}
