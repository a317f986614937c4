package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devantler-tech/offboard/pkg/cli/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopConfig = `apiVersion: offboard.devantler.tech/v1alpha1
kind: Offboarding
spec:
  application: shop
  environment: prod
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "offboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewRootCmdVersionFormatting(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("1.2.3", "abc123", "2026-10-01")

	assert.Equal(t, "1.2.3 (Built on 2026-10-01 from Git SHA abc123)", root.Version)
}

func TestNewRootCmdRegistersSubcommands(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("", "", "")

	names := make([]string, 0, len(root.Commands()))
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"run", "plan", "filter", "config"})

	for _, name := range []string{"config", "log-level", "timing", "kubeconfig", "context"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
}

func TestExecuteShowsHelp(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("", "", "")
	root.SetOut(&out)
	root.SetArgs([]string{})

	require.NoError(t, cmd.Execute(root))
	assert.Contains(t, out.String(), "Remove a deployment's GitOps footprint")
	assert.Contains(t, out.String(), "Available Commands:")
}

func TestExecuteShowsVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("1.2.3", "abc123", "2026-10-01")
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute(root))
	assert.Contains(t, out.String(), "1.2.3 (Built on 2026-10-01 from Git SHA abc123)")
}

func TestExecuteUnknownCommand(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("", "", "")
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"launch"})

	err := cmd.Execute(root)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "command execution failed: unknown command \"launch\""), err.Error())
}
